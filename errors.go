// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus

import (
	"code.hybscloud.com/corobus/internal/buserr"
	"code.hybscloud.com/iox"
)

// Sentinel errors callers can compare against with errors.Is.
//
// ErrWouldBlock is an alias for iox.ErrWouldBlock, the same sentinel
// every non-blocking try_* operation across this ecosystem returns on
// backpressure.
var (
	ErrNoChannel      = buserr.ErrNoChannel
	ErrNotImplemented = buserr.ErrNotImplemented
	ErrWouldBlock     = iox.ErrWouldBlock
)

// Errno is the errno_get()/errno_set() compatibility taxonomy from
// SPEC_FULL.md §3: None, NoChannel, WouldBlock, or NotImplemented.
type Errno = buserr.Code

// Errno values, re-exported so callers never need to import the
// internal buserr package directly.
const (
	ErrnoNone           = buserr.None
	ErrnoNoChannel      = buserr.NoChannel
	ErrnoWouldBlock     = buserr.WouldBlock
	ErrnoNotImplemented = buserr.NotImplemented
)

// LastErrno returns the most recently recorded error code: the
// errno_get() compatibility surface described in SPEC_FULL.md §3. It
// reflects the outcome of the most recent bus operation on any Bus in
// this process, successful or not.
func LastErrno() Errno { return buserr.Last() }
