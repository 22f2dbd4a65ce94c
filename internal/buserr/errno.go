// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package buserr is the bus's error taxonomy: an idiomatic Go error
// type plus the process-wide "last error" compatibility shim the
// original errno-style surface described for this bus. Every bus
// operation both returns an explicit error and records its Code here.
package buserr

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Code is the bus error taxonomy. The zero value is None.
type Code uint32

const (
	// None is success. It also doubles as the argument-error return
	// of a batch operation called with a nil, non-empty-count buffer
	// in a strict-compatibility port; in this Go port that case is
	// structurally unrepresentable (see DESIGN.md), so callers here
	// only ever see None on success.
	None Code = iota
	// NoChannel means the addressed channel does not exist: never
	// opened, already closed, or the bus itself is nil.
	NoChannel
	// WouldBlock means a non-blocking call could make no progress.
	// Blocking calls use it internally as the signal to suspend.
	WouldBlock
	// NotImplemented is reserved for builds that omit the optional
	// batch/broadcast features (see batch_stub.go, broadcast_stub.go).
	NotImplemented
)

func (c Code) String() string {
	switch c {
	case None:
		return "none"
	case NoChannel:
		return "no_channel"
	case WouldBlock:
		return "would_block"
	case NotImplemented:
		return "not_implemented"
	default:
		return "unknown"
	}
}

// Error is the error value returned alongside Code by bus operations.
type Error struct {
	Code Code
}

func (e *Error) Error() string { return "bus: " + e.Code.String() }

// Is reports whether target carries the same Code, so callers can use
// errors.Is(err, buserr.ErrNoChannel) instead of a type switch.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel errors, one per non-success Code, for errors.Is comparisons.
var (
	ErrNoChannel      = &Error{Code: NoChannel}
	ErrNotImplemented = &Error{Code: NotImplemented}
)

// New wraps code as an error. Returns nil for None, matching Go
// convention that success is a nil error even though the Code taxonomy
// itself has a None member. WouldBlock returns iox.ErrWouldBlock
// itself rather than an *Error, so callers can keep using
// iox.IsWouldBlock/errors.Is(err, iox.ErrWouldBlock) the way the rest
// of this ecosystem's non-blocking APIs do.
func New(code Code) error {
	switch code {
	case None:
		return nil
	case WouldBlock:
		return iox.ErrWouldBlock
	default:
		return &Error{Code: code}
	}
}

// last is the process-wide compatibility shim: a scheduler-local last
// error, mirroring the teacher's use of atomix.Uint32 for process-wide
// counters (serial.go). Harmless under real concurrency even though
// the bus core itself is only ever touched by one scheduler thread.
var last atomix.Uint32

// SetLast records code as the most recent error and returns its Go
// error form (nil for None). Every bus operation funnels its outcome
// through this single function before returning.
func SetLast(code Code) error {
	last.StoreRelease(uint32(code))
	return New(code)
}

// Last returns the most recently recorded Code, the errno_get()
// compatibility surface from SPEC_FULL.md §3.
func Last() Code {
	return Code(last.LoadAcquire())
}
