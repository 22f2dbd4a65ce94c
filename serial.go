// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus

import "code.hybscloud.com/atomix"

// serial is a monotonically increasing bus identifier, letting
// multiple independent *Bus instances in one process be told apart in
// logs and tests even though the core never needs it for correctness.
type serial = uint32

// serialCounter is the process-wide monotonic counter for bus serials.
var serialCounter atomix.Uint32

func nextSerial() serial {
	return serialCounter.Add(1)
}
