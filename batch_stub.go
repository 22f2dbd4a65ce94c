// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build nobatch

package bus

import (
	"code.hybscloud.com/corobus/internal/buserr"
	"code.hybscloud.com/corobus/internal/waitq"
)

// This build configuration omits the batch feature (SPEC_FULL.md §1
// "out of scope: build configuration gating the optional batch/
// broadcast features"). Every entry point reports NotImplemented.

func (b *Bus) TrySendBatch(id int, data []uint32) (int, error) {
	return -1, buserr.SetLast(buserr.NotImplemented)
}

func (b *Bus) SendBatch(self waitq.Coroutine, id int, data []uint32) (int, error) {
	return -1, buserr.SetLast(buserr.NotImplemented)
}

func (b *Bus) TryRecvBatch(id int, out []uint32) (int, error) {
	return -1, buserr.SetLast(buserr.NotImplemented)
}

func (b *Bus) RecvBatch(self waitq.Coroutine, id int, out []uint32) (int, error) {
	return -1, buserr.SetLast(buserr.NotImplemented)
}
