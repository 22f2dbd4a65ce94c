// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build nobatch

package bus

import (
	"code.hybscloud.com/corobus/internal/buserr"
	"code.hybscloud.com/corobus/internal/waitq"
)

// This build configuration omits the broadcast feature, same as
// batch_stub.go for TrySendBatch/SendBatch/TryRecvBatch/RecvBatch.

func (b *Bus) TryBroadcast(word uint32) error {
	return buserr.SetLast(buserr.NotImplemented)
}

func (b *Bus) Broadcast(self waitq.Coroutine, word uint32) error {
	return buserr.SetLast(buserr.NotImplemented)
}
