// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus

import (
	"code.hybscloud.com/corobus/internal/buserr"
	"code.hybscloud.com/corobus/internal/waitq"
)

// TrySend appends word to channel id without blocking. Returns
// iox.ErrWouldBlock if the channel is full, or a NoChannel error if id
// does not name a live channel.
func (b *Bus) TrySend(id int, word uint32) error {
	ch, ok := b.lookup(id)
	if !ok {
		return buserr.SetLast(buserr.NoChannel)
	}
	if !ch.push(word) {
		return buserr.SetLast(buserr.WouldBlock)
	}
	waitq.WakeFirst(&ch.recvQ)
	return buserr.SetLast(buserr.None)
}

// Send appends word to channel id, suspending self on the channel's
// send queue while the channel is full. Re-resolves id on every retry:
// close is only ever observable through the descriptor table, and
// waking a suspended sender does not itself carry close information.
//
// Unlike TrySend, a successful Send also chain-wakes one more waiting
// sender if the channel still has room after this write, so a burst of
// blocked senders drains one push per wakeup instead of needing an
// external nudge between each.
func (b *Bus) Send(self waitq.Coroutine, id int, word uint32) error {
	for {
		ch, ok := b.lookup(id)
		if !ok {
			return buserr.SetLast(buserr.NoChannel)
		}
		if ch.push(word) {
			waitq.WakeFirst(&ch.recvQ)
			if !ch.full() {
				waitq.WakeFirst(&ch.sendQ)
			}
			return buserr.SetLast(buserr.None)
		}
		waitq.Suspend(&ch.sendQ, self)
	}
}

// TryRecv removes the head word of channel id without blocking.
// Returns iox.ErrWouldBlock if the channel is empty, or a NoChannel
// error if id does not name a live channel.
func (b *Bus) TryRecv(id int) (uint32, error) {
	ch, ok := b.lookup(id)
	if !ok {
		return 0, buserr.SetLast(buserr.NoChannel)
	}
	v, ok := ch.pop()
	if !ok {
		return 0, buserr.SetLast(buserr.WouldBlock)
	}
	waitq.WakeFirst(&ch.sendQ)
	return v, buserr.SetLast(buserr.None)
}

// Recv removes the head word of channel id, suspending self on the
// channel's recv queue while the channel is empty. Symmetric to Send,
// including the chain-wake of one more waiting receiver if data
// remains after this read.
func (b *Bus) Recv(self waitq.Coroutine, id int) (uint32, error) {
	for {
		ch, ok := b.lookup(id)
		if !ok {
			return 0, buserr.SetLast(buserr.NoChannel)
		}
		v, ok := ch.pop()
		if ok {
			waitq.WakeFirst(&ch.sendQ)
			if !ch.empty() {
				waitq.WakeFirst(&ch.recvQ)
			}
			return v, buserr.SetLast(buserr.None)
		}
		waitq.Suspend(&ch.recvQ, self)
	}
}
