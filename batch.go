// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !nobatch

package bus

import (
	"errors"

	"code.hybscloud.com/corobus/internal/buserr"
	"code.hybscloud.com/corobus/internal/waitq"
	"code.hybscloud.com/iox"
)

// TrySendBatch writes a prefix of data to channel id without blocking,
// writing as many words as fit and returning that count. count is
// len(data); the original "null pointer with non-zero count" argument
// error this op can report in a strict-compatibility port is not
// representable here (a nil slice always has len 0 in Go), so that
// path is omitted — see DESIGN.md's resolution of this Open Question.
//
// Returns (-1, iox.ErrWouldBlock) if no word can be written (the
// channel is already full, or data is empty), or (-1, NoChannel) if id
// does not name a live channel. Otherwise
// returns (k, nil) with 0 < k <= len(data); k < len(data) is a
// successful partial write, not an error.
func (b *Bus) TrySendBatch(id int, data []uint32) (int, error) {
	ch, ok := b.lookup(id)
	if !ok {
		return -1, buserr.SetLast(buserr.NoChannel)
	}
	k := min(len(data), ch.free())
	if k == 0 {
		return -1, buserr.SetLast(buserr.WouldBlock)
	}
	for _, v := range data[:k] {
		ch.push(v)
	}
	for i := 0; i < k; i++ {
		waitq.WakeFirst(&ch.recvQ)
	}
	buserr.SetLast(buserr.None)
	return k, nil
}

// SendBatch writes data to channel id, suspending self on the send
// queue while zero progress is possible. Returns as soon as any
// progress is made, which may be fewer than len(data) words — callers
// that need every word delivered call SendBatch in a loop over the
// unwritten remainder.
func (b *Bus) SendBatch(self waitq.Coroutine, id int, data []uint32) (int, error) {
	for {
		k, err := b.TrySendBatch(id, data)
		if err == nil {
			return k, nil
		}
		if !errors.Is(err, iox.ErrWouldBlock) {
			return -1, err
		}
		ch, ok := b.lookup(id)
		if !ok {
			return -1, buserr.SetLast(buserr.NoChannel)
		}
		waitq.Suspend(&ch.sendQ, self)
	}
}

// TryRecvBatch drains up to len(out) words from channel id into out
// without blocking, returning how many were written. Symmetric to
// TrySendBatch.
func (b *Bus) TryRecvBatch(id int, out []uint32) (int, error) {
	ch, ok := b.lookup(id)
	if !ok {
		return -1, buserr.SetLast(buserr.NoChannel)
	}
	k := min(len(out), ch.count)
	if k == 0 {
		return -1, buserr.SetLast(buserr.WouldBlock)
	}
	for i := 0; i < k; i++ {
		out[i], _ = ch.pop()
	}
	for i := 0; i < k; i++ {
		waitq.WakeFirst(&ch.sendQ)
	}
	buserr.SetLast(buserr.None)
	return k, nil
}

// RecvBatch drains channel id into out, suspending self on the recv
// queue while zero progress is possible. Symmetric to SendBatch.
func (b *Bus) RecvBatch(self waitq.Coroutine, id int, out []uint32) (int, error) {
	for {
		k, err := b.TryRecvBatch(id, out)
		if err == nil {
			return k, nil
		}
		if !errors.Is(err, iox.ErrWouldBlock) {
			return -1, err
		}
		ch, ok := b.lookup(id)
		if !ok {
			return -1, buserr.SetLast(buserr.NoChannel)
		}
		waitq.Suspend(&ch.recvQ, self)
	}
}
