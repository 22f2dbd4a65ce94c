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

// TryBroadcast appends word to every live channel, atomically: either
// every channel gets the word or none do. Two passes, check then
// commit — correct without locking because the scheduler is
// single-threaded and the check pass performs no suspension, so its
// result is still authoritative at commit time.
//
// Returns NoChannel if the bus has no live channels, or
// iox.ErrWouldBlock (mutating nothing) if any live channel is full.
func (b *Bus) TryBroadcast(word uint32) error {
	live := false
	for _, ch := range b.slots {
		if ch == nil {
			continue
		}
		live = true
		if ch.full() {
			return buserr.SetLast(buserr.WouldBlock)
		}
	}
	if !live {
		return buserr.SetLast(buserr.NoChannel)
	}
	for _, ch := range b.slots {
		if ch == nil {
			continue
		}
		ch.push(word)
		waitq.WakeFirst(&ch.recvQ)
	}
	return buserr.SetLast(buserr.None)
}

// firstFullChannel returns the first live channel whose buffer is at
// capacity, or nil if none is (the would-block condition may have
// already cleared by the time Broadcast looks again).
func (b *Bus) firstFullChannel() *channel {
	for _, ch := range b.slots {
		if ch != nil && ch.full() {
			return ch
		}
	}
	return nil
}

// Broadcast appends word to every live channel, suspending self when
// any channel is full and retrying the whole two-pass algorithm once
// woken — the set of live channels may have changed while suspended.
// Returns NoChannel if the bus becomes empty at any point in the loop.
func (b *Bus) Broadcast(self waitq.Coroutine, word uint32) error {
	for {
		err := b.TryBroadcast(word)
		if err == nil {
			return nil
		}
		if !errors.Is(err, iox.ErrWouldBlock) {
			return err
		}
		full := b.firstFullChannel()
		if full == nil {
			continue
		}
		waitq.Suspend(&full.sendQ, self)
	}
}
