// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus

import "code.hybscloud.com/corobus/internal/waitq"

// Close tears down the channel at id while coroutines may be suspended
// on either of its wait-queues. Idempotent: closing an already-closed
// or never-opened id is a silent no-op.
//
// Protocol (the subtlest invariant in the system, SPEC_FULL.md §5.6):
//
//  1. Detach the channel from the descriptor table before any wake.
//     Any woken coroutine that re-enters Send/Recv now observes
//     NoChannel at lookup and returns cleanly, never touching the
//     torn-down channel.
//  2. Wake every waiter on sendQ, then every waiter on recvQ.
//     WakeAll pops each head entry before signaling it (waker-unlinks:
//     the woken coroutine's own unlink in Suspend's epilogue is then a
//     safe no-op), so this requires no cooperation or yielding from
//     Close itself.
//  3. The channel's storage is released once unreferenced (ordinary Go
//     GC; there is no separate free step to perform).
//
// The alternative "waiter-unlinks" variant from SPEC_FULL.md §5.6,
// where the closer itself yields until each queue head advances, is
// not implemented here: it requires the closer to be a coroutine, and
// offers no advantage once waker-unlinks is available.
func (b *Bus) Close(id int) {
	ch, ok := b.lookup(id)
	if !ok {
		return
	}
	b.slots[id] = nil
	b.closes++
	waitq.WakeAll(&ch.sendQ)
	waitq.WakeAll(&ch.recvQ)
}
