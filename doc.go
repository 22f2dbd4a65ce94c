// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bus provides a cooperative in-process message bus: a
// dynamically grown family of bounded FIFO channels of uint32 words,
// multiplexed between coroutines cooperating on a single scheduler
// thread (see [code.hybscloud.com/corobus/corort]).
//
// # Architecture
//
//   - Descriptor table: dense integer channel ids with hole reuse and
//     doubling growth. [Bus.Open] installs a channel, [Bus.Close] tears
//     one down.
//   - Channel: a bounded ring buffer of words plus a send wait-queue and
//     a recv wait-queue ([code.hybscloud.com/corobus/internal/waitq]).
//   - Non-blocking: [Bus.TrySend]/[Bus.TryRecv] and the batch/broadcast
//     variants return [code.hybscloud.com/iox.ErrWouldBlock] on
//     backpressure, never suspending.
//   - Blocking: [Bus.Send]/[Bus.Recv] suspend the caller's
//     [code.hybscloud.com/corobus/corort.Coroutine] on the appropriate
//     wait-queue and retry once woken.
//   - Close: detach-before-wake, waker-unlinks (see close.go).
//   - Batch & broadcast: optional, built unless the nobatch build tag
//     is set (see batch_stub.go, broadcast_stub.go).
//
// # Error handling
//
// Every operation returns an idiomatic Go error (nil, [iox.ErrWouldBlock],
// or a [code.hybscloud.com/corobus/internal/buserr.Error]) and also
// updates the process-wide last-error cell read by
// [code.hybscloud.com/corobus/internal/buserr.Last], the compatibility
// shim described in SPEC_FULL.md §3.
//
// # Example
//
//	rt := corort.NewRuntime()
//	b := bus.New()
//	id, _ := b.Open(1)
//
//	rt.Go(func(self *corort.Coroutine) {
//		_ = b.Send(self, id, 42)
//	})
//	rt.Go(func(self *corort.Coroutine) {
//		v, _ := b.Recv(self, id)
//		fmt.Println(v) // 42
//	})
//	rt.Run()
package bus
