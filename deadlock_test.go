// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus_test

import (
	"testing"
	"time"

	"code.hybscloud.com/corobus"
	"code.hybscloud.com/corobus/corort"
)

// TestRecvOnEverEmptyChannelParksWithoutPanicking exercises the path
// where a coroutine suspends on an empty channel that nothing ever
// sends to or closes: Run must simply never return, not panic or spin.
// Run executes on its own goroutine here so the test can bound how
// long it waits for the (expected) non-completion.
func TestRecvOnEverEmptyChannelParksWithoutPanicking(t *testing.T) {
	b := bus.New()
	id, _ := b.Open(1)
	rt := corort.NewRuntime()

	rt.Go(func(self *corort.Coroutine) {
		_, _ = b.Recv(self, id)
	})

	done := make(chan struct{})
	go func() {
		rt.Run()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned even though the receiver is still parked")
	case <-time.After(50 * time.Millisecond):
		// expected: the coroutine is parked, Run is still blocked on wg.Wait
	}
}
