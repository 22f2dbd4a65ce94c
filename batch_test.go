// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !nobatch

package bus_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/corobus"
)

// TestPartialBatch is seed scenario 6 from SPEC_FULL.md §8: writing
// more words than free space returns exactly the free space and
// leaves the buffer holding the prefix, in order.
func TestPartialBatch(t *testing.T) {
	b := bus.New()
	id, _ := b.Open(3)

	k, err := b.TrySendBatch(id, []uint32{1, 2, 3, 4, 5})
	if err != nil || k != 3 {
		t.Fatalf("TrySendBatch = (%d, %v), want (3, nil)", k, err)
	}

	for _, want := range []uint32{1, 2, 3} {
		got, err := b.TryRecv(id)
		if err != nil || got != want {
			t.Fatalf("TryRecv = (%d, %v), want (%d, nil)", got, err, want)
		}
	}
	if _, err := b.TryRecv(id); !errors.Is(err, bus.ErrWouldBlock) {
		t.Fatalf("TryRecv on drained channel = %v, want ErrWouldBlock", err)
	}
}

func TestTrySendBatchWouldBlockOnFullChannel(t *testing.T) {
	b := bus.New()
	id, _ := b.Open(2)
	if _, err := b.TrySendBatch(id, []uint32{1, 2}); err != nil {
		t.Fatalf("fill: %v", err)
	}
	k, err := b.TrySendBatch(id, []uint32{3})
	if k != -1 || !errors.Is(err, bus.ErrWouldBlock) {
		t.Fatalf("TrySendBatch on full channel = (%d, %v), want (-1, ErrWouldBlock)", k, err)
	}
}

func TestTryRecvBatchDrainsInFIFOOrder(t *testing.T) {
	b := bus.New()
	id, _ := b.Open(4)
	_, _ = b.TrySendBatch(id, []uint32{10, 20, 30})

	out := make([]uint32, 2)
	k, err := b.TryRecvBatch(id, out)
	if err != nil || k != 2 || out[0] != 10 || out[1] != 20 {
		t.Fatalf("TryRecvBatch = (%d, %v, %v), want (2, nil, [10 20])", k, err, out)
	}
}

func TestTrySendBatchOnUnknownIDReportsNoChannel(t *testing.T) {
	b := bus.New()
	if _, err := b.TrySendBatch(99, []uint32{1}); !errors.Is(err, bus.ErrNoChannel) {
		t.Fatalf("TrySendBatch on unknown id = %v, want ErrNoChannel", err)
	}
}
