// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buserr

import (
	"errors"
	"testing"

	"code.hybscloud.com/iox"
)

func TestSetLastRoundTrip(t *testing.T) {
	SetLast(NoChannel)
	if Last() != NoChannel {
		t.Fatalf("Last() = %v, want %v", Last(), NoChannel)
	}
	SetLast(None)
	if Last() != None {
		t.Fatalf("Last() = %v, want %v", Last(), None)
	}
}

func TestSetLastReturnsNilOnNone(t *testing.T) {
	if err := SetLast(None); err != nil {
		t.Fatalf("SetLast(None) = %v, want nil", err)
	}
}

func TestSetLastWouldBlockIsIoxSentinel(t *testing.T) {
	err := SetLast(WouldBlock)
	if !iox.IsWouldBlock(err) {
		t.Fatalf("SetLast(WouldBlock) = %v, want iox.ErrWouldBlock", err)
	}
	if !errors.Is(err, iox.ErrWouldBlock) {
		t.Fatal("errors.Is should match iox.ErrWouldBlock")
	}
}

func TestErrorIsBySentinel(t *testing.T) {
	err := SetLast(NoChannel)
	if !errors.Is(err, ErrNoChannel) {
		t.Fatal("errors.Is should match ErrNoChannel")
	}
	if errors.Is(err, ErrNotImplemented) {
		t.Fatal("errors.Is should not match a different sentinel")
	}
}
