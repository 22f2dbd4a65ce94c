// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus

import "code.hybscloud.com/corobus/internal/buserr"

// Bus owns the descriptor table: a dense array of channel slots
// indexed by the integer ids handed out by Open. Once assigned, an id
// never changes for the lifetime of its channel. Empty slots (from a
// prior Close) are reused preferentially on the next Open; only when
// none exist does the table grow, doubling in size.
//
// A Bus is not safe for concurrent use by real OS threads: it assumes
// every call arrives from the single coroutine scheduler thread
// (SPEC_FULL.md §5; see [code.hybscloud.com/corobus/corort]).
type Bus struct {
	id     serial
	slots  []*channel
	opens  int
	closes int
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{id: nextSerial()}
}

// ID returns the monotonic serial assigned to b at creation.
func (b *Bus) ID() uint32 { return b.id }

// Stats is a read-only snapshot of descriptor-table activity.
type Stats struct {
	OpenChannels int
	TotalOpens   int
	TotalCloses  int
}

// Stats reports the current descriptor-table occupancy and lifetime
// open/close counts.
func (b *Bus) Stats() Stats {
	if b == nil {
		return Stats{}
	}
	live := 0
	for _, ch := range b.slots {
		if ch != nil {
			live++
		}
	}
	return Stats{OpenChannels: live, TotalOpens: b.opens, TotalCloses: b.closes}
}

// Open installs a new channel of the given capacity (a non-positive
// capacity is coerced to 1) and returns its id. Reuses the lowest
// empty slot if one exists; otherwise grows the table to
// max(2, 2*len) and installs the channel at the new tail index.
//
// Returns -1 with a NoChannel error if b is nil.
func (b *Bus) Open(capacity int) (int, error) {
	if b == nil {
		return -1, buserr.SetLast(buserr.NoChannel)
	}
	for i, ch := range b.slots {
		if ch == nil {
			b.slots[i] = newChannel(capacity)
			b.opens++
			buserr.SetLast(buserr.None)
			return i, nil
		}
	}
	old := len(b.slots)
	grown := make([]*channel, max(2, 2*old))
	copy(grown, b.slots)
	b.slots = grown
	b.slots[old] = newChannel(capacity)
	b.opens++
	buserr.SetLast(buserr.None)
	return old, nil
}

// lookup resolves id to its live channel. Returns false if b is nil,
// id is out of range, or the slot is currently empty (never opened,
// or closed).
func (b *Bus) lookup(id int) (*channel, bool) {
	if b == nil || id < 0 || id >= len(b.slots) || b.slots[id] == nil {
		return nil, false
	}
	return b.slots[id], true
}

// Delete closes every live channel, waking any suspended waiters with
// NoChannel, then releases the descriptor table. b must not be used
// afterward.
func (b *Bus) Delete() {
	if b == nil {
		return
	}
	for id, ch := range b.slots {
		if ch != nil {
			b.Close(id)
		}
	}
	b.slots = nil
}
