// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus

import "code.hybscloud.com/corobus/internal/waitq"

// channel is a bounded FIFO of words plus its two wait-queues.
// Invariants (hold at every quiescent point, i.e. between any two of
// this package's own suspension points):
//
//	I1: 0 <= count <= capacity
//	I2: sendQ non-empty => count == capacity at the moment they suspended
//	I3: recvQ non-empty => count == 0 at the moment they suspended
//	I4: sendQ and recvQ are never simultaneously non-empty (capacity > 0
//	    rules out the only way I2 and I3 could hold at once)
//
// The buffer is a plain ring slice, not a lock-free queue: it is
// mutated only by whichever coroutine currently holds the scheduler,
// between its own suspension points, so there is never concurrent
// access to guard against (see DESIGN.md for why lfq was dropped).
type channel struct {
	capacity int
	buf      []uint32
	head     int
	count    int
	sendQ    waitq.Queue
	recvQ    waitq.Queue
}

// newChannel creates a channel of the given capacity, coercing a
// non-positive request to 1.
func newChannel(capacity int) *channel {
	if capacity <= 0 {
		capacity = 1
	}
	return &channel{capacity: capacity, buf: make([]uint32, capacity)}
}

// full reports whether the buffer holds capacity words.
func (c *channel) full() bool { return c.count == c.capacity }

// empty reports whether the buffer holds no words.
func (c *channel) empty() bool { return c.count == 0 }

// free returns how many more words the buffer can accept right now.
func (c *channel) free() int { return c.capacity - c.count }

// push appends v to the buffer tail. Reports false (no mutation) if
// the buffer is already full.
func (c *channel) push(v uint32) bool {
	if c.full() {
		return false
	}
	idx := (c.head + c.count) % c.capacity
	c.buf[idx] = v
	c.count++
	return true
}

// pop removes and returns the buffer head. Reports false (no mutation)
// if the buffer is empty.
func (c *channel) pop() (uint32, bool) {
	if c.empty() {
		return 0, false
	}
	v := c.buf[c.head]
	c.head = (c.head + 1) % c.capacity
	c.count--
	return v, true
}
