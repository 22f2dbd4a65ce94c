// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package waitq implements the ordered wait-queue of suspended
// coroutines that a bounded channel signals on.
package waitq

// Coroutine is the subset of the coroutine-runtime collaborator a
// wait-queue needs: a handle can suspend itself and be woken by
// another. Satisfied structurally by *corort.Coroutine.
type Coroutine interface {
	Suspend()
	Wake()
}

// Entry links one suspended coroutine into a Queue. Its zero value is
// unlinked. An Entry is meant to live on the suspending coroutine's own
// stack frame (a local variable in the caller of Suspend); the Queue
// only ever holds a pointer to it.
type Entry struct {
	q          *Queue
	prev, next *Entry
	handle     Coroutine
}

// linked reports whether e is currently part of a Queue.
func (e *Entry) linked() bool { return e.q != nil }

// unlink removes e from whatever queue holds it. Idempotent: unlinking
// an already-unlinked (or never-linked) entry is a no-op, which is what
// lets a woken coroutine call unlink in its own epilogue safely even
// though the waker already popped it.
func (e *Entry) unlink() {
	if !e.linked() {
		return
	}
	q := e.q
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		q.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		q.tail = e.prev
	}
	e.prev, e.next, e.q = nil, nil, nil
}

// Queue is an ordered, intrusive list of suspended coroutines. The zero
// value is an empty queue.
type Queue struct {
	head, tail *Entry
}

// Empty reports whether no coroutine is suspended on q.
func (q *Queue) Empty() bool { return q.head == nil }

func (q *Queue) pushTail(e *Entry) {
	e.q = q
	e.prev = q.tail
	e.next = nil
	if q.tail != nil {
		q.tail.next = e
	} else {
		q.head = e
	}
	q.tail = e
}

func (q *Queue) popHead() *Entry {
	e := q.head
	if e == nil {
		return nil
	}
	e.unlink()
	return e
}

// Suspend appends a fresh Entry bound to h to the tail of q, then
// blocks h until it is woken. On return the entry is guaranteed
// unlinked from q (or from wherever a waker moved it), whether that
// happened via WakeFirst's pop or via this call's own epilogue.
func Suspend(q *Queue, h Coroutine) {
	e := Entry{handle: h}
	q.pushTail(&e)
	h.Suspend()
	e.unlink()
}

// WakeFirst wakes the coroutine suspended longest on q, if any. It pops
// the head entry before signaling the coroutine so that two wakers can
// never target the same waiter and so the woken coroutine's own unlink
// is a safe no-op. Reports whether a waiter was woken.
func WakeFirst(q *Queue) bool {
	e := q.popHead()
	if e == nil {
		return false
	}
	e.handle.Wake()
	return true
}

// WakeAll wakes every coroutine currently suspended on q, in FIFO
// order, and returns how many were woken.
func WakeAll(q *Queue) int {
	n := 0
	for WakeFirst(q) {
		n++
	}
	return n
}
