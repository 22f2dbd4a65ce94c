// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package corort provides a minimal single-threaded cooperative
// coroutine runtime: the this_coro/suspend/wake/yield collaborator that
// the bus core treats as an external dependency.
//
// Exactly one coroutine runs at a time. Suspend, Wake, and Yield never
// touch a lock on the caller's behalf beyond the runtime's own ready-list
// bookkeeping; callers above this package (waitq, bus) hold no locks of
// their own because the runtime guarantees single-threaded execution.
package corort

import "sync"

// Coroutine is one cooperatively scheduled execution context, backed by
// its own goroutine. The zero value is not usable; obtain one from
// [Runtime.Go].
type Coroutine struct {
	rt     *Runtime
	resume chan struct{}
}

// Suspend gives up the scheduler until another coroutine calls Wake on
// this handle. It is this_coro()'s own suspend() call: a coroutine may
// only suspend itself.
func (co *Coroutine) Suspend() {
	rt := co.rt
	rt.mu.Lock()
	rt.current = nil
	rt.mu.Unlock()
	rt.scheduleNext()
	<-co.resume
}

// Wake marks a suspended coroutine runnable again. It does not itself
// yield the scheduler: the caller keeps running until its own
// Suspend/Yield/return.
func (co *Coroutine) Wake() {
	rt := co.rt
	rt.mu.Lock()
	rt.ready = append(rt.ready, co)
	rt.mu.Unlock()
}

// Yield voluntarily gives up the scheduler without leaving runnable
// state: the caller is re-enqueued at the tail of the ready list and
// resumes once its turn comes back around.
func (co *Coroutine) Yield() {
	rt := co.rt
	rt.mu.Lock()
	rt.current = nil
	rt.ready = append(rt.ready, co)
	rt.mu.Unlock()
	rt.scheduleNext()
	<-co.resume
}

// Runtime is the scheduler owning the ready list and the single token
// that marks which coroutine is currently executing.
type Runtime struct {
	mu      sync.Mutex
	ready   []*Coroutine
	current *Coroutine
	wg      sync.WaitGroup
}

// NewRuntime creates an empty cooperative runtime.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Go spawns f as a new coroutine and enqueues it as runnable. f receives
// its own handle to call Suspend/Wake/Yield on (the this_coro() value).
func (rt *Runtime) Go(f func(self *Coroutine)) *Coroutine {
	co := &Coroutine{rt: rt, resume: make(chan struct{}, 1)}
	rt.wg.Add(1)
	rt.mu.Lock()
	rt.ready = append(rt.ready, co)
	rt.mu.Unlock()

	go func() {
		<-co.resume
		f(co)
		rt.mu.Lock()
		rt.current = nil
		rt.mu.Unlock()
		rt.wg.Done()
		rt.scheduleNext()
	}()
	return co
}

// scheduleNext hands the token to the head of the ready list if no
// coroutine currently holds it.
func (rt *Runtime) scheduleNext() {
	rt.mu.Lock()
	if rt.current != nil || len(rt.ready) == 0 {
		rt.mu.Unlock()
		return
	}
	next := rt.ready[0]
	rt.ready = rt.ready[1:]
	rt.current = next
	rt.mu.Unlock()
	next.resume <- struct{}{}
}

// Run starts the scheduler and blocks the calling goroutine until every
// spawned coroutine has returned. If a coroutine stays suspended with no
// further wakers, Run never returns.
func (rt *Runtime) Run() {
	rt.scheduleNext()
	rt.wg.Wait()
}
