package corestream

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// WorkerPoolContext is a fixed pool of goroutines. ScheduleAffinity hashes
// the given key with xxhash and routes the action to worker
// hash(key) % len(workers), so every action submitted with the same key
// lands on the same goroutine and is therefore ordered relative to every
// other action sharing that key, with no additional lock needed. Schedule
// (no key) spreads load round-robin instead.
type WorkerPoolContext struct {
	workers []chan func()
	done    chan struct{}
	closeMu sync.Mutex
	closed  bool
	next    uint64
	nextMu  sync.Mutex
}

// NewWorkerPoolContext starts n worker goroutines, each with its own
// buffered inbox. n < 1 is treated as 1.
func NewWorkerPoolContext(n int) *WorkerPoolContext {
	if n < 1 {
		n = 1
	}
	wp := &WorkerPoolContext{
		workers: make([]chan func(), n),
		done:    make(chan struct{}),
	}
	for i := range wp.workers {
		ch := make(chan func(), 256)
		wp.workers[i] = ch
		go wp.run(ch)
	}
	return wp
}

func (wp *WorkerPoolContext) run(inbox chan func()) {
	for {
		select {
		case action := <-inbox:
			action()
		case <-wp.done:
			return
		}
	}
}

// Schedule enqueues action on the next worker in round-robin order.
func (wp *WorkerPoolContext) Schedule(action func()) {
	wp.nextMu.Lock()
	idx := int(wp.next % uint64(len(wp.workers)))
	wp.next++
	wp.nextMu.Unlock()
	wp.workers[idx] <- action
}

// ScheduleAffinity enqueues action on the worker selected by hashing key.
func (wp *WorkerPoolContext) ScheduleAffinity(key string, action func()) {
	if key == "" {
		wp.Schedule(action)
		return
	}
	idx := int(xxhash.Sum64String(key) % uint64(len(wp.workers)))
	wp.workers[idx] <- action
}

// ScheduleAfter arms a timer that, on firing, schedules action round-robin.
// Stopping the returned Cancellation disarms the timer.
func (wp *WorkerPoolContext) ScheduleAfter(d time.Duration, action func()) *Cancellation {
	timer := time.AfterFunc(d, func() { wp.Schedule(action) })
	return NewCancellation(func() { timer.Stop() })
}

// Close stops every worker goroutine. Actions already enqueued but not yet
// run are dropped.
func (wp *WorkerPoolContext) Close() {
	wp.closeMu.Lock()
	defer wp.closeMu.Unlock()
	if wp.closed {
		return
	}
	wp.closed = true
	close(wp.done)
}
