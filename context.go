package corestream

import "time"

// ExecutionContext abstracts a scheduler able to enqueue a nullary action.
// Operators that take an ExecutionContext defer delivery through it; every
// other operator delivers synchronously on the upstream's calling thread.
type ExecutionContext interface {
	Schedule(action func())
}

// TimerContext is an ExecutionContext that can also arm a one-shot timer.
// timeout, the interval-based sequence constructor, and delayed operators
// all source time this way rather than calling time.AfterFunc directly, so
// tests can swap in VirtualContext.
type TimerContext interface {
	ExecutionContext
	ScheduleAfter(d time.Duration, action func()) *Cancellation
}

// AffineContext is an ExecutionContext that can route an action to a
// specific worker by an affinity key, so repeated calls with the same key
// are totally ordered without an extra lock. WorkerPoolContext is the only
// implementation. subscribe(on:) and receive(on:) call plain Schedule on
// every context, affine or not.
type AffineContext interface {
	ExecutionContext
	ScheduleAffinity(key string, action func())
}

type immediateContext struct{}

// Immediate runs every action synchronously, before Schedule returns.
var Immediate TimerContext = immediateContext{}

func (immediateContext) Schedule(action func()) { action() }

func (immediateContext) ScheduleAfter(d time.Duration, action func()) *Cancellation {
	timer := time.AfterFunc(d, action)
	return NewCancellation(func() { timer.Stop() })
}
