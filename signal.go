package corestream

import (
	"sync/atomic"
	"time"
)

// Observer is the one-way sink events are delivered to.
type Observer[Element any, Failure any] func(Event[Element, Failure])

// Signal is a value describing a producer: it carries no state of its
// own, only a start behavior that, given a downstream observer, begins
// production and returns a Cancellation.
type Signal[Element any, Failure any] struct {
	start func(Observer[Element, Failure]) *Cancellation
}

// New builds a Signal from its start behavior. Most callers want one of
// the named constructors below or an operator instead of calling New
// directly.
func New[Element any, Failure any](start func(Observer[Element, Failure]) *Cancellation) Signal[Element, Failure] {
	if start == nil {
		start = func(Observer[Element, Failure]) *Cancellation { return NonDisposable }
	}
	return Signal[Element, Failure]{start: start}
}

// Observe begins production: it invokes the producer with a guarded
// observer (one that drops, or in debug builds panics on, any event
// delivered after a terminal one) and returns the resulting Cancellation.
func (s Signal[Element, Failure]) Observe(observer Observer[Element, Failure]) *Cancellation {
	if observer == nil {
		observer = func(Event[Element, Failure]) {}
	}
	return s.start(guardTerminal(observer))
}

func guardTerminal[Element any, Failure any](next Observer[Element, Failure]) Observer[Element, Failure] {
	var sealed atomic.Bool
	return func(ev Event[Element, Failure]) {
		if sealed.Load() {
			if debug {
				panic("corestream: event delivered to a subscription after its terminal event")
			}
			return
		}
		if ev.IsTerminal() {
			sealed.Store(true)
		}
		next(ev)
	}
}

// Just emits v once, then completes.
func Just[Element any, Failure any](v Element) Signal[Element, Failure] {
	return New(func(o Observer[Element, Failure]) *Cancellation {
		o(Next[Element, Failure](v))
		o(Completed[Element, Failure]())
		return NonDisposable
	})
}

// Empty completes immediately without ever emitting.
func Empty[Element any, Failure any]() Signal[Element, Failure] {
	return New(func(o Observer[Element, Failure]) *Cancellation {
		o(Completed[Element, Failure]())
		return NonDisposable
	})
}

// Never never emits and never terminates.
func Never[Element any, Failure any]() Signal[Element, Failure] {
	return New(func(o Observer[Element, Failure]) *Cancellation {
		return NonDisposable
	})
}

// Fail fails immediately with err.
func Fail[Element, Failure any](err Failure) Signal[Element, Failure] {
	return New(func(o Observer[Element, Failure]) *Cancellation {
		o(Failed[Element, Failure](err))
		return NonDisposable
	})
}

// FromSlice emits each element of items in order, then completes. The
// producer is re-run per subscription (cold).
func FromSlice[Element any, Failure any](items []Element) Signal[Element, Failure] {
	return New(func(o Observer[Element, Failure]) *Cancellation {
		for _, v := range items {
			o(Next[Element, Failure](v))
		}
		o(Completed[Element, Failure]())
		return NonDisposable
	})
}

// FromSliceInterval emits each element of items in order, delaying by
// interval between emissions, sourcing time from ctx. Cancelling the
// subscription disarms any pending timer.
func FromSliceInterval[Element any, Failure any](items []Element, interval time.Duration, ctx TimerContext) Signal[Element, Failure] {
	return New(func(o Observer[Element, Failure]) *Cancellation {
		bag := NewCancellationBag()
		var emit func(i int)
		emit = func(i int) {
			if i >= len(items) {
				o(Completed[Element, Failure]())
				return
			}
			o(Next[Element, Failure](items[i]))
			bag.Add(ctx.ScheduleAfter(interval, func() { emit(i + 1) }))
		}
		emit(0)
		return bag.AsCancellation()
	})
}
