package corestream

import "time"

// Timeout forwards upstream events, but fails with err if no event
// (next, completed, or failed) arrives within d of the previous one,
// or of subscription. The timer is scheduled and rearmed on ctx.
func Timeout[A, F any](s Signal[A, F], d time.Duration, err F, ctx TimerContext) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		bag := NewCancellationBag()
		serial := newSerializer()
		finished := false
		var timer *Cancellation

		fireTimeout := func() {
			serial.submit(func() {
				if finished {
					return
				}
				finished = true
				o(Failed[A, F](err))
				bag.Dispose()
			})
		}
		rearm := func() {
			if timer != nil {
				timer.Dispose()
			}
			timer = ctx.ScheduleAfter(d, fireTimeout)
		}

		rearm()
		bag.Add(s.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				if ev.IsNext() {
					rearm()
					o(ev)
					return
				}
				finished = true
				if timer != nil {
					timer.Dispose()
				}
				o(ev)
			})
		}))
		return bag.AsCancellation()
	})
}

// Pausable suppresses upstream next events while control's latest value
// is false, resuming delivery once it becomes true. Terminal events
// always pass through regardless of control's state.
func Pausable[A, F any](s Signal[A, F], control Signal[bool, F]) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		paused := true

		bag.Add(control.Observe(func(ev Event[bool, F]) {
			serial.submit(func() {
				if ev.IsNext() {
					paused = !ev.Value()
				}
			})
		}))
		bag.Add(s.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if ev.IsNext() && paused {
					return
				}
				o(ev)
			})
		}))
		return bag.AsCancellation()
	})
}

// Retry resubscribes to s up to n additional times after a failure,
// forwarding the final failure once the retry budget is exhausted.
func Retry[A, F any](s Signal[A, F], n int) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		bag := NewCancellationBag()
		attempts := 0

		var subscribe func()
		subscribe = func() {
			var sub *Cancellation
			sub = s.Observe(func(ev Event[A, F]) {
				if ev.IsFailed() {
					if attempts < n {
						attempts++
						if sub != nil {
							bag.Remove(sub)
						}
						subscribe()
						return
					}
				}
				o(ev)
			})
			bag.Add(sub)
		}
		subscribe()
		return bag.AsCancellation()
	})
}

// EventHandlers are the optional side-effect hooks HandleEvents invokes
// as a signal is observed, independent of how its output is consumed.
type EventHandlers[A, F any] struct {
	ReceiveSubscription func()
	ReceiveOutput       func(Event[A, F])
	ReceiveCompletion   func(Event[A, F])
	ReceiveCancel       func()
}

// HandleEvents taps the lifecycle of a subscription to s without
// altering what is delivered downstream.
func HandleEvents[A, F any](s Signal[A, F], h EventHandlers[A, F]) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		if h.ReceiveSubscription != nil {
			h.ReceiveSubscription()
		}
		terminated := false
		sub := s.Observe(func(ev Event[A, F]) {
			if h.ReceiveOutput != nil {
				h.ReceiveOutput(ev)
			}
			if ev.IsTerminal() {
				terminated = true
				if h.ReceiveCompletion != nil {
					h.ReceiveCompletion(ev)
				}
			}
			o(ev)
		})
		if h.ReceiveCancel == nil {
			return sub
		}
		onCancel := h.ReceiveCancel
		return NewCancellation(func() {
			sub.Dispose()
			if !terminated {
				onCancel()
			}
		})
	})
}
