package corestream

// FlatMapMerge maps each upstream value to an inner signal and merges
// every inner signal's output, interleaved, into the result. Completes
// once upstream and every inner signal it produced have completed;
// fails, cancelling everything still running, on the first failure.
func FlatMapMerge[A, B, F any](s Signal[A, F], f func(A) Signal[B, F]) Signal[B, F] {
	return New(func(o Observer[B, F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		var (
			outstanding int
			sourceDone  bool
			finished    bool
		)

		maybeComplete := func() {
			if !finished && sourceDone && outstanding == 0 {
				finished = true
				o(Completed[B, F]())
			}
		}
		fail := func(err F) {
			if finished {
				return
			}
			finished = true
			o(Failed[B, F](err))
			bag.Dispose()
		}

		var subscribeInner func(A)
		subscribeInner = func(v A) {
			outstanding++
			var innerSub *Cancellation
			innerSub = f(v).Observe(func(ev Event[B, F]) {
				serial.submit(func() {
					if finished {
						return
					}
					switch {
					case ev.IsNext():
						o(ev)
					case ev.IsCompleted():
						outstanding--
						if innerSub != nil {
							bag.Remove(innerSub)
						}
						maybeComplete()
					case ev.IsFailed():
						fail(ev.Err())
					}
				})
			})
			bag.Add(innerSub)
		}

		bag.Add(s.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					subscribeInner(ev.Value())
				case ev.IsCompleted():
					sourceDone = true
					maybeComplete()
				case ev.IsFailed():
					fail(ev.Err())
				}
			})
		}))
		return bag.AsCancellation()
	})
}

// FlatMapLatest maps each upstream value to an inner signal, cancelling
// whichever inner signal is currently running as soon as a new upstream
// value arrives. Completes once upstream and the current inner signal
// have both completed.
func FlatMapLatest[A, B, F any](s Signal[A, F], f func(A) Signal[B, F]) Signal[B, F] {
	return New(func(o Observer[B, F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		var (
			innerSub   *Cancellation
			innerDone  = true
			sourceDone bool
			finished   bool
			generation int
		)

		maybeComplete := func() {
			if !finished && sourceDone && innerDone {
				finished = true
				o(Completed[B, F]())
			}
		}
		fail := func(err F) {
			if finished {
				return
			}
			finished = true
			o(Failed[B, F](err))
			bag.Dispose()
		}

		subscribeInner := func(v A) {
			if innerSub != nil {
				bag.Remove(innerSub)
				innerSub.Dispose()
			}
			generation++
			gen := generation
			innerDone = false
			var sub *Cancellation
			sub = f(v).Observe(func(ev Event[B, F]) {
				serial.submit(func() {
					if finished || gen != generation {
						return
					}
					switch {
					case ev.IsNext():
						o(ev)
					case ev.IsCompleted():
						innerDone = true
						maybeComplete()
					case ev.IsFailed():
						fail(ev.Err())
					}
				})
			})
			innerSub = sub
			bag.Add(sub)
		}

		bag.Add(s.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					subscribeInner(ev.Value())
				case ev.IsCompleted():
					sourceDone = true
					maybeComplete()
				case ev.IsFailed():
					fail(ev.Err())
				}
			})
		}))
		return bag.AsCancellation()
	})
}

// FlatMapConcat maps each upstream value to an inner signal and runs
// the inner signals one at a time, in the order their upstream values
// arrived, queuing later ones until the current inner signal completes.
func FlatMapConcat[A, B, F any](s Signal[A, F], f func(A) Signal[B, F]) Signal[B, F] {
	return New(func(o Observer[B, F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		var (
			queue      []A
			active     bool
			sourceDone bool
			finished   bool
		)

		var runNext func()
		maybeComplete := func() {
			if !finished && sourceDone && !active && len(queue) == 0 {
				finished = true
				o(Completed[B, F]())
			}
		}
		fail := func(err F) {
			if finished {
				return
			}
			finished = true
			o(Failed[B, F](err))
			bag.Dispose()
		}
		runNext = func() {
			if active || len(queue) == 0 {
				maybeComplete()
				return
			}
			v := queue[0]
			queue = queue[1:]
			active = true
			var sub *Cancellation
			sub = f(v).Observe(func(ev Event[B, F]) {
				serial.submit(func() {
					if finished {
						return
					}
					switch {
					case ev.IsNext():
						o(ev)
					case ev.IsCompleted():
						active = false
						if sub != nil {
							bag.Remove(sub)
						}
						runNext()
					case ev.IsFailed():
						fail(ev.Err())
					}
				})
			})
			bag.Add(sub)
		}

		bag.Add(s.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					queue = append(queue, ev.Value())
					runNext()
				case ev.IsCompleted():
					sourceDone = true
					maybeComplete()
				case ev.IsFailed():
					fail(ev.Err())
				}
			})
		}))
		return bag.AsCancellation()
	})
}

// FlatMapError recovers from an upstream failure by switching to a
// signal chosen from the failing error; it has no effect on a signal
// that never fails.
func FlatMapError[A, F any](s Signal[A, F], f func(F) Signal[A, F]) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		bag := NewCancellationBag()
		bag.Add(s.Observe(func(ev Event[A, F]) {
			if ev.IsFailed() {
				bag.Add(f(ev.Err()).Observe(o))
				return
			}
			o(ev)
		}))
		return bag.AsCancellation()
	})
}
