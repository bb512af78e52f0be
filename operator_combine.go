package corestream

// Pair2 is the (first, second) tuple produced by the two-signal
// combinators. Higher arities (Pair3..Pair6) live in
// operator_combine_gen.go, generated from this shape.
type Pair2[A, B any] struct {
	First  A
	Second B
}

// CombineLatest emits (a, b) whenever either side produces a new value,
// once both have produced at least one. Completes when both sides
// complete; fails, cancelling the other side, on the first failure.
func CombineLatest[A, B, F any](sa Signal[A, F], sb Signal[B, F]) Signal[Pair2[A, B], F] {
	return New(func(o Observer[Pair2[A, B], F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		var curA A
		var curB B
		var doneA, doneB, finished bool
		hasA, hasB := false, false

		maybeComplete := func() {
			if !finished && doneA && doneB {
				finished = true
				o(Completed[Pair2[A, B], F]())
			}
		}
		fail := func(err F) {
			if finished {
				return
			}
			finished = true
			o(Failed[Pair2[A, B], F](err))
			bag.Dispose()
		}

		bag.Add(sa.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					curA = ev.Value()
					hasA = true
					if hasB {
						o(Next[Pair2[A, B], F](Pair2[A, B]{First: curA, Second: curB}))
					}
				case ev.IsCompleted():
					doneA = true
					maybeComplete()
				case ev.IsFailed():
					fail(ev.Err())
				}
			})
		}))
		bag.Add(sb.Observe(func(ev Event[B, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					curB = ev.Value()
					hasB = true
					if hasA {
						o(Next[Pair2[A, B], F](Pair2[A, B]{First: curA, Second: curB}))
					}
				case ev.IsCompleted():
					doneB = true
					maybeComplete()
				case ev.IsFailed():
					fail(ev.Err())
				}
			})
		}))
		return bag.AsCancellation()
	})
}

// Zip emits (aₖ, bₖ) pairing upstream values by position. Completes as
// soon as either side completes and has no buffered value left to pair.
func Zip[A, B, F any](sa Signal[A, F], sb Signal[B, F]) Signal[Pair2[A, B], F] {
	return New(func(o Observer[Pair2[A, B], F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		var bufA []A
		var bufB []B
		doneA, doneB, finished := false, false, false

		drain := func() {
			for len(bufA) > 0 && len(bufB) > 0 {
				a := bufA[0]
				b := bufB[0]
				bufA = bufA[1:]
				bufB = bufB[1:]
				o(Next[Pair2[A, B], F](Pair2[A, B]{First: a, Second: b}))
			}
			if finished {
				return
			}
			if (doneA && len(bufA) == 0) || (doneB && len(bufB) == 0) {
				finished = true
				o(Completed[Pair2[A, B], F]())
			}
		}
		fail := func(err F) {
			if finished {
				return
			}
			finished = true
			o(Failed[Pair2[A, B], F](err))
			bag.Dispose()
		}

		bag.Add(sa.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					bufA = append(bufA, ev.Value())
					drain()
				case ev.IsCompleted():
					doneA = true
					drain()
				case ev.IsFailed():
					fail(ev.Err())
				}
			})
		}))
		bag.Add(sb.Observe(func(ev Event[B, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					bufB = append(bufB, ev.Value())
					drain()
				case ev.IsCompleted():
					doneB = true
					drain()
				case ev.IsFailed():
					fail(ev.Err())
				}
			})
		}))
		return bag.AsCancellation()
	})
}

// Merge interleaves events from both sides. Completes when both sides
// complete; fails on the first failure from either.
func Merge[A, F any](sa, sb Signal[A, F]) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		doneA, doneB, finished := false, false, false

		maybeComplete := func() {
			if !finished && doneA && doneB {
				finished = true
				o(Completed[A, F]())
			}
		}
		fail := func(err F) {
			if finished {
				return
			}
			finished = true
			o(Failed[A, F](err))
			bag.Dispose()
		}
		observe := func(done *bool) Observer[A, F] {
			return func(ev Event[A, F]) {
				serial.submit(func() {
					if finished {
						return
					}
					switch {
					case ev.IsNext():
						o(ev)
					case ev.IsCompleted():
						*done = true
						maybeComplete()
					case ev.IsFailed():
						fail(ev.Err())
					}
				})
			}
		}
		bag.Add(sa.Observe(observe(&doneA)))
		bag.Add(sb.Observe(observe(&doneB)))
		return bag.AsCancellation()
	})
}

// Amb subscribes to both sides; whichever delivers an event first wins —
// the other is cancelled and the winner is forwarded thereafter. Ties
// between threads are broken by the serializer's FIFO order.
func Amb[A, F any](sa, sb Signal[A, F]) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		decided := false
		winner := 0
		var subA, subB *Cancellation

		decide := func(side int) bool {
			if decided {
				return side == winner
			}
			decided = true
			winner = side
			return true
		}

		subA = sa.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if !decide(1) {
					return
				}
				if subB != nil {
					subB.Dispose()
				}
				o(ev)
			})
		})
		bag.Add(subA)
		subB = sb.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if !decide(2) {
					return
				}
				if subA != nil {
					subA.Dispose()
				}
				o(ev)
			})
		})
		bag.Add(subB)
		return bag.AsCancellation()
	})
}

// WithLatestFrom emits (a, latestB) for each primary value, only once
// other has produced at least one value. Completes when primary
// completes; fails if either side fails.
func WithLatestFrom[A, B, F any](primary Signal[A, F], other Signal[B, F]) Signal[Pair2[A, B], F] {
	return New(func(o Observer[Pair2[A, B], F]) *Cancellation {
		serial := newSerializer()
		bag := NewCancellationBag()
		var latestB B
		hasB := false
		finished := false

		bag.Add(other.Observe(func(ev Event[B, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					latestB = ev.Value()
					hasB = true
				case ev.IsFailed():
					finished = true
					o(Failed[Pair2[A, B], F](ev.Err()))
					bag.Dispose()
				}
			})
		}))
		bag.Add(primary.Observe(func(ev Event[A, F]) {
			serial.submit(func() {
				if finished {
					return
				}
				switch {
				case ev.IsNext():
					if hasB {
						o(Next[Pair2[A, B], F](Pair2[A, B]{First: ev.Value(), Second: latestB}))
					}
				case ev.IsCompleted():
					finished = true
					o(Completed[Pair2[A, B], F]())
					bag.Dispose()
				case ev.IsFailed():
					finished = true
					o(Failed[Pair2[A, B], F](ev.Err()))
					bag.Dispose()
				}
			})
		}))
		return bag.AsCancellation()
	})
}
