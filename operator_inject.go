package corestream

// Prepend emits v synchronously on subscribe, then pipes upstream.
func Prepend[A, F any](s Signal[A, F], v A) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		o(Next[A, F](v))
		return s.Observe(o)
	})
}

// Append subscribes to other when upstream completes and pipes it
// through in its place. A failure from either side terminates
// immediately.
func Append[A, F any](s Signal[A, F], other Signal[A, F]) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		bag := NewCancellationBag()
		bag.Add(s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsCompleted():
				bag.Add(other.Observe(o))
			default:
				o(ev)
			}
		}))
		return bag.AsCancellation()
	})
}

// ReplaceEmpty emits v then completes if upstream completes having never
// emitted a value.
func ReplaceEmpty[A, F any](s Signal[A, F], v A) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		emitted := false
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				emitted = true
				o(ev)
			case ev.IsCompleted():
				if !emitted {
					o(Next[A, F](v))
				}
				o(Completed[A, F]())
			default:
				o(ev)
			}
		})
	})
}
