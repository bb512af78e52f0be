package corestream

// Scan emits seed immediately on subscribe, before any upstream event;
// then for each next(x) it emits f(prev, x) where prev is the last value
// it emitted. Terminals pass through.
func Scan[A, B, F any](s Signal[A, F], seed B, f func(prev B, x A) B) Signal[B, F] {
	return New(func(o Observer[B, F]) *Cancellation {
		prev := seed
		o(Next[B, F](seed))
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				prev = f(prev, ev.Value())
				o(Next[B, F](prev))
			case ev.IsCompleted():
				o(Completed[B, F]())
			case ev.IsFailed():
				o(Failed[B, F](ev.Err()))
			}
		})
	})
}

// Reduce is Scan(seed, f) kept to its last emission.
func Reduce[A, B, F any](s Signal[A, F], seed B, f func(prev B, x A) B) Signal[B, F] {
	return Suffix(Scan(s, seed, f), 1)
}

// Collect emits a single slice of every upstream value, on completion.
func Collect[A, F any](s Signal[A, F]) Signal[[]A, F] {
	return New(func(o Observer[[]A, F]) *Cancellation {
		var items []A
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				items = append(items, ev.Value())
			case ev.IsCompleted():
				o(Next[[]A, F](items))
				o(Completed[[]A, F]())
			case ev.IsFailed():
				o(Failed[[]A, F](ev.Err()))
			}
		})
	})
}

// Pair is the (previous, current) value produced by ZipPrevious. Previous
// is nil for the very first upstream value.
type Pair[A any] struct {
	Previous *A
	Current  A
}

// ZipPrevious emits (previous, current) for each upstream value.
func ZipPrevious[A, F any](s Signal[A, F]) Signal[Pair[A], F] {
	return New(func(o Observer[Pair[A], F]) *Cancellation {
		var prev *A
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				cur := ev.Value()
				o(Next[Pair[A], F](Pair[A]{Previous: prev, Current: cur}))
				saved := cur
				prev = &saved
			case ev.IsCompleted():
				o(Completed[Pair[A], F]())
			case ev.IsFailed():
				o(Failed[Pair[A], F](ev.Err()))
			}
		})
	})
}
