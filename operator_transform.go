package corestream

import "log"

// Map emits f(x) for each upstream next(x); terminals pass through.
func Map[A, B, F any](s Signal[A, F], f func(A) B) Signal[B, F] {
	return New(func(o Observer[B, F]) *Cancellation {
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				o(Next[B, F](f(ev.Value())))
			case ev.IsCompleted():
				o(Completed[B, F]())
			case ev.IsFailed():
				o(Failed[B, F](ev.Err()))
			}
		})
	})
}

// Filter emits x iff p(x). Terminals always pass through.
func Filter[A, F any](s Signal[A, F], p func(A) bool) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		return s.Observe(func(ev Event[A, F]) {
			if ev.IsNext() && !p(ev.Value()) {
				return
			}
			o(ev)
		})
	})
}

// IgnoreOutput swallows every next event; terminals pass through.
func IgnoreOutput[A, F any](s Signal[A, F]) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		return s.Observe(func(ev Event[A, F]) {
			if ev.IsNext() {
				return
			}
			o(ev)
		})
	})
}

// IgnoreNils emits only the non-nil upstream values, unwrapped.
func IgnoreNils[A, F any](s Signal[*A, F]) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		return s.Observe(func(ev Event[*A, F]) {
			switch {
			case ev.IsNext():
				if v := ev.Value(); v != nil {
					o(Next[A, F](*v))
				}
			case ev.IsCompleted():
				o(Completed[A, F]())
			case ev.IsFailed():
				o(Failed[A, F](ev.Err()))
			}
		})
	})
}

// ReplaceNils substitutes def for each nil upstream value.
func ReplaceNils[A, F any](s Signal[*A, F], def A) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		return s.Observe(func(ev Event[*A, F]) {
			switch {
			case ev.IsNext():
				if v := ev.Value(); v != nil {
					o(Next[A, F](*v))
				} else {
					o(Next[A, F](def))
				}
			case ev.IsCompleted():
				o(Completed[A, F]())
			case ev.IsFailed():
				o(Failed[A, F](ev.Err()))
			}
		})
	})
}

// SuppressError replaces a failed event with completed, optionally logging
// the suppressed error first. The result can never fail, which is visible
// in its type: Signal[A, NoFailure].
func SuppressError[A, F any](s Signal[A, F], logger *log.Logger) Signal[A, NoFailure] {
	return New(func(o Observer[A, NoFailure]) *Cancellation {
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				o(Next[A, NoFailure](ev.Value()))
			case ev.IsCompleted():
				o(Completed[A, NoFailure]())
			case ev.IsFailed():
				if logger != nil {
					logger.Printf("corestream: suppressed error: %v", ev.Err())
				}
				o(Completed[A, NoFailure]())
			}
		})
	})
}

// ReplaceError replaces a failed event with next(v) followed by completed.
func ReplaceError[A, F any](s Signal[A, F], v A) Signal[A, NoFailure] {
	return New(func(o Observer[A, NoFailure]) *Cancellation {
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				o(Next[A, NoFailure](ev.Value()))
			case ev.IsCompleted():
				o(Completed[A, NoFailure]())
			case ev.IsFailed():
				o(Next[A, NoFailure](v))
				o(Completed[A, NoFailure]())
			}
		})
	})
}
