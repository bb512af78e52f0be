package corestream

import "sync"

// Prefix emits the first maxLength values then completes, cancelling
// upstream once that many have been seen. maxLength == 0 completes
// immediately without ever subscribing upstream.
func Prefix[A, F any](s Signal[A, F], maxLength int) Signal[A, F] {
	if maxLength <= 0 {
		return Empty[A, F]()
	}
	return New(func(o Observer[A, F]) *Cancellation {
		var (
			mu    sync.Mutex
			count int
			done  bool
			sub   *Cancellation
		)
		sub = s.Observe(func(ev Event[A, F]) {
			mu.Lock()
			if done {
				mu.Unlock()
				return
			}
			switch {
			case ev.IsNext():
				count++
				o(ev)
				reached := count >= maxLength
				if reached {
					done = true
				}
				mu.Unlock()
				if reached {
					o(Completed[A, F]())
					if sub != nil {
						sub.Dispose()
					}
				}
			default:
				done = true
				mu.Unlock()
				o(ev)
			}
		})
		mu.Lock()
		alreadyDone := done
		mu.Unlock()
		if alreadyDone {
			sub.Dispose()
		}
		return sub
	})
}

// Suffix buffers the last maxLength values in a size-bounded ring and
// emits them, in order, when upstream completes.
func Suffix[A, F any](s Signal[A, F], maxLength int) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		var buf []A
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				if maxLength <= 0 {
					return
				}
				buf = append(buf, ev.Value())
				if len(buf) > maxLength {
					buf = buf[len(buf)-maxLength:]
				}
			case ev.IsCompleted():
				for _, v := range buf {
					o(Next[A, F](v))
				}
				o(Completed[A, F]())
			case ev.IsFailed():
				o(Failed[A, F](ev.Err()))
			}
		})
	})
}

// DropFirst discards the first n upstream values.
func DropFirst[A, F any](s Signal[A, F], n int) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		count := 0
		return s.Observe(func(ev Event[A, F]) {
			if ev.IsNext() {
				count++
				if count <= n {
					return
				}
			}
			o(ev)
		})
	})
}

// DropLast suppresses the trailing n upstream values by delaying emission
// behind an n-deep buffer.
func DropLast[A, F any](s Signal[A, F], n int) Signal[A, F] {
	if n <= 0 {
		return s
	}
	return New(func(o Observer[A, F]) *Cancellation {
		var buf []A
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				buf = append(buf, ev.Value())
				if len(buf) > n {
					o(Next[A, F](buf[0]))
					buf = buf[1:]
				}
			case ev.IsCompleted():
				o(Completed[A, F]())
			case ev.IsFailed():
				o(Failed[A, F](ev.Err()))
			}
		})
	})
}

// Output emits the value at zero-based index, then completes.
func Output[A, F any](s Signal[A, F], index int) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		var (
			mu    sync.Mutex
			count = -1
			done  bool
			sub   *Cancellation
		)
		sub = s.Observe(func(ev Event[A, F]) {
			mu.Lock()
			if done {
				mu.Unlock()
				return
			}
			switch {
			case ev.IsNext():
				count++
				hit := count == index
				if hit {
					done = true
				}
				mu.Unlock()
				if hit {
					o(ev)
					o(Completed[A, F]())
					if sub != nil {
						sub.Dispose()
					}
				}
			default:
				done = true
				mu.Unlock()
				o(ev)
			}
		})
		return sub
	})
}

// First is Prefix(maxLength: 1).
func First[A, F any](s Signal[A, F]) Signal[A, F] { return Prefix(s, 1) }

// Last is Suffix(maxLength: 1).
func Last[A, F any](s Signal[A, F]) Signal[A, F] { return Suffix(s, 1) }

// Buffer emits lists of exactly size upstream values; a final partial
// buffer at completion is discarded, not emitted.
func Buffer[A, F any](s Signal[A, F], size int) Signal[[]A, F] {
	return New(func(o Observer[[]A, F]) *Cancellation {
		var buf []A
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				buf = append(buf, ev.Value())
				if len(buf) == size {
					o(Next[[]A, F](buf))
					buf = nil
				}
			case ev.IsCompleted():
				o(Completed[[]A, F]())
			case ev.IsFailed():
				o(Failed[[]A, F](ev.Err()))
			}
		})
	})
}

// Window emits nested signals, each carrying up to size upstream values,
// then completes when upstream does. Unlike Buffer, a trailing partial
// window is still emitted — discarding it would silently drop data a
// consumer windowing a live feed would reasonably expect to see.
func Window[A, F any](s Signal[A, F], size int) Signal[Signal[A, F], F] {
	return New(func(o Observer[Signal[A, F], F]) *Cancellation {
		var buf []A
		flush := func() {
			if len(buf) == 0 {
				return
			}
			snapshot := buf
			buf = nil
			o(Next[Signal[A, F], F](FromSlice[A, F](snapshot)))
		}
		return s.Observe(func(ev Event[A, F]) {
			switch {
			case ev.IsNext():
				buf = append(buf, ev.Value())
				if len(buf) == size {
					flush()
				}
			case ev.IsCompleted():
				flush()
				o(Completed[Signal[A, F], F]())
			case ev.IsFailed():
				o(Failed[Signal[A, F], F](ev.Err()))
			}
		})
	})
}
