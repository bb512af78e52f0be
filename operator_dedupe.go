package corestream

// RemoveDuplicatesBy emits x iff eq(lastEmitted, x) is false. The first
// value is always emitted.
func RemoveDuplicatesBy[A, F any](s Signal[A, F], eq func(a, b A) bool) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		var (
			hasPrev bool
			prev    A
		)
		return s.Observe(func(ev Event[A, F]) {
			if ev.IsNext() {
				v := ev.Value()
				if hasPrev && eq(prev, v) {
					return
				}
				hasPrev = true
				prev = v
			}
			o(ev)
		})
	})
}

// RemoveDuplicates is RemoveDuplicatesBy with structural (==) equality.
func RemoveDuplicates[A comparable, F any](s Signal[A, F]) Signal[A, F] {
	return RemoveDuplicatesBy(s, func(a, b A) bool { return a == b })
}
