package corestream

// SubscribeOn moves the act of subscribing to s onto ctx, so any work s
// performs synchronously on subscribe (recursive FromSliceInterval
// scheduling, eager side effects in a custom start func) happens on ctx
// rather than on the caller's goroutine. Events s later delivers are
// untouched by this operator.
func SubscribeOn[A, F any](s Signal[A, F], ctx ExecutionContext) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		bag := NewCancellationBag()
		ctx.Schedule(func() {
			bag.Add(s.Observe(o))
		})
		return bag.AsCancellation()
	})
}

// ReceiveOn redelivers every event of s on ctx, preserving per-subscription
// order via a dedicated serializer so concurrent producers upstream still
// arrive downstream one at a time, in submission order.
func ReceiveOn[A, F any](s Signal[A, F], ctx ExecutionContext) Signal[A, F] {
	return New(func(o Observer[A, F]) *Cancellation {
		serial := newSerializer()
		return s.Observe(func(ev Event[A, F]) {
			serial.submitOn(ctx, func() {
				o(ev)
			})
		})
	})
}
