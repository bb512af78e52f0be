package corestream

// CancellationOwner is supplied by a binding target: anything with a
// lifetime-scoped CancellationBag can be bound into. The binding's
// Cancellation is added to that bag, so it is torn down when the target
// itself is torn down (i.e. when the target disposes its own bag).
type CancellationOwner interface {
	Cancellations() *CancellationBag
}

// Bind consumes a non-failing signal into externally owned mutable state.
// Events are delivered on ctx; apply is called for each next-value. Bind
// never throws — the source's Failure type parameter must be NoFailure,
// which is enforced at compile time. The resulting Cancellation is added
// to target's bag and also returned for callers that want it directly.
func Bind[Element any](source Signal[Element, NoFailure], target CancellationOwner, ctx ExecutionContext, apply func(Element)) *Cancellation {
	c := source.Observe(func(ev Event[Element, NoFailure]) {
		if !ev.IsNext() {
			return
		}
		v := ev.Value()
		ctx.Schedule(func() { apply(v) })
	})
	target.Cancellations().Add(c)
	return c
}
