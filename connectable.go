package corestream

import "sync"

// Connectable is a Signal whose upstream subscription is explicitly
// started by Connect and shared among every observer attached thereafter.
type Connectable[Element any, Failure any] struct {
	source  Signal[Element, Failure]
	subject *Subject[Element, Failure]
	mu      sync.Mutex
	conn    *Cancellation
}

// Publish wraps source into a passthrough multicast: observers attached
// before Connect receive nothing; Connect subscribes once upstream and
// fans that single subscription's events out to every attached observer.
func Publish[Element any, Failure any](source Signal[Element, Failure]) *Connectable[Element, Failure] {
	return &Connectable[Element, Failure]{
		source:  source,
		subject: NewPassthroughSubject[Element, Failure](),
	}
}

// Replay is Publish with a replay-limit subject interposed: each observer
// first receives the buffered up-to-limit most recent next-values and any
// seen terminal, then live events.
func Replay[Element any, Failure any](source Signal[Element, Failure], limit int) *Connectable[Element, Failure] {
	return &Connectable[Element, Failure]{
		source:  source,
		subject: NewReplaySubject[Element, Failure](limit),
	}
}

// AsSignal returns the multicast Signal view.
func (c *Connectable[Element, Failure]) AsSignal() Signal[Element, Failure] {
	return c.subject.AsSignal()
}

// Connect subscribes to the upstream source. Safe to call more than once;
// only the first call has an effect, and every call returns the same
// Cancellation, which tears down the shared upstream subscription.
func (c *Connectable[Element, Failure]) Connect() *Cancellation {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return c.conn
	}
	c.conn = c.source.Observe(func(ev Event[Element, Failure]) {
		c.subject.Emit(ev)
	})
	return c.conn
}

// Share is Publish with automatic reference-counted connect/disconnect:
// upstream is subscribed on the first attached observer and cancelled
// when the last one leaves.
func Share[Element any, Failure any](source Signal[Element, Failure]) Signal[Element, Failure] {
	sh := &sharedConnectable[Element, Failure]{connectable: Publish(source)}
	return New(func(observer Observer[Element, Failure]) *Cancellation {
		return sh.attach(observer)
	})
}

type sharedConnectable[Element any, Failure any] struct {
	mu          sync.Mutex
	connectable *Connectable[Element, Failure]
	refs        int
}

func (sh *sharedConnectable[Element, Failure]) attach(observer Observer[Element, Failure]) *Cancellation {
	sh.mu.Lock()
	sh.refs++
	if sh.refs == 1 {
		sh.connectable.Connect()
	}
	sh.mu.Unlock()

	inner := sh.connectable.AsSignal().Observe(observer)
	return NewCancellation(func() {
		inner.Dispose()

		sh.mu.Lock()
		sh.refs--
		last := sh.refs == 0
		var conn *Cancellation
		if last {
			conn = sh.connectable.conn
			sh.connectable.conn = nil
		}
		sh.mu.Unlock()

		if last && conn != nil {
			conn.Dispose()
		}
	})
}

// ReplayLatest emits the most recent value source has produced every time
// trigger produces a next event, provided source has produced at least
// one value by then. Completes when source completes; fails if source
// fails.
func ReplayLatest[Element, Failure, Tick any](source Signal[Element, Failure], trigger Signal[Tick, Failure]) Signal[Element, Failure] {
	return New(func(observer Observer[Element, Failure]) *Cancellation {
		state := newSerializer()
		var (
			hasValue bool
			latest   Element
		)
		bag := NewCancellationBag()
		bag.Add(source.Observe(func(ev Event[Element, Failure]) {
			state.submit(func() {
				switch {
				case ev.IsNext():
					hasValue = true
					latest = ev.Value()
				case ev.IsCompleted():
					observer(Completed[Element, Failure]())
				case ev.IsFailed():
					observer(Failed[Element, Failure](ev.Err()))
				}
			})
		}))
		bag.Add(trigger.Observe(func(ev Event[Tick, Failure]) {
			if !ev.IsNext() {
				return
			}
			state.submit(func() {
				if hasValue {
					observer(Next[Element, Failure](latest))
				}
			})
		}))
		return bag.AsCancellation()
	})
}
