package corestream

import (
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// Cancellation releases a resource exactly once; further Dispose calls are
// no-ops. Equality is identity-based since Cancellation is always handled
// as a pointer, which makes it usable as a mapset/map key out of the box.
type Cancellation struct {
	once     sync.Once
	disposed atomic.Bool
	action   func()
}

// NewCancellation wraps action so it runs at most once.
func NewCancellation(action func()) *Cancellation {
	if action == nil {
		action = func() {}
	}
	return &Cancellation{action: action}
}

// Dispose triggers release. Safe to call from any thread, any number of
// times; only the first call has an effect.
func (c *Cancellation) Dispose() {
	c.once.Do(func() {
		c.disposed.Store(true)
		c.action()
	})
}

// IsDisposed reports whether Dispose has run.
func (c *Cancellation) IsDisposed() bool {
	return c.disposed.Load()
}

// NonDisposable is a sentinel for signals that hold no resource to release.
var NonDisposable = NewCancellation(func() {})

// CancellationBag owns a set of cancellations and disposes them all when it
// is itself disposed. Adding to an already-disposed bag disposes the added
// cancellation immediately instead of holding onto it.
type CancellationBag struct {
	mu       sync.Mutex
	members  mapset.Set[*Cancellation]
	disposed bool
}

// NewCancellationBag returns an empty, live bag.
func NewCancellationBag() *CancellationBag {
	return &CancellationBag{members: mapset.NewSet[*Cancellation]()}
}

// Add registers c with the bag, or disposes it immediately if the bag is
// already disposed. A nil c is ignored.
func (b *CancellationBag) Add(c *Cancellation) {
	if c == nil {
		return
	}
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		c.Dispose()
		return
	}
	b.members.Add(c)
	b.mu.Unlock()
}

// Remove drops c from the bag without disposing it.
func (b *CancellationBag) Remove(c *Cancellation) {
	if c == nil {
		return
	}
	b.mu.Lock()
	b.members.Remove(c)
	b.mu.Unlock()
}

// Dispose disposes every member exactly once, then seals the bag so later
// Add calls dispose their argument immediately. Idempotent.
func (b *CancellationBag) Dispose() {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		return
	}
	b.disposed = true
	members := b.members.ToSlice()
	b.members.Clear()
	b.mu.Unlock()

	for _, c := range members {
		c.Dispose()
	}
}

// AsCancellation returns a Cancellation that disposes the whole bag.
func (b *CancellationBag) AsCancellation() *Cancellation {
	return NewCancellation(b.Dispose)
}
