package corestream

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

type subjectKind uint8

const (
	subjectPassthrough subjectKind = iota
	subjectReplay
	subjectProperty
)

// subscriberHandle is the pointer-identity registry entry for one attached
// observer. Its own serializer guarantees that, even when Emit is called
// concurrently from many publisher goroutines, this one observer never
// sees two overlapping invocations.
type subscriberHandle[Element any, Failure any] struct {
	observer Observer[Element, Failure]
	serial   *serializer
}

// Subject is a Signal that also accepts events pushed from outside.
// Passthrough forwards only future events to late subscribers; Replay(n)
// buffers the last n next-events plus any terminal and replays them on
// attach; Property is a replay-1 subject that always holds a current value
// and cannot be terminated from the outside.
type Subject[Element any, Failure any] struct {
	mu        sync.Mutex
	kind      subjectKind
	observers mapset.Set[*subscriberHandle[Element, Failure]]
	buffer    []Event[Element, Failure]
	limit     int
	terminal  *Event[Element, Failure]
}

// NewPassthroughSubject returns a Subject that multicasts events as they
// arrive; subscribers attached after an event has already fired never see
// that event.
func NewPassthroughSubject[Element any, Failure any]() *Subject[Element, Failure] {
	return &Subject[Element, Failure]{
		kind:      subjectPassthrough,
		observers: mapset.NewSet[*subscriberHandle[Element, Failure]](),
	}
}

// NewReplaySubject returns a Subject that retains the last limit
// next-events plus any terminal event, replaying them to every new
// subscriber before switching to live delivery.
func NewReplaySubject[Element any, Failure any](limit int) *Subject[Element, Failure] {
	return &Subject[Element, Failure]{
		kind:      subjectReplay,
		limit:     limit,
		observers: mapset.NewSet[*subscriberHandle[Element, Failure]](),
	}
}

// NewPropertySubject returns a replay-1 Subject that is always in the
// next state, seeded with initial. Terminal events pushed via Emit are
// ignored: a property never terminates from the outside.
func NewPropertySubject[Element any, Failure any](initial Element) *Subject[Element, Failure] {
	return &Subject[Element, Failure]{
		kind:      subjectProperty,
		limit:     1,
		observers: mapset.NewSet[*subscriberHandle[Element, Failure]](),
		buffer:    []Event[Element, Failure]{Next[Element, Failure](initial)},
	}
}

// Emit pushes ev into the subject. Safe to call concurrently from any
// number of goroutines. Emit takes a snapshot of the attached observers
// under the subject's lock and delivers to that snapshot: an observer
// attached before the snapshot sees ev, and one attached after it does not,
// even if its attach finishes before Emit returns.
func (s *Subject[Element, Failure]) Emit(ev Event[Element, Failure]) {
	s.mu.Lock()
	if s.terminal != nil {
		s.mu.Unlock()
		return
	}
	if s.kind == subjectProperty && ev.IsTerminal() {
		s.mu.Unlock()
		return
	}
	if ev.IsTerminal() {
		t := ev
		s.terminal = &t
	} else if s.kind == subjectReplay || s.kind == subjectProperty {
		s.buffer = append(s.buffer, ev)
		if s.limit > 0 && len(s.buffer) > s.limit {
			s.buffer = s.buffer[len(s.buffer)-s.limit:]
		}
	}
	handles := s.observers.ToSlice()
	s.mu.Unlock()

	for _, h := range handles {
		handle := h
		handle.serial.submit(func() { handle.observer(ev) })
	}
}

// Value returns the most recently emitted next-value and whether one has
// ever been emitted. Meaningful for Property and Replay(>=1) subjects.
func (s *Subject[Element, Failure]) Value() (Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buffer) == 0 {
		var zero Element
		return zero, false
	}
	return s.buffer[len(s.buffer)-1].Value(), true
}

// AsSignal returns the Signal view of this subject: observing it attaches
// a subscriber the same way Emit fans events out to it.
func (s *Subject[Element, Failure]) AsSignal() Signal[Element, Failure] {
	return New(func(observer Observer[Element, Failure]) *Cancellation {
		return s.attach(observer)
	})
}

func (s *Subject[Element, Failure]) attach(observer Observer[Element, Failure]) *Cancellation {
	handle := &subscriberHandle[Element, Failure]{observer: observer, serial: newSerializer()}

	s.mu.Lock()
	replay := append([]Event[Element, Failure](nil), s.buffer...)
	terminal := s.terminal
	if terminal == nil {
		s.observers.Add(handle)
	}
	s.mu.Unlock()

	for _, ev := range replay {
		handle.serial.submit(func(ev Event[Element, Failure]) func() {
			return func() { handle.observer(ev) }
		}(ev))
	}
	if terminal != nil {
		t := *terminal
		handle.serial.submit(func() { handle.observer(t) })
	}

	return NewCancellation(func() {
		s.mu.Lock()
		s.observers.Remove(handle)
		s.mu.Unlock()
	})
}
