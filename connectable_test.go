package corestream_test

import (
	"testing"

	"github.com/delaneyj/corestream"
	"github.com/stretchr/testify/assert"
)

// Scenario S7: observers attached to a Publish connectable before Connect
// receive nothing, and a cold upstream that drains synchronously during
// Connect leaves nothing for observers attached afterward either.
func TestPublishDeliversNothingBeforeConnectOrAfterUpstreamDrains(t *testing.T) {
	connectable := corestream.Publish[int, corestream.NoFailure](corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2, 3}))

	var early []int
	connectable.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			early = append(early, ev.Value())
		}
	})

	connectable.Connect()
	assert.Empty(t, early)

	var late []int
	connectable.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			late = append(late, ev.Value())
		}
	})
	assert.Empty(t, late)
}

func TestPublishFansOutToMultipleObserversConnectedBeforehand(t *testing.T) {
	source := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	connectable := corestream.Publish[int, corestream.NoFailure](source.AsSignal())

	var a, b []int
	connectable.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			a = append(a, ev.Value())
		}
	})
	connectable.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			b = append(b, ev.Value())
		}
	})
	connectable.Connect()

	source.Emit(corestream.Next[int, corestream.NoFailure](1))
	source.Emit(corestream.Next[int, corestream.NoFailure](2))

	assert.Equal(t, []int{1, 2}, a)
	assert.Equal(t, []int{1, 2}, b)
}

// Scenario S8: a replay connectable buffers up to limit values so an
// observer attached after upstream has already completed still sees the
// most recent ones.
func TestReplayDeliversBufferedValuesToLateObserver(t *testing.T) {
	connectable := corestream.Replay[int, corestream.NoFailure](corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2, 3}), 2)
	connectable.Connect()

	var got []int
	completed := false
	connectable.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
		if ev.IsCompleted() {
			completed = true
		}
	})

	assert.Equal(t, []int{2, 3}, got)
	assert.True(t, completed)
}

func TestShareConnectsOnFirstObserverAndDisconnectsOnLast(t *testing.T) {
	subscriptions := 0
	disposed := 0
	upstream := corestream.New(func(o corestream.Observer[int, corestream.NoFailure]) *corestream.Cancellation {
		subscriptions++
		return corestream.NewCancellation(func() { disposed++ })
	})

	shared := corestream.Share[int, corestream.NoFailure](upstream)
	sub1 := shared.Observe(func(corestream.Event[int, corestream.NoFailure]) {})
	sub2 := shared.Observe(func(corestream.Event[int, corestream.NoFailure]) {})

	assert.Equal(t, 1, subscriptions)

	sub1.Dispose()
	assert.Equal(t, 0, disposed)

	sub2.Dispose()
	assert.Equal(t, 1, disposed)

	shared.Observe(func(corestream.Event[int, corestream.NoFailure]) {})
	assert.Equal(t, 2, subscriptions)
}

func TestReplayLatestEmitsCurrentValueOnEachTrigger(t *testing.T) {
	source := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	trigger := corestream.NewPassthroughSubject[struct{}, corestream.NoFailure]()
	s := corestream.ReplayLatest[int, corestream.NoFailure, struct{}](source.AsSignal(), trigger.AsSignal())

	var got []int
	s.Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
	})

	trigger.Emit(corestream.Next[struct{}, corestream.NoFailure](struct{}{})) // no value yet, ignored
	source.Emit(corestream.Next[int, corestream.NoFailure](1))
	trigger.Emit(corestream.Next[struct{}, corestream.NoFailure](struct{}{}))
	source.Emit(corestream.Next[int, corestream.NoFailure](2))
	trigger.Emit(corestream.Next[struct{}, corestream.NoFailure](struct{}{}))
	trigger.Emit(corestream.Next[struct{}, corestream.NoFailure](struct{}{}))

	assert.Equal(t, []int{1, 2, 2}, got)
}
