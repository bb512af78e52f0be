package corestream_test

import (
	"testing"
	"time"

	"github.com/delaneyj/corestream"
	"github.com/stretchr/testify/assert"
)

func TestTimeoutFailsWhenNoEventArrivesInTime(t *testing.T) {
	ctx := corestream.NewVirtualContext()
	s := corestream.NewPassthroughSubject[int, string]()
	timed := corestream.Timeout(s.AsSignal(), 5*time.Second, "timed out", ctx)

	var failure string
	failed := false
	timed.Observe(func(ev corestream.Event[int, string]) {
		if ev.IsFailed() {
			failed = true
			failure = ev.Err()
		}
	})

	ctx.Advance(5 * time.Second)
	assert.True(t, failed)
	assert.Equal(t, "timed out", failure)
}

func TestTimeoutRearmsOnEveryNext(t *testing.T) {
	ctx := corestream.NewVirtualContext()
	s := corestream.NewPassthroughSubject[int, string]()
	timed := corestream.Timeout(s.AsSignal(), 5*time.Second, "timed out", ctx)

	var got []int
	failed := false
	timed.Observe(func(ev corestream.Event[int, string]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
		if ev.IsFailed() {
			failed = true
		}
	})

	ctx.Advance(3 * time.Second)
	s.Emit(corestream.Next[int, string](1))
	ctx.Advance(3 * time.Second) // total elapsed since last event: 3s < 5s
	s.Emit(corestream.Next[int, string](2))
	ctx.Advance(3 * time.Second)

	assert.Equal(t, []int{1, 2}, got)
	assert.False(t, failed)
}

func TestPausableSuppressesNextWhilePaused(t *testing.T) {
	source := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	control := corestream.NewPassthroughSubject[bool, corestream.NoFailure]()
	s := corestream.Pausable[int, corestream.NoFailure](source.AsSignal(), control.AsSignal())

	var got []int
	s.Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
	})

	source.Emit(corestream.Next[int, corestream.NoFailure](1)) // paused by default
	control.Emit(corestream.Next[bool, corestream.NoFailure](true))
	source.Emit(corestream.Next[int, corestream.NoFailure](2))
	control.Emit(corestream.Next[bool, corestream.NoFailure](false))
	source.Emit(corestream.Next[int, corestream.NoFailure](3))

	assert.Equal(t, []int{2}, got)
}

// Scenario S6: retry resubscribes a failing signal up to its budget before
// forwarding the final failure.
func TestRetryResubscribesUpToBudgetThenForwardsFailure(t *testing.T) {
	subscriptions := 0
	failing := corestream.New(func(o corestream.Observer[int, string]) *corestream.Cancellation {
		subscriptions++
		o(corestream.Failed[int, string]("boom"))
		return corestream.NonDisposable
	})

	var failure string
	failed := false
	corestream.Retry(failing, 3).Observe(func(ev corestream.Event[int, string]) {
		if ev.IsFailed() {
			failed = true
			failure = ev.Err()
		}
	})

	assert.Equal(t, 4, subscriptions) // 1 initial attempt + 3 retries
	assert.True(t, failed)
	assert.Equal(t, "boom", failure)
}

func TestRetrySucceedsWithoutExhaustingBudget(t *testing.T) {
	attempt := 0
	flaky := corestream.New(func(o corestream.Observer[int, string]) *corestream.Cancellation {
		attempt++
		if attempt < 3 {
			o(corestream.Failed[int, string]("boom"))
			return corestream.NonDisposable
		}
		o(corestream.Next[int, string](42))
		o(corestream.Completed[int, string]())
		return corestream.NonDisposable
	})

	got, completed := collectInts(t, corestream.Retry(flaky, 5))
	assert.Equal(t, []int{42}, got)
	assert.True(t, completed)
	assert.Equal(t, 3, attempt)
}

func TestHandleEventsInvokesSubscriptionOutputAndCompletionHooks(t *testing.T) {
	var subscribed bool
	var outputs []corestream.Event[int, corestream.NoFailure]
	var completion corestream.Event[int, corestream.NoFailure]

	s := corestream.HandleEvents(corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2}), corestream.EventHandlers[int, corestream.NoFailure]{
		ReceiveSubscription: func() { subscribed = true },
		ReceiveOutput:       func(ev corestream.Event[int, corestream.NoFailure]) { outputs = append(outputs, ev) },
		ReceiveCompletion:   func(ev corestream.Event[int, corestream.NoFailure]) { completion = ev },
	})

	s.Observe(func(corestream.Event[int, corestream.NoFailure]) {})

	assert.True(t, subscribed)
	assert.Len(t, outputs, 3) // two next events plus completed
	assert.True(t, completion.IsCompleted())
}

// ReceiveCancel only fires when the subscription is disposed before a
// terminal event has passed through, never on ordinary post-completion
// cleanup.
func TestHandleEventsReceiveCancelFiresOnlyBeforeTerminal(t *testing.T) {
	cancelled := false
	natural := corestream.HandleEvents(corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2}), corestream.EventHandlers[int, corestream.NoFailure]{
		ReceiveCancel: func() { cancelled = true },
	})
	sub := natural.Observe(func(corestream.Event[int, corestream.NoFailure]) {})
	sub.Dispose()
	assert.False(t, cancelled, "disposing after natural completion must not fire ReceiveCancel")

	midStream := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	cancelledMidStream := false
	handled := corestream.HandleEvents(midStream.AsSignal(), corestream.EventHandlers[int, corestream.NoFailure]{
		ReceiveCancel: func() { cancelledMidStream = true },
	})
	midSub := handled.Observe(func(corestream.Event[int, corestream.NoFailure]) {})
	midStream.Emit(corestream.Next[int, corestream.NoFailure](1)) // no terminal yet
	midSub.Dispose()
	assert.True(t, cancelledMidStream, "disposing before a terminal event must fire ReceiveCancel")
}
