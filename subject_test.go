package corestream_test

import (
	"testing"

	"github.com/delaneyj/corestream"
	"github.com/stretchr/testify/assert"
)

func TestPassthroughSubjectOnlyDeliversFutureEvents(t *testing.T) {
	subj := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	subj.Emit(corestream.Next[int, corestream.NoFailure](1))

	var got []int
	subj.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
	})
	subj.Emit(corestream.Next[int, corestream.NoFailure](2))

	assert.Equal(t, []int{2}, got)
}

func TestReplaySubjectReplaysUpToLimit(t *testing.T) {
	subj := corestream.NewReplaySubject[int, corestream.NoFailure](2)
	subj.Emit(corestream.Next[int, corestream.NoFailure](1))
	subj.Emit(corestream.Next[int, corestream.NoFailure](2))
	subj.Emit(corestream.Next[int, corestream.NoFailure](3))
	subj.Emit(corestream.Completed[int, corestream.NoFailure]())

	var got []int
	completed := false
	subj.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
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

func TestPropertySubjectHoldsCurrentValueAndIgnoresTerminal(t *testing.T) {
	subj := corestream.NewPropertySubject[int, corestream.NoFailure](0)
	v, ok := subj.Value()
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	subj.Emit(corestream.Next[int, corestream.NoFailure](7))
	subj.Emit(corestream.Completed[int, corestream.NoFailure]())

	v, ok = subj.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	completed := false
	subj.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsCompleted() {
			completed = true
		}
	})
	assert.False(t, completed, "a property subject never terminates from the outside")
}

func TestSubjectAfterTerminalIgnoresFurtherEmits(t *testing.T) {
	subj := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	var got []int
	subj.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
	})

	subj.Emit(corestream.Completed[int, corestream.NoFailure]())
	subj.Emit(corestream.Next[int, corestream.NoFailure](99))

	assert.Empty(t, got)
}
