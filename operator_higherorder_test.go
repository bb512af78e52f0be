package corestream_test

import (
	"testing"

	"github.com/delaneyj/corestream"
	"github.com/stretchr/testify/assert"
)

func TestFlatMapMergeInterleavesInnerSignals(t *testing.T) {
	s := corestream.FlatMapMerge(corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2}), func(v int) corestream.Signal[int, corestream.NoFailure] {
		return corestream.FromSlice[int, corestream.NoFailure]([]int{v * 10, v * 10 + 1})
	})
	got, completed := collectInts(t, s)
	assert.ElementsMatch(t, []int{10, 11, 20, 21}, got)
	assert.True(t, completed)
}

func TestFlatMapLatestCancelsPreviousInnerSignal(t *testing.T) {
	inners := map[int]*corestream.Subject[int, corestream.NoFailure]{
		1: corestream.NewPassthroughSubject[int, corestream.NoFailure](),
		2: corestream.NewPassthroughSubject[int, corestream.NoFailure](),
	}
	source := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	s := corestream.FlatMapLatest(source.AsSignal(), func(v int) corestream.Signal[int, corestream.NoFailure] {
		return inners[v].AsSignal()
	})

	var got []int
	s.Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
	})

	source.Emit(corestream.Next[int, corestream.NoFailure](1))
	inners[1].Emit(corestream.Next[int, corestream.NoFailure](100))
	source.Emit(corestream.Next[int, corestream.NoFailure](2))
	inners[1].Emit(corestream.Next[int, corestream.NoFailure](101)) // should be ignored, superseded
	inners[2].Emit(corestream.Next[int, corestream.NoFailure](200))

	assert.Equal(t, []int{100, 200}, got)
}

func TestFlatMapConcatRunsInnerSignalsInArrivalOrder(t *testing.T) {
	first := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	second := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	source := corestream.NewPassthroughSubject[int, corestream.NoFailure]()

	s := corestream.FlatMapConcat(source.AsSignal(), func(v int) corestream.Signal[int, corestream.NoFailure] {
		if v == 1 {
			return first.AsSignal()
		}
		return second.AsSignal()
	})

	var got []int
	s.Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
	})

	source.Emit(corestream.Next[int, corestream.NoFailure](1))
	source.Emit(corestream.Next[int, corestream.NoFailure](2))
	second.Emit(corestream.Next[int, corestream.NoFailure](20)) // queued behind `first`, not yet running
	first.Emit(corestream.Next[int, corestream.NoFailure](10))
	first.Emit(corestream.Completed[int, corestream.NoFailure]())
	second.Emit(corestream.Next[int, corestream.NoFailure](21))

	assert.Equal(t, []int{10, 21}, got)
}

func TestFlatMapErrorSwitchesToRecoverySignal(t *testing.T) {
	s := corestream.FlatMapError(corestream.Fail[int, string]("boom"), func(err string) corestream.Signal[int, string] {
		return corestream.Just[int, string](-1)
	})
	var got []int
	completed := false
	s.Observe(func(ev corestream.Event[int, string]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
		if ev.IsCompleted() {
			completed = true
		}
	})
	assert.Equal(t, []int{-1}, got)
	assert.True(t, completed)
}
