package corestream_test

import (
	"testing"

	"github.com/delaneyj/corestream"
	"github.com/stretchr/testify/assert"
)

func TestPrependEmitsValueBeforeUpstream(t *testing.T) {
	s := corestream.Prepend(corestream.FromSlice[int, corestream.NoFailure]([]int{2, 3}), 1)
	got, _ := collectInts(t, s)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestAppendSwitchesToOtherOnCompletion(t *testing.T) {
	s := corestream.Append(corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2}), corestream.FromSlice[int, corestream.NoFailure]([]int{3, 4}))
	got, completed := collectInts(t, s)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.True(t, completed)
}

func TestReplaceEmptyEmitsSubstituteOnlyWhenUpstreamNeverEmitted(t *testing.T) {
	withValues, _ := collectInts(t, corestream.ReplaceEmpty(corestream.FromSlice[int, corestream.NoFailure]([]int{1}), -1))
	assert.Equal(t, []int{1}, withValues)

	empty, _ := collectInts(t, corestream.ReplaceEmpty(corestream.Empty[int, corestream.NoFailure](), -1))
	assert.Equal(t, []int{-1}, empty)
}
