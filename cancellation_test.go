package corestream_test

import (
	"sync"
	"testing"

	"github.com/delaneyj/corestream"
	"github.com/stretchr/testify/assert"
)

// Cancellation idempotence (invariant 2): dispose() called k>=1 times
// triggers teardown exactly once, even under concurrent callers.
func TestCancellationDisposeIsIdempotent(t *testing.T) {
	runs := 0
	c := corestream.NewCancellation(func() { runs++ })

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Dispose()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, runs)
	assert.True(t, c.IsDisposed())
}

func TestCancellationBagDisposesMembersOnce(t *testing.T) {
	bag := corestream.NewCancellationBag()
	var disposed []int
	var mu sync.Mutex
	for i := 0; i < 5; i++ {
		i := i
		bag.Add(corestream.NewCancellation(func() {
			mu.Lock()
			disposed = append(disposed, i)
			mu.Unlock()
		}))
	}

	bag.Dispose()
	bag.Dispose()

	assert.Len(t, disposed, 5)
}

func TestCancellationBagDisposesLateAddsImmediately(t *testing.T) {
	bag := corestream.NewCancellationBag()
	bag.Dispose()

	ran := false
	bag.Add(corestream.NewCancellation(func() { ran = true }))

	assert.True(t, ran)
}

func TestCancellationBagRemoveDropsWithoutDisposing(t *testing.T) {
	bag := corestream.NewCancellationBag()
	ran := false
	c := corestream.NewCancellation(func() { ran = true })
	bag.Add(c)
	bag.Remove(c)

	bag.Dispose()

	assert.False(t, ran)
}
