package corestream_test

import (
	"sync"
	"testing"
	"time"

	"github.com/delaneyj/corestream"
	"github.com/stretchr/testify/assert"
)

func TestVirtualContextFiresTimersInDeadlineOrder(t *testing.T) {
	ctx := corestream.NewVirtualContext()
	var fired []string

	ctx.ScheduleAfter(3*time.Second, func() { fired = append(fired, "three") })
	ctx.ScheduleAfter(1*time.Second, func() { fired = append(fired, "one") })
	ctx.ScheduleAfter(2*time.Second, func() { fired = append(fired, "two") })

	ctx.Advance(3 * time.Second)
	assert.Equal(t, []string{"one", "two", "three"}, fired)
	assert.Equal(t, 3*time.Second, ctx.Now())
}

func TestVirtualContextDoesNotFireCancelledTimer(t *testing.T) {
	ctx := corestream.NewVirtualContext()
	fired := false
	cancel := ctx.ScheduleAfter(1*time.Second, func() { fired = true })
	cancel.Dispose()

	ctx.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestVirtualContextRunsPendingScheduleBeforeTimers(t *testing.T) {
	ctx := corestream.NewVirtualContext()
	var order []string
	ctx.Schedule(func() { order = append(order, "immediate") })
	ctx.ScheduleAfter(0, func() { order = append(order, "timer") })

	ctx.Advance(0)
	assert.Equal(t, []string{"immediate", "timer"}, order)
}

func TestWorkerPoolContextRoutesSameKeyToSameWorker(t *testing.T) {
	wp := corestream.NewWorkerPoolContext(4)
	defer wp.Close()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		wp.ScheduleAffinity("same-key", func(i int) func() {
			return func() {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				wg.Done()
			}
		}(i))
	}
	wg.Wait()

	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want, order, "actions sharing a key must run in submission order on one worker")
}

func TestMainLoopContextRunsActionsInSubmissionOrder(t *testing.T) {
	m := corestream.NewMainLoopContext()
	defer m.Close()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(100)
	for i := 0; i < 100; i++ {
		i := i
		m.Schedule(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	want := make([]int, 100)
	for i := range want {
		want[i] = i
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want, order)
}

func TestImmediateRunsSynchronously(t *testing.T) {
	ran := false
	corestream.Immediate.Schedule(func() { ran = true })
	assert.True(t, ran)
}
