package corestream

import (
	"sort"
	"sync"
	"time"
)

type virtualTimer struct {
	at        time.Duration
	action    func()
	cancelled bool
}

// VirtualContext is a manually-driven scheduler for deterministic tests of
// timing operators (timeout, interval sequences). Nothing
// runs until Advance is called.
type VirtualContext struct {
	mu      sync.Mutex
	now     time.Duration
	timers  []*virtualTimer
	pending []func()
}

// NewVirtualContext returns a context whose clock starts at zero.
func NewVirtualContext() *VirtualContext {
	return &VirtualContext{}
}

// Schedule queues action to run on the next Advance call.
func (v *VirtualContext) Schedule(action func()) {
	v.mu.Lock()
	v.pending = append(v.pending, action)
	v.mu.Unlock()
}

// ScheduleAfter arms a timer at now+d. Disposing the returned Cancellation
// disarms it before it fires.
func (v *VirtualContext) ScheduleAfter(d time.Duration, action func()) *Cancellation {
	v.mu.Lock()
	t := &virtualTimer{at: v.now + d, action: action}
	v.timers = append(v.timers, t)
	v.mu.Unlock()
	return NewCancellation(func() {
		v.mu.Lock()
		t.cancelled = true
		v.mu.Unlock()
	})
}

// Now returns the current virtual time.
func (v *VirtualContext) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Advance moves the virtual clock forward by d: every pending Schedule
// action runs first, then every non-cancelled timer due at or before the
// new time fires, in deadline order, earliest first.
func (v *VirtualContext) Advance(d time.Duration) {
	v.mu.Lock()
	pending := v.pending
	v.pending = nil
	v.mu.Unlock()
	for _, action := range pending {
		action()
	}

	target := v.now + d
	for {
		v.mu.Lock()
		due := make([]*virtualTimer, 0)
		for _, t := range v.timers {
			if !t.cancelled && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			v.now = target
			v.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
		next := due[0]
		remaining := v.timers[:0:0]
		for _, t := range v.timers {
			if t != next {
				remaining = append(remaining, t)
			}
		}
		v.timers = remaining
		v.now = next.at
		v.mu.Unlock()
		next.action()
	}
}
