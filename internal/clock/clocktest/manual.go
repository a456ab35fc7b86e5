// Package clocktest provides a hand-driven clock for deterministic tests.
package clocktest

import (
	"sync"
	"time"

	"countdown/internal/clock"
)

type schedule struct {
	interval time.Duration
	callback func()
}

// Manual is a clock.Clock whose callbacks only run when Fire is called.
type Manual struct {
	mu        sync.Mutex
	next      clock.Handle
	schedules map[clock.Handle]schedule
	cancelled map[clock.Handle]schedule
	scheduled int
}

var _ clock.Clock = (*Manual)(nil)

// NewManual creates an empty manual clock.
func NewManual() *Manual {
	return &Manual{
		schedules: make(map[clock.Handle]schedule),
		cancelled: make(map[clock.Handle]schedule),
	}
}

// Schedule records the callback without starting any timer.
func (manual *Manual) Schedule(interval time.Duration, callback func()) clock.Handle {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.next++
	manual.scheduled++
	manual.schedules[manual.next] = schedule{interval: interval, callback: callback}
	return manual.next
}

// Cancel drops the schedule for handle.
func (manual *Manual) Cancel(handle clock.Handle) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	if entry, ok := manual.schedules[handle]; ok {
		manual.cancelled[handle] = entry
		delete(manual.schedules, handle)
	}
}

// Fire invokes every active callback once, as if one interval elapsed.
func (manual *Manual) Fire() {
	for _, callback := range manual.activeCallbacks() {
		callback()
	}
}

// FireN calls Fire n times.
func (manual *Manual) FireN(n int) {
	for i := 0; i < n; i++ {
		manual.Fire()
	}
}

// FireCancelled invokes callbacks whose schedules were already cancelled,
// simulating a tick that was queued before cancellation took effect.
func (manual *Manual) FireCancelled() {
	manual.mu.Lock()
	callbacks := make([]func(), 0, len(manual.cancelled))
	for _, entry := range manual.cancelled {
		callbacks = append(callbacks, entry.callback)
	}
	manual.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}

// Active returns the number of outstanding schedules.
func (manual *Manual) Active() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.schedules)
}

// Scheduled returns how many times Schedule has been called.
func (manual *Manual) Scheduled() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.scheduled
}

// Interval returns the interval of the single active schedule, or zero.
func (manual *Manual) Interval() time.Duration {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	for _, entry := range manual.schedules {
		return entry.interval
	}
	return 0
}

func (manual *Manual) activeCallbacks() []func() {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	handles := make([]clock.Handle, 0, len(manual.schedules))
	for handle := range manual.schedules {
		handles = append(handles, handle)
	}
	callbacks := make([]func(), 0, len(handles))
	for _, handle := range handles {
		callbacks = append(callbacks, manual.schedules[handle].callback)
	}
	return callbacks
}
