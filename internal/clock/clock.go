package clock

import (
	"sync"
	"time"
)

// Handle identifies a scheduled repeating callback. The zero Handle is never
// returned by Schedule and is always safe to cancel.
type Handle uint64

// Clock schedules repeating callbacks.
type Clock interface {
	Schedule(interval time.Duration, callback func()) Handle
	Cancel(handle Handle)
}

// System is the Clock backed by time.Ticker.
type System struct {
	mu      sync.Mutex
	next    Handle
	running map[Handle]chan struct{}
}

// NewSystem creates a ticker-backed clock.
func NewSystem() *System {
	return &System{running: make(map[Handle]chan struct{})}
}

// Schedule starts a goroutine that invokes callback every interval until the
// returned handle is cancelled.
func (system *System) Schedule(interval time.Duration, callback func()) Handle {
	if interval <= 0 {
		interval = time.Second
	}

	system.mu.Lock()
	system.next++
	handle := system.next
	stopCh := make(chan struct{})
	system.running[handle] = stopCh
	system.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				callback()
			}
		}
	}()

	return handle
}

// Cancel stops the callback for handle. Unknown handles are ignored.
func (system *System) Cancel(handle Handle) {
	system.mu.Lock()
	defer system.mu.Unlock()
	stopCh, ok := system.running[handle]
	if !ok {
		return
	}
	delete(system.running, handle)
	close(stopCh)
}

// Active returns the number of outstanding schedules.
func (system *System) Active() int {
	system.mu.Lock()
	defer system.mu.Unlock()
	return len(system.running)
}
