package countdown

import "time"

// State represents the current countdown mode.
//
// Idle     -> Running (valid start)
// Running  -> Paused | Expired | Idle
// Paused   -> Running | Idle
// Expired  -> Running (valid start) | Idle
//
// Every state returns to Idle on Reset.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateExpired State = "expired"
)

// Active reports whether the countdown has been started and not yet finished.
func (state State) Active() bool {
	return state == StateRunning || state == StatePaused
}

// EventType defines the type of countdown event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventInput       EventType = "input"
)

// Event represents a countdown update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is the read-only projection of the countdown handed to presenters.
type Snapshot struct {
	// Version increases with every mutation so presenters can drop stale renders.
	Version          uint64
	State            State
	RemainingSeconds int
	InputSeconds     string
	ValidationError  string
}

// IsActive reports whether the countdown is running or paused.
func (snapshot Snapshot) IsActive() bool {
	return snapshot.State.Active()
}

// IsPaused reports whether ticking is suspended.
func (snapshot Snapshot) IsPaused() bool {
	return snapshot.State == StatePaused
}

// Display returns the remaining time as MM:SS.
func (snapshot Snapshot) Display() string {
	return FormatDisplay(snapshot.RemainingSeconds)
}

// CanStart reports whether the start control should be enabled.
func (snapshot Snapshot) CanStart() bool {
	return !snapshot.IsActive()
}

// CanPause reports whether the pause control should be enabled.
func (snapshot Snapshot) CanPause() bool {
	return snapshot.State == StateRunning
}

// CanResume reports whether the resume control should be enabled.
func (snapshot Snapshot) CanResume() bool {
	return snapshot.State == StatePaused
}

// CanReset reports whether the reset control should be enabled. Always true.
func (snapshot Snapshot) CanReset() bool {
	return true
}

// CanEdit reports whether the input field accepts edits.
func (snapshot Snapshot) CanEdit() bool {
	return !snapshot.IsActive()
}
