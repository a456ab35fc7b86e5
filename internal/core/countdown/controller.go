package countdown

import (
	"errors"
	"sync"
	"time"

	"countdown/internal/clock"
	"countdown/internal/core/model"

	"github.com/sirupsen/logrus"
)

var (
	// ErrAlreadyActive is returned by Start while the countdown is running or paused.
	ErrAlreadyActive = errors.New("countdown already active")
	// ErrClosed is returned by Start after Close.
	ErrClosed = errors.New("countdown closed")
)

// Presenter redraws the interface from a snapshot.
type Presenter interface {
	Render(snapshot Snapshot)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Snapshot)

// Render calls fn(snapshot).
func (fn PresenterFunc) Render(snapshot Snapshot) {
	fn(snapshot)
}

// Options contains collaborators for a Controller.
type Options struct {
	Logger logrus.FieldLogger
}

// Controller is the countdown state machine. It owns the tick schedule and
// pushes a snapshot to its presenters after every change.
type Controller struct {
	mu         sync.Mutex
	config     model.CountdownConfig
	clock      clock.Clock
	logger     logrus.FieldLogger
	presenters []Presenter
	events     []chan Event

	state      State
	remaining  int
	input      string
	validation string
	version    uint64

	handle     clock.Handle
	generation uint64
	closed     bool
}

// New creates an idle Controller that schedules ticks on clk.
func New(config model.CountdownConfig, clk clock.Clock, options Options) *Controller {
	logger := options.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Controller{
		config: config.Normalized(),
		clock:  clk,
		logger: logger.WithField("component", "countdown"),
		state:  StateIdle,
	}
}

// AddPresenter registers a presenter and renders the current snapshot to it.
func (controller *Controller) AddPresenter(presenter Presenter) {
	if presenter == nil {
		return
	}
	controller.mu.Lock()
	controller.presenters = append(controller.presenters, presenter)
	snapshot := controller.snapshotLocked()
	controller.mu.Unlock()

	presenter.Render(snapshot)
}

// Subscribe registers a new observer channel. The channel is closed by Close.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// UpdateInput stores raw as the pending input when it is empty or all digits.
// Anything else is discarded. Non-empty accepted input clears the validation
// error.
func (controller *Controller) UpdateInput(raw string) {
	controller.mu.Lock()
	if controller.closed || !AcceptsInput(raw) {
		controller.mu.Unlock()
		return
	}
	if raw == controller.input && (raw == "" || controller.validation == "") {
		controller.mu.Unlock()
		return
	}
	controller.input = raw
	if raw != "" {
		controller.validation = ""
	}
	controller.commitLocked(EventInput)
}

// Start validates the pending input and begins counting down from it. A
// failed validation is recorded in the snapshot and returned as a
// *ValidationError.
func (controller *Controller) Start() error {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return ErrClosed
	}
	if controller.state.Active() {
		controller.mu.Unlock()
		return ErrAlreadyActive
	}

	seconds, err := Validate(controller.input, controller.config.MaxSeconds)
	if err != nil {
		controller.validation = err.Error()
		controller.logger.WithField("input", controller.input).Debugf("start rejected: %v", err)
		controller.commitLocked(EventInput)
		return err
	}

	controller.remaining = seconds
	controller.validation = ""
	controller.state = StateRunning
	controller.scheduleLocked()
	controller.logger.WithField("remaining", seconds).Debug("countdown started")
	controller.commitLocked(EventStateChange)
	return nil
}

// Pause suspends ticking. It is a no-op unless the countdown is running.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	if controller.closed || controller.state != StateRunning {
		controller.mu.Unlock()
		return
	}
	controller.cancelLocked()
	controller.state = StatePaused
	controller.logger.WithField("remaining", controller.remaining).Debug("countdown paused")
	controller.commitLocked(EventStateChange)
}

// Resume restarts ticking. It is a no-op unless the countdown is paused.
func (controller *Controller) Resume() {
	controller.mu.Lock()
	if controller.closed || controller.state != StatePaused {
		controller.mu.Unlock()
		return
	}
	controller.state = StateRunning
	controller.scheduleLocked()
	controller.logger.WithField("remaining", controller.remaining).Debug("countdown resumed")
	controller.commitLocked(EventStateChange)
}

// TogglePause pauses a running countdown or resumes a paused one.
func (controller *Controller) TogglePause() {
	switch controller.Snapshot().State {
	case StateRunning:
		controller.Pause()
	case StatePaused:
		controller.Resume()
	}
}

// Reset stops the countdown and clears input, remaining time and errors.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.cancelLocked()
	if controller.state == StateIdle && controller.remaining == 0 &&
		controller.input == "" && controller.validation == "" {
		controller.mu.Unlock()
		return
	}
	controller.state = StateIdle
	controller.remaining = 0
	controller.input = ""
	controller.validation = ""
	controller.logger.Debug("countdown reset")
	controller.commitLocked(EventStateChange)
}

// Tick advances a running countdown by one second. Reaching zero expires the
// countdown and cancels the tick schedule.
func (controller *Controller) Tick() {
	controller.mu.Lock()
	controller.tickLocked()
}

// Close cancels any outstanding tick schedule and closes subscriber channels.
// Every later operation is a no-op.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.cancelLocked()
	controller.closed = true
	events := controller.events
	controller.events = nil
	controller.presenters = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) tickFrom(generation uint64) {
	controller.mu.Lock()
	if generation != controller.generation {
		controller.mu.Unlock()
		return
	}
	controller.tickLocked()
}

// tickLocked is entered with the lock held and releases it.
func (controller *Controller) tickLocked() {
	if controller.closed || controller.state != StateRunning {
		controller.mu.Unlock()
		return
	}

	if controller.remaining <= 1 {
		controller.cancelLocked()
		controller.remaining = 0
		controller.state = StateExpired
		controller.logger.Debug("countdown expired")
		controller.commitLocked(EventStateChange)
		return
	}

	controller.remaining--
	controller.commitLocked(EventProgress)
}

func (controller *Controller) scheduleLocked() {
	controller.cancelLocked()
	controller.generation++
	generation := controller.generation
	controller.handle = controller.clock.Schedule(controller.config.TickInterval, func() {
		controller.tickFrom(generation)
	})
}

func (controller *Controller) cancelLocked() {
	// Bumping the generation turns any already-queued callback into a no-op.
	controller.generation++
	if controller.handle == 0 {
		return
	}
	controller.clock.Cancel(controller.handle)
	controller.handle = 0
}

func (controller *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Version:          controller.version,
		State:            controller.state,
		RemainingSeconds: controller.remaining,
		InputSeconds:     controller.input,
		ValidationError:  controller.validation,
	}
}

// commitLocked publishes the mutation and releases the lock before rendering,
// so presenters may call back into the controller.
func (controller *Controller) commitLocked(eventType EventType) {
	controller.version++
	snapshot := controller.snapshotLocked()
	controller.emitLocked(Event{
		Type:     eventType,
		Snapshot: snapshot,
		At:       time.Now(),
	})
	presenters := append([]Presenter(nil), controller.presenters...)
	controller.mu.Unlock()

	for _, presenter := range presenters {
		presenter.Render(snapshot)
	}
}

func (controller *Controller) emitLocked(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
