package timerview

import (
	"image/color"
	"strconv"

	"countdown/internal/core/countdown"
	"countdown/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

const appTitle = "Countdown Timer"

// Controller is the subset of the countdown controller the view drives.
type Controller interface {
	Snapshot() countdown.Snapshot
	UpdateInput(raw string)
	Start() error
	Pause()
	Resume()
	TogglePause()
	Reset()
}

// View renders countdown snapshots in a fyne window.
type View struct {
	controller Controller
	logger     logrus.FieldLogger
	window     fyne.Window

	content      fyne.CanvasObject
	input        *widget.Entry
	errorLabel   *widget.Label
	statusLabel  *widget.Label
	display      *canvas.Text
	startButton  *widget.Button
	pauseButton  *widget.Button
	resumeButton *widget.Button
	resetButton  *widget.Button
	presetBox    *fyne.Container
	presets      []*widget.Button

	applying bool
	version  uint64
	last     countdown.Snapshot
}

var displayColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// New builds the view. Call Render (or register the view as a presenter) to
// populate it.
func New(controller Controller, presets []int, logger logrus.FieldLogger) *View {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	view := &View{
		controller: controller,
		logger:     logger.WithField("component", "timerview"),
	}

	view.input = widget.NewEntry()
	view.input.SetPlaceHolder("Enter time (seconds)")
	view.input.OnChanged = view.onInputChanged
	view.input.OnSubmitted = func(string) {
		view.start()
	}

	view.errorLabel = widget.NewLabel("")
	view.errorLabel.Alignment = fyne.TextAlignCenter
	view.errorLabel.Importance = widget.DangerImportance
	view.errorLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.errorLabel.Hide()

	view.statusLabel = widget.NewLabel(statusText(countdown.StateIdle))
	view.statusLabel.Alignment = fyne.TextAlignCenter

	view.display = canvas.NewText(countdown.FormatDisplay(0), displayColor)
	view.display.Alignment = fyne.TextAlignCenter
	view.display.TextStyle = fyne.TextStyle{Monospace: true}
	view.display.TextSize = 56

	view.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), view.start)
	view.startButton.Importance = widget.SuccessImportance
	view.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), controller.Pause)
	view.pauseButton.Importance = widget.WarningImportance
	view.resumeButton = widget.NewButtonWithIcon("Resume", theme.MediaPlayIcon(), controller.Resume)
	view.resumeButton.Importance = widget.HighImportance
	view.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), controller.Reset)
	view.resetButton.Importance = widget.DangerImportance

	view.presetBox = container.NewHBox()
	view.SetPresets(presets)

	title := widget.NewLabelWithStyle(appTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	displayBackground := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 90})
	displayBackground.CornerRadius = 8

	controls := container.NewGridWithColumns(4,
		view.startButton,
		view.pauseButton,
		view.resumeButton,
		view.resetButton,
	)

	view.content = container.NewPadded(container.NewVBox(
		title,
		container.NewCenter(container.NewGridWrap(fyne.NewSize(260, view.input.MinSize().Height), view.input)),
		view.errorLabel,
		container.NewCenter(view.presetBox),
		widget.NewLabelWithStyle("Remaining Time", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewStack(displayBackground, container.NewPadded(view.display)),
		view.statusLabel,
		widget.NewLabelWithStyle("Timer Controls", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		controls,
	))

	view.apply(countdown.Snapshot{State: countdown.StateIdle})
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Attach installs the view into window and binds keyboard shortcuts:
// Space toggles pause and Escape resets.
func (view *View) Attach(window fyne.Window) {
	view.window = window
	window.SetTitle(appTitle)
	window.SetContent(view.content)
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeySpace:
			view.controller.TogglePause()
		case fyne.KeyEscape:
			view.controller.Reset()
		case fyne.KeyReturn, fyne.KeyEnter:
			view.start()
		}
	})
	window.Canvas().Focus(view.input)
}

// Render schedules snapshot onto the fyne main goroutine.
func (view *View) Render(snapshot countdown.Snapshot) {
	fyne.Do(func() {
		view.apply(snapshot)
	})
}

// SetPresets replaces the quick-pick buttons. Invalid durations are skipped.
func (view *View) SetPresets(presets []int) {
	view.presetBox.RemoveAll()
	view.presets = view.presets[:0]
	for _, seconds := range presets {
		if !preferences.ValidPreset(seconds) {
			continue
		}
		value := strconv.Itoa(seconds)
		button := widget.NewButton(countdown.FormatDisplay(seconds), func() {
			view.controller.UpdateInput(value)
		})
		button.Importance = widget.LowImportance
		view.presets = append(view.presets, button)
		view.presetBox.Add(button)
	}
	view.applyPresetState(view.last)
}

func (view *View) start() {
	if err := view.controller.Start(); err != nil {
		view.logger.WithError(err).Debug("start refused")
	}
}

func (view *View) onInputChanged(text string) {
	if view.applying {
		return
	}
	view.controller.UpdateInput(text)
	// Rejected edits leave the stored value unchanged; put it back on screen.
	if stored := view.controller.Snapshot().InputSeconds; stored != text {
		view.setInput(stored)
	}
}

func (view *View) apply(snapshot countdown.Snapshot) {
	if snapshot.Version < view.version {
		return
	}
	view.version = snapshot.Version
	view.last = snapshot

	if view.input.Text != snapshot.InputSeconds {
		view.setInput(snapshot.InputSeconds)
	}
	setEnabled(view.input, snapshot.CanEdit())

	if snapshot.ValidationError == "" {
		view.errorLabel.SetText("")
		view.errorLabel.Hide()
	} else {
		view.errorLabel.SetText(snapshot.ValidationError)
		view.errorLabel.Show()
	}

	view.display.Text = snapshot.Display()
	view.display.Refresh()
	view.statusLabel.SetText(statusText(snapshot.State))

	setEnabled(view.startButton, snapshot.CanStart())
	setEnabled(view.pauseButton, snapshot.CanPause())
	setEnabled(view.resumeButton, snapshot.CanResume())
	setEnabled(view.resetButton, snapshot.CanReset())
	view.applyPresetState(snapshot)

	if view.window != nil {
		if snapshot.IsActive() {
			view.window.SetTitle(snapshot.Display() + " - " + appTitle)
		} else {
			view.window.SetTitle(appTitle)
		}
		view.updateFocus(snapshot)
	}
}

// updateFocus keeps window shortcuts reachable: the canvas key handler only
// sees keys while nothing is focused, and a disabled entry keeps its focus.
func (view *View) updateFocus(snapshot countdown.Snapshot) {
	canvas := view.window.Canvas()
	focused := canvas.Focused()
	switch {
	case !snapshot.CanEdit() && focused == view.input:
		canvas.Unfocus()
	case snapshot.CanEdit() && focused == nil && snapshot.State == countdown.StateIdle:
		canvas.Focus(view.input)
	}
}

func (view *View) applyPresetState(snapshot countdown.Snapshot) {
	for _, button := range view.presets {
		setEnabled(button, snapshot.CanEdit())
	}
}

func (view *View) setInput(text string) {
	view.applying = true
	view.input.SetText(text)
	view.applying = false
}

type disableable interface {
	Enable()
	Disable()
	Disabled() bool
}

func setEnabled(object disableable, enabled bool) {
	if enabled == !object.Disabled() {
		return
	}
	if enabled {
		object.Enable()
		return
	}
	object.Disable()
}

func statusText(state countdown.State) string {
	switch state {
	case countdown.StateRunning:
		return "Running"
	case countdown.StatePaused:
		return "Paused"
	case countdown.StateExpired:
		return "Time's up"
	default:
		return "Ready"
	}
}
