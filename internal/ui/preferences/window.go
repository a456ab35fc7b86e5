package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	presets     *widget.Entry
	errorLabel  *widget.Label
	trayCheck   *widget.Check
	closeToTray *widget.Check
	launch      *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Countdown Settings")

	presets := widget.NewEntry()
	presets.SetPlaceHolder("60, 300, 600")
	presets.Validator = func(value string) error {
		_, err := ParsePresets(value)
		return err
	}

	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hide()

	trayCheck := widget.NewCheck("Show in system tray", nil)
	closeToTray := widget.NewCheck("Closing the window keeps the timer in the tray", nil)
	trayCheck.OnChanged = func(checked bool) {
		if checked {
			closeToTray.Enable()
			return
		}
		closeToTray.SetChecked(false)
		closeToTray.Disable()
	}

	launch := widget.NewCheck("Open Countdown at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Quick-pick durations in seconds, comma separated"),
		presets,
		errorLabel,
		widget.NewLabelWithStyle("Tray", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		trayCheck,
		closeToTray,
		widget.NewLabelWithStyle("System", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		launch,
	)

	saveButton := widget.NewButton("Save", nil)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 360))

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		presets:     presets,
		errorLabel:  errorLabel,
		trayCheck:   trayCheck,
		closeToTray: closeToTray,
		launch:      launch,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(cancelButton.OnTapped)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.presets.SetText(FormatPresets(settings.Presets))
	prefs.trayCheck.SetChecked(settings.TrayEnabled)
	prefs.closeToTray.SetChecked(settings.CloseToTray && settings.TrayEnabled)
	if settings.TrayEnabled {
		prefs.closeToTray.Enable()
	} else {
		prefs.closeToTray.Disable()
	}
	prefs.launch.SetChecked(settings.LaunchAtLogin)
	prefs.errorLabel.Hide()
}

func (prefs *Window) handleSave() {
	presets, err := ParsePresets(prefs.presets.Text)
	if err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}
	prefs.errorLabel.Hide()

	settings := prefs.settings
	settings.Presets = presets
	settings.TrayEnabled = prefs.trayCheck.Checked
	settings.CloseToTray = prefs.trayCheck.Checked && prefs.closeToTray.Checked
	settings.LaunchAtLogin = prefs.launch.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
