package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSave(t *testing.T) {
	app := test.NewTempApp(t)
	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	assert.Equal(t, "60, 300, 600, 1500", prefs.presets.Text)

	prefs.presets.SetText("45, 15")
	prefs.closeToTray.SetChecked(true)
	prefs.launch.SetChecked(true)
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, []int{15, 45}, saved[0].Presets)
	assert.True(t, saved[0].TrayEnabled)
	assert.True(t, saved[0].CloseToTray)
	assert.True(t, saved[0].LaunchAtLogin)
	assert.Equal(t, saved[0], prefs.Settings())
}

func TestWindowSaveRejectsInvalidPresets(t *testing.T) {
	app := test.NewTempApp(t)
	called := false
	prefs := New(app, DefaultSettings(), func(Settings) {
		called = true
	})

	prefs.presets.SetText("10, nope")
	prefs.handleSave()

	assert.False(t, called)
	assert.True(t, prefs.errorLabel.Visible())
	assert.Contains(t, prefs.errorLabel.Text, "nope")
}

func TestWindowTrayDisablesCloseToTray(t *testing.T) {
	app := test.NewTempApp(t)
	settings := DefaultSettings()
	settings.CloseToTray = true
	prefs := New(app, settings, nil)
	require.True(t, prefs.closeToTray.Checked)

	prefs.trayCheck.SetChecked(false)
	assert.False(t, prefs.closeToTray.Checked)
	assert.True(t, prefs.closeToTray.Disabled())

	prefs.handleSave()
	assert.False(t, prefs.Settings().TrayEnabled)
	assert.False(t, prefs.Settings().CloseToTray)
}
