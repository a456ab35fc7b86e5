package tray

import (
	"testing"

	"countdown/internal/core/countdown"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

type fakeController struct {
	calls []string
}

func (controller *fakeController) Start() error {
	controller.calls = append(controller.calls, "start")
	return nil
}
func (controller *fakeController) Pause()  { controller.calls = append(controller.calls, "pause") }
func (controller *fakeController) Resume() { controller.calls = append(controller.calls, "resume") }
func (controller *fakeController) Reset()  { controller.calls = append(controller.calls, "reset") }

func itemByLabel(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

func TestNewInstallsIdleMenu(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, &fakeController{}, Callbacks{})

	require.NotEmpty(t, host.menus)
	menu := host.menus[len(host.menus)-1]
	assert.Same(t, manager.Menu(), menu)
	assert.Equal(t, "Ready", menu.Items[0].Label)
	assert.False(t, itemByLabel(t, menu, "Start").Disabled)
	assert.True(t, itemByLabel(t, menu, "Pause").Disabled)
	assert.True(t, itemByLabel(t, menu, "Resume").Disabled)
	assert.False(t, itemByLabel(t, menu, "Reset").Disabled)
}

func TestApplyFollowsSnapshot(t *testing.T) {
	tests := []struct {
		name                 string
		snapshot             countdown.Snapshot
		status               string
		start, pause, resume bool
	}{
		{"Running", countdown.Snapshot{Version: 1, State: countdown.StateRunning, RemainingSeconds: 90}, "Remaining: 01:30", false, true, false},
		{"Paused", countdown.Snapshot{Version: 2, State: countdown.StatePaused, RemainingSeconds: 61}, "Remaining: 01:01 (paused)", false, false, true},
		{"Expired", countdown.Snapshot{Version: 3, State: countdown.StateExpired}, "Time's up", true, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			manager := New(&fakeHost{}, &fakeController{}, Callbacks{})
			manager.apply(tc.snapshot)

			menu := manager.Menu()
			assert.Equal(t, tc.status, menu.Items[0].Label)
			assert.Equal(t, !tc.start, itemByLabel(t, menu, "Start").Disabled)
			assert.Equal(t, !tc.pause, itemByLabel(t, menu, "Pause").Disabled)
			assert.Equal(t, !tc.resume, itemByLabel(t, menu, "Resume").Disabled)
		})
	}
}

func TestApplyDropsStaleSnapshot(t *testing.T) {
	manager := New(&fakeHost{}, &fakeController{}, Callbacks{})
	manager.apply(countdown.Snapshot{Version: 5, State: countdown.StateRunning, RemainingSeconds: 10})
	manager.apply(countdown.Snapshot{Version: 4, State: countdown.StateIdle})

	assert.Equal(t, "Remaining: 00:10", manager.Menu().Items[0].Label)
}

func TestMenuActions(t *testing.T) {
	controller := &fakeController{}
	var shown, prefs, quit int
	manager := New(&fakeHost{}, controller, Callbacks{
		OnShow:        func() { shown++ },
		OnPreferences: func() { prefs++ },
		OnQuit:        func() { quit++ },
	})
	menu := manager.Menu()

	for _, label := range []string{"Start", "Pause", "Resume", "Reset", "Show timer", "Preferences", "Quit"} {
		itemByLabel(t, menu, label).Action()
	}

	assert.Equal(t, []string{"start", "pause", "resume", "reset"}, controller.calls)
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, prefs)
	assert.Equal(t, 1, quit)
}

func TestMenuActionsWithoutCallbacks(t *testing.T) {
	manager := New(nil, &fakeController{}, Callbacks{})
	assert.NotPanics(t, func() {
		itemByLabel(t, manager.Menu(), "Show timer").Action()
		itemByLabel(t, manager.Menu(), "Quit").Action()
	})
}

func TestOnStatusFiresOnChange(t *testing.T) {
	var statuses []string
	manager := New(&fakeHost{}, &fakeController{}, Callbacks{
		OnStatus: func(status string) { statuses = append(statuses, status) },
	})

	manager.apply(countdown.Snapshot{Version: 1, State: countdown.StateRunning, RemainingSeconds: 3})
	manager.apply(countdown.Snapshot{Version: 2, State: countdown.StateRunning, RemainingSeconds: 3})
	manager.apply(countdown.Snapshot{Version: 3, State: countdown.StateRunning, RemainingSeconds: 2})

	assert.Equal(t, []string{"Ready", "Remaining: 00:03", "Remaining: 00:02"}, statuses)
}
