package tray

import (
	"fmt"

	"countdown/internal/core/countdown"

	"fyne.io/fyne/v2"
)

// MenuHost installs the tray menu. desktop.App satisfies it.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Controller is the subset of the countdown controller the tray drives.
type Controller interface {
	Start() error
	Pause()
	Resume()
	Reset()
}

// Callbacks defines tray action handlers that are not countdown operations.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnQuit        func()
	// OnStatus receives the status line whenever it changes.
	OnStatus func(status string)
}

// Manager handles system tray state.
type Manager struct {
	host       MenuHost
	controller Controller
	callbacks  Callbacks

	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	resumeItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	version    uint64
	status     string
}

// New creates a tray manager and installs its menu on host.
func New(host MenuHost, controller Controller, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:       host,
		controller: controller,
		callbacks:  callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start", func() {
		_ = manager.controller.Start()
	})
	manager.pauseItem = fyne.NewMenuItem("Pause", manager.controller.Pause)
	manager.resumeItem = fyne.NewMenuItem("Resume", manager.controller.Resume)
	manager.resetItem = fyne.NewMenuItem("Reset", manager.controller.Reset)

	show := fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("Countdown",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		manager.resumeItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		show,
		preferences,
		quit,
	)

	manager.apply(countdown.Snapshot{State: countdown.StateIdle})
	return manager
}

// Render schedules snapshot onto the fyne main goroutine.
func (manager *Manager) Render(snapshot countdown.Snapshot) {
	fyne.Do(func() {
		manager.apply(snapshot)
	})
}

// Menu returns the installed menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) apply(snapshot countdown.Snapshot) {
	if snapshot.Version < manager.version {
		return
	}
	manager.version = snapshot.Version

	status := statusLabel(snapshot)
	manager.statusItem.Label = status
	manager.startItem.Disabled = !snapshot.CanStart()
	manager.pauseItem.Disabled = !snapshot.CanPause()
	manager.resumeItem.Disabled = !snapshot.CanResume()
	manager.resetItem.Disabled = !snapshot.CanReset()
	manager.refreshMenu()

	if status != manager.status {
		manager.status = status
		if manager.callbacks.OnStatus != nil {
			manager.callbacks.OnStatus(status)
		}
	}
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

func statusLabel(snapshot countdown.Snapshot) string {
	switch snapshot.State {
	case countdown.StatePaused:
		return fmt.Sprintf("Remaining: %s (paused)", snapshot.Display())
	case countdown.StateExpired:
		return "Time's up"
	case countdown.StateRunning:
		return fmt.Sprintf("Remaining: %s", snapshot.Display())
	default:
		return "Ready"
	}
}
