package cli

import (
	"errors"
	"strconv"
	"sync/atomic"

	"countdown/internal/clock"
	"countdown/internal/core/countdown"
	"countdown/internal/core/model"
	"countdown/internal/platform"
	"countdown/internal/storage"
	"countdown/internal/ui/preferences"
	"countdown/internal/ui/timerview"
	"countdown/internal/ui/tray"
	"countdown/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, opts Options) error {
	logger := newLogger(opts.Verbose, cmd.ErrOrStderr())

	var raise func()
	guard, err := platform.AcquireSingleInstance(appName, func() {
		if raise != nil {
			fyne.Do(raise)
		}
	})
	if errors.Is(err, platform.ErrAlreadyRunning) {
		if signalErr := platform.SignalRunning(appName); signalErr != nil {
			logger.WithError(signalErr).Warn("another instance holds the lock but did not answer")
			return err
		}
		logger.Info("countdown is already running; raised the existing window")
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()
	logger.WithField("address", guard.Address()).Debug("single instance lock acquired")

	settingsPath := opts.ConfigPath
	if settingsPath == "" {
		configDir, err := platform.ConfigDir()
		if err != nil {
			logger.WithError(err).Warn("settings will not be saved")
		} else {
			settingsPath = storage.SettingsPath(configDir, appName)
		}
	}
	settings := preferences.DefaultSettings()
	if settingsPath != "" {
		if settings, err = storage.LoadSettings(settingsPath); err != nil {
			logger.WithError(err).WithField("path", settingsPath).Warn("using default settings")
		}
	}

	autostart, err := platform.NewLoginItem(appName)
	if err != nil {
		logger.WithError(err).Warn("launch at login unavailable")
	} else {
		settings = syncLaunchAtLogin(settings, autostart, logger)
	}

	fyneApp := app.NewWithID("com.countdown.app")
	activeIcon := resources.MustLogo(resources.LogoActive)
	pausedIcon := resources.MustLogo(resources.LogoPaused)
	fyneApp.SetIcon(activeIcon)

	controller := countdown.New(model.DefaultCountdownConfig(), clock.NewSystem(), countdown.Options{Logger: logger})
	defer controller.Close()

	window := fyneApp.NewWindow("Countdown Timer")
	view := timerview.New(controller, settings.Presets, logger)
	view.Attach(window)
	window.Resize(fyne.NewSize(460, 520))
	controller.AddPresenter(view)

	raise = func() {
		window.Show()
		window.RequestFocus()
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.TrayEnabled != settings.TrayEnabled {
			logger.Info("tray setting takes effect on next launch")
		}
		if updated.LaunchAtLogin != settings.LaunchAtLogin && autostart != nil {
			applyLaunchAtLogin(autostart, updated.LaunchAtLogin, logger)
		}
		settings = updated
		view.SetPresets(settings.Presets)
		if settingsPath == "" {
			return
		}
		if err := storage.SaveSettings(settingsPath, settings); err != nil {
			logger.WithError(err).WithField("path", settingsPath).Error("save settings")
		}
	})

	var running atomic.Bool
	fyneApp.Lifecycle().SetOnStarted(func() {
		running.Store(true)
	})

	trayInstalled := false
	if desktopApp, ok := fyneApp.(desktop.App); ok && settings.TrayEnabled && !opts.NoTray {
		trayManager := tray.New(desktopApp, controller, tray.Callbacks{
			OnShow:        raise,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
			OnStatus: func(status string) {
				// the tray host only exists once the driver is running
				if running.Load() {
					systray.SetTooltip(status)
				}
			},
		})
		controller.AddPresenter(trayManager)
		desktopApp.SetSystemTrayIcon(activeIcon)
		trayInstalled = true

		events := controller.Subscribe(5)
		go func() {
			for event := range events {
				if event.Type != countdown.EventStateChange {
					continue
				}
				icon := activeIcon
				if event.Snapshot.IsPaused() {
					icon = pausedIcon
				}
				fyne.Do(func() {
					desktopApp.SetSystemTrayIcon(icon)
				})
			}
		}()
	} else if !opts.NoTray && settings.TrayEnabled {
		logger.Info("system tray unsupported on this platform")
	}

	window.SetCloseIntercept(func() {
		if trayInstalled && settings.CloseToTray {
			window.Hide()
			return
		}
		fyneApp.Quit()
	})

	logStateChanges(controller, logger)

	if opts.Seconds > 0 {
		controller.UpdateInput(strconv.Itoa(opts.Seconds))
		if opts.Start {
			if err := controller.Start(); err != nil {
				logger.WithError(err).Warn("could not start countdown")
			}
		}
	}

	window.Show()
	fyneApp.Run()
	return nil
}

func logStateChanges(controller *countdown.Controller, logger logrus.FieldLogger) {
	events := controller.Subscribe(5)
	go func() {
		for event := range events {
			if event.Type != countdown.EventStateChange {
				continue
			}
			logger.WithFields(logrus.Fields{
				"state":     event.Snapshot.State,
				"remaining": event.Snapshot.Display(),
			}).Info("countdown state changed")
		}
	}()
}
