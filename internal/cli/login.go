package cli

import (
	"errors"

	"countdown/internal/platform"
	"countdown/internal/ui/preferences"

	"github.com/sirupsen/logrus"
)

type loginItem interface {
	Set(enabled bool) error
	Enabled() (bool, error)
}

// syncLaunchAtLogin reports the registered login item in settings so the
// preferences checkbox matches the system rather than the last saved value.
func syncLaunchAtLogin(settings preferences.Settings, item loginItem, logger logrus.FieldLogger) preferences.Settings {
	enabled, err := item.Enabled()
	if errors.Is(err, platform.ErrAutostartUnsupported) {
		logger.Debug("launch at login unsupported")
		return settings
	}
	if err != nil {
		logger.WithError(err).Warn("read launch at login state")
		return settings
	}
	if enabled != settings.LaunchAtLogin {
		logger.WithFields(logrus.Fields{
			"saved":  settings.LaunchAtLogin,
			"system": enabled,
		}).Info("launch at login differs from saved settings")
		settings.LaunchAtLogin = enabled
	}
	return settings
}

func applyLaunchAtLogin(item loginItem, enabled bool, logger logrus.FieldLogger) {
	if err := item.Set(enabled); err != nil {
		logger.WithError(err).WithField("enabled", enabled).Error("update launch at login")
	}
}
