package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrAutostartUnsupported indicates launch-at-login is not available on this system.
var ErrAutostartUnsupported = errors.New("launch at login unsupported")

// LoginItem registers the application to launch when the user logs in.
type LoginItem struct {
	appName  string
	execPath string
}

// NewLoginItem creates a login item for the running executable.
func NewLoginItem(appName string) (*LoginItem, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return NewLoginItemFor(appName, execPath)
}

// NewLoginItemFor creates a login item that launches execPath.
func NewLoginItemFor(appName, execPath string) (*LoginItem, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, errors.New("login item: app name is empty")
	}
	if execPath == "" {
		return nil, errors.New("login item: exec path is empty")
	}
	return &LoginItem{appName: appName, execPath: execPath}, nil
}

// Set enables or disables launching at login.
func (item *LoginItem) Set(enabled bool) error {
	if enabled {
		if err := enableLoginItem(item.appName, item.execPath); err != nil {
			return fmt.Errorf("enable launch at login: %w", err)
		}
		return nil
	}
	if err := disableLoginItem(item.appName); err != nil {
		return fmt.Errorf("disable launch at login: %w", err)
	}
	return nil
}

// Enabled reports whether the login item is currently registered.
func (item *LoginItem) Enabled() (bool, error) {
	return loginItemEnabled(item.appName)
}

// ConfigDir returns the OS-standard configuration directory, falling back to
// a home-relative default when the environment does not name one.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

func slugName(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(name, " ", "-")
}
