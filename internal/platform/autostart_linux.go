//go:build linux

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func enableLoginItem(appName, execPath string) error {
	autostartDir, err := autostartDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(autostartDir, 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}

	desktopFilePath := filepath.Join(autostartDir, slugName(appName)+".desktop")
	if err := os.WriteFile(desktopFilePath, []byte(buildDesktopEntry(appName, execPath)), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func disableLoginItem(appName string) error {
	autostartDir, err := autostartDir()
	if err != nil {
		return err
	}
	desktopFilePath := filepath.Join(autostartDir, slugName(appName)+".desktop")
	if err := os.Remove(desktopFilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func loginItemEnabled(appName string) (bool, error) {
	autostartDir, err := autostartDir()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(filepath.Join(autostartDir, slugName(appName)+".desktop"))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func autostartDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func buildDesktopEntry(appName, execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") && !strings.HasPrefix(execLine, `"`) {
		execLine = `"` + execLine + `"`
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Comment=Countdown timer
Exec=%s
Icon=alarm-symbolic
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		appName,
		execLine,
	)
}
