//go:build !linux && !darwin && !windows

package platform

import "path/filepath"

func enableLoginItem(string, string) error {
	return ErrAutostartUnsupported
}

func disableLoginItem(string) error {
	return nil
}

func loginItemEnabled(string) (bool, error) {
	return false, nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
