package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"countdown/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PresetSeconds []int `yaml:"preset_seconds"`
	TrayEnabled   *bool `yaml:"tray_enabled"`
	CloseToTray   bool  `yaml:"close_to_tray"`
	LaunchAtLogin bool  `yaml:"launch_at_login"`
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the YAML file at path, creating
// parent directories as needed.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	trayEnabled := settings.TrayEnabled
	fileData := yamlSettings{
		PresetSeconds: preferences.CleanPresets(settings.Presets),
		TrayEnabled:   &trayEnabled,
		CloseToTray:   settings.CloseToTray,
		LaunchAtLogin: settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns <configDir>/<appName>/settings.yaml.
func SettingsPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, settingsFileName)
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if presets := preferences.CleanPresets(fileData.PresetSeconds); len(presets) > 0 {
		settings.Presets = presets
	}
	if fileData.TrayEnabled != nil {
		settings.TrayEnabled = *fileData.TrayEnabled
	}
	settings.CloseToTray = fileData.CloseToTray && settings.TrayEnabled
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
