package storage

import (
	"os"
	"path/filepath"
	"testing"

	"countdown/internal/ui/preferences"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(preferences.DefaultSettings(), settings); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", settingsFileName)
	want := preferences.Settings{
		Presets:       []int{30, 90},
		TrayEnabled:   true,
		CloseToTray:   true,
		LaunchAtLogin: true,
	}

	require.NoError(t, SaveSettings(path, want))
	got, err := LoadSettings(path)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettingsSanitizes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want preferences.Settings
	}{
		{
			name: "InvalidPresetsKeepDefaults",
			yaml: "preset_seconds: [0, 4000, -5]\n",
			want: preferences.DefaultSettings(),
		},
		{
			name: "PresetsCleaned",
			yaml: "preset_seconds: [120, 5000, 10, 120]\n",
			want: preferences.Settings{Presets: []int{10, 120}, TrayEnabled: true},
		},
		{
			name: "TrayDisabledDropsCloseToTray",
			yaml: "tray_enabled: false\nclose_to_tray: true\n",
			want: preferences.Settings{Presets: preferences.DefaultSettings().Presets},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), settingsFileName)
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))

			got, err := LoadSettings(path)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadSettingsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("preset_seconds: {not: a list"), 0o644))

	settings, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSettingsPath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "Countdown", "settings.yaml"), SettingsPath(dir, "Countdown"))
}
