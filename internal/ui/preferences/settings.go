package preferences

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"countdown/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	// Presets are quick-pick countdown lengths in seconds.
	Presets     []int
	TrayEnabled bool
	CloseToTray bool
	// LaunchAtLogin registers the executable to start with the user session.
	LaunchAtLogin bool
}

// DefaultSettings returns default settings for Countdown.
func DefaultSettings() Settings {
	return Settings{
		Presets:       []int{60, 5 * 60, 10 * 60, 25 * 60},
		TrayEnabled:   true,
		CloseToTray:   false,
		LaunchAtLogin: false,
	}
}

// ValidPreset reports whether seconds fits a countdown.
func ValidPreset(seconds int) bool {
	return seconds > 0 && seconds <= model.DefaultMaxSeconds
}

// CleanPresets drops invalid and duplicate presets and sorts the rest.
func CleanPresets(presets []int) []int {
	seen := make(map[int]bool, len(presets))
	cleaned := make([]int, 0, len(presets))
	for _, seconds := range presets {
		if !ValidPreset(seconds) || seen[seconds] {
			continue
		}
		seen[seconds] = true
		cleaned = append(cleaned, seconds)
	}
	sort.Ints(cleaned)
	return cleaned
}

// ParsePresets reads a comma separated list of seconds.
func ParsePresets(value string) ([]int, error) {
	var presets []int
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		seconds, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("preset %q is not a number", field)
		}
		if !ValidPreset(seconds) {
			return nil, fmt.Errorf("preset %d must be between 1 and %d seconds", seconds, model.DefaultMaxSeconds)
		}
		presets = append(presets, seconds)
	}
	return CleanPresets(presets), nil
}

// FormatPresets renders presets for the preferences entry.
func FormatPresets(presets []int) string {
	fields := make([]string, 0, len(presets))
	for _, seconds := range presets {
		fields = append(fields, strconv.Itoa(seconds))
	}
	return strings.Join(fields, ", ")
}
