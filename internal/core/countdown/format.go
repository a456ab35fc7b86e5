package countdown

import "fmt"

// FormatDisplay renders seconds as zero-padded MM:SS. Negative values render
// as 00:00.
func FormatDisplay(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
