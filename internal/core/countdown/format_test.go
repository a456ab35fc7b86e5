package countdown

import "testing"

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{61, "01:01"},
		{600, "10:00"},
		{3599, "59:59"},
		{-3, "00:00"},
	}

	for _, tc := range tests {
		if got := FormatDisplay(tc.seconds); got != tc.want {
			t.Errorf("FormatDisplay(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestSnapshotControls(t *testing.T) {
	tests := []struct {
		state                               State
		canStart, canPause, canResume, edit bool
	}{
		{StateIdle, true, false, false, true},
		{StateRunning, false, true, false, false},
		{StatePaused, false, false, true, false},
		{StateExpired, true, false, false, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.state), func(t *testing.T) {
			snapshot := Snapshot{State: tc.state}
			if snapshot.CanStart() != tc.canStart {
				t.Errorf("CanStart() = %v, want %v", snapshot.CanStart(), tc.canStart)
			}
			if snapshot.CanPause() != tc.canPause {
				t.Errorf("CanPause() = %v, want %v", snapshot.CanPause(), tc.canPause)
			}
			if snapshot.CanResume() != tc.canResume {
				t.Errorf("CanResume() = %v, want %v", snapshot.CanResume(), tc.canResume)
			}
			if snapshot.CanEdit() != tc.edit {
				t.Errorf("CanEdit() = %v, want %v", snapshot.CanEdit(), tc.edit)
			}
			if !snapshot.CanReset() {
				t.Error("CanReset() = false, want true")
			}
		})
	}
}
