package timeclock

import (
	"testing"

	"fairway/models"
)

func TestEntryMinutes(t *testing.T) {
	cases := []struct {
		name    string
		entry   models.TimeEntry
		want    int
		wantErr bool
	}{
		{
			name:  "normal shift",
			entry: models.TimeEntry{ClockInTime: "09:00", ClockOutTime: "17:30"},
			want:  510,
		},
		{
			name:  "open shift counts zero",
			entry: models.TimeEntry{ClockInTime: "09:00", ClockOutTime: ""},
			want:  0,
		},
		{
			name:  "overnight shift with explicit flag",
			entry: models.TimeEntry{ClockInTime: "22:00", ClockOutTime: "02:00", CrossesMidnight: true},
			want:  240,
		},
		{
			name:    "malformed clock time",
			entry:   models.TimeEntry{ClockInTime: "9am", ClockOutTime: "17:00"},
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EntryMinutes(tc.entry)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("EntryMinutes() = %d, want %d", got, tc.want)
			}
		})
	}
}
