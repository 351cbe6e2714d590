package schedule

import (
	"testing"

	"fairway/models"
)

func slot(clock string, status string, booked bool) models.ResolvedSlot {
	start, _ := ParseClock(clock)
	return models.ResolvedSlot{Start: start, Time: clock, Status: status, Booked: booked}
}

func TestSummarize_DayStatuses(t *testing.T) {
	cases := []struct {
		name       string
		slots      []models.ResolvedSlot
		wantStatus string
		wantTotal  float64
		wantBooked float64
	}{
		{
			name: "no open slots",
			slots: []models.ResolvedSlot{
				slot("10:00", models.SlotUnavailable, false),
				slot("11:00", models.SlotBlocked, false),
			},
			wantStatus: models.DayUnavailable,
		},
		{
			name: "fully booked",
			slots: []models.ResolvedSlot{
				slot("10:00", models.SlotAvailable, true),
				slot("11:00", models.SlotOverrideAvailable, true),
			},
			wantStatus: models.DayFullyBooked,
			wantTotal:  2,
			wantBooked: 2,
		},
		{
			name: "partially booked",
			slots: []models.ResolvedSlot{
				slot("10:00", models.SlotAvailable, true),
				slot("11:00", models.SlotAvailable, false),
				slot("12:00", models.SlotBlocked, false),
			},
			wantStatus: models.DayPartiallyBooked,
			wantTotal:  2,
			wantBooked: 1,
		},
		{
			name: "open and unbooked",
			slots: []models.ResolvedSlot{
				slot("10:00", models.SlotAvailable, false),
			},
			wantStatus: models.DayAvailable,
			wantTotal:  1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize("2026-08-31", tc.slots, SummaryOptions{Granularity: 60})
			if got.Status != tc.wantStatus {
				t.Errorf("Status = %s, want %s", got.Status, tc.wantStatus)
			}
			if got.TotalHours != tc.wantTotal {
				t.Errorf("TotalHours = %v, want %v", got.TotalHours, tc.wantTotal)
			}
			if got.BookedHours != tc.wantBooked {
				t.Errorf("BookedHours = %v, want %v", got.BookedHours, tc.wantBooked)
			}
		})
	}
}

func TestSummarize_NextAvailable(t *testing.T) {
	slots := []models.ResolvedSlot{
		slot("10:00", models.SlotAvailable, true),
		slot("11:00", models.SlotAvailable, false),
		slot("12:00", models.SlotOverrideAvailable, false),
	}

	got := Summarize("2026-08-31", slots, SummaryOptions{Granularity: 60})
	if got.NextAvailable != "11:00" {
		t.Errorf("NextAvailable = %q, want 11:00 (booked slot skipped)", got.NextAvailable)
	}

	// On the current date the search starts at now, not the window open.
	got = Summarize("2026-08-31", slots, SummaryOptions{Granularity: 60, IsToday: true, Now: 11*60 + 30})
	if got.NextAvailable != "12:00" {
		t.Errorf("NextAvailable = %q, want 12:00 when now is 11:30", got.NextAvailable)
	}

	got = Summarize("2026-08-31", slots, SummaryOptions{Granularity: 60, IsToday: true, Now: 13 * 60})
	if got.NextAvailable != "" {
		t.Errorf("NextAvailable = %q, want empty when the day is spent", got.NextAvailable)
	}
}

func TestSummarize_HalfHourGranularity(t *testing.T) {
	slots := []models.ResolvedSlot{
		slot("10:00", models.SlotAvailable, false),
		slot("10:30", models.SlotAvailable, true),
		slot("11:00", models.SlotAvailable, false),
	}
	got := Summarize("2026-08-31", slots, SummaryOptions{Granularity: 30})
	if got.TotalHours != 1.5 {
		t.Errorf("TotalHours = %v, want 1.5", got.TotalHours)
	}
	if got.BookedHours != 0.5 {
		t.Errorf("BookedHours = %v, want 0.5", got.BookedHours)
	}
}

func TestSummarize_EmptyGrid(t *testing.T) {
	got := Summarize("2026-08-31", nil, SummaryOptions{})
	if got.Status != models.DayUnavailable || got.TotalHours != 0 || got.NextAvailable != "" {
		t.Fatalf("empty grid must summarize as unavailable, got %+v", got)
	}
}
