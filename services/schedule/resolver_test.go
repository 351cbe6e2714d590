package schedule

import (
	"testing"

	"fairway/models"
)

// 2026-08-31 is a Monday.
const monday = "2026-08-31"

func mondayTemplate(ownerID string) []models.WeeklyScheduleEntry {
	return []models.WeeklyScheduleEntry{{
		ID: "w1", OwnerID: ownerID, DayOfWeek: 1,
		StartTime: "10:00", EndTime: "18:00", IsAvailable: true,
	}}
}

func statusAt(t *testing.T, slots []models.ResolvedSlot, clock string) models.ResolvedSlot {
	t.Helper()
	for _, s := range slots {
		if s.Time == clock {
			return s
		}
	}
	t.Fatalf("no slot at %s", clock)
	return models.ResolvedSlot{}
}

func TestResolve_DefaultClosed(t *testing.T) {
	slots, diags, err := Resolve(ResolveInput{OwnerID: "c1", Date: monday}, ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if len(slots) != 13 {
		t.Fatalf("expected 13 hourly slots for 10:00-23:00, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Status != models.SlotUnavailable || s.Booked {
			t.Errorf("slot %s: expected unresolved slot to stay unavailable, got %+v", s.Time, s)
		}
	}
}

func TestResolve_TemplateWithRecurringBlock(t *testing.T) {
	in := ResolveInput{
		OwnerID: "c1",
		Date:    monday,
		Weekly:  mondayTemplate("c1"),
		Blocks: []models.RecurringBlock{{
			ID: "b1", OwnerID: "c1", DayOfWeek: 1,
			StartTime: "12:00", EndTime: "13:00", Title: "Lunch", IsActive: true,
		}},
	}
	slots, _, err := Resolve(in, ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"10:00": models.SlotAvailable,
		"11:00": models.SlotAvailable,
		"12:00": models.SlotBlocked,
		"13:00": models.SlotAvailable,
		"17:00": models.SlotAvailable,
		"18:00": models.SlotUnavailable, // half-open template interval
		"22:00": models.SlotUnavailable,
	}
	for clock, status := range want {
		if got := statusAt(t, slots, clock).Status; got != status {
			t.Errorf("slot %s = %s, want %s", clock, got, status)
		}
	}
}

func TestResolve_OverrideBeatsBlock(t *testing.T) {
	in := ResolveInput{
		OwnerID: "c1",
		Date:    monday,
		Weekly:  mondayTemplate("c1"),
		Blocks: []models.RecurringBlock{{
			ID: "b1", OwnerID: "c1", DayOfWeek: 1,
			StartTime: "12:00", EndTime: "13:00", IsActive: true,
		}},
		Overrides: []models.DateOverride{
			{ID: "o1", OwnerID: "c1", Date: monday, StartTime: "12:00", EndTime: "13:00", OverrideType: models.OverrideAvailable},
			{ID: "o2", OwnerID: "c1", Date: monday, StartTime: "14:00", EndTime: "15:00", OverrideType: models.OverrideUnavailable},
		},
	}
	slots, _, err := Resolve(in, ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := statusAt(t, slots, "12:00").Status; got != models.SlotOverrideAvailable {
		t.Errorf("override did not beat block: got %s", got)
	}
	if got := statusAt(t, slots, "14:00").Status; got != models.SlotOverrideUnavailable {
		t.Errorf("unavailable override missing: got %s", got)
	}
	if got := statusAt(t, slots, "11:00").Status; got != models.SlotAvailable {
		t.Errorf("untouched slot changed: got %s", got)
	}
}

func TestResolve_OverlappingOverridesLastWins(t *testing.T) {
	// Conflicting overrides on the same sub-range resolve by iteration
	// order, matching the source system. Keep this pinned so a behavior
	// change is a deliberate one.
	in := ResolveInput{
		OwnerID: "c1",
		Date:    monday,
		Overrides: []models.DateOverride{
			{ID: "o1", OwnerID: "c1", Date: monday, StartTime: "12:00", EndTime: "14:00", OverrideType: models.OverrideAvailable},
			{ID: "o2", OwnerID: "c1", Date: monday, StartTime: "13:00", EndTime: "15:00", OverrideType: models.OverrideUnavailable},
		},
	}
	slots, _, err := Resolve(in, ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := statusAt(t, slots, "12:00").Status; got != models.SlotOverrideAvailable {
		t.Errorf("12:00 = %s, want override-available", got)
	}
	if got := statusAt(t, slots, "13:00").Status; got != models.SlotOverrideUnavailable {
		t.Errorf("13:00 = %s, want override-unavailable (last applied wins)", got)
	}
	if got := statusAt(t, slots, "14:00").Status; got != models.SlotOverrideUnavailable {
		t.Errorf("14:00 = %s, want override-unavailable", got)
	}
}

func TestResolve_BookingIndependentOfStatus(t *testing.T) {
	in := ResolveInput{
		OwnerID: "c1",
		Date:    monday,
		Weekly:  mondayTemplate("c1"),
		Bookings: []models.Booking{
			{ID: "bk1", OwnerID: "c1", Date: monday, StartTime: "11:00", DurationMinutes: 60, Status: models.BookingConfirmed},
			{ID: "bk2", OwnerID: "c1", Date: monday, StartTime: "15:00", DurationMinutes: 120, Status: models.BookingCancelled},
		},
	}
	slots, diags, err := Resolve(in, ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	booked := statusAt(t, slots, "11:00")
	if booked.Status != models.SlotAvailable || !booked.Booked {
		t.Errorf("booked slot must stay available with booked flag set, got %+v", booked)
	}
	if statusAt(t, slots, "15:00").Booked {
		t.Errorf("cancelled booking must not mark slots booked")
	}
	if len(diags) != 0 {
		t.Errorf("consistent bookings must not produce diagnostics, got %v", diags)
	}
}

func TestResolve_InconsistentBookingSurfaced(t *testing.T) {
	in := ResolveInput{
		OwnerID: "c1",
		Date:    monday,
		Bookings: []models.Booking{
			{ID: "bk1", OwnerID: "c1", Date: monday, StartTime: "11:00", DurationMinutes: 60, Status: models.BookingConfirmed},
		},
	}
	slots, diags, err := Resolve(in, ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := statusAt(t, slots, "11:00")
	if s.Status != models.SlotUnavailable || !s.Booked {
		t.Fatalf("expected booked-but-unavailable slot, got %+v", s)
	}
	if len(diags) != 1 || diags[0].Code != DiagInconsistentBooking || diags[0].RecordID != "bk1" {
		t.Fatalf("expected one inconsistent-booking diagnostic, got %v", diags)
	}
}

func TestResolve_MalformedRecordSkippedNotFatal(t *testing.T) {
	in := ResolveInput{
		OwnerID: "c1",
		Date:    monday,
		Weekly:  mondayTemplate("c1"),
		Blocks: []models.RecurringBlock{{
			ID: "bad", OwnerID: "c1", DayOfWeek: 1,
			StartTime: "25:99", EndTime: "13:00", IsActive: true,
		}},
	}
	slots, diags, err := Resolve(in, ResolveOptions{})
	if err != nil {
		t.Fatalf("bad record must not fail the date: %v", err)
	}
	if len(diags) != 1 || diags[0].Code != DiagInvalidTimeFormat || diags[0].RecordID != "bad" {
		t.Fatalf("expected one invalid-time diagnostic, got %v", diags)
	}
	if got := statusAt(t, slots, "12:00").Status; got != models.SlotAvailable {
		t.Errorf("template must survive a skipped block, got %s", got)
	}
}

func TestResolve_EmptyWindow(t *testing.T) {
	slots, _, err := Resolve(
		ResolveInput{OwnerID: "c1", Date: monday, Weekly: mondayTemplate("c1")},
		ResolveOptions{WindowStart: 600, WindowEnd: 600, Granularity: 60},
	)
	if err != nil {
		t.Fatalf("empty window is a valid result, not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty grid, got %d slots", len(slots))
	}
}

func TestResolve_CustomGranularity(t *testing.T) {
	slots, _, err := Resolve(
		ResolveInput{OwnerID: "c1", Date: monday, Weekly: mondayTemplate("c1")},
		ResolveOptions{WindowStart: 600, WindowEnd: 660, Granularity: 30},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 half-hour slots, got %d", len(slots))
	}
	if slots[1].Time != "10:30" {
		t.Errorf("second slot = %s, want 10:30", slots[1].Time)
	}
}

func TestResolve_InvalidDate(t *testing.T) {
	if _, _, err := Resolve(ResolveInput{OwnerID: "c1", Date: "31/08/2026"}, ResolveOptions{}); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
