package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"fairway/models"
	"fairway/services/schedule"
)

// 2026-08-31 is a Monday.
const monday = "2026-08-31"

type fakeScheduleRepo struct {
	weekly    []models.WeeklyScheduleEntry
	blocks    []models.RecurringBlock
	overrides []models.DateOverride
}

func (f *fakeScheduleRepo) GetWeeklyEntries(ctx context.Context, ownerID string) ([]models.WeeklyScheduleEntry, error) {
	return f.weekly, nil
}
func (f *fakeScheduleRepo) UpsertWeeklyEntry(ctx context.Context, entry models.WeeklyScheduleEntry) error {
	return nil
}
func (f *fakeScheduleRepo) DeleteWeeklyEntry(ctx context.Context, ownerID, entryID string) error {
	return nil
}
func (f *fakeScheduleRepo) GetRecurringBlocks(ctx context.Context, ownerID string) ([]models.RecurringBlock, error) {
	return f.blocks, nil
}
func (f *fakeScheduleRepo) CreateRecurringBlock(ctx context.Context, block models.RecurringBlock) error {
	return nil
}
func (f *fakeScheduleRepo) DeleteRecurringBlock(ctx context.Context, ownerID, blockID string) error {
	return nil
}
func (f *fakeScheduleRepo) GetOverridesByDate(ctx context.Context, ownerID, date string) ([]models.DateOverride, error) {
	var out []models.DateOverride
	for _, o := range f.overrides {
		if o.Date == date {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeScheduleRepo) GetOverridesInRange(ctx context.Context, ownerID, startDate, endDate string) ([]models.DateOverride, error) {
	return f.overrides, nil
}
func (f *fakeScheduleRepo) CreateOverride(ctx context.Context, override models.DateOverride) error {
	return nil
}
func (f *fakeScheduleRepo) DeleteOverride(ctx context.Context, ownerID, overrideID string) error {
	return nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	return &booking, nil
}
func (f *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			return &f.bookings[i], nil
		}
	}
	return nil, errors.New("booking not found")
}
func (f *fakeBookingRepo) Update(ctx context.Context, booking models.Booking) error { return nil }
func (f *fakeBookingRepo) Cancel(ctx context.Context, bookingID string) error       { return nil }
func (f *fakeBookingRepo) GetByOwnerAndDate(ctx context.Context, ownerID, date string, includeCancelled bool) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.OwnerID != ownerID || b.Date != date {
			continue
		}
		if !includeCancelled && b.Status == models.BookingCancelled {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}
func (f *fakeBookingRepo) GetByOwnerInRange(ctx context.Context, ownerID, startDate, endDate string) ([]models.Booking, error) {
	return f.bookings, nil
}
func (f *fakeBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date && b.Status != models.BookingCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestService(sched *fakeScheduleRepo, book *fakeBookingRepo) *DefaultService {
	return &DefaultService{
		ScheduleRepo: sched,
		BookingRepo:  book,
		Logger:       zap.NewNop(),
		Now: func() time.Time {
			return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
		},
	}
}

func TestGetDayGrid(t *testing.T) {
	sched := &fakeScheduleRepo{
		weekly: []models.WeeklyScheduleEntry{
			{ID: "w1", DayOfWeek: 1, StartTime: "10:00", EndTime: "14:00", IsAvailable: true},
		},
	}
	book := &fakeBookingRepo{
		bookings: []models.Booking{
			{ID: "b1", OwnerID: "coach-1", Date: monday, StartTime: "11:00",
				DurationMinutes: 60, Status: models.BookingConfirmed},
			{ID: "b2", OwnerID: "coach-1", Date: monday, StartTime: "12:00",
				DurationMinutes: 60, Status: models.BookingCancelled},
		},
	}
	svc := newTestService(sched, book)

	grid, err := svc.GetDayGrid(context.Background(), "coach-1", monday, 0)
	if err != nil {
		t.Fatalf("GetDayGrid failed: %v", err)
	}
	if len(grid.Slots) != 13 {
		t.Fatalf("expected 13 hourly slots for the 10:00-23:00 window, got %d", len(grid.Slots))
	}
	if got := grid.Slots[0].Status; got != models.SlotAvailable {
		t.Errorf("10:00 slot: got status %q, want %q", got, models.SlotAvailable)
	}
	if !grid.Slots[1].Booked {
		t.Errorf("11:00 slot should be booked")
	}
	if grid.Slots[2].Booked {
		t.Errorf("12:00 slot belongs to a cancelled booking; must not be booked")
	}
	if got := grid.Slots[4].Status; got != models.SlotUnavailable {
		t.Errorf("14:00 slot: got status %q, want %q", got, models.SlotUnavailable)
	}
	if len(grid.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %+v", grid.Diagnostics)
	}
}

func TestGetRangeSummaries(t *testing.T) {
	sched := &fakeScheduleRepo{
		weekly: []models.WeeklyScheduleEntry{
			{ID: "w1", DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", IsAvailable: true},
		},
	}
	svc := newTestService(sched, &fakeBookingRepo{})

	summaries, err := svc.GetRangeSummaries(context.Background(), "coach-1", monday, "2026-09-01")
	if err != nil {
		t.Fatalf("GetRangeSummaries failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Status != models.DayAvailable {
		t.Errorf("Monday: got %q, want %q", summaries[0].Status, models.DayAvailable)
	}
	if summaries[0].NextAvailable != "10:00" {
		t.Errorf("Monday next available: got %q, want 10:00", summaries[0].NextAvailable)
	}
	if summaries[1].Status != models.DayUnavailable {
		t.Errorf("Tuesday has no template entry: got %q, want %q", summaries[1].Status, models.DayUnavailable)
	}
}

func TestGetRangeSummariesRejectsBadRanges(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeBookingRepo{})

	if _, err := svc.GetRangeSummaries(context.Background(), "coach-1", "not-a-date", monday); err == nil {
		t.Errorf("expected error for malformed start date")
	}
	if _, err := svc.GetRangeSummaries(context.Background(), "coach-1", monday, "2026-08-01"); err == nil {
		t.Errorf("expected error for end before start")
	}
	if _, err := svc.GetRangeSummaries(context.Background(), "coach-1", monday, "2027-01-01"); err == nil {
		t.Errorf("expected error for a range over the cap")
	}
}

func TestGetDayLayout(t *testing.T) {
	book := &fakeBookingRepo{
		bookings: []models.Booking{
			{ID: "b1", OwnerID: "coach-1", Date: monday, CustomerName: "Alice",
				StartTime: "10:00", DurationMinutes: 120, Status: models.BookingConfirmed},
			{ID: "b2", OwnerID: "coach-2", Date: monday, CustomerName: "Bob",
				StartTime: "11:00", DurationMinutes: 60, Status: models.BookingConfirmed},
			{ID: "b3", OwnerID: "coach-1", Date: monday, CustomerName: "Carol",
				StartTime: "bad-time", DurationMinutes: 60, Status: models.BookingConfirmed},
		},
	}
	svc := newTestService(&fakeScheduleRepo{}, book)

	blocks, err := svc.GetDayLayout(context.Background(), monday)
	if err != nil {
		t.Fatalf("GetDayLayout failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("malformed booking should be skipped; got %d blocks", len(blocks))
	}
	for _, b := range blocks {
		if b.TotalColumns != 2 {
			t.Errorf("block %s: got TotalColumns %d, want 2", b.ID, b.TotalColumns)
		}
	}
	if blocks[0].Column == blocks[1].Column {
		t.Errorf("overlapping blocks share column %d", blocks[0].Column)
	}
	if blocks[0].Label != "Alice" {
		t.Errorf("label: got %q, want Alice", blocks[0].Label)
	}

	schedBlocks := schedule.Layout(nil)
	if len(schedBlocks) != 0 {
		t.Errorf("layout of no bookings should be empty")
	}
}
