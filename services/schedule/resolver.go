package schedule

import (
	"fmt"
	"time"

	"fairway/models"
)

// Default business-hours window (10:00-23:00) and slot granularity.
const (
	DefaultWindowStart = 10 * 60
	DefaultWindowEnd   = 23 * 60
	DefaultGranularity = 60
)

// ResolveOptions controls the slot grid shape. Zero values fall back to the
// venue defaults.
type ResolveOptions struct {
	WindowStart int // minutes from midnight, inclusive
	WindowEnd   int // minutes from midnight, exclusive
	Granularity int // minutes per slot
}

func (o ResolveOptions) withDefaults() ResolveOptions {
	if o.Granularity <= 0 {
		o.Granularity = DefaultGranularity
	}
	if o.WindowStart == 0 && o.WindowEnd == 0 {
		o.WindowStart = DefaultWindowStart
		o.WindowEnd = DefaultWindowEnd
	}
	return o
}

// ResolveInput carries one owner's raw schedule records for one date. The
// record slices come straight from the repositories; missing collaborator
// data is just an empty slice, never an error.
type ResolveInput struct {
	OwnerID   string
	Date      string // "2006-01-02"
	Weekly    []models.WeeklyScheduleEntry
	Blocks    []models.RecurringBlock
	Overrides []models.DateOverride
	Bookings  []models.Booking
}

// Resolve merges the weekly template, recurring blocks and date overrides
// into a per-slot status grid for one owner on one date, then overlays
// confirmed bookings as an independent booked flag.
//
// Precedence is strict per slot: template < recurring block < date override.
// Within the override category, overlapping records of conflicting type keep
// the source system's behavior: the last record applied wins. Slots nothing
// claims stay unavailable.
//
// Malformed records are skipped and reported in the returned diagnostics; a
// booking that covers a slot resolved unavailable or blocked is flagged as
// inconsistent rather than dropped. The only hard error is an unparseable
// date. An empty window returns an empty, valid grid.
func Resolve(in ResolveInput, opts ResolveOptions) ([]models.ResolvedSlot, []Diagnostic, error) {
	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve: invalid date %q: %w", in.Date, err)
	}
	weekday := int(day.Weekday())
	opts = opts.withDefaults()

	var diags []Diagnostic

	type span struct {
		iv     Interval
		status string
	}

	var weekly []span
	for _, w := range in.Weekly {
		if w.DayOfWeek != weekday || !w.IsAvailable {
			continue
		}
		iv, err := ParseInterval(w.StartTime, w.EndTime, false)
		if err != nil {
			diags = append(diags, Diagnostic{Code: DiagInvalidTimeFormat, RecordID: w.ID, Detail: err.Error()})
			continue
		}
		weekly = append(weekly, span{iv: iv, status: models.SlotAvailable})
	}

	var blocks []span
	for _, b := range in.Blocks {
		if b.DayOfWeek != weekday || !b.IsActive {
			continue
		}
		iv, err := ParseInterval(b.StartTime, b.EndTime, false)
		if err != nil {
			diags = append(diags, Diagnostic{Code: DiagInvalidTimeFormat, RecordID: b.ID, Detail: err.Error()})
			continue
		}
		blocks = append(blocks, span{iv: iv, status: models.SlotBlocked})
	}

	var overrides []span
	for _, o := range in.Overrides {
		if o.Date != in.Date {
			continue
		}
		var status string
		switch o.OverrideType {
		case models.OverrideAvailable:
			status = models.SlotOverrideAvailable
		case models.OverrideUnavailable:
			status = models.SlotOverrideUnavailable
		default:
			diags = append(diags, Diagnostic{
				Code:     DiagUnknownOverrideType,
				RecordID: o.ID,
				Detail:   fmt.Sprintf("unknown override type %q", o.OverrideType),
			})
			continue
		}
		iv, err := ParseInterval(o.StartTime, o.EndTime, false)
		if err != nil {
			diags = append(diags, Diagnostic{Code: DiagInvalidTimeFormat, RecordID: o.ID, Detail: err.Error()})
			continue
		}
		overrides = append(overrides, span{iv: iv, status: status})
	}

	type bookingSpan struct {
		iv Interval
		id string
	}
	var bookings []bookingSpan
	for _, bk := range in.Bookings {
		if bk.Date != in.Date || bk.Status == models.BookingCancelled {
			continue
		}
		start, err := ParseClock(bk.StartTime)
		if err != nil {
			diags = append(diags, Diagnostic{Code: DiagInvalidTimeFormat, RecordID: bk.ID, Detail: err.Error()})
			continue
		}
		bookings = append(bookings, bookingSpan{
			iv: Interval{Start: start, End: start + bk.DurationMinutes},
			id: bk.ID,
		})
	}

	var slots []models.ResolvedSlot
	for t := opts.WindowStart; t < opts.WindowEnd; t += opts.Granularity {
		status := models.SlotUnavailable
		for _, w := range weekly {
			if w.iv.Contains(t) {
				status = w.status
			}
		}
		for _, b := range blocks {
			if b.iv.Contains(t) {
				// Blocks beat the template unconditionally; a later block
				// can never un-block.
				status = b.status
			}
		}
		for _, o := range overrides {
			if o.iv.Contains(t) {
				status = o.status
			}
		}

		slot := models.ResolvedSlot{Start: t, Time: FormatMinutes(t), Status: status}
		for _, bk := range bookings {
			if !bk.iv.Contains(t) {
				continue
			}
			slot.Booked = true
			if status == models.SlotUnavailable || status == models.SlotBlocked {
				diags = append(diags, Diagnostic{
					Code:     DiagInconsistentBooking,
					RecordID: bk.id,
					Detail:   fmt.Sprintf("booking covers %s slot at %s", status, slot.Time),
				})
			}
		}
		slots = append(slots, slot)
	}

	return slots, diags, nil
}
