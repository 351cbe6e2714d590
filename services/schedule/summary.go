package schedule

import (
	"fairway/models"
)

// SummaryOptions shapes day-level aggregation. Granularity must match the
// grid the slots were resolved at. For the current date set IsToday and Now
// (minutes from midnight) so nextAvailable skips slots already in the past.
type SummaryOptions struct {
	Granularity int
	IsToday     bool
	Now         int
}

// Summarize reduces one date's resolved slot grid to a card-sized summary:
// open hours, booked hours, the next free slot and a coarse day status.
func Summarize(date string, slots []models.ResolvedSlot, opts SummaryOptions) models.DaySummary {
	if opts.Granularity <= 0 {
		opts.Granularity = DefaultGranularity
	}

	searchFrom := 0
	if opts.IsToday {
		searchFrom = opts.Now
	}

	openSlots := 0
	bookedSlots := 0
	nextAvailable := ""
	for _, s := range slots {
		open := s.Status == models.SlotAvailable || s.Status == models.SlotOverrideAvailable
		if !open {
			continue
		}
		openSlots++
		if s.Booked {
			bookedSlots++
		} else if nextAvailable == "" && s.Start >= searchFrom {
			nextAvailable = s.Time
		}
	}

	hours := float64(opts.Granularity) / 60.0
	summary := models.DaySummary{
		Date:          date,
		TotalHours:    float64(openSlots) * hours,
		BookedHours:   float64(bookedSlots) * hours,
		NextAvailable: nextAvailable,
	}

	switch {
	case openSlots == 0:
		summary.Status = models.DayUnavailable
	case bookedSlots == openSlots:
		summary.Status = models.DayFullyBooked
	case bookedSlots > 0:
		summary.Status = models.DayPartiallyBooked
	default:
		summary.Status = models.DayAvailable
	}

	return summary
}
