package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"fairway/config"
	bookingRepo "fairway/database/repository/booking"
	scheduleRepo "fairway/database/repository/schedule"
	"fairway/models"
	"fairway/services/schedule"
	"fairway/utils"
)

// DayGrid is one owner's resolved availability for one date, with any
// per-record warnings surfaced alongside rather than swallowed.
type DayGrid struct {
	OwnerID     string                `json:"ownerId"`
	Date        string                `json:"date"`
	Slots       []models.ResolvedSlot `json:"slots"`
	Diagnostics []schedule.Diagnostic `json:"diagnostics,omitempty"`
}

// Service answers availability questions for calendar views: per-slot grids,
// day summaries for ranges, and pixel-safe layout of a date's bookings.
type Service interface {
	GetDayGrid(ctx context.Context, ownerID, date string, granularity int) (*DayGrid, error)
	GetRangeSummaries(ctx context.Context, ownerID, startDate, endDate string) ([]models.DaySummary, error)
	GetDayLayout(ctx context.Context, date string) ([]models.ScheduleBlock, error)
}

// DefaultService wires the schedule and booking repositories to the pure
// resolution core, with a short-lived redis cache in front of grids.
type DefaultService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	Cache        *redis.Client
	Logger       *zap.Logger

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultService) resolveOptions(granularity int) schedule.ResolveOptions {
	open, err := schedule.ParseClock(config.AppConfig.OpenTime)
	if err != nil {
		open = schedule.DefaultWindowStart
	}
	closeAt, err := schedule.ParseClock(config.AppConfig.CloseTime)
	if err != nil {
		closeAt = schedule.DefaultWindowEnd
	}
	if granularity <= 0 {
		granularity = config.AppConfig.SlotGranularity
	}
	return schedule.ResolveOptions{WindowStart: open, WindowEnd: closeAt, Granularity: granularity}
}

// GetDayGrid resolves one owner's slot grid for one date. Grids at the
// default granularity are cached briefly; schedule writes invalidate them.
func (s *DefaultService) GetDayGrid(ctx context.Context, ownerID, date string, granularity int) (*DayGrid, error) {
	cacheKey := ""
	if s.Cache != nil && granularity <= 0 {
		cacheKey = fmt.Sprintf("%s%s:%s", utils.AvailabilityCachePrefix, ownerID, date)
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached DayGrid
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	grid, err := s.resolveDay(ctx, ownerID, date, granularity)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		if data, err := json.Marshal(grid); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.AvailabilityCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache availability grid",
					zap.String("ownerID", ownerID), zap.String("date", date), zap.Error(err))
			}
		}
	}
	return grid, nil
}

func (s *DefaultService) resolveDay(ctx context.Context, ownerID, date string, granularity int) (*DayGrid, error) {
	weekly, err := s.ScheduleRepo.GetWeeklyEntries(ctx, ownerID)
	if err != nil {
		s.Logger.Error("failed to fetch weekly entries", zap.String("ownerID", ownerID), zap.Error(err))
		weekly = nil // missing collaborator data means "no entries", never an error
	}
	blocks, err := s.ScheduleRepo.GetRecurringBlocks(ctx, ownerID)
	if err != nil {
		s.Logger.Error("failed to fetch recurring blocks", zap.String("ownerID", ownerID), zap.Error(err))
		blocks = nil
	}
	overrides, err := s.ScheduleRepo.GetOverridesByDate(ctx, ownerID, date)
	if err != nil {
		s.Logger.Error("failed to fetch overrides", zap.String("ownerID", ownerID), zap.Error(err))
		overrides = nil
	}
	bookings, err := s.BookingRepo.GetByOwnerAndDate(ctx, ownerID, date, false)
	if err != nil {
		s.Logger.Error("failed to fetch bookings", zap.String("ownerID", ownerID), zap.Error(err))
		bookings = nil
	}

	slots, diags, err := schedule.Resolve(schedule.ResolveInput{
		OwnerID:   ownerID,
		Date:      date,
		Weekly:    weekly,
		Blocks:    blocks,
		Overrides: overrides,
		Bookings:  bookings,
	}, s.resolveOptions(granularity))
	if err != nil {
		return nil, err
	}

	for _, d := range diags {
		s.Logger.Warn("schedule diagnostic",
			zap.String("ownerID", ownerID), zap.String("date", date),
			zap.String("code", d.Code), zap.String("recordID", d.RecordID),
			zap.String("detail", d.Detail))
	}

	return &DayGrid{OwnerID: ownerID, Date: date, Slots: slots, Diagnostics: diags}, nil
}

// GetRangeSummaries reduces each date in [startDate, endDate] to a day
// summary card. The range is capped at 62 days.
func (s *DefaultService) GetRangeSummaries(ctx context.Context, ownerID, startDate, endDate string) ([]models.DaySummary, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s before start date %s", endDate, startDate)
	}
	if end.Sub(start) > 62*24*time.Hour {
		return nil, fmt.Errorf("date range too large")
	}

	now := s.now()
	today := now.Format("2006-01-02")
	granularity := config.AppConfig.SlotGranularity
	if granularity <= 0 {
		granularity = schedule.DefaultGranularity
	}

	var summaries []models.DaySummary
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		grid, err := s.GetDayGrid(ctx, ownerID, date, 0)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, schedule.Summarize(date, grid.Slots, schedule.SummaryOptions{
			Granularity: granularity,
			IsToday:     date == today,
			Now:         now.Hour()*60 + now.Minute(),
		}))
	}
	return summaries, nil
}

// GetDayLayout turns every non-cancelled booking on one date, across all
// owners, into column-packed blocks for dense calendar rendering. Slot
// granularity is bypassed here on purpose.
func (s *DefaultService) GetDayLayout(ctx context.Context, date string) ([]models.ScheduleBlock, error) {
	bookings, err := s.BookingRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for layout: %w", err)
	}

	var blocks []models.ScheduleBlock
	for _, bk := range bookings {
		start, err := schedule.ParseClock(bk.StartTime)
		if err != nil {
			s.Logger.Warn("skipping booking with malformed start time",
				zap.String("bookingID", bk.ID), zap.Error(err))
			continue
		}
		label := bk.CustomerName
		if label == "" {
			label = bk.ID
		}
		blocks = append(blocks, models.ScheduleBlock{
			ID:      bk.ID,
			OwnerID: bk.OwnerID,
			Label:   label,
			Start:   start,
			End:     start + bk.DurationMinutes,
		})
	}
	return schedule.Layout(blocks), nil
}
