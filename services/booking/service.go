package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	bookingRepo "fairway/database/repository/booking"
	"fairway/models"
	"fairway/services/availability"
	"fairway/services/schedule"
	"fairway/services/tasks"
	"fairway/utils"
)

// Service manages coaching and bay reservations. Writes are never refused
// for conflicting with the schedule; double bookings and bookings over
// unavailable slots surface as resolver diagnostics and warnings instead.
type Service interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	Update(ctx context.Context, booking models.Booking) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListDay(ctx context.Context, ownerID, date string) ([]models.Booking, error)
}

type DefaultService struct {
	Repo         bookingRepo.BookingRepository
	Availability availability.Service
	Cache        *redis.Client
	Reminders    *asynq.Client
	Logger       *zap.Logger
}

func (s *DefaultService) validate(booking models.Booking) error {
	if booking.OwnerID == "" || booking.Date == "" || booking.StartTime == "" {
		return NewValidationError("ownerId, date and startTime are required")
	}
	if booking.DurationMinutes <= 0 {
		return NewValidationError("durationMinutes must be positive")
	}
	if _, err := time.Parse("2006-01-02", booking.Date); err != nil {
		return NewValidationError(fmt.Sprintf("invalid date %q", booking.Date))
	}
	if _, err := schedule.ParseClock(booking.StartTime); err != nil {
		return NewValidationError(fmt.Sprintf("invalid start time %q", booking.StartTime))
	}
	return nil
}

// warnConflicts logs when a booking lands on non-open slots or overlaps an
// existing booking. The write goes through either way; resolution flags the
// same state later as an inconsistent-booking diagnostic.
func (s *DefaultService) warnConflicts(ctx context.Context, booking models.Booking, ignoreBookingID string) {
	grid, err := s.Availability.GetDayGrid(ctx, booking.OwnerID, booking.Date, 0)
	if err != nil {
		s.Logger.Warn("availability lookup failed during booking write",
			zap.String("ownerID", booking.OwnerID), zap.String("date", booking.Date), zap.Error(err))
		return
	}
	start, _ := schedule.ParseClock(booking.StartTime)
	end := start + booking.DurationMinutes

	slotWidth := schedule.DefaultGranularity
	if len(grid.Slots) > 1 {
		slotWidth = grid.Slots[1].Start - grid.Slots[0].Start
	}
	for _, slot := range grid.Slots {
		if !schedule.Overlaps(start, end, slot.Start, slot.Start+slotWidth) {
			continue
		}
		switch slot.Status {
		case models.SlotAvailable, models.SlotOverrideAvailable:
		default:
			s.Logger.Warn("booking covers a non-open slot",
				zap.String("ownerID", booking.OwnerID), zap.String("date", booking.Date),
				zap.String("slot", slot.Time), zap.String("slotStatus", slot.Status))
		}
	}

	existing, err := s.Repo.GetByOwnerAndDate(ctx, booking.OwnerID, booking.Date, false)
	if err != nil {
		return
	}
	for _, other := range existing {
		if other.ID == ignoreBookingID {
			continue
		}
		otherStart, err := schedule.ParseClock(other.StartTime)
		if err != nil {
			continue
		}
		if schedule.Overlaps(start, end, otherStart, otherStart+other.DurationMinutes) {
			s.Logger.Warn("booking overlaps an existing booking",
				zap.String("ownerID", booking.OwnerID), zap.String("date", booking.Date),
				zap.String("otherBookingID", other.ID), zap.String("otherStart", other.StartTime))
		}
	}
}

func (s *DefaultService) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if err := s.validate(booking); err != nil {
		return nil, err
	}
	s.warnConflicts(ctx, booking, "")
	if booking.Status == "" {
		booking.Status = models.BookingConfirmed
	}

	created, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, created.OwnerID)
	s.scheduleReminder(*created)
	return created, nil
}

func (s *DefaultService) Update(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if booking.ID == "" {
		return nil, NewValidationError("booking id is required")
	}
	if err := s.validate(booking); err != nil {
		return nil, err
	}
	s.warnConflicts(ctx, booking, booking.ID)
	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.invalidate(ctx, booking.OwnerID)
	return &booking, nil
}

func (s *DefaultService) Cancel(ctx context.Context, bookingID string) error {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := s.Repo.Cancel(ctx, bookingID); err != nil {
		return err
	}
	s.invalidate(ctx, booking.OwnerID)
	return nil
}

func (s *DefaultService) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, bookingID)
}

func (s *DefaultService) ListDay(ctx context.Context, ownerID, date string) ([]models.Booking, error) {
	return s.Repo.GetByOwnerAndDate(ctx, ownerID, date, true)
}

func (s *DefaultService) invalidate(ctx context.Context, ownerID string) {
	if s.Cache == nil {
		return
	}
	if err := utils.InvalidateAvailability(ctx, s.Cache, ownerID); err != nil {
		s.Logger.Warn("failed to invalidate availability cache",
			zap.String("ownerID", ownerID), zap.Error(err))
	}
}

// scheduleReminder enqueues a reminder one hour before the booking starts.
// Reminder failures never fail the booking itself.
func (s *DefaultService) scheduleReminder(booking models.Booking) {
	if s.Reminders == nil {
		return
	}
	startAt, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.StartTime, time.Local)
	if err != nil {
		return
	}
	fireAt := startAt.Add(-time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{
		BookingID:    booking.ID,
		OwnerID:      booking.OwnerID,
		CustomerName: booking.CustomerName,
		Date:         booking.Date,
		StartTime:    booking.StartTime,
	}, fireAt)
	if err != nil {
		s.Logger.Warn("failed to build reminder task", zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		s.Logger.Warn("failed to enqueue reminder", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
