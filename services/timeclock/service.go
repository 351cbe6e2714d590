package timeclock

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	staffRepo "fairway/database/repository/staff"
	"fairway/models"
	"fairway/services/schedule"
)

// DayHours is one row of a time-clock report.
type DayHours struct {
	Date    string  `json:"date"`
	Entries int     `json:"entries"`
	Hours   float64 `json:"hours"`
}

// Report sums a staff member's clocked hours over a date range.
type Report struct {
	StaffID    string     `json:"staffId"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Days       []DayHours `json:"days"`
	TotalHours float64    `json:"totalHours"`
}

// Service is the time clock: punch in, punch out, report hours.
type Service interface {
	ClockIn(ctx context.Context, staffID string) (*models.TimeEntry, error)
	ClockOut(ctx context.Context, staffID string) (*models.TimeEntry, error)
	GetReport(ctx context.Context, staffID, startDate, endDate string) (*Report, error)
}

type DefaultService struct {
	Repo   staffRepo.StaffRepository
	Logger *zap.Logger

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultService) ClockIn(ctx context.Context, staffID string) (*models.TimeEntry, error) {
	if _, err := s.Repo.GetOpenTimeEntry(ctx, staffID); err == nil {
		return nil, fmt.Errorf("staff member already clocked in")
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	now := s.now()
	entry, err := s.Repo.CreateTimeEntry(ctx, models.TimeEntry{
		StaffID:     staffID,
		Date:        now.Format("2006-01-02"),
		ClockInTime: now.Format("15:04"),
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("clock in", zap.String("staffID", staffID), zap.String("time", entry.ClockInTime))
	return entry, nil
}

// ClockOut closes the open shift. A clock-out on a later calendar date than
// the clock-in marks the entry as crossing midnight so duration math stays
// honest for overnight shifts.
func (s *DefaultService) ClockOut(ctx context.Context, staffID string) (*models.TimeEntry, error) {
	entry, err := s.Repo.GetOpenTimeEntry(ctx, staffID)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("no open shift for staff member")
	} else if err != nil {
		return nil, err
	}

	now := s.now()
	clockOut := now.Format("15:04")
	crosses := now.Format("2006-01-02") != entry.Date

	if err := s.Repo.CloseTimeEntry(ctx, entry.ID, clockOut, crosses); err != nil {
		return nil, err
	}
	entry.ClockOutTime = clockOut
	entry.CrossesMidnight = crosses
	s.Logger.Info("clock out",
		zap.String("staffID", staffID), zap.String("time", clockOut),
		zap.Bool("crossesMidnight", crosses))
	return entry, nil
}

func (s *DefaultService) GetReport(ctx context.Context, staffID, startDate, endDate string) (*Report, error) {
	entries, err := s.Repo.GetTimeEntriesInRange(ctx, staffID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &Report{StaffID: staffID, StartDate: startDate, EndDate: endDate}
	byDate := make(map[string]*DayHours)
	var order []string
	for _, e := range entries {
		minutes, err := EntryMinutes(e)
		if err != nil {
			s.Logger.Warn("skipping malformed time entry", zap.String("entryID", e.ID), zap.Error(err))
			continue
		}
		day := byDate[e.Date]
		if day == nil {
			day = &DayHours{Date: e.Date}
			byDate[e.Date] = day
			order = append(order, e.Date)
		}
		day.Entries++
		day.Hours += float64(minutes) / 60.0
		report.TotalHours += float64(minutes) / 60.0
	}
	for _, date := range order {
		report.Days = append(report.Days, *byDate[date])
	}
	return report, nil
}

// EntryMinutes returns the worked minutes of one closed entry. Open entries
// count as zero.
func EntryMinutes(entry models.TimeEntry) (int, error) {
	if entry.ClockOutTime == "" {
		return 0, nil
	}
	iv, err := schedule.ParseInterval(entry.ClockInTime, entry.ClockOutTime, entry.CrossesMidnight)
	if err != nil {
		return 0, err
	}
	return iv.Duration(), nil
}
