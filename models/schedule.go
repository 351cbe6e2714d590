package models

// WeeklyScheduleEntry is one owner's recurring availability window for a
// single day of the week. At most one active entry exists per owner per
// day-of-week; duplicates are an upstream data problem, not resolved here.
type WeeklyScheduleEntry struct {
	ID          string `bson:"id" json:"id"`
	OwnerID     string `bson:"ownerId" json:"ownerId"`
	DayOfWeek   int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime   string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime     string `bson:"endTime" json:"endTime"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// RecurringBlock is a standing weekly exception (e.g. a lunch break). The
// covered sub-interval always resolves as blocked, whatever the template says.
type RecurringBlock struct {
	ID        string `bson:"id" json:"id"`
	OwnerID   string `bson:"ownerId" json:"ownerId"`
	DayOfWeek int    `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	Title     string `bson:"title" json:"title"`
	IsActive  bool   `bson:"isActive" json:"isActive"`
}

// Override types for DateOverride.
const (
	OverrideAvailable   = "available"
	OverrideUnavailable = "unavailable"
)

// DateOverride is a one-off exception for a specific calendar date. Overrides
// outrank both the weekly template and recurring blocks.
type DateOverride struct {
	ID           string `bson:"id" json:"id"`
	OwnerID      string `bson:"ownerId" json:"ownerId"`
	Date         string `bson:"date" json:"date"` // "2006-01-02"
	StartTime    string `bson:"startTime" json:"startTime"`
	EndTime      string `bson:"endTime" json:"endTime"`
	OverrideType string `bson:"overrideType" json:"overrideType"`
}

// Slot statuses produced by availability resolution.
const (
	SlotUnavailable         = "unavailable"
	SlotAvailable           = "available"
	SlotBlocked             = "blocked"
	SlotOverrideAvailable   = "override-available"
	SlotOverrideUnavailable = "override-unavailable"
)

// ResolvedSlot is one step of the per-date availability grid. Booked is
// layered on top of Status, never folded into it: an available slot can be
// booked, and a booked blocked slot signals upstream inconsistency.
type ResolvedSlot struct {
	Start  int    `json:"start"` // minutes from midnight
	Time   string `json:"time"`  // "HH:MM", display form of Start
	Status string `json:"status"`
	Booked bool   `json:"booked"`
}

// Day statuses produced by slot aggregation.
const (
	DayUnavailable     = "unavailable"
	DayAvailable       = "available"
	DayPartiallyBooked = "partially_booked"
	DayFullyBooked     = "fully_booked"
)

// DaySummary is the reduced, card-sized view of one owner's day.
type DaySummary struct {
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	TotalHours    float64 `json:"totalHours"`
	BookedHours   float64 `json:"bookedHours"`
	NextAvailable string  `json:"nextAvailable,omitempty"` // "HH:MM", empty when nothing remains
}

// ScheduleBlock is any time interval to render in a calendar column without
// pixel overlap: a coaching booking, a staff shift. Column and TotalColumns
// are filled in by the layout engine.
type ScheduleBlock struct {
	ID           string `json:"id"`
	OwnerID      string `json:"ownerId"`
	Label        string `json:"label"`
	Start        int    `json:"start"` // minutes from midnight
	End          int    `json:"end"`
	Column       int    `json:"column"`
	TotalColumns int    `json:"totalColumns"`
}
