package models

import "time"

// Staff roles.
const (
	RoleAdmin = "admin"
	RoleCoach = "coach"
	RoleStaff = "staff"
)

// StaffMember is a coach or floor-staff account. PINHash is a bcrypt hash of
// the time-clock PIN; it never leaves the server.
type StaffMember struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	PINHash   string    `bson:"pinHash" json:"-"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// TimeEntry is one time-clock shift. ClockOutTime is empty while the shift is
// open. CrossesMidnight marks overnight shifts so duration math does not
// assume ClockOutTime > ClockInTime on the same day.
type TimeEntry struct {
	ID              string    `bson:"id" json:"id"`
	StaffID         string    `bson:"staffId" json:"staffId"`
	Date            string    `bson:"date" json:"date"`                 // clock-in date, "2006-01-02"
	ClockInTime     string    `bson:"clockInTime" json:"clockInTime"`   // "HH:MM"
	ClockOutTime    string    `bson:"clockOutTime" json:"clockOutTime"` // "" while open
	CrossesMidnight bool      `bson:"crossesMidnight" json:"crossesMidnight"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
