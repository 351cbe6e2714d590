package models

import "time"

// Booking statuses. Cancelled bookings never participate in availability
// resolution or summaries.
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
)

// Booking represents one coaching or bay reservation.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	OwnerID         string    `bson:"ownerId" json:"ownerId"` // coach or staff member booked
	CustomerID      string    `bson:"customerId" json:"customerId"`
	CustomerName    string    `bson:"customerName" json:"customerName"`
	Date            string    `bson:"date" json:"date"`           // "2006-01-02"
	StartTime       string    `bson:"startTime" json:"startTime"` // "HH:MM"
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Bay             string    `bson:"bay,omitempty" json:"bay,omitempty"`
	Status          string    `bson:"status" json:"status"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReminderPayload is what the asynq reminder worker receives when a booking
// reminder fires.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	OwnerID      string `json:"ownerId"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
}
