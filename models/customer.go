package models

import "time"

// Customer is a CRM record for a guest or member.
type Customer struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Membership  string    `bson:"membership,omitempty" json:"membership,omitempty"` // e.g. "gold", "coaching-10"
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
