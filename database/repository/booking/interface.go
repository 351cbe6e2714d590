// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"fairway/database"
	"fairway/models"
)

// BookingRepository stores coaching and bay reservations. Readers that feed
// availability resolution always filter cancelled bookings out.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Update(ctx context.Context, booking models.Booking) error
	Cancel(ctx context.Context, bookingID string) error

	GetByOwnerAndDate(ctx context.Context, ownerID, date string, includeCancelled bool) ([]models.Booking, error)
	GetByOwnerInRange(ctx context.Context, ownerID, startDate, endDate string) ([]models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.DB().Collection("bookings")}
}
