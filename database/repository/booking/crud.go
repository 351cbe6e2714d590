package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fairway/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) Update(ctx context.Context, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	booking.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": booking.ID}, booking)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBookingRepo) Cancel(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.BookingCancelled, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBookingRepo) GetByOwnerAndDate(ctx context.Context, ownerID, date string, includeCancelled bool) ([]models.Booking, error) {
	filter := bson.M{"ownerId": ownerID, "date": date}
	if !includeCancelled {
		filter["status"] = bson.M{"$ne": models.BookingCancelled}
	}
	return r.find(ctx, filter)
}

func (r *mongoBookingRepo) GetByOwnerInRange(ctx context.Context, ownerID, startDate, endDate string) ([]models.Booking, error) {
	filter := bson.M{
		"ownerId": ownerID,
		"date":    bson.M{"$gte": startDate, "$lte": endDate},
		"status":  bson.M{"$ne": models.BookingCancelled},
	}
	return r.find(ctx, filter)
}

// GetByDate returns every non-cancelled booking for all owners on one date,
// for dense calendar rendering.
func (r *mongoBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	filter := bson.M{"date": date, "status": bson.M{"$ne": models.BookingCancelled}}
	return r.find(ctx, filter)
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
