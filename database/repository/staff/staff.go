// File: database/repository/staff/staff.go
package staffRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fairway/database"
	"fairway/models"
)

const queryTimeout = 5 * time.Second

// StaffRepository stores staff accounts and their time-clock entries.
type StaffRepository interface {
	Create(ctx context.Context, member models.StaffMember) (*models.StaffMember, error)
	GetByID(ctx context.Context, staffID string) (*models.StaffMember, error)
	GetByEmail(ctx context.Context, email string) (*models.StaffMember, error)
	List(ctx context.Context, activeOnly bool) ([]models.StaffMember, error)

	CreateTimeEntry(ctx context.Context, entry models.TimeEntry) (*models.TimeEntry, error)
	GetOpenTimeEntry(ctx context.Context, staffID string) (*models.TimeEntry, error)
	CloseTimeEntry(ctx context.Context, entryID, clockOutTime string, crossesMidnight bool) error
	GetTimeEntriesInRange(ctx context.Context, staffID, startDate, endDate string) ([]models.TimeEntry, error)
}

type mongoStaffRepo struct {
	staffColl *mongo.Collection
	clockColl *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.DB()
	return &mongoStaffRepo{
		staffColl: db.Collection("staff"),
		clockColl: db.Collection("time_entries"),
	}
}

func (r *mongoStaffRepo) Create(ctx context.Context, member models.StaffMember) (*models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = time.Now()
	if _, err := r.staffColl.InsertOne(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &member, nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, staffID string) (*models.StaffMember, error) {
	return r.findOne(ctx, bson.M{"id": staffID})
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.StaffMember, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoStaffRepo) findOne(ctx context.Context, filter bson.M) (*models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var member models.StaffMember
	if err := r.staffColl.FindOne(ctx, filter).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *mongoStaffRepo) List(ctx context.Context, activeOnly bool) ([]models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.staffColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.StaffMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *mongoStaffRepo) CreateTimeEntry(ctx context.Context, entry models.TimeEntry) (*models.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	if _, err := r.clockColl.InsertOne(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}
	return &entry, nil
}

// GetOpenTimeEntry returns the staff member's entry without a clock-out time,
// or mongo.ErrNoDocuments when no shift is open.
func (r *mongoStaffRepo) GetOpenTimeEntry(ctx context.Context, staffID string) (*models.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"staffId": staffID, "clockOutTime": ""}
	var entry models.TimeEntry
	if err := r.clockColl.FindOne(ctx, filter).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoStaffRepo) CloseTimeEntry(ctx context.Context, entryID, clockOutTime string, crossesMidnight bool) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"clockOutTime":    clockOutTime,
		"crossesMidnight": crossesMidnight,
	}}
	res, err := r.clockColl.UpdateOne(ctx, bson.M{"id": entryID}, update)
	if err != nil {
		return fmt.Errorf("failed to close time entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStaffRepo) GetTimeEntriesInRange(ctx context.Context, staffID, startDate, endDate string) ([]models.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"staffId": staffID,
		"date":    bson.M{"$gte": startDate, "$lte": endDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "clockInTime", Value: 1}})
	cursor, err := r.clockColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.TimeEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
