// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"fairway/database"
	"fairway/models"
)

// ScheduleRepository reads and writes the three schedule record streams the
// availability resolver consumes: weekly template entries, recurring blocks
// and date overrides.
type ScheduleRepository interface {
	GetWeeklyEntries(ctx context.Context, ownerID string) ([]models.WeeklyScheduleEntry, error)
	UpsertWeeklyEntry(ctx context.Context, entry models.WeeklyScheduleEntry) error
	DeleteWeeklyEntry(ctx context.Context, ownerID, entryID string) error

	GetRecurringBlocks(ctx context.Context, ownerID string) ([]models.RecurringBlock, error)
	CreateRecurringBlock(ctx context.Context, block models.RecurringBlock) error
	DeleteRecurringBlock(ctx context.Context, ownerID, blockID string) error

	GetOverridesByDate(ctx context.Context, ownerID, date string) ([]models.DateOverride, error)
	GetOverridesInRange(ctx context.Context, ownerID, startDate, endDate string) ([]models.DateOverride, error)
	CreateOverride(ctx context.Context, override models.DateOverride) error
	DeleteOverride(ctx context.Context, ownerID, overrideID string) error
}

type mongoScheduleRepo struct {
	weeklyColl   *mongo.Collection
	blockColl    *mongo.Collection
	overrideColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	return &mongoScheduleRepo{
		weeklyColl:   db.Collection("weekly_schedules"),
		blockColl:    db.Collection("recurring_blocks"),
		overrideColl: db.Collection("date_overrides"),
	}
}
