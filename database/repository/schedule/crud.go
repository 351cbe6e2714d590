package scheduleRepo

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

func (r *mongoScheduleRepo) GetWeeklyEntries(ctx context.Context, ownerID string) ([]models.WeeklyScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.weeklyColl.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.WeeklyScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertWeeklyEntry replaces the owner's entry for the entry's day-of-week.
// The source allows at most one active row per owner per day; upserting on
// (ownerId, dayOfWeek) enforces that here.
func (r *mongoScheduleRepo) UpsertWeeklyEntry(ctx context.Context, entry models.WeeklyScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	filter := bson.M{"ownerId": entry.OwnerID, "dayOfWeek": entry.DayOfWeek}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.weeklyColl.ReplaceOne(ctx, filter, entry, opts); err != nil {
		return fmt.Errorf("failed to upsert weekly entry: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteWeeklyEntry(ctx context.Context, ownerID, entryID string) error {
	return r.deleteOne(ctx, r.weeklyColl, ownerID, entryID)
}

func (r *mongoScheduleRepo) GetRecurringBlocks(ctx context.Context, ownerID string) ([]models.RecurringBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.blockColl.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recurring blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.RecurringBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *mongoScheduleRepo) CreateRecurringBlock(ctx context.Context, block models.RecurringBlock) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if _, err := r.blockColl.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to create recurring block: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteRecurringBlock(ctx context.Context, ownerID, blockID string) error {
	return r.deleteOne(ctx, r.blockColl, ownerID, blockID)
}

func (r *mongoScheduleRepo) GetOverridesByDate(ctx context.Context, ownerID, date string) ([]models.DateOverride, error) {
	return r.findOverrides(ctx, bson.M{"ownerId": ownerID, "date": date})
}

func (r *mongoScheduleRepo) GetOverridesInRange(ctx context.Context, ownerID, startDate, endDate string) ([]models.DateOverride, error) {
	filter := bson.M{
		"ownerId": ownerID,
		"date":    bson.M{"$gte": startDate, "$lte": endDate},
	}
	return r.findOverrides(ctx, filter)
}

func (r *mongoScheduleRepo) findOverrides(ctx context.Context, filter bson.M) ([]models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Stable order: overlapping overrides resolve by iteration order, so the
	// order records come back in is part of the behavior.
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.overrideColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch date overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.DateOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *mongoScheduleRepo) CreateOverride(ctx context.Context, override models.DateOverride) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if override.ID == "" {
		override.ID = uuid.New().String()
	}
	if _, err := r.overrideColl.InsertOne(ctx, override); err != nil {
		return fmt.Errorf("failed to create date override: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteOverride(ctx context.Context, ownerID, overrideID string) error {
	return r.deleteOne(ctx, r.overrideColl, ownerID, overrideID)
}

func (r *mongoScheduleRepo) deleteOne(ctx context.Context, coll *mongo.Collection, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
