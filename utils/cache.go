package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"fairway/config"
)

// AvailabilityCachePrefix keys cached availability grids as
// "availability:<ownerId>:<date>". Entries are short-lived and invalidated
// whenever schedule records for the owner change.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL bounds staleness of cached availability responses.
const AvailabilityCacheTTL = 2 * time.Minute

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InvalidateAvailability drops every cached availability grid for an owner.
// Called after any write to weekly entries, blocks, overrides or bookings.
func InvalidateAvailability(ctx context.Context, client *redis.Client, ownerID string) error {
	iter := client.Scan(ctx, 0, AvailabilityCachePrefix+ownerID+":*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
