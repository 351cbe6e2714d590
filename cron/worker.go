package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"fairway/config"
	"fairway/models"
	"fairway/services/tasks"
	"fairway/utils"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	go monitorRedisConnection()

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					log.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask surfaces an upcoming booking to the console log. The
// front desk screen polls the same booking record, so the log line is the
// durable trace that the reminder fired.
func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
		return err
	}

	utils.GetLogger().Info("booking reminder due",
		zap.String("bookingID", p.BookingID),
		zap.String("ownerID", p.OwnerID),
		zap.String("customer", p.CustomerName),
		zap.String("date", p.Date),
		zap.String("startTime", p.StartTime))
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			utils.GetLogger().Warn("reminder worker redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
