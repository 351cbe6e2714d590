package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"fairway/models"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task that fires a booking reminder at
// fireAt (one hour before the lesson by convention; the caller decides).
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
