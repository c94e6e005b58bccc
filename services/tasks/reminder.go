package tasks

import (
	"encoding/json"
	"fmt"

	"tutorhub/models"

	"github.com/hibiken/asynq"
)

// TypeReminderSend is the asynq task type for lesson reminder pushes.
const TypeReminderSend = "reminder:send"

// NewReminderTask builds an asynq task carrying a serialized reminder
// payload. Scheduling is left to the caller via asynq.ProcessAt.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	return asynq.NewTask(TypeReminderSend, data), nil
}
