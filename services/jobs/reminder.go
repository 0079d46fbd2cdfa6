package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"flowdesk/config"
	"flowdesk/models"
	"flowdesk/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask builds the asynq task for a scheduled reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueue enqueues due-date reminders onto the asynq queue.
type ReminderQueue struct {
	client *asynq.Client
}

func NewReminderQueue() *ReminderQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderQueue{client: client}
}

// ScheduleDueReminder enqueues a push reminder that fires at the task's due
// date. Tasks without a due date are ignored.
func (q *ReminderQueue) ScheduleDueReminder(t models.Task) error {
	if t.DueDate == nil {
		return nil
	}
	payload := models.ReminderPayload{
		ReminderID: uuid.NewString(),
		UserID:     t.UserID,
		TaskID:     t.ID,
		Title:      "Task due",
		Body:       fmt.Sprintf("%q is due now", t.Title),
		FireDate:   t.DueDate.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, *t.DueDate)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := q.client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	utils.GetLogger().Debug("reminder scheduled",
		zap.String("taskId", t.ID), zap.String("queueId", info.ID))
	return nil
}

// Close releases the underlying asynq client.
func (q *ReminderQueue) Close() error {
	return q.client.Close()
}
