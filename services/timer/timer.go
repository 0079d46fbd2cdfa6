package timer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	timeEntryRepo "flowdesk/database/repository/timeentry"
	"flowdesk/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const activeTimerPrefix = "timer:active:"

// Timers are parked in Redis for at most a day; a forgotten timer expires
// rather than producing a multi-week entry on stop.
const activeTimerTTL = 24 * time.Hour

// TimerService defines start/stop time-tracking bookkeeping. At most one
// timer runs per user; stopping writes a TimeEntry.
type TimerService interface {
	Start(ctx context.Context, companyID, userID, taskID string) (*models.ActiveTimer, error)
	Stop(ctx context.Context, companyID, userID string) (*models.TimeEntry, error)
	Current(ctx context.Context, userID string) (*models.ActiveTimer, error)
	ListEntries(companyID, taskID string) ([]models.TimeEntry, error)
	ListUserEntries(companyID, userID string, start, end time.Time) ([]models.TimeEntry, error)
}

// TimerAlreadyRunningError signals a second Start without an intervening Stop.
type TimerAlreadyRunningError struct {
	TaskID string
}

func (e *TimerAlreadyRunningError) Error() string {
	return "a timer is already running for task " + e.TaskID
}

// NoActiveTimerError signals Stop without a running timer.
type NoActiveTimerError struct{}

func (e *NoActiveTimerError) Error() string {
	return "no active timer"
}

// DefaultTimerService is the concrete implementation: active state in Redis,
// completed entries in Mongo.
type DefaultTimerService struct {
	Cache   *redis.Client
	Entries timeEntryRepo.TimeEntryRepository
}

// Start begins tracking a task for the user.
func (s *DefaultTimerService) Start(ctx context.Context, companyID, userID, taskID string) (*models.ActiveTimer, error) {
	if taskID == "" {
		return nil, fmt.Errorf("taskId is required")
	}

	existing, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &TimerAlreadyRunningError{TaskID: existing.TaskID}
	}

	active := &models.ActiveTimer{
		UserID:    userID,
		TaskID:    taskID,
		StartedAt: time.Now(),
	}
	b, err := json.Marshal(active)
	if err != nil {
		return nil, fmt.Errorf("failed to encode timer state: %w", err)
	}
	if err := s.Cache.Set(ctx, activeTimerPrefix+userID, b, activeTimerTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store timer state: %w", err)
	}
	return active, nil
}

// Stop ends the running timer and persists the completed entry.
func (s *DefaultTimerService) Stop(ctx context.Context, companyID, userID string) (*models.TimeEntry, error) {
	active, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, &NoActiveTimerError{}
	}

	now := time.Now()
	entry := &models.TimeEntry{
		ID:              uuid.NewString(),
		CompanyID:       companyID,
		UserID:          userID,
		TaskID:          active.TaskID,
		StartTime:       active.StartedAt,
		EndTime:         now,
		DurationSeconds: int(now.Sub(active.StartedAt).Seconds()),
	}
	if err := s.Entries.Create(entry); err != nil {
		return nil, err
	}
	if err := s.Cache.Del(ctx, activeTimerPrefix+userID).Err(); err != nil {
		return nil, fmt.Errorf("failed to clear timer state: %w", err)
	}
	return entry, nil
}

// Current returns the user's running timer, or nil when none is active.
func (s *DefaultTimerService) Current(ctx context.Context, userID string) (*models.ActiveTimer, error) {
	data, err := s.Cache.Get(ctx, activeTimerPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read timer state: %w", err)
	}
	var active models.ActiveTimer
	if err := json.Unmarshal([]byte(data), &active); err != nil {
		return nil, fmt.Errorf("failed to decode timer state: %w", err)
	}
	return &active, nil
}

// ListEntries retrieves entries logged against a task.
func (s *DefaultTimerService) ListEntries(companyID, taskID string) ([]models.TimeEntry, error) {
	return s.Entries.ListByTask(companyID, taskID)
}

// ListUserEntries retrieves a user's entries overlapping a time window.
func (s *DefaultTimerService) ListUserEntries(companyID, userID string, start, end time.Time) ([]models.TimeEntry, error) {
	return s.Entries.ListByUserRange(companyID, userID, start, end)
}
