package task

import (
	"fmt"
	"time"

	"flowdesk/models"
	"flowdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateTask validates and stores a new task, records an analytics event, and
// schedules a due-date reminder when applicable.
func (s *DefaultTaskService) CreateTask(t *models.Task) (*models.Task, error) {
	if t.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if t.CompanyID == "" || t.UserID == "" {
		return nil, fmt.Errorf("task must be scoped to a company and user")
	}
	if t.Status == "" {
		t.Status = models.TaskStatusTodo
	}
	if t.Priority == "" {
		t.Priority = models.TaskPriorityMedium
	}
	t.ID = uuid.NewString()

	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}

	s.recordEvent(t, "task.created", "")

	if t.DueDate != nil && t.DueDate.After(time.Now()) && s.Reminders != nil {
		if err := s.Reminders.ScheduleDueReminder(*t); err != nil {
			utils.GetLogger().Warn("failed to schedule due reminder",
				zap.String("taskId", t.ID), zap.Error(err))
		}
	}

	return t, nil
}

// GetTask retrieves a task by ID.
func (s *DefaultTaskService) GetTask(companyID, id string) (*models.Task, error) {
	return s.Repo.GetByID(companyID, id)
}

// ListTasks retrieves a user's tasks matching the filter.
func (s *DefaultTaskService) ListTasks(companyID, userID string, filter models.TaskFilter) ([]models.Task, error) {
	return s.Repo.List(companyID, userID, filter)
}

// UpdateTask modifies an existing task.
func (s *DefaultTaskService) UpdateTask(t *models.Task) error {
	if t.ID == "" {
		return fmt.Errorf("task id is required")
	}
	if err := s.Repo.Update(t); err != nil {
		return err
	}
	s.recordEvent(t, "task.updated", "")
	return nil
}

// CompleteTask marks a task done and stamps its completion time.
func (s *DefaultTaskService) CompleteTask(companyID, id string) error {
	t, err := s.Repo.GetByID(companyID, id)
	if err != nil {
		return err
	}
	now := time.Now()
	t.Status = models.TaskStatusDone
	t.CompletedAt = &now
	if err := s.Repo.Update(t); err != nil {
		return err
	}

	conflict := ""
	if t.DueDate != nil && now.After(*t.DueDate) {
		conflict = "completed_late"
	}
	s.recordEvent(t, "task.completed", conflict)
	return nil
}

// DeleteTask removes a task.
func (s *DefaultTaskService) DeleteTask(companyID, id string) error {
	return s.Repo.Delete(companyID, id)
}

func (s *DefaultTaskService) recordEvent(t *models.Task, eventType, conflict string) {
	if s.Events == nil {
		return
	}
	event := &models.Event{
		ID:        uuid.NewString(),
		CompanyID: t.CompanyID,
		UserID:    t.UserID,
		Type:      eventType,
		Conflict:  conflict,
	}
	if err := s.Events.Record(event); err != nil {
		utils.GetLogger().Warn("failed to record analytics event",
			zap.String("type", eventType), zap.Error(err))
	}
}
