package task

import (
	eventRepo "flowdesk/database/repository/event"
	taskRepo "flowdesk/database/repository/task"
	"flowdesk/models"
)

// TaskService defines task management operations.
type TaskService interface {
	CreateTask(t *models.Task) (*models.Task, error)
	GetTask(companyID, id string) (*models.Task, error)
	ListTasks(companyID, userID string, filter models.TaskFilter) ([]models.Task, error)
	UpdateTask(t *models.Task) error
	CompleteTask(companyID, id string) error
	DeleteTask(companyID, id string) error
}

// ReminderScheduler schedules a due-date push reminder for a task.
type ReminderScheduler interface {
	ScheduleDueReminder(t models.Task) error
}

// DefaultTaskService is the concrete implementation.
type DefaultTaskService struct {
	Repo      taskRepo.TaskRepository
	Events    eventRepo.EventRepository
	Reminders ReminderScheduler
}
