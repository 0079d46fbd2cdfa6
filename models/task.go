package models

import "time"

// Task statuses.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task priorities.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task is a unit of work inside a project.
type Task struct {
	ID          string     `bson:"id" json:"id"`
	CompanyID   string     `bson:"companyId" json:"companyId"`
	UserID      string     `bson:"userId" json:"userId"`
	ProjectID   string     `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Status      string     `bson:"status" json:"status"`
	Priority    string     `bson:"priority" json:"priority"`
	Category    string     `bson:"category,omitempty" json:"category,omitempty"` // AI-assigned
	DueDate     *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	ProjectID string `form:"projectId"`
	Status    string `form:"status"`
	Priority  string `form:"priority"`
}
