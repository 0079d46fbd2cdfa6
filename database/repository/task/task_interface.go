package taskRepo

import "flowdesk/models"

// TaskRepository defines methods for task data access. Every query is scoped
// to a company for tenant isolation.
type TaskRepository interface {
	// GetByID retrieves a task by its unique ID, scoped to a company.
	GetByID(companyID, id string) (*models.Task, error)
	// List retrieves tasks for a user matching the filter.
	List(companyID, userID string, filter models.TaskFilter) ([]models.Task, error)
	// Create inserts a new task record.
	Create(task *models.Task) error
	// Update modifies an existing task record.
	Update(task *models.Task) error
	// Delete removes a task record by its ID, scoped to a company.
	Delete(companyID, id string) error
	// CountByProject counts non-done tasks in a project.
	CountByProject(companyID, projectID string) (int64, error)
}
