package project

import (
	"fmt"

	projectRepo "flowdesk/database/repository/project"
	taskRepo "flowdesk/database/repository/task"
	"flowdesk/models"

	"github.com/google/uuid"
)

// ProjectService defines project management operations.
type ProjectService interface {
	CreateProject(p *models.Project, ownerPlan models.Plan) (*models.Project, error)
	GetProject(companyID, id string) (*models.Project, error)
	ListProjects(companyID string, includeArchived bool) ([]models.Project, error)
	UpdateProject(p *models.Project) error
	ArchiveProject(companyID, id string) error
	DeleteProject(companyID, id string) error
}

// PlanLimitError signals that the owner's plan does not allow the operation.
type PlanLimitError struct {
	Limit int
}

func (e *PlanLimitError) Error() string {
	return fmt.Sprintf("plan limit reached: at most %d active projects on the free plan", e.Limit)
}

// DefaultProjectService is the concrete implementation.
type DefaultProjectService struct {
	Repo  projectRepo.ProjectRepository
	Tasks taskRepo.TaskRepository
}

// CreateProject stores a new project after checking the owner's plan limit.
func (s *DefaultProjectService) CreateProject(p *models.Project, ownerPlan models.Plan) (*models.Project, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if p.CompanyID == "" || p.OwnerID == "" {
		return nil, fmt.Errorf("project must be scoped to a company and owner")
	}

	limits := models.LimitsFor(ownerPlan)
	if limits.MaxProjects > 0 {
		count, err := s.Repo.CountActive(p.CompanyID, p.OwnerID)
		if err != nil {
			return nil, err
		}
		if count >= int64(limits.MaxProjects) {
			return nil, &PlanLimitError{Limit: limits.MaxProjects}
		}
	}

	p.ID = uuid.NewString()
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProject retrieves a project by ID.
func (s *DefaultProjectService) GetProject(companyID, id string) (*models.Project, error) {
	return s.Repo.GetByID(companyID, id)
}

// ListProjects retrieves a company's projects.
func (s *DefaultProjectService) ListProjects(companyID string, includeArchived bool) ([]models.Project, error) {
	return s.Repo.List(companyID, includeArchived)
}

// UpdateProject modifies an existing project.
func (s *DefaultProjectService) UpdateProject(p *models.Project) error {
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}
	return s.Repo.Update(p)
}

// ArchiveProject flags a project archived without deleting its tasks.
func (s *DefaultProjectService) ArchiveProject(companyID, id string) error {
	p, err := s.Repo.GetByID(companyID, id)
	if err != nil {
		return err
	}
	p.Archived = true
	return s.Repo.Update(p)
}

// DeleteProject removes an empty project. Projects with open tasks must be
// archived instead, so task history is never orphaned silently.
func (s *DefaultProjectService) DeleteProject(companyID, id string) error {
	count, err := s.Tasks.CountByProject(companyID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("project has %d open tasks; archive it instead", count)
	}
	return s.Repo.Delete(companyID, id)
}
