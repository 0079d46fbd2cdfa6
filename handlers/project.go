package handlers

import (
	"errors"
	"net/http"

	"flowdesk/models"
	"flowdesk/services/project"
	"flowdesk/services/user"
	"flowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectHandler serves project endpoints.
type ProjectHandler struct {
	ProjectService project.ProjectService
	UserService    user.UserService
}

// CreateProjectHandler handles POST /projects.
func (h *ProjectHandler) CreateProjectHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.CompanyID = c.GetString("companyID")
	p.OwnerID = userID

	owner, err := h.UserService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	created, err := h.ProjectService.CreateProject(&p, owner.Plan)
	if err != nil {
		var limitErr *project.PlanLimitError
		if errors.As(err, &limitErr) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Project creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProjectHandler handles GET /projects/:id.
func (h *ProjectHandler) GetProjectHandler(c *gin.Context) {
	p, err := h.ProjectService.GetProject(c.GetString("companyID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListProjectsHandler handles GET /projects.
func (h *ProjectHandler) ListProjectsHandler(c *gin.Context) {
	includeArchived := c.Query("includeArchived") == "true"
	projects, err := h.ProjectService.ListProjects(c.GetString("companyID"), includeArchived)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// UpdateProjectHandler handles PUT /projects/:id.
func (h *ProjectHandler) UpdateProjectHandler(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = c.Param("id")
	p.CompanyID = c.GetString("companyID")

	if err := h.ProjectService.UpdateProject(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ArchiveProjectHandler handles POST /projects/:id/archive.
func (h *ProjectHandler) ArchiveProjectHandler(c *gin.Context) {
	if err := h.ProjectService.ArchiveProject(c.GetString("companyID"), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project archived"})
}

// DeleteProjectHandler handles DELETE /projects/:id.
func (h *ProjectHandler) DeleteProjectHandler(c *gin.Context) {
	if err := h.ProjectService.DeleteProject(c.GetString("companyID"), c.Param("id")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
