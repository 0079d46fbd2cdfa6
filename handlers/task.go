package handlers

import (
	"net/http"

	"flowdesk/models"
	"flowdesk/services/task"
	"flowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TaskHandler serves task endpoints.
type TaskHandler struct {
	TaskService task.TaskService
}

// CreateTaskHandler handles POST /tasks.
func (h *TaskHandler) CreateTaskHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var t models.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.CompanyID = c.GetString("companyID")
	t.UserID = c.GetString("userID")

	created, err := h.TaskService.CreateTask(&t)
	if err != nil {
		logger.Error("Task creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetTaskHandler handles GET /tasks/:id.
func (h *TaskHandler) GetTaskHandler(c *gin.Context) {
	t, err := h.TaskService.GetTask(c.GetString("companyID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListTasksHandler handles GET /tasks.
func (h *TaskHandler) ListTasksHandler(c *gin.Context) {
	var filter models.TaskFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.TaskService.ListTasks(c.GetString("companyID"), c.GetString("userID"), filter)
	if err != nil {
		utils.GetLogger().Error("Task listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// UpdateTaskHandler handles PUT /tasks/:id.
func (h *TaskHandler) UpdateTaskHandler(c *gin.Context) {
	var t models.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.ID = c.Param("id")
	t.CompanyID = c.GetString("companyID")

	if err := h.TaskService.UpdateTask(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CompleteTaskHandler handles POST /tasks/:id/complete.
func (h *TaskHandler) CompleteTaskHandler(c *gin.Context) {
	if err := h.TaskService.CompleteTask(c.GetString("companyID"), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task completed"})
}

// DeleteTaskHandler handles DELETE /tasks/:id.
func (h *TaskHandler) DeleteTaskHandler(c *gin.Context) {
	if err := h.TaskService.DeleteTask(c.GetString("companyID"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
