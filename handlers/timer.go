package handlers

import (
	"errors"
	"net/http"

	"flowdesk/services/timer"
	"flowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimerHandler serves time-tracking endpoints.
type TimerHandler struct {
	TimerService timer.TimerService
}

// StartTimerHandler handles POST /timer/start.
func (h *TimerHandler) StartTimerHandler(c *gin.Context) {
	var req struct {
		TaskID string `json:"taskId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active, err := h.TimerService.Start(c.Request.Context(), c.GetString("companyID"), c.GetString("userID"), req.TaskID)
	if err != nil {
		var running *timer.TimerAlreadyRunningError
		if errors.As(err, &running) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Timer start failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, active)
}

// StopTimerHandler handles POST /timer/stop.
func (h *TimerHandler) StopTimerHandler(c *gin.Context) {
	entry, err := h.TimerService.Stop(c.Request.Context(), c.GetString("companyID"), c.GetString("userID"))
	if err != nil {
		var none *timer.NoActiveTimerError
		if errors.As(err, &none) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Timer stop failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CurrentTimerHandler handles GET /timer/current.
func (h *TimerHandler) CurrentTimerHandler(c *gin.Context) {
	active, err := h.TimerService.Current(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if active == nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": true, "timer": active})
}

// ListMyEntriesHandler handles GET /timer/entries?start=...&end=...
func (h *TimerHandler) ListMyEntriesHandler(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.TimerService.ListUserEntries(c.GetString("companyID"), c.GetString("userID"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListTimeEntriesHandler handles GET /tasks/:id/time-entries.
func (h *TimerHandler) ListTimeEntriesHandler(c *gin.Context) {
	entries, err := h.TimerService.ListEntries(c.GetString("companyID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
