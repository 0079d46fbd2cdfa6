package handlers

import (
	"errors"
	"net/http"

	"flowdesk/models"
	"flowdesk/services/intelligence"
	"flowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves assistant endpoints.
type AIHandler struct {
	AIService intelligence.AIService
}

// ClassifyTaskHandler handles POST /ai/classify.
func (h *AIHandler) ClassifyTaskHandler(c *gin.Context) {
	var req models.ClassifyTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.AIService.ClassifyTask(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		var quota *intelligence.QuotaExceededError
		if errors.As(err, &quota) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Task classification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChatHandler handles POST /ai/chat.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.AIService.Chat(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		var quota *intelligence.QuotaExceededError
		if errors.As(err, &quota) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearContextHandler handles DELETE /ai/context.
func (h *AIHandler) ClearContextHandler(c *gin.Context) {
	if err := h.AIService.ClearContext(c.Request.Context(), c.GetString("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Context cleared"})
}
