package handlers

import (
	"net/http"
	"time"

	"flowdesk/services/analytics"
	"flowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsHandler serves reporting endpoints.
type AnalyticsHandler struct {
	AnalyticsService analytics.AnalyticsService
}

// analyticsWindow reads the start/end query params, defaulting to the last 30
// days when absent.
func analyticsWindow(c *gin.Context) (time.Time, time.Time, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}
	return start, end, nil
}

// UsageStatsHandler handles GET /analytics/usage.
func (h *AnalyticsHandler) UsageStatsHandler(c *gin.Context) {
	start, end, err := analyticsWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.AnalyticsService.GetUsageStats(c.GetString("companyID"), start, end)
	if err != nil {
		utils.GetLogger().Error("Usage stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"usage": stats})
}

// ConflictReportHandler handles GET /analytics/conflicts.
func (h *AnalyticsHandler) ConflictReportHandler(c *gin.Context) {
	start, end, err := analyticsWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.AnalyticsService.GetConflictReport(c.GetString("companyID"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": report})
}

// DashboardHandler handles GET /analytics/dashboard.
func (h *AnalyticsHandler) DashboardHandler(c *gin.Context) {
	start, end, err := analyticsWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.AnalyticsService.GetDashboardSummary(c.GetString("companyID"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
