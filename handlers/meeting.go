package handlers

import (
	"errors"
	"net/http"
	"time"

	"flowdesk/config"
	"flowdesk/models"
	"flowdesk/services/availability"
	"flowdesk/services/meeting"
	"flowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler serves calendar and availability endpoints.
type MeetingHandler struct {
	MeetingService meeting.MeetingService
}

// CreateMeetingHandler handles POST /meetings.
func (h *MeetingHandler) CreateMeetingHandler(c *gin.Context) {
	var m models.Meeting
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.CompanyID = c.GetString("companyID")
	m.UserID = c.GetString("userID")

	created, err := h.MeetingService.CreateMeeting(&m)
	if err != nil {
		utils.GetLogger().Error("Meeting creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMeetingHandler handles GET /meetings/:id.
func (h *MeetingHandler) GetMeetingHandler(c *gin.Context) {
	m, err := h.MeetingService.GetMeeting(c.GetString("companyID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// ListMeetingsHandler handles GET /meetings?start=...&end=...
func (h *MeetingHandler) ListMeetingsHandler(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meetings, err := h.MeetingService.ListMeetings(c.GetString("companyID"), c.GetString("userID"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// UpdateMeetingHandler handles PUT /meetings/:id.
func (h *MeetingHandler) UpdateMeetingHandler(c *gin.Context) {
	var m models.Meeting
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.ID = c.Param("id")
	m.CompanyID = c.GetString("companyID")

	if err := h.MeetingService.UpdateMeeting(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMeetingHandler handles DELETE /meetings/:id.
func (h *MeetingHandler) DeleteMeetingHandler(c *gin.Context) {
	if err := h.MeetingService.DeleteMeeting(c.GetString("companyID"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted"})
}

// FindAvailabilityHandler handles POST /availability/find. The date range is
// capped so one request cannot sweep years of calendar data.
func (h *MeetingHandler) FindAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		StartDate          time.Time `json:"startDate" binding:"required"`
		EndDate            time.Time `json:"endDate" binding:"required"`
		BufferMinutes      int       `json:"bufferMinutes"`
		IncludeBreaks      bool      `json:"includeBreaks"`
		MinDurationMinutes int       `json:"minDurationMinutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maxDays := config.AppConfig.MaxAvailabilityRangeDays
	if maxDays > 0 && req.EndDate.Sub(req.StartDate) > time.Duration(maxDays)*24*time.Hour {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date range too large",
			"max":   maxDays,
		})
		return
	}

	slots, err := h.MeetingService.FindAvailability(meeting.AvailabilityRequest{
		CompanyID:          c.GetString("companyID"),
		UserID:             c.GetString("userID"),
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		BufferMinutes:      req.BufferMinutes,
		IncludeBreaks:      req.IncludeBreaks,
		MinDurationMinutes: req.MinDurationMinutes,
	})
	if err != nil {
		var rangeErr *availability.InvalidRangeError
		var cfgErr *availability.InvalidConfigurationError
		var meetErr *availability.InvalidMeetingError
		if errors.As(err, &rangeErr) || errors.As(err, &cfgErr) || errors.As(err, &meetErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Availability lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
