package meeting

import (
	"fmt"
	"time"

	meetingRepo "flowdesk/database/repository/meeting"
	"flowdesk/models"
	"flowdesk/services/availability"
	"flowdesk/services/user"

	"github.com/google/uuid"
)

// MeetingService manages calendar entries and availability lookups built on
// top of them.
type MeetingService interface {
	CreateMeeting(m *models.Meeting) (*models.Meeting, error)
	GetMeeting(companyID, id string) (*models.Meeting, error)
	ListMeetings(companyID, userID string, start, end time.Time) ([]models.Meeting, error)
	UpdateMeeting(m *models.Meeting) error
	DeleteMeeting(companyID, id string) error
	FindAvailability(req AvailabilityRequest) ([]models.TimeSlot, error)
}

// AvailabilityRequest is the service-level availability query. Working hours
// and existing meetings are loaded from storage, unlike the engine request
// which carries them inline.
type AvailabilityRequest struct {
	CompanyID          string
	UserID             string
	StartDate          time.Time
	EndDate            time.Time
	BufferMinutes      int
	IncludeBreaks      bool
	MinDurationMinutes int
}

// DefaultMeetingService is the concrete implementation.
type DefaultMeetingService struct {
	Repo         meetingRepo.MeetingRepository
	Users        user.UserService
	Availability availability.AvailabilityService
}

// CreateMeeting validates and persists a meeting.
func (s *DefaultMeetingService) CreateMeeting(m *models.Meeting) (*models.Meeting, error) {
	if m.Title == "" {
		return nil, fmt.Errorf("meeting title is required")
	}
	if !m.StartTime.Before(m.EndTime) {
		return nil, &availability.InvalidMeetingError{MeetingID: m.ID}
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMeeting fetches one meeting.
func (s *DefaultMeetingService) GetMeeting(companyID, id string) (*models.Meeting, error) {
	return s.Repo.GetByID(companyID, id)
}

// ListMeetings returns the user's meetings relevant to a window: overlapping
// one-off meetings plus all recurring ones.
func (s *DefaultMeetingService) ListMeetings(companyID, userID string, start, end time.Time) ([]models.Meeting, error) {
	return s.Repo.GetOverlappingRange(companyID, userID, start, end)
}

// UpdateMeeting validates and persists changes to a meeting.
func (s *DefaultMeetingService) UpdateMeeting(m *models.Meeting) error {
	if !m.StartTime.Before(m.EndTime) {
		return &availability.InvalidMeetingError{MeetingID: m.ID}
	}
	m.UpdatedAt = time.Now()
	return s.Repo.Update(m)
}

// DeleteMeeting removes a meeting.
func (s *DefaultMeetingService) DeleteMeeting(companyID, id string) error {
	return s.Repo.Delete(companyID, id)
}

// FindAvailability loads the user's working hours and meetings, then runs the
// slot engine over them.
func (s *DefaultMeetingService) FindAvailability(req AvailabilityRequest) ([]models.TimeSlot, error) {
	u, err := s.Users.GetUserByID(req.UserID)
	if err != nil {
		return nil, err
	}
	if len(u.WorkingHours) == 0 {
		return nil, &availability.InvalidConfigurationError{Reason: "user has no working hours configured"}
	}

	meetings, err := s.Repo.GetOverlappingRange(req.CompanyID, req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	return s.Availability.FindAvailableSlots(models.FindSlotsRequest{
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		WorkingHours:       u.WorkingHours,
		ExistingMeetings:   meetings,
		BufferMinutes:      req.BufferMinutes,
		IncludeBreaks:      req.IncludeBreaks,
		MinDurationMinutes: req.MinDurationMinutes,
	})
}
