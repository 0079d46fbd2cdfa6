package meetingRepo

import (
	"time"

	"flowdesk/models"
)

// MeetingRepository defines methods for meeting data access. The availability
// engine never queries storage itself; callers use GetOverlappingRange to
// hand it a pre-filtered meeting set.
type MeetingRepository interface {
	// GetByID retrieves a meeting by its unique ID, scoped to a company.
	GetByID(companyID, id string) (*models.Meeting, error)
	// GetOverlappingRange returns the user's non-recurring meetings that
	// overlap [start, end] plus all of the user's recurring meetings.
	GetOverlappingRange(companyID, userID string, start, end time.Time) ([]models.Meeting, error)
	// Create inserts a new meeting record.
	Create(meeting *models.Meeting) error
	// Update modifies an existing meeting record.
	Update(meeting *models.Meeting) error
	// Delete removes a meeting record by its ID, scoped to a company.
	Delete(companyID, id string) error
}
