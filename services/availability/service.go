package availability

import (
	"time"

	"flowdesk/models"
)

// DefaultMinDurationMinutes is applied when a request leaves the minimum slot
// duration unset.
const DefaultMinDurationMinutes = 30

// AvailabilityService computes free, scored scheduling windows from a user's
// working hours and existing meetings. Implementations are pure: no I/O, no
// shared state, safe for concurrent use.
type AvailabilityService interface {
	FindAvailableSlots(req models.FindSlotsRequest) ([]models.TimeSlot, error)
}

// DefaultAvailabilityService is the concrete implementation. The recurrence
// expander is injected so the weekly rule can be swapped out.
type DefaultAvailabilityService struct {
	Expander RecurrenceExpander
}

// NewDefaultAvailabilityService returns a service using weekly recurrence
// expansion.
func NewDefaultAvailabilityService() *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Expander: WeeklyRecurrenceExpander{}}
}

// FindAvailableSlots validates the request, generates one working window per
// working day, subtracts meeting occurrences (with buffer padding) and
// optionally breaks, scores the remaining fragments, and filters out slots
// shorter than the requested minimum. The result is sorted by start time.
// Either a fully valid slot list is returned or an error; there is no
// partial-result mode.
func (s *DefaultAvailabilityService) FindAvailableSlots(req models.FindSlotsRequest) ([]models.TimeSlot, error) {
	if req.StartDate.After(req.EndDate) {
		return nil, &InvalidRangeError{Start: req.StartDate, End: req.EndDate}
	}
	if err := validateWorkingHours(req.WorkingHours); err != nil {
		return nil, err
	}
	if req.BufferMinutes < 0 {
		return nil, &InvalidConfigurationError{Reason: "bufferMinutes must not be negative"}
	}
	for _, m := range req.ExistingMeetings {
		if !m.StartTime.Before(m.EndTime) {
			return nil, &InvalidMeetingError{MeetingID: m.ID}
		}
	}

	minDuration := req.MinDurationMinutes
	if minDuration <= 0 {
		minDuration = DefaultMinDurationMinutes
	}

	windows := workingWindows(req.StartDate, req.EndDate, req.WorkingHours)

	blocked := buildBlockedIntervals(req.ExistingMeetings, s.expander(), req.StartDate, req.EndDate, req.BufferMinutes)
	if req.IncludeBreaks {
		blocked = append(blocked, breakIntervals(req.StartDate, req.EndDate, req.WorkingHours)...)
	}

	var slots []models.TimeSlot
	for _, w := range windows {
		for _, frag := range subtractBlocked(w, blocked) {
			duration := int(frag.end.Sub(frag.start) / time.Minute)
			if duration < minDuration {
				continue
			}
			slots = append(slots, models.TimeSlot{
				Start:           frag.start,
				End:             frag.end,
				DurationMinutes: duration,
				Quality:         scoreSlot(frag.start),
			})
		}
	}
	return slots, nil
}

func (s *DefaultAvailabilityService) expander() RecurrenceExpander {
	if s.Expander == nil {
		return WeeklyRecurrenceExpander{}
	}
	return s.Expander
}
