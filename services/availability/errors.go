package availability

import (
	"fmt"
	"time"
)

// InvalidRangeError signals that the requested date range is reversed.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s is after end %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// InvalidConfigurationError signals malformed working-hours or request
// configuration. The caller must fix the configuration before retrying.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// InvalidMeetingError signals a meeting whose start is not before its end.
// The whole request fails rather than silently skipping the bad meeting.
type InvalidMeetingError struct {
	MeetingID string
}

func (e *InvalidMeetingError) Error() string {
	return fmt.Sprintf("invalid meeting %q: start time must be before end time", e.MeetingID)
}
