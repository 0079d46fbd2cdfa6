package models

import "time"

// BlockReason tags why a time range is unavailable.
type BlockReason string

const (
	BlockReasonMeeting BlockReason = "meeting"
	BlockReasonBreak   BlockReason = "break"
	BlockReasonBuffer  BlockReason = "buffer"
)

// BlockedInterval is a time range that removes availability. Intervals from
// different sources may overlap; the subtraction sweep treats them as a union.
type BlockedInterval struct {
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Reason BlockReason `json:"reason"`
}

// TimeSlot is a free, bookable window with a desirability score.
type TimeSlot struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	Quality         float64   `json:"quality"`
}

// FindSlotsRequest carries everything the availability engine needs for one
// computation. All times are expected in one consistent location; the engine
// performs no timezone conversion.
type FindSlotsRequest struct {
	StartDate          time.Time    `json:"startDate"`
	EndDate            time.Time    `json:"endDate"`
	WorkingHours       WorkingHours `json:"workingHours"`
	ExistingMeetings   []Meeting    `json:"existingMeetings"`
	BufferMinutes      int          `json:"bufferMinutes"`
	IncludeBreaks      bool         `json:"includeBreaks"`
	MinDurationMinutes int          `json:"minDurationMinutes"`
}
