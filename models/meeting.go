package models

import "time"

// Meeting is a calendar entry owned by a user. Recurring meetings repeat
// weekly on the weekday of StartTime; no other recurrence rules are supported.
type Meeting struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	CompanyID   string    `bson:"companyId" json:"companyId"`
	Title       string    `bson:"title" json:"title"`
	StartTime   time.Time `bson:"startTime" json:"startTime"`
	EndTime     time.Time `bson:"endTime" json:"endTime"`
	IsRecurring bool      `bson:"isRecurring" json:"isRecurring"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RecurrenceWeekday is the weekday a recurring meeting repeats on, derived
// from its start time.
func (m Meeting) RecurrenceWeekday() time.Weekday {
	return m.StartTime.Weekday()
}

// Duration is the length of a single occurrence.
func (m Meeting) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}
