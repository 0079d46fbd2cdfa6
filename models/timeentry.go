package models

import "time"

// TimeEntry is one completed tracking interval against a task.
type TimeEntry struct {
	ID              string    `bson:"id" json:"id"`
	CompanyID       string    `bson:"companyId" json:"companyId"`
	UserID          string    `bson:"userId" json:"userId"`
	TaskID          string    `bson:"taskId" json:"taskId"`
	StartTime       time.Time `bson:"startTime" json:"startTime"`
	EndTime         time.Time `bson:"endTime" json:"endTime"`
	DurationSeconds int       `bson:"durationSeconds" json:"durationSeconds"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// ActiveTimer is the running timer held in Redis; at most one per user.
type ActiveTimer struct {
	UserID    string    `json:"userId"`
	TaskID    string    `json:"taskId"`
	StartedAt time.Time `json:"startedAt"`
}
