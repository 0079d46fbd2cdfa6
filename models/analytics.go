package models

import "time"

// Event is a recorded product event used by the analytics aggregators.
type Event struct {
	ID        string    `bson:"id" json:"id"`
	CompanyID string    `bson:"companyId" json:"companyId"`
	UserID    string    `bson:"userId" json:"userId"`
	Type      string    `bson:"type" json:"type"`               // e.g. "task.created", "timer.stopped"
	Conflict  string    `bson:"conflict,omitempty" json:"conflict,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DashboardSummary combines the output of all registered aggregators.
type DashboardSummary struct {
	Metrics map[string]map[string]int `json:"metrics"`
}
