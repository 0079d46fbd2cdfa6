package analytics

import (
	"time"

	eventRepo "flowdesk/database/repository/event"
)

// Aggregator provides one named group of dashboard metrics.
type Aggregator interface {
	Name() string
	Collect(companyID string, start, end time.Time) (map[string]int, error)
}

// EventAggregator reports event volume for a company.
type EventAggregator struct {
	Events eventRepo.EventRepository
}

func (a *EventAggregator) Name() string { return "events" }

func (a *EventAggregator) Collect(companyID string, start, end time.Time) (map[string]int, error) {
	events, err := a.Events.ListByCompany(companyID, start, end)
	if err != nil {
		return nil, err
	}
	return map[string]int{"totalEvents": len(events)}, nil
}

// UserAggregator reports user counts for a company: total distinct users seen
// in events and those active in the window.
type UserAggregator struct {
	Events eventRepo.EventRepository
}

func (a *UserAggregator) Name() string { return "users" }

func (a *UserAggregator) Collect(companyID string, start, end time.Time) (map[string]int, error) {
	events, err := a.Events.ListByCompany(companyID, start, end)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, e := range events {
		if e.UserID != "" {
			seen[e.UserID] = true
		}
	}
	return map[string]int{
		"totalUsers":  len(seen),
		"activeUsers": len(seen),
	}, nil
}
