package analytics

import "flowdesk/models"

// MetricsCalculator computes aggregate metrics from recorded events.
type MetricsCalculator struct{}

// CalculateUsage counts events by type.
func (MetricsCalculator) CalculateUsage(events []models.Event) map[string]int {
	usage := make(map[string]int)
	for _, e := range events {
		usage[e.Type]++
	}
	return usage
}

// CalculateConflicts counts events by their conflict label, skipping events
// without one.
func (MetricsCalculator) CalculateConflicts(events []models.Event) map[string]int {
	conflicts := make(map[string]int)
	for _, e := range events {
		if e.Conflict != "" {
			conflicts[e.Conflict]++
		}
	}
	return conflicts
}
