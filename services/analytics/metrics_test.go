package analytics

import (
	"testing"

	"flowdesk/models"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{Type: "task.created"},
		{Type: "task.completed"},
		{Type: "task.created", Conflict: "completed_late"},
		{Type: "task.created", Conflict: "completed_late"},
	}
}

func TestCalculateUsage(t *testing.T) {
	stats := MetricsCalculator{}.CalculateUsage(sampleEvents())
	if stats["task.created"] != 3 {
		t.Fatalf("expected 3 task.created, got %d", stats["task.created"])
	}
	if stats["task.completed"] != 1 {
		t.Fatalf("expected 1 task.completed, got %d", stats["task.completed"])
	}
}

func TestCalculateConflicts(t *testing.T) {
	report := MetricsCalculator{}.CalculateConflicts(sampleEvents())
	if report["completed_late"] != 2 {
		t.Fatalf("expected 2 completed_late, got %d", report["completed_late"])
	}
	if len(report) != 1 {
		t.Fatalf("expected only one conflict kind, got %v", report)
	}
}

func TestCalculateUsage_Empty(t *testing.T) {
	stats := MetricsCalculator{}.CalculateUsage(nil)
	if len(stats) != 0 {
		t.Fatalf("expected empty stats, got %v", stats)
	}
}
