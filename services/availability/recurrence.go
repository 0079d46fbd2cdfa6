package availability

import (
	"time"

	"flowdesk/models"
)

// Occurrence is one concrete date-bound instance of a (possibly recurring)
// meeting.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// RecurrenceExpander turns a meeting into its occurrences inside a window.
// Only weekly same-weekday recurrence is supported; the interface isolates
// that rule so a fuller engine can replace it without touching the
// subtraction or scoring core.
type RecurrenceExpander interface {
	Expand(m models.Meeting, rangeStart, rangeEnd time.Time) []Occurrence
}

// WeeklyRecurrenceExpander expands recurring meetings onto every date in the
// range that matches the meeting's start weekday.
type WeeklyRecurrenceExpander struct{}

// Expand returns the occurrences of m inside [rangeStart, rangeEnd].
//
// A non-recurring meeting yields at most one occurrence, clipped to the range
// and dropped when entirely outside. Recurring occurrences are emitted only
// when fully inside the range; partially visible ones are dropped, not
// clipped, since a clipped instance of a repeating meeting is ambiguous.
func (WeeklyRecurrenceExpander) Expand(m models.Meeting, rangeStart, rangeEnd time.Time) []Occurrence {
	if !m.IsRecurring {
		start, end := m.StartTime, m.EndTime
		if start.Before(rangeStart) {
			start = rangeStart
		}
		if end.After(rangeEnd) {
			end = rangeEnd
		}
		if !start.Before(end) {
			return nil
		}
		return []Occurrence{{Start: start, End: end}}
	}

	weekday := m.RecurrenceWeekday()
	clockOffset := m.StartTime.Sub(dayStart(m.StartTime))
	duration := m.Duration()

	var occurrences []Occurrence
	lastDay := dayStart(rangeEnd)
	for day := dayStart(rangeStart); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if day.Weekday() != weekday {
			continue
		}
		start := day.Add(clockOffset)
		end := start.Add(duration)
		if start.Before(rangeStart) || end.After(rangeEnd) {
			continue
		}
		occurrences = append(occurrences, Occurrence{Start: start, End: end})
	}
	return occurrences
}
