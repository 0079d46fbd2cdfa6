package availability

import (
	"time"

	"flowdesk/models"
)

// buildBlockedIntervals expands every meeting and emits one meeting-tagged
// interval per occurrence, plus buffer-tagged padding before and after each
// occurrence when bufferMinutes is positive. Overlaps are left as-is; the
// subtraction sweep unions them.
func buildBlockedIntervals(meetings []models.Meeting, expander RecurrenceExpander, rangeStart, rangeEnd time.Time, bufferMinutes int) []models.BlockedInterval {
	buffer := time.Duration(bufferMinutes) * time.Minute

	var blocked []models.BlockedInterval
	for _, m := range meetings {
		for _, occ := range expander.Expand(m, rangeStart, rangeEnd) {
			blocked = append(blocked, models.BlockedInterval{
				Start:  occ.Start,
				End:    occ.End,
				Reason: models.BlockReasonMeeting,
			})
			if buffer > 0 {
				blocked = append(blocked,
					models.BlockedInterval{
						Start:  occ.Start.Add(-buffer),
						End:    occ.Start,
						Reason: models.BlockReasonBuffer,
					},
					models.BlockedInterval{
						Start:  occ.End,
						End:    occ.End.Add(buffer),
						Reason: models.BlockReasonBuffer,
					},
				)
			}
		}
	}
	return blocked
}

// breakIntervals emits one break-tagged interval for every working day in the
// range whose configuration defines a break.
func breakIntervals(rangeStart, rangeEnd time.Time, wh models.WorkingHours) []models.BlockedInterval {
	var blocked []models.BlockedInterval
	lastDay := dayStart(rangeEnd)
	for day := dayStart(rangeStart); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		cfg := wh.DayConfigFor(day.Weekday())
		if cfg == nil || !cfg.IsWorkingDay || !cfg.HasBreak() {
			continue
		}
		start := clockAt(day, *cfg.BreakStart)
		blocked = append(blocked, models.BlockedInterval{
			Start:  start,
			End:    start.Add(time.Duration(cfg.BreakDurationMinutes) * time.Minute),
			Reason: models.BlockReasonBreak,
		})
	}
	return blocked
}
