package availability

import (
	"time"

	"flowdesk/models"
)

// workingWindow is one working day's availability before any subtraction.
type workingWindow struct {
	start time.Time
	end   time.Time
}

// workingWindows produces one window per working day in [rangeStart, rangeEnd],
// clipped to the range. The first and last day may be partial when the range
// begins or ends mid-day. Output is sorted by start and non-overlapping, one
// window per day by construction.
func workingWindows(rangeStart, rangeEnd time.Time, wh models.WorkingHours) []workingWindow {
	var windows []workingWindow
	lastDay := dayStart(rangeEnd)
	for day := dayStart(rangeStart); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		cfg := wh.DayConfigFor(day.Weekday())
		if cfg == nil || !cfg.IsWorkingDay {
			continue
		}
		start := clockAt(day, cfg.StartHour)
		end := clockAt(day, cfg.EndHour)
		if start.Before(rangeStart) {
			start = rangeStart
		}
		if end.After(rangeEnd) {
			end = rangeEnd
		}
		if !start.Before(end) {
			continue
		}
		windows = append(windows, workingWindow{start: start, end: end})
	}
	return windows
}
