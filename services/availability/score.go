package availability

import "time"

// scoreSlot rates how desirable a free fragment is from its start time alone.
// Mid-morning is best, early afternoon close behind; day-of-week modifiers
// penalize Monday ramp-up and Friday wind-down and favor midweek. The midweek
// boost can push the raw score past 1.0; the clamp absorbs that.
func scoreSlot(start time.Time) float64 {
	hour := float64(start.Hour()) + float64(start.Minute())/60.0

	var score float64
	switch {
	case hour >= 9 && hour < 11:
		score = 1.0
	case hour >= 13 && hour < 16:
		score = 0.9
	case hour >= 8 && hour < 9:
		score = 0.8
	case hour >= 16 && hour < 18:
		score = 0.7
	default:
		score = 0.5
	}

	switch start.Weekday() {
	case time.Monday:
		if hour < 10 {
			score *= 0.9
		}
	case time.Friday:
		if hour > 15 {
			score *= 0.85
		}
	case time.Tuesday, time.Wednesday, time.Thursday:
		score *= 1.05
	case time.Saturday, time.Sunday:
		// no modifier
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}
