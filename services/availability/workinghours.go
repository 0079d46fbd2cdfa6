package availability

import (
	"fmt"
	"math"
	"time"

	"flowdesk/models"
)

// validateWorkingHours rejects configurations the engine cannot reason about:
// a working day whose window is empty or reversed, or a break that does not
// fit inside the working window.
func validateWorkingHours(wh models.WorkingHours) error {
	for day, cfg := range wh {
		if !cfg.IsWorkingDay {
			continue
		}
		if cfg.StartHour >= cfg.EndHour {
			return &InvalidConfigurationError{
				Reason: fmt.Sprintf("%s: startHour %.2f must be before endHour %.2f", day, cfg.StartHour, cfg.EndHour),
			}
		}
		if cfg.StartHour < 0 || cfg.EndHour > 24 {
			return &InvalidConfigurationError{
				Reason: fmt.Sprintf("%s: working window %.2f-%.2f is outside the day", day, cfg.StartHour, cfg.EndHour),
			}
		}
		if cfg.BreakStart == nil {
			continue
		}
		bs := *cfg.BreakStart
		if cfg.BreakDurationMinutes <= 0 {
			return &InvalidConfigurationError{
				Reason: fmt.Sprintf("%s: break requires a positive duration", day),
			}
		}
		breakEnd := bs + float64(cfg.BreakDurationMinutes)/60.0
		if bs < cfg.StartHour || bs >= cfg.EndHour || breakEnd > cfg.EndHour {
			return &InvalidConfigurationError{
				Reason: fmt.Sprintf("%s: break %.2f-%.2f extends outside working window %.2f-%.2f",
					day, bs, breakEnd, cfg.StartHour, cfg.EndHour),
			}
		}
	}
	return nil
}

// dayStart returns midnight of the day containing t, in t's location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clockAt converts a fractional clock hour (9.5 == 09:30) into an absolute
// time on the given day. Fractions are rounded to whole minutes.
func clockAt(day time.Time, hour float64) time.Time {
	minutes := int(math.Round(hour * 60))
	return dayStart(day).Add(time.Duration(minutes) * time.Minute)
}
