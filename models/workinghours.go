package models

import "time"

// DayConfig describes one weekday of a user's working-hours setup. Hours are
// fractional clock hours (9.5 means 09:30). A break is configured by setting
// BreakStart; BreakDurationMinutes must then be positive and the whole break
// must fit inside the working window.
type DayConfig struct {
	IsWorkingDay         bool     `bson:"isWorkingDay" json:"isWorkingDay"`
	StartHour            float64  `bson:"startHour" json:"startHour"`
	EndHour              float64  `bson:"endHour" json:"endHour"`
	BreakStart           *float64 `bson:"breakStart,omitempty" json:"breakStart,omitempty"`
	BreakDurationMinutes int      `bson:"breakDurationMinutes,omitempty" json:"breakDurationMinutes,omitempty"`
}

// WorkingHours maps a weekday to its configuration. Missing weekdays are
// treated as non-working.
type WorkingHours map[time.Weekday]DayConfig

// DayConfigFor returns the configuration for the given weekday, or nil when
// the weekday has no entry.
func (wh WorkingHours) DayConfigFor(day time.Weekday) *DayConfig {
	cfg, ok := wh[day]
	if !ok {
		return nil
	}
	return &cfg
}

// HasBreak reports whether the day defines a break window.
func (dc DayConfig) HasBreak() bool {
	return dc.BreakStart != nil && dc.BreakDurationMinutes > 0
}
