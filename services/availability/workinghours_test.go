package availability

import (
	"errors"
	"testing"
	"time"

	"flowdesk/models"
)

func assertConfigError(t *testing.T, err error) {
	t.Helper()
	var cfgErr *InvalidConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected InvalidConfigurationError, got %v", err)
	}
}

func TestValidateWorkingHours_Valid(t *testing.T) {
	breakStart := 12.0
	wh := models.WorkingHours{
		time.Monday:  {IsWorkingDay: true, StartHour: 9, EndHour: 17},
		time.Tuesday: {IsWorkingDay: true, StartHour: 8.5, EndHour: 16.5, BreakStart: &breakStart, BreakDurationMinutes: 30},
		time.Sunday:  {IsWorkingDay: false},
	}
	if err := validateWorkingHours(wh); err != nil {
		t.Fatalf("expected valid configuration, got %v", err)
	}
}

func TestValidateWorkingHours_ReversedWindow(t *testing.T) {
	wh := models.WorkingHours{
		time.Monday: {IsWorkingDay: true, StartHour: 17, EndHour: 9},
	}
	assertConfigError(t, validateWorkingHours(wh))
}

func TestValidateWorkingHours_EmptyWindow(t *testing.T) {
	wh := models.WorkingHours{
		time.Monday: {IsWorkingDay: true, StartHour: 9, EndHour: 9},
	}
	assertConfigError(t, validateWorkingHours(wh))
}

func TestValidateWorkingHours_BreakBeforeWindow(t *testing.T) {
	breakStart := 7.0
	wh := models.WorkingHours{
		time.Monday: {IsWorkingDay: true, StartHour: 9, EndHour: 17, BreakStart: &breakStart, BreakDurationMinutes: 30},
	}
	assertConfigError(t, validateWorkingHours(wh))
}

func TestValidateWorkingHours_BreakOverrunsWindow(t *testing.T) {
	breakStart := 16.5
	wh := models.WorkingHours{
		time.Monday: {IsWorkingDay: true, StartHour: 9, EndHour: 17, BreakStart: &breakStart, BreakDurationMinutes: 60},
	}
	assertConfigError(t, validateWorkingHours(wh))
}

func TestValidateWorkingHours_BreakWithoutDuration(t *testing.T) {
	breakStart := 12.0
	wh := models.WorkingHours{
		time.Monday: {IsWorkingDay: true, StartHour: 9, EndHour: 17, BreakStart: &breakStart},
	}
	assertConfigError(t, validateWorkingHours(wh))
}

func TestValidateWorkingHours_NonWorkingDayIgnored(t *testing.T) {
	// Hours on a non-working day are irrelevant and must not be validated.
	wh := models.WorkingHours{
		time.Saturday: {IsWorkingDay: false, StartHour: 20, EndHour: 4},
	}
	if err := validateWorkingHours(wh); err != nil {
		t.Fatalf("non-working day should be ignored, got %v", err)
	}
}
