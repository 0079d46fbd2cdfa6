package availability

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"flowdesk/models"
)

// 2025-03-10 is a Monday.
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func mondayOnlyHours() models.WorkingHours {
	return models.WorkingHours{
		time.Monday: {IsWorkingDay: true, StartHour: 9, EndHour: 17},
	}
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func findSlots(t *testing.T, req models.FindSlotsRequest) []models.TimeSlot {
	t.Helper()
	slots, err := NewDefaultAvailabilityService().FindAvailableSlots(req)
	if err != nil {
		t.Fatalf("FindAvailableSlots returned error: %v", err)
	}
	return slots
}

func TestFindAvailableSlots_EmptyDay(t *testing.T) {
	req := models.FindSlotsRequest{
		StartDate:    monday,
		EndDate:      monday.AddDate(0, 0, 1),
		WorkingHours: mondayOnlyHours(),
	}
	slots := findSlots(t, req)

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(monday, 9, 0)) || !slots[0].End.Equal(at(monday, 17, 0)) {
		t.Fatalf("expected 09:00-17:00, got %s-%s", slots[0].Start, slots[0].End)
	}
	if slots[0].DurationMinutes != 480 {
		t.Fatalf("expected 480 minutes, got %d", slots[0].DurationMinutes)
	}
}

func TestFindAvailableSlots_SingleMeeting(t *testing.T) {
	req := models.FindSlotsRequest{
		StartDate:    monday,
		EndDate:      monday.AddDate(0, 0, 1),
		WorkingHours: mondayOnlyHours(),
		ExistingMeetings: []models.Meeting{
			{ID: "m1", StartTime: at(monday, 10, 0), EndTime: at(monday, 11, 0)},
		},
	}
	slots := findSlots(t, req)

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].DurationMinutes != 60 || !slots[0].End.Equal(at(monday, 10, 0)) {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}
	if slots[1].DurationMinutes != 360 || !slots[1].Start.Equal(at(monday, 11, 0)) {
		t.Fatalf("unexpected second slot: %+v", slots[1])
	}
}

func TestFindAvailableSlots_BufferConsumed(t *testing.T) {
	req := models.FindSlotsRequest{
		StartDate:    monday,
		EndDate:      monday.AddDate(0, 0, 1),
		WorkingHours: mondayOnlyHours(),
		ExistingMeetings: []models.Meeting{
			{ID: "m1", StartTime: at(monday, 10, 0), EndTime: at(monday, 11, 0)},
		},
		BufferMinutes: 15,
	}
	slots := findSlots(t, req)

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[0].End.Equal(at(monday, 9, 45)) || slots[0].DurationMinutes != 45 {
		t.Fatalf("expected 09:00-09:45, got %+v", slots[0])
	}
	if !slots[1].Start.Equal(at(monday, 11, 15)) || slots[1].DurationMinutes != 345 {
		t.Fatalf("expected 11:15-17:00, got %+v", slots[1])
	}
}

func TestFindAvailableSlots_RecurringMeetingBothWeeks(t *testing.T) {
	nextMonday := monday.AddDate(0, 0, 7)
	req := models.FindSlotsRequest{
		StartDate:    monday,
		EndDate:      monday.AddDate(0, 0, 14),
		WorkingHours: mondayOnlyHours(),
		ExistingMeetings: []models.Meeting{
			{ID: "m1", StartTime: at(monday, 14, 0), EndTime: at(monday, 15, 0), IsRecurring: true},
		},
	}
	slots := findSlots(t, req)

	if len(slots) != 4 {
		t.Fatalf("expected 4 slots (2 per Monday), got %d", len(slots))
	}
	for i, day := range []time.Time{monday, monday, nextMonday, nextMonday} {
		if slots[i].Start.Day() != day.Day() {
			t.Fatalf("slot %d on wrong day: %s", i, slots[i].Start)
		}
	}
	// Each Monday splits around the 14:00-15:00 occurrence.
	if !slots[2].End.Equal(at(nextMonday, 14, 0)) || !slots[3].Start.Equal(at(nextMonday, 15, 0)) {
		t.Fatalf("second Monday not split around recurrence: %+v %+v", slots[2], slots[3])
	}
}

func TestFindAvailableSlots_ShortFragmentFiltered(t *testing.T) {
	req := models.FindSlotsRequest{
		StartDate:    monday,
		EndDate:      monday.AddDate(0, 0, 1),
		WorkingHours: mondayOnlyHours(),
		ExistingMeetings: []models.Meeting{
			{ID: "m1", StartTime: at(monday, 9, 0), EndTime: at(monday, 16, 45)},
		},
	}
	slots := findSlots(t, req)

	// The 16:45-17:00 remainder is 15 minutes, below the default 30.
	if len(slots) != 0 {
		t.Fatalf("expected 0 slots, got %d: %+v", len(slots), slots)
	}
}

func TestFindAvailableSlots_InvalidRange(t *testing.T) {
	req := models.FindSlotsRequest{
		StartDate:    monday.AddDate(0, 0, 1),
		EndDate:      monday,
		WorkingHours: mondayOnlyHours(),
	}
	_, err := NewDefaultAvailabilityService().FindAvailableSlots(req)

	var rangeErr *InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
}

func TestFindAvailableSlots_InvalidMeetingRejectsWholeRequest(t *testing.T) {
	req := models.FindSlotsRequest{
		StartDate:    monday,
		EndDate:      monday.AddDate(0, 0, 1),
		WorkingHours: mondayOnlyHours(),
		ExistingMeetings: []models.Meeting{
			{ID: "ok", StartTime: at(monday, 10, 0), EndTime: at(monday, 11, 0)},
			{ID: "bad", StartTime: at(monday, 12, 0), EndTime: at(monday, 12, 0)},
		},
	}
	slots, err := NewDefaultAvailabilityService().FindAvailableSlots(req)

	var meetingErr *InvalidMeetingError
	if !errors.As(err, &meetingErr) {
		t.Fatalf("expected InvalidMeetingError, got %v", err)
	}
	if meetingErr.MeetingID != "bad" {
		t.Fatalf("expected meeting 'bad' flagged, got %q", meetingErr.MeetingID)
	}
	if slots != nil {
		t.Fatalf("expected no partial output, got %+v", slots)
	}
}

func TestFindAvailableSlots_BreaksSubtracted(t *testing.T) {
	breakStart := 12.0
	wh := models.WorkingHours{
		time.Monday: {
			IsWorkingDay: true, StartHour: 9, EndHour: 17,
			BreakStart: &breakStart, BreakDurationMinutes: 60,
		},
	}
	req := models.FindSlotsRequest{
		StartDate:     monday,
		EndDate:       monday.AddDate(0, 0, 1),
		WorkingHours:  wh,
		IncludeBreaks: true,
	}
	slots := findSlots(t, req)

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[0].End.Equal(at(monday, 12, 0)) || !slots[1].Start.Equal(at(monday, 13, 0)) {
		t.Fatalf("break not subtracted: %+v %+v", slots[0], slots[1])
	}

	// Same request without breaks keeps the day whole.
	req.IncludeBreaks = false
	slots = findSlots(t, req)
	if len(slots) != 1 || slots[0].DurationMinutes != 480 {
		t.Fatalf("expected whole day without breaks, got %+v", slots)
	}
}

func TestFindAvailableSlots_Idempotent(t *testing.T) {
	req := models.FindSlotsRequest{
		StartDate:    monday,
		EndDate:      monday.AddDate(0, 0, 14),
		WorkingHours: mondayOnlyHours(),
		ExistingMeetings: []models.Meeting{
			{ID: "m1", StartTime: at(monday, 14, 0), EndTime: at(monday, 15, 0), IsRecurring: true},
			{ID: "m2", StartTime: at(monday, 9, 30), EndTime: at(monday, 10, 0)},
		},
		BufferMinutes: 10,
	}
	svc := NewDefaultAvailabilityService()
	first, err := svc.FindAvailableSlots(req)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := svc.FindAvailableSlots(req)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}

func TestFindAvailableSlots_Invariants(t *testing.T) {
	req := models.FindSlotsRequest{
		StartDate:    monday,
		EndDate:      monday.AddDate(0, 0, 14),
		WorkingHours: mondayOnlyHours(),
		ExistingMeetings: []models.Meeting{
			{ID: "m1", StartTime: at(monday, 14, 0), EndTime: at(monday, 15, 0), IsRecurring: true},
			{ID: "m2", StartTime: at(monday, 10, 0), EndTime: at(monday, 12, 30)},
		},
		BufferMinutes:      15,
		MinDurationMinutes: 20,
	}
	slots := findSlots(t, req)
	if len(slots) == 0 {
		t.Fatal("expected some slots")
	}

	for i, s := range slots {
		if !s.Start.Before(s.End) {
			t.Errorf("slot %d: start not before end", i)
		}
		if got := int(s.End.Sub(s.Start) / time.Minute); got != s.DurationMinutes {
			t.Errorf("slot %d: duration %d does not match interval %d", i, s.DurationMinutes, got)
		}
		if s.Quality < 0 || s.Quality > 1 {
			t.Errorf("slot %d: quality %f out of range", i, s.Quality)
		}
		if s.DurationMinutes < req.MinDurationMinutes {
			t.Errorf("slot %d: shorter than minimum", i)
		}
		if i > 0 && slots[i-1].End.After(s.Start) {
			t.Errorf("slot %d overlaps previous", i)
		}
	}

	blocked := buildBlockedIntervals(req.ExistingMeetings, WeeklyRecurrenceExpander{}, req.StartDate, req.EndDate, req.BufferMinutes)
	for i, s := range slots {
		for _, b := range blocked {
			if s.Start.Before(b.End) && s.End.After(b.Start) {
				t.Errorf("slot %d [%v, %v) overlaps %s interval [%v, %v)",
					i, s.Start, s.End, b.Reason, b.Start, b.End)
			}
		}
	}
}

func TestFindAvailableSlots_PartialFirstDay(t *testing.T) {
	// Range starts mid-day; the Monday window is clipped to 13:00.
	req := models.FindSlotsRequest{
		StartDate:    at(monday, 13, 0),
		EndDate:      monday.AddDate(0, 0, 1),
		WorkingHours: mondayOnlyHours(),
	}
	slots := findSlots(t, req)

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(monday, 13, 0)) || slots[0].DurationMinutes != 240 {
		t.Fatalf("expected clipped 13:00-17:00 window, got %+v", slots[0])
	}
}
