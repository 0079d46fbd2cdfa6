package availability

import (
	"testing"
	"time"

	"flowdesk/models"
)

func TestExpand_NonRecurringInsideRange(t *testing.T) {
	m := models.Meeting{ID: "m1", StartTime: at(monday, 10, 0), EndTime: at(monday, 11, 0)}
	occs := WeeklyRecurrenceExpander{}.Expand(m, monday, monday.AddDate(0, 0, 1))
	if len(occs) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occs))
	}
	if !occs[0].Start.Equal(m.StartTime) || !occs[0].End.Equal(m.EndTime) {
		t.Fatalf("occurrence altered: %+v", occs[0])
	}
}

func TestExpand_NonRecurringClippedToRange(t *testing.T) {
	m := models.Meeting{ID: "m1", StartTime: at(monday, 8, 0), EndTime: at(monday, 10, 0)}
	occs := WeeklyRecurrenceExpander{}.Expand(m, at(monday, 9, 0), monday.AddDate(0, 0, 1))
	if len(occs) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occs))
	}
	if !occs[0].Start.Equal(at(monday, 9, 0)) {
		t.Fatalf("expected clip to range start, got %s", occs[0].Start)
	}
}

func TestExpand_NonRecurringOutsideRangeDropped(t *testing.T) {
	m := models.Meeting{ID: "m1", StartTime: at(monday, 10, 0), EndTime: at(monday, 11, 0)}
	occs := WeeklyRecurrenceExpander{}.Expand(m, monday.AddDate(0, 0, 2), monday.AddDate(0, 0, 3))
	if len(occs) != 0 {
		t.Fatalf("expected no occurrences, got %+v", occs)
	}
}

func TestExpand_WeeklyRecurrence(t *testing.T) {
	m := models.Meeting{
		ID:          "m1",
		StartTime:   at(monday, 14, 0),
		EndTime:     at(monday, 15, 30),
		IsRecurring: true,
	}
	occs := WeeklyRecurrenceExpander{}.Expand(m, monday, monday.AddDate(0, 0, 21))
	if len(occs) != 3 {
		t.Fatalf("expected 3 weekly occurrences, got %d", len(occs))
	}
	for i, occ := range occs {
		want := at(monday.AddDate(0, 0, 7*i), 14, 0)
		if !occ.Start.Equal(want) {
			t.Errorf("occurrence %d: expected start %s, got %s", i, want, occ.Start)
		}
		if occ.End.Sub(occ.Start) != 90*time.Minute {
			t.Errorf("occurrence %d: duration changed", i)
		}
	}
}

func TestExpand_PartiallyVisibleRecurrenceDropped(t *testing.T) {
	m := models.Meeting{
		ID:          "m1",
		StartTime:   at(monday, 14, 0),
		EndTime:     at(monday, 15, 0),
		IsRecurring: true,
	}
	// Range opens at 14:30 on the first Monday: that occurrence is only
	// partially visible and must be dropped, not clipped.
	occs := WeeklyRecurrenceExpander{}.Expand(m, at(monday, 14, 30), monday.AddDate(0, 0, 8))
	if len(occs) != 1 {
		t.Fatalf("expected only the second Monday, got %d occurrences", len(occs))
	}
	if !occs[0].Start.Equal(at(monday.AddDate(0, 0, 7), 14, 0)) {
		t.Fatalf("unexpected occurrence: %+v", occs[0])
	}
}

func TestExpand_RecurrenceOnDifferentWeekday(t *testing.T) {
	wednesday := monday.AddDate(0, 0, 2)
	m := models.Meeting{
		ID:          "m1",
		StartTime:   at(wednesday, 11, 0),
		EndTime:     at(wednesday, 12, 0),
		IsRecurring: true,
	}
	occs := WeeklyRecurrenceExpander{}.Expand(m, monday, monday.AddDate(0, 0, 14))
	if len(occs) != 2 {
		t.Fatalf("expected 2 Wednesday occurrences, got %d", len(occs))
	}
	for _, occ := range occs {
		if occ.Start.Weekday() != time.Wednesday {
			t.Fatalf("occurrence on wrong weekday: %s", occ.Start)
		}
	}
}

func TestBuildBlockedIntervals_BufferPadding(t *testing.T) {
	meetings := []models.Meeting{
		{ID: "m1", StartTime: at(monday, 10, 0), EndTime: at(monday, 11, 0)},
	}
	blocked := buildBlockedIntervals(meetings, WeeklyRecurrenceExpander{}, monday, monday.AddDate(0, 0, 1), 15)
	if len(blocked) != 3 {
		t.Fatalf("expected meeting + 2 buffers, got %d", len(blocked))
	}

	counts := map[models.BlockReason]int{}
	for _, b := range blocked {
		counts[b.Reason]++
		if !b.Start.Before(b.End) {
			t.Errorf("interval with start >= end: %+v", b)
		}
	}
	if counts[models.BlockReasonMeeting] != 1 || counts[models.BlockReasonBuffer] != 2 {
		t.Fatalf("unexpected reason counts: %v", counts)
	}
}

func TestBuildBlockedIntervals_NoBufferWhenZero(t *testing.T) {
	meetings := []models.Meeting{
		{ID: "m1", StartTime: at(monday, 10, 0), EndTime: at(monday, 11, 0)},
	}
	blocked := buildBlockedIntervals(meetings, WeeklyRecurrenceExpander{}, monday, monday.AddDate(0, 0, 1), 0)
	if len(blocked) != 1 {
		t.Fatalf("expected meeting interval only, got %d", len(blocked))
	}
}

func TestBreakIntervals_PerWorkingDay(t *testing.T) {
	breakStart := 12.5
	wh := models.WorkingHours{
		time.Monday:  {IsWorkingDay: true, StartHour: 9, EndHour: 17, BreakStart: &breakStart, BreakDurationMinutes: 45},
		time.Tuesday: {IsWorkingDay: true, StartHour: 9, EndHour: 17},
	}
	blocked := breakIntervals(monday, monday.AddDate(0, 0, 13), wh)
	if len(blocked) != 2 {
		t.Fatalf("expected a break per Monday, got %d", len(blocked))
	}
	for _, b := range blocked {
		if b.Reason != models.BlockReasonBreak {
			t.Errorf("wrong reason: %s", b.Reason)
		}
		if !b.Start.Equal(at(dayStart(b.Start), 12, 30)) || b.End.Sub(b.Start) != 45*time.Minute {
			t.Errorf("unexpected break interval: %+v", b)
		}
	}
}
