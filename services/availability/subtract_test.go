package availability

import (
	"testing"
	"time"

	"flowdesk/models"
)

func window(startHour, endHour int) workingWindow {
	return workingWindow{start: at(monday, startHour, 0), end: at(monday, endHour, 0)}
}

func block(startHour, startMin, endHour, endMin int) models.BlockedInterval {
	return models.BlockedInterval{
		Start:  at(monday, startHour, startMin),
		End:    at(monday, endHour, endMin),
		Reason: models.BlockReasonMeeting,
	}
}

func TestSubtractBlocked_NoBlocks(t *testing.T) {
	frags := subtractBlocked(window(9, 17), nil)
	if len(frags) != 1 || frags[0] != window(9, 17) {
		t.Fatalf("expected unchanged window, got %+v", frags)
	}
}

func TestSubtractBlocked_MiddleBlock(t *testing.T) {
	frags := subtractBlocked(window(9, 17), []models.BlockedInterval{block(10, 0, 11, 0)})
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if !frags[0].end.Equal(at(monday, 10, 0)) || !frags[1].start.Equal(at(monday, 11, 0)) {
		t.Fatalf("unexpected fragments: %+v", frags)
	}
}

func TestSubtractBlocked_OverlappingBlocksUnion(t *testing.T) {
	blocks := []models.BlockedInterval{
		block(10, 0, 12, 0),
		block(11, 0, 13, 0),
		block(11, 30, 11, 45), // nested
	}
	frags := subtractBlocked(window(9, 17), blocks)
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %+v", len(frags), frags)
	}
	if !frags[0].end.Equal(at(monday, 10, 0)) || !frags[1].start.Equal(at(monday, 13, 0)) {
		t.Fatalf("overlapping blocks not absorbed: %+v", frags)
	}
}

func TestSubtractBlocked_UnsortedInput(t *testing.T) {
	blocks := []models.BlockedInterval{
		block(14, 0, 15, 0),
		block(10, 0, 11, 0),
	}
	frags := subtractBlocked(window(9, 17), blocks)
	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d", len(frags))
	}
	if !frags[1].start.Equal(at(monday, 11, 0)) || !frags[1].end.Equal(at(monday, 14, 0)) {
		t.Fatalf("middle fragment wrong: %+v", frags[1])
	}
}

func TestSubtractBlocked_BlockCoversWindow(t *testing.T) {
	frags := subtractBlocked(window(9, 17), []models.BlockedInterval{block(8, 0, 18, 0)})
	if len(frags) != 0 {
		t.Fatalf("expected no fragments, got %+v", frags)
	}
}

func TestSubtractBlocked_BlockOutsideWindowIgnored(t *testing.T) {
	blocks := []models.BlockedInterval{
		block(7, 0, 8, 0),
		block(18, 0, 19, 0),
	}
	frags := subtractBlocked(window(9, 17), blocks)
	if len(frags) != 1 || frags[0] != window(9, 17) {
		t.Fatalf("expected untouched window, got %+v", frags)
	}
}

func TestSubtractBlocked_BlockStraddlesWindowStart(t *testing.T) {
	frags := subtractBlocked(window(9, 17), []models.BlockedInterval{block(8, 0, 9, 30)})
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if !frags[0].start.Equal(at(monday, 9, 30)) || !frags[0].end.Equal(at(monday, 17, 0)) {
		t.Fatalf("unexpected fragment: %+v", frags[0])
	}
}

func TestWorkingWindows_SkipsNonWorkingDays(t *testing.T) {
	wh := models.WorkingHours{
		time.Monday:  {IsWorkingDay: true, StartHour: 9, EndHour: 17},
		time.Tuesday: {IsWorkingDay: false, StartHour: 9, EndHour: 17},
	}
	windows := workingWindows(monday, monday.AddDate(0, 0, 7), wh)
	if len(windows) != 2 {
		t.Fatalf("expected both Mondays only, got %d windows", len(windows))
	}
	for _, w := range windows {
		if w.start.Weekday() != time.Monday {
			t.Fatalf("unexpected window day: %s", w.start)
		}
	}
}

func TestWorkingWindows_FractionalHours(t *testing.T) {
	wh := models.WorkingHours{
		time.Monday: {IsWorkingDay: true, StartHour: 9.5, EndHour: 17.25},
	}
	windows := workingWindows(monday, monday.AddDate(0, 0, 1), wh)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	if !windows[0].start.Equal(at(monday, 9, 30)) || !windows[0].end.Equal(at(monday, 17, 15)) {
		t.Fatalf("fractional hours misread: %+v", windows[0])
	}
}
