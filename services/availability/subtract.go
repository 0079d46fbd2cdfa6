package availability

import (
	"sort"

	"flowdesk/models"
)

// subtractBlocked punches the blocked intervals out of one working window and
// returns the free fragments, sorted by start and non-overlapping.
//
// The sweep keeps a cursor at the end of the last blocked region seen; because
// the cursor only ever advances, overlapping and nested blocks are absorbed
// without double-counting.
func subtractBlocked(w workingWindow, blocked []models.BlockedInterval) []workingWindow {
	overlapping := make([]models.BlockedInterval, 0, len(blocked))
	for _, b := range blocked {
		if b.Start.Before(w.end) && b.End.After(w.start) {
			overlapping = append(overlapping, b)
		}
	}
	if len(overlapping) == 0 {
		return []workingWindow{w}
	}

	sort.Slice(overlapping, func(i, j int) bool {
		return overlapping[i].Start.Before(overlapping[j].Start)
	})

	var fragments []workingWindow
	cursor := w.start
	for _, b := range overlapping {
		if cursor.Before(b.Start) {
			fragments = append(fragments, workingWindow{start: cursor, end: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(w.end) {
		fragments = append(fragments, workingWindow{start: cursor, end: w.end})
	}
	return fragments
}
