package calendar

import (
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
)

// dayOf strips the time-of-day component, keeping the date in its own
// location. All interval math in this package happens at day granularity.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two instants fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Overlaps reports whether day falls inside the record's [StartDate,
// EndDate] span, inclusive on both ends: a single-day leave matches exactly
// its own date. A record with StartDate after EndDate is an empty interval
// and matches no day.
func Overlaps(day time.Time, rec leave.LeaveRecord) bool {
	d := dayOf(day)
	start := dayOf(rec.StartDate)
	end := dayOf(rec.EndDate)
	if start.After(end) {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// leavesOn filters records down to those overlapping day, preserving input
// order.
func leavesOn(day time.Time, records []leave.LeaveRecord) []leave.LeaveRecord {
	matched := make([]leave.LeaveRecord, 0, len(records))
	for _, rec := range records {
		if Overlaps(day, rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}
