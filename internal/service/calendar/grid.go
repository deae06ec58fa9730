package calendar

import (
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
)

// DayCell is one cell of the month grid. Cells are rebuilt on every
// (month, visibility) change and never mutated in place.
type DayCell struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	Leaves         []leave.LeaveRecord
}

const daysPerWeek = 7

// BuildMonthGrid builds the Sunday-first week grid for the month containing
// anchor. The grid covers the whole weeks around the month, so leading and
// trailing cells belong to the neighbor months with IsCurrentMonth false.
// Each cell carries the subset of visible records overlapping its date.
//
// The result always has complete 7-day rows (4 to 6 of them depending on
// how the month lands on the week), and every date of the anchor month
// appears exactly once with IsCurrentMonth true.
func BuildMonthGrid(anchor, today time.Time, visible []leave.LeaveRecord) [][]DayCell {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	// Extend to whole weeks. time.Weekday is Sunday == 0, which matches the
	// displayed Sunday-first header.
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := lastOfMonth.AddDate(0, 0, daysPerWeek-1-int(lastOfMonth.Weekday()))

	var cells []DayCell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		cells = append(cells, DayCell{
			Date:           day,
			IsCurrentMonth: day.Month() == anchor.Month() && day.Year() == anchor.Year(),
			IsToday:        sameDay(day, today),
			Leaves:         leavesOn(day, visible),
		})
	}

	weeks := make([][]DayCell, 0, len(cells)/daysPerWeek)
	for i := 0; i < len(cells); i += daysPerWeek {
		weeks = append(weeks, cells[i:i+daysPerWeek])
	}
	return weeks
}
