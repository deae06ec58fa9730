package calendar

import "time"

// Month navigation works on a flat page index so the client can step
// backward and forward one month at a time. Index 0 is January 2020, the
// epoch the web client has always used; navigation must stay monotonic and
// reversible, the exact base does not matter.
const (
	baseYear  = 2020
	baseMonth = time.January
)

// MonthIndex returns the page index of the month containing t.
func MonthIndex(t time.Time) int {
	return (t.Year()-baseYear)*12 + int(t.Month()) - int(baseMonth)
}

// MonthFromIndex returns the first day of the month at the given page
// index, in UTC. Negative indices walk backward past the base month.
func MonthFromIndex(index int) time.Time {
	return time.Date(baseYear, baseMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, index, 0)
}
