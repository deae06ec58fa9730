package calendar

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_WholeWeeks(t *testing.T) {
	t.Parallel()

	months := []time.Time{
		date(2025, time.February, 1), // Feb 2025 starts on Saturday
		date(2025, time.March, 1),
		date(2026, time.February, 1), // Feb 2026 starts on Sunday: exactly 4 rows
		date(2025, time.August, 1),   // 6 rows
		date(2024, time.December, 1),
	}

	for _, anchor := range months {
		grid := BuildMonthGrid(anchor, date(2025, time.January, 15), nil)

		assert.GreaterOrEqual(t, len(grid), 4)
		assert.LessOrEqual(t, len(grid), 6)
		for _, week := range grid {
			assert.Len(t, week, 7)
		}

		// Sunday-first rows
		for _, week := range grid {
			assert.Equal(t, time.Sunday, week[0].Date.Weekday())
			assert.Equal(t, time.Saturday, week[6].Date.Weekday())
		}
	}
}

func TestBuildMonthGrid_EveryMonthDateOnce(t *testing.T) {
	t.Parallel()

	anchor := date(2025, time.March, 1)
	grid := BuildMonthGrid(anchor, date(2025, time.March, 5), nil)

	counts := make(map[string]int)
	for _, week := range grid {
		for _, cell := range week {
			if cell.IsCurrentMonth {
				counts[cell.Date.Format(time.DateOnly)]++
			}
		}
	}

	require.Len(t, counts, 31)
	for d, n := range counts {
		assert.Equal(t, 1, n, "date %s", d)
	}
}

func TestBuildMonthGrid_MarksToday(t *testing.T) {
	t.Parallel()

	today := date(2025, time.March, 5)
	grid := BuildMonthGrid(date(2025, time.March, 1), today, nil)

	var todayCount int
	for _, week := range grid {
		for _, cell := range week {
			if cell.IsToday {
				todayCount++
				assert.Equal(t, today, cell.Date)
			}
		}
	}
	assert.Equal(t, 1, todayCount)
}

func TestBuildMonthGrid_AttachesOverlappingLeaves(t *testing.T) {
	t.Parallel()

	// A three-day leave must appear on exactly its three days.
	rec := record("Lee", "Eng", date(2025, time.March, 10), date(2025, time.March, 12), leave.LeaveStatusApproved)
	grid := BuildMonthGrid(date(2025, time.March, 1), date(2025, time.March, 1), []leave.LeaveRecord{rec})

	leavesByDate := make(map[string]int)
	for _, week := range grid {
		for _, cell := range week {
			leavesByDate[cell.Date.Format(time.DateOnly)] = len(cell.Leaves)
		}
	}

	assert.Equal(t, 0, leavesByDate["2025-03-09"])
	assert.Equal(t, 1, leavesByDate["2025-03-10"])
	assert.Equal(t, 1, leavesByDate["2025-03-11"])
	assert.Equal(t, 1, leavesByDate["2025-03-12"])
	assert.Equal(t, 0, leavesByDate["2025-03-13"])
}

func TestBuildMonthGrid_LeadingTrailingCellsNotCurrentMonth(t *testing.T) {
	t.Parallel()

	grid := BuildMonthGrid(date(2025, time.March, 1), date(2025, time.March, 1), nil)

	// March 2025 starts on Saturday: the first row has six February cells.
	first := grid[0]
	for i := 0; i < 6; i++ {
		assert.False(t, first[i].IsCurrentMonth)
		assert.Equal(t, time.February, first[i].Date.Month())
	}
	assert.True(t, first[6].IsCurrentMonth)
}
