package calendar

import (
	"sort"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
)

// DefaultDetailPageSize is the page size of the day-detail panel.
const DefaultDetailPageSize = 5

// OrderForDisplay sorts a day's leaves by status priority so actionable
// (requested/pending) items surface first. The sort is stable and there is
// no secondary key: ties keep their snapshot order.
func OrderForDisplay(records []leave.LeaveRecord) []leave.LeaveRecord {
	out := make([]leave.LeaveRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status.DisplayPriority() < out[j].Status.DisplayPriority()
	})
	return out
}

// PageCount returns how many pages n items fill. An empty list still has
// one page, so "page 1 of 1, zero items" is always a renderable state.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Page returns the pageIndex-th slice of items. Indices past the last page
// (or negative) yield an empty slice, never an error.
func Page[T any](items []T, pageIndex, pageSize int) []T {
	if pageSize <= 0 || pageIndex < 0 {
		return nil
	}
	start := pageIndex * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// DetailPage is one page of the ordered day-detail list.
type DetailPage struct {
	Items      []leave.LeaveRecord
	PageIndex  int
	PageSize   int
	TotalPages int
}

// BuildDetailPage orders the day's leaves and slices out the requested
// page.
func BuildDetailPage(leavesForDay []leave.LeaveRecord, pageIndex, pageSize int) DetailPage {
	if pageSize <= 0 {
		pageSize = DefaultDetailPageSize
	}
	ordered := OrderForDisplay(leavesForDay)
	return DetailPage{
		Items:      Page(ordered, pageIndex, pageSize),
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalPages: PageCount(len(ordered), pageSize),
	}
}
