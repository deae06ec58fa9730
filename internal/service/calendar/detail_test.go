package calendar

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusRecord(name string, status leave.LeaveStatus) leave.LeaveRecord {
	return record(name, "Eng", date(2025, time.March, 10), date(2025, time.March, 10), status)
}

func TestOrderForDisplay_StatusPriority(t *testing.T) {
	t.Parallel()

	input := []leave.LeaveRecord{
		statusRecord("r1", leave.LeaveStatusRejected),
		statusRecord("a1", leave.LeaveStatusApproved),
		statusRecord("q1", leave.LeaveStatusRequested),
		statusRecord("q2", leave.LeaveStatusRequested),
	}

	ordered := OrderForDisplay(input)

	require.Len(t, ordered, 4)
	// Requested entries first, keeping their relative order.
	assert.Equal(t, "q1", ordered[0].EmployeeName)
	assert.Equal(t, "q2", ordered[1].EmployeeName)
	assert.Equal(t, "a1", ordered[2].EmployeeName)
	assert.Equal(t, "r1", ordered[3].EmployeeName)
}

func TestOrderForDisplay_UnknownStatusLast(t *testing.T) {
	t.Parallel()

	input := []leave.LeaveRecord{
		statusRecord("odd", leave.LeaveStatus("SOMETHING_ELSE")),
		statusRecord("cr", leave.LeaveStatusCancelRequested),
		statusRecord("c", leave.LeaveStatusCancelled),
		statusRecord("p", leave.LeaveStatusPending),
	}

	ordered := OrderForDisplay(input)

	assert.Equal(t, "p", ordered[0].EmployeeName)
	assert.Equal(t, "c", ordered[1].EmployeeName)
	// Both unknowns share priority 5 and keep input order.
	assert.Equal(t, "odd", ordered[2].EmployeeName)
	assert.Equal(t, "cr", ordered[3].EmployeeName)
}

func TestOrderForDisplay_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []leave.LeaveRecord{
		statusRecord("r1", leave.LeaveStatusRejected),
		statusRecord("q1", leave.LeaveStatusRequested),
	}

	_ = OrderForDisplay(input)

	assert.Equal(t, "r1", input[0].EmployeeName)
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, PageCount(0, 5), "empty list still renders as one page")
	assert.Equal(t, 1, PageCount(5, 5))
	assert.Equal(t, 3, PageCount(12, 5))
	assert.Equal(t, 1, PageCount(3, 0), "nonsense page size degrades to one page")
}

func TestPage_Boundaries(t *testing.T) {
	t.Parallel()

	items := make([]int, 12)
	for i := range items {
		items[i] = i
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, Page(items, 0, 5))
	assert.Equal(t, []int{10, 11}, Page(items, 2, 5), "last page holds the remainder")
	assert.Empty(t, Page(items, 3, 5), "past the last page yields empty, not an error")
	assert.Empty(t, Page(items, -1, 5))
	assert.Empty(t, Page([]int{}, 0, 5))
}

func TestBuildDetailPage(t *testing.T) {
	t.Parallel()

	var input []leave.LeaveRecord
	for i := 0; i < 7; i++ {
		input = append(input, statusRecord("approved", leave.LeaveStatusApproved))
	}
	input = append(input, statusRecord("pending", leave.LeaveStatusPending))

	page := BuildDetailPage(input, 0, 0)

	assert.Equal(t, DefaultDetailPageSize, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "pending", page.Items[0].EmployeeName, "actionable item surfaces on page one")

	last := BuildDetailPage(input, 1, 0)
	assert.Len(t, last.Items, 3)
}

func TestBuildDetailPage_Empty(t *testing.T) {
	t.Parallel()

	page := BuildDetailPage(nil, 0, 5)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}
