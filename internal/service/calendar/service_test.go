package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSnapshotRepository serves fixed snapshots without a database.
type stubSnapshotRepository struct {
	department []leave.LeaveRecord
	personal   map[string][]leave.LeaveRecord
}

func (s *stubSnapshotRepository) ListForMonth(ctx context.Context, anchor time.Time) ([]leave.LeaveRecord, error) {
	return s.department, nil
}

func (s *stubSnapshotRepository) ListForEmployee(ctx context.Context, userID string, anchor time.Time) ([]leave.LeaveRecord, error) {
	return s.personal[userID], nil
}

func TestService_MonthGrid_DepartmentScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// One approved leave spanning March 10-12 for Lee in Eng.
	repo := &stubSnapshotRepository{
		department: []leave.LeaveRecord{
			record("Lee", "Eng", date(2025, time.March, 10), date(2025, time.March, 12), leave.LeaveStatusApproved),
		},
	}
	svc := NewService(repo)

	roster, err := svc.Roster(ctx, date(2025, time.March, 1))
	require.NoError(t, err)

	sel := NewSelectionState().ToggleDepartment("Eng", roster)

	grid, err := svc.MonthGrid(ctx, "user-1", date(2025, time.March, 1), ModeDepartment, sel)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, week := range grid {
		for _, cell := range week {
			counts[cell.Date.Format(time.DateOnly)] = len(cell.Leaves)
		}
	}
	assert.Equal(t, 0, counts["2025-03-09"])
	assert.Equal(t, 1, counts["2025-03-10"])
	assert.Equal(t, 1, counts["2025-03-11"])
	assert.Equal(t, 1, counts["2025-03-12"])
	assert.Equal(t, 0, counts["2025-03-13"])
}

func TestService_MonthGrid_NothingSelectedShowsNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stubSnapshotRepository{
		department: []leave.LeaveRecord{
			record("Lee", "Eng", date(2025, time.March, 10), date(2025, time.March, 12), leave.LeaveStatusApproved),
		},
	}
	svc := NewService(repo)

	grid, err := svc.MonthGrid(ctx, "user-1", date(2025, time.March, 1), ModeDepartment, NewSelectionState())
	require.NoError(t, err)

	for _, week := range grid {
		for _, cell := range week {
			assert.Empty(t, cell.Leaves)
		}
	}
}

func TestService_DayDetails_PersonalMode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stubSnapshotRepository{
		personal: map[string][]leave.LeaveRecord{
			"user-1": {
				record("Me", "Eng", date(2025, time.March, 10), date(2025, time.March, 10), leave.LeaveStatusRejected),
				record("Me", "Eng", date(2025, time.March, 10), date(2025, time.March, 11), leave.LeaveStatusRequested),
				record("Me", "Eng", date(2025, time.March, 20), date(2025, time.March, 21), leave.LeaveStatusApproved),
			},
		},
	}
	svc := NewService(repo)

	// Selection is irrelevant in personal mode.
	page, err := svc.DayDetails(ctx, "user-1", date(2025, time.March, 10), ModePersonal, NewSelectionState(), 0, 5)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, leave.LeaveStatusRequested, page.Items[0].Status)
	assert.Equal(t, leave.LeaveStatusRejected, page.Items[1].Status)
	assert.Equal(t, 1, page.TotalPages)
}

func TestService_Roster(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stubSnapshotRepository{
		department: []leave.LeaveRecord{
			record("B", "Eng", date(2025, time.March, 1), date(2025, time.March, 1), leave.LeaveStatusApproved),
			record("A", "Eng", date(2025, time.March, 2), date(2025, time.March, 2), leave.LeaveStatusApproved),
			record("A", "Eng", date(2025, time.March, 9), date(2025, time.March, 9), leave.LeaveStatusApproved),
			record("C", "Sales", date(2025, time.March, 3), date(2025, time.March, 3), leave.LeaveStatusApproved),
		},
	}
	svc := NewService(repo)

	roster, err := svc.Roster(ctx, date(2025, time.March, 1))
	require.NoError(t, err)

	assert.Equal(t, []string{"Eng", "Sales"}, roster.Departments())
	assert.Equal(t, []string{"A", "B"}, roster["Eng"], "unique and sorted")
	assert.Equal(t, []string{"C"}, roster["Sales"])
}
