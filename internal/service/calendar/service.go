package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
)

// Service glues the snapshot repository to the pure calendar engine. All
// state (selection, page index, month) arrives with each call and every
// result is a fresh value, so the service itself is stateless.
type Service struct {
	snapshots leave.SnapshotRepository
}

func NewService(snapshots leave.SnapshotRepository) *Service {
	return &Service{snapshots: snapshots}
}

func (s *Service) snapshot(ctx context.Context, userID string, anchor time.Time, mode ViewMode) ([]leave.LeaveRecord, error) {
	if mode == ModeDepartment {
		records, err := s.snapshots.ListForMonth(ctx, anchor)
		if err != nil {
			return nil, fmt.Errorf("failed to load department snapshot: %w", err)
		}
		return records, nil
	}
	records, err := s.snapshots.ListForEmployee(ctx, userID, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to load personal snapshot: %w", err)
	}
	return records, nil
}

// MonthGrid builds the week grid for the month containing anchor, scoped by
// mode and selection.
func (s *Service) MonthGrid(ctx context.Context, userID string, anchor time.Time, mode ViewMode, sel SelectionState) ([][]DayCell, error) {
	records, err := s.snapshot(ctx, userID, anchor, mode)
	if err != nil {
		return nil, err
	}
	visible := Visible(records, sel, mode)
	return BuildMonthGrid(anchor, time.Now(), visible), nil
}

// DayDetails returns one page of the ordered detail list for a single day.
func (s *Service) DayDetails(ctx context.Context, userID string, day time.Time, mode ViewMode, sel SelectionState, pageIndex, pageSize int) (DetailPage, error) {
	records, err := s.snapshot(ctx, userID, day, mode)
	if err != nil {
		return DetailPage{}, err
	}
	visible := Visible(records, sel, mode)
	return BuildDetailPage(leavesOn(day, visible), pageIndex, pageSize), nil
}

// Roster derives the department/employee sidebar for the month containing
// anchor from the department-wide snapshot.
func (s *Service) Roster(ctx context.Context, anchor time.Time) (leave.Roster, error) {
	records, err := s.snapshots.ListForMonth(ctx, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to load department snapshot: %w", err)
	}
	return leave.BuildRoster(records), nil
}
