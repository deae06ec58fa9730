package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/leave-calendar-go/internal/pkg/database"
)

type leaveSnapshotRepositoryImpl struct {
	db *database.DB
}

func NewLeaveSnapshotRepository(db *database.DB) leave.SnapshotRepository {
	return &leaveSnapshotRepositoryImpl{db: db}
}

// monthSpan returns the first and last day of the month containing anchor.
func monthSpan(anchor time.Time) (time.Time, time.Time) {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// ListForMonth implements leave.SnapshotRepository. The department-wide
// calendar only ever shows approved leaves, so the filter lives in the
// query rather than in the engine.
func (r *leaveSnapshotRepositoryImpl) ListForMonth(ctx context.Context, anchor time.Time) ([]leave.LeaveRecord, error) {
	first, last := monthSpan(anchor)

	query := `
		SELECT lr.id, e.name, e.department, lr.start_date, lr.end_date,
			   lr.leave_type, lr.half_day_slot, lr.status
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = $1
		  AND lr.start_date <= $2
		  AND lr.end_date >= $3
		ORDER BY lr.start_date, e.department, e.name
	`

	rows, err := r.db.Query(ctx, query, string(leave.LeaveStatusApproved), last, first)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var rec leave.LeaveRecord
		var halfDay, status string
		err := rows.Scan(
			&rec.ID,
			&rec.EmployeeName,
			&rec.Department,
			&rec.StartDate,
			&rec.EndDate,
			&rec.LeaveType,
			&halfDay,
			&status,
		)
		if err != nil {
			return nil, err
		}
		rec.HalfDaySlot = leave.ParseHalfDaySlot(halfDay)
		rec.Status = leave.ParseStatus(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListForEmployee implements leave.SnapshotRepository. The personal
// calendar shows the user's leaves in every status, with reason and
// rejection message for the detail panel.
func (r *leaveSnapshotRepositoryImpl) ListForEmployee(ctx context.Context, userID string, anchor time.Time) ([]leave.LeaveRecord, error) {
	first, last := monthSpan(anchor)

	query := `
		SELECT lr.id, e.name, e.department, lr.start_date, lr.end_date,
			   lr.leave_type, lr.half_day_slot, lr.status,
			   COALESCE(lr.reason, ''), COALESCE(lr.reject_message, '')
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE e.user_id = $1
		  AND lr.start_date <= $2
		  AND lr.end_date >= $3
		ORDER BY lr.start_date
	`

	rows, err := r.db.Query(ctx, query, userID, last, first)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var rec leave.LeaveRecord
		var halfDay, status string
		err := rows.Scan(
			&rec.ID,
			&rec.EmployeeName,
			&rec.Department,
			&rec.StartDate,
			&rec.EndDate,
			&rec.LeaveType,
			&halfDay,
			&status,
			&rec.Reason,
			&rec.RejectMessage,
		)
		if err != nil {
			return nil, err
		}
		rec.HalfDaySlot = leave.ParseHalfDaySlot(halfDay)
		rec.Status = leave.ParseStatus(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}
