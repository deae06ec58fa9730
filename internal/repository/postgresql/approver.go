package postgresql

import (
	"context"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/leave-calendar-go/internal/pkg/database"
)

type approverRepositoryImpl struct {
	db *database.DB
}

func NewApproverRepository(db *database.DB) leave.ApproverRepository {
	return &approverRepositoryImpl{db: db}
}

// ListApprovers implements leave.ApproverRepository.
func (r *approverRepositoryImpl) ListApprovers(ctx context.Context) ([]leave.Approver, error) {
	query := `
		SELECT e.id, e.name, e.department, COALESCE(e.position, '')
		FROM employees e
		WHERE e.is_approver = true
		ORDER BY e.department, e.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var approvers []leave.Approver
	for rows.Next() {
		var a leave.Approver
		if err := rows.Scan(&a.ApproverID, &a.ApproverName, &a.Department, &a.Position); err != nil {
			return nil, err
		}
		approvers = append(approvers, a)
	}
	return approvers, rows.Err()
}
