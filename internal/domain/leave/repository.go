package leave

import (
	"context"
	"time"
)

// SnapshotRepository fetches read-only leave snapshots. The calendar engine
// itself never touches storage; it consumes the plain record slices these
// methods return.
type SnapshotRepository interface {
	// ListForMonth returns every colleague leave overlapping the month that
	// contains anchor (department calendar view).
	ListForMonth(ctx context.Context, anchor time.Time) ([]LeaveRecord, error)
	// ListForEmployee returns the given user's own leaves overlapping the
	// month that contains anchor (personal calendar view).
	ListForEmployee(ctx context.Context, userID string, anchor time.Time) ([]LeaveRecord, error)
}

// ApproverRepository lists the approver directory shown when building an
// approval chain.
type ApproverRepository interface {
	ListApprovers(ctx context.Context) ([]Approver, error)
}
