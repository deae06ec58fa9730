package leave

import "errors"

var (
	ErrSnapshotUnavailable = errors.New("Leave snapshot unavailable")
	ErrApproverNotFound    = errors.New("Approver not found")
	ErrInvalidMonth        = errors.New("Invalid month")
)
