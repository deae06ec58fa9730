package approval

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/google/uuid"
)

// ApprovalLine is one link of a sequential approval chain in the shape the
// request-submission collaborator expects: a linked list with 1-based
// sequence numbers, the last link pointing at the empty id.
type ApprovalLine struct {
	ApproverID     string `json:"approver_id"`
	NextApproverID string `json:"next_approver_id"`
	ApprovalSeq    int    `json:"approval_seq"`
	ApproverName   string `json:"approver_name"`
}

// ChainResult is the submission payload built from a finished chain.
type ChainResult struct {
	DraftID     string         `json:"draft_id"`
	Mode        ChainMode      `json:"mode"`
	ApproverIDs []string       `json:"approver_ids"`
	Lines       []ApprovalLine `json:"lines,omitempty"`
}

// Service resolves chain selections against the approver directory.
type Service struct {
	approvers leave.ApproverRepository
}

func NewService(approvers leave.ApproverRepository) *Service {
	return &Service{approvers: approvers}
}

// ListApprovers returns the directory the selection dialog shows.
func (s *Service) ListApprovers(ctx context.Context) ([]leave.Approver, error) {
	approvers, err := s.approvers.ListApprovers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvers: %w", err)
	}
	return approvers, nil
}

// BuildResult turns the chain into a submission payload. Every selected id
// must exist in the approver directory. Sequential chains additionally get
// linked ApprovalLines; parallel chains only carry the member ids.
func (s *Service) BuildResult(ctx context.Context, chain *Chain, mode ChainMode) (ChainResult, error) {
	directory, err := s.approvers.ListApprovers(ctx)
	if err != nil {
		return ChainResult{}, fmt.Errorf("failed to list approvers: %w", err)
	}
	byID := make(map[string]leave.Approver, len(directory))
	for _, a := range directory {
		byID[a.ApproverID] = a
	}

	ids := chain.Result(mode)
	result := ChainResult{
		DraftID:     uuid.NewString(),
		Mode:        mode,
		ApproverIDs: ids,
	}

	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return ChainResult{}, leave.ErrApproverNotFound
		}
	}

	if mode == ModeSequential {
		result.Lines = BuildApprovalLines(ids, byID)
	}
	return result, nil
}

// BuildApprovalLines links the ordered ids into approval lines. Sequence
// numbers start at 1; the final line's next id is empty.
func BuildApprovalLines(ids []string, byID map[string]leave.Approver) []ApprovalLine {
	lines := make([]ApprovalLine, 0, len(ids))
	for i, id := range ids {
		next := ""
		if i+1 < len(ids) {
			next = ids[i+1]
		}
		lines = append(lines, ApprovalLine{
			ApproverID:     id,
			NextApproverID: next,
			ApprovalSeq:    i + 1,
			ApproverName:   byID[id].ApproverName,
		})
	}
	return lines
}
