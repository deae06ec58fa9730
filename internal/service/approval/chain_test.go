package approval

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	chain := NewChain()
	chain.Add("X")
	chain.Add("X")

	assert.Equal(t, []string{"X"}, chain.Result(ModeSequential))
	assert.Equal(t, 1, chain.Len())
}

func TestChain_ReAddGoesToEnd(t *testing.T) {
	t.Parallel()

	chain := NewChain()
	chain.Add("A")
	chain.Add("B")
	chain.Remove("A")
	chain.Add("A")

	assert.Equal(t, []string{"B", "A"}, chain.Result(ModeSequential))
}

func TestChain_RemoveUnknownIsNoOp(t *testing.T) {
	t.Parallel()

	chain := NewChain()
	chain.Add("A")
	chain.Remove("Z")

	assert.Equal(t, []string{"A"}, chain.Result(ModeSequential))
}

func TestChain_Toggle(t *testing.T) {
	t.Parallel()

	chain := NewChain()
	chain.Toggle("A")
	chain.Toggle("B")
	chain.Toggle("A")

	assert.False(t, chain.Contains("A"))
	assert.True(t, chain.Contains("B"))
	assert.Equal(t, []string{"B"}, chain.Result(ModeSequential))
}

func TestChain_OrderAndMembersAgree(t *testing.T) {
	t.Parallel()

	chain := NewChain()
	for _, id := range []string{"A", "B", "C", "B", "A"} {
		chain.Add(id)
	}
	chain.Remove("B")

	ids := chain.Result(ModeParallel)
	assert.Equal(t, []string{"A", "C"}, ids)
	for _, id := range ids {
		assert.True(t, chain.Contains(id))
	}
	assert.Equal(t, len(ids), chain.Len())
}

// stubApproverRepository serves a fixed approver directory.
type stubApproverRepository struct {
	approvers []leave.Approver
}

func (s *stubApproverRepository) ListApprovers(ctx context.Context) ([]leave.Approver, error) {
	return s.approvers, nil
}

func testDirectory() *stubApproverRepository {
	return &stubApproverRepository{approvers: []leave.Approver{
		{ApproverID: "A", ApproverName: "Ahn", Department: "Eng"},
		{ApproverID: "B", ApproverName: "Bae", Department: "Eng"},
		{ApproverID: "C", ApproverName: "Choi", Department: "Sales"},
	}}
}

func TestService_BuildResult_SequentialLines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(testDirectory())

	chain := NewChain()
	chain.Add("B")
	chain.Add("A")
	chain.Add("C")

	result, err := svc.BuildResult(ctx, chain, ModeSequential)
	require.NoError(t, err)

	assert.NotEmpty(t, result.DraftID)
	assert.Equal(t, []string{"B", "A", "C"}, result.ApproverIDs)

	require.Len(t, result.Lines, 3)
	assert.Equal(t, ApprovalLine{ApproverID: "B", NextApproverID: "A", ApprovalSeq: 1, ApproverName: "Bae"}, result.Lines[0])
	assert.Equal(t, ApprovalLine{ApproverID: "A", NextApproverID: "C", ApprovalSeq: 2, ApproverName: "Ahn"}, result.Lines[1])
	assert.Equal(t, ApprovalLine{ApproverID: "C", NextApproverID: "", ApprovalSeq: 3, ApproverName: "Choi"}, result.Lines[2])
}

func TestService_BuildResult_ParallelHasNoLines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(testDirectory())

	chain := NewChain()
	chain.Add("A")
	chain.Add("C")

	result, err := svc.BuildResult(ctx, chain, ModeParallel)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, result.ApproverIDs)
	assert.Empty(t, result.Lines)
}

func TestService_BuildResult_UnknownApprover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(testDirectory())

	chain := NewChain()
	chain.Add("Z")

	_, err := svc.BuildResult(ctx, chain, ModeSequential)
	assert.ErrorIs(t, err, leave.ErrApproverNotFound)
}
