package approval

// ChainMode selects how a chain's approvers act on a request.
type ChainMode string

const (
	// ModeSequential routes the request through approvers one by one, in
	// the order they were picked.
	ModeSequential ChainMode = "sequential"
	// ModeParallel lets every approver act independently; their order
	// carries no meaning.
	ModeParallel ChainMode = "parallel"
)

// Chain is an ordered set of approver ids: a slice for display/submission
// order plus a set for O(1) membership. The two views always hold exactly
// the same ids and the slice never contains duplicates.
//
// There is no submitted or locked state here; submission belongs to the
// request-creation flow.
type Chain struct {
	order   []string
	members map[string]struct{}
}

func NewChain() *Chain {
	return &Chain{members: make(map[string]struct{})}
}

// Add appends the approver unless already present; a repeated Add keeps the
// earlier position.
func (c *Chain) Add(approverID string) {
	if _, ok := c.members[approverID]; ok {
		return
	}
	c.members[approverID] = struct{}{}
	c.order = append(c.order, approverID)
}

// Remove drops the approver from both views. Removing an unknown id is a
// no-op. An id added again after removal goes to the end of the order.
func (c *Chain) Remove(approverID string) {
	if _, ok := c.members[approverID]; !ok {
		return
	}
	delete(c.members, approverID)
	for i, id := range c.order {
		if id == approverID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Contains reports membership.
func (c *Chain) Contains(approverID string) bool {
	_, ok := c.members[approverID]
	return ok
}

// Len returns the number of selected approvers.
func (c *Chain) Len() int {
	return len(c.order)
}

// Toggle adds the approver if absent, removes it if present.
func (c *Chain) Toggle(approverID string) {
	if c.Contains(approverID) {
		c.Remove(approverID)
	} else {
		c.Add(approverID)
	}
}

// Result returns the ids to submit. Sequential mode returns the insertion
// order verbatim, which IS the approval sequence. Parallel mode promises no
// ordering to the caller; insertion order is returned because it is
// deterministic, nothing more.
func (c *Chain) Result(mode ChainMode) []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
