package calendar

import (
	"strings"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
)

// ViewMode selects between the user's own calendar and the department-wide
// calendar.
type ViewMode string

const (
	ModePersonal   ViewMode = "personal"
	ModeDepartment ViewMode = "department"
)

// ParseViewMode defaults anything unrecognized to personal, the safe view.
func ParseViewMode(raw string) ViewMode {
	if strings.EqualFold(strings.TrimSpace(raw), string(ModeDepartment)) {
		return ModeDepartment
	}
	return ModePersonal
}

// Visible returns the subset of records the current selection allows.
//
// Personal mode ignores the selection entirely: the snapshot is already
// scoped to the current user and every record of it is visible. Department
// mode shows a record iff its owner's key is selected; an empty employee
// selection therefore shows nothing, not everything.
func Visible(records []leave.LeaveRecord, sel SelectionState, mode ViewMode) []leave.LeaveRecord {
	if mode != ModeDepartment {
		out := make([]leave.LeaveRecord, len(records))
		copy(out, records)
		return out
	}
	out := make([]leave.LeaveRecord, 0, len(records))
	if len(sel.Employees) == 0 {
		return out
	}
	for _, rec := range records {
		if _, ok := sel.Employees[rec.Key()]; ok {
			out = append(out, rec)
		}
	}
	return out
}
