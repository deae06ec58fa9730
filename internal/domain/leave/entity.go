package leave

import (
	"strings"
	"time"
)

// LeaveStatus is the closed set of statuses this service recognizes.
// Anything outside the set is kept verbatim and falls through to the
// lowest display priority instead of being rejected.
type LeaveStatus string

const (
	LeaveStatusRequested       LeaveStatus = "REQUESTED"
	LeaveStatusPending         LeaveStatus = "PENDING"
	LeaveStatusApproved        LeaveStatus = "APPROVED"
	LeaveStatusRejected        LeaveStatus = "REJECTED"
	LeaveStatusCancelled       LeaveStatus = "CANCELLED"
	LeaveStatusCancelRequested LeaveStatus = "CANCEL_REQUESTED"
)

// ParseStatus normalizes a raw status label to upper case. Unknown labels
// survive as-is so the caller can still display them.
func ParseStatus(raw string) LeaveStatus {
	return LeaveStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// DisplayPriority orders statuses for day-detail lists: actionable items
// first. Unrecognized statuses (including CANCEL_REQUESTED) sort last.
func (s LeaveStatus) DisplayPriority() int {
	switch s {
	case LeaveStatusRequested, LeaveStatusPending:
		return 1
	case LeaveStatusApproved:
		return 2
	case LeaveStatusRejected:
		return 3
	case LeaveStatusCancelled:
		return 4
	default:
		return 5
	}
}

// HalfDaySlot marks a sub-day leave unit.
type HalfDaySlot string

const (
	HalfDayAM  HalfDaySlot = "AM"
	HalfDayPM  HalfDaySlot = "PM"
	HalfDayAll HalfDaySlot = "ALL"
)

func ParseHalfDaySlot(raw string) HalfDaySlot {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "AM":
		return HalfDayAM
	case "PM":
		return HalfDayPM
	default:
		return HalfDayAll
	}
}

// LeaveRecord is one leave request as supplied by the snapshot source.
// Records are immutable once fetched; every derived view is a pure
// function of a snapshot slice.
type LeaveRecord struct {
	ID            string
	EmployeeName  string
	Department    string
	StartDate     time.Time
	EndDate       time.Time
	LeaveType     string
	HalfDaySlot   HalfDaySlot
	Status        LeaveStatus
	Reason        string
	RejectMessage string
}

// Key returns the record owner's EmployeeKey.
func (r LeaveRecord) Key() EmployeeKey {
	return NewEmployeeKey(r.EmployeeName, r.Department)
}

// KeySeparator joins name and department in an EmployeeKey. Pipe keeps the
// key trivially reversible for display.
const KeySeparator = "|"

// EmployeeKey disambiguates same-named employees in different departments.
// A missing name or department groups under the empty-string key.
type EmployeeKey string

func NewEmployeeKey(name, department string) EmployeeKey {
	return EmployeeKey(name + KeySeparator + department)
}

// Split returns the name and department halves of the key. A bare string
// with no separator splits into itself plus an empty department.
func (k EmployeeKey) Split() (name, department string) {
	name, department, _ = strings.Cut(string(k), KeySeparator)
	return name, department
}

// Approver is one entry of the approver directory.
type Approver struct {
	ApproverID   string
	ApproverName string
	Department   string
	Position     string
}
