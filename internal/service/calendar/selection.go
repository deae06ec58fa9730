package calendar

import (
	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
)

// SelectionState is the two-level department/employee selection that scopes
// which colleagues' leaves are visible in department mode. Every mutating
// method returns a new state value; callers replace their copy wholesale,
// so no partially-applied selection is ever observable.
//
// The department set and the employee set deliberately decouple after
// employee-level edits: toggling a single employee does not recompute the
// department flag. Only a whole-department toggle, SelectAll, or SelectNone
// bring the two sets back in sync. This mirrors the behavior the checkbox
// sidebar has always had.
type SelectionState struct {
	Departments map[string]struct{}
	Employees   map[leave.EmployeeKey]struct{}
	// Expanded is a presentation flag for the sidebar accordion. It never
	// influences visibility.
	Expanded map[string]struct{}
}

// NewSelectionState returns an empty selection.
func NewSelectionState() SelectionState {
	return SelectionState{
		Departments: map[string]struct{}{},
		Employees:   map[leave.EmployeeKey]struct{}{},
		Expanded:    map[string]struct{}{},
	}
}

// SelectionFromLists rebuilds a state from flat lists, the shape the client
// round-trips selection in. Unknown departments or keys are kept as-is;
// they simply match no records.
func SelectionFromLists(departments []string, employees []string, expanded []string) SelectionState {
	s := NewSelectionState()
	for _, d := range departments {
		s.Departments[d] = struct{}{}
	}
	for _, e := range employees {
		s.Employees[leave.EmployeeKey(e)] = struct{}{}
	}
	for _, d := range expanded {
		s.Expanded[d] = struct{}{}
	}
	return s
}

func (s SelectionState) clone() SelectionState {
	next := SelectionState{
		Departments: make(map[string]struct{}, len(s.Departments)),
		Employees:   make(map[leave.EmployeeKey]struct{}, len(s.Employees)),
		Expanded:    make(map[string]struct{}, len(s.Expanded)),
	}
	for d := range s.Departments {
		next.Departments[d] = struct{}{}
	}
	for e := range s.Employees {
		next.Employees[e] = struct{}{}
	}
	for d := range s.Expanded {
		next.Expanded[d] = struct{}{}
	}
	return next
}

// ToggleDepartment flips the department's selection and cascades to every
// employee the roster currently knows for it. A department with no known
// employees still flips its own flag. Toggling a department absent from the
// roster is tolerated: the flag flips and nothing else changes.
func (s SelectionState) ToggleDepartment(dept string, roster leave.Roster) SelectionState {
	next := s.clone()
	keys := roster.Keys(dept)
	if _, selected := next.Departments[dept]; selected {
		delete(next.Departments, dept)
		for _, key := range keys {
			delete(next.Employees, key)
		}
	} else {
		next.Departments[dept] = struct{}{}
		for _, key := range keys {
			next.Employees[key] = struct{}{}
		}
	}
	return next
}

// ToggleEmployee flips a single employee's selection. The department flag
// is intentionally left alone.
func (s SelectionState) ToggleEmployee(name, dept string) SelectionState {
	next := s.clone()
	key := leave.NewEmployeeKey(name, dept)
	if _, selected := next.Employees[key]; selected {
		delete(next.Employees, key)
	} else {
		next.Employees[key] = struct{}{}
	}
	return next
}

// SelectAll selects every department and employee the roster knows.
// Expansion flags are preserved.
func (s SelectionState) SelectAll(roster leave.Roster) SelectionState {
	next := s.clone()
	next.Departments = make(map[string]struct{}, len(roster))
	next.Employees = make(map[leave.EmployeeKey]struct{})
	for _, dept := range roster.Departments() {
		next.Departments[dept] = struct{}{}
		for _, key := range roster.Keys(dept) {
			next.Employees[key] = struct{}{}
		}
	}
	return next
}

// SelectNone clears both selection sets. Expansion flags are preserved.
func (s SelectionState) SelectNone() SelectionState {
	next := s.clone()
	next.Departments = map[string]struct{}{}
	next.Employees = map[leave.EmployeeKey]struct{}{}
	return next
}

// ToggleExpansion flips the sidebar accordion flag for a department.
func (s SelectionState) ToggleExpansion(dept string) SelectionState {
	next := s.clone()
	if _, expanded := next.Expanded[dept]; expanded {
		delete(next.Expanded, dept)
	} else {
		next.Expanded[dept] = struct{}{}
	}
	return next
}
