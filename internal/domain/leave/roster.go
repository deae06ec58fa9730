package leave

import "sort"

// Roster groups a snapshot's employees by department. It is the input to
// the department-level selection cascade: "known employees of a department"
// is always derived from the current snapshot, never from a fixed list.
type Roster map[string][]string

// BuildRoster derives the department roster from a record snapshot.
// Employee names are unique and sorted within each department.
func BuildRoster(records []LeaveRecord) Roster {
	seen := make(map[string]map[string]struct{})
	for _, r := range records {
		if seen[r.Department] == nil {
			seen[r.Department] = make(map[string]struct{})
		}
		seen[r.Department][r.EmployeeName] = struct{}{}
	}

	roster := make(Roster, len(seen))
	for dept, names := range seen {
		list := make([]string, 0, len(names))
		for name := range names {
			list = append(list, name)
		}
		sort.Strings(list)
		roster[dept] = list
	}
	return roster
}

// Departments returns the department names in sorted order.
func (ro Roster) Departments() []string {
	depts := make([]string, 0, len(ro))
	for dept := range ro {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	return depts
}

// Keys returns the EmployeeKeys of every employee in the given department.
// An unknown department yields nil.
func (ro Roster) Keys(department string) []EmployeeKey {
	names := ro[department]
	if len(names) == 0 {
		return nil
	}
	keys := make([]EmployeeKey, 0, len(names))
	for _, name := range names {
		keys = append(keys, NewEmployeeKey(name, department))
	}
	return keys
}

// AllKeys returns every EmployeeKey in the roster, department by department
// in sorted order.
func (ro Roster) AllKeys() []EmployeeKey {
	var keys []EmployeeKey
	for _, dept := range ro.Departments() {
		keys = append(keys, ro.Keys(dept)...)
	}
	return keys
}
