package model

// Student is a participant known to the agent: either declared on the roster
// or discovered through check-ins. Roster-declared entries take precedence
// over inferred ones for the same ID.
type Student struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MergeStudents combines the roster with users observed in the check-in set.
// Roster entries come first in declaration order, then inferred users in
// first-seen order. The result never contains duplicate IDs.
func MergeStudents(roster Roster, checkins []CheckinRecord) []Student {
	students := make([]Student, 0, len(roster))
	seen := make(map[string]bool, len(roster))

	for _, entry := range roster {
		if entry.ID == "" || seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		students = append(students, Student{ID: entry.ID, Name: entry.Name})
	}

	for _, rec := range checkins {
		id := rec.UserID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		name := rec.UserName()
		if name == "" {
			name = id
		}
		students = append(students, Student{ID: id, Name: name})
	}

	return students
}
