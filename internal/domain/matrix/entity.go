package matrix

import "github.com/google/uuid"

// Employee belongs to exactly one department. Levels is keyed by skill name;
// a missing key means the pair was never rated.
type Employee struct {
	ID     uuid.UUID
	Name   string
	Role   string
	Levels map[string]Level
}

// Department is a full snapshot of one department: its ordered skill list and
// every employee with their levels. Skill order is user-controlled and
// significant for tabular export.
type Department struct {
	ID          uuid.UUID
	Name        string
	TargetLevel int
	Skills      []string
	Employees   []Employee
}

func (d Department) HasSkill(name string) bool {
	for _, s := range d.Skills {
		if s == name {
			return true
		}
	}
	return false
}
