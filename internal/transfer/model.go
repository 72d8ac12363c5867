package transfer

import (
	"errors"
	"fmt"
	"strings"

	"skill-matrix/internal/domain/matrix"
)

// ErrBadFormat marks a payload that fails structural validation; nothing is
// applied when it is returned.
var ErrBadFormat = errors.New("bad format")

const ModelVersion = 1

// Model is the portable interchange form of the full data model. Identities
// are included on export but regenerated on import.
type Model struct {
	Version     int          `json:"version"`
	Departments []Department `json:"departments"`
}

type Department struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	TargetLevel int        `json:"targetLevel"`
	Skills      []string   `json:"skills"`
	Employees   []Employee `json:"employees"`
}

type Employee struct {
	ID     string            `json:"id,omitempty"`
	Name   string            `json:"name"`
	Role   string            `json:"role"`
	Levels map[string]string `json:"levels"`
}

func FromDomain(depts []matrix.Department) Model {
	out := Model{Version: ModelVersion, Departments: make([]Department, 0, len(depts))}
	for _, d := range depts {
		td := Department{
			ID:          d.ID.String(),
			Name:        d.Name,
			TargetLevel: d.TargetLevel,
			Skills:      append([]string{}, d.Skills...),
			Employees:   make([]Employee, 0, len(d.Employees)),
		}
		for _, e := range d.Employees {
			te := Employee{
				ID:     e.ID.String(),
				Name:   e.Name,
				Role:   e.Role,
				Levels: make(map[string]string, len(e.Levels)),
			}
			for skill, lvl := range e.Levels {
				te.Levels[skill] = string(lvl)
			}
			td.Employees = append(td.Employees, te)
		}
		out.Departments = append(out.Departments, td)
	}
	return out
}

// ToDomain validates the payload and converts it. Failures return ErrBadFormat
// with a position hint; the caller must not have applied anything by then.
func (m Model) ToDomain() ([]matrix.Department, error) {
	if len(m.Departments) == 0 {
		return nil, fmt.Errorf("%w: no departments", ErrBadFormat)
	}

	deptNames := map[string]struct{}{}
	out := make([]matrix.Department, 0, len(m.Departments))
	for di, td := range m.Departments {
		name := strings.TrimSpace(td.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: department %d has an empty name", ErrBadFormat, di)
		}
		if _, dup := deptNames[name]; dup {
			return nil, fmt.Errorf("%w: duplicate department name %q", ErrBadFormat, name)
		}
		deptNames[name] = struct{}{}

		target := td.TargetLevel
		if target == 0 {
			target = matrix.DefaultTargetLevel
		}
		if !matrix.ValidTargetLevel(target) {
			return nil, fmt.Errorf("%w: department %q target level %d out of range", ErrBadFormat, name, td.TargetLevel)
		}

		skills := make([]string, 0, len(td.Skills))
		seen := map[string]struct{}{}
		for _, s := range td.Skills {
			s = strings.TrimSpace(s)
			if s == "" {
				return nil, fmt.Errorf("%w: department %q has an empty skill name", ErrBadFormat, name)
			}
			if _, dup := seen[s]; dup {
				return nil, fmt.Errorf("%w: department %q lists skill %q twice", ErrBadFormat, name, s)
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}

		emps := make([]matrix.Employee, 0, len(td.Employees))
		for ei, te := range td.Employees {
			empName := strings.TrimSpace(te.Name)
			if empName == "" {
				return nil, fmt.Errorf("%w: department %q employee %d has an empty name", ErrBadFormat, name, ei)
			}

			levels := make(map[string]matrix.Level, len(te.Levels))
			for skill, token := range te.Levels {
				skill = strings.TrimSpace(skill)
				if _, known := seen[skill]; !known {
					return nil, fmt.Errorf("%w: employee %q rated unknown skill %q", ErrBadFormat, empName, skill)
				}
				lvl, err := matrix.ParseLevel(token)
				if err != nil {
					return nil, fmt.Errorf("%w: employee %q skill %q: %v", ErrBadFormat, empName, skill, err)
				}
				levels[skill] = lvl
			}

			emps = append(emps, matrix.Employee{
				Name:   empName,
				Role:   strings.TrimSpace(te.Role),
				Levels: levels,
			})
		}

		out = append(out, matrix.Department{
			Name:        name,
			TargetLevel: target,
			Skills:      skills,
			Employees:   emps,
		})
	}

	return out, nil
}
