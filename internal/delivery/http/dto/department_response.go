package dto

import "skill-matrix/internal/domain/matrix"

type DepartmentResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	TargetLevel int                `json:"targetLevel"`
	Skills      []string           `json:"skills"`
	Employees   []EmployeeResponse `json:"employees"`
}

type EmployeeResponse struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Role   string            `json:"role"`
	Levels map[string]string `json:"levels"`
}

// ModelResponse is the full-snapshot payload the dashboard consumes.
type ModelResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Version     int                  `json:"version"`
}

func NewDepartmentResponse(d matrix.Department) DepartmentResponse {
	out := DepartmentResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		TargetLevel: d.TargetLevel,
		Skills:      append([]string{}, d.Skills...),
		Employees:   make([]EmployeeResponse, 0, len(d.Employees)),
	}
	for _, e := range d.Employees {
		levels := make(map[string]string, len(e.Levels))
		for skill, lvl := range e.Levels {
			levels[skill] = string(lvl)
		}
		out.Employees = append(out.Employees, EmployeeResponse{
			ID:     e.ID.String(),
			Name:   e.Name,
			Role:   e.Role,
			Levels: levels,
		})
	}
	return out
}

func NewModelResponse(depts []matrix.Department) ModelResponse {
	out := ModelResponse{
		Departments: make([]DepartmentResponse, 0, len(depts)),
		Version:     1,
	}
	for _, d := range depts {
		out.Departments = append(out.Departments, NewDepartmentResponse(d))
	}
	return out
}
