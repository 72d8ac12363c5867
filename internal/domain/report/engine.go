package report

import (
	"skill-matrix/internal/domain/matrix"

	"github.com/google/uuid"
)

// Package report computes capability figures from a department snapshot.
// Every function is a pure read over the snapshot; nothing is cached or
// mutated, results are recomputed on each call.
//
// An employee with no level entry for a department skill is excluded from
// sums and counts, same as an explicit Exempt.

type DepartmentSummary struct {
	DepartmentID   uuid.UUID
	DepartmentName string
	TargetLevel    int
	EmployeeCount  int
	SkillCount     int
	AveragePercent float64
	AverageFive    float64
	TargetHitRate  float64
}

type Overview struct {
	Departments        []DepartmentSummary
	CompanyAverageFive float64
}

// EmployeeAverage is the mean capability percent over the department's skill
// list for one employee. Exempt and unrated skills are excluded from both sum
// and count; no rated skills yields 0.
func EmployeeAverage(dept matrix.Department, emp matrix.Employee) float64 {
	var sum float64
	var count int
	for _, skill := range dept.Skills {
		lvl, ok := emp.Levels[skill]
		if !ok {
			continue
		}
		pct, rated := lvl.Percent()
		if !rated {
			continue
		}
		sum += pct
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// EmployeeTargetHit is the percentage of the employee's rated (non-Exempt)
// skills at or above the department target level.
func EmployeeTargetHit(dept matrix.Department, emp matrix.Employee) float64 {
	var hits, denom int
	for _, skill := range dept.Skills {
		lvl, ok := emp.Levels[skill]
		if !ok {
			continue
		}
		v := lvl.Value()
		if v == 0 {
			continue
		}
		denom++
		if v >= dept.TargetLevel {
			hits++
		}
	}
	if denom == 0 {
		return 0
	}
	return float64(hits) / float64(denom) * 100
}

// DepartmentAverage pools every rated (employee, skill) pair across the whole
// department into one sum and count. It is deliberately not an
// average-of-averages: an employee with more rated skills carries more weight.
func DepartmentAverage(dept matrix.Department) float64 {
	var sum float64
	var count int
	for _, emp := range dept.Employees {
		for _, skill := range dept.Skills {
			lvl, ok := emp.Levels[skill]
			if !ok {
				continue
			}
			pct, rated := lvl.Percent()
			if !rated {
				continue
			}
			sum += pct
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// DepartmentAverageFive rescales the pooled department percent onto the
// 5-point dashboard scale.
func DepartmentAverageFive(dept matrix.Department) float64 {
	return DepartmentAverage(dept) / 100 * 5
}

// DepartmentTargetHit pools target hits across all rated pairs in the
// department.
func DepartmentTargetHit(dept matrix.Department) float64 {
	var hits, denom int
	for _, emp := range dept.Employees {
		for _, skill := range dept.Skills {
			lvl, ok := emp.Levels[skill]
			if !ok {
				continue
			}
			v := lvl.Value()
			if v == 0 {
				continue
			}
			denom++
			if v >= dept.TargetLevel {
				hits++
			}
		}
	}
	if denom == 0 {
		return 0
	}
	return float64(hits) / float64(denom) * 100
}

// CompanyAverageFive is the unweighted mean of each department's 5-point
// average. Department size does not weight the result, unlike the pooled
// per-department figure.
func CompanyAverageFive(depts []matrix.Department) float64 {
	if len(depts) == 0 {
		return 0
	}
	var sum float64
	for _, d := range depts {
		sum += DepartmentAverageFive(d)
	}
	return sum / float64(len(depts))
}

// BuildOverview assembles the dashboard figures for every department plus the
// company-wide average.
func BuildOverview(depts []matrix.Department) Overview {
	out := Overview{Departments: make([]DepartmentSummary, 0, len(depts))}
	for _, d := range depts {
		out.Departments = append(out.Departments, DepartmentSummary{
			DepartmentID:   d.ID,
			DepartmentName: d.Name,
			TargetLevel:    d.TargetLevel,
			EmployeeCount:  len(d.Employees),
			SkillCount:     len(d.Skills),
			AveragePercent: DepartmentAverage(d),
			AverageFive:    DepartmentAverageFive(d),
			TargetHitRate:  DepartmentTargetHit(d),
		})
	}
	out.CompanyAverageFive = CompanyAverageFive(depts)
	return out
}
