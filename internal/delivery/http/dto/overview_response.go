package dto

import "skill-matrix/internal/domain/report"

type DepartmentSummaryResponse struct {
	DepartmentID   string  `json:"departmentId"`
	DepartmentName string  `json:"departmentName"`
	TargetLevel    int     `json:"targetLevel"`
	EmployeeCount  int     `json:"employeeCount"`
	SkillCount     int     `json:"skillCount"`
	AveragePercent float64 `json:"averagePercent"`
	AverageFive    float64 `json:"averageFive"`
	TargetHitRate  float64 `json:"targetHitRate"`
}

type OverviewResponse struct {
	Departments        []DepartmentSummaryResponse `json:"departments"`
	CompanyAverageFive float64                     `json:"companyAverageFive"`
}

func NewOverviewResponse(ov report.Overview) OverviewResponse {
	out := OverviewResponse{
		Departments:        make([]DepartmentSummaryResponse, 0, len(ov.Departments)),
		CompanyAverageFive: ov.CompanyAverageFive,
	}
	for _, d := range ov.Departments {
		out.Departments = append(out.Departments, DepartmentSummaryResponse{
			DepartmentID:   d.DepartmentID.String(),
			DepartmentName: d.DepartmentName,
			TargetLevel:    d.TargetLevel,
			EmployeeCount:  d.EmployeeCount,
			SkillCount:     d.SkillCount,
			AveragePercent: d.AveragePercent,
			AverageFive:    d.AverageFive,
			TargetHitRate:  d.TargetHitRate,
		})
	}
	return out
}
