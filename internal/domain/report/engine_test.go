package report

import (
	"math"
	"testing"

	"skill-matrix/internal/domain/matrix"

	"github.com/google/uuid"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func dept(target int, skills []string, emps ...matrix.Employee) matrix.Department {
	return matrix.Department{
		ID:          uuid.New(),
		Name:        "Engineering",
		TargetLevel: target,
		Skills:      skills,
		Employees:   emps,
	}
}

func TestLevelPercent(t *testing.T) {
	for _, lvl := range []matrix.Level{matrix.LevelOne, matrix.LevelTwo, matrix.LevelThree, matrix.LevelFour} {
		pct, ok := lvl.Percent()
		if !ok {
			t.Fatalf("level %s: expected rated", lvl)
		}
		want := float64(lvl.Value()) * 25
		if !almostEqual(pct, want) {
			t.Fatalf("level %s: expected %.0f, got %.2f", lvl, want, pct)
		}
	}
	if _, ok := matrix.LevelExempt.Percent(); ok {
		t.Fatalf("exempt must be excluded from percentages")
	}
}

func TestDepartmentAverage_TwoEmployeesOneSkill(t *testing.T) {
	d := dept(3, []string{"Welding"},
		matrix.Employee{Name: "A", Levels: map[string]matrix.Level{"Welding": matrix.LevelFour}},
		matrix.Employee{Name: "B", Levels: map[string]matrix.Level{"Welding": matrix.LevelTwo}},
	)

	if got := DepartmentAverage(d); !almostEqual(got, 75) {
		t.Fatalf("expected department average 75, got %.2f", got)
	}
	if got := DepartmentTargetHit(d); !almostEqual(got, 50) {
		t.Fatalf("expected target hit 50, got %.2f", got)
	}
}

func TestEmployeeAverage_ExemptExcluded(t *testing.T) {
	emp := matrix.Employee{Name: "A", Levels: map[string]matrix.Level{
		"Welding":   matrix.LevelExempt,
		"Assembly":  matrix.LevelTwo,
		"Soldering": matrix.LevelFour,
	}}
	d := dept(3, []string{"Welding", "Assembly", "Soldering"}, emp)

	if got := EmployeeAverage(d, emp); !almostEqual(got, 75) {
		t.Fatalf("expected employee average 75, got %.2f", got)
	}
	// Two rated skills, one at or above target 3.
	if got := EmployeeTargetHit(d, emp); !almostEqual(got, 50) {
		t.Fatalf("expected hit rate 50, got %.2f", got)
	}
}

func TestDepartmentAverage_AllExempt(t *testing.T) {
	d := dept(3, []string{"Welding"},
		matrix.Employee{Name: "A", Levels: map[string]matrix.Level{"Welding": matrix.LevelExempt}},
	)
	if got := DepartmentAverage(d); got != 0 {
		t.Fatalf("expected 0 for all-exempt department, got %.2f", got)
	}
	if got := DepartmentTargetHit(d); got != 0 {
		t.Fatalf("expected 0 hit rate for all-exempt department, got %.2f", got)
	}
}

func TestEmployeeAverage_MissingEntryExcluded(t *testing.T) {
	emp := matrix.Employee{Name: "A", Levels: map[string]matrix.Level{"Welding": matrix.LevelFour}}
	d := dept(3, []string{"Welding", "Assembly"}, emp)

	// Assembly has no entry: excluded, not scored as a default.
	if got := EmployeeAverage(d, emp); !almostEqual(got, 100) {
		t.Fatalf("expected 100, got %.2f", got)
	}
}

func TestCompanyAverage_UnweightedAcrossDepartments(t *testing.T) {
	// 3.0 on the 5-point scale = 60 percent = pooled level mix below.
	big := dept(3, []string{"Welding"},
		matrix.Employee{Name: "A", Levels: map[string]matrix.Level{"Welding": matrix.LevelTwo}},
		matrix.Employee{Name: "B", Levels: map[string]matrix.Level{"Welding": matrix.LevelTwo}},
		matrix.Employee{Name: "C", Levels: map[string]matrix.Level{"Welding": matrix.LevelFour}},
		matrix.Employee{Name: "D", Levels: map[string]matrix.Level{"Welding": matrix.LevelTwo}},
		matrix.Employee{Name: "E", Levels: map[string]matrix.Level{"Welding": matrix.LevelTwo}},
	)
	// 4.0 on the 5-point scale = 80 percent = pooled level mix below.
	small := dept(3, []string{"Welding", "Assembly", "Rigging", "Packing", "Loading"},
		matrix.Employee{Name: "F", Levels: map[string]matrix.Level{
			"Welding":  matrix.LevelFour,
			"Assembly": matrix.LevelFour,
			"Rigging":  matrix.LevelFour,
			"Packing":  matrix.LevelTwo,
			"Loading":  matrix.LevelTwo,
		}},
	)

	if got := DepartmentAverageFive(big); !almostEqual(got, 3.0) {
		t.Fatalf("expected big department at 3.0, got %.2f", got)
	}
	if got := DepartmentAverageFive(small); !almostEqual(got, 4.0) {
		t.Fatalf("expected small department at 4.0, got %.2f", got)
	}
	// Head counts differ 5:1 but both departments weigh the same.
	if got := CompanyAverageFive([]matrix.Department{big, small}); !almostEqual(got, 3.5) {
		t.Fatalf("expected company average 3.5, got %.2f", got)
	}
}

func TestDepartmentAverageFive_TopRatedPair(t *testing.T) {
	// A lone level-4 pair pools to 100 percent, the top of the 5-point scale.
	d := dept(3, []string{"Welding"},
		matrix.Employee{Name: "A", Levels: map[string]matrix.Level{"Welding": matrix.LevelFour}},
	)
	if got := DepartmentAverageFive(d); !almostEqual(got, 5.0) {
		t.Fatalf("expected 5.0, got %.2f", got)
	}
}

func TestBuildOverview(t *testing.T) {
	d := dept(3, []string{"Welding"},
		matrix.Employee{Name: "A", Levels: map[string]matrix.Level{"Welding": matrix.LevelFour}},
		matrix.Employee{Name: "B", Levels: map[string]matrix.Level{"Welding": matrix.LevelTwo}},
	)

	ov := BuildOverview([]matrix.Department{d})
	if len(ov.Departments) != 1 {
		t.Fatalf("expected 1 department, got %d", len(ov.Departments))
	}
	s := ov.Departments[0]
	if s.EmployeeCount != 2 || s.SkillCount != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if !almostEqual(s.AveragePercent, 75) || !almostEqual(s.TargetHitRate, 50) {
		t.Fatalf("unexpected figures: %+v", s)
	}
	if !almostEqual(ov.CompanyAverageFive, 3.75) {
		t.Fatalf("expected company average 3.75, got %.2f", ov.CompanyAverageFive)
	}
}

func TestBuildOverview_Empty(t *testing.T) {
	ov := BuildOverview(nil)
	if len(ov.Departments) != 0 || ov.CompanyAverageFive != 0 {
		t.Fatalf("expected empty overview, got %+v", ov)
	}
}
