package transfer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"skill-matrix/internal/domain/matrix"

	"github.com/google/uuid"
)

func sampleDepartment() matrix.Department {
	return matrix.Department{
		ID:          uuid.New(),
		Name:        "Engineering",
		TargetLevel: 3,
		Skills:      []string{"Welding", "Assembly"},
		Employees: []matrix.Employee{
			{
				ID:   uuid.New(),
				Name: "Ada",
				Role: "Lead",
				Levels: map[string]matrix.Level{
					"Welding":  matrix.LevelFour,
					"Assembly": matrix.LevelExempt,
				},
			},
			{
				ID:     uuid.New(),
				Name:   "Brook",
				Role:   "",
				Levels: map[string]matrix.Level{"Welding": matrix.LevelTwo},
			},
		},
	}
}

func TestModelRoundTrip(t *testing.T) {
	src := []matrix.Department{sampleDepartment()}

	got, err := FromDomain(src).ToDomain()
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 department, got %d", len(got))
	}

	d := got[0]
	if d.Name != "Engineering" || d.TargetLevel != 3 {
		t.Fatalf("department fields lost: %+v", d)
	}
	if len(d.Skills) != 2 || d.Skills[0] != "Welding" || d.Skills[1] != "Assembly" {
		t.Fatalf("skill order lost: %v", d.Skills)
	}
	if len(d.Employees) != 2 {
		t.Fatalf("employees lost: %d", len(d.Employees))
	}
	if d.Employees[0].Levels["Welding"] != matrix.LevelFour {
		t.Fatalf("level lost: %v", d.Employees[0].Levels)
	}
	if d.Employees[0].Levels["Assembly"] != matrix.LevelExempt {
		t.Fatalf("exempt token lost: %v", d.Employees[0].Levels)
	}
	// Identities are regenerated, not preserved.
	if d.ID != uuid.Nil {
		t.Fatalf("expected blank id after import, got %s", d.ID)
	}
}

func TestToDomain_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		model Model
	}{
		{"no departments", Model{Version: 1}},
		{"empty department name", Model{Departments: []Department{{Name: "  "}}}},
		{"duplicate department", Model{Departments: []Department{{Name: "A"}, {Name: "A"}}}},
		{"target out of range", Model{Departments: []Department{{Name: "A", TargetLevel: 5}}}},
		{"duplicate skill", Model{Departments: []Department{{Name: "A", TargetLevel: 3, Skills: []string{"X1", "X1"}}}}},
		{"bad level token", Model{Departments: []Department{{
			Name: "A", TargetLevel: 3, Skills: []string{"S"},
			Employees: []Employee{{Name: "E", Levels: map[string]string{"S": "9"}}},
		}}}},
		{"level for unknown skill", Model{Departments: []Department{{
			Name: "A", TargetLevel: 3, Skills: []string{"S"},
			Employees: []Employee{{Name: "E", Levels: map[string]string{"Other": "2"}}},
		}}}},
		{"employee without name", Model{Departments: []Department{{
			Name: "A", TargetLevel: 3,
			Employees: []Employee{{Name: ""}},
		}}}},
	}

	for _, tc := range cases {
		if _, err := tc.model.ToDomain(); !errors.Is(err, ErrBadFormat) {
			t.Fatalf("%s: expected ErrBadFormat, got %v", tc.name, err)
		}
	}
}

func TestToDomain_ZeroTargetDefaults(t *testing.T) {
	m := Model{Departments: []Department{{Name: "A"}}}
	got, err := m.ToDomain()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got[0].TargetLevel != matrix.DefaultTargetLevel {
		t.Fatalf("expected default target, got %d", got[0].TargetLevel)
	}
}

func TestWriteCSV(t *testing.T) {
	d := sampleDepartment()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, d); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	wantHeader := []string{"Department", "Employee", "Role", "Welding", "Assembly"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Fatalf("header mismatch at %d: %v", i, records[0])
		}
	}
	if records[1][3] != "4" || records[1][4] != "X" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	// Brook never rated Assembly: cell stays empty.
	if records[2][3] != "2" || records[2][4] != "" {
		t.Fatalf("unexpected second row: %v", records[2])
	}
}

func TestWriteCSV_QuotesFreeText(t *testing.T) {
	d := matrix.Department{
		Name:        "Ops, North",
		TargetLevel: 3,
		Skills:      []string{"Lifting"},
		Employees: []matrix.Employee{{
			Name:   `Jo "JJ" Smith`,
			Role:   "Line\nLead",
			Levels: map[string]matrix.Level{"Lifting": matrix.LevelThree},
		}},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, d); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if records[1][0] != "Ops, North" {
		t.Fatalf("comma not preserved: %q", records[1][0])
	}
	if records[1][1] != `Jo "JJ" Smith` {
		t.Fatalf("quotes not preserved: %q", records[1][1])
	}
	if records[1][2] != "Line\nLead" {
		t.Fatalf("line break not preserved: %q", records[1][2])
	}
}
