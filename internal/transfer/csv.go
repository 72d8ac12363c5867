package transfer

import (
	"encoding/csv"
	"io"

	"skill-matrix/internal/domain/matrix"
)

// WriteCSV renders one department as a table: header
// [Department, Employee, Role, skill1, skill2, ...] using the department's
// current skill order, one row per employee. Cells hold the literal level
// token or stay empty when the pair was never rated. encoding/csv quotes any
// field containing delimiters, quotes or line breaks, so free-text names
// round-trip.
func WriteCSV(w io.Writer, dept matrix.Department) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 3+len(dept.Skills))
	header = append(header, "Department", "Employee", "Role")
	header = append(header, dept.Skills...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, emp := range dept.Employees {
		row[0] = dept.Name
		row[1] = emp.Name
		row[2] = emp.Role
		for i, skill := range dept.Skills {
			if lvl, ok := emp.Levels[skill]; ok {
				row[3+i] = string(lvl)
			} else {
				row[3+i] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
