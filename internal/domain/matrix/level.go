package matrix

import "fmt"

// Level is a capability rating token as it travels over the wire:
// "X" means exempt (never counted in averages), "1".."4" are rated levels.
type Level string

const (
	LevelExempt Level = "X"
	LevelOne    Level = "1"
	LevelTwo    Level = "2"
	LevelThree  Level = "3"
	LevelFour   Level = "4"
)

// DefaultLevel is assigned when an (employee, skill) pair is first created.
const DefaultLevel = LevelOne

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelExempt, LevelOne, LevelTwo, LevelThree, LevelFour:
		return Level(s), nil
	}
	return "", fmt.Errorf("invalid level token: %q", s)
}

// Percent maps a level onto a 0-100 capability scale.
// Exempt returns ok=false and must be excluded from any average.
func (l Level) Percent() (float64, bool) {
	v := l.Value()
	if v == 0 {
		return 0, false
	}
	return float64(v) / 4 * 100, true
}

// Value returns the stored numeric form: 0 for Exempt, 1..4 otherwise.
func (l Level) Value() int {
	switch l {
	case LevelOne:
		return 1
	case LevelTwo:
		return 2
	case LevelThree:
		return 3
	case LevelFour:
		return 4
	default:
		return 0
	}
}

// LevelFromValue is the inverse of Value over the stored 0..4 range.
func LevelFromValue(v int) (Level, error) {
	switch v {
	case 0:
		return LevelExempt, nil
	case 1:
		return LevelOne, nil
	case 2:
		return LevelTwo, nil
	case 3:
		return LevelThree, nil
	case 4:
		return LevelFour, nil
	}
	return "", fmt.Errorf("invalid level value: %d", v)
}

const (
	MinTargetLevel     = 1
	MaxTargetLevel     = 4
	DefaultTargetLevel = 3
)

func ValidTargetLevel(v int) bool {
	return v >= MinTargetLevel && v <= MaxTargetLevel
}
