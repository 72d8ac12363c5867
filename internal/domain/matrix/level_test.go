package matrix

import "testing"

func TestParseLevel(t *testing.T) {
	for _, tok := range []string{"X", "1", "2", "3", "4"} {
		lvl, err := ParseLevel(tok)
		if err != nil {
			t.Fatalf("parse %q: %v", tok, err)
		}
		rt, err := LevelFromValue(lvl.Value())
		if err != nil || rt != lvl {
			t.Fatalf("round-trip %q: got %q, err=%v", tok, rt, err)
		}
	}

	for _, tok := range []string{"", "0", "5", "x", "exempt", "10"} {
		if _, err := ParseLevel(tok); err == nil {
			t.Fatalf("expected parse failure for %q", tok)
		}
	}
}

func TestLevelFromValue_OutOfRange(t *testing.T) {
	for _, v := range []int{-1, 5, 42} {
		if _, err := LevelFromValue(v); err == nil {
			t.Fatalf("expected failure for value %d", v)
		}
	}
}
