package testutil

import (
	"testing"

	"github.com/cwbudde/algo-led/led/level"
)

// RequireLevels fails t if got and want differ in length or content.
func RequireLevels(t *testing.T, got []level.Level, want ...level.Level) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("output %d: got %d, want %d (full: %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

// RequireInRange fails t if any element exceeds the 4-bit maximum.
func RequireInRange(t *testing.T, levels []level.Level) {
	t.Helper()
	if level.Valid(levels) {
		return
	}
	for i, v := range levels {
		if v > level.Max {
			t.Fatalf("output %d: level %d out of range", i, v)
		}
	}
}

// Sum adds up a slice of levels.
func Sum(levels []level.Level) int {
	total := 0
	for _, v := range levels {
		total += int(v)
	}
	return total
}
