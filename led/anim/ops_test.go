package anim

import (
	"testing"

	"github.com/cwbudde/algo-led/led/level"
)

func TestLoadClampsRawValues(t *testing.T) {
	buf := make([]level.Level, 4)
	loadLevels(buf, []int8{-3, 0, 15, 90})

	want := []level.Level{0, 0, 15, 15}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("output %d: got %d, want %d", i, buf[i], want[i])
		}
	}
	if !level.Valid(buf) {
		t.Fatal("load left an out-of-range level in the frame")
	}
}
