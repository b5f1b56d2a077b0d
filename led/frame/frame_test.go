package frame

import (
	"testing"

	"github.com/cwbudde/algo-led/led/level"
)

func TestNewAllDark(t *testing.T) {
	f := New(7)
	if f.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", f.Len())
	}
	for i, v := range f.Levels() {
		if v != level.Min {
			t.Fatalf("Levels()[%d] = %d, want 0", i, v)
		}
	}
}

func TestNewNegativeOutputs(t *testing.T) {
	f := New(-1)
	if f.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", f.Len())
	}
}

func TestSnapshotDetached(t *testing.T) {
	f := New(3)
	f.Levels()[1] = 9
	s := f.Snapshot()
	f.Levels()[1] = 2
	if s[1] != 9 {
		t.Fatalf("snapshot[1] = %d, want 9 (must not track later writes)", s[1])
	}
}

func TestCopyInto(t *testing.T) {
	f := New(4)
	f.Levels()[0] = 5
	f.Levels()[3] = 15

	dst := make([]level.Level, 4)
	if n := f.CopyInto(dst); n != 4 {
		t.Fatalf("CopyInto = %d, want 4", n)
	}
	if dst[0] != 5 || dst[3] != 15 {
		t.Fatalf("unexpected dst: %v", dst)
	}

	short := make([]level.Level, 2)
	if n := f.CopyInto(short); n != 2 {
		t.Fatalf("CopyInto short = %d, want 2", n)
	}
}

func TestZero(t *testing.T) {
	f := New(3)
	for i := range f.Levels() {
		f.Levels()[i] = level.Max
	}
	f.Zero()
	for i, v := range f.Levels() {
		if v != level.Min {
			t.Fatalf("Levels()[%d] = %d after Zero", i, v)
		}
	}
}
