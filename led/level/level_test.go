package level

import "testing"

func TestClampInRange(t *testing.T) {
	for v := 0; v <= 15; v++ {
		if got := Clamp(v); got != Level(v) {
			t.Fatalf("Clamp(%d) = %d, want %d", v, got, v)
		}
	}
}

func TestClampOutOfRange(t *testing.T) {
	if got := Clamp(-3); got != Min {
		t.Fatalf("Clamp(-3) = %d, want %d", got, Min)
	}
	if got := Clamp(200); got != Max {
		t.Fatalf("Clamp(200) = %d, want %d", got, Max)
	}
}

func TestClampOverflowUnderflow(t *testing.T) {
	got, residual := ClampOverflow(-4)
	if got != Min || residual != -4 {
		t.Fatalf("ClampOverflow(-4) = (%d, %d), want (0, -4)", got, residual)
	}
}

func TestClampOverflowOverflow(t *testing.T) {
	got, residual := ClampOverflow(22)
	if got != Max || residual != 7 {
		t.Fatalf("ClampOverflow(22) = (%d, %d), want (15, 7)", got, residual)
	}
}

func TestClampOverflowNoResidualInRange(t *testing.T) {
	for v := 0; v <= 15; v++ {
		got, residual := ClampOverflow(v)
		if got != Level(v) || residual != 0 {
			t.Fatalf("ClampOverflow(%d) = (%d, %d), want (%d, 0)", v, got, residual, v)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid([]Level{0, 7, 15}) {
		t.Fatal("Valid rejected in-range levels")
	}
	if Valid([]Level{0, 16}) {
		t.Fatal("Valid accepted out-of-range level")
	}
}
