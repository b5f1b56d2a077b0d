package softpwm

import (
	"testing"

	"github.com/cwbudde/algo-led/led/level"
)

func countLit(ticks int, tick func() []bool, output int) int {
	n := 0
	for i := 0; i < ticks; i++ {
		if tick()[output] {
			n++
		}
	}
	return n
}

func TestStripDutyMatchesLevel(t *testing.T) {
	levels := []level.Level{0, 1, 7, 15}
	s := NewStrip(DefaultPrescale)

	// One full PWM period spans prescale*Steps ticks; within it each
	// output must be lit exactly level-many drive ticks.
	period := DefaultPrescale * level.Steps
	for out, want := range levels {
		s.Reset()
		got := countLit(period, func() []bool { return s.Tick(levels) }, out)
		if got != int(want) {
			t.Fatalf("output %d: lit %d of %d ticks, want %d", out, got, period, want)
		}
	}
}

func TestStripDrivesOnlyEveryPrescaleTick(t *testing.T) {
	levels := []level.Level{15}
	s := NewStrip(5)

	lit := 0
	for i := 0; i < 5; i++ {
		if s.Tick(levels)[0] {
			lit++
		}
	}
	if lit != 1 {
		t.Fatalf("lit %d of 5 ticks, want exactly 1 drive slot", lit)
	}
}

func TestStripZeroPrescaleCoerced(t *testing.T) {
	s := NewStrip(0)
	// Must not divide the drive away entirely; every tick drives.
	if !s.Tick([]level.Level{15})[0] {
		t.Fatal("output dark with prescale 0 and full level")
	}
}

func TestStripLevelZeroNeverLit(t *testing.T) {
	levels := []level.Level{level.Min, level.Max}
	s := NewStrip(1)
	for i := 0; i < 3*level.Steps; i++ {
		lit := s.Tick(levels)
		if lit[0] {
			t.Fatal("level 0 output lit")
		}
	}
}

func TestPulserDutyMatchesLevel(t *testing.T) {
	levels := []level.Level{0, 4, 9, 15}
	p := NewPulser()

	for out, want := range levels {
		p.Reset()
		got := countLit(level.Steps, func() []bool { return p.Tick(levels) }, out)
		if got != int(want) {
			t.Fatalf("channel %d: pulsed %d of %d ticks, want %d", out, got, level.Steps, want)
		}
	}
}

func TestPulserCounterWraps(t *testing.T) {
	p := NewPulser()
	levels := []level.Level{1}

	// The level-1 channel pulses only while the counter is 0: once per
	// full period, starting with the very first tick.
	if !p.Tick(levels)[0] {
		t.Fatal("first tick not pulsed at level 1")
	}
	for i := 1; i < level.Steps; i++ {
		if p.Tick(levels)[0] {
			t.Fatalf("tick %d pulsed at level 1", i)
		}
	}
	if !p.Tick(levels)[0] {
		t.Fatal("counter did not wrap after a full period")
	}
}
