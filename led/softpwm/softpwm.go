// Package softpwm models the timer-interrupt half of the LED drivers:
// the logic that turns a frame of 4-bit levels into per-tick on/off
// line states. It owns no hardware and never writes to a frame, which
// makes the engine/output shared-memory contract testable end to end.
// A hardware port calls Tick from its timer interrupt and applies the
// returned states to its GPIO lines.
package softpwm

import "github.com/cwbudde/algo-led/led/level"

// Strip produces the duty cycling for the multiplexed LED strip. The
// strip shares its timer with other drivers, so lines are only driven
// on every prescale-th tick; on drive ticks a 4-bit counter advances
// and an output is lit while its level exceeds the counter.
type Strip struct {
	prescale uint8
	phase    uint8
	counter  uint8
}

// DefaultPrescale is the badge's drive cadence: one strip slot in
// every five timer ticks.
const DefaultPrescale = 5

// NewStrip returns a Strip driven every prescale ticks.
func NewStrip(prescale uint8) *Strip {
	if prescale == 0 {
		prescale = 1
	}
	return &Strip{prescale: prescale}
}

// Tick advances one timer interrupt and reports which outputs are lit
// during it. The lit slice is freshly allocated; levels is only read.
func (s *Strip) Tick(levels []level.Level) []bool {
	s.phase++
	drive := false
	if s.phase == s.prescale {
		drive = true
		s.phase = 0
	}

	if drive {
		s.counter++
		if int(s.counter) == level.Steps {
			s.counter = 0
		}
	}

	lit := make([]bool, len(levels))
	if !drive {
		return lit
	}
	for i, v := range levels {
		lit[i] = uint8(v) > s.counter
	}
	return lit
}

// Reset returns the strip to its power-on state.
func (s *Strip) Reset() {
	s.phase = 0
	s.counter = 0
}

// Pulser produces the duty cycling for the pulsed-current color LED:
// every tick, each channel fires one current pulse while its level
// exceeds a free-running 4-bit counter.
type Pulser struct {
	counter uint8
}

// NewPulser returns a Pulser with its counter at zero.
func NewPulser() *Pulser {
	return &Pulser{}
}

// Tick advances one timer interrupt and reports which channels pulse
// during it.
func (p *Pulser) Tick(levels []level.Level) []bool {
	lit := make([]bool, len(levels))
	for i, v := range levels {
		lit[i] = uint8(v) > p.counter
	}
	p.counter++
	if int(p.counter) == level.Steps {
		p.counter = 0
	}
	return lit
}

// Reset returns the pulser to its power-on state.
func (p *Pulser) Reset() {
	p.counter = 0
}
