package anim

import (
	"fmt"

	"github.com/cwbudde/algo-led/led/level"
)

// HoldForever is the duration sentinel of the terminal instruction:
// the timeline never advances past it, so its output stands until the
// engine is reset or repointed.
const HoldForever uint16 = 0xFFFF

// Instruction is one timed step of a channel's animation. Deltas are
// absolute levels for a pure load and signed increments (or divisors)
// for everything else; its length must equal the channel's output
// count.
type Instruction struct {
	Duration uint16 // weight in the channel's cumulative timeline, ms
	Deltas   []int8
	Ops      OpSet
	Operand  uint8 // meaning depends on Ops; repeat count for OpRepeat
}

// Sequence is an ordered run of instructions forming one channel's
// timeline.
type Sequence []Instruction

// TotalDuration sums the sequence's instruction durations in ms.
func (s Sequence) TotalDuration() uint32 {
	var sum uint32
	for i := range s {
		sum += uint32(s[i].Duration)
	}
	return sum
}

// Animation pairs the strip and color instruction sequences of one
// light show. The two sequences run on independent timelines advanced
// by the same wall clock; only the strip sequence restarts them.
type Animation struct {
	Name  string
	Strip Sequence
	Color Sequence
}

// Catalog is the ordered set of selectable animations. The last entry
// is reserved for the all-dark hold-forever animation shown before
// power-down and must stay last.
type Catalog []Animation

// Validate checks that every instruction's delta vector matches its
// channel's output count and that pure loads carry only valid levels.
func (c Catalog) Validate(stripOutputs, colorOutputs int) error {
	if len(c) == 0 {
		return fmt.Errorf("empty catalog")
	}
	for ai := range c {
		a := &c[ai]
		if err := validateSequence(a.Strip, stripOutputs); err != nil {
			return fmt.Errorf("animation %q strip: %w", a.Name, err)
		}
		if err := validateSequence(a.Color, colorOutputs); err != nil {
			return fmt.Errorf("animation %q color: %w", a.Name, err)
		}
	}
	return nil
}

func validateSequence(s Sequence, outputs int) error {
	if len(s) == 0 {
		return fmt.Errorf("empty sequence")
	}
	for i := range s {
		ins := &s[i]
		if len(ins.Deltas) != outputs {
			return fmt.Errorf("instruction %d: %d deltas, want %d", i, len(ins.Deltas), outputs)
		}
		if ins.Ops.IsLoad() {
			for j, d := range ins.Deltas {
				if d < 0 || level.Level(d) > level.Max {
					return fmt.Errorf("instruction %d: load value %d out of range at output %d", i, d, j)
				}
			}
		}
	}
	return nil
}
