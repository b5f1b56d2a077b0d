package frame

import "github.com/cwbudde/algo-led/led/level"

// Frame holds the live brightness of a group of outputs. The animation
// engine is the only writer; output-stage drivers read it concurrently
// without locking. Every element is updated with a single store of an
// already-clamped level, so a reader never observes an invalid level,
// only (for at most one refresh tick) a state from between two opcodes
// of the same instruction.
type Frame struct {
	levels []level.Level
}

// New returns an all-dark Frame with the given number of outputs.
func New(outputs int) *Frame {
	if outputs < 0 {
		outputs = 0
	}
	return &Frame{levels: make([]level.Level, outputs)}
}

// Len returns the number of outputs.
func (f *Frame) Len() int {
	return len(f.levels)
}

// Levels returns the underlying slice. Mutating it is reserved for the
// single writer; readers should use Snapshot or At.
func (f *Frame) Levels() []level.Level {
	return f.levels
}

// At returns the level of output i.
func (f *Frame) At(i int) level.Level {
	return f.levels[i]
}

// Snapshot copies the current levels into a new slice.
func (f *Frame) Snapshot() []level.Level {
	s := make([]level.Level, len(f.levels))
	copy(s, f.levels)
	return s
}

// CopyInto copies the current levels into dst and returns the number of
// copied elements. Lets periodic readers reuse their scratch buffer.
func (f *Frame) CopyInto(dst []level.Level) int {
	n := len(dst)
	if len(f.levels) < n {
		n = len(f.levels)
	}
	copy(dst[:n], f.levels[:n])
	return n
}

// Zero switches all outputs dark.
func (f *Frame) Zero() {
	for i := range f.levels {
		f.levels[i] = level.Min
	}
}
