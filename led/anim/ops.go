package anim

import "github.com/cwbudde/algo-led/led/level"

// The helpers below mutate a frame's level slice in place, one clamped
// store per element, so concurrent readers only ever see valid levels.

// loadLevels copies the values in, clamped so a hand-built table that
// skipped Catalog.Validate still cannot put an out-of-range level into
// the frame.
func loadLevels(buf []level.Level, values []int8) {
	for i := range buf {
		buf[i] = level.Clamp(int(values[i]))
	}
}

// addWrap adds the deltas with the 4-bit wrap-to-dark rule: a result
// outside [0, 15] becomes 0, not 15. The levels live in unsigned 4-bit
// fields on the badge hardware and an overflow there lands far past
// the maximum, which the driver treats as dark.
func addWrap(buf []level.Level, deltas []int8) {
	for i := range buf {
		v := int(buf[i]) + int(deltas[i])
		if v < int(level.Min) || v > int(level.Max) {
			buf[i] = level.Min
			continue
		}
		buf[i] = level.Level(v)
	}
}

func rotateRight(buf []level.Level) {
	n := len(buf)
	if n < 2 {
		return
	}
	last := buf[n-1]
	for i := n - 1; i > 0; i-- {
		buf[i] = buf[i-1]
	}
	buf[0] = last
}

func rotateLeft(buf []level.Level) {
	n := len(buf)
	if n < 2 {
		return
	}
	first := buf[0]
	for i := 0; i < n-1; i++ {
		buf[i] = buf[i+1]
	}
	buf[n-1] = first
}

// divide divides each output by its delta, read as an unsigned byte.
// A zero divisor leaves that output untouched.
func divide(buf []level.Level, deltas []int8) {
	for i := range buf {
		d := uint8(deltas[i])
		if d == 0 {
			continue
		}
		buf[i] /= level.Level(d)
	}
}
