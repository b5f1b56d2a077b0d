package anim

import "github.com/cwbudde/algo-led/led/level"

// The strip is one physical ribbon driven as two halves around a fixed
// split index: outputs [0, split) and [split, len). The propagation
// opcodes add each output's delta and hand any clamped-off excess to
// the next output along the cascade direction, so brightness bleeds
// along the half instead of clipping. The excess that reaches the end
// of a half is absorbed there; only the final boundary clamp loses it.
//
// Processing order is significant, the cascade is not commutative
// across outputs. The half's end element is accumulated in a local
// before its single final clamp so the frame never exposes an
// out-of-range level to a concurrent reader.

// propagateUp cascades toward the split on both halves.
func propagateUp(buf []level.Level, deltas []int8, split int) {
	n := len(buf)

	// Left half, excess bleeds toward output split-1.
	edge := int(buf[split-1])
	for i := 0; i < split-1; i++ {
		carry := int(deltas[i])
		for j := i; j < split-1 && carry != 0; j++ {
			buf[j], carry = level.ClampOverflow(int(buf[j]) + carry)
		}
		edge += carry
	}
	edge += int(deltas[split-1])
	buf[split-1], _ = level.ClampOverflow(edge)

	if split >= n {
		return
	}

	// Right half, excess bleeds toward output split.
	edge = int(buf[split])
	for i := n - 1; i > split; i-- {
		carry := int(deltas[i])
		for j := i; j > split && carry != 0; j-- {
			buf[j], carry = level.ClampOverflow(int(buf[j]) + carry)
		}
		edge += carry
	}
	edge += int(deltas[split])
	buf[split], _ = level.ClampOverflow(edge)
}

// propagateDown cascades away from the split on both halves.
func propagateDown(buf []level.Level, deltas []int8, split int) {
	n := len(buf)

	// Left half, excess bleeds toward output 0.
	edge := int(buf[0])
	for i := split - 1; i > 0; i-- {
		carry := int(deltas[i])
		for j := i; j > 0 && carry != 0; j-- {
			buf[j], carry = level.ClampOverflow(int(buf[j]) + carry)
		}
		edge += carry
	}
	edge += int(deltas[0])
	buf[0], _ = level.ClampOverflow(edge)

	if split >= n {
		return
	}

	// Right half, excess bleeds toward the last output.
	edge = int(buf[n-1])
	for i := split; i < n-1; i++ {
		carry := int(deltas[i])
		for j := i; j < n-1 && carry != 0; j++ {
			buf[j], carry = level.ClampOverflow(int(buf[j]) + carry)
		}
		edge += carry
	}
	edge += int(deltas[n-1])
	buf[n-1], _ = level.ClampOverflow(edge)
}
