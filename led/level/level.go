// Package level provides the 4-bit brightness primitives shared by the
// animation engine and the output-stage drivers. A level outside
// [Min, Max] never escapes this package's clamp helpers; the output
// stage compares levels against a repeating 4-bit counter and relies on
// that range being honored.
package level

// Level is the brightness of a single output.
type Level uint8

const (
	// Min is the darkest level.
	Min Level = 0
	// Max is the brightest level.
	Max Level = 15
	// Steps is the number of distinct levels.
	Steps = int(Max) + 1
)

// Clamp forces v into [Min, Max].
func Clamp(v int) Level {
	if v < int(Min) {
		return Min
	}
	if v > int(Max) {
		return Max
	}
	return Level(v)
}

// ClampOverflow forces v into [Min, Max] and reports the signed amount
// by which v fell outside the range. The residual is 0 when v was
// already in range, negative on underflow and positive on overflow.
func ClampOverflow(v int) (Level, int) {
	if v < int(Min) {
		return Min, v
	}
	if v > int(Max) {
		return Max, v - int(Max)
	}
	return Level(v), 0
}

// Valid reports whether every element of levels is within [Min, Max].
func Valid(levels []Level) bool {
	for _, v := range levels {
		if v > Max {
			return false
		}
	}
	return true
}
