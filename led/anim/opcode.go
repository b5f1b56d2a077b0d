package anim

import "strings"

// Op is a single operation an instruction can apply to its channel's
// brightness frame.
type Op uint8

const (
	// OpLoad copies the instruction's values into the frame verbatim.
	// It is exclusive: an instruction that loads does nothing else.
	OpLoad Op = iota
	// OpAdd adds the instruction's deltas; a 4-bit over- or underflow
	// switches that output dark rather than saturating.
	OpAdd
	// OpRotateRight shifts the whole strip one position toward higher
	// indices, circularly. Strip topology only.
	OpRotateRight
	// OpRotateLeft shifts the whole strip one position toward lower
	// indices, circularly. Strip topology only.
	OpRotateLeft
	// OpPropagateUp adds the deltas and bleeds clamped excess to the
	// neighbor further along each strip half. Strip topology only.
	OpPropagateUp
	// OpPropagateDown is OpPropagateUp with the cascade running the
	// opposite way along each half. Strip topology only.
	OpPropagateDown
	// OpDivide divides each output by its (non-zero) delta.
	OpDivide
	// OpRepeat re-arms the instruction so it executes operand+1 times
	// before the timeline may move past it.
	OpRepeat

	opCount
)

var opNames = [opCount]string{
	OpLoad:          "load",
	OpAdd:           "add",
	OpRotateRight:   "rotr",
	OpRotateLeft:    "rotl",
	OpPropagateUp:   "propup",
	OpPropagateDown: "propdown",
	OpDivide:        "div",
	OpRepeat:        "repeat",
}

func (o Op) String() string {
	if o >= opCount {
		return "unknown"
	}
	return opNames[o]
}

// pipeline is the fixed order in which combined operations execute.
// Table authors may combine flags freely; results are deterministic
// only because execution always walks this order.
var pipeline = [...]Op{
	OpAdd,
	OpRotateRight,
	OpRotateLeft,
	OpPropagateUp,
	OpPropagateDown,
	OpDivide,
	OpRepeat,
}

// OpSet is a combination of operations. Build it with Ops; the zero
// value is the pure load instruction.
type OpSet struct {
	bits uint8
}

// Load is the OpSet of a plain load instruction.
var Load = OpSet{}

// Ops combines the given operations into a set. OpLoad wins over
// everything else: a set containing it ignores all other members.
func Ops(ops ...Op) OpSet {
	var s OpSet
	for _, o := range ops {
		if o >= opCount {
			continue
		}
		if o == OpLoad {
			return Load
		}
		s.bits |= 1 << o
	}
	return s
}

// IsLoad reports whether the set is the exclusive load operation.
func (s OpSet) IsLoad() bool {
	return s.bits == 0
}

// Has reports whether the set contains o.
func (s OpSet) Has(o Op) bool {
	if o == OpLoad {
		return s.IsLoad()
	}
	return s.bits&(1<<o) != 0
}

func (s OpSet) String() string {
	if s.IsLoad() {
		return opNames[OpLoad]
	}
	parts := make([]string, 0, len(pipeline))
	for _, o := range pipeline {
		if s.Has(o) {
			parts = append(parts, opNames[o])
		}
	}
	return strings.Join(parts, "+")
}
