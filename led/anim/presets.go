package anim

// Reference badge hardware: a seven-LED strip driven as two halves
// split at index 6, plus a four-channel color LED.
const (
	StripOutputs = 7
	ColorOutputs = 4
	StripSplit   = 6
)

func load(ms uint16, values ...int8) Instruction {
	return Instruction{Duration: ms, Deltas: values, Ops: Load}
}

func step(ms uint16, ops OpSet, operand uint8, deltas ...int8) Instruction {
	return Instruction{Duration: ms, Deltas: deltas, Ops: ops, Operand: operand}
}

var addRepeat = Ops(OpAdd, OpRepeat)

// Presets returns the built-in catalog for the reference badge. The
// final blackout entry is the animation shown right before power-down
// and must remain last.
func Presets() Catalog {
	return Catalog{
		{
			Name: "kitt",
			Strip: Sequence{
				load(200, 0, 0, 0, 0, 0, 0, 0),
				load(100, 5, 0, 0, 0, 0, 0, 0),
				load(100, 10, 5, 0, 0, 0, 0, 0),
				load(100, 15, 10, 5, 0, 0, 0, 0),
				load(100, 10, 15, 10, 5, 0, 0, 0),
				load(100, 5, 10, 15, 10, 5, 0, 0),
				load(100, 0, 5, 10, 15, 10, 5, 0),
				load(100, 0, 0, 5, 10, 15, 10, 5),
				load(100, 0, 0, 5, 10, 10, 15, 10),
				load(100, 0, 0, 0, 5, 10, 10, 15),
				load(100, 0, 0, 0, 0, 5, 10, 10),
				load(100, 0, 0, 0, 0, 0, 5, 10),
				load(100, 0, 0, 0, 0, 0, 0, 5),
				load(200, 0, 0, 0, 0, 0, 0, 0),
			},
			Color: Sequence{
				load(100, 0, 0, 0, 0),
				step(100, addRepeat, 2, 5, 0, 0, 0),
				step(50, addRepeat, 2, 0, 5, 0, 0),
				step(50, addRepeat, 2, 0, 0, 5, 0),
				step(50, addRepeat, 2, 0, 0, 0, 5),
				load(750, 15, 15, 15, 15),
			},
		},
		{
			Name: "pulse",
			Strip: Sequence{
				load(115, 0, 0, 0, 0, 0, 0, 0),
				step(115, addRepeat, 4, 3, 3, 3, 3, 3, 3, 3),
				step(115, addRepeat, 4, -3, -3, -3, -3, -3, -3, -3),
			},
			Color: Sequence{
				load(115, 0, 0, 0, 0),
				step(115, addRepeat, 4, 3, 3, 3, 3),
				step(115, addRepeat, 4, -3, -3, -3, -3),
			},
		},
		{
			Name: "breathe",
			Strip: Sequence{
				load(70, 15, 15, 15, 15, 15, 15, 15),
				step(70, addRepeat, 14, -1, -1, -1, -1, -1, -1, -1),
				load(70, 0, 0, 0, 0, 0, 0, 0),
				step(70, addRepeat, 14, 1, 1, 1, 1, 1, 1, 1),
			},
			Color: Sequence{
				load(70, 15, 15, 0, 0),
				step(70, addRepeat, 14, -1, -1, 1, 1),
				load(70, 0, 0, 15, 15),
				step(70, addRepeat, 14, 1, 1, -1, -1),
			},
		},
		{
			Name: "wave",
			Strip: Sequence{
				load(125, 0, 0, 0, 0, 0, 0, 0),
				load(125, 0, 0, 3, 0, 0, 0, 0),
				load(125, 0, 3, 6, 3, 0, 0, 0),
				load(125, 3, 6, 9, 6, 3, 0, 0),
				load(125, 6, 9, 12, 9, 6, 3, 0),
				load(125, 9, 12, 15, 12, 9, 6, 3),
				load(125, 12, 15, 15, 15, 12, 9, 6),
				load(125, 15, 15, 12, 15, 15, 12, 9),
				load(125, 15, 12, 9, 12, 15, 15, 12),
				load(125, 12, 9, 6, 9, 12, 15, 15),
				step(125, addRepeat, 1, -3, -3, -3, -3, -3, -3, -3),
				load(125, 3, 0, 0, 0, 3, 6, 9),
				load(125, 0, 0, 0, 0, 0, 3, 6),
				load(125, 0, 0, 0, 0, 0, 0, 3),
			},
			Color: Sequence{
				load(250, 0, 0, 0, 0),
				load(125, 0, 0, 3, 0),
				load(125, 0, 3, 6, 0),
				step(125, addRepeat, 2, 3, 3, 3, 2),
				load(125, 12, 15, 15, 8),
				load(125, 15, 15, 12, 8),
				load(125, 15, 12, 9, 8),
				step(125, addRepeat, 2, -3, -3, -3, -2),
				load(125, 3, 0, 0, 0),
				load(250, 0, 0, 0, 0),
			},
		},
		{
			Name: "spark",
			Strip: Sequence{
				load(1525, 0, 0, 0, 0, 0, 0, 0),
				step(75, addRepeat, 4, 3, 3, 3, 3, 3, 3, 3),
				step(75, addRepeat, 4, -3, -3, -3, -3, -3, -3, -3),
				load(450, 0, 0, 0, 0, 0, 0, 0),
			},
			Color: Sequence{
				load(75, 0, 0, 0, 0),
				step(75, addRepeat, 4, 3, 0, 0, 0),
				step(75, addRepeat, 4, -3, 0, 0, 0),
				step(75, addRepeat, 4, 0, 3, 0, 0),
				step(75, addRepeat, 4, 0, -3, 0, 0),
				load(750, 0, 0, 0, 0),
				load(450, 0, 0, 15, 15),
			},
		},
		{
			Name: "sunrise",
			Strip: Sequence{
				load(120, 0, 0, 0, 0, 0, 0, 0),
				load(120, 0, 0, 0, 0, 0, 0, 3),
				load(120, 0, 0, 0, 0, 0, 3, 6),
				load(120, 3, 0, 0, 0, 3, 6, 9),
				load(120, 6, 3, 0, 3, 6, 9, 12),
				load(120, 9, 6, 3, 6, 9, 12, 15),
				load(120, 12, 9, 6, 9, 12, 15, 15),
				load(120, 15, 12, 9, 12, 15, 15, 15),
				load(120, 15, 15, 12, 15, 15, 15, 15),
				load(840, 15, 15, 15, 15, 15, 15, 15),
			},
			Color: Sequence{
				load(120, 0, 0, 0, 1),
				load(120, 0, 0, 0, 3),
				load(120, 0, 0, 0, 3),
				load(120, 0, 0, 3, 6),
				load(120, 0, 0, 3, 6),
				load(120, 0, 3, 6, 9),
				load(120, 0, 3, 6, 9),
				load(120, 3, 6, 9, 12),
				load(120, 6, 9, 12, 12),
				load(840, 12, 12, 12, 12),
			},
		},
		{
			Name: "chase",
			Strip: Sequence{
				load(220, 15, 10, 5, 0, 0, 5, 10),
				load(220, 10, 15, 10, 5, 0, 0, 5),
				load(220, 5, 10, 15, 10, 5, 0, 0),
				load(220, 0, 5, 10, 15, 10, 5, 0),
				load(220, 0, 0, 5, 10, 15, 10, 5),
				load(220, 5, 0, 0, 5, 10, 15, 10),
				load(110, 10, 5, 0, 0, 5, 10, 15),
			},
			Color: Sequence{
				load(110, 15, 0, 0, 15),
				step(110, addRepeat, 2, 0, 5, 0, -5),
				step(110, addRepeat, 2, -5, 0, 5, 0),
				step(110, addRepeat, 2, 0, -5, 0, 5),
				step(110, addRepeat, 2, 5, 0, -5, 0),
				load(0, 0, 0, 0, 0),
			},
		},
		{
			Name: "blackout",
			Strip: Sequence{
				load(HoldForever, 0, 0, 0, 0, 0, 0, 0),
			},
			Color: Sequence{
				load(HoldForever, 0, 0, 0, 0),
			},
		},
	}
}
