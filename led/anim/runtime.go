package anim

// noInstruction marks a channel that has not executed anything yet, so
// the first resolved instruction always fires.
const noInstruction = -1

// channel is one animation track's runtime state: its elapsed-time
// accumulator, the index of the instruction it last executed and its
// repeat countdown. Both channels advance by the same wall-clock delta
// but keep fully independent timelines.
type channel struct {
	elapsed uint32
	last    int
	repeat  uint8
}

func (c *channel) reset() {
	c.elapsed = 0
	c.last = noInstruction
	c.repeat = 0
}
