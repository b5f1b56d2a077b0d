package anim

// resolve returns the index of the first instruction whose cumulative
// duration exceeds the channel's elapsed time, scanning from the start
// of the sequence. It returns len(seq) when the elapsed time has
// advanced past the end.
func resolve(seq Sequence, elapsed uint32) int {
	var sum uint32
	for i := range seq {
		sum += uint32(seq[i].Duration)
		if sum > elapsed {
			return i
		}
	}
	return len(seq)
}
