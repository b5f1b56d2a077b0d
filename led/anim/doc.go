// Package anim executes pre-authored light animations on two brightness
// frames: a multiplexed LED strip and a multi-channel color LED.
//
// Animations are small byte-code programs. Each channel's program is an
// ordered sequence of timed instructions; an instruction carries a
// per-output delta vector, a combinable operation set and an operand.
// The engine keeps one elapsed-time accumulator per channel, resolves
// which instruction each timeline currently rests on and executes an
// instruction exactly once when the timeline first reaches it. The
// repeat operation rewinds the accumulator by the instruction's own
// duration so the same instruction fires again on later cycles.
//
// The strip timeline is the master: when it runs past its final
// instruction both timelines restart from zero. The color timeline
// never restarts on its own.
package anim
