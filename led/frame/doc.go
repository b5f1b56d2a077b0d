// Package frame provides the brightness buffers shared between the
// animation engine and the output stage. A Frame is single-writer,
// multi-reader by contract: the engine mutates it in place, drivers
// poll it at their own cadence and must never write to it.
package frame
