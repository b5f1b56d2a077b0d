package anim

import (
	"fmt"
	"sync"
	"time"

	"github.com/cwbudde/algo-led/led/frame"
	"github.com/cwbudde/algo-led/led/level"
)

// Engine walks the active animation's two instruction sequences and
// applies their opcodes to the strip and color frames. It is driven
// cooperatively: call Cycle once per main-loop pass; Cycle never
// blocks, allocates or performs I/O, and runs to completion, so a full
// opcode sequence is always finished before the next invocation.
//
// Engine is not reentrant. Output-stage readers may poll the frames
// concurrently with Cycle; everything else is single-goroutine.
type Engine struct {
	catalog Catalog
	split   int
	clock   Clock
	store   Store

	strip *frame.Frame
	color *frame.Frame

	// mu scopes the one required critical section: the multi-word
	// updates of the two elapsed-time accumulators.
	mu      sync.Mutex
	stripCh channel
	colorCh channel

	index    int
	lastPoll uint32
}

// New builds an engine from the default config and the given options.
func New(opts ...Option) (*Engine, error) {
	cfg := ApplyOptions(opts...)

	if err := cfg.Catalog.Validate(cfg.StripOutputs, cfg.ColorOutputs); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if cfg.Split < 1 || cfg.Split >= cfg.StripOutputs {
		return nil, fmt.Errorf("split %d outside strip of %d outputs", cfg.Split, cfg.StripOutputs)
	}
	if cfg.Clock == nil {
		cfg.Clock = wallClock()
	}

	e := &Engine{
		catalog: cfg.Catalog,
		split:   cfg.Split,
		clock:   cfg.Clock,
		store:   cfg.Store,
		strip:   frame.New(cfg.StripOutputs),
		color:   frame.New(cfg.ColorOutputs),
	}
	e.stripCh.reset()
	e.colorCh.reset()

	// A stored index is only trusted after the range check; anything
	// unreadable or out of range falls back to animation 0.
	if e.store != nil {
		if idx, err := e.store.Load(); err == nil {
			e.index = idx
		}
	}
	if e.index < 0 || e.index >= len(e.catalog) {
		e.index = 0
	}

	e.lastPoll = e.clock()
	return e, nil
}

func wallClock() Clock {
	start := time.Now()
	return func() uint32 {
		return uint32(time.Since(start) / time.Millisecond)
	}
}

// Strip returns the strip brightness frame. Read-only for callers.
func (e *Engine) Strip() *frame.Frame {
	return e.strip
}

// Color returns the color-LED brightness frame. Read-only for callers.
func (e *Engine) Color() *frame.Frame {
	return e.color
}

// Animation returns the index of the active animation.
func (e *Engine) Animation() int {
	return e.index
}

// Catalog returns the engine's animation catalog.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// SetAnimation repoints the engine at catalog entry index, persists the
// choice and resets both channel runtimes. The switch takes effect on
// the next Cycle. An out-of-range index is ignored.
func (e *Engine) SetAnimation(index int) error {
	if index < 0 || index >= len(e.catalog) {
		return nil
	}

	e.index = index
	e.mu.Lock()
	e.stripCh.reset()
	e.colorCh.reset()
	e.mu.Unlock()

	if e.store == nil {
		return nil
	}
	if err := e.store.Save(index); err != nil {
		return fmt.Errorf("persist animation index: %w", err)
	}
	return nil
}

// Cycle advances both channels by the wall-clock time elapsed since the
// previous Cycle and executes whatever instruction each channel's
// timeline now rests on. Invoking it twice without elapsed time is a
// no-op.
func (e *Engine) Cycle() {
	now := e.clock()
	if now == e.lastPoll {
		return
	}
	delta := now - e.lastPoll
	e.lastPoll = now

	e.mu.Lock()
	e.stripCh.elapsed += delta
	e.colorCh.elapsed += delta
	e.mu.Unlock()

	if e.index < 0 || e.index >= len(e.catalog) {
		e.index = 0
	}
	a := &e.catalog[e.index]
	e.cycleStrip(a.Strip)
	e.cycleColor(a.Color)
}

func (e *Engine) cycleStrip(seq Sequence) {
	idx := resolve(seq, e.stripCh.elapsed)
	if idx >= len(seq) {
		// The strip timeline is the master: its loop boundary is the
		// only place both timelines restart and re-synchronize.
		idx = 0
		e.mu.Lock()
		e.stripCh.elapsed = 0
		e.colorCh.elapsed = 0
		e.mu.Unlock()
	}
	if idx == e.stripCh.last {
		return
	}
	e.exec(&seq[idx], idx, &e.stripCh, e.strip.Levels(), true)
}

func (e *Engine) cycleColor(seq Sequence) {
	idx := resolve(seq, e.colorCh.elapsed)
	if idx >= len(seq) {
		// The color timeline never restarts on its own; past its end
		// it holds the last output until the strip loops.
		return
	}
	if idx == e.colorCh.last {
		return
	}
	e.exec(&seq[idx], idx, &e.colorCh, e.color.Levels(), false)
}

// exec applies one instruction. Combined operations always run in the
// fixed pipeline order; the rotate and propagate operations only exist
// on the strip topology and are silently skipped on the color channel.
func (e *Engine) exec(ins *Instruction, idx int, ch *channel, buf []level.Level, strip bool) {
	if ins.Ops.IsLoad() {
		loadLevels(buf, ins.Deltas)
		ch.last = idx
		return
	}

	if ins.Ops.Has(OpAdd) {
		addWrap(buf, ins.Deltas)
	}
	if strip {
		if ins.Ops.Has(OpRotateRight) {
			rotateRight(buf)
		}
		if ins.Ops.Has(OpRotateLeft) {
			rotateLeft(buf)
		}
		if ins.Ops.Has(OpPropagateUp) {
			propagateUp(buf, ins.Deltas, e.split)
		}
		if ins.Ops.Has(OpPropagateDown) {
			propagateDown(buf, ins.Deltas, e.split)
		}
	}
	if ins.Ops.Has(OpDivide) {
		divide(buf, ins.Deltas)
	}

	if !ins.Ops.Has(OpRepeat) {
		ch.last = idx
		return
	}
	e.repeatStep(ins, idx, ch)
}

// repeatStep runs the repeat state machine: arm the counter and rewind
// on first arrival, count down and rewind while repeating, and let the
// timeline move on after the final application. The opcodes themselves
// have already been applied by exec, so an instruction repeating N
// times executes N+1 times in total.
func (e *Engine) repeatStep(ins *Instruction, idx int, ch *channel) {
	if ch.repeat == 0 {
		if ins.Operand == 0 {
			ch.last = idx
			return
		}
		ch.repeat = ins.Operand
		e.rewind(ch, ins.Duration)
		return
	}

	ch.repeat--
	if ch.repeat > 0 {
		e.rewind(ch, ins.Duration)
		return
	}
	ch.last = idx
}

// rewind subtracts the instruction's own duration back out of the
// channel's elapsed time so the next Cycle resolves to the same
// instruction again.
func (e *Engine) rewind(ch *channel, duration uint16) {
	e.mu.Lock()
	ch.elapsed -= uint32(duration)
	e.mu.Unlock()
}
