package testutil

// Clock is a hand-advanced millisecond counter for driving the engine
// deterministically in tests.
type Clock struct {
	ms uint32
}

// NewClock returns a clock starting at start milliseconds.
func NewClock(start uint32) *Clock {
	return &Clock{ms: start}
}

// Now returns the current reading.
func (c *Clock) Now() uint32 {
	return c.ms
}

// Advance moves the clock forward by ms milliseconds.
func (c *Clock) Advance(ms uint32) {
	c.ms += ms
}
