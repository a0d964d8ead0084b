// Package clock implements the optional pacing layer that caps CPU
// execution at a target oscillator frequency.
package clock

import "time"

// Clock paces a caller against a target frequency using a monotonic
// deadline and a busy-wait, exactly the way a real oscillator would be
// approximated in software: best-effort, bounded by scheduler and clock
// resolution, and strictly decoupled from CPU correctness.
type Clock struct {
	period time.Duration
	nextTS time.Time
	cycles uint64
	misses uint64
}

// New constructs a Clock targeting frequencyHz ticks per second.
func New(frequencyHz uint64) *Clock {
	c := &Clock{period: time.Second / time.Duration(frequencyHz)}
	c.Reset()
	return c
}

// Reset re-arms the deadline to one period from now and zeros the
// cycle and miss counters, for reuse across independent runs.
func (c *Clock) Reset() {
	c.nextTS = time.Now().Add(c.period)
	c.cycles = 0
	c.misses = 0
}

// Tick blocks until the next deadline (busy-waiting against the
// monotonic clock), then returns the cumulative cycle count. If the
// deadline has already been reached by the time Tick is called, it
// counts a miss and re-arms the deadline at half a period out, a
// heuristic catch-up that keeps a badly overrun clock from permanently
// missing every subsequent tick.
func (c *Clock) Tick() uint64 {
	now := time.Now()
	if !now.Before(c.nextTS) {
		c.misses++
		c.nextTS = now.Add(c.period / 2)
	} else {
		for time.Now().Before(c.nextTS) {
		}
		c.nextTS = c.nextTS.Add(c.period)
	}
	c.cycles++
	return c.cycles
}

// Cycles returns the cumulative number of ticks emitted since the last
// Reset.
func (c *Clock) Cycles() uint64 {
	return c.cycles
}

// Misses returns the number of ticks whose deadline had already passed
// by the time Tick observed them.
func (c *Clock) Misses() uint64 {
	return c.misses
}
