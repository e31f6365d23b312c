// Package gametime carries the per-frame time signal through the game.
//
// The host advances a Clock once per ebiten tick and hands the resulting Time
// to every Update call, so nothing below the game loop reads a wall clock.
package gametime

import "time"

// Time is the frame time signal: Total is monotonic game time since the
// clock started, Elapsed is the time covered by the current frame.
type Time struct {
	Total   time.Duration
	Elapsed time.Duration
}

// At builds a Time for the frame ending at total that lasted elapsed.
func At(total, elapsed time.Duration) Time {
	return Time{Total: total, Elapsed: elapsed}
}

// Clock produces fixed-step frame times.
type Clock struct {
	step time.Duration
	now  Time
}

// NewClock returns a clock advancing tps frames per second. Non-positive
// rates fall back to 60.
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{step: time.Second / time.Duration(tps)}
}

// Step is the duration of a single frame.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Tick advances the clock by one frame and returns the new frame time.
func (c *Clock) Tick() Time {
	c.now = Time{Total: c.now.Total + c.step, Elapsed: c.step}
	return c.now
}

// Now returns the time of the last tick without advancing.
func (c *Clock) Now() Time {
	return c.now
}
