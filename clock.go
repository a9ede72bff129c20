// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import "time"

// Clock is the frame clock driving animated sketches. A period of zero or
// less disables ticking entirely: the frame count then stays at zero for the
// clock's lifetime and the sketch is redrawn only on slider changes.
//
// The clock holds no timer of its own. The host's update loop (ebiten's
// Update, or anything that calls [Clock.Advance] with the current time)
// supplies the cadence; ticks the loop is too slow to deliver are simply
// dropped, so the frame count may undercount wall-clock time under load.
type Clock struct {
	period   time.Duration
	frame    int
	lastTick time.Time
	stopped  bool
}

func newClock(frameRateMs int) *Clock {
	if frameRateMs <= 0 {
		return &Clock{}
	}
	return &Clock{period: time.Duration(frameRateMs) * time.Millisecond}
}

// Running reports whether the clock can still deliver ticks.
func (c *Clock) Running() bool { return c.period > 0 && !c.stopped }

// Frame returns the number of ticks delivered so far.
func (c *Clock) Frame() int { return c.frame }

// LastTick returns the timestamp of the most recent tick, or the zero time
// if no tick has been delivered.
func (c *Clock) LastTick() time.Time { return c.lastTick }

// Advance delivers at most one tick: if the clock is running and at least one
// period has elapsed since the last tick, the frame count increments and now
// is recorded. Reports whether a tick was delivered.
func (c *Clock) Advance(now time.Time) bool {
	if !c.Running() {
		return false
	}
	if !c.lastTick.IsZero() && now.Sub(c.lastTick) < c.period {
		return false
	}
	c.tick(now)
	return true
}

// tick applies an externally delivered tick unconditionally (the host timer
// already decided it was due).
func (c *Clock) tick(now time.Time) {
	c.frame++
	c.lastTick = now
}

// Stop tears the clock down: no further ticks are delivered. Idempotent.
func (c *Clock) Stop() { c.stopped = true }
