// Package anim is the timing and composition engine the eyes run on.
// Animations are advanced by passing the current time into Tick; nothing
// in this package reads a clock, sleeps or knows about the display.
package anim

import "time"

// Animation is one unit of visual behavior over a span of time.
// Implementations compose into a tree of groups and sequences driven by
// a single scheduler loop.
type Animation interface {
	// Tick advances the animation to now. The first call pins the
	// animation's start time. Once Done reports true, further calls
	// have no effect.
	Tick(now time.Time)

	// Done reports whether the animation has rendered its final state.
	// It never renders anything itself.
	Done() bool
}

// Clock is the time source for a running show, injected so tests can
// drive the loop with synthetic time.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by time.Now.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
