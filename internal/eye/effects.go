package eye

import (
	"time"

	"github.com/fogleman/ease"

	"github.com/coreman2200/funtimes-scaryeyes/internal/anim"
)

// The canned routines the show picks from. Each is a plain composition
// of groups, sequences and waits over the two eyes.

// CrossEyes pulls both pupils toward the nose, holds, and recenters.
func CrossEyes(left, right *Eye, d time.Duration) anim.Animation {
	step := d / 3
	return anim.NewSequence(
		anim.NewGroup(left.Look(Point{X: 6, Y: 4}, step), right.Look(Point{X: 2, Y: 4}, step)),
		anim.Wait(step),
		anim.NewGroup(left.Look(Point{X: 4, Y: 4}, step), right.Look(Point{X: 4, Y: 4}, step)),
	)
}

// MethEyes is the inverse of CrossEyes, both pupils drifting outward.
func MethEyes(left, right *Eye, d time.Duration) anim.Animation {
	step := d / 3
	return anim.NewSequence(
		anim.NewGroup(left.Look(Point{X: 2, Y: 4}, step), right.Look(Point{X: 6, Y: 4}, step)),
		anim.Wait(step),
		anim.NewGroup(left.Look(Point{X: 4, Y: 4}, step), right.Look(Point{X: 4, Y: 4}, step)),
	)
}

// CrazyBlink blinks the left eye, then the right.
func CrazyBlink(left, right *Eye, d time.Duration) anim.Animation {
	step := d / 2
	return anim.NewSequence(left.Blink(step), right.Blink(step))
}

// LazyEye lowers the pupil of a single eye slowly, then snaps it back.
func LazyEye(e *Eye, d time.Duration) anim.Animation {
	step := d / 3
	return anim.NewSequence(
		e.Look(Point{X: 4, Y: 6}, 2*step),
		e.Look(Point{X: 4, Y: 4}, step),
	)
}

// CrazySpin slides both pupils left around the horizontal wrap, twice.
func CrazySpin(left, right *Eye, d time.Duration) anim.Animation {
	const laps = 2
	steps := laps * Size
	step := d / time.Duration(steps)
	children := make([]anim.Animation, 0, steps)
	for i := 0; i < steps; i++ {
		// Keep moving left; LookAt wraps the coordinate.
		p := Point{X: 4 - i, Y: 4}
		children = append(children, anim.NewGroup(
			left.look(p, step, ease.Linear),
			right.look(p, step, ease.Linear),
		))
	}
	return anim.NewSequence(children...)
}

// roundSpinPath is one clockwise lap of the left pupil; the right pupil
// mirrors it around the vertical axis.
var roundSpinPath = []Point{
	{6, 4}, {6, 3}, {5, 2}, {4, 2}, {3, 2}, {2, 3}, {2, 4},
	{2, 5}, {3, 6}, {4, 6}, {5, 6}, {6, 5}, {6, 4},
}

// RoundSpin rolls both eyeballs in circles, mirrored.
func RoundSpin(left, right *Eye, d time.Duration) anim.Animation {
	const laps = 2
	step := d / time.Duration(laps*len(roundSpinPath)+1)
	spin := func(p Point) anim.Animation {
		return anim.NewGroup(
			left.look(p, step, ease.Linear),
			right.look(Point{X: Size - p.X, Y: p.Y}, step, ease.Linear),
		)
	}
	children := []anim.Animation{spin(roundSpinPath[0])}
	for lap := 0; lap < laps; lap++ {
		for _, p := range roundSpinPath {
			children = append(children, spin(p))
		}
	}
	return anim.NewSequence(children...)
}
