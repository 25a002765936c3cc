package eye

import (
	"math"
	"time"

	"github.com/fogleman/ease"

	"github.com/coreman2200/funtimes-scaryeyes/internal/anim"
)

// easeFunc shapes a normalized progress value, matching the signatures
// exported by fogleman/ease.
type easeFunc func(t float64) float64

// Look returns an animation gliding the pupil to dest over d. The
// origin is sampled on the animation's first frame, when it actually
// becomes active inside its sequence, so chained looks pick up from
// wherever the previous one left the pupil.
func (e *Eye) Look(dest Point, d time.Duration) anim.Animation {
	return e.look(dest, d, ease.InOutQuad)
}

func (e *Eye) look(dest Point, d time.Duration, fn easeFunc) anim.Animation {
	var (
		sampled bool
		origin  Point
	)
	return anim.NewLinear(d, func(progress float64) {
		if !sampled {
			sampled = true
			origin = e.pupil
		}
		t := fn(progress)
		e.LookAt(Point{
			X: origin.X + roundToInt(float64(dest.X-origin.X)*t),
			Y: origin.Y + roundToInt(float64(dest.Y-origin.Y)*t),
		})
	})
}

// Blink returns an animation closing and reopening the eyelids over d.
// The lids close over the first half and reopen over the second; the
// 0.49 divisor guarantees they reach fully closed before turning. The
// eye always ends fully open.
func (e *Eye) Blink(d time.Duration) anim.Animation {
	return anim.NewLinear(d, func(progress float64) {
		if progress < 0.5 {
			e.Eyelids(int(4*(progress/0.49) + 0.5))
		} else {
			e.Eyelids(int(4 - (4*((progress-0.5)/0.49) + 0.5)))
		}
		if progress >= 1 {
			e.Eyelids(-1)
		}
	})
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
