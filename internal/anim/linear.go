package anim

import (
	"fmt"
	"time"
)

// FrameFunc renders a single frame at the given progress in [0, 1].
type FrameFunc func(progress float64)

// Linear maps elapsed wall-clock time onto a normalized progress value
// and hands it to a frame callback. Driving visuals off elapsed time
// instead of a frame counter means a delayed loop lands on a larger
// progress on its next tick: frames are skipped, animation time never
// slows down.
type Linear struct {
	duration time.Duration
	frame    FrameFunc

	started  bool
	start    time.Time
	progress float64
	done     bool
}

// NewLinear returns an animation running frame from progress 0 to 1
// over d. A zero duration completes on the very first tick, delivering
// progress 1 exactly once. Panics if d is negative.
func NewLinear(d time.Duration, frame FrameFunc) *Linear {
	if d < 0 {
		panic(fmt.Sprintf("anim: negative duration %v", d))
	}
	return &Linear{duration: d, frame: frame}
}

// Wait returns an animation that draws nothing for d. Used as a spacer
// between active animations inside a Sequence.
func Wait(d time.Duration) *Linear {
	return NewLinear(d, nil)
}

func (l *Linear) Tick(now time.Time) {
	if l.done {
		return
	}
	if !l.started {
		l.started = true
		l.start = now
	}
	p := 1.0
	if l.duration > 0 {
		p = float64(now.Sub(l.start)) / float64(l.duration)
	}
	if p > 1 {
		p = 1
	}
	if p < l.progress {
		// Clock anomaly; hold the last position rather than run backwards.
		p = l.progress
	}
	l.progress = p
	if l.frame != nil {
		l.frame(p)
	}
	if p >= 1 {
		l.done = true
	}
}

func (l *Linear) Done() bool { return l.done }
