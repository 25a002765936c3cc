// Package show runs the endless eye animation loop: it builds
// randomized routines out of the anim primitives, advances them at a
// fixed cadence and pushes frames to the display.
package show

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-scaryeyes/internal/anim"
	"github.com/coreman2200/funtimes-scaryeyes/internal/display"
	"github.com/coreman2200/funtimes-scaryeyes/internal/eye"
)

// Default timings, inherited from the routine the eyes have always run.
const (
	defaultTick   = 100 * time.Millisecond
	lookDuration  = 300 * time.Millisecond
	blinkDuration = 500 * time.Millisecond
)

// Options configures a Show.
type Options struct {
	Renderer display.Renderer
	Clock    anim.Clock    // nil means wall clock
	Tick     time.Duration // scheduler cadence, 0 means 100ms
	Seed     int64         // 0 seeds from the clock
	Logger   zerolog.Logger
}

// Show owns the two eyes, the current animation tree and the frame
// buffer. Everything runs on the goroutine calling Step or Run.
type Show struct {
	left     *eye.Eye
	right    *eye.Eye
	renderer display.Renderer
	clock    anim.Clock
	tick     time.Duration
	rng      *rand.Rand
	frame    *image.Gray
	root     anim.Animation
	cycles   uint64
	log      zerolog.Logger
}

// New builds a Show rendering two 8x8 eyes side by side.
func New(o Options) *Show {
	if o.Clock == nil {
		o.Clock = anim.RealClock{}
	}
	if o.Tick <= 0 {
		o.Tick = defaultTick
	}
	if o.Seed == 0 {
		o.Seed = o.Clock.Now().UnixNano()
	}
	return &Show{
		left:     eye.New(),
		right:    eye.New(),
		renderer: o.Renderer,
		clock:    o.Clock,
		tick:     o.Tick,
		rng:      rand.New(rand.NewSource(o.Seed)),
		frame:    image.NewGray(image.Rect(0, 0, 2*eye.Size, eye.Size)),
		log:      o.Logger,
	}
}

// Step runs one scheduler iteration at now: it starts a fresh cycle
// when the previous one has finished, advances the animation tree and
// redraws both eyes.
func (s *Show) Step(now time.Time) error {
	if s.root == nil || s.root.Done() {
		s.root = s.nextCycle()
		s.cycles++
	}
	s.root.Tick(now)
	s.left.Render(s.frame, image.Point{})
	s.right.Render(s.frame, image.Point{X: eye.Size})
	if err := s.renderer.Draw(s.frame); err != nil {
		return fmt.Errorf("show: draw: %w", err)
	}
	return nil
}

// Run drives Step at the configured cadence until ctx is canceled or
// the renderer fails. The loop has no natural end; the eyes just keep
// looking around.
func (s *Show) Run(ctx context.Context) error {
	s.log.Info().Dur("tick", s.tick).Msg("show starting")
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.Step(s.clock.Now()); err != nil {
				return err
			}
		}
	}
}

// Cycles reports how many routines have been started.
func (s *Show) Cycles() uint64 { return s.cycles }

// nextCycle builds the next randomized routine: glance somewhere, hold
// for a few seconds, sometimes blink, occasionally show off.
func (s *Show) nextCycle() anim.Animation {
	p := eye.Point{X: 2 + s.rng.Intn(4), Y: 2 + s.rng.Intn(4)}
	children := []anim.Animation{
		anim.NewGroup(s.left.Look(p, lookDuration), s.right.Look(p, lookDuration)),
		anim.Wait(time.Duration(5+s.rng.Intn(3)) * 500 * time.Millisecond),
	}
	if s.rng.Intn(4) == 0 {
		children = append(children,
			anim.NewGroup(s.left.Blink(blinkDuration), s.right.Blink(blinkDuration)))
	}
	if s.rng.Intn(7) == 0 {
		children = append(children, s.pickEffect())
	}
	s.log.Debug().Uint64("cycle", s.cycles).Stringer("glance", glancePoint(p)).Msg("next routine")
	return anim.NewSequence(children...)
}

func (s *Show) pickEffect() anim.Animation {
	switch s.rng.Intn(7) {
	case 0:
		return eye.CrossEyes(s.left, s.right, 3*time.Second)
	case 1:
		return eye.CrazySpin(s.left, s.right, 400*time.Millisecond)
	case 2:
		return eye.MethEyes(s.left, s.right, 3*time.Second)
	case 3:
		return eye.CrazyBlink(s.left, s.right, 1500*time.Millisecond)
	case 4:
		return eye.LazyEye(s.left, 2*time.Second)
	case 5:
		return eye.RoundSpin(s.left, s.right, 400*time.Millisecond)
	default:
		return glow(s.renderer, 300*time.Millisecond)
	}
}

// glow swells the display contrast and settles it back down, the one
// routine that animates the device instead of pixels.
func glow(r display.Renderer, d time.Duration) anim.Animation {
	return anim.NewLinear(d, func(progress float64) {
		var c float64
		if progress < 0.5 {
			c = 30 + 120*(progress/0.49)
		} else {
			c = 150 - 120*((progress-0.5)/0.49)
		}
		if progress >= 1 {
			c = 30
		}
		if c < 0 {
			c = 0
		}
		if c > 255 {
			c = 255
		}
		// Contrast is best effort; a dead display fails the next Draw.
		_ = r.SetContrast(uint8(c))
	})
}

type glancePoint eye.Point

func (p glancePoint) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }
