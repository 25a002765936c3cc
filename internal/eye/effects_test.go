package eye_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-scaryeyes/internal/eye"
)

func TestCrossEyesRecenters(t *testing.T) {
	left, right := eye.New(), eye.New()
	a := eye.CrossEyes(left, right, 300*time.Millisecond)

	a.Tick(at(0))
	a.Tick(at(100))
	assert.Equal(t, eye.Point{X: 6, Y: 4}, left.Pupil())
	assert.Equal(t, eye.Point{X: 2, Y: 4}, right.Pupil())

	a.Tick(at(200)) // hold
	a.Tick(at(300))
	assert.True(t, a.Done())
	assert.Equal(t, eye.Point{X: 4, Y: 4}, left.Pupil())
	assert.Equal(t, eye.Point{X: 4, Y: 4}, right.Pupil())
}

func TestCrazyBlinkRunsEyesInTurn(t *testing.T) {
	left, right := eye.New(), eye.New()
	a := eye.CrazyBlink(left, right, time.Second)

	a.Tick(at(0))
	a.Tick(at(500))
	assert.False(t, a.Done(), "right eye still blinking")
	a.Tick(at(1000))
	assert.True(t, a.Done())
	assert.Equal(t, 48, litCount(render(left)), "left eye open again")
	assert.Equal(t, 48, litCount(render(right)), "right eye open again")
}

func TestCrazySpinWrapsAround(t *testing.T) {
	left, right := eye.New(), eye.New()
	a := eye.CrazySpin(left, right, 1600*time.Millisecond)

	for ms := 0; ms < 1600; ms += 100 {
		a.Tick(at(ms))
		assert.False(t, a.Done(), "done at %dms", ms)
	}
	a.Tick(at(1600))
	assert.True(t, a.Done())
	assert.Equal(t, 4, left.Pupil().Y, "spin stays on the horizontal")
	assert.Equal(t, left.Pupil(), right.Pupil(), "eyes spin in lockstep")
}

func TestRoundSpinMirrors(t *testing.T) {
	left, right := eye.New(), eye.New()
	a := eye.RoundSpin(left, right, 2700*time.Millisecond)

	// 2*13+1 steps of 100ms each.
	for ms := 0; ms <= 2700; ms += 100 {
		a.Tick(at(ms))
		if left.Pupil().X != 4 {
			assert.Equal(t, eye.Size-left.Pupil().X, right.Pupil().X, "pupils mirror at %dms", ms)
		}
		assert.Equal(t, left.Pupil().Y, right.Pupil().Y)
	}
	assert.True(t, a.Done())
}

func TestLazyEyeReturnsToCenter(t *testing.T) {
	e := eye.New()
	a := eye.LazyEye(e, 300*time.Millisecond)
	a.Tick(at(0))
	a.Tick(at(200))
	assert.Equal(t, eye.Point{X: 4, Y: 6}, e.Pupil(), "pupil lowered")
	a.Tick(at(300))
	assert.True(t, a.Done())
	assert.Equal(t, eye.Point{X: 4, Y: 4}, e.Pupil())
}
