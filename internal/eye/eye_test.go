package eye_test

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-scaryeyes/internal/anim"
	"github.com/coreman2200/funtimes-scaryeyes/internal/eye"
)

var base = time.Unix(1700000000, 0)

func at(ms int) time.Time { return base.Add(time.Duration(ms) * time.Millisecond) }

func render(e *eye.Eye) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, eye.Size, eye.Size))
	e.Render(img, image.Point{})
	return img
}

func lit(img *image.Gray, x, y int) bool {
	return img.GrayAt(x, y).Y != 0
}

func litCount(img *image.Gray) int {
	n := 0
	for y := 0; y < eye.Size; y++ {
		for x := 0; x < eye.Size; x++ {
			if lit(img, x, y) {
				n++
			}
		}
	}
	return n
}

func TestRenderOpenEye(t *testing.T) {
	img := render(eye.New())

	// Ball template has 52 lit pixels; the 2x2 pupil knocks out 4.
	assert.Equal(t, 48, litCount(img))

	// Pupil block centered at (4,4).
	for _, p := range []image.Point{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		assert.False(t, lit(img, p.X, p.Y), "pupil pixel %v should be dark", p)
	}

	// Rounded corners stay dark, top edge is lit between them.
	assert.False(t, lit(img, 0, 0))
	assert.False(t, lit(img, 7, 7))
	assert.True(t, lit(img, 2, 0))
	assert.True(t, lit(img, 5, 0))
}

func TestRenderEyelids(t *testing.T) {
	e := eye.New()

	e.Eyelids(0)
	img := render(e)
	for x := 0; x < eye.Size; x++ {
		assert.False(t, lit(img, x, 0), "top row should be covered")
		assert.False(t, lit(img, x, 7), "bottom row should be covered")
	}
	assert.True(t, lit(img, 0, 3), "middle rows stay visible")

	e.Eyelids(3)
	assert.Equal(t, 0, litCount(render(e)), "fully closed eye shows nothing")

	e.Eyelids(-1)
	assert.Equal(t, 48, litCount(render(e)), "reopened eye shows the full ball")
}

func TestEyelidsClamp(t *testing.T) {
	e := eye.New()
	e.Eyelids(99)
	assert.Equal(t, 0, litCount(render(e)))
	e.Eyelids(-99)
	assert.Equal(t, 48, litCount(render(e)))
}

func TestLookAtWraps(t *testing.T) {
	e := eye.New()
	e.LookAt(eye.Point{X: -1, Y: 9})
	assert.Equal(t, eye.Point{X: 7, Y: 1}, e.Pupil())
}

func TestLookAnimation(t *testing.T) {
	e := eye.New()
	a := e.Look(eye.Point{X: 6, Y: 4}, 200*time.Millisecond)

	a.Tick(at(0))
	assert.Equal(t, eye.Point{X: 4, Y: 4}, e.Pupil(), "first frame renders the origin")

	a.Tick(at(100))
	assert.Equal(t, eye.Point{X: 5, Y: 4}, e.Pupil(), "halfway through the eased glide")

	a.Tick(at(200))
	assert.True(t, a.Done())
	assert.Equal(t, eye.Point{X: 6, Y: 4}, e.Pupil())
}

// Chained looks pick up from wherever the previous one left the pupil:
// the origin is sampled when the look becomes active, not when the
// sequence was built.
func TestLookOriginSampledWhenActive(t *testing.T) {
	e := eye.New()
	s := anim.NewSequence(
		e.Look(eye.Point{X: 6, Y: 4}, 100*time.Millisecond),
		e.Look(eye.Point{X: 2, Y: 4}, 100*time.Millisecond),
	)
	s.Tick(at(0))
	s.Tick(at(100))
	assert.Equal(t, eye.Point{X: 6, Y: 4}, e.Pupil(), "second look opens where the first ended")
	s.Tick(at(200))
	assert.True(t, s.Done())
	assert.Equal(t, eye.Point{X: 2, Y: 4}, e.Pupil())
}

func TestBlinkClosesAndReopens(t *testing.T) {
	e := eye.New()
	b := e.Blink(500 * time.Millisecond)

	b.Tick(at(0))
	b.Tick(at(245))
	assert.Equal(t, 0, litCount(render(e)), "lids fully closed at the turn")

	b.Tick(at(500))
	assert.True(t, b.Done())
	assert.Equal(t, 48, litCount(render(e)), "eye fully open at the end")
}
