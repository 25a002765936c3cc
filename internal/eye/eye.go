// Package eye models the cartoon eyes shown on the matrix and the
// animations that move them.
package eye

import (
	"image"
	"image/color"
)

// Size is the pixel width and height of a single eye.
const Size = 8

// Point is a pixel position on an eye, origin top-left.
type Point struct {
	X, Y int
}

// eyeball is the open-eye template, one byte per row, MSB leftmost.
var eyeball = [Size]byte{
	0b00111100,
	0b01111110,
	0b11111111,
	0b11111111,
	0b11111111,
	0b11111111,
	0b01111110,
	0b00111100,
}

// Eye is a single eye. The pupil is a 2x2 block addressed by its
// lower-right pixel; eyelids close symmetrically from top and bottom,
// -1 fully open through 3 fully closed.
type Eye struct {
	pupil   Point
	eyelids int
}

// New returns an open eye looking straight ahead.
func New() *Eye {
	return &Eye{pupil: Point{X: 4, Y: 4}, eyelids: -1}
}

// Pupil returns the current pupil position.
func (e *Eye) Pupil() Point { return e.pupil }

// LookAt moves the pupil immediately. Coordinates wrap around the eye,
// which the spin effects rely on.
func (e *Eye) LookAt(p Point) {
	e.pupil = Point{X: wrap(p.X), Y: wrap(p.Y)}
}

// Eyelids sets the eyelid offset, clamped to [-1, 3].
func (e *Eye) Eyelids(offset int) {
	if offset < -1 {
		offset = -1
	}
	if offset > 3 {
		offset = 3
	}
	e.eyelids = offset
}

func wrap(v int) int {
	v %= Size
	if v < 0 {
		v += Size
	}
	return v
}

// Render rasterizes the eye into img with its top-left corner at
// origin. Lit pixels are white, everything else black.
func (e *Eye) Render(img *image.Gray, origin image.Point) {
	rows := eyeball
	for _, p := range [4]Point{
		{e.pupil.X - 1, e.pupil.Y - 1},
		{e.pupil.X, e.pupil.Y - 1},
		{e.pupil.X - 1, e.pupil.Y},
		{e.pupil.X, e.pupil.Y},
	} {
		rows[wrap(p.Y)] &^= 1 << (7 - wrap(p.X))
	}
	for i := 0; i <= e.eyelids; i++ {
		rows[i] = 0
		rows[Size-1-i] = 0
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			var c color.Gray
			if rows[y]&(1<<(7-x)) != 0 {
				c = color.Gray{Y: 0xFF}
			}
			img.SetGray(origin.X+x, origin.Y+y, c)
		}
	}
}
