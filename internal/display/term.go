package display

import (
	"fmt"
	"image"

	pdisplay "periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"
)

// Term prints frames to the console, one strip line per matrix row.
// It stands in for hardware during local development and is the
// fallback when no SPI port can be opened.
type Term struct {
	strip  pdisplay.Drawer
	width  int
	height int
	row    *image.NRGBA
}

// NewTerm returns a console renderer for a width x height frame.
func NewTerm(width, height int) *Term {
	return &Term{
		strip:  screen.New(width),
		width:  width,
		height: height,
		row:    image.NewNRGBA(image.Rect(0, 0, width, 1)),
	}
}

func (t *Term) Draw(img image.Image) error {
	min := img.Bounds().Min
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			t.row.Set(x, 0, img.At(min.X+x, min.Y+y))
		}
		if err := t.strip.Draw(t.strip.Bounds(), t.row, image.Point{}); err != nil {
			return fmt.Errorf("display: term draw: %w", err)
		}
	}
	fmt.Println()
	return nil
}

// SetContrast is a no-op; the terminal has no intensity control.
func (t *Term) SetContrast(uint8) error { return nil }

func (t *Term) Close() error { return t.strip.Halt() }
