package display

import (
	"fmt"
	"image"
	"image/draw"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
)

// OLED shows frames on an SSD1306 panel, handy on a bench without the
// matrix wired up. The eye frame is scaled by an integer factor and
// centered on the panel.
type OLED struct {
	dev    *ssd1306.Dev
	scale  int
	offset image.Point
	canvas *image.Gray
}

// NewOLED initializes a 128x64 SSD1306 on bus and prepares it for a
// width x height pixel frame.
func NewOLED(bus i2c.Bus, width, height int) (*OLED, error) {
	opts := ssd1306.DefaultOpts
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		return nil, fmt.Errorf("display: ssd1306: %w", err)
	}
	b := dev.Bounds()
	scale := b.Dx() / width
	if s := b.Dy() / height; s < scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}
	return &OLED{
		dev:   dev,
		scale: scale,
		offset: image.Point{
			X: (b.Dx() - width*scale) / 2,
			Y: (b.Dy() - height*scale) / 2,
		},
		canvas: image.NewGray(b),
	}, nil
}

func (o *OLED) Draw(img image.Image) error {
	draw.Draw(o.canvas, o.canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	src := img.Bounds()
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if !lit(img.At(x, y)) {
				continue
			}
			px := o.offset.X + (x-src.Min.X)*o.scale
			py := o.offset.Y + (y-src.Min.Y)*o.scale
			for dy := 0; dy < o.scale; dy++ {
				for dx := 0; dx < o.scale; dx++ {
					o.canvas.SetGray(px+dx, py+dy, whitePixel)
				}
			}
		}
	}
	if err := o.dev.Draw(o.dev.Bounds(), o.canvas, image.Point{}); err != nil {
		return fmt.Errorf("display: ssd1306 draw: %w", err)
	}
	return nil
}

func (o *OLED) SetContrast(level uint8) error {
	return o.dev.SetContrast(level)
}

func (o *OLED) Close() error {
	return o.dev.Halt()
}
