// Package display provides the sinks rendered eye frames are pushed to:
// MAX7219 matrix chains over SPI, an SSD1306 OLED for bench work, and a
// terminal fallback when no hardware is present.
package display

import (
	"image"
	"image/color"
)

// Renderer is the one interface the animation side draws through.
type Renderer interface {
	// Draw pushes a full frame. White pixels are lit.
	Draw(img image.Image) error
	// SetContrast adjusts display intensity, 0 (dim) to 255 (bright).
	SetContrast(level uint8) error
	// Close blanks and releases the underlying device.
	Close() error
}

// Tee fans every call out to each sink in order. The first error wins;
// a dead display is fatal to the show either way.
type Tee []Renderer

func (t Tee) Draw(img image.Image) error {
	for _, r := range t {
		if err := r.Draw(img); err != nil {
			return err
		}
	}
	return nil
}

func (t Tee) SetContrast(level uint8) error {
	for _, r := range t {
		if err := r.SetContrast(level); err != nil {
			return err
		}
	}
	return nil
}

func (t Tee) Close() error {
	var first error
	for _, r := range t {
		if err := r.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

var whitePixel = color.Gray{Y: 0xFF}

// lit decides whether a source pixel drives an LED on a 1-bit display.
func lit(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= 0x80
}
