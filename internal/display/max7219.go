package display

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// MAX7219 register map.
const (
	regDigit0      = 0x01
	regDecodeMode  = 0x09
	regIntensity   = 0x0A
	regScanLimit   = 0x0B
	regShutdown    = 0x0C
	regDisplayTest = 0x0F
)

// MAX7219 drives a chain of 8x8 LED blocks behind cascaded MAX7219
// controllers. Blocks tile left-to-right, top-to-bottom; the chip
// nearest the SPI input holds the top-left tile.
type MAX7219 struct {
	conn         spi.Conn
	port         spi.Port
	width        int // pixels
	height       int // pixels
	blocks       int
	blocksPerRow int
	orient       int // per-block rotation in degrees clockwise
}

// NewMAX7219 initializes the chain behind port. width and height are in
// pixels and must be positive multiples of 8. orientation rotates each
// block by 0, 90, 180 or 270 degrees clockwise; common 4-in-1 modules
// are wired for 90. speed of 0 selects 10MHz, the chip's rated maximum.
func NewMAX7219(port spi.Port, width, height, orientation int, speed physic.Frequency) (*MAX7219, error) {
	if width <= 0 || height <= 0 || width%8 != 0 || height%8 != 0 {
		return nil, fmt.Errorf("display: invalid geometry %dx%d, want positive multiples of 8", width, height)
	}
	switch orientation {
	case 0, 90, 180, 270:
	default:
		return nil, fmt.Errorf("display: invalid block orientation %d", orientation)
	}
	if speed == 0 {
		speed = 10 * physic.MegaHertz
	}
	c, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("display: SPI connect: %w", err)
	}
	d := &MAX7219{
		conn:         c,
		port:         port,
		width:        width,
		height:       height,
		blocks:       width / 8 * height / 8,
		blocksPerRow: width / 8,
		orient:       orientation,
	}
	for _, init := range [][2]byte{
		{regDisplayTest, 0},
		{regDecodeMode, 0},
		{regScanLimit, 7},
		{regShutdown, 1},
		{regIntensity, 1},
	} {
		if err := d.broadcast(init[0], init[1]); err != nil {
			return nil, err
		}
	}
	if err := d.Draw(image.NewGray(image.Rect(0, 0, width, height))); err != nil {
		return nil, err
	}
	return d, nil
}

// broadcast sends the same register write to every chip in the chain.
func (d *MAX7219) broadcast(reg, val byte) error {
	w := make([]byte, 0, d.blocks*2)
	for i := 0; i < d.blocks; i++ {
		w = append(w, reg, val)
	}
	if err := d.conn.Tx(w, nil); err != nil {
		return fmt.Errorf("display: max7219 write: %w", err)
	}
	return nil
}

// Draw latches img onto the chain, one digit row across all chips per
// transaction. Words shift through the chain, so the last block's data
// goes out first and the first block's last.
func (d *MAX7219) Draw(img image.Image) error {
	for row := 0; row < 8; row++ {
		w := make([]byte, 0, d.blocks*2)
		for b := d.blocks - 1; b >= 0; b-- {
			w = append(w, regDigit0+byte(row), d.rowByte(img, b, row))
		}
		if err := d.conn.Tx(w, nil); err != nil {
			return fmt.Errorf("display: max7219 frame: %w", err)
		}
	}
	return nil
}

// rowByte extracts one digit row of a block, mapping the row through
// the block rotation back to source pixels.
func (d *MAX7219) rowByte(img image.Image, block, row int) byte {
	bx := (block % d.blocksPerRow) * 8
	by := (block / d.blocksPerRow) * 8
	min := img.Bounds().Min
	var v byte
	for col := 0; col < 8; col++ {
		var sx, sy int
		switch d.orient {
		case 90:
			sx, sy = row, 7-col
		case 180:
			sx, sy = 7-col, 7-row
		case 270:
			sx, sy = 7-row, col
		default:
			sx, sy = col, row
		}
		if lit(img.At(min.X+bx+sx, min.Y+by+sy)) {
			v |= 1 << (7 - col)
		}
	}
	return v
}

// SetContrast maps the 0..255 scale onto the chip's 16 intensity steps.
func (d *MAX7219) SetContrast(level uint8) error {
	return d.broadcast(regIntensity, level>>4)
}

// Close blanks the chain and shuts the chips down.
func (d *MAX7219) Close() error {
	if err := d.Draw(image.NewGray(image.Rect(0, 0, d.width, d.height))); err != nil {
		return err
	}
	if err := d.broadcast(regShutdown, 0); err != nil {
		return err
	}
	if pc, ok := d.port.(spi.PortCloser); ok {
		return pc.Close()
	}
	return nil
}
