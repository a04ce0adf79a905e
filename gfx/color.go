package gfx

import (
	"image/color"
	"math/bits"

	"tinygo.org/x/drivers/pixel"
)

// Color is a packed RGB565 value: rrrrrggggggbbbbb.
type Color uint16

const (
	Black Color = 0x0000
	White Color = 0xFFFF
	Red   Color = 0xF800
	Green Color = 0x07E0
	Blue  Color = 0x001F
)

// RGB packs 8-bit channels into RGB565.
func RGB(r, g, b uint8) Color {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return Color((rr << 11) | (gg << 5) | bb)
}

// ColorFromRGBA packs c, ignoring alpha.
func ColorFromRGBA(c color.RGBA) Color {
	return RGB(c.R, c.G, c.B)
}

// BE returns c in the byte order the controller expects on the wire.
func (c Color) BE() pixel.RGB565BE {
	return pixel.RGB565BE(bits.ReverseBytes16(uint16(c)))
}

// RGBA expands c to 8-bit channels with full alpha.
func (c Color) RGBA() color.RGBA {
	return c.BE().RGBA()
}

// Bytes returns the two bytes streamed for c, most significant first.
func (c Color) Bytes() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}
