package gfx

import "fmt"

// Pixmap is a packed 1 bit per pixel monochrome image.
//
// Pixels are stored row-major, 8 per byte, least significant bit first
// (pixel i lives in bit i%8 of byte i/8). Rows are not padded. With Inverted
// set, a 0 bit is "on" instead of a 1 bit.
type Pixmap struct {
	Data     []byte
	Width    uint16
	Height   uint16
	Inverted bool
}

// PixmapBytes returns the number of bytes needed for w*h packed pixels.
func PixmapBytes(w, h uint16) int {
	return (int(w)*int(h) + 7) / 8
}

// Len returns the number of pixels.
func (p Pixmap) Len() int { return int(p.Width) * int(p.Height) }

// Validate reports whether the buffer covers every pixel.
func (p Pixmap) Validate() error {
	if need := PixmapBytes(p.Width, p.Height); len(p.Data) < need {
		return fmt.Errorf("pixmap %dx%d has %d bytes, need %d: %w", p.Width, p.Height, len(p.Data), need, ErrShortPixmap)
	}
	return nil
}

// Bit reports whether pixel i is "on". The caller keeps i in [0, Len()).
func (p Pixmap) Bit(i int) bool {
	on := (p.Data[i/8]>>(i%8))&1 != 0
	return on != p.Inverted
}

// At reports whether the pixel at (x, y) is "on". Out of range reads are off.
func (p Pixmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= int(p.Width) || y >= int(p.Height) {
		return false
	}
	return p.Bit(y*int(p.Width) + x)
}

// Set stores pixel (x, y) as on or off, honoring Inverted. Out of range
// writes are ignored.
func (p Pixmap) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= int(p.Width) || y >= int(p.Height) {
		return
	}
	i := y*int(p.Width) + x
	if on != p.Inverted {
		p.Data[i/8] |= 1 << (i % 8)
	} else {
		p.Data[i/8] &^= 1 << (i % 8)
	}
}

// Count returns the number of "on" pixels.
func (p Pixmap) Count() int {
	n := 0
	for i := 0; i < p.Len(); i++ {
		if p.Bit(i) {
			n++
		}
	}
	return n
}

// NewPixmap allocates a w*h pixmap with every pixel off.
func NewPixmap(w, h uint16, inverted bool) Pixmap {
	p := Pixmap{
		Data:     make([]byte, PixmapBytes(w, h)),
		Width:    w,
		Height:   h,
		Inverted: inverted,
	}
	if inverted {
		for i := range p.Data {
			p.Data[i] = 0xFF
		}
	}
	return p
}
