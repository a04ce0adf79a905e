package gfx

import "fmt"

const (
	// ChunkBytes is the size of the transfer buffer used by opaque blits.
	ChunkBytes = 1024
	// ChunkPixels is the number of pixels decoded per chunk.
	ChunkPixels = ChunkBytes / 2
)

// DrawPixmap draws p with its top-left corner at at.
//
// Opaque mode sets one window for the whole pixmap and streams it in
// ChunkBytes pieces, "off" pixels painted with brush BG.
//
// Transparent mode draws only "on" pixels, one window and one fill per lit
// pixel, so whatever is underneath the "off" pixels is preserved. It costs a
// window command per lit pixel and is far slower than opaque mode.
//
// The destination must lie fully on screen, otherwise ErrNoFit is returned
// and nothing is drawn.
func (r *Renderer) DrawPixmap(b Brush, at Point, p Pixmap, transparent bool) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Width == 0 || p.Height == 0 {
		return nil
	}
	x1 := int(at.X) + int(p.Width) - 1
	y1 := int(at.Y) + int(p.Height) - 1
	if transparent {
		if err := r.check("pixmap", int(at.X), int(at.Y), x1, y1); err != nil {
			return err
		}
		r.blitTransparent(b, at, p)
		return nil
	}
	if err := r.window("pixmap", int(at.X), int(at.Y), x1, y1); err != nil {
		return err
	}
	r.blitOpaque(b, p)
	return nil
}

func (r *Renderer) blitOpaque(b Brush, p Pixmap) {
	var buf [ChunkBytes]byte

	size := p.Len() * 2
	index := 0
	for n := size / ChunkBytes; n > 0; n-- {
		index = DecodePixels(p, b, index, buf[:])
		r.d.WritePixels(buf[:])
	}
	if rem := size % ChunkBytes; rem > 0 {
		DecodePixels(p, b, index, buf[:rem])
		r.d.WritePixels(buf[:rem])
	}
}

func (r *Renderer) blitTransparent(b Brush, at Point, p Pixmap) {
	end := int(at.X) + int(p.Width)
	pos := at
	for i := 0; i < p.Len(); i++ {
		if p.Bit(i) {
			r.d.SetWindow(pos.X, pos.Y, pos.X, pos.Y)
			r.d.FillWindow(b.FG)
		}
		pos.X++
		if int(pos.X) >= end {
			pos.X = at.X
			pos.Y++
		}
	}
}

// DrawPixmapRect draws the w*h region of p starting at src to dst.
//
// The region is first copied into a call-scoped scratch pixmap with Extract,
// which clamps reads running past the end of p. Regions larger than
// MaxExtractPixels are rejected with ErrExtractTooLarge.
func (r *Renderer) DrawPixmapRect(b Brush, p Pixmap, transparent bool, dst, src Point, w, h uint16) error {
	var scratch Scratch
	sub, err := Extract(&scratch, p, src, w, h)
	if err != nil {
		r.logf("gfx: pixmap rect %dx%d at (%d,%d): %v", w, h, src.X, src.Y, err)
		return err
	}
	return r.DrawPixmap(b, dst, sub, transparent)
}

// DrawRGB565 streams a w*h big-endian RGB565 bitmap to at.
func (r *Renderer) DrawRGB565(at Point, w, h uint16, data []byte) error {
	if w == 0 || h == 0 {
		return nil
	}
	size := int(w) * int(h) * 2
	if len(data) < size {
		return fmt.Errorf("bitmap %dx%d has %d bytes, need %d: %w", w, h, len(data), size, ErrShortPixmap)
	}
	if err := r.window("bitmap", int(at.X), int(at.Y), int(at.X)+int(w)-1, int(at.Y)+int(h)-1); err != nil {
		return err
	}
	r.d.WritePixels(data[:size])
	return nil
}
