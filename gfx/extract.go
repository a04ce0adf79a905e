package gfx

import "fmt"

// MaxExtractPixels is the largest region Extract copies.
const MaxExtractPixels = 256

// Scratch is the call-scoped buffer that holds an extracted region.
type Scratch [MaxExtractPixels / 8]byte

// Extract copies the w*h region of src whose top-left corner is at into s
// and returns it as a standalone pixmap, bit-aligned at byte 0. The result
// aliases s and keeps src.Inverted.
//
// Source rows are generally not byte-aligned, so the read and write cursors
// advance independently. A read that would land past the last whole byte of
// src (src.Width*src.Height/8 - 1) is clamped to that byte instead. Regions
// hanging off the right or bottom edge therefore come back with repeated or
// garbage trailing pixels, never with an out of range read.
func Extract(s *Scratch, src Pixmap, at Point, w, h uint16) (Pixmap, error) {
	if at.X < 0 || at.Y < 0 {
		return Pixmap{}, fmt.Errorf("extract at (%d,%d): %w", at.X, at.Y, ErrBadRect)
	}
	if n := int(w) * int(h); n > MaxExtractPixels {
		return Pixmap{}, fmt.Errorf("extract %dx%d (%d pixels, max %d): %w", w, h, n, MaxExtractPixels, ErrExtractTooLarge)
	}
	if err := src.Validate(); err != nil {
		return Pixmap{}, err
	}
	last := src.Len()/8 - 1
	if last < 0 && w > 0 && h > 0 {
		return Pixmap{}, fmt.Errorf("extract from %dx%d pixmap: %w", src.Width, src.Height, ErrTinyAtlas)
	}

	n := PixmapBytes(w, h)
	dst := s[:n]
	for i := range dst {
		dst[i] = 0
	}

	di, doff := 0, 0
	for row := 0; row < int(h); row++ {
		bit := int(at.X) + (int(at.Y)+row)*int(src.Width)
		si, soff := bit/8, bit%8
		for col := 0; col < int(w); col++ {
			idx := si
			if idx > last {
				idx = last
			}
			dst[di] |= ((src.Data[idx] >> soff) & 1) << doff

			soff++
			if soff == 8 {
				soff = 0
				si++
			}
			doff++
			if doff == 8 {
				doff = 0
				di++
			}
		}
	}

	return Pixmap{
		Data:     dst,
		Width:    w,
		Height:   h,
		Inverted: src.Inverted,
	}, nil
}
