package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer exposes a rectangular region of a Renderer's screen through the
// tinygo drivers.Displayer interface, so tinyfont and tinyterm can draw on a
// frame-buffer-less panel. Coordinates are relative to the region and every
// write is clipped to it.
//
// Every SetPixel costs a window command; it is meant for sparse text, not
// for images.
type Displayer struct {
	r    *Renderer
	x, y int16
	w, h int16
}

// Displayer returns a drivers.Displayer covering the whole screen.
func (r *Renderer) Displayer() *Displayer {
	w, h := r.Size()
	return &Displayer{r: r, w: w, h: h}
}

// Region returns a drivers.Displayer covering the given part of the screen,
// clipped to the screen.
func (r *Renderer) Region(x, y, w, h int16) *Displayer {
	sw, sh := r.Size()
	x0, y0 := clampInt(int(x), 0, int(sw)), clampInt(int(y), 0, int(sh))
	x1, y1 := clampInt(int(x)+int(w), 0, int(sw)), clampInt(int(y)+int(h), 0, int(sh))
	return &Displayer{r: r, x: int16(x0), y: int16(y0), w: int16(x1 - x0), h: int16(y1 - y0)}
}

var _ drivers.Displayer = (*Displayer)(nil)

func (d *Displayer) Size() (x, y int16) { return d.w, d.h }

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	px, py := d.x+x, d.y+y
	d.r.d.SetWindow(px, py, px, py)
	d.r.d.FillWindow(ColorFromRGBA(c))
}

// Display is a no-op: there is no buffer to flush.
func (d *Displayer) Display() error { return nil }

// FillRectangle fills the clipped rectangle with c.
func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, int(d.w))
	y0 := clampInt(int(y), 0, int(d.h))
	x1 := clampInt(int(x)+int(width), 0, int(d.w))
	y1 := clampInt(int(y)+int(height), 0, int(d.h))
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	d.r.d.SetWindow(d.x+int16(x0), d.y+int16(y0), d.x+int16(x1-1), d.y+int16(y1-1))
	d.r.d.FillWindow(ColorFromRGBA(c))
	return nil
}

// SetScroll is ignored; regions have no hardware scroll.
func (d *Displayer) SetScroll(line int16) {
	_ = line
}

// SetRotation accepts only the native orientation.
func (d *Displayer) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return ErrNotImplemented
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
