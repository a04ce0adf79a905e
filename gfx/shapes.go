package gfx

// Clear fills the whole screen with brush BG.
func (r *Renderer) Clear(b Brush) error {
	w, h := r.Size()
	if err := r.window("clear", 0, 0, int(w)-1, int(h)-1); err != nil {
		return err
	}
	r.d.FillWindow(b.BG)
	return nil
}

// DrawPixel sets one pixel to brush FG.
func (r *Renderer) DrawPixel(b Brush, at Point) error {
	if err := r.window("pixel", int(at.X), int(at.Y), int(at.X), int(at.Y)); err != nil {
		return err
	}
	r.d.FillWindow(b.FG)
	return nil
}

// DrawVLine draws a vertical line of |length| pixels starting at start,
// downwards for positive lengths and upwards for negative ones. The brush
// thickness widens the line horizontally around start.X.
func (r *Renderer) DrawVLine(b Brush, start Point, length int16) error {
	if length == 0 {
		return nil
	}
	before, after := b.spread()
	y1 := int(start.Y) + stretch(length)
	return r.fill("vline", b.FG, int(start.X)-before, int(start.Y), int(start.X)+after, y1)
}

// DrawHLine draws a horizontal line of |length| pixels starting at start,
// rightwards for positive lengths and leftwards for negative ones. The brush
// thickness widens the line vertically around start.Y.
func (r *Renderer) DrawHLine(b Brush, start Point, length int16) error {
	if length == 0 {
		return nil
	}
	before, after := b.spread()
	x1 := int(start.X) + stretch(length)
	return r.fill("hline", b.FG, int(start.X), int(start.Y)-before, x1, int(start.Y)+after)
}

// DrawLine draws a one pixel wide line between a and b, inclusive.
// Diagonal lines are plotted pixel by pixel and are slow.
func (r *Renderer) DrawLine(b Brush, a, z Point) error {
	if a.X > z.X || (a.X == z.X && a.Y > z.Y) {
		a, z = z, a
	}
	tl, br := normalize(a, z)
	if err := r.check("line", int(tl.X), int(tl.Y), int(br.X), int(br.Y)); err != nil {
		return err
	}
	if a.X == z.X || a.Y == z.Y {
		r.d.SetWindow(tl.X, tl.Y, br.X, br.Y)
		r.d.FillWindow(b.FG)
		return nil
	}

	dx := int(z.X) - int(a.X)
	dy := int(z.Y) - int(a.Y)
	sy := 1
	if dy < 0 {
		dy = -dy
		sy = -1
	}
	e := dx - dy
	x, y := int(a.X), int(a.Y)
	for {
		r.d.SetWindow(int16(x), int16(y), int16(x), int16(y))
		r.d.FillWindow(b.FG)
		if x == int(z.X) && y == int(z.Y) {
			return nil
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x++
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

// DrawRect draws the border of the rectangle spanned by two opposite
// corners with brush FG. Corner order does not matter. The brush thickness
// is centered on the border.
func (r *Renderer) DrawRect(b Brush, a, z Point) error {
	tl, br := normalize(a, z)
	before, after := b.spread()
	if err := r.check("rect", int(tl.X)-before, int(tl.Y)-before, int(br.X)+after, int(br.Y)+after); err != nil {
		return err
	}
	x0, y0, x1, y1 := int(tl.X), int(tl.Y), int(br.X), int(br.Y)

	r.d.SetWindow(int16(x0-before), int16(y0), int16(x0+after), int16(y1))
	r.d.FillWindow(b.FG)
	r.d.SetWindow(int16(x1-before), int16(y0), int16(x1+after), int16(y1))
	r.d.FillWindow(b.FG)
	r.d.SetWindow(int16(x0-before), int16(y0-before), int16(x1+after), int16(y0+after))
	r.d.FillWindow(b.FG)
	r.d.SetWindow(int16(x0-before), int16(y1-before), int16(x1+after), int16(y1+after))
	r.d.FillWindow(b.FG)
	return nil
}

// DrawFilledRect fills the rectangle spanned by two opposite corners with
// brush BG, bordered by a brush FG frame of brush thickness drawn inside it.
func (r *Renderer) DrawFilledRect(b Brush, a, z Point) error {
	tl, br := normalize(a, z)
	if err := r.window("filled rect", int(tl.X), int(tl.Y), int(br.X), int(br.Y)); err != nil {
		return err
	}
	r.d.FillWindow(b.FG)

	s := b.thickness()
	x0, y0 := int(tl.X)+s, int(tl.Y)+s
	x1, y1 := int(br.X)-s, int(br.Y)-s
	if x0 > x1 || y0 > y1 {
		return nil
	}
	r.d.SetWindow(int16(x0), int16(y0), int16(x1), int16(y1))
	r.d.FillWindow(b.BG)
	return nil
}

// DrawRoundRect is declared for API completeness and not implemented.
func (r *Renderer) DrawRoundRect(b Brush, radius uint8, a, z Point) error {
	return ErrNotImplemented
}

// DrawCircle is declared for API completeness and not implemented.
func (r *Renderer) DrawCircle(b Brush, radius uint8, center Point) error {
	return ErrNotImplemented
}

// DrawFilledCircle is declared for API completeness and not implemented.
func (r *Renderer) DrawFilledCircle(b Brush, radius uint8, center Point) error {
	return ErrNotImplemented
}

// fill validates and normalizes an inclusive rectangle, then fills it.
func (r *Renderer) fill(what string, c Color, x0, y0, x1, y1 int) error {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if err := r.window(what, x0, y0, x1, y1); err != nil {
		return err
	}
	r.d.FillWindow(c)
	return nil
}

// stretch turns a signed pixel count into the offset of the last pixel.
func stretch(length int16) int {
	if length > 0 {
		return int(length) - 1
	}
	return int(length) + 1
}
