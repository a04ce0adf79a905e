package gfx

import (
	"fmt"
	"strings"
)

// fakeDisplay emulates a window-addressed controller and records commands.
type fakeDisplay struct {
	w, h int16
	pix  []Color

	x0, y0, x1, y1 int
	cx, cy         int

	windows int
	fills   int
	writes  []int
}

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, pix: make([]Color, int(w)*int(h))}
}

func (d *fakeDisplay) Size() (int16, int16) { return d.w, d.h }

func (d *fakeDisplay) SetWindow(x0, y0, x1, y1 int16) {
	d.windows++
	d.x0, d.y0, d.x1, d.y1 = int(x0), int(y0), int(x1), int(y1)
	d.cx, d.cy = d.x0, d.y0
}

func (d *fakeDisplay) FillWindow(c Color) {
	d.fills++
	for y := d.y0; y <= d.y1; y++ {
		for x := d.x0; x <= d.x1; x++ {
			d.put(x, y, c)
		}
	}
}

func (d *fakeDisplay) WritePixels(buf []byte) {
	d.writes = append(d.writes, len(buf))
	for i := 0; i+1 < len(buf); i += 2 {
		if d.cy > d.y1 {
			return
		}
		d.put(d.cx, d.cy, Color(buf[i])<<8|Color(buf[i+1]))
		d.cx++
		if d.cx > d.x1 {
			d.cx = d.x0
			d.cy++
		}
	}
}

func (d *fakeDisplay) put(x, y int, c Color) {
	if x < 0 || y < 0 || x >= int(d.w) || y >= int(d.h) {
		panic(fmt.Sprintf("write outside screen at (%d,%d)", x, y))
	}
	d.pix[y*int(d.w)+x] = c
}

func (d *fakeDisplay) at(x, y int) Color { return d.pix[y*int(d.w)+x] }

func (d *fakeDisplay) fillAll(c Color) {
	for i := range d.pix {
		d.pix[i] = c
	}
}

func (d *fakeDisplay) count(c Color) int {
	n := 0
	for _, p := range d.pix {
		if p == c {
			n++
		}
	}
	return n
}

func (d *fakeDisplay) equal(o *fakeDisplay) bool {
	if len(d.pix) != len(o.pix) {
		return false
	}
	for i := range d.pix {
		if d.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

type lineLog struct {
	lines []string
}

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }

func (l *lineLog) String() string { return strings.Join(l.lines, "\n") }
