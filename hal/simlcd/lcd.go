// Package simlcd simulates the graphics RAM of a window-addressed RGB565
// LCD controller such as the ILI9341.
//
// The LCD type implements gfx.Display directly. Bus accepts the same
// controller's SPI command stream, so a panel driver can be run against the
// simulator unchanged.
package simlcd

import (
	"image"
	"sync"

	"tinygo.org/x/drivers/pixel"

	"sgfx/gfx"
)

// Stats counts the commands an LCD received.
type Stats struct {
	Windows     int
	Fills       int
	Writes      int
	BytesPushed int
	Dropped     int
}

// LCD is a simulated controller. The pixel memory is kept in the byte
// order the controller receives it.
//
// The draw path and the presentation path may run on different goroutines,
// so every method locks.
type LCD struct {
	mu  sync.Mutex
	img pixel.Image[pixel.RGB565BE]
	w   int
	h   int

	// inclusive window, unclipped
	x0, y0, x1, y1 int
	cx, cy         int
	half           int // pending high byte, -1 if none

	stats Stats
}

var _ gfx.Display = (*LCD)(nil)

// New returns a black w x h LCD with the whole screen as window.
func New(w, h int) *LCD {
	l := &LCD{
		img:  pixel.NewImage[pixel.RGB565BE](w, h),
		w:    w,
		h:    h,
		half: -1,
	}
	l.x1, l.y1 = w-1, h-1
	return l
}

func (l *LCD) Size() (w, h int16) { return int16(l.w), int16(l.h) }

// SetWindow sets the addressing window and moves the write cursor to its
// top left corner. The window is not clipped: pixels that land off the
// panel are dropped one by one and counted in Stats.Dropped.
func (l *LCD) SetWindow(x0, y0, x1, y1 int16) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setWindow(int(x0), int(y0), int(x1), int(y1))
}

func (l *LCD) setWindow(x0, y0, x1, y1 int) {
	l.stats.Windows++
	l.x0, l.y0, l.x1, l.y1 = x0, y0, x1, y1
	l.cx, l.cy = x0, y0
	l.half = -1
}

// FillWindow paints the whole window with c.
func (l *LCD) FillWindow(c gfx.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.Fills++
	if l.x0 > l.x1 || l.y0 > l.y1 {
		return
	}
	hi, lo := c.Bytes()
	for y := l.y0; y <= l.y1; y++ {
		for x := l.x0; x <= l.x1; x++ {
			l.put(x, y, hi, lo)
		}
	}
	l.cy = l.y1 + 1
	l.cx = l.x0
}

// WritePixels streams big-endian RGB565 bytes into the window, left to
// right then top to bottom, continuing where the last write stopped. Bytes
// past the end of the window are dropped.
func (l *LCD) WritePixels(buf []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.Writes++
	l.stream(buf)
}

func (l *LCD) stream(buf []byte) {
	l.stats.BytesPushed += len(buf)
	for _, b := range buf {
		if l.half < 0 {
			l.half = int(b)
			continue
		}
		hi := byte(l.half)
		l.half = -1
		if l.cy > l.y1 || l.x0 > l.x1 {
			l.stats.Dropped++
			continue
		}
		l.put(l.cx, l.cy, hi, b)
		l.cx++
		if l.cx > l.x1 {
			l.cx = l.x0
			l.cy++
		}
	}
}

// put stores one pixel; off-screen pixels are counted and ignored.
func (l *LCD) put(x, y int, hi, lo byte) {
	if x < 0 || y < 0 || x >= l.w || y >= l.h {
		l.stats.Dropped++
		return
	}
	raw := l.img.RawBuffer()
	i := (y*l.w + x) * 2
	raw[i] = hi
	raw[i+1] = lo
}

// Pixel returns the color at (x, y).
func (l *LCD) Pixel(x, y int) gfx.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	raw := l.img.RawBuffer()
	i := (y*l.w + x) * 2
	return gfx.Color(raw[i])<<8 | gfx.Color(raw[i+1])
}

// Stats returns the command counters.
func (l *LCD) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Reset clears the memory to black and the window to the whole screen.
func (l *LCD) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reset()
}

func (l *LCD) reset() {
	l.img.FillSolidColor(0)
	l.setWindow(0, 0, l.w-1, l.h-1)
}

// Snapshot copies the screen into an RGBA image.
func (l *LCD) Snapshot() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, l.w, l.h))
	l.SnapshotInto(dst.Pix)
	return dst
}

// SnapshotInto converts the screen into RGBA bytes in pix, which must hold
// w*h*4 bytes.
func (l *LCD) SnapshotInto(pix []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			c := l.img.Get(x, y).RGBA()
			j := (y*l.w + x) * 4
			if j+3 >= len(pix) {
				return
			}
			pix[j+0] = c.R
			pix[j+1] = c.G
			pix[j+2] = c.B
			pix[j+3] = 0xFF
		}
	}
}
