// Package gfx draws onto window-addressed RGB565 LCD controllers without a
// frame buffer.
//
// Every operation is translated into "set addressing window" followed by
// either a constant fill or a stream of big-endian RGB565 bytes. Monochrome
// pixmaps are decoded on the fly in bounded chunks, so arbitrarily large
// images never exist in color form in memory.
//
// A Renderer is not safe for concurrent use. Callers that share one display
// between goroutines must serialize their draw calls.
package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFit reports geometry that is inverted or not fully on screen.
	// Nothing is sent to the display when it is returned.
	ErrNoFit = errors.New("gfx: geometry does not fit the screen")

	// ErrShortPixmap reports a pixmap or bitmap whose buffer is smaller
	// than its dimensions require.
	ErrShortPixmap = errors.New("gfx: pixmap buffer too short")

	// ErrExtractTooLarge reports a sub-rectangle larger than MaxExtractPixels.
	ErrExtractTooLarge = errors.New("gfx: extraction exceeds scratch size")

	// ErrBadRect reports a source rectangle with a negative origin.
	ErrBadRect = errors.New("gfx: invalid source rectangle")

	// ErrTinyAtlas reports an extraction source with fewer than 8 pixels,
	// which has no whole byte to clamp reads to.
	ErrTinyAtlas = errors.New("gfx: extraction source smaller than one byte")

	// ErrNotImplemented is returned by declared but unsupported shapes.
	ErrNotImplemented = errors.New("gfx: not implemented")
)

// Display is the window-addressed transport of an LCD controller.
//
// SetWindow corners are inclusive. FillWindow and WritePixels target the
// window set last; WritePixels continues where the previous call stopped.
// Implementations have no error channel: invalid windows are the caller's
// problem, which is why Renderer validates geometry first.
type Display interface {
	Size() (w, h int16)
	SetWindow(x0, y0, x1, y1 int16)
	FillWindow(c Color)
	WritePixels(buf []byte)
}

// Logger receives one line per rejected draw call.
type Logger interface {
	WriteLineString(s string)
}

// Renderer issues drawing commands to a Display.
type Renderer struct {
	d   Display
	log Logger
}

// New returns a Renderer for d.
func New(d Display) *Renderer {
	return &Renderer{d: d}
}

// WithLogger sets the logger used for rejected draw calls and returns r.
func (r *Renderer) WithLogger(l Logger) *Renderer {
	r.log = l
	return r
}

// Display returns the underlying display.
func (r *Renderer) Display() Display { return r.d }

// Size returns the screen size in pixels.
func (r *Renderer) Size() (w, h int16) {
	if r.d == nil {
		return 0, 0
	}
	return r.d.Size()
}

// fits reports whether the inclusive rectangle lies fully on screen.
func (r *Renderer) fits(x0, y0, x1, y1 int) bool {
	w, h := r.Size()
	return x0 >= 0 && y0 >= 0 && x0 <= x1 && y0 <= y1 && x1 < int(w) && y1 < int(h)
}

// check returns ErrNoFit, logging the rejected rectangle, unless the
// inclusive rectangle lies fully on screen.
func (r *Renderer) check(what string, x0, y0, x1, y1 int) error {
	if r.fits(x0, y0, x1, y1) {
		return nil
	}
	w, h := r.Size()
	r.logf("gfx: %s (%d,%d)-(%d,%d) does not fit %dx%d", what, x0, y0, x1, y1, w, h)
	return fmt.Errorf("%s (%d,%d)-(%d,%d): %w", what, x0, y0, x1, y1, ErrNoFit)
}

// window validates the inclusive rectangle and sets it as addressing window.
func (r *Renderer) window(what string, x0, y0, x1, y1 int) error {
	if err := r.check(what, x0, y0, x1, y1); err != nil {
		return err
	}
	r.d.SetWindow(int16(x0), int16(y0), int16(x1), int16(y1))
	return nil
}

func (r *Renderer) logf(format string, args ...any) {
	if r.log == nil {
		return
	}
	r.log.WriteLineString(fmt.Sprintf(format, args...))
}
