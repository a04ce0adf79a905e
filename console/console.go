// Package console is a scrolling text log drawn into a region of the LCD
// with tinyterm. There is no frame buffer to scroll, so when the last row
// is used up the region is cleared and output starts again at the top.
package console

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"tinygo.org/x/tinyterm"

	"sgfx/gfx"
	"sgfx/gfx/lwfont"
)

var (
	// ErrNoDigit is returned for fonts without a '0' glyph; the terminal
	// derives its cell width from it.
	ErrNoDigit = errors.New("console: font has no '0' glyph")

	ErrTooSmall = errors.New("console: region smaller than one cell")
)

// Console implements hal.Logger and io.Writer.
type Console struct {
	mu    sync.Mutex
	d     *gfx.Displayer
	t     *tinyterm.Terminal
	font  *lwfont.Font
	lines int
}

// New places a console at x, y of size w x h on r's screen.
func New(r *gfx.Renderer, f *lwfont.Font, x, y, w, h int16) (*Console, error) {
	cell := int16(f.Advance('0'))
	if cell <= 0 {
		return nil, ErrNoDigit
	}
	d := r.Region(x, y, w, h)
	dw, dh := d.Size()
	if dw < cell || dh < int16(f.Height) || f.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d for %dx%d cells", ErrTooSmall, dw, dh, cell, f.Height)
	}
	c := &Console{d: d, font: f}
	c.reset()
	return c, nil
}

func (c *Console) reset() {
	w, h := c.d.Size()
	_ = c.d.FillRectangle(0, 0, w, h, color.RGBA{A: 0xFF})
	c.t = tinyterm.NewTerminal(c.d)
	c.t.Configure(&tinyterm.Config{
		Font:              c.font.Fonter(),
		FontHeight:        int16(c.font.Height),
		FontOffset:        int16(c.font.Baseline),
		UseSoftwareScroll: true,
	})
}

// Write passes p to the terminal, ANSI escapes included.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range p {
		if b == '\n' {
			c.lines++
		}
	}
	return c.t.Write(p)
}

func (c *Console) WriteLineString(s string) {
	c.WriteLineBytes([]byte(s))
}

func (c *Console) WriteLineBytes(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.Write(b)
	c.t.Write([]byte{'\n'})
	c.lines++
}

// Lines returns the number of lines written so far.
func (c *Console) Lines() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lines
}

// Clear blanks the region and homes the cursor.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}
