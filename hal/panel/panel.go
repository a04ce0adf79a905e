// Package panel drives an ILI9341-compatible LCD controller over SPI as a
// gfx.Display: no frame buffer, just addressing windows and pixel streams.
package panel

import (
	"time"

	"tinygo.org/x/drivers"

	"sgfx/gfx"
)

// Controller commands used by the driver.
const (
	SWRESET = 0x01
	SLPOUT  = 0x11
	DISPON  = 0x29
	CASET   = 0x2A
	PASET   = 0x2B
	RAMWR   = 0x2C
	MADCTL  = 0x36
	PIXFMT  = 0x3A
)

// PixFmt16 selects 16 bits per pixel on the SPI interface.
const PixFmt16 = 0x55

// Pin is an output pin. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Panel is an ILI9341 on a 4-wire SPI bus. DC low marks command bytes.
type Panel struct {
	spi drivers.SPI
	dc  Pin
	cs  Pin
	w   int16
	h   int16

	// Sleep waits after reset and sleep-out; nil means time.Sleep.
	Sleep func(time.Duration)

	x0, y0, x1, y1 int16
	cmd            [1]byte
	args           [4]byte
	chunk          [gfx.ChunkBytes]byte
	err            error
}

var _ gfx.Display = (*Panel)(nil)

// New returns a panel of w x h pixels. cs may be nil when chip select is
// tied low.
func New(spi drivers.SPI, dc, cs Pin, w, h int16) *Panel {
	return &Panel{spi: spi, dc: dc, cs: cs, w: w, h: h}
}

// Init resets the controller, selects 16-bit pixels and the given memory
// access control byte, and turns the display on.
func (p *Panel) Init(madctl byte) error {
	p.Command(SWRESET)
	p.sleep(150 * time.Millisecond)
	p.Command(SLPOUT)
	p.sleep(120 * time.Millisecond)
	p.Command(PIXFMT, PixFmt16)
	p.Command(MADCTL, madctl)
	p.Command(DISPON)
	return p.Err()
}

func (p *Panel) sleep(d time.Duration) {
	if p.Sleep != nil {
		p.Sleep(d)
		return
	}
	time.Sleep(d)
}

// Err returns the first bus error seen, if any.
func (p *Panel) Err() error { return p.err }

// Command sends cmd followed by its parameter bytes.
func (p *Panel) Command(cmd byte, data ...byte) {
	p.begin()
	p.dc.Low()
	p.cmd[0] = cmd
	p.tx(p.cmd[:])
	p.dc.High()
	if len(data) > 0 {
		p.tx(data)
	}
	p.end()
}

func (p *Panel) Size() (w, h int16) { return p.w, p.h }

// SetWindow sets the column and page address ranges and starts a memory
// write. Data sent afterwards lands in the window until the next command.
func (p *Panel) SetWindow(x0, y0, x1, y1 int16) {
	p.x0, p.y0, p.x1, p.y1 = x0, y0, x1, y1
	p.address(CASET, uint16(x0), uint16(x1))
	p.address(PASET, uint16(y0), uint16(y1))
	p.Command(RAMWR)
}

func (p *Panel) address(cmd byte, a, b uint16) {
	p.args = [4]byte{byte(a >> 8), byte(a), byte(b >> 8), byte(b)}
	p.Command(cmd, p.args[:]...)
}

// FillWindow streams c into every pixel of the window.
func (p *Panel) FillWindow(c gfx.Color) {
	n := (int(p.x1) - int(p.x0) + 1) * (int(p.y1) - int(p.y0) + 1)
	if n <= 0 {
		return
	}
	hi, lo := c.Bytes()
	fill := min(n*2, len(p.chunk))
	for i := 0; i+1 < fill; i += 2 {
		p.chunk[i] = hi
		p.chunk[i+1] = lo
	}
	p.begin()
	p.dc.High()
	for left := n * 2; left > 0; left -= fill {
		p.tx(p.chunk[:min(left, fill)])
	}
	p.end()
}

// WritePixels streams big-endian RGB565 bytes into the window.
func (p *Panel) WritePixels(buf []byte) {
	p.begin()
	p.dc.High()
	p.tx(buf)
	p.end()
}

func (p *Panel) tx(b []byte) {
	if err := p.spi.Tx(b, nil); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *Panel) begin() {
	if p.cs != nil {
		p.cs.Low()
	}
}

func (p *Panel) end() {
	if p.cs != nil {
		p.cs.High()
	}
}
