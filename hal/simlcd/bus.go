package simlcd

import (
	"sync"

	"tinygo.org/x/drivers"

	"sgfx/hal/panel"
)

// Bus decodes an ILI9341 SPI command stream into an LCD. It implements
// drivers.SPI; DC returns the data/command pin the driver toggles.
//
// Supported commands are SWRESET, CASET, PASET and RAMWR; everything else
// is counted and ignored.
type Bus struct {
	lcd *LCD

	mu      sync.Mutex
	data    bool
	cmd     byte
	args    [4]byte
	nargs   int
	colA    [2]int
	pageA   [2]int
	writing bool

	// Commands counts every command byte received, by opcode.
	Commands map[byte]int
}

var _ drivers.SPI = (*Bus)(nil)

// NewBus returns a Bus feeding lcd.
func NewBus(lcd *LCD) *Bus {
	w, h := lcd.Size()
	return &Bus{
		lcd:      lcd,
		colA:     [2]int{0, int(w) - 1},
		pageA:    [2]int{0, int(h) - 1},
		Commands: make(map[byte]int),
	}
}

// DC returns the data/command select pin: low for commands, high for data.
func (b *Bus) DC() panel.Pin { return dcPin{b} }

type dcPin struct{ b *Bus }

func (p dcPin) High() { p.b.setDC(true) }
func (p dcPin) Low()  { p.b.setDC(false) }

func (b *Bus) setDC(data bool) {
	b.mu.Lock()
	b.data = data
	b.mu.Unlock()
}

func (b *Bus) Tx(w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.data {
		for _, c := range w {
			b.command(c)
		}
	} else if b.writing {
		b.lcd.mu.Lock()
		b.lcd.stream(w)
		b.lcd.mu.Unlock()
	} else {
		for _, c := range w {
			b.param(c)
		}
	}
	for i := range r {
		r[i] = 0
	}
	return nil
}

func (b *Bus) Transfer(c byte) (byte, error) {
	return 0, b.Tx([]byte{c}, nil)
}

func (b *Bus) command(c byte) {
	b.Commands[c]++
	b.cmd = c
	b.nargs = 0
	b.writing = false

	switch c {
	case panel.SWRESET:
		w, h := b.lcd.Size()
		b.colA = [2]int{0, int(w) - 1}
		b.pageA = [2]int{0, int(h) - 1}
		b.lcd.Reset()
	case panel.RAMWR:
		b.writing = true
		b.lcd.mu.Lock()
		b.lcd.setWindow(b.colA[0], b.pageA[0], b.colA[1], b.pageA[1])
		b.lcd.stats.Writes++
		b.lcd.mu.Unlock()
	}
}

func (b *Bus) param(c byte) {
	if b.nargs >= len(b.args) {
		return
	}
	b.args[b.nargs] = c
	b.nargs++
	if b.nargs < 4 {
		return
	}
	lo := int(b.args[0])<<8 | int(b.args[1])
	hi := int(b.args[2])<<8 | int(b.args[3])
	switch b.cmd {
	case panel.CASET:
		b.colA = [2]int{lo, hi}
	case panel.PASET:
		b.pageA = [2]int{lo, hi}
	}
}
