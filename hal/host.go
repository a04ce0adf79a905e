//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"io"
	"os"
	"sync"
	"time"

	"sgfx/gfx"
	"sgfx/hal/panel"
	"sgfx/hal/simlcd"
)

// Memory access control for the simulated panel: BGR, no rotation. The
// simulator ignores it but the init sequence stays the one sent to hardware.
const hostMADCTL = 0x08

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	lcd    *simlcd.LCD
	bus    *simlcd.Bus
	screen gfx.Display
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL backed by a simulated LCD.
func New(cfg ScreenConfig) (HAL, error) {
	return newHost(cfg, os.Stdout)
}

func newHost(cfg ScreenConfig, out io.Writer) (*hostHAL, error) {
	cfg = cfg.withDefaults()
	logger := &hostLogger{w: out}
	h := &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		lcd:    simlcd.New(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(time.Millisecond),
	}
	h.screen = h.lcd
	if cfg.SPI {
		h.bus = simlcd.NewBus(h.lcd)
		p := panel.New(h.bus, h.bus.DC(), nil, int16(cfg.Width), int16(cfg.Height))
		p.Sleep = func(time.Duration) {}
		if err := p.Init(hostMADCTL); err != nil {
			return nil, fmt.Errorf("panel init: %w", err)
		}
		h.screen = p
	}
	return h, nil
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) LED() LED             { return h.led }
func (h *hostHAL) Display() gfx.Display { return h.screen }
func (h *hostHAL) Keyboard() Keyboard   { return h.kbd }
func (h *hostHAL) Time() Time           { return h.t }

// Snapshot copies the simulated screen.
func (h *hostHAL) Snapshot() *image.RGBA { return h.lcd.Snapshot() }

func (h *hostHAL) logStats() {
	st := h.lcd.Stats()
	h.logger.WriteLineString(fmt.Sprintf("lcd: windows=%d fills=%d writes=%d bytes=%d dropped=%d",
		st.Windows, st.Fills, st.Writes, st.BytesPushed, st.Dropped))
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		l.logger.WriteLineString("led: HIGH")
	}
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		l.logger.WriteLineString("led: LOW")
	}
	l.on = false
}
