//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ili9341"

	"sgfx/gfx"
	"sgfx/hal/panel"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	lcd    gfx.Display
	kbd    *stubKeyboard
	t      *tinyGoTime
}

// New returns a Pico HAL with an ILI9341 on SPI0 in landscape.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: SCK GP18, SDO GP19, SDI GP16, CS GP17, DC GP20, RST GP21, BL GP22.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &tinyGoHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		lcd:    newLCD(logger),
		kbd:    &stubKeyboard{},
		t:      newTinyGoTime(),
	}
}

func newLCD(l Logger) gfx.Display {
	spi := machine.SPI0
	spi.Configure(machine.SPIConfig{
		Frequency: 40_000_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
	})
	out := func(p machine.Pin) machine.Pin {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
		return p
	}
	cs, dc, rst, bl := out(machine.GP17), out(machine.GP20), out(machine.GP21), out(machine.GP22)

	rst.Low()
	time.Sleep(10 * time.Millisecond)
	rst.High()
	time.Sleep(120 * time.Millisecond)

	p := panel.New(spi, dc, cs, ili9341.TFTHEIGHT, ili9341.TFTWIDTH)
	if err := p.Init(ili9341.MADCTL_MV | ili9341.MADCTL_BGR); err != nil {
		l.WriteLineString("lcd: init: " + err.Error())
	}
	bl.High()
	return p
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) LED() LED             { return h.led }
func (h *tinyGoHAL) Display() gfx.Display { return h.lcd }
func (h *tinyGoHAL) Keyboard() Keyboard   { return h.kbd }
func (h *tinyGoHAL) Time() Time           { return h.t }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// The board has no keys wired.
type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }
