// Package hal is the boundary between the renderer and a concrete board:
// a line logger, a status LED, the LCD, keys and a tick source.
package hal

import (
	"errors"

	"sgfx/gfx"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and
// the typed Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the renderer and the outside
// world.
type HAL interface {
	Logger() Logger
	LED() LED
	// Display is the window-addressed LCD. There is no frame buffer.
	Display() gfx.Display
	Keyboard() Keyboard
	Time() Time
}

// ScreenConfig selects the LCD geometry and how it is reached.
type ScreenConfig struct {
	Width  int
	Height int

	// SPI routes drawing through the controller command stream (panel
	// driver over a decoding bus) instead of straight into the simulator.
	SPI bool
}

// Landscape ILI9341.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

func (c ScreenConfig) withDefaults() ScreenConfig {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	return c
}

// MultiLogger duplicates every line to all of ls. Nil loggers are skipped.
func MultiLogger(ls ...Logger) Logger {
	var m multiLogger
	for _, l := range ls {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

type multiLogger []Logger

func (m multiLogger) WriteLineString(s string) {
	for _, l := range m {
		l.WriteLineString(s)
	}
}

func (m multiLogger) WriteLineBytes(b []byte) {
	for _, l := range m {
		l.WriteLineBytes(b)
	}
}
