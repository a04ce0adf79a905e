// Package app is the demo that exercises the renderer on whatever LCD the
// HAL provides: a static scene, a status line refreshed once a second and a
// console fed by the log and the keyboard.
package app

import (
	"errors"
	"fmt"
	"time"

	"sgfx/console"
	"sgfx/fonts"
	"sgfx/gfx"
	"sgfx/gfx/lwfont"
	"sgfx/gfx/text"
	"sgfx/hal"
	"sgfx/internal/buildinfo"
)

// Config selects what the demo draws with.
type Config struct {
	// Font is a fonts.ByName name; empty means tiny3x5.
	Font string

	// Transparent draws text without painting glyph backgrounds.
	Transparent bool

	// ConsoleLines is the height of the console in text lines; 0 means 4.
	ConsoleLines int
}

var ErrScreenTooSmall = errors.New("app: screen too small for the demo")

const (
	minWidth  = 160
	minHeight = 120

	ticksPerSecond = 1000
	maxInputShown  = 8
)

type demo struct {
	h    hal.HAL
	cfg  Config
	r    *gfx.Renderer
	font *lwfont.Font
	log  hal.Logger
	con  *console.Console

	w, ht     int16
	statusTop int16
	status    text.Writer

	ticks   uint64
	seconds uint64
	frames  uint64
	led     bool
	input   []rune
	dirty   bool
}

// New starts the demo with the default config and returns its step
// function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run starts the demo and steps it forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

// NewWithConfig draws the initial screen and returns the step function the
// runner calls once per frame. Setup errors are returned by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	d, err := newDemo(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("app: " + err.Error())
		}
		return func() error { return err }
	}
	return d.step
}

// RunWithConfig steps the demo at roughly 60 Hz until a step fails, then
// shows the error on screen and halts.
func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := safeStep(step); err != nil {
			showPanic(h, err)
			select {}
		}
		time.Sleep(16 * time.Millisecond)
	}
}

func newDemo(h hal.HAL, cfg Config) (*demo, error) {
	name := cfg.Font
	if name == "" {
		name = "tiny3x5"
	}
	f, err := fonts.ByName(name)
	if err != nil {
		return nil, err
	}
	if cfg.ConsoleLines <= 0 {
		cfg.ConsoleLines = 4
	}

	disp := h.Display()
	if disp == nil {
		return nil, hal.ErrNotImplemented
	}
	w, ht := disp.Size()
	if w < minWidth || ht < minHeight {
		return nil, fmt.Errorf("%w: %dx%d, need %dx%d", ErrScreenTooSmall, w, ht, minWidth, minHeight)
	}

	d := &demo{
		h:    h,
		cfg:  cfg,
		r:    gfx.New(disp).WithLogger(h.Logger()),
		font: f,
		w:    w,
		ht:   ht,
	}

	conH := int16(cfg.ConsoleLines) * int16(f.Height)
	conTop := ht - conH - 1
	d.statusTop = conTop - int16(f.Height) - 3
	if d.statusTop < int16(f.Height)*6 {
		return nil, fmt.Errorf("%w: %d console lines of %s", ErrScreenTooSmall, cfg.ConsoleLines, f.Family)
	}

	if err := d.drawScene(); err != nil {
		return nil, err
	}

	d.con, err = console.New(d.r, f, 1, conTop+1, w-2, conH)
	if err != nil {
		return nil, err
	}
	d.log = hal.MultiLogger(h.Logger(), d.con)

	d.status = text.Writer{
		R:           d.r,
		Brush:       gfx.Brush{FG: gfx.Green, BG: gfx.Black},
		Font:        f,
		Transparent: cfg.Transparent,
		Origin:      gfx.Pt(2, d.statusTop+1),
	}
	if err := d.drawStatus(); err != nil {
		return nil, err
	}
	d.log.WriteLineString(fmt.Sprintf("sgfx %s: %dx%d, font %s", buildinfo.Short(), w, ht, f.Family))
	return d, nil
}

func (d *demo) step() error {
	d.frames++
	d.drainTicks()
	d.drainKeys()

	if s := d.ticks / ticksPerSecond; s != d.seconds {
		d.seconds = s
		d.dirty = true
		d.blink()
		if s%10 == 0 {
			d.log.WriteLineString(fmt.Sprintf("uptime %ds", s))
		}
	}
	if !d.dirty {
		return nil
	}
	d.dirty = false
	return d.drawStatus()
}

func (d *demo) drainTicks() {
	t := d.h.Time()
	if t == nil {
		return
	}
	ch := t.Ticks()
	for {
		select {
		case seq, ok := <-ch:
			if !ok {
				return
			}
			d.ticks = seq
		default:
			return
		}
	}
}

func (d *demo) drainKeys() {
	kb := d.h.Keyboard()
	if kb == nil {
		return
	}
	ch := kb.Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			d.key(ev)
		default:
			return
		}
	}
}

func (d *demo) key(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	d.dirty = true
	switch ev.Code {
	case hal.KeyEnter:
		d.log.WriteLineString("> " + string(d.input))
		d.input = d.input[:0]
	case hal.KeyBackspace:
		if len(d.input) > 0 {
			d.input = d.input[:len(d.input)-1]
		}
	case hal.KeyEscape:
		d.con.Clear()
		d.input = d.input[:0]
	case hal.KeyUnknown:
		if ev.Rune >= 0x20 && ev.Rune != 0x7F {
			d.input = append(d.input, ev.Rune)
		}
	}
}

func (d *demo) blink() {
	led := d.h.LED()
	if led == nil {
		return
	}
	d.led = !d.led
	if d.led {
		led.High()
	} else {
		led.Low()
	}
}

// drawStatus repaints the status line. Glyph boxes are trimmed, so the line
// is cleared first even in opaque mode.
func (d *demo) drawStatus() error {
	bar := gfx.Brush{FG: gfx.Black, BG: gfx.Black}
	if err := d.r.DrawFilledRect(bar, gfx.Pt(1, d.statusTop), gfx.Pt(d.w-2, d.statusTop+int16(d.font.Height)+1)); err != nil {
		return err
	}
	in := d.input
	if len(in) > maxInputShown {
		in = in[len(in)-maxInputShown:]
	}
	d.status.Home()
	_, err := fmt.Fprintf(&d.status, "up %ds  frames %d  in %q", d.seconds, d.frames, string(in))
	if errors.Is(err, text.ErrTextTooLong) {
		d.status.Home()
		_, err = fmt.Fprintf(&d.status, "up %ds  frames %d", d.seconds, d.frames)
	}
	return err
}
