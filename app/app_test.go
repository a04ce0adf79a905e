package app

import (
	"errors"
	"strings"
	"testing"

	"sgfx/fonts"
	"sgfx/gfx"
	"sgfx/hal"
	"sgfx/hal/simlcd"
)

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *lineLog) has(prefix string) bool {
	for _, s := range l.lines {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

type countLED struct{ highs, lows int }

func (l *countLED) High() { l.highs++ }
func (l *countLED) Low()  { l.lows++ }

type fakeHAL struct {
	lcd   *simlcd.LCD
	log   *lineLog
	led   *countLED
	keys  chan hal.KeyEvent
	ticks chan uint64
}

func newFake(w, h int) *fakeHAL {
	return &fakeHAL{
		lcd:   simlcd.New(w, h),
		log:   &lineLog{},
		led:   &countLED{},
		keys:  make(chan hal.KeyEvent, 16),
		ticks: make(chan uint64, 16),
	}
}

func (f *fakeHAL) Logger() hal.Logger     { return f.log }
func (f *fakeHAL) LED() hal.LED           { return f.led }
func (f *fakeHAL) Display() gfx.Display   { return f.lcd }
func (f *fakeHAL) Keyboard() hal.Keyboard { return keyboard(f.keys) }
func (f *fakeHAL) Time() hal.Time         { return ticker(f.ticks) }

type keyboard chan hal.KeyEvent

func (k keyboard) Events() <-chan hal.KeyEvent { return k }

type ticker chan uint64

func (t ticker) Ticks() <-chan uint64 { return t }

func TestDemoStartsWithEveryFont(t *testing.T) {
	for _, name := range fonts.Names() {
		for _, transparent := range []bool{false, true} {
			h := newFake(hal.DefaultWidth, hal.DefaultHeight)
			step := NewWithConfig(h, Config{Font: name, Transparent: transparent})
			if err := step(); err != nil {
				t.Fatalf("%s transparent=%v: %v", name, transparent, err)
			}
			if !h.log.has("sgfx ") {
				t.Fatalf("%s: no start line in %q", name, h.log.lines)
			}
			if st := h.lcd.Stats(); st.Dropped != 0 {
				t.Fatalf("%s: %d windows dropped", name, st.Dropped)
			}
		}
	}
}

func TestDemoTicksDriveStatusAndLED(t *testing.T) {
	h := newFake(hal.DefaultWidth, hal.DefaultHeight)
	d, err := newDemo(h, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.step(); err != nil {
		t.Fatal(err)
	}
	if h.led.highs != 0 {
		t.Fatal("LED toggled before a second passed")
	}

	before := h.lcd.Stats().Windows
	h.ticks <- 500
	h.ticks <- 1000
	if err := d.step(); err != nil {
		t.Fatal(err)
	}
	if d.seconds != 1 || h.led.highs != 1 {
		t.Fatalf("seconds = %d, highs = %d", d.seconds, h.led.highs)
	}
	if h.lcd.Stats().Windows == before {
		t.Fatal("status line not redrawn")
	}

	h.ticks <- 2000
	if err := d.step(); err != nil {
		t.Fatal(err)
	}
	if h.led.lows != 1 {
		t.Fatalf("lows = %d", h.led.lows)
	}

	h.ticks <- 10000
	if err := d.step(); err != nil {
		t.Fatal(err)
	}
	if !h.log.has("uptime 10s") {
		t.Fatalf("no uptime line in %q", h.log.lines)
	}
}

func TestDemoKeys(t *testing.T) {
	h := newFake(hal.DefaultWidth, hal.DefaultHeight)
	d, err := newDemo(h, Config{})
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range []hal.KeyEvent{
		{Press: true, Rune: 'x'},
		{Press: true, Rune: 'y'},
		{Code: hal.KeyBackspace, Press: true},
		{Code: hal.KeyBackspace},
		{Code: hal.KeyEnter, Press: true},
	} {
		h.keys <- ev
	}
	if err := d.step(); err != nil {
		t.Fatal(err)
	}
	if !h.log.has("> x") || h.log.has("> xy") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if len(d.input) != 0 {
		t.Fatalf("input not reset: %q", string(d.input))
	}

	for i := 0; i < 20; i++ {
		h.keys <- hal.KeyEvent{Press: true, Rune: 'a' + rune(i)}
	}
	h.keys <- hal.KeyEvent{Press: true, Rune: 0x7F}
	if err := d.step(); err != nil {
		t.Fatal(err)
	}
	if len(d.input) != 20 {
		t.Fatalf("input = %q", string(d.input))
	}
	h.keys <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := d.step(); err != nil {
		t.Fatal(err)
	}
	if len(d.input) != 0 {
		t.Fatalf("escape left input %q", string(d.input))
	}
}

func TestDemoSetupErrors(t *testing.T) {
	h := newFake(hal.DefaultWidth, hal.DefaultHeight)
	if err := NewWithConfig(h, Config{Font: "nope"})(); !errors.Is(err, fonts.ErrUnknown) {
		t.Fatalf("err = %v, want fonts.ErrUnknown", err)
	}
	if !h.log.has("app: ") {
		t.Fatal("setup error not logged")
	}

	small := newFake(100, 80)
	if err := New(small)(); !errors.Is(err, ErrScreenTooSmall) {
		t.Fatalf("err = %v, want ErrScreenTooSmall", err)
	}

	crowded := newFake(minWidth, minHeight)
	if err := NewWithConfig(crowded, Config{Font: "basic7x13"})(); !errors.Is(err, ErrScreenTooSmall) {
		t.Fatalf("err = %v, want ErrScreenTooSmall", err)
	}
}

func TestSafeStepRecovers(t *testing.T) {
	err := safeStep(func() error { panic("boom") })
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v", err)
	}
	want := errors.New("plain")
	if err := safeStep(func() error { return want }); err != want {
		t.Fatalf("err = %v", err)
	}
}

func TestShowPanic(t *testing.T) {
	h := newFake(64, 48)
	showPanic(h, errors.New("boom\nsecond line that is long enough to wrap"))
	if !h.log.has("sgfx halted: boom") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if h.lcd.Pixel(63, 47) != gfx.White {
		t.Fatal("screen not cleared to white")
	}
	ink := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 64; x++ {
			if h.lcd.Pixel(x, y) == gfx.Black {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Fatal("no text drawn")
	}
}
