package gfx

import (
	"errors"
	"image/color"
	"testing"

	"tinygo.org/x/drivers"
)

func TestRegionFillRectangleClips(t *testing.T) {
	d := newFakeDisplay(32, 32)
	reg := New(d).Region(4, 4, 10, 10)

	if err := reg.FillRectangle(-2, -2, 5, 5, color.RGBA{R: 255, A: 255}); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	if n := d.count(Red); n != 9 {
		t.Fatalf("filled %d pixels, want 9", n)
	}
	if d.at(4, 4) != Red || d.at(6, 6) != Red || d.at(7, 7) == Red || d.at(3, 3) == Red {
		t.Fatal("fill escaped the region")
	}

	before := d.windows
	if err := reg.FillRectangle(12, 0, 4, 4, color.RGBA{A: 255}); err != nil {
		t.Fatalf("FillRectangle outside: %v", err)
	}
	if d.windows != before {
		t.Fatal("fully clipped fill touched the display")
	}
}

func TestRegionSetPixel(t *testing.T) {
	d := newFakeDisplay(32, 32)
	reg := New(d).Region(28, 28, 10, 10)
	if w, h := reg.Size(); w != 4 || h != 4 {
		t.Fatalf("region size %dx%d, want 4x4", w, h)
	}

	reg.SetPixel(1, 2, color.RGBA{B: 255, A: 255})
	reg.SetPixel(4, 0, color.RGBA{B: 255, A: 255})
	reg.SetPixel(-1, 0, color.RGBA{B: 255, A: 255})
	if d.at(29, 30) != Blue {
		t.Fatalf("pixel (29,30) = %#04x, want blue", d.at(29, 30))
	}
	if n := d.count(Blue); n != 1 {
		t.Fatalf("%d pixels set, want 1", n)
	}
}

func TestDisplayerRotation(t *testing.T) {
	reg := New(newFakeDisplay(8, 8)).Displayer()
	if err := reg.SetRotation(drivers.Rotation0); err != nil {
		t.Fatalf("Rotation0: %v", err)
	}
	if err := reg.SetRotation(drivers.Rotation90); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Rotation90 err = %v, want ErrNotImplemented", err)
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, Red, Green, Blue, RGB(0x12, 0x34, 0x56)} {
		if got := ColorFromRGBA(c.RGBA()); got != c {
			t.Fatalf("ColorFromRGBA(%#04x.RGBA()) = %#04x", c, got)
		}
	}
	if hi, lo := RGB(255, 0, 0).Bytes(); hi != 0xF8 || lo != 0x00 {
		t.Fatalf("red bytes = %#02x %#02x", hi, lo)
	}
}
