package fonts

import (
	"errors"
	"testing"

	"sgfx/gfx"
	"sgfx/gfx/lwfont"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		f, err := ByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := f.Validate(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if f.Height == 0 || f.Baseline == 0 || f.Baseline > f.Height {
			t.Fatalf("%s: height %d baseline %d", name, f.Height, f.Baseline)
		}
		for _, r := range "09AZaz!~ " {
			if _, ok := f.Resolve(r); !ok {
				t.Fatalf("%s: no %q", name, r)
			}
		}
		if f.Advance('0') == 0 {
			t.Fatalf("%s: '0' has no advance", name)
		}

		var s gfx.Scratch
		for _, r := range lwfont.ASCII() {
			if _, _, _, err := f.Glyph(&s, r); err != nil {
				t.Fatalf("%s: glyph %q: %v", name, r, err)
			}
		}
	}
	if _, err := ByName("nope"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("err = %v", err)
	}
}

func TestConvertedOnce(t *testing.T) {
	a, err := TomThumb()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := TomThumb()
	if a != b {
		t.Fatal("TomThumb converted twice")
	}
	basic, err := Basic7x13()
	if err != nil {
		t.Fatal(err)
	}
	if basic.Advance('M') != 7 || basic.Height != 13 {
		t.Fatalf("basic7x13: advance %d height %d", basic.Advance('M'), basic.Height)
	}
}
