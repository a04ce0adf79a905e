package lwfont

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"sgfx/gfx"
)

type fakeGlyph struct {
	info tinyfont.GlyphInfo
	rows []string
}

func (g fakeGlyph) Info() tinyfont.GlyphInfo { return g.info }

func (g fakeGlyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	for j, row := range g.rows {
		for i, ch := range row {
			if ch == '#' {
				d.SetPixel(x+int16(g.info.XOffset)+int16(i), y+int16(g.info.YOffset)+int16(j), c)
			}
		}
	}
}

type fakeFonter map[rune]fakeGlyph

func (f fakeFonter) GetGlyph(r rune) tinyfont.Glypher {
	if g, ok := f[r]; ok {
		return g
	}
	return fakeGlyph{}
}

func (f fakeFonter) GetYAdvance() uint8 { return 8 }

var fakeFont = fakeFonter{
	'A': {
		info: tinyfont.GlyphInfo{Rune: 'A', Width: 3, Height: 5, XAdvance: 4, XOffset: 0, YOffset: -5},
		rows: []string{".#.", "#.#", "###", "#.#", "#.#"},
	},
	'g': {
		info: tinyfont.GlyphInfo{Rune: 'g', Width: 3, Height: 5, XAdvance: 4, XOffset: 0, YOffset: -3},
		rows: []string{"###", "#.#", "###", "..#", "##."},
	},
	' ': {
		info: tinyfont.GlyphInfo{Rune: ' ', XAdvance: 3},
	},
}

// render draws s through the tinyfont view of f onto a small mask.
func render(f tinyfont.Fonter, s string) *mask {
	m := newMask(32, 16)
	tinyfont.WriteLine(m, f, 0, 6, s, color.RGBA{A: 0xFF})
	return m
}

func TestFromFonter(t *testing.T) {
	f, err := FromFonter(fakeFont, []rune("A g?"), "Fake", 5)
	if err != nil {
		t.Fatalf("FromFonter: %v", err)
	}
	if f.Height != 8 || f.Baseline != 5 {
		t.Fatalf("height %d baseline %d, want 8 and 5", f.Height, f.Baseline)
	}
	if got := string(f.Runes()); got != "A g" {
		t.Fatalf("runes = %q, unknown runes should be dropped", got)
	}

	g, _ := f.Resolve('g')
	if g.OffsetY != 2 || g.Advance != 4 || g.RectW != 3 || g.RectH != 5 {
		t.Fatalf("g = %+v", g)
	}
	if sp, _ := f.Resolve(' '); !sp.Empty() || sp.Advance != 3 {
		t.Fatalf("space = %+v", sp)
	}

	var s gfx.Scratch
	for _, r := range []rune{'A', 'g'} {
		p, _, ok, err := f.Glyph(&s, r)
		if err != nil || !ok {
			t.Fatalf("Glyph(%q): ok=%v err=%v", r, ok, err)
		}
		for y, row := range fakeFont[r].rows {
			for x, c := range row {
				if p.At(x, y) != (c == '#') {
					t.Fatalf("%q pixel (%d,%d) differs from source", r, x, y)
				}
			}
		}
	}
}

func TestFonterViewMatchesSource(t *testing.T) {
	f, err := FromFonter(fakeFont, []rune("A g"), "Fake", 5)
	if err != nil {
		t.Fatalf("FromFonter: %v", err)
	}
	view := f.Fonter()
	if view.GetYAdvance() != 8 {
		t.Fatalf("y advance %d", view.GetYAdvance())
	}
	for _, r := range []rune("A g") {
		got, want := view.GetGlyph(r).Info(), fakeFont[r].info
		if got.XAdvance != want.XAdvance || got.Width != want.Width || got.Height != want.Height ||
			got.XOffset != want.XOffset || got.YOffset != want.YOffset {
			t.Fatalf("%q info = %+v, want %+v", r, got, want)
		}
	}
	if info := view.GetGlyph('?').Info(); info.XAdvance != 0 || info.Width != 0 {
		t.Fatalf("unknown rune info = %+v", info)
	}

	a, b := render(fakeFont, "Ag A"), render(view, "Ag A")
	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			t.Fatalf("pixel %d,%d differs between source and atlas font", i%a.w, i/a.w)
		}
	}
	if _, w := tinyfont.LineWidth(view, "Ag A"); w != 4+4+3+4 {
		t.Fatalf("LineWidth = %d", w)
	}
}

func TestFromFace(t *testing.T) {
	face := basicfont.Face7x13
	f, err := FromFace(face, ASCII(), "Basic", 13)
	if err != nil {
		t.Fatalf("FromFace: %v", err)
	}
	if f.Height != 13 || f.Baseline != 11 {
		t.Fatalf("height %d baseline %d", f.Height, f.Baseline)
	}
	if len(f.Chars) != len(ASCII()) {
		t.Fatalf("%d glyphs, want %d", len(f.Chars), len(ASCII()))
	}
	if sp, _ := f.Resolve(' '); !sp.Empty() || sp.Advance != 7 {
		t.Fatalf("space = %+v", sp)
	}

	var s gfx.Scratch
	for _, r := range []rune("AgQ0~") {
		p, def, ok, err := f.Glyph(&s, r)
		if err != nil || !ok {
			t.Fatalf("Glyph(%q): ok=%v err=%v", r, ok, err)
		}
		if def.Advance != 7 {
			t.Fatalf("%q advance %d", r, def.Advance)
		}
		dr, alpha, mp, _, _ := face.Glyph(fixed.P(0, 11), r)
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			for x := dr.Min.X; x < dr.Max.X; x++ {
				_, _, _, a := alpha.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
				got := p.At(x-int(def.OffsetX), y-int(def.OffsetY))
				if got != (a >= 0x8000) {
					t.Fatalf("%q pixel (%d,%d) = %v, face says %v", r, x, y, got, a >= 0x8000)
				}
			}
		}
	}
}
