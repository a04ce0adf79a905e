package lwfont

import (
	"errors"
	"strings"
	"testing"

	"sgfx/gfx"
)

const artSample = `# sample
family Sample
size 5
height 7
baseline 5
glyph A 4
.#.
#.#
###
#.#
#.#

glyph space 3

glyph U+002E 2 0 4
#

glyph - 4
...
###
...
`

func mustParse(t *testing.T, src string) *Font {
	t.Helper()
	f, err := ParseArt(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseArt: %v", err)
	}
	return f
}

func TestResolve(t *testing.T) {
	f := mustParse(t, artSample)
	for _, c := range f.Chars {
		def, ok := f.Resolve(c.Key)
		if !ok || def != c.Def {
			t.Fatalf("Resolve(%q) = %+v, %v; want %+v", c.Key, def, ok, c.Def)
		}
	}
	for _, r := range []rune{'B', 'a', 0, '\n', 'é'} {
		if _, ok := f.Resolve(r); ok {
			t.Fatalf("Resolve(%q) found a glyph", r)
		}
	}
	if f.Advance('Z') != 0 {
		t.Fatal("unknown rune has an advance")
	}

	dup := &Font{Chars: []CharMap{{Key: 'x', Def: CharDef{Advance: 1}}, {Key: 'x', Def: CharDef{Advance: 2}}}}
	if def, _ := dup.Resolve('x'); def.Advance != 1 {
		t.Fatalf("first match should win, got advance %d", def.Advance)
	}
}

func TestParseArt(t *testing.T) {
	f := mustParse(t, artSample)
	if f.Family != "Sample" || f.Size != 5 || f.Height != 7 || f.Baseline != 5 {
		t.Fatalf("header = %q size %d height %d baseline %d", f.Family, f.Size, f.Height, f.Baseline)
	}
	if got := string(f.Runes()); got != "A .-" {
		t.Fatalf("runes = %q", got)
	}

	space, _ := f.Resolve(' ')
	if !space.Empty() || space.Advance != 3 {
		t.Fatalf("space = %+v", space)
	}
	dot, _ := f.Resolve('.')
	if dot.OffsetX != 0 || dot.OffsetY != 4 || dot.RectW != 1 || dot.RectH != 1 {
		t.Fatalf("dot = %+v", dot)
	}
	// Blank rows are trimmed away and move the offset.
	dash, _ := f.Resolve('-')
	if dash.OffsetY != 1 || dash.RectW != 3 || dash.RectH != 1 {
		t.Fatalf("dash = %+v", dash)
	}

	var s gfx.Scratch
	p, def, ok, err := f.Glyph(&s, 'A')
	if err != nil || !ok {
		t.Fatalf("Glyph('A') ok=%v err=%v", ok, err)
	}
	want := []string{".#.", "#.#", "###", "#.#", "#.#"}
	if def.RectW != 3 || def.RectH != 5 {
		t.Fatalf("A box %dx%d", def.RectW, def.RectH)
	}
	for y, row := range want {
		for x, c := range row {
			if p.At(x, y) != (c == '#') {
				t.Fatalf("A pixel (%d,%d) = %v", x, y, p.At(x, y))
			}
		}
	}
	if _, _, ok, _ := f.Glyph(&s, ' '); ok {
		t.Fatal("space has pixels")
	}
}

func TestParseArtErrors(t *testing.T) {
	cases := map[string]string{
		"ragged":    "height 5\nglyph A 4\n#.#\n##\n",
		"bad rune":  "height 5\nglyph AB 4\n#\n",
		"no height": "glyph A 4\n#\n",
		"keyword":   "height 5\nwidth 4\n",
		"bad size":  "size 300\nheight 5\n",
	}
	for name, src := range cases {
		if _, err := ParseArt(strings.NewReader(src)); !errors.Is(err, ErrArtSyntax) {
			t.Fatalf("%s: err = %v, want ErrArtSyntax", name, err)
		}
	}
}

func TestMeasure(t *testing.T) {
	f := mustParse(t, artSample)
	w, lines := f.Measure("A A\n.-")
	if w != 4+3+4 || lines != 2 {
		t.Fatalf("Measure = %d, %d", w, lines)
	}
	if w, _ := f.Measure("AxA"); w != 8 {
		t.Fatalf("unknown rune measured, width %d", w)
	}
}

func TestValidate(t *testing.T) {
	f := mustParse(t, artSample)
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	dup := *f
	dup.Chars = append(append([]CharMap(nil), f.Chars...), f.Chars[0])
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateChar) {
		t.Fatalf("duplicate err = %v", err)
	}

	outside := *f
	outside.Chars = []CharMap{{Key: 'q', Def: CharDef{RectX: 6, RectW: 4, RectH: 1}}}
	if err := outside.Validate(); !errors.Is(err, ErrGlyphOutside) {
		t.Fatalf("outside err = %v", err)
	}

	big := Font{Atlas: gfx.NewPixmap(32, 32, false), Chars: []CharMap{{Key: 'q', Def: CharDef{RectW: 17, RectH: 16}}}}
	if err := big.Validate(); !errors.Is(err, ErrGlyphTooLarge) {
		t.Fatalf("too large err = %v", err)
	}

	short := Font{Atlas: gfx.Pixmap{Width: 16, Height: 16, Data: make([]byte, 3)}}
	if err := short.Validate(); !errors.Is(err, gfx.ErrShortPixmap) {
		t.Fatalf("short atlas err = %v", err)
	}
}
