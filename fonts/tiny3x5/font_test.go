package tiny3x5

import (
	"bytes"
	"os"
	"testing"

	"sgfx/gfx/lwfont"
)

func TestGeneratedMatchesArt(t *testing.T) {
	src, err := os.Open("tiny3x5.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	art, err := lwfont.ParseArt(src)
	if err != nil {
		t.Fatalf("ParseArt: %v", err)
	}

	if art.Family != Font.Family || art.Height != Font.Height || art.Baseline != Font.Baseline {
		t.Fatalf("header %q/%d/%d, generated %q/%d/%d", art.Family, art.Height, art.Baseline, Font.Family, Font.Height, Font.Baseline)
	}
	if len(art.Chars) != len(Font.Chars) {
		t.Fatalf("art has %d glyphs, generated %d; run go generate", len(art.Chars), len(Font.Chars))
	}
	for i := range art.Chars {
		if art.Chars[i] != Font.Chars[i] {
			t.Fatalf("glyph %d: art %+v, generated %+v; run go generate", i, art.Chars[i], Font.Chars[i])
		}
	}
	if art.Atlas.Width != Font.Atlas.Width || art.Atlas.Height != Font.Atlas.Height || !bytes.Equal(art.Atlas.Data, Font.Atlas.Data) {
		t.Fatal("atlas differs; run go generate")
	}
}

func TestCoversASCII(t *testing.T) {
	if err := Font.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, r := range lwfont.ASCII() {
		if Font.Advance(r) != 4 {
			t.Fatalf("%q advance %d", r, Font.Advance(r))
		}
	}
	if w, lines := Font.Measure("AB\nC"); w != 8 || lines != 2 {
		t.Fatalf("Measure = %d, %d", w, lines)
	}
}
