package lwfont

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter returns a tinyfont view of f, for tinyfont.WriteLine and tinyterm.
// Unknown runes map to an empty glyph with zero advance.
func (f *Font) Fonter() tinyfont.Fonter { return fonter{f: f} }

type fonter struct {
	f *Font
}

func (v fonter) GetGlyph(r rune) tinyfont.Glypher {
	def, ok := v.f.Resolve(r)
	if !ok {
		return glyph{f: v.f, r: r}
	}
	return glyph{f: v.f, r: r, def: def}
}

func (v fonter) GetYAdvance() uint8 { return v.f.Height }

type glyph struct {
	f   *Font
	r   rune
	def CharDef
}

func (g glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    g.def.RectW,
		Height:   g.def.RectH,
		XAdvance: g.def.Advance,
		XOffset:  int8(g.def.OffsetX),
		YOffset:  int8(int(g.def.OffsetY) - int(g.f.Baseline)),
	}
}

// Draw plots the glyph with x, y on the baseline, the tinyfont convention.
func (g glyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	if g.def.Empty() {
		return
	}
	info := g.Info()
	x0 := x + int16(info.XOffset)
	y0 := y + int16(info.YOffset)
	at := g.f.Atlas
	for j := 0; j < int(g.def.RectH); j++ {
		for i := 0; i < int(g.def.RectW); i++ {
			if at.At(int(g.def.RectX)+i, int(g.def.RectY)+j) {
				d.SetPixel(x0+int16(i), y0+int16(j), c)
			}
		}
	}
}

var _ tinyfont.Fonter = fonter{}
