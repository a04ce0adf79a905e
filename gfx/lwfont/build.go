package lwfont

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/tinyfont"

	"sgfx/gfx"
)

// ASCII returns the printable ASCII range, space to tilde.
func ASCII() []rune {
	out := make([]rune, 0, 0x7F-0x20)
	for r := rune(0x20); r < 0x7F; r++ {
		out = append(out, r)
	}
	return out
}

// bitmap is one rendered glyph before packing. Offsets are relative to the
// top left corner of the line.
type bitmap struct {
	r       rune
	advance int
	offX    int
	offY    int
	w, h    int
	pix     []bool
}

func (b *bitmap) at(x, y int) bool { return b.pix[y*b.w+x] }

// trim shrinks the box to its lit pixels. A glyph without lit pixels ends
// up empty.
func (b *bitmap) trim() {
	minX, minY, maxX, maxY := b.w, b.h, -1, -1
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if !b.at(x, y) {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < 0 {
		b.w, b.h, b.pix = 0, 0, nil
		return
	}
	w, h := maxX-minX+1, maxY-minY+1
	pix := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = b.at(minX+x, minY+y)
		}
	}
	b.offX += minX
	b.offY += minY
	b.w, b.h, b.pix = w, h, pix
}

// pack stacks the glyphs vertically into one atlas whose width is a
// multiple of 8, so that the last atlas byte is always whole.
func pack(f *Font, glyphs []bitmap) (*Font, error) {
	width, height := 8, 0
	for i := range glyphs {
		g := &glyphs[i]
		g.trim()
		if g.w*g.h > gfx.MaxExtractPixels {
			return nil, fmt.Errorf("font %s: %q box %dx%d: %w", f.Family, g.r, g.w, g.h, ErrGlyphTooLarge)
		}
		if g.advance < 0 || g.advance > 0xFF || g.offX < 0 || g.offX > 0xFF || g.offY < 0 || g.offY > 0xFF {
			return nil, fmt.Errorf("font %s: %q metrics out of range (advance %d, offset %d,%d)", f.Family, g.r, g.advance, g.offX, g.offY)
		}
		width = max(width, (g.w+7)&^7)
		height += g.h
	}
	if height > 0xFFFF {
		return nil, fmt.Errorf("font %s: atlas height %d out of range", f.Family, height)
	}

	f.Atlas = gfx.NewPixmap(uint16(width), uint16(max(height, 1)), false)
	f.Chars = make([]CharMap, 0, len(glyphs))
	y := 0
	for _, g := range glyphs {
		def := CharDef{
			Advance: uint8(g.advance),
			OffsetX: uint8(g.offX),
			OffsetY: uint8(g.offY),
		}
		if g.w > 0 {
			def.RectY = uint16(y)
			def.RectW = uint8(g.w)
			def.RectH = uint8(g.h)
			for j := 0; j < g.h; j++ {
				for i := 0; i < g.w; i++ {
					f.Atlas.Set(i, y+j, g.at(i, j))
				}
			}
			y += g.h
		}
		f.Chars = append(f.Chars, CharMap{Key: g.r, Def: def})
	}
	return f, f.Validate()
}

// FromFonter renders runes of a tinyfont font into an atlas font. Runes the
// font does not know are left out.
func FromFonter(src tinyfont.Fonter, runes []rune, family string, size uint8) (*Font, error) {
	baseline := 0
	for _, r := range runes {
		info := src.GetGlyph(r).Info()
		baseline = max(baseline, -int(info.YOffset))
	}
	if baseline > 0xFF {
		return nil, fmt.Errorf("font %s: baseline %d out of range", family, baseline)
	}

	glyphs := make([]bitmap, 0, len(runes))
	for _, r := range runes {
		gl := src.GetGlyph(r)
		info := gl.Info()
		if info.Rune != r || (info.Width == 0 && info.Height == 0 && info.XAdvance == 0) {
			continue
		}
		m := newMask(int(info.Width), int(info.Height))
		gl.Draw(m, -int16(info.XOffset), -int16(info.YOffset), color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		g := bitmap{
			r:       r,
			advance: int(info.XAdvance),
			offX:    int(info.XOffset),
			offY:    baseline + int(info.YOffset),
			w:       m.w,
			h:       m.h,
			pix:     m.pix,
		}
		clipNegative(&g)
		glyphs = append(glyphs, g)
	}
	return pack(&Font{
		Family:   family,
		Style:    "Regular",
		Size:     size,
		Height:   src.GetYAdvance(),
		Baseline: uint8(baseline),
	}, glyphs)
}

// FromFace renders runes of an x/image face into an atlas font. Mask
// pixels with at least half coverage are "on".
func FromFace(face font.Face, runes []rune, family string, size uint8) (*Font, error) {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := m.Height.Ceil()
	if ascent < 0 || ascent > 0xFF || height <= 0 || height > 0xFF {
		return nil, fmt.Errorf("font %s: metrics out of range (ascent %d, height %d)", family, ascent, height)
	}

	glyphs := make([]bitmap, 0, len(runes))
	for _, r := range runes {
		dr, alpha, mp, adv, ok := face.Glyph(fixed.P(0, ascent), r)
		if !ok || alpha == nil {
			continue
		}
		g := bitmap{
			r:       r,
			advance: adv.Round(),
			offX:    dr.Min.X,
			offY:    dr.Min.Y,
			w:       dr.Dx(),
			h:       dr.Dy(),
		}
		g.pix = make([]bool, g.w*g.h)
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				_, _, _, a := alpha.At(mp.X+x, mp.Y+y).RGBA()
				g.pix[y*g.w+x] = a >= 0x8000
			}
		}
		clipNegative(&g)
		glyphs = append(glyphs, g)
	}
	return pack(&Font{
		Family:   family,
		Style:    "Regular",
		Size:     size,
		Height:   uint8(height),
		Baseline: uint8(ascent),
	}, glyphs)
}

// clipNegative drops the part of a glyph that hangs left of or above the
// line box.
func clipNegative(g *bitmap) {
	dx, dy := max(-g.offX, 0), max(-g.offY, 0)
	if dx == 0 && dy == 0 {
		return
	}
	w, h := max(g.w-dx, 0), max(g.h-dy, 0)
	pix := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = g.at(dx+x, dy+y)
		}
	}
	g.offX += dx
	g.offY += dy
	g.w, g.h, g.pix = w, h, pix
}

// mask is a drivers.Displayer that records lit pixels of one glyph.
type mask struct {
	w, h int
	pix  []bool
}

func newMask(w, h int) *mask {
	return &mask{w: w, h: h, pix: make([]bool, w*h)}
}

func (m *mask) Size() (x, y int16) { return int16(m.w), int16(m.h) }

func (m *mask) SetPixel(x, y int16, c color.RGBA) {
	if !image.Pt(int(x), int(y)).In(image.Rect(0, 0, m.w, m.h)) {
		return
	}
	m.pix[int(y)*m.w+int(x)] = c.A != 0
}

func (m *mask) Display() error { return nil }
