// Package lwfont holds lightweight atlas fonts: every glyph is a box inside
// one shared 1bpp pixmap, described by a small per-character table.
//
// Font tables are meant to be compiled-in constants (see cmd/mkfont) or
// built once at startup from a tinyfont.Fonter or an x/image font.Face.
package lwfont

import (
	"errors"
	"fmt"

	"sgfx/gfx"
)

var (
	ErrDuplicateChar = errors.New("lwfont: duplicate character")
	ErrGlyphOutside  = errors.New("lwfont: glyph box outside atlas")
	ErrGlyphTooLarge = errors.New("lwfont: glyph larger than extraction limit")
)

// CharDef describes one glyph.
//
// The glyph box (RectX, RectY, RectW, RectH) is a region of the font atlas.
// It is drawn at cursor + (OffsetX, OffsetY), where the cursor is the top
// left corner of the line, and the cursor then moves right by Advance.
type CharDef struct {
	Advance uint8
	OffsetX uint8
	OffsetY uint8
	RectX   uint16
	RectY   uint16
	RectW   uint8
	RectH   uint8
}

// Empty reports whether the glyph has no pixels, like a space.
func (d CharDef) Empty() bool { return d.RectW == 0 || d.RectH == 0 }

// CharMap binds a code point to its glyph.
type CharMap struct {
	Key rune
	Def CharDef
}

// Font is an atlas font.
//
// Height is the line height. Baseline is the distance from the top of the
// line to the baseline; it is only needed by the tinyfont view.
type Font struct {
	Family   string
	Style    string
	Size     uint8
	Height   uint8
	Baseline uint8
	Chars    []CharMap
	Atlas    gfx.Pixmap
}

// Resolve returns the glyph for r. The table is scanned linearly and the
// first match wins; ok is false when r is not in the font.
func (f *Font) Resolve(r rune) (def CharDef, ok bool) {
	for i := range f.Chars {
		if f.Chars[i].Key == r {
			return f.Chars[i].Def, true
		}
	}
	return CharDef{}, false
}

// Advance returns how far r moves the cursor, 0 for unknown runes.
func (f *Font) Advance(r rune) int {
	def, ok := f.Resolve(r)
	if !ok {
		return 0
	}
	return int(def.Advance)
}

// Measure returns the width of the widest line of s and the number of
// lines.
func (f *Font) Measure(s string) (width, lines int) {
	lines = 1
	x := 0
	for _, r := range s {
		switch r {
		case '\n':
			lines++
			x = 0
			continue
		case '\r':
			x = 0
			continue
		}
		x += f.Advance(r)
		if x > width {
			width = x
		}
	}
	return width, lines
}

// Runes returns the code points of the font in table order.
func (f *Font) Runes() []rune {
	out := make([]rune, len(f.Chars))
	for i := range f.Chars {
		out[i] = f.Chars[i].Key
	}
	return out
}

// Validate checks the table: keys are unique and every glyph box lies
// inside the atlas and is small enough to be extracted in one piece.
func (f *Font) Validate() error {
	if err := f.Atlas.Validate(); err != nil {
		return fmt.Errorf("font %s: %w", f.Family, err)
	}
	seen := make(map[rune]struct{}, len(f.Chars))
	for _, c := range f.Chars {
		if _, dup := seen[c.Key]; dup {
			return fmt.Errorf("font %s: %q: %w", f.Family, c.Key, ErrDuplicateChar)
		}
		seen[c.Key] = struct{}{}

		d := c.Def
		if d.Empty() {
			continue
		}
		if int(d.RectX)+int(d.RectW) > int(f.Atlas.Width) || int(d.RectY)+int(d.RectH) > int(f.Atlas.Height) {
			return fmt.Errorf("font %s: %q box %dx%d at (%d,%d) in %dx%d atlas: %w",
				f.Family, c.Key, d.RectW, d.RectH, d.RectX, d.RectY, f.Atlas.Width, f.Atlas.Height, ErrGlyphOutside)
		}
		if int(d.RectW)*int(d.RectH) > gfx.MaxExtractPixels {
			return fmt.Errorf("font %s: %q box %dx%d: %w", f.Family, c.Key, d.RectW, d.RectH, ErrGlyphTooLarge)
		}
	}
	return nil
}

// Glyph returns the pixels of r's glyph box as a standalone pixmap backed
// by s. It returns false for unknown runes and empty glyphs.
func (f *Font) Glyph(s *gfx.Scratch, r rune) (gfx.Pixmap, CharDef, bool, error) {
	def, ok := f.Resolve(r)
	if !ok || def.Empty() {
		return gfx.Pixmap{}, def, false, nil
	}
	p, err := gfx.Extract(s, f.Atlas, gfx.Pt(int16(def.RectX), int16(def.RectY)), uint16(def.RectW), uint16(def.RectH))
	if err != nil {
		return gfx.Pixmap{}, def, false, err
	}
	return p, def, true, nil
}
