// Package text lays out formatted strings with atlas fonts.
//
// Text is formatted into a fixed buffer first and only drawn when the whole
// result fits, so a failed call never leaves half a line on screen.
package text

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"sgfx/gfx"
	"sgfx/gfx/lwfont"
)

// MaxTextBytes is the capacity of the formatting buffer.
const MaxTextBytes = 256

var (
	ErrTextTooLong = errors.New("text: formatted text exceeds buffer")
	ErrFormat      = errors.New("text: bad format")
)

// buffer is a fixed-capacity io.Writer.
type buffer struct {
	b [MaxTextBytes]byte
	n int
}

func (w *buffer) Write(p []byte) (int, error) {
	if w.n+len(p) > len(w.b) {
		return 0, ErrTextTooLong
	}
	w.n += copy(w.b[w.n:], p)
	return len(p), nil
}

func (w *buffer) Bytes() []byte { return w.b[:w.n] }

// fmtError matches the markers fmt writes into its output for verb and
// argument mismatches: %!d(string=x), %!d(MISSING), %!(EXTRA int=1),
// %!(NOVERB), %!(BADWIDTH), %!(BADPREC) and %!(BADINDEX). A literal "%!"
// produced by "%%!" or by an argument is not one of them.
var fmtError = regexp.MustCompile(`%!(?:\pL\(|\((?:EXTRA |MISSING\)|NOVERB\)|BADWIDTH\)|BADPREC\)|BADINDEX\)))`)

// Printf formats according to format and draws the result with font f,
// starting at *cursor, which is the top left corner of the first line.
//
// Layout rules:
//   - '\n' moves down by f.Height and back to the starting x.
//   - '\r' moves back to the starting x.
//   - Unknown runes draw nothing and do not move the cursor.
//   - After each character, if the next one would cross the right screen
//     edge, the line is broken before it is drawn.
//   - A glyph that does not fit the screen is skipped; the cursor still
//     advances.
//
// *cursor is left where the next character would go. The result is the
// width of the widest line drawn, measured from the starting x.
//
// ErrTextTooLong is returned when the formatted text is longer than
// MaxTextBytes, ErrFormat when fmt flags a verb or argument mismatch.
// Nothing is drawn in either case.
func Printf(r *gfx.Renderer, b gfx.Brush, cursor *gfx.Point, f *lwfont.Font, transparent bool, format string, args ...any) (int, error) {
	var buf buffer
	if _, err := fmt.Fprintf(&buf, format, args...); err != nil {
		return 0, fmt.Errorf("format %q: %w", format, err)
	}
	if fmtError.Match(buf.Bytes()) {
		return 0, fmt.Errorf("format %q: %s: %w", format, buf.Bytes(), ErrFormat)
	}
	return layout(r, b, cursor, f, transparent, buf.Bytes())
}

// Print draws s like Printf draws its formatted output. s is not
// interpreted as a format.
func Print(r *gfx.Renderer, b gfx.Brush, cursor *gfx.Point, f *lwfont.Font, transparent bool, s string) (int, error) {
	var buf buffer
	if _, err := buf.Write([]byte(s)); err != nil {
		return 0, fmt.Errorf("%d bytes: %w", len(s), err)
	}
	return layout(r, b, cursor, f, transparent, buf.Bytes())
}

func layout(r *gfx.Renderer, b gfx.Brush, cursor *gfx.Point, f *lwfont.Font, transparent bool, s []byte) (int, error) {
	screenW, _ := r.Size()
	startX := cursor.X
	pos := *cursor
	widest := 0

	newline := func() {
		pos.X = startX
		pos.Y += int16(f.Height)
	}

	for i := 0; i < len(s); {
		c, size := utf8.DecodeRune(s[i:])
		i += size

		switch c {
		case '\n':
			newline()
			continue
		case '\r':
			pos.X = startX
			continue
		}

		def, ok := f.Resolve(c)
		if ok && !def.Empty() {
			at := pos.Add(gfx.Pt(int16(def.OffsetX), int16(def.OffsetY)))
			src := gfx.Pt(int16(def.RectX), int16(def.RectY))
			err := r.DrawPixmapRect(b, f.Atlas, transparent, at, src, uint16(def.RectW), uint16(def.RectH))
			if err != nil && !errors.Is(err, gfx.ErrNoFit) {
				*cursor = pos
				return widest, fmt.Errorf("glyph %q: %w", c, err)
			}
		}
		pos.X += int16(def.Advance)
		widest = max(widest, int(pos.X)-int(startX))

		if i < len(s) {
			next, _ := utf8.DecodeRune(s[i:])
			if next != '\n' && next != '\r' && int(pos.X)+f.Advance(next) > int(screenW) {
				newline()
			}
		}
	}

	*cursor = pos
	return widest, nil
}
