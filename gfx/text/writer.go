package text

import (
	"sgfx/gfx"
	"sgfx/gfx/lwfont"
)

// Writer is an io.Writer that prints onto a renderer, keeping the cursor
// between calls. Each Write is laid out on its own, so a write longer than
// MaxTextBytes fails.
type Writer struct {
	R           *gfx.Renderer
	Brush       gfx.Brush
	Font        *lwfont.Font
	Transparent bool

	// Origin is where Home puts the cursor.
	Origin gfx.Point
	Cursor gfx.Point
}

func (w *Writer) Write(p []byte) (int, error) {
	if _, err := Print(w.R, w.Brush, &w.Cursor, w.Font, w.Transparent, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Home moves the cursor back to Origin.
func (w *Writer) Home() { w.Cursor = w.Origin }
