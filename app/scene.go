package app

import (
	"fmt"

	"sgfx/gfx"
	"sgfx/gfx/text"
	"sgfx/internal/buildinfo"
)

const paragraph = "The quick brown fox jumps over the lazy dog. " +
	"Every glyph is cut from one atlas and streamed to the panel " +
	"in 1 KiB chunks.\nSecond line after a newline."

// drawScene paints everything that does not change.
func (d *demo) drawScene() error {
	if err := d.r.Clear(gfx.Brush{BG: gfx.Black}); err != nil {
		return err
	}

	hdr := int16(d.font.Height) + 3
	if err := d.r.DrawFilledRect(gfx.Brush{FG: gfx.White, BG: gfx.Blue}, gfx.Pt(0, 0), gfx.Pt(d.w-1, hdr)); err != nil {
		return err
	}
	at := gfx.Pt(3, 2)
	if _, err := text.Printf(d.r, gfx.Brush{FG: gfx.White, BG: gfx.Blue}, &at, d.font, d.cfg.Transparent,
		"sgfx %s  %s %d  %dx%d", buildinfo.Short(), d.font.Family, d.font.Size, d.w, d.ht); err != nil {
		return err
	}

	frame := gfx.Brush{FG: gfx.RGB(0x60, 0x60, 0x60)}
	if err := d.r.DrawRect(frame, gfx.Pt(0, hdr+1), gfx.Pt(d.w-1, d.statusTop-2)); err != nil {
		return err
	}

	y0 := hdr + 3
	if err := d.drawShapes(y0); err != nil {
		return err
	}
	if err := d.drawBitmaps(y0); err != nil {
		return err
	}

	at = gfx.Pt(4, y0+28)
	_, err := text.Print(d.r, gfx.Brush{FG: gfx.White, BG: gfx.Black}, &at, d.font, d.cfg.Transparent, paragraph)
	return err
}

func (d *demo) drawShapes(y0 int16) error {
	b := gfx.Brush{FG: gfx.Red}
	if err := d.r.DrawLine(b, gfx.Pt(4, y0), gfx.Pt(44, y0+23)); err != nil {
		return err
	}
	if err := d.r.DrawLine(b, gfx.Pt(4, y0+23), gfx.Pt(44, y0)); err != nil {
		return err
	}
	if err := d.r.DrawHLine(gfx.Brush{FG: gfx.Green}, gfx.Pt(4, y0+11), 41); err != nil {
		return err
	}
	return d.r.DrawVLine(gfx.Brush{FG: gfx.Green}, gfx.Pt(24, y0), 24)
}

func (d *demo) drawBitmaps(y0 int16) error {
	checker := gfx.NewPixmap(24, 24, false)
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			checker.Set(x, y, (x/4+y/4)%2 == 0)
		}
	}
	if err := d.r.DrawPixmap(gfx.Brush{FG: gfx.RGB(0xFF, 0xD0, 0x00), BG: gfx.RGB(0, 0, 0x60)}, gfx.Pt(50, y0), checker, false); err != nil {
		return err
	}
	if err := d.r.DrawPixmap(gfx.Brush{FG: gfx.Red}, gfx.Pt(78, y0), checker, true); err != nil {
		return err
	}

	if err := d.r.DrawRGB565(gfx.Pt(106, y0), 32, 24, gradient(32, 24)); err != nil {
		return err
	}

	// A slice of the glyph atlas, as stored.
	atlas := d.font.Atlas
	rows := min(int(atlas.Height), gfx.MaxExtractPixels/int(atlas.Width), 24)
	if err := d.r.DrawPixmapRect(gfx.Brush{FG: gfx.White, BG: gfx.RGB(0x30, 0x30, 0x30)}, atlas, false,
		gfx.Pt(142, y0), gfx.Pt(0, 0), atlas.Width, uint16(rows)); err != nil {
		return fmt.Errorf("atlas slice: %w", err)
	}
	return nil
}

// gradient returns w x h big-endian RGB565 pixels fading red to the right
// and blue downwards.
func gradient(w, h int) []byte {
	buf := make([]byte, 0, w*h*2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := gfx.RGB(uint8(x*255/(w-1)), 0x40, uint8(y*255/(h-1)))
			hi, lo := c.Bytes()
			buf = append(buf, hi, lo)
		}
	}
	return buf
}
