package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"sgfx/fonts"
	"sgfx/gfx"
	"sgfx/hal"
)

// safeStep runs step, turning a panic into an error.
func safeStep(step func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("panic: %v", v)
		}
	}()
	return step()
}

// showPanic logs err and paints it black on white over the whole screen
// with the built-in font, wrapped to the screen width.
func showPanic(h hal.HAL, err error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("sgfx halted: " + err.Error())
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	r := gfx.New(disp)
	if r.Clear(gfx.Brush{BG: gfx.White}) != nil {
		return
	}

	f := fonts.Tiny3x5()
	fontWidth := int16(f.Advance('0'))
	fontHeight := int16(f.Height)
	d := r.Displayer()
	w, ht := d.Size()
	cols := max(w/fontWidth, 1)

	fg := color.RGBA{A: 0xFF}
	y := int16(0)
	for _, line := range append([]string{"sgfx halted:"}, strings.Split(err.Error(), "\n")...) {
		for len(line) > 0 {
			if y+fontHeight > ht {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, f.Fonter(), 0, y+int16(f.Baseline), chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i := 0
	for count := int16(0); i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
