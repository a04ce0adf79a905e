//go:build !tinygo && cgo

package hal

import (
	"image"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"sgfx/internal/buildinfo"
)

// RunWindow opens a desktop window showing the simulated LCD and forwards
// keyboard input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, screen ScreenConfig, scale int) error {
	h, err := newHost(screen, os.Stdout)
	if err != nil {
		return err
	}
	if scale <= 0 {
		scale = 2
	}
	step := newApp(h)

	w, ht := h.lcd.Size()
	g := &hostGame{h: h, step: step, w: int(w), ht: int(ht)}
	ebiten.SetWindowTitle("sgfx (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(g.w*scale, g.ht*scale)
	ebiten.SetTPS(60)
	err = ebiten.RunGame(g)
	h.logStats()
	return err
}

type hostGame struct {
	h      *hostHAL
	w, ht  int
	img    *image.RGBA
	lcdImg *ebiten.Image
	step   func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step(time.Now())
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.w, g.ht))
		g.lcdImg = ebiten.NewImage(g.w, g.ht)
	}
	g.h.lcd.SnapshotInto(g.img.Pix)
	g.lcdImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.lcdImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.ht
}
