//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"sgfx/app"
	"sgfx/fonts"
	"sgfx/hal"
)

func main() {
	var (
		hcfg  hal.HeadlessConfig
		cfg   app.Config
		scale int
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&hcfg.Snapshot, "snapshot", "", "Save the screen to this .png or .bmp file when a headless run ends.")
	flag.IntVar(&hcfg.Screen.Width, "width", hal.DefaultWidth, "LCD width in pixels.")
	flag.IntVar(&hcfg.Screen.Height, "height", hal.DefaultHeight, "LCD height in pixels.")
	flag.BoolVar(&hcfg.Screen.SPI, "spi", false, "Drive the simulated LCD through the controller command stream.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&cfg.Font, "font", "tiny3x5", "Font: "+strings.Join(fonts.Names(), ", ")+".")
	flag.BoolVar(&cfg.Transparent, "transparent", false, "Draw text without glyph backgrounds.")
	flag.IntVar(&cfg.ConsoleLines, "console-lines", 4, "Console height in text lines.")
	flag.Parse()

	if scale < 1 {
		fatalf("-scale must be at least 1")
	}
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(newApp, hcfg.Screen, scale); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "sgfx: "+format+"\n", args...)
	os.Exit(2)
}
