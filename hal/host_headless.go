//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	Screen ScreenConfig

	// Snapshot, if set, is a .png or .bmp path the screen is saved to when
	// the run ends.
	Snapshot string
}

// RunHeadless drives the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	return runHeadless(ctx, newApp, cfg, os.Stdout)
}

func runHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig, out io.Writer) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h, err := newHost(cfg.Screen, out)
	if err != nil {
		return err
	}
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	err = loop(ctx, h, step, t.C, cfg)
	h.logStats()
	if cfg.Snapshot != "" {
		if serr := WriteSnapshot(cfg.Snapshot, h.Snapshot()); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func loop(ctx context.Context, h *hostHAL, step func() error, tc <-chan time.Time, cfg HeadlessConfig) error {
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tc:
			h.t.step(now)
			if step != nil {
				for i := 0; i < cfg.StepBudget; i++ {
					if err := step(); err != nil {
						return err
					}
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
