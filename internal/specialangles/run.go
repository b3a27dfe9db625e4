package specialangles

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// ShowFunc displays a rendered frame and returns when the display is closed.
type ShowFunc func(img image.Image, title string) error

// Run evaluates every configured side in order, printing each report to out.
// Right after the report of the visualized side the scene is rendered and, when
// enabled, written to PNG/GIF and handed to show.
func Run(ctx context.Context, cfg *Config, out io.Writer, show ShowFunc) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	for i, r := range cfg.Sides {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := Evaluate(r)
		if err != nil {
			return fmt.Errorf("side #%d: %w", i, err)
		}
		if i == 0 {
			err = Report(out, res)
		} else {
			err = ReportExample(out, i, res)
		}
		if err != nil {
			return err
		}
		if i == cfg.Visualize {
			if err := visualize(ctx, cfg, res, show); err != nil {
				return err
			}
		}
	}
	return nil
}

func visualize(ctx context.Context, cfg *Config, res Result, show ShowFunc) error {
	if !PNG && !GIF && !(Window && show != nil) {
		return nil
	}
	scene, err := NewScene(res)
	if err != nil {
		return err
	}
	opts := cfg.RenderOptions()
	start := time.Now()
	img := RenderScene(scene, opts)

	g, gctx := errgroup.WithContext(ctx)
	if PNG && cfg.PNGOut != "" {
		g.Go(func() error {
			if err := SavePNG(img, cfg.PNGOut); err != nil {
				return fmt.Errorf("save png: %w", err)
			}
			DebugLog("Saved PNG: %s", cfg.PNGOut)
			return nil
		})
	}
	if GIF && cfg.GIFOut != "" {
		g.Go(func() error {
			if err := SaveTurntableGIF(gctx, scene, cfg.GIFOut, cfg.Frames, cfg.GIFDelay, opts); err != nil {
				return fmt.Errorf("save gif: %w", err)
			}
			DebugLog("Saved animated GIF: %s", cfg.GIFOut)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	DebugLog("Visualization of r=%v took %s", res.R, time.Since(start))

	if Window && show != nil {
		return show(img, scene.Title)
	}
	return nil
}
