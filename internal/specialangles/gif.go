package specialangles

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveTurntableGIF writes a GIF with one frame per azimuth step over a full turn.
// delay is in 100ths of a second (e.g., 5 => 20 fps). Cancelling ctx stops
// between frames and leaves path untouched.
func SaveTurntableGIF(ctx context.Context, s *Scene, path string, frames, delay int, opts RenderOptions) error {
	if frames <= 0 {
		frames = Frames
	}
	if delay <= 0 {
		delay = GIFDelay
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}
	step := max(1, frames/10)
	for k := 0; k < frames; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if k%step == 0 {
			DebugLog("[GIF] %.2f%%", Real(k+1)*100/Real(frames))
		}
		o := opts
		o.AzimuthDeg = opts.AzimuthDeg + 360*Real(k)/Real(frames)
		rgba := RenderScene(s, o)

		// quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
