// Package viewer shows a rendered frame in a desktop window.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying img and blocks until it is closed.
func Show(img image.Image, title string) error {
	b := img.Bounds()
	g := &frameGame{src: img, w: b.Dx(), h: b.Dy()}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type frameGame struct {
	src   image.Image
	frame *ebiten.Image
	w, h  int
}

func (g *frameGame) Update() error { return nil }

func (g *frameGame) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.frame, nil)
}

func (g *frameGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
