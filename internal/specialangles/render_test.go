package specialangles

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func tinyScene(t *testing.T, r Real) *Scene {
	t.Helper()
	res, err := Evaluate(r)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewScene(res)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCameraTopView(t *testing.T) {
	// straight down: +X goes right, +Y goes up the screen
	cam := NewCamera(0, 90, 100)
	cam.Fit([]r3.Vec{{X: -1, Y: -1}, {X: 1, Y: 1}})
	x0, y0, _ := cam.Project(r3.Vec{})
	if x0 != 50 || y0 != 50 {
		t.Fatalf("pivot not centered: (%d,%d)", x0, y0)
	}
	xr, yr, _ := cam.Project(r3.Vec{X: 1})
	if xr <= x0 || yr != y0 {
		t.Fatalf("+X should go right: (%d,%d)", xr, yr)
	}
	xu, yu, _ := cam.Project(r3.Vec{Y: 1})
	if yu >= y0 || xu != x0 {
		t.Fatalf("+Y should go up: (%d,%d)", xu, yu)
	}
}

func TestCameraSideViewZUp(t *testing.T) {
	cam := NewCamera(0, 0, 100)
	cam.Fit([]r3.Vec{{Z: -1}, {Z: 1}, {X: -1}, {X: 1}})
	_, y0, _ := cam.Project(r3.Vec{})
	_, yz, _ := cam.Project(r3.Vec{Z: 1})
	if yz >= y0 {
		t.Fatalf("+Z should go up: %d vs %d", yz, y0)
	}
}

func TestCameraFitKeepsPointsInFrame(t *testing.T) {
	s := tinyScene(t, 3)
	cam := NewCamera(AzimuthDeg, ElevationDeg, 200)
	pts := scenePoints(s)
	cam.Fit(pts)
	for _, p := range pts {
		x, y, _ := cam.Project(p)
		if x < cam.Margin-1 || x > 200-cam.Margin+1 || y < cam.Margin-1 || y > 200-cam.Margin+1 {
			t.Fatalf("point %+v projected out of frame: (%d,%d)", p, x, y)
		}
	}
}

func TestCanvasLine(t *testing.T) {
	cv := NewCanvas(10, 10)
	red := color.RGBA{R: 255, A: 255}
	cv.Line(0, 0, 9, 9, 1, red)
	for i := 0; i < 10; i++ {
		if got := cv.Img.NRGBAAt(i, i); got.R != 255 || got.G != 0 {
			t.Fatalf("pixel (%d,%d) not drawn: %+v", i, i, got)
		}
	}
	if got := cv.Img.NRGBAAt(0, 9); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("background touched: %+v", got)
	}
	// out of bounds is clipped, not a panic
	cv.Line(-5, -5, 20, 3, 3, red)
	w, h := cv.Size()
	if w != 10 || h != 10 {
		t.Fatalf("size %dx%d", w, h)
	}
}

func TestCanvasText(t *testing.T) {
	cv := NewCanvas(60, 20)
	cv.Text(2, 14, "XYZ", colorText)
	if TextWidth("XYZ") <= 0 {
		t.Fatal("text width should be positive")
	}
	if countNot(cv.Img, colorBG) == 0 {
		t.Fatal("text left no pixels")
	}
}

func countNot(img *image.NRGBA, bg color.RGBA) int {
	n := 0
	for p := 0; p+3 < len(img.Pix); p += 4 {
		if img.Pix[p] != bg.R || img.Pix[p+1] != bg.G || img.Pix[p+2] != bg.B {
			n++
		}
	}
	return n
}

func TestRenderScene(t *testing.T) {
	s := tinyScene(t, 1)
	img := RenderScene(s, RenderOptions{Size: 160, AzimuthDeg: AzimuthDeg, ElevationDeg: ElevationDeg})
	if img.Bounds().Dx() != 160 || img.Bounds().Dy() != 160 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if countNot(img, colorBG) < 200 {
		t.Fatalf("too few drawn pixels: %d", countNot(img, colorBG))
	}
	var sawCube, sawSphere bool
	for y := 0; y < 160; y++ {
		for x := 0; x < 160; x++ {
			c := img.NRGBAAt(x, y)
			if c.R == colorCube.R && c.G == colorCube.G && c.B == colorCube.B {
				sawCube = true
			}
			if c.R == colorSphere.R && c.G == colorSphere.G && c.B == colorSphere.B {
				sawSphere = true
			}
		}
	}
	if !sawCube || !sawSphere {
		t.Fatalf("layers missing: cube=%v sphere=%v", sawCube, sawSphere)
	}
	// zero size falls back to the default frame
	if d := RenderScene(s, RenderOptions{}).Bounds().Dx(); d != ImageSize {
		t.Fatalf("default size %d", d)
	}
}

func TestSavePNG(t *testing.T) {
	s := tinyScene(t, 2)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(RenderScene(s, RenderOptions{Size: 64}), path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 {
		t.Fatalf("decoded width %d", img.Bounds().Dx())
	}
}

func TestSaveTurntableGIF(t *testing.T) {
	s := tinyScene(t, 1)
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := SaveTurntableGIF(context.Background(), s, path, 4, 5, RenderOptions{Size: 48}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 4 || g.Delay[0] != 5 {
		t.Fatalf("frames=%d delay=%v", len(g.Image), g.Delay)
	}
	if err := SaveTurntableGIF(context.Background(), s, filepath.Join(t.TempDir(), "missing", "x.gif"), 1, 1, RenderOptions{Size: 8}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestSaveTurntableGIFCancelled(t *testing.T) {
	s := tinyScene(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := SaveTurntableGIF(ctx, s, path, 4, 5, RenderOptions{Size: 16}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("gif written after cancel: %v", err)
	}
}
