package specialangles

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorAxis     = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	colorCube     = color.RGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: 0xff}
	colorDiagonal = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorSphere   = color.RGBA{R: 0xd8, G: 0x2a, B: 0x2a, A: 0xff}
	colorText     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

var font = &proggy.TinySZ8pt7b

// Canvas is an NRGBA image that tinyfont can write on.
type Canvas struct {
	Img *image.NRGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Img: image.NewNRGBA(image.Rect(0, 0, w, h))}
	c.Fill(colorBG)
	return c
}

func (c *Canvas) Size() (x, y int16) {
	b := c.Img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), col)
}

// Display is a no-op: the image is the display.
func (c *Canvas) Display() error { return nil }

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(c.Img.Rect)) {
		return
	}
	p := c.Img.PixOffset(x, y)
	c.Img.Pix[p+0] = col.R
	c.Img.Pix[p+1] = col.G
	c.Img.Pix[p+2] = col.B
	c.Img.Pix[p+3] = col.A
}

func (c *Canvas) Fill(col color.RGBA) {
	pix := c.Img.Pix
	for p := 0; p+3 < len(pix); p += 4 {
		pix[p+0] = col.R
		pix[p+1] = col.G
		pix[p+2] = col.B
		pix[p+3] = col.A
	}
}

// Line draws with Bresenham; width > 1 stamps a square brush.
func (c *Canvas) Line(x0, y0, x1, y1, width int, col color.RGBA) {
	if width < 1 {
		width = 1
	}
	half := width / 2
	dx, dy := x1-x0, y1-y0
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		for oy := -half; oy < width-half; oy++ {
			for ox := -half; ox < width-half; ox++ {
				c.set(x0+ox, y0+oy, col)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Text writes s with its baseline at y.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(c, font, int16(x), int16(y), s, col)
}

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}
