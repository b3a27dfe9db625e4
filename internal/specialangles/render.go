package specialangles

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// RenderOptions controls a single frame.
type RenderOptions struct {
	Size         int
	AzimuthDeg   Real
	ElevationDeg Real
}

// DefaultRenderOptions returns the built-in view.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Size: ImageSize, AzimuthDeg: AzimuthDeg, ElevationDeg: ElevationDeg}
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Size <= 0 {
		o.Size = ImageSize
	}
	return o
}

type axis struct {
	label string
	end   r3.Vec
}

// sceneAxes run from the origin a bit past the sphere.
func sceneAxes(s *Scene) []axis {
	reach := 1.5 * s.Cube.Side
	return []axis{
		{"X", r3.Vec{X: reach}},
		{"Y", r3.Vec{Y: reach}},
		{"Z", r3.Vec{Z: reach}},
	}
}

// scenePoints returns everything the camera must keep in frame.
func scenePoints(s *Scene) []r3.Vec {
	pts := make([]r3.Vec, 0, 11+SphereNU*SphereNV)
	pts = append(pts, s.Cube.Vertices[:]...)
	for _, a := range sceneAxes(s) {
		pts = append(pts, a.end)
	}
	for _, row := range s.Sphere.Grid {
		pts = append(pts, row...)
	}
	return pts
}

// RenderScene draws the scene: axes, sphere wireframe, cube edges, the half
// diagonal, the axis labels and the title.
func RenderScene(s *Scene, opts RenderOptions) *image.NRGBA {
	opts = opts.withDefaults()
	cam := NewCamera(opts.AzimuthDeg, opts.ElevationDeg, opts.Size)
	cam.Fit(scenePoints(s))
	cv := NewCanvas(opts.Size, opts.Size)

	draw := func(segs []Segment, width int, col color.RGBA) {
		for _, sg := range segs {
			x0, y0, _ := cam.Project(sg.A)
			x1, y1, _ := cam.Project(sg.B)
			cv.Line(x0, y0, x1, y1, width, col)
		}
	}

	axes := sceneAxes(s)
	origin := r3.Vec{}
	for _, a := range axes {
		draw([]Segment{{A: origin, B: a.end}}, 1, colorAxis)
	}

	cubeSegs, diagSegs, sphereSegs := s.Segments()
	draw(sphereSegs, 1, colorSphere)
	draw(cubeSegs, 2, colorCube)
	draw(diagSegs, 3, colorDiagonal)
	DebugLogOnce("Scene segments: cube=%d diagonal=%d sphere=%d", len(cubeSegs), len(diagSegs), len(sphereSegs))

	for _, a := range axes {
		x, y, _ := cam.Project(a.end)
		cv.Text(x+4, y-4, a.label, colorText)
	}
	tw := TextWidth(s.Title)
	cv.Text(clampInt((opts.Size-tw)/2, 2, opts.Size), 16, s.Title, colorText)
	DebugLog("Rendered %dx%d frame az=%.1f el=%.1f", opts.Size, opts.Size, opts.AzimuthDeg, opts.ElevationDeg)
	return cv.Img
}
