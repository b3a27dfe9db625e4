package specialangles

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is an orthographic view: rotate around Z by the azimuth, then tilt
// around X by the elevation, drop the depth axis and fit into a square frame.
type Camera struct {
	Azimuth   Real // radians
	Elevation Real // radians
	Size      int  // frame side in pixels
	Margin    int

	rot    r3.Rotation
	tilt   r3.Rotation
	pivot  r3.Vec
	scale  Real
	offX   Real
	offY   Real
	fitted bool
}

// NewCamera builds a camera with angles in degrees.
func NewCamera(azimuthDeg, elevationDeg Real, size int) *Camera {
	if size <= 0 {
		size = ImageSize
	}
	c := &Camera{
		Azimuth:   deg2rad(azimuthDeg),
		Elevation: deg2rad(elevationDeg),
		Size:      size,
		Margin:    size / 10,
	}
	c.rot = r3.NewRotation(c.Azimuth, r3.Vec{Z: 1})
	// tilting the view up means rotating the world down around X
	c.tilt = r3.NewRotation(-(math.Pi/2 - c.Elevation), r3.Vec{X: 1})
	return c
}

// view maps a world point into camera space; X right, Y up, Z towards the viewer.
func (c *Camera) view(p r3.Vec) r3.Vec {
	return c.tilt.Rotate(c.rot.Rotate(r3.Sub(p, c.pivot)))
}

// Fit centers the points in the frame and scales them to fill it.
func (c *Camera) Fit(points []r3.Vec) {
	if len(points) == 0 {
		return
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	c.pivot = r3.Scale(1/Real(len(points)), sum)
	xs := make([]Real, len(points))
	ys := make([]Real, len(points))
	for i, p := range points {
		v := c.view(p)
		xs[i], ys[i] = v.X, v.Y
	}
	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	avail := Real(c.Size - 2*c.Margin)
	c.scale = avail / span
	c.offX = Real(c.Size)/2 - c.scale*(minX+maxX)/2
	c.offY = Real(c.Size)/2 + c.scale*(minY+maxY)/2
	c.fitted = true
	DebugLog("Camera fit: pivot=%+v scale=%.6g", c.pivot, c.scale)
}

// Project returns pixel coordinates (y grows downwards) and the depth.
func (c *Camera) Project(p r3.Vec) (x, y int, depth Real) {
	if !c.fitted {
		c.scale, c.offX, c.offY = 1, Real(c.Size)/2, Real(c.Size)/2
		c.fitted = true
	}
	v := c.view(p)
	x = int(math.Round(c.offX + c.scale*v.X))
	y = int(math.Round(c.offY - c.scale*v.Y))
	return x, y, v.Z
}
