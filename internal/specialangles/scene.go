package specialangles

import "fmt"

// Scene is everything the visualizer draws for one evaluation.
// It is built from a Result and never feeds back into it.
type Scene struct {
	Title    string
	Result   Result
	Cube     *Cube
	Diagonal Segment // origin -> midpoint of the space diagonal
	Sphere   *SphereWireframe
}

// NewScene builds the cube, the half diagonal and the circumscribed sphere for res.
func NewScene(res Result) (*Scene, error) {
	cube, err := NewCube(res.R)
	if err != nil {
		return nil, err
	}
	center := cube.Center()
	sphere, err := NewSphereWireframe(center, res.SphereRadius, SphereNU, SphereNV)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		Title:    fmt.Sprintf("%s (r = %s)", Title, formatSide(res.R)),
		Result:   res,
		Cube:     cube,
		Diagonal: Segment{A: cube.Vertices[0], B: center},
		Sphere:   sphere,
	}
	DebugLog("Created scene %q, diagonal len=%.12g", s.Title, s.Diagonal.Len())
	return s, nil
}

// Segments returns every line of the scene grouped by layer.
func (s *Scene) Segments() (cube, diagonal, sphere []Segment) {
	return s.Cube.Edges(), []Segment{s.Diagonal}, s.Sphere.Segments()
}
