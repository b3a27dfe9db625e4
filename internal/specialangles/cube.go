package specialangles

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Segment is a straight line between two points.
type Segment struct {
	A, B r3.Vec
}

// Len returns the Euclidean length of the segment.
func (s Segment) Len() Real { return r3.Norm(r3.Sub(s.B, s.A)) }

// Cube is an axis-aligned cube with one corner at the origin.
type Cube struct {
	Side     Real
	Vertices [8]r3.Vec
}

// cubeEdges indexes Vertices: bottom ring, top ring, then the verticals.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// NewCube lays the vertices out as the mesh does:
// x=[0,r,r,0,0,r,r,0], y=[0,0,r,r,0,0,r,r], z=[0,0,0,0,r,r,r,r].
func NewCube(r Real) (*Cube, error) {
	if !validSide(r) {
		return nil, &InvalidInputError{R: r}
	}
	xs := [8]Real{0, r, r, 0, 0, r, r, 0}
	ys := [8]Real{0, 0, r, r, 0, 0, r, r}
	zs := [8]Real{0, 0, 0, 0, r, r, r, r}
	c := &Cube{Side: r}
	for i := range c.Vertices {
		c.Vertices[i] = r3.Vec{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	DebugLog("Created cube side=%v", r)
	return c, nil
}

// Center is the midpoint of every space diagonal.
func (c *Cube) Center() r3.Vec {
	h := c.Side / 2
	return r3.Vec{X: h, Y: h, Z: h}
}

// Edges returns the twelve edges.
func (c *Cube) Edges() []Segment {
	out := make([]Segment, 0, len(cubeEdges))
	for _, e := range cubeEdges {
		out = append(out, Segment{A: c.Vertices[e[0]], B: c.Vertices[e[1]]})
	}
	return out
}

// SpaceDiagonal runs from the origin to the opposite corner.
func (c *Cube) SpaceDiagonal() Segment {
	return Segment{A: c.Vertices[0], B: c.Vertices[6]}
}
