package specialangles

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SphereWireframe is a sampled sphere surface: Grid[i][j] is the point at
// u_i in [0, 2π] and v_j in [0, π], both endpoints included.
type SphereWireframe struct {
	Center r3.Vec
	Radius Real
	Grid   [][]r3.Vec
}

// linspace returns n evenly spaced samples over [a, b] (n >= 2).
func linspace(a, b Real, n int) []Real {
	out := make([]Real, n)
	step := (b - a) / Real(n-1)
	for i := range out {
		out[i] = a + Real(i)*step
	}
	out[n-1] = b
	return out
}

// NewSphereWireframe samples nu meridians and nv parallels.
func NewSphereWireframe(center r3.Vec, radius Real, nu, nv int) (*SphereWireframe, error) {
	if !validSide(radius) {
		return nil, &InvalidInputError{R: radius}
	}
	if nu < 2 {
		nu = SphereNU
	}
	if nv < 2 {
		nv = SphereNV
	}
	us := linspace(0, 2*math.Pi, nu)
	vs := linspace(0, math.Pi, nv)
	grid := make([][]r3.Vec, nu)
	for i, u := range us {
		cu, su := math.Cos(u), math.Sin(u)
		row := make([]r3.Vec, nv)
		for j, v := range vs {
			cv, sv := math.Cos(v), math.Sin(v)
			row[j] = r3.Add(center, r3.Scale(radius, r3.Vec{X: cu * sv, Y: su * sv, Z: cv}))
		}
		grid[i] = row
	}
	DebugLog("Created sphere wireframe center=%+v radius=%v grid=%dx%d", center, radius, nu, nv)
	return &SphereWireframe{Center: center, Radius: radius, Grid: grid}, nil
}

// Segments connects neighbours along u and along v.
func (s *SphereWireframe) Segments() []Segment {
	var out []Segment
	for i := range s.Grid {
		for j := range s.Grid[i] {
			if i+1 < len(s.Grid) {
				out = append(out, Segment{A: s.Grid[i][j], B: s.Grid[i+1][j]})
			}
			if j+1 < len(s.Grid[i]) {
				out = append(out, Segment{A: s.Grid[i][j], B: s.Grid[i][j+1]})
			}
		}
	}
	return out
}

// Contains reports whether p lies on or inside the sphere, with a relative tolerance.
func (s *SphereWireframe) Contains(p r3.Vec) bool {
	return r3.Norm(r3.Sub(p, s.Center)) <= s.Radius*(1+1e-12)
}
