package specialangles

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewCubeVertices(t *testing.T) {
	c, err := NewCube(2)
	if err != nil {
		t.Fatal(err)
	}
	want := [8]r3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 2, Y: 2, Z: 0}, {X: 0, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 2}, {X: 2, Y: 0, Z: 2}, {X: 2, Y: 2, Z: 2}, {X: 0, Y: 2, Z: 2},
	}
	if diff := cmp.Diff(want, c.Vertices); diff != "" {
		t.Fatalf("vertices mismatch (-want +got):\n%s", diff)
	}
	if c.Center() != (r3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("center wrong: %+v", c.Center())
	}
	if _, err := NewCube(0); err == nil {
		t.Fatal("expected error for zero side")
	}
}

func TestCubeEdges(t *testing.T) {
	c, err := NewCube(3)
	if err != nil {
		t.Fatal(err)
	}
	edges := c.Edges()
	if len(edges) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(edges))
	}
	for i, e := range edges {
		if math.Abs(e.Len()-3) > 1e-12 {
			t.Fatalf("edge %d has length %.12g", i, e.Len())
		}
	}
	res, err := Evaluate(3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.SpaceDiagonal().Len()-res.DiagonalLength) > 1e-12 {
		t.Fatalf("space diagonal %.12g vs %.12g", c.SpaceDiagonal().Len(), res.DiagonalLength)
	}
}

func TestLinspace(t *testing.T) {
	got := linspace(0, 1, 5)
	want := []Real{0, 0.25, 0.5, 0.75, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("linspace mismatch (-want +got):\n%s", diff)
	}
	us := linspace(0, 2*math.Pi, SphereNU)
	if us[len(us)-1] != 2*math.Pi {
		t.Fatalf("endpoint not included: %.17g", us[len(us)-1])
	}
}

func TestSphereWireframe(t *testing.T) {
	center := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	s, err := NewSphereWireframe(center, 2, SphereNU, SphereNV)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Grid) != SphereNU || len(s.Grid[0]) != SphereNV {
		t.Fatalf("grid size %dx%d", len(s.Grid), len(s.Grid[0]))
	}
	for i := range s.Grid {
		for j, p := range s.Grid[i] {
			if d := r3.Norm(r3.Sub(p, center)); math.Abs(d-2) > 1e-12 {
				t.Fatalf("point (%d,%d) at distance %.12g", i, j, d)
			}
		}
	}
	// v=0 is the north pole
	if p := s.Grid[3][0]; math.Abs(p.Z-2.5) > 1e-12 {
		t.Fatalf("north pole wrong: %+v", p)
	}
	// (nu-1)*nv along u, nu*(nv-1) along v
	if n := len(s.Segments()); n != (SphereNU-1)*SphereNV+SphereNU*(SphereNV-1) {
		t.Fatalf("unexpected segment count %d", n)
	}
	if _, err := NewSphereWireframe(center, -1, 4, 4); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestSceneSphereCircumscribesCube(t *testing.T) {
	for _, r := range []Real{1, 2, 3, 0.3} {
		res, err := Evaluate(r)
		if err != nil {
			t.Fatal(err)
		}
		s, err := NewScene(res)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range s.Cube.Vertices {
			d := r3.Norm(r3.Sub(v, s.Sphere.Center))
			if math.Abs(d-res.SphereRadius) > 1e-12*math.Max(1, r) {
				t.Fatalf("r=%v vertex %d at %.12g, radius %.12g", r, i, d, res.SphereRadius)
			}
			if !s.Sphere.Contains(v) {
				t.Fatalf("r=%v vertex %d not on sphere", r, i)
			}
		}
		if math.Abs(s.Diagonal.Len()-res.SphereRadius) > 1e-12*math.Max(1, r) {
			t.Fatalf("r=%v half diagonal %.12g vs radius %.12g", r, s.Diagonal.Len(), res.SphereRadius)
		}
		cube, diag, sphere := s.Segments()
		if len(cube) != 12 || len(diag) != 1 || len(sphere) == 0 {
			t.Fatalf("segments: cube=%d diag=%d sphere=%d", len(cube), len(diag), len(sphere))
		}
	}
}
