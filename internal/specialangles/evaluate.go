package specialangles

import (
	"fmt"
	"math"
)

// InvalidInputError is returned for a side length that is not strictly positive.
type InvalidInputError struct {
	R Real
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("side length must be > 0, got %v", e.R)
}

// Result holds one evaluation of the cube/sphere pipeline for side length R.
type Result struct {
	R              Real
	DiagonalLength Real // R*sqrt(3)
	SphereRadius   Real // DiagonalLength/2
	SphereVolume   Real // (4/3)*π*SphereRadius^3
	IdentityValue  Real // SphereVolume/(π*(R*sin(π/3))^3)
}

// Evaluate runs the pipeline for a cube of side r.
// The diagonal is computed as sqrt(r^2 + (sqrt(2)*r)^2): the face diagonal
// first, then Pythagoras again with the remaining edge.
func Evaluate(r Real) (Result, error) {
	if !validSide(r) {
		return Result{}, &InvalidInputError{R: r}
	}
	// typed operands keep float64 rounding at every step
	pi, fourThirds := Real(math.Pi), Real(4)/Real(3)
	face := math.Sqrt(2) * r
	diag := math.Sqrt(math.Pow(r, 2) + math.Pow(face, 2))
	radius := diag / 2
	volume := fourThirds * pi * math.Pow(radius, 3)
	x := r * math.Sin(pi/3)
	identity := volume / (pi * math.Pow(x, 3))
	res := Result{
		R:              r,
		DiagonalLength: diag,
		SphereRadius:   radius,
		SphereVolume:   volume,
		IdentityValue:  identity,
	}
	DebugLog("Evaluated %+v", res)
	return res, nil
}

// EvaluateAll evaluates the sides in order and stops at the first invalid one.
func EvaluateAll(sides []Real) ([]Result, error) {
	out := make([]Result, 0, len(sides))
	for i, r := range sides {
		res, err := Evaluate(r)
		if err != nil {
			return out, fmt.Errorf("side #%d: %w", i, err)
		}
		out = append(out, res)
	}
	return out, nil
}
