package specialangles

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// IdentityClosedForm is what IdentityValue reduces to: SphereRadius and
// R*sin(π/3) are both R*sqrt(3)/2, so the ratio is (4/3)πx³ / πx³.
const IdentityClosedForm = Real(4) / Real(3)

// Check is one invariant comparison of a Result.
type Check struct {
	Name     string
	Got      Real
	Want     Real
	OK       bool
	Advisory bool // reported, never fails a verification
}

// almostEqual mirrors assertAlmostEqual: round(a-b, places) == 0, half to even.
func almostEqual(a, b Real, places int) bool {
	if a == b {
		return true
	}
	d := math.Abs(a - b)
	if !isFinite(d) {
		return false
	}
	return scalar.RoundEven(d, places) == 0
}

// Verify re-derives every invariant of res at the given decimal places.
func Verify(res Result, places int) []Check {
	pi := Real(math.Pi)
	x := res.R * math.Sin(pi/3)
	mk := func(name string, got, want Real) Check {
		return Check{Name: name, Got: got, Want: want, OK: almostEqual(got, want, places)}
	}
	checks := []Check{
		mk("diagonal length = r*sqrt(3)", res.DiagonalLength, res.R*math.Sqrt(3)),
		mk("sphere radius = diagonal/2", res.SphereRadius, res.DiagonalLength/2),
		mk("sphere volume = (4/3)*pi*radius^3", res.SphereVolume, Real(4)/Real(3)*pi*math.Pow(res.SphereRadius, 3)),
		mk("identity = volume/(pi*x^3)", res.IdentityValue, res.SphereVolume/(pi*math.Pow(x, 3))),
		mk("identity = 4/3", res.IdentityValue, IdentityClosedForm),
	}
	sin := mk("identity = sin(pi/3)", res.IdentityValue, math.Sin(pi/3))
	sin.Advisory = true
	checks = append(checks, sin)
	for _, c := range checks {
		DebugLog("Check r=%v %q: got=%.12g want=%.12g ok=%v", res.R, c.Name, c.Got, c.Want, c.OK)
	}
	return checks
}

// Passed reports whether every non-advisory check holds.
func Passed(checks []Check) bool {
	for _, c := range checks {
		if !c.OK && !c.Advisory {
			return false
		}
	}
	return true
}
