package specialangles

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// validSide accepts finite positive lengths; NaN fails r > 0.
func validSide(r Real) bool { return r > 0 && !math.IsInf(r, 1) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func deg2rad(d Real) Real { return d * math.Pi / 180 }
