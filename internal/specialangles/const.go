package specialangles

import "math"

type Real = float64

const (
	// Places is the decimal precision used by the report and by Verify.
	Places       = 4
	Title        = "Reformulation of Special Angles"
	PNGOut       = "special_angles.png"
	ImageSize    = 640
	MaxImageSize = math.MaxInt16 // canvas coordinates are int16 for tinyfont
	Frames       = 36
	GIFDelay     = 8 // 100ths of a second per frame
	AzimuthDeg   = -60
	ElevationDeg = 30
	SphereNU     = 20 // samples along u in [0, 2π]
	SphereNV     = 10 // samples along v in [0, π]
)

// DefaultSides are the side lengths evaluated when no config is given:
// the first one is rendered, the rest are printed as additional examples.
var DefaultSides = []Real{1, 2, 3}
