package specialangles

import "tinygo.org/x/drivers"

var (
	Debug  = false // set to true for verbose debug output
	PNG    = true  // set to false to skip writing the PNG snapshot
	GIF    = false // set to true to write the turntable GIF
	Window = true  // set to false to skip the viewer window
	// Compile time check: tinyfont draws on the canvas through drivers.Displayer
	_ drivers.Displayer = (*Canvas)(nil)
)
