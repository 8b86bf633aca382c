package raster

import "github.com/go-gl/mathgl/mgl64"

// Fragment is one candidate pixel produced by rasterizing a triangle.
// Only Color is written after creation, by the fragment shader.
type Fragment struct {
	X, Y      int
	Color     Color
	Depth     float64    // screen-space z, smaller is nearer
	Normal    mgl64.Vec3 // interpolated and renormalized
	Intensity float64    // Lambert term in [0,1]
	Position  mgl64.Vec3 // interpolated object-space position
}
