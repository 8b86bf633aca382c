package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultLightDir points along +z, towards the viewer.
var DefaultLightDir = mgl64.Vec3{0, 0, 1}

// Lambert returns max(0, n·l) capped at 1. Back-facing samples get 0.
func Lambert(normal, light mgl64.Vec3) float64 {
	d := normal.Dot(light)
	if d <= 0 || math.IsNaN(d) {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// normalize is mgl64's Normalize without the division by zero.
func normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
