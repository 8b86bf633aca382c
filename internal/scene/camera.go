package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"planet-raster/internal/mathutil"
)

// Camera is a perspective look-at camera.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
}

// DefaultCamera looks at the sun from slightly above the orbital plane.
func DefaultCamera() Camera {
	return Camera{
		Eye:  mgl64.Vec3{0, 2, 15},
		Up:   mgl64.Vec3{0, 1, 0},
		FOV:  45,
		Near: 0.1,
		Far:  1000,
	}
}

// View returns the look-at view matrix.
func (c Camera) View() mgl64.Mat4 {
	return mathutil.View(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective matrix for a width×height target.
func (c Camera) Projection(width, height int) mgl64.Mat4 {
	return mathutil.Perspective(c.FOV, width, height, c.Near, c.Far)
}
