package raster

import (
	"github.com/go-gl/mathgl/mgl64"

	"planet-raster/internal/noise"
)

// Uniforms is the read-only context of one draw call. The frame loop builds
// a fresh value per body per frame since the model matrix differs.
type Uniforms struct {
	Model      mgl64.Mat4
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Viewport   mgl64.Mat4
	Time       uint32
	Noise      noise.Oracle
}

// MVP returns Projection × View × Model.
func (u *Uniforms) MVP() mgl64.Mat4 {
	return u.Projection.Mul4(u.View).Mul4(u.Model)
}
