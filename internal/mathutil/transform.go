// Package mathutil builds the matrices the raster pipeline consumes.
package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Model returns T × S × R: rotate, then scale uniformly, then translate.
func Model(translation mgl64.Vec3, scale float64, rotation mgl64.Vec3) mgl64.Mat4 {
	ts := mgl64.Translate3D(translation[0], translation[1], translation[2]).
		Mul4(mgl64.Scale3D(scale, scale, scale))
	return ts.Mul4(Rotation(rotation))
}

// View is a right-handed look-at matrix.
func View(eye, center, up mgl64.Vec3) mgl64.Mat4 {
	return mgl64.LookAtV(eye, center, up)
}

// Perspective builds a projection from a vertical field of view in degrees
// and the target size in pixels.
func Perspective(fovDeg float64, width, height int, near, far float64) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return mgl64.Perspective(Deg2Rad(fovDeg), aspect, near, far)
}

// Viewport maps NDC [-1,1]² to pixel space with y growing downwards. z is
// passed through, so screen depth stays the NDC depth.
func Viewport(width, height int) mgl64.Mat4 {
	hw, hh := float64(width)/2, float64(height)/2
	// column-major
	return mgl64.Mat4{
		hw, 0, 0, 0,
		0, -hh, 0, 0,
		0, 0, 1, 0,
		hw, hh, 0, 1,
	}
}
