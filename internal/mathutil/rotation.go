package mathutil

import "github.com/go-gl/mathgl/mgl64"

// RotX returns a homogeneous rotation around the X axis. Angle in radians.
func RotX(a float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(a)
}

// RotY returns a homogeneous rotation around the Y axis.
func RotY(a float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(a)
}

// RotZ returns a homogeneous rotation around the Z axis.
func RotZ(a float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(a)
}

// Rotation applies X, then Y, then Z: Rz × Ry × Rx. Angles in radians.
func Rotation(euler mgl64.Vec3) mgl64.Mat4 {
	return RotZ(euler[2]).Mul4(RotY(euler[1])).Mul4(RotX(euler[0]))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return mgl64.DegToRad(d)
}
