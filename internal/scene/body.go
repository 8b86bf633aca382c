// Package scene holds the animated solar system: body records, their
// orbits, the camera and the per-frame loop that feeds the raster pipeline.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"planet-raster/internal/mathutil"
	"planet-raster/internal/raster"
)

// Body is one sphere in the system. Position is rewritten by Orbit.
type Body struct {
	Name        string
	Position    mgl64.Vec3
	Radius      float64
	Surface     raster.Surface
	OrbitRadius float64
	Speed       float64 // orbital angular speed, rad/s
	Spin        float64 // rotation about its own y axis, rad/s
	spinAngle   float64
}

// NewBody places a body on the +x axis at its orbit radius.
func NewBody(name string, radius float64, surface raster.Surface, orbitRadius, speed float64) Body {
	return Body{
		Name:        name,
		Position:    mgl64.Vec3{orbitRadius, 0, 0},
		Radius:      radius,
		Surface:     surface,
		OrbitRadius: orbitRadius,
		Speed:       speed,
	}
}

// Orbit moves the body along its circular orbit in the xz plane to the
// position it has t seconds after the start.
func (b *Body) Orbit(t float64) {
	angle := t * b.Speed
	b.Position[0] = b.OrbitRadius * math.Cos(angle)
	b.Position[2] = b.OrbitRadius * math.Sin(angle)
	b.spinAngle = t * b.Spin
}

// Model returns the body's model matrix.
func (b *Body) Model() mgl64.Mat4 {
	return mathutil.Model(b.Position, b.Radius, mgl64.Vec3{0, b.spinAngle, 0})
}

// DefaultSystem is a sun, three rocky planets, one terrain world, a gas
// giant and two small gas planets.
func DefaultSystem() []Body {
	terra := NewBody("Terra", 0.55, raster.SurfaceTerrain, 6.5, 0.45)
	terra.Spin = 1

	return []Body{
		NewBody("Sun", 1.5, raster.SurfaceSun, 0, 0),
		NewBody("Rocky I", 0.4, raster.SurfaceRocky, 2.5, 1.0),
		NewBody("Rocky II", 0.6, raster.SurfaceRocky, 3.5, 0.8),
		NewBody("Rocky III", 0.5, raster.SurfaceRocky, 5.0, 0.5),
		terra,
		NewBody("Gas Giant", 1.2, raster.SurfaceGasGiant, 8.0, 0.3),
		NewBody("Small Gas I", 0.8, raster.SurfaceSmallGas, 10.0, 0.4),
		NewBody("Small Gas II", 0.7, raster.SurfaceSmallGas, 12.0, 0.6),
	}
}
