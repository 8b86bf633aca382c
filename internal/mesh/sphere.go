package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"planet-raster/internal/raster"
)

// Sphere returns a unit UV sphere as a flat triangle list with smooth
// normals. stacks is clamped to at least 2 and slices to at least 3.
// The pole rows emit one triangle per slice, every other row two.
func Sphere(stacks, slices int) []raster.Vertex {
	stacks = max(stacks, 2)
	slices = max(slices, 3)

	point := func(i, j int) raster.Vertex {
		theta := math.Pi * float64(i) / float64(stacks)
		phi := 2 * math.Pi * float64(j) / float64(slices)
		p := mgl64.Vec3{
			math.Sin(theta) * math.Cos(phi),
			math.Cos(theta),
			math.Sin(theta) * math.Sin(phi),
		}
		return raster.Vertex{
			Position:  p,
			Normal:    p,
			TexCoords: mgl64.Vec2{float64(j) / float64(slices), float64(i) / float64(stacks)},
			Color:     raster.White,
		}
	}

	out := make([]raster.Vertex, 0, SphereTriangles(stacks, slices)*3)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			v00, v01 := point(i, j), point(i, j+1)
			v10, v11 := point(i+1, j), point(i+1, j+1)
			if i != 0 {
				out = append(out, v00, v11, v01)
			}
			if i != stacks-1 {
				out = append(out, v00, v10, v11)
			}
		}
	}
	return out
}

// SphereTriangles is the triangle count of Sphere(stacks, slices).
func SphereTriangles(stacks, slices int) int {
	stacks = max(stacks, 2)
	slices = max(slices, 3)
	return 2 * slices * (stacks - 1)
}
