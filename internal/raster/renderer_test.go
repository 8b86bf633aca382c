package raster

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func unitTriangle() []Vertex {
	n := mgl64.Vec3{0, 0, 1}
	return []Vertex{
		{Position: mgl64.Vec3{0, 0, 0}, Normal: n},
		{Position: mgl64.Vec3{4, 0, 0}, Normal: n},
		{Position: mgl64.Vec3{0, 4, 0}, Normal: n},
	}
}

func TestDrawUnitTriangle(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	sun := RGB(255, 204, 0)

	stats := Draw(fb, identityUniforms(), unitTriangle(), ShaderFor(SurfaceSun), NewRasterizer(5, 5))
	if stats != (DrawStats{Triangles: 1, Fragments: 10, Written: 10}) {
		t.Errorf("stats = %+v", stats)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			got := fb.At(x, y)
			if x+y <= 3 {
				if got != sun || fb.DepthAt(x, y) != 0 {
					t.Errorf("(%d,%d) = %v depth %v, want %v at 0", x, y, got, fb.DepthAt(x, y), sun)
				}
			} else if got != Black {
				t.Errorf("(%d,%d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestDrawResolvesOverlapByDepth(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	r := NewRasterizer(5, 5)
	u := identityUniforms()

	far := unitTriangle()
	for i := range far {
		far[i].Position[2] = 0.5
	}
	near := unitTriangle()
	for i := range near {
		near[i].Position[2] = -0.5
	}

	Draw(fb, u, near, ShaderFor(SurfaceRocky), r)
	stats := Draw(fb, u, far, ShaderFor(SurfaceSun), r)

	if stats.Written != 0 {
		t.Errorf("%d far fragments overwrote nearer ones", stats.Written)
	}
	if got := fb.At(0, 0); got != RGB(139, 69, 19) {
		t.Errorf("(0,0) = %v, want rocky", got)
	}
}

func TestDrawSkipsDegenerateAndPartial(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	u := identityUniforms()
	u.Projection = mgl64.Mat4{}

	vs := append(unitTriangle(), Vertex{}, Vertex{})
	stats := Draw(fb, u, vs, ShaderFor(SurfaceSun), NewRasterizer(5, 5))
	if stats != (DrawStats{Triangles: 1, Skipped: 1}) {
		t.Errorf("stats = %+v, want one skipped triangle and the partial one ignored", stats)
	}
}

func TestDrawStatsAdd(t *testing.T) {
	s := DrawStats{Triangles: 1, Skipped: 2, Fragments: 3, Written: 4}
	s.Add(DrawStats{Triangles: 10, Skipped: 20, Fragments: 30, Written: 40})
	if s != (DrawStats{Triangles: 11, Skipped: 22, Fragments: 33, Written: 44}) {
		t.Errorf("Add = %+v", s)
	}
}
