package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShadeVertex maps v from object space to screen space.
//
// ok is false when the homogeneous w is exactly zero (the vertex lies on the
// camera plane); callers drop every triangle that uses such a vertex.
func ShadeVertex(v Vertex, u *Uniforms) (sv ShadedVertex, ok bool) {
	return shadeVertex(v, u.MVP(), u.Viewport, NormalMatrix(u.Model))
}

// ShadeVertices runs the vertex shader over vs, reusing dst when it has the
// capacity. The returned mask marks vertices that survived the divide.
func ShadeVertices(dst []ShadedVertex, vs []Vertex, u *Uniforms) ([]ShadedVertex, []bool) {
	mvp := u.MVP()
	nm := NormalMatrix(u.Model)

	if cap(dst) < len(vs) {
		dst = make([]ShadedVertex, len(vs))
	}
	dst = dst[:len(vs)]
	ok := make([]bool, len(vs))
	for i, v := range vs {
		dst[i], ok[i] = shadeVertex(v, mvp, u.Viewport, nm)
	}
	return dst, ok
}

// NormalMatrix returns the inverse-transpose of the upper-left 3×3 of model.
// A singular block yields the identity.
func NormalMatrix(model mgl64.Mat4) mgl64.Mat3 {
	m3 := model.Mat3()
	if math.Abs(m3.Det()) < 1e-12 {
		return mgl64.Ident3()
	}
	return m3.Inv().Transpose()
}

func shadeVertex(v Vertex, mvp, viewport mgl64.Mat4, nm mgl64.Mat3) (ShadedVertex, bool) {
	clip := mvp.Mul4x1(v.Position.Vec4(1))
	w := clip.W()
	if w == 0 {
		return ShadedVertex{Vertex: v}, false
	}

	ndc := mgl64.Vec4{clip[0] / w, clip[1] / w, clip[2] / w, 1}
	screen := viewport.Mul4x1(ndc)

	return ShadedVertex{
		Vertex:       v,
		Screen:       screen.Vec3(),
		ScreenNormal: nm.Mul3x1(v.Normal),
	}, true
}
