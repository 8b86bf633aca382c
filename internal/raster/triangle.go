package raster

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FillRule decides which triangle owns a pixel center that lies exactly on
// an edge.
type FillRule int

const (
	// FillInclusive accepts every pixel whose weights are all in [0,1]
	// (with a small epsilon). Two triangles sharing an edge both emit the
	// boundary pixels; the strict depth test keeps the first one written.
	FillInclusive FillRule = iota

	// FillTopLeft accepts a pixel on an edge only when that edge is a top
	// or left edge, so a shared edge is covered exactly once.
	FillTopLeft
)

// weightEpsilon admits boundary pixels that rounding pushed just outside.
const weightEpsilon = 1e-9

// minArea is the smallest |area| treated as a real triangle.
const minArea = 1e-12

// Rasterizer turns screen-space triangles into fragments.
type Rasterizer struct {
	Light mgl64.Vec3 // unit direction towards the light
	Fill  FillRule

	// Clip limits the scanned pixels. An empty rectangle scans the whole
	// bounding box.
	Clip image.Rectangle
}

// NewRasterizer returns a rasterizer lit from DefaultLightDir and clipped
// to a w×h target.
func NewRasterizer(w, h int) Rasterizer {
	return Rasterizer{
		Light: DefaultLightDir,
		Clip:  image.Rect(0, 0, w, h),
	}
}

// Triangle returns the fragments covered by the triangle abc.
func (r Rasterizer) Triangle(a, b, c ShadedVertex) []Fragment {
	return r.AppendTriangle(nil, a, b, c)
}

// AppendTriangle appends the fragments covered by abc to dst. Degenerate
// triangles (collinear, or with non-finite screen coordinates) add nothing.
func (r Rasterizer) AppendTriangle(dst []Fragment, a, b, c ShadedVertex) []Fragment {
	pa, pb, pc := a.Screen, b.Screen, c.Screen
	if !finite(pa) || !finite(pb) || !finite(pc) {
		return dst
	}

	area := edge(pa[0], pa[1], pb[0], pb[1], pc[0], pc[1])
	if math.Abs(area) < minArea {
		return dst
	}
	invArea := 1 / area

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(pa[0], pb[0]), pc[0])))
	maxX := int(math.Ceil(math.Max(math.Max(pa[0], pb[0]), pc[0])))
	minY := int(math.Floor(math.Min(math.Min(pa[1], pb[1]), pc[1])))
	maxY := int(math.Ceil(math.Max(math.Max(pa[1], pb[1]), pc[1])))

	if !r.Clip.Empty() {
		minX = max(minX, r.Clip.Min.X)
		minY = max(minY, r.Clip.Min.Y)
		maxX = min(maxX, r.Clip.Max.X-1)
		maxY = min(maxY, r.Clip.Max.Y-1)
	}
	if minX > maxX || minY > maxY {
		return dst
	}

	var owns [3]bool
	if r.Fill == FillTopLeft {
		owns = [3]bool{
			topLeft(pb, pc, area),
			topLeft(pc, pa, area),
			topLeft(pa, pb, area),
		}
	}

	light := normalize(r.Light)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			e1 := edge(pb[0], pb[1], pc[0], pc[1], px, py)
			e2 := edge(pc[0], pc[1], pa[0], pa[1], px, py)
			e3 := edge(pa[0], pa[1], pb[0], pb[1], px, py)
			w1, w2, w3 := e1*invArea, e2*invArea, e3*invArea

			if r.Fill == FillTopLeft {
				if !covers(w1, owns[0]) || !covers(w2, owns[1]) || !covers(w3, owns[2]) {
					continue
				}
			} else if !inUnit(w1) || !inUnit(w2) || !inUnit(w3) {
				continue
			}

			n := normalize(a.ScreenNormal.Mul(w1).Add(b.ScreenNormal.Mul(w2)).Add(c.ScreenNormal.Mul(w3)))

			dst = append(dst, Fragment{
				X:         x,
				Y:         y,
				Color:     Black,
				Depth:     pa[2]*w1 + pb[2]*w2 + pc[2]*w3,
				Normal:    n,
				Intensity: Lambert(n, light),
				Position:  a.Position.Mul(w1).Add(b.Position.Mul(w2)).Add(c.Position.Mul(w3)),
			})
		}
	}

	return dst
}

// EdgeFunction is the 2D cross product (c-a)×(b-a). Its sign tells which
// side of the directed edge a→b the point c lies on.
func EdgeFunction(a, b, c mgl64.Vec2) float64 {
	return edge(a[0], a[1], b[0], b[1], c[0], c[1])
}

// Barycentric returns the weights of p relative to triangle abc. ok is
// false for a zero-area triangle.
func Barycentric(a, b, c, p mgl64.Vec2) (w1, w2, w3 float64, ok bool) {
	area := EdgeFunction(a, b, c)
	if math.Abs(area) < minArea {
		return 0, 0, 0, false
	}
	w1 = EdgeFunction(b, c, p) / area
	w2 = EdgeFunction(c, a, p) / area
	w3 = EdgeFunction(a, b, p) / area
	return w1, w2, w3, true
}

func edge(ax, ay, bx, by, cx, cy float64) float64 {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}

func inUnit(w float64) bool {
	return w >= -weightEpsilon && w <= 1+weightEpsilon
}

// covers applies the top-left rule to one normalized weight.
func covers(w float64, owned bool) bool {
	if w > 0 {
		return true
	}
	return w == 0 && owned
}

// topLeft reports whether the directed edge p→q is a top or left edge of a
// triangle with the given signed area. The interior side is where the edge
// function, multiplied by sign(area), grows.
func topLeft(p, q mgl64.Vec3, area float64) bool {
	gx := q[1] - p[1]
	gy := -(q[0] - p[0])
	if area < 0 {
		gx, gy = -gx, -gy
	}
	// y grows downwards: a left edge has the interior to its right, a top
	// edge is horizontal with the interior below it.
	return gx > 0 || (gx == 0 && gy > 0)
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
