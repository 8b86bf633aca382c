package raster

// DrawStats summarizes one Draw call.
type DrawStats struct {
	Triangles int // triangles submitted
	Skipped   int // dropped for a vertex on the camera plane
	Fragments int // fragments produced by the rasterizer
	Written   int // fragments that passed the depth test
}

// Add accumulates o into s.
func (s *DrawStats) Add(o DrawStats) {
	s.Triangles += o.Triangles
	s.Skipped += o.Skipped
	s.Fragments += o.Fragments
	s.Written += o.Written
}

// Draw renders a triangle list (every three consecutive vertices form one
// triangle; a trailing partial triangle is ignored) into fb.
//
// Vertices are shaded once each, triangles are rasterized in order and each
// fragment is shaded and depth-tested immediately.
func Draw(fb *Framebuffer, u *Uniforms, vertices []Vertex, shader Shader, r Rasterizer) DrawStats {
	var stats DrawStats

	shaded, ok := ShadeVertices(nil, vertices, u)

	var frags []Fragment
	for i := 0; i+2 < len(shaded); i += 3 {
		stats.Triangles++
		if !ok[i] || !ok[i+1] || !ok[i+2] {
			stats.Skipped++
			continue
		}

		frags = r.AppendTriangle(frags[:0], shaded[i], shaded[i+1], shaded[i+2])
		stats.Fragments += len(frags)

		for j := range frags {
			f := &frags[j]
			f.Color = shader.Shade(f, u)
			if fb.Write(f.X, f.Y, f.Depth, f.Color) {
				stats.Written++
			}
		}
	}

	return stats
}
