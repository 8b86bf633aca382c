package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"planet-raster/internal/mathutil"
	"planet-raster/internal/noise"
	"planet-raster/internal/raster"
)

// orbitSegments is the number of line segments per orbit overlay circle.
const orbitSegments = 64

// OrbitColor is the draw color of the orbit overlay.
var OrbitColor = raster.RGB(60, 60, 72)

// Scene is everything needed to render one frame of the system.
type Scene struct {
	Bodies []Body
	Mesh   []raster.Vertex // shared by every body, unit radius
	Camera Camera
	Noise  noise.Oracle
	Raster raster.Rasterizer

	// ShowOrbits draws every orbit as a depth-tested line loop.
	ShowOrbits bool
}

// Update moves every body to its position at t seconds.
func (s *Scene) Update(t float64) {
	for i := range s.Bodies {
		s.Bodies[i].Orbit(t)
	}
}

// Render clears fb and draws every body in order. frame becomes the
// uniforms' time counter, which seeds the dithered shaders.
func (s *Scene) Render(fb *raster.Framebuffer, frame uint32) raster.DrawStats {
	fb.Clear()

	view := s.Camera.View()
	proj := s.Camera.Projection(fb.Width, fb.Height)
	vp := mathutil.Viewport(fb.Width, fb.Height)

	var stats raster.DrawStats
	for i := range s.Bodies {
		b := &s.Bodies[i]
		u := raster.Uniforms{
			Model:      b.Model(),
			View:       view,
			Projection: proj,
			Viewport:   vp,
			Time:       frame,
			Noise:      s.Noise,
		}
		stats.Add(raster.Draw(fb, &u, s.Mesh, raster.ShaderFor(b.Surface), s.Raster))
	}

	if s.ShowOrbits {
		s.drawOrbits(fb, &raster.Uniforms{
			Model:      mgl64.Ident4(),
			View:       view,
			Projection: proj,
			Viewport:   vp,
			Time:       frame,
		})
	}
	return stats
}

func (s *Scene) drawOrbits(fb *raster.Framebuffer, u *raster.Uniforms) {
	fb.SetCurrentColor(OrbitColor)
	limit := float64(4 * max(fb.Width, fb.Height))

	for _, b := range s.Bodies {
		if b.OrbitRadius <= 0 {
			continue
		}
		prev, prevOK := orbitPoint(u, b.OrbitRadius, 0)
		for k := 1; k <= orbitSegments; k++ {
			cur, curOK := orbitPoint(u, b.OrbitRadius, 2*math.Pi*float64(k)/orbitSegments)
			if prevOK && curOK && inRange(prev.Screen, limit) && inRange(cur.Screen, limit) {
				fb.Line(
					int(prev.Screen[0]), int(prev.Screen[1]),
					int(cur.Screen[0]), int(cur.Screen[1]),
					math.Max(prev.Screen[2], cur.Screen[2]),
				)
			}
			prev, prevOK = cur, curOK
		}
	}
}

func orbitPoint(u *raster.Uniforms, r, angle float64) (raster.ShadedVertex, bool) {
	v := raster.Vertex{Position: mgl64.Vec3{r * math.Cos(angle), 0, r * math.Sin(angle)}}
	return raster.ShadeVertex(v, u)
}

// inRange rejects points so far off screen that Bresenham would crawl.
func inRange(p mgl64.Vec3, limit float64) bool {
	return math.Abs(p[0]) <= limit && math.Abs(p[1]) <= limit && !math.IsNaN(p[2])
}
