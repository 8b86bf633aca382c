// Package noise provides the deterministic noise oracle sampled by the
// procedural surface shaders.
package noise

import perlin "github.com/aquilax/go-perlin"

// Oracle returns a value in roughly [-1,1] for a coordinate. Equal inputs
// always give equal outputs for the same oracle.
type Oracle interface {
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

// Default Perlin parameters: persistence 2, lacunarity 2, three octaves.
const (
	DefaultAlpha   = 2
	DefaultBeta    = 2
	DefaultOctaves = 3
	DefaultSeed    = 1337
)

// Perlin is an Oracle backed by go-perlin.
type Perlin struct {
	p    *perlin.Perlin
	seed int64
}

// NewPerlin builds a Perlin oracle with the default parameters.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		p:    perlin.NewPerlin(DefaultAlpha, DefaultBeta, DefaultOctaves, seed),
		seed: seed,
	}
}

// Seed returns the seed the oracle was built with.
func (n *Perlin) Seed() int64 { return n.seed }

// Noise2D samples 2D Perlin noise, clamped to [-1,1].
func (n *Perlin) Noise2D(x, y float64) float64 {
	return clampUnit(n.p.Noise2D(x, y))
}

// Noise3D samples 3D Perlin noise, clamped to [-1,1].
func (n *Perlin) Noise3D(x, y, z float64) float64 {
	return clampUnit(n.p.Noise3D(x, y, z))
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
