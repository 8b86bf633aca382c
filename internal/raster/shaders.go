package raster

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Shader computes the final color of a fragment.
type Shader interface {
	Shade(f *Fragment, u *Uniforms) Color
}

// ShaderFunc adapts a plain function to Shader.
type ShaderFunc func(f *Fragment, u *Uniforms) Color

// Shade calls fn(f, u).
func (fn ShaderFunc) Shade(f *Fragment, u *Uniforms) Color { return fn(f, u) }

// Surface selects the appearance of a body.
type Surface int

const (
	SurfaceDefault Surface = iota // black-and-white dither
	SurfaceSun
	SurfaceRocky
	SurfaceGasGiant
	SurfaceSmallGas
	SurfaceTerrain
)

var surfaceNames = [...]string{
	SurfaceDefault:  "default",
	SurfaceSun:      "sun",
	SurfaceRocky:    "rocky",
	SurfaceGasGiant: "gas_giant",
	SurfaceSmallGas: "small_gas",
	SurfaceTerrain:  "terrain",
}

// String returns the config name of s.
func (s Surface) String() string {
	if s < 0 || int(s) >= len(surfaceNames) {
		return surfaceNames[SurfaceDefault]
	}
	return surfaceNames[s]
}

// ParseSurface maps a surface name to its Surface. Case, '_', '-' and
// spaces are ignored; unknown names give SurfaceDefault.
func ParseSurface(name string) Surface {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))

	switch key {
	case "sun":
		return SurfaceSun
	case "rocky", "rockyplanet":
		return SurfaceRocky
	case "gasgiant":
		return SurfaceGasGiant
	case "smallgas", "smallgasplanet":
		return SurfaceSmallGas
	case "terrain":
		return SurfaceTerrain
	}
	return SurfaceDefault
}

// MixPolicy decides how a PaletteShader picks between its two colors.
type MixPolicy int

const (
	MixSolid  MixPolicy = iota // always Primary
	MixDither                  // per-fragment seeded coin flip
	MixNoise                   // blend along the noise oracle
)

// PaletteShader returns one of two palette colors scaled by the fragment's
// lighting intensity.
type PaletteShader struct {
	Primary   Color
	Secondary Color
	Mix       MixPolicy

	// Threshold is the probability of Primary under MixDither.
	Threshold float64

	// NoiseScale multiplies the object-space position before sampling noise.
	NoiseScale float64
}

// Shade picks the palette color for f and scales it by f.Intensity.
func (p PaletteShader) Shade(f *Fragment, u *Uniforms) Color {
	return p.base(f, u).Scale(f.Intensity)
}

func (p PaletteShader) base(f *Fragment, u *Uniforms) Color {
	switch p.Mix {
	case MixDither:
		if DitherValue(u.Time, f.Position[0], f.Position[1]) < p.Threshold {
			return p.Primary
		}
		return p.Secondary
	case MixNoise:
		if u.Noise == nil {
			return p.Primary
		}
		s := p.NoiseScale
		n := u.Noise.Noise3D(f.Position[0]*s, f.Position[1]*s, f.Position[2]*s)
		return p.Primary.Lerp(p.Secondary, (n+1)/2)
	}
	return p.Primary
}

// DitherValue returns a uniform value in [0,1) seeded from the frame time
// and an object-space x/y pair. Same inputs, same value.
func DitherValue(time uint32, x, y float64) float64 {
	// +0 folds -0 into 0 so both signs of zero seed alike.
	seed := math.Float64bits(x+0) ^ uint64(time)*0x9e3779b97f4a7c15
	pcg := rand.NewPCG(seed, math.Float64bits(y+0))
	return float64(pcg.Uint64()>>11) / (1 << 53)
}

var surfaceShaders = [...]PaletteShader{
	SurfaceDefault: {Primary: Black, Secondary: White, Mix: MixDither, Threshold: 0.5},
	SurfaceSun:     {Primary: RGB(255, 204, 0)},
	SurfaceRocky:   {Primary: RGB(139, 69, 19)},
	SurfaceGasGiant: {
		Primary: RGB(30, 144, 255), Secondary: RGB(255, 69, 0),
		Mix: MixDither, Threshold: 0.5,
	},
	SurfaceSmallGas: {
		Primary: RGB(255, 182, 193), Secondary: RGB(255, 105, 180),
		Mix: MixDither, Threshold: 0.5,
	},
	SurfaceTerrain: {
		Primary: RGB(34, 139, 34), Secondary: RGB(139, 69, 19),
		Mix: MixNoise, NoiseScale: 3,
	},
}

// ShaderFor returns the shader of a surface.
func ShaderFor(s Surface) Shader {
	if s < 0 || int(s) >= len(surfaceShaders) {
		s = SurfaceDefault
	}
	return surfaceShaders[s]
}
