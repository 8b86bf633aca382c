package raster

import "fmt"

// Color is an 8-bit RGB triple. All arithmetic saturates at 0 and 255.
type Color struct {
	R, G, B uint8
}

// RGB is shorthand for Color{r, g, b}.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the placeholder color the rasterizer puts on new fragments.
var Black = Color{}

// White is used by the default black-and-white shader.
var White = Color{255, 255, 255}

// ColorFromHex unpacks a 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex packs the color as 0xRRGGBB, the layout stored in the framebuffer.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Scale multiplies every channel by f, clamped to [0,255].
func (c Color) Scale(f float64) Color {
	return Color{
		R: clamp255(float64(c.R) * f),
		G: clamp255(float64(c.G) * f),
		B: clamp255(float64(c.B) * f),
	}
}

// Add returns the channel-wise sum, saturating at 255.
func (c Color) Add(o Color) Color {
	return Color{
		R: clamp255(float64(c.R) + float64(o.R)),
		G: clamp255(float64(c.G) + float64(o.G)),
		B: clamp255(float64(c.B) + float64(o.B)),
	}
}

// Lerp blends from c (t=0) to o (t=1). t is clamped to [0,1].
func (c Color) Lerp(o Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: clamp255(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: clamp255(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: clamp255(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// String formats c as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Hex())
}

func clamp255(v float64) uint8 {
	if v != v || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
