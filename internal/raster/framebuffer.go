package raster

import "math"

// Framebuffer holds the color and depth targets as flat row-major slices.
// Color[i] always belongs to the fragment whose depth is Depth[i].
type Framebuffer struct {
	Width  int
	Height int
	Color  []uint32  // packed 0xRRGGBB, len = W*H
	Depth  []float64 // len = W*H, +Inf after Clear

	background uint32
	current    uint32
}

// NewFramebuffer allocates a cleared w×h framebuffer with a black background
// and a white draw color.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{
		Width:   w,
		Height:  h,
		Color:   make([]uint32, w*h),
		Depth:   make([]float64, w*h),
		current: White.Hex(),
	}
	fb.Clear()
	return fb
}

// Clear resets every pixel to the background color and infinite depth.
func (fb *Framebuffer) Clear() {
	n := len(fb.Depth)
	if n == 0 {
		return
	}
	// copy-doubling fill
	fb.Color[0] = fb.background
	fb.Depth[0] = math.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(fb.Color[i:], fb.Color[:i])
		copy(fb.Depth[i:], fb.Depth[:i])
	}
}

// SetBackgroundColor sets the color Clear fills with.
func (fb *Framebuffer) SetBackgroundColor(c Color) { fb.background = c.Hex() }

// BackgroundColor returns the clear color.
func (fb *Framebuffer) BackgroundColor() Color { return ColorFromHex(fb.background) }

// SetCurrentColor sets the color used by Point and Line.
func (fb *Framebuffer) SetCurrentColor(c Color) { fb.current = c.Hex() }

// CurrentColor returns the color used by Point and Line.
func (fb *Framebuffer) CurrentColor() Color { return ColorFromHex(fb.current) }

// Write stores c at (x, y) when depth is strictly nearer than the stored
// value. Out-of-range coordinates are ignored. Reports whether the pixel
// was written.
func (fb *Framebuffer) Write(x, y int, depth float64, c Color) bool {
	return fb.write(x, y, depth, c.Hex())
}

// Point writes the current draw color at (x, y) under the depth test.
func (fb *Framebuffer) Point(x, y int, depth float64) bool {
	return fb.write(x, y, depth, fb.current)
}

func (fb *Framebuffer) write(x, y int, depth float64, packed uint32) bool {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return false
	}
	i := y*fb.Width + x
	if !(depth < fb.Depth[i]) {
		return false
	}
	fb.Color[i] = packed
	fb.Depth[i] = depth
	return true
}

// Line draws from (x0, y0) to (x1, y1), both ends included, with integer
// Bresenham stepping. Every stepped pixel goes through the depth test with
// the current draw color.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, depth float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.Point(x0, y0, depth)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// At returns the color stored at (x, y), or the background when out of range.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return fb.BackgroundColor()
	}
	return ColorFromHex(fb.Color[y*fb.Width+x])
}

// DepthAt returns the stored depth at (x, y), +Inf when out of range.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
