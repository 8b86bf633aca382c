// Package output turns finished framebuffers into image files.
package output

import (
	"image"

	"golang.org/x/image/draw"

	"planet-raster/internal/raster"
)

// ToImage copies fb into a new opaque NRGBA image.
func ToImage(fb *raster.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Color {
		j := i * 4
		img.Pix[j] = uint8(c >> 16)
		img.Pix[j+1] = uint8(c >> 8)
		img.Pix[j+2] = uint8(c)
		img.Pix[j+3] = 0xFF
	}
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbour
// sampling, keeping hard pixel edges. factor <= 1 returns img unchanged.
func Upscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
