package raster

import "github.com/go-gl/mathgl/mgl64"

// Vertex holds the object-space attributes of one mesh corner.
type Vertex struct {
	Position  mgl64.Vec3
	Normal    mgl64.Vec3
	TexCoords mgl64.Vec2 // carried through, no shader samples it
	Color     Color
}

// ShadedVertex is a Vertex after the vertex shader ran. Screen holds pixel
// coordinates in x/y and the post-projection depth in z.
type ShadedVertex struct {
	Vertex
	Screen       mgl64.Vec3
	ScreenNormal mgl64.Vec3
}
