// Package mesh produces the triangle lists drawn for every body: a
// Wavefront OBJ loader and a procedural UV sphere.
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"planet-raster/internal/raster"
)

// ErrNoFaces is returned for a mesh file without a single triangle.
var ErrNoFaces = errors.New("mesh: no faces")

// LoadOBJ reads an OBJ file and returns its faces as a flat triangle list.
func LoadOBJ(path string) ([]raster.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()
	return ParseOBJ(f, path)
}

type faceVertex struct {
	v, vt, vn int // resolved 0-based indices, -1 when absent
}

// ParseOBJ parses OBJ text. Polygons are fan-triangulated; faces without
// normals get their flat face normal. name only labels errors.
func ParseOBJ(r io.Reader, name string) ([]raster.Vertex, error) {
	var (
		positions []mgl64.Vec3
		uvs       []mgl64.Vec2
		normals   []mgl64.Vec3
		out       []raster.Vertex
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			continue
		}

		switch parts[0] {
		case "v":
			v, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("mesh: %s:%d: %w", name, lineNo, err)
			}
			positions = append(positions, mgl64.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("mesh: %s:%d: %w", name, lineNo, err)
			}
			uvs = append(uvs, mgl64.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("mesh: %s:%d: %w", name, lineNo, err)
			}
			normals = append(normals, mgl64.Vec3{v[0], v[1], v[2]})
		case "f":
			if len(parts) < 4 {
				return nil, fmt.Errorf("mesh: %s:%d: face needs 3 vertices, got %d", name, lineNo, len(parts)-1)
			}
			face := make([]faceVertex, 0, len(parts)-1)
			for _, tok := range parts[1:] {
				fv, err := parseFaceVertex(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("mesh: %s:%d: %w", name, lineNo, err)
				}
				face = append(face, fv)
			}
			for i := 1; i+1 < len(face); i++ {
				out = appendTriangle(out, positions, uvs, normals, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", name, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFaces, name)
	}
	return out, nil
}

func appendTriangle(out []raster.Vertex, pos []mgl64.Vec3, uvs []mgl64.Vec2, nrm []mgl64.Vec3, a, b, c faceVertex) []raster.Vertex {
	corners := [3]faceVertex{a, b, c}

	var flat mgl64.Vec3
	if a.vn < 0 || b.vn < 0 || c.vn < 0 {
		e1 := pos[b.v].Sub(pos[a.v])
		e2 := pos[c.v].Sub(pos[a.v])
		if n := e1.Cross(e2); n.Len() > 1e-12 {
			flat = n.Normalize()
		}
	}

	for _, fv := range corners {
		v := raster.Vertex{Position: pos[fv.v], Normal: flat, Color: raster.White}
		if fv.vn >= 0 {
			v.Normal = nrm[fv.vn]
		}
		if fv.vt >= 0 {
			v.TexCoords = uvs[fv.vt]
		}
		out = append(out, v)
	}
	return out
}

// parseFaceVertex reads "v", "v/vt", "v//vn" or "v/vt/vn".
func parseFaceVertex(tok string, nv, nvt, nvn int) (faceVertex, error) {
	fields := strings.Split(tok, "/")
	fv := faceVertex{v: -1, vt: -1, vn: -1}

	var err error
	if fv.v, err = resolveIndex(fields[0], nv); err != nil {
		return fv, fmt.Errorf("vertex %q: %w", tok, err)
	}
	if len(fields) > 1 && fields[1] != "" {
		if fv.vt, err = resolveIndex(fields[1], nvt); err != nil {
			return fv, fmt.Errorf("texcoord %q: %w", tok, err)
		}
	}
	if len(fields) > 2 && fields[2] != "" {
		if fv.vn, err = resolveIndex(fields[2], nvn); err != nil {
			return fv, fmt.Errorf("normal %q: %w", tok, err)
		}
	}
	return fv, nil
}

// resolveIndex turns a 1-based or negative OBJ index into a 0-based one.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return -1, fmt.Errorf("index %d out of range (have %d)", i, n)
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
