package mesh

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJFanTriangulation(t *testing.T) {
	verts, err := ParseOBJ(strings.NewReader(quadOBJ), "quad.obj")
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(verts) != 6 {
		t.Fatalf("got %d vertices, want 6 (two triangles)", len(verts))
	}

	want := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for i, w := range want {
		if verts[i].Position != w {
			t.Errorf("vertex %d position = %v, want %v", i, verts[i].Position, w)
		}
		if verts[i].Normal != (mgl64.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want (0,0,1)", i, verts[i].Normal)
		}
	}
	if verts[2].TexCoords != (mgl64.Vec2{1, 1}) {
		t.Errorf("vertex 2 uv = %v, want (1,1)", verts[2].TexCoords)
	}
}

func TestParseOBJNegativeIndicesAndFlatNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	verts, err := ParseOBJ(strings.NewReader(src), "neg.obj")
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(verts) != 3 {
		t.Fatalf("got %d vertices, want 3", len(verts))
	}
	if verts[1].Position != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("vertex 1 = %v, want (1,0,0)", verts[1].Position)
	}
	for i, v := range verts {
		if !v.Normal.ApproxEqual(mgl64.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d flat normal = %v, want (0,0,1)", i, v.Normal)
		}
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad float", "v 0 x 0\n"},
		{"index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tc.src), tc.name); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := ParseOBJ(strings.NewReader("v 0 0 0\n"), "empty.obj")
	if !errors.Is(err, ErrNoFaces) {
		t.Errorf("err = %v, want ErrNoFaces", err)
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0644); err != nil {
		t.Fatal(err)
	}
	verts, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if len(verts) != 6 {
		t.Errorf("got %d vertices, want 6", len(verts))
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSphere(t *testing.T) {
	verts := Sphere(8, 12)
	if got, want := len(verts), SphereTriangles(8, 12)*3; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	for i, v := range verts {
		if math.Abs(v.Position.Len()-1) > 1e-9 {
			t.Fatalf("vertex %d at distance %v from origin, want 1", i, v.Position.Len())
		}
		if v.Normal != v.Position {
			t.Fatalf("vertex %d normal %v differs from position %v", i, v.Normal, v.Position)
		}
	}

	if got := SphereTriangles(0, 0); got != 6 {
		t.Errorf("SphereTriangles(0,0) = %d, want 6 (clamped to 2×3)", got)
	}
}
