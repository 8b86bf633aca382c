package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"planet-raster/internal/output"
	"planet-raster/internal/raster"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})

	if c.Width != 800 || c.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", c.Width, c.Height)
	}
	if c.Frames != 120 || c.TimeStep != 0.016 {
		t.Errorf("frames/time step = %d/%v", c.Frames, c.TimeStep)
	}
	if c.Workers <= 0 || c.Scale != 1 {
		t.Errorf("workers/scale = %d/%d", c.Workers, c.Scale)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if f, _ := c.OutputFormat(); f != output.FormatPNG {
		t.Errorf("format = %q, want png", f)
	}
	if bg, _ := c.BackgroundColor(); bg != raster.Black {
		t.Errorf("background = %v, want black", bg)
	}
	if got := len(c.SceneBodies()); got != 8 {
		t.Errorf("default system has %d bodies, want 8", got)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	src := `{
		"width": 320, "height": 240, "format": "webp", "frames": 10,
		"background": "#102030", "fill_rule": "top-left",
		"camera": {"eye": [0, 5, 20], "fov": 60},
		"bodies": [{"name": "Solo", "radius": 2, "surface": "gas_giant", "orbit_radius": 3, "speed": 1, "spin": 0.5}]
	}`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.Resolve(Flags{Width: 640, Format: "tga"})

	if c.Width != 640 || c.Height != 240 {
		t.Errorf("size = %dx%d, want 640x240", c.Width, c.Height)
	}
	if c.Frames != 10 {
		t.Errorf("frames = %d, want 10", c.Frames)
	}
	if f, err := c.OutputFormat(); err != nil || f != output.FormatTGA {
		t.Errorf("format = %q, %v; want tga", f, err)
	}
	if fill, err := c.Fill(); err != nil || fill != raster.FillTopLeft {
		t.Errorf("fill = %v, %v; want top-left", fill, err)
	}
	if bg, err := c.BackgroundColor(); err != nil || bg != raster.RGB(0x10, 0x20, 0x30) {
		t.Errorf("background = %v, %v", bg, err)
	}

	cam := c.SceneCamera()
	if cam.Eye != (mgl64.Vec3{0, 5, 20}) || cam.FOV != 60 || cam.Far != 1000 {
		t.Errorf("camera = %+v", cam)
	}

	bodies := c.SceneBodies()
	if len(bodies) != 1 {
		t.Fatalf("got %d bodies, want 1", len(bodies))
	}
	if b := bodies[0]; b.Surface != raster.SurfaceGasGiant || b.Radius != 2 || b.Spin != 0.5 {
		t.Errorf("body = %+v", b)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "gif" }},
		{"fill rule", func(c *Config) { c.FillRule = "diagonal" }},
		{"background", func(c *Config) { c.Background = "#zzzzzz" }},
		{"background range", func(c *Config) { c.Background = "0x1000000" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c Config
			c.Resolve(Flags{})
			tc.mod(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}
