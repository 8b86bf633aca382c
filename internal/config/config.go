package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"planet-raster/internal/noise"
	"planet-raster/internal/output"
	"planet-raster/internal/raster"
	"planet-raster/internal/scene"
)

// Config holds all render settings.
type Config struct {
	// Output
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	Scale     int    `json:"scale"`
	Workers   int    `json:"workers"`

	// Frame
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Frames     int     `json:"frames"`
	TimeStep   float64 `json:"time_step"`
	Background string  `json:"background"`
	FillRule   string  `json:"fill_rule"`
	ShowOrbits bool    `json:"show_orbits"`

	// Scene
	Mesh         string       `json:"mesh"`
	SphereStacks int          `json:"sphere_stacks"`
	SphereSlices int          `json:"sphere_slices"`
	NoiseSeed    int64        `json:"noise_seed"`
	Camera       CameraConfig `json:"camera"`
	Bodies       []BodyConfig `json:"bodies"`

	Debug bool `json:"debug"`
}

// CameraConfig is the JSON form of scene.Camera. Zero fields take the
// defaults of scene.DefaultCamera.
type CameraConfig struct {
	Eye    *[3]float64 `json:"eye"`
	Target *[3]float64 `json:"target"`
	FOV    float64     `json:"fov"`
	Near   float64     `json:"near"`
	Far    float64     `json:"far"`
}

// BodyConfig is the JSON form of scene.Body.
type BodyConfig struct {
	Name        string  `json:"name"`
	Radius      float64 `json:"radius"`
	Surface     string  `json:"surface"`
	OrbitRadius float64 `json:"orbit_radius"`
	Speed       float64 `json:"speed"`
	Spin        float64 `json:"spin"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Mesh      string
	Frames    int
	Width     int
	Height    int
	Workers   int
	Scale     int
	Debug     bool
}

// Resolve applies CLI overrides, then fills every empty field with its
// default. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Debug {
		c.Debug = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = string(output.FormatPNG)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.TimeStep <= 0 {
		c.TimeStep = 0.016
	}
	if c.Background == "" {
		c.Background = "#000000"
	}
	if c.FillRule == "" {
		c.FillRule = "inclusive"
	}
	if c.SphereStacks <= 0 {
		c.SphereStacks = 24
	}
	if c.SphereSlices <= 0 {
		c.SphereSlices = 32
	}
	if c.NoiseSeed == 0 {
		c.NoiseSeed = noise.DefaultSeed
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Fill(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	return nil
}

// OutputFormat parses Format.
func (c *Config) OutputFormat() (output.Format, error) {
	return output.ParseFormat(c.Format)
}

// Fill maps "inclusive" or "top_left" to a raster.FillRule.
func (c *Config) Fill() (raster.FillRule, error) {
	switch strings.ReplaceAll(strings.ToLower(c.FillRule), "-", "_") {
	case "", "inclusive":
		return raster.FillInclusive, nil
	case "top_left", "topleft":
		return raster.FillTopLeft, nil
	}
	return 0, fmt.Errorf("config: unknown fill rule %q", c.FillRule)
}

// BackgroundColor parses "#RRGGBB" or "0xRRGGBB".
func (c *Config) BackgroundColor() (raster.Color, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(c.Background), "#"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || v > 0xFFFFFF {
		return raster.Color{}, fmt.Errorf("config: bad background color %q", c.Background)
	}
	return raster.ColorFromHex(uint32(v)), nil
}

// SceneCamera merges the camera section over scene.DefaultCamera.
func (c *Config) SceneCamera() scene.Camera {
	cam := scene.DefaultCamera()
	if c.Camera.Eye != nil {
		cam.Eye = mgl64.Vec3(*c.Camera.Eye)
	}
	if c.Camera.Target != nil {
		cam.Target = mgl64.Vec3(*c.Camera.Target)
	}
	if c.Camera.FOV > 0 {
		cam.FOV = c.Camera.FOV
	}
	if c.Camera.Near > 0 {
		cam.Near = c.Camera.Near
	}
	if c.Camera.Far > 0 {
		cam.Far = c.Camera.Far
	}
	return cam
}

// SceneBodies returns the configured bodies, or scene.DefaultSystem when
// none are configured.
func (c *Config) SceneBodies() []scene.Body {
	if len(c.Bodies) == 0 {
		return scene.DefaultSystem()
	}
	bodies := make([]scene.Body, len(c.Bodies))
	for i, bc := range c.Bodies {
		b := scene.NewBody(bc.Name, bc.Radius, raster.ParseSurface(bc.Surface), bc.OrbitRadius, bc.Speed)
		b.Spin = bc.Spin
		bodies[i] = b
	}
	return bodies
}
