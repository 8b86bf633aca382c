// Command viewer shows the animated system in a desktop window.
//
// Space pauses, O toggles the orbit overlay, Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"planet-raster/internal/config"
	"planet-raster/internal/logger"
	"planet-raster/internal/mesh"
	"planet-raster/internal/noise"
	"planet-raster/internal/output"
	"planet-raster/internal/raster"
	"planet-raster/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Framebuffer width (default: 800)")
	height := flag.Int("height", 0, "Framebuffer height (default: 600)")
	scale := flag.Int("scale", 0, "Window scale factor (default: 1)")
	meshFile := flag.String("mesh", "", "Wavefront OBJ used for every body (default: UV sphere)")
	debug := flag.Bool("debug", false, "Verbose development logging")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Mesh:   *meshFile,
		Width:  *width,
		Height: *height,
		Scale:  *scale,
		Debug:  *debug,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	g, err := newGame(cfg)
	if err != nil {
		logger.Log.Error("viewer setup failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	ebiten.SetWindowTitle("Planet rasterizer")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		logger.Log.Error("viewer stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

type game struct {
	scene    *scene.Scene
	fb       *raster.Framebuffer
	fbImg    *ebiten.Image
	timeStep float64

	frame  uint32
	paused bool
}

func newGame(cfg config.Config) (*game, error) {
	fill, _ := cfg.Fill()
	bg, _ := cfg.BackgroundColor()

	vertices := mesh.Sphere(cfg.SphereStacks, cfg.SphereSlices)
	if cfg.Mesh != "" {
		var err error
		if vertices, err = mesh.LoadOBJ(cfg.Mesh); err != nil {
			return nil, fmt.Errorf("viewer: %w", err)
		}
	}

	rast := raster.NewRasterizer(cfg.Width, cfg.Height)
	rast.Fill = fill

	fb := raster.NewFramebuffer(cfg.Width, cfg.Height)
	fb.SetBackgroundColor(bg)

	return &game{
		scene: &scene.Scene{
			Bodies:     cfg.SceneBodies(),
			Mesh:       vertices,
			Camera:     cfg.SceneCamera(),
			Noise:      noise.NewPerlin(cfg.NoiseSeed),
			Raster:     rast,
			ShowOrbits: cfg.ShowOrbits,
		},
		fb:       fb,
		fbImg:    ebiten.NewImage(cfg.Width, cfg.Height),
		timeStep: cfg.TimeStep,
	}, nil
}

func (g *game) Update() error {
	if err := g.handleKeys(inpututil.IsKeyJustPressed); err != nil {
		return err
	}
	if g.paused {
		return nil
	}

	g.scene.Update(float64(g.frame) * g.timeStep)
	stats := g.scene.Render(g.fb, g.frame)
	if g.frame%300 == 0 {
		logger.Log.Debug("frame rendered",
			zap.Uint32("frame", g.frame),
			zap.Int("fragments", stats.Fragments),
			zap.Int("written", stats.Written),
			zap.Float64("tps", ebiten.ActualTPS()))
	}
	g.frame++
	return nil
}

// handleKeys applies every key pressed this tick. Keys are independent, so
// several can toggle in the same tick.
func (g *game) handleKeys(pressed func(ebiten.Key) bool) error {
	if pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if pressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if pressed(ebiten.KeyO) {
		g.scene.ShowOrbits = !g.scene.ShowOrbits
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.fbImg.WritePixels(output.ToImage(g.fb).Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
