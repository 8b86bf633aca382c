package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

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
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	width := flag.Int("width", 0, "Framebuffer width (default: 800)")
	height := flag.Int("height", 0, "Framebuffer height (default: 600)")
	format := flag.String("format", "", "Output format: png, webp, tga, bmp (default: png)")
	scale := flag.Int("scale", 0, "Integer upscale of every written frame (default: 1)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	meshFile := flag.String("mesh", "", "Wavefront OBJ used for every body (default: UV sphere)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	debug := flag.Bool("debug", false, "Verbose development logging")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Mesh:      *meshFile,
		Frames:    *frames,
		Width:     *width,
		Height:    *height,
		Workers:   *workers,
		Scale:     *scale,
		Debug:     *debug,
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

	if err := run(cfg); err != nil {
		logger.Log.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Validate already checked these
	format, _ := cfg.OutputFormat()
	fill, _ := cfg.Fill()
	bg, _ := cfg.BackgroundColor()

	vertices, err := loadMesh(cfg)
	if err != nil {
		return err
	}

	rast := raster.NewRasterizer(cfg.Width, cfg.Height)
	rast.Fill = fill

	sc := &scene.Scene{
		Bodies:     cfg.SceneBodies(),
		Mesh:       vertices,
		Camera:     cfg.SceneCamera(),
		Noise:      noise.NewPerlin(cfg.NoiseSeed),
		Raster:     rast,
		ShowOrbits: cfg.ShowOrbits,
	}

	fb := raster.NewFramebuffer(cfg.Width, cfg.Height)
	fb.SetBackgroundColor(bg)

	fmt.Printf("Planet rasterizer → %s\n", format)
	fmt.Printf("Frames: %d, Size: %dx%d, Bodies: %d, Triangles/body: %d, Workers: %d\n",
		cfg.Frames, cfg.Width, cfg.Height, len(sc.Bodies), len(vertices)/3, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	w := output.NewWriter(output.Config{
		OutputDir: cfg.OutputDir,
		Format:    format,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
		Progress:  2 * time.Second,
	})

	// Rasterization stays on this goroutine; only encoding fans out.
	var total raster.DrawStats
	rendered := 0
	for i := 0; i < cfg.Frames; i++ {
		if ctx.Err() != nil {
			logger.Log.Warn("interrupted", zap.Int("frames_rendered", rendered))
			break
		}

		t := float64(i) * cfg.TimeStep
		sc.Update(t)
		stats := sc.Render(fb, uint32(i))
		total.Add(stats)

		logger.Log.Debug("frame rendered",
			zap.Int("frame", i),
			zap.Float64("time", t),
			zap.Int("triangles", stats.Triangles),
			zap.Int("skipped", stats.Skipped),
			zap.Int("fragments", stats.Fragments),
			zap.Int("written", stats.Written))

		w.Submit(output.Frame{Index: i, Time: t, Image: output.ToImage(fb)})
		rendered++
	}

	results := w.Close()

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []output.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Written: %d/%d\n", success, rendered)
	logger.Log.Info("render finished",
		zap.Int("frames", rendered),
		zap.Int("failed", failed),
		zap.Int("triangles", total.Triangles),
		zap.Int("skipped", total.Skipped),
		zap.Int("fragments", total.Fragments),
		zap.Int("written", total.Written),
		zap.Duration("elapsed", elapsed))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors[:min(len(errors), 20)] {
			fmt.Printf("  frame %d: %s\n", e.Index, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("render: create %s: %w", cfg.OutputDir, err)
	}
	if err := output.WriteManifest(manifestPath, cfg.Width*cfg.Scale, cfg.Height*cfg.Scale, format, results); err != nil {
		logger.Log.Warn("manifest write failed", zap.Error(err))
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return fmt.Errorf("render: %d of %d frames failed", failed, rendered)
	}
	return nil
}

func loadMesh(cfg config.Config) ([]raster.Vertex, error) {
	if cfg.Mesh == "" {
		return mesh.Sphere(cfg.SphereStacks, cfg.SphereSlices), nil
	}
	vertices, err := mesh.LoadOBJ(cfg.Mesh)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	logger.Log.Info("mesh loaded", zap.String("path", cfg.Mesh), zap.Int("triangles", len(vertices)/3))
	return vertices, nil
}
