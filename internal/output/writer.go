package output

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"planet-raster/internal/logger"
)

// Config holds the settings shared by every frame of a batch.
type Config struct {
	OutputDir string
	Format    Format
	Scale     int // integer upscale, 1 keeps the framebuffer size
	Workers   int

	// Progress is the interval between progress log lines. Zero disables
	// the reporter.
	Progress time.Duration
}

// Frame is one finished image waiting to be written.
type Frame struct {
	Index int
	Time  float64 // animation time in seconds
	Image *image.NRGBA
}

// Result holds the outcome of writing one frame.
type Result struct {
	Index   int
	Time    float64
	Path    string
	Success bool
	Error   string
}

// Writer encodes frames to disk on a fixed pool of goroutines.
type Writer struct {
	cfg       Config
	frames    chan Frame
	wg        sync.WaitGroup
	done      chan struct{}
	processed atomic.Int64
	start     time.Time

	mu      sync.Mutex
	results []Result

	closeOnce sync.Once
}

// NewWriter starts the worker pool. Call Close once all frames are in.
func NewWriter(cfg Config) *Writer {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Format == "" {
		cfg.Format = FormatPNG
	}

	w := &Writer{
		cfg:    cfg,
		frames: make(chan Frame, cfg.Workers*2),
		done:   make(chan struct{}),
		start:  time.Now(),
	}

	if cfg.Progress > 0 {
		go w.report()
	}

	for i := 0; i < cfg.Workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for f := range w.frames {
				r := w.write(f)
				w.mu.Lock()
				w.results = append(w.results, r)
				w.mu.Unlock()
				w.processed.Add(1)
			}
		}()
	}
	return w
}

// Submit queues a frame. It blocks while every worker is busy and the
// queue is full. The writer owns f.Image afterwards.
func (w *Writer) Submit(f Frame) {
	w.frames <- f
}

// Close waits for every queued frame and returns the results ordered by
// frame index. Later calls return the same results. Submit must not be
// called after Close.
func (w *Writer) Close() []Result {
	w.closeOnce.Do(func() {
		close(w.frames)
		w.wg.Wait()
		close(w.done)

		sort.Slice(w.results, func(i, j int) bool { return w.results[i].Index < w.results[j].Index })
	})
	return w.results
}

// FramePath is where frame index is written.
func (w *Writer) FramePath(index int) string {
	return filepath.Join(w.cfg.OutputDir, fmt.Sprintf("frame_%04d%s", index, w.cfg.Format.Ext()))
}

func (w *Writer) report() {
	ticker := time.NewTicker(w.cfg.Progress)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			p := w.processed.Load()
			if p > 0 {
				rate := float64(p) / time.Since(w.start).Seconds()
				logger.Log.Info("frames written",
					zap.Int64("count", p),
					zap.Float64("frames_per_sec", rate))
			}
		}
	}
}

func (w *Writer) write(f Frame) Result {
	path := w.FramePath(f.Index)
	res := Result{Index: f.Index, Time: f.Time, Path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	out, err := os.Create(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer out.Close()

	if err := Encode(out, Upscale(f.Image, w.cfg.Scale), w.cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := out.Close(); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
