package output

import (
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"planet-raster/internal/raster"
)

func testFramebuffer() *raster.Framebuffer {
	fb := raster.NewFramebuffer(4, 3)
	fb.Write(1, 2, 0, raster.RGB(10, 20, 30))
	return fb
}

func TestToImage(t *testing.T) {
	img := ToImage(testFramebuffer())
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	i := img.PixOffset(1, 2)
	if got := img.Pix[i : i+4]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("pixel (1,2) = %v, want [10 20 30 255]", got)
	}
	if a := img.Pix[3]; a != 255 {
		t.Errorf("background alpha = %d, want 255", a)
	}
}

func TestUpscale(t *testing.T) {
	img := ToImage(testFramebuffer())
	big := Upscale(img, 3)
	if big.Bounds().Dx() != 12 || big.Bounds().Dy() != 9 {
		t.Fatalf("bounds = %v, want 12×9", big.Bounds())
	}
	for y := 6; y < 9; y++ {
		for x := 3; x < 6; x++ {
			if c := big.NRGBAAt(x, y); c.R != 10 || c.G != 20 || c.B != 30 {
				t.Errorf("(%d,%d) = %v, want the (1,2) source pixel", x, y, c)
			}
		}
	}
	if Upscale(img, 1) != img {
		t.Error("factor 1 should return the input")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{".WEBP", FormatWebP, false},
		{"Tga", FormatTGA, false},
		{"bmp", FormatBMP, false},
		{"gif", "", true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestWriterRoundTrip(t *testing.T) {
	decoders := map[Format]func(f *os.File) (image.Image, error){
		FormatPNG: func(f *os.File) (image.Image, error) { return png.Decode(f) },
		FormatTGA: func(f *os.File) (image.Image, error) { return tga.Decode(f) },
		FormatBMP: func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			w := NewWriter(Config{OutputDir: dir, Format: format, Scale: 2, Workers: 2})
			for i := 0; i < 3; i++ {
				w.Submit(Frame{Index: i, Time: float64(i) * 0.5, Image: ToImage(testFramebuffer())})
			}
			results := w.Close()

			if len(results) != 3 {
				t.Fatalf("got %d results, want 3", len(results))
			}
			for i, r := range results {
				if r.Index != i || !r.Success {
					t.Fatalf("result %d = %+v", i, r)
				}
			}

			f, err := os.Open(results[2].Path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
				t.Errorf("decoded bounds = %v, want 8×6", img.Bounds())
			}
			r, g, b, _ := img.At(2, 4).RGBA()
			if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
				t.Errorf("decoded (2,4) = %d,%d,%d, want 10,20,30", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestWriteWebP(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{OutputDir: dir, Format: FormatWebP, Workers: 1})
	w.Submit(Frame{Index: 7, Image: ToImage(testFramebuffer())})
	results := w.Close()

	if len(results) != 1 || !results[0].Success {
		t.Fatalf("results = %+v", results)
	}
	if got, want := results[0].Path, filepath.Join(dir, "frame_0007.webp"); got != want {
		t.Errorf("path = %s, want %s", got, want)
	}
	if info, err := os.Stat(results[0].Path); err != nil || info.Size() == 0 {
		t.Errorf("stat %s: %v", results[0].Path, err)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Index: 0, Time: 0, Path: filepath.Join(dir, "frame_0000.png"), Success: true},
		{Index: 1, Time: 0.016, Path: filepath.Join(dir, "frame_0001.png"), Error: "disk full"},
		{Index: 2, Time: 0.032, Path: filepath.Join(dir, "frame_0002.png"), Success: true},
	}
	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, 80, 60, FormatPNG, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Width != 80 || m.Height != 60 || m.Format != FormatPNG {
		t.Errorf("header = %+v", m)
	}
	if len(m.Frames) != 2 || m.Frames[1].Frame != 2 || m.Frames[1].Image != "frame_0002.png" {
		t.Errorf("frames = %+v, want frames 0 and 2", m.Frames)
	}
}

func TestWriteManifestWrapsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "manifest.json")
	err := WriteManifest(path, 1, 1, FormatPNG, nil)
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want it to wrap fs.ErrNotExist", err)
	}
	if !strings.HasPrefix(err.Error(), "output: manifest ") {
		t.Errorf("err = %q, want the output: manifest prefix", err)
	}
}

func TestWriterCloseTwice(t *testing.T) {
	w := NewWriter(Config{OutputDir: t.TempDir(), Format: FormatPNG, Workers: 1})
	w.Submit(Frame{Index: 0, Image: ToImage(testFramebuffer())})

	first := w.Close()
	second := w.Close()
	if len(first) != 1 || len(second) != 1 || second[0] != first[0] {
		t.Errorf("Close results = %+v then %+v", first, second)
	}
}
