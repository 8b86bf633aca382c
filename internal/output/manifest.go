package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest describes a rendered frame sequence.
type Manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Format Format          `json:"format"`
	Frames []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	Time  float64 `json:"time"`
	Image string  `json:"image"` // relative to the manifest
}

// WriteManifest writes the successful results as manifest.json-style JSON
// to path. Failed frames are left out.
func WriteManifest(path string, width, height int, format Format, results []Result) error {
	m := Manifest{Width: width, Height: height, Format: format, Frames: []ManifestEntry{}}
	dir := filepath.Dir(path)
	for _, r := range results {
		if !r.Success {
			continue
		}
		rel, err := filepath.Rel(dir, r.Path)
		if err != nil {
			rel = r.Path
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Frame: r.Index,
			Time:  r.Time,
			Image: filepath.ToSlash(rel),
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("output: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("output: manifest %s: %w", path, err)
	}
	return nil
}
