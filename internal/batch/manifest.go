package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index     int     `json:"index"`
	Yaw       float64 `json:"yaw"`
	Preset    string  `json:"preset,omitempty"`
	Image     string  `json:"image"`
	Success   bool    `json:"success"`
	Error     string  `json:"error,omitempty"`
	ElapsedMS int64   `json:"elapsed_ms"`
}

// WriteManifest writes manifest.json describing every planned frame.
// results is indexed like frames.
func WriteManifest(path string, frames []Frame, results []Result) error {
	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		entries[i] = ManifestEntry{
			Index:  f.Index,
			Yaw:    f.Yaw,
			Preset: f.Preset,
			Image:  FrameName(f.Index),
		}
		if i < len(results) {
			entries[i].Success = results[i].Success
			entries[i].Error = results[i].Error
			entries[i].ElapsedMS = results[i].Elapsed.Milliseconds()
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
