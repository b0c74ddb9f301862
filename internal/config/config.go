package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"voxel-raytracer/internal/mathutil"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SceneFile  string `json:"scene_file"`
	TextureDir string `json:"texture_dir"`
	SkyboxDir  string `json:"skybox_dir"`
	OutputDir  string `json:"output_dir"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	FOVDegrees  float64 `json:"fov_degrees"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`
	Preset      string  `json:"preset"` // empty keeps the scene lights

	// Batch settings
	Frames      int  `json:"frames"`
	LabelFrames bool `json:"label_frames"`

	// Interactive settings
	WindowWidth   int     `json:"window_width"`
	WindowHeight  int     `json:"window_height"`
	RotationSpeed float64 `json:"rotation_speed"`
	DollyStep     float64 `json:"dolly_step"`
	ServerAddr    string  `json:"server_addr"`

	// baseDir is the directory relative paths resolve against.
	baseDir string
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
	cfg.baseDir = filepath.Dir(path)

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Preset != "" {
		c.Preset = flags.Preset
	}
	if flags.ServerAddr != "" {
		c.ServerAddr = flags.ServerAddr
	}

	// Resolve relative paths against the config file directory
	c.SceneFile = c.abs(c.SceneFile)
	c.TextureDir = c.abs(c.TextureDir)
	c.SkyboxDir = c.abs(c.SkyboxDir)
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	c.OutputDir = c.abs(c.OutputDir)

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 600
	}
	if c.Height <= 0 {
		c.Height = 400
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		c.FOVDegrees = 60
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = 800
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 600
	}
	if c.RotationSpeed <= 0 {
		c.RotationSpeed = math.Pi / 8
	}
	if c.DollyStep <= 0 {
		c.DollyStep = 0.2
	}
	if c.ServerAddr == "" {
		c.ServerAddr = ":5053"
	}
}

// FOV returns the vertical field of view in radians.
func (c Config) FOV() float64 {
	return mathutil.Deg2Rad(c.FOVDegrees)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneFile   string
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Frames      int
	Preset      string
	ServerAddr  string
}

func (c Config) abs(path string) string {
	if path == "" || filepath.IsAbs(path) || c.baseDir == "" {
		return path
	}
	return filepath.Join(c.baseDir, path)
}
