package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"voxel-raytracer/internal/config"
	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/stats"
	"voxel-raytracer/internal/texture"
)

// loadConfig reads the global config file, if any, and applies the
// command's flags on top.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	var cfg config.Config
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	cfg.Resolve(config.Flags{
		SceneFile:   ctx.String("scene"),
		OutputDir:   outDirFlag(ctx),
		Width:       ctx.Int("width"),
		Height:      ctx.Int("height"),
		Supersample: ctx.Int("supersample"),
		Workers:     ctx.Int("workers"),
		Frames:      ctx.Int("frames"),
		Preset:      ctx.String("preset"),
		ServerAddr:  ctx.String("addr"),
	})
	return cfg, nil
}

// outDirFlag returns --out for commands where it names a directory.
func outDirFlag(ctx *cli.Context) string {
	if ctx.Command.Name == "batch" {
		return ctx.String("out")
	}
	return ""
}

type assets struct {
	world       *scene.World
	textures    *texture.Index
	skyTextures *texture.Index
}

// loadWorld loads the configured scene or falls back to the built-in one.
func loadWorld(cfg config.Config) (*assets, error) {
	a := &assets{
		textures:    texture.BuildIndex(cfg.TextureDir),
		skyTextures: texture.BuildIndex(cfg.SkyboxDir),
	}
	logger.Infof("textures: %d indexed, sky textures: %d indexed", a.textures.Len(), a.skyTextures.Len())

	if cfg.SceneFile == "" {
		logger.Info("no scene file given, using the built-in scene")
		a.world = scene.Default()
		return a, nil
	}

	w, err := scene.Load(cfg.SceneFile, texture.NewCache(a.textures), texture.NewCache(a.skyTextures))
	if err != nil {
		return nil, err
	}
	logger.Infof("scene %s: %d blocks, %d lights", cfg.SceneFile, len(w.Scene.Objects), len(w.Lights))
	a.world = w
	return a, nil
}

// applyPreset replaces the world's lights and sky with the named preset.
func applyPreset(w *scene.World, name string) error {
	if name == "" {
		return nil
	}
	p, ok := w.Preset(name)
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	w.Lights = p.Apply(w.Lights)
	w.Sky = p.Sky(w.Sky)
	return nil
}

func displayFrameStats(frames []stats.Frame, wall time.Duration) {
	var buf bytes.Buffer
	stats.WriteFrames(&buf, frames, wall)

	if host, err := stats.HostInfo(); err != nil {
		logger.Warningf("host info unavailable: %v", err)
	} else {
		stats.WriteHost(&buf, host)
	}
	logger.Noticef("frame statistics\n%s", buf.String())
}
