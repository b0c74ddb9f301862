package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"voxel-raytracer/internal/batch"
	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/stats"
)

// RenderBatch renders an orbit sweep.
func RenderBatch(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	a, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		FOV:         cfg.FOV(),
		Workers:     cfg.Workers,
		Frames:      cfg.Frames,
		AnimateSun:  ctx.Bool("animate-sun"),
		Label:       cfg.LabelFrames || ctx.Bool("label"),
	}
	switch {
	case ctx.Bool("cycle-presets"):
		batchCfg.Presets = a.world.AllPresets()
	case cfg.Preset != "":
		p, ok := a.world.Preset(cfg.Preset)
		if !ok {
			return fmt.Errorf("unknown preset %q", cfg.Preset)
		}
		batchCfg.Presets = []scene.Preset{p}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	logger.Noticef("rendering %d frames at %dx%d with %d workers to %s",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Workers, cfg.OutputDir)

	start := time.Now()
	frames := batch.Plan(batchCfg, a.world)
	results := batch.Run(batchCfg, a.world.Scene, frames)
	elapsed := time.Since(start)

	var failed int
	frameStats := make([]stats.Frame, len(results))
	for i, r := range results {
		frameStats[i] = stats.Frame{
			Name:    batch.FrameName(r.Index),
			Pixels:  r.Pixels,
			Elapsed: r.Elapsed,
			Success: r.Success,
		}
		if !r.Success {
			failed++
			logger.Errorf("frame %d: %s", r.Index, r.Error)
		}
	}
	displayFrameStats(frameStats, elapsed)

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, frames, results); err != nil {
		logger.Warningf("manifest write failed: %v", err)
	} else {
		logger.Noticef("manifest: %s", manifestPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d frames failed", failed, len(results))
	}
	return nil
}
