package main

import (
	"github.com/urfave/cli"

	"voxel-raytracer/internal/session"
	"voxel-raytracer/internal/viewer"
)

// View opens the interactive window.
func View(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	a, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	return viewer.Run(viewer.Config{
		Title:        "voxeltrace",
		Width:        cfg.Width,
		Height:       cfg.Height,
		WindowWidth:  cfg.WindowWidth,
		WindowHeight: cfg.WindowHeight,
		FOV:          cfg.FOV(),
		Workers:      cfg.Workers,
		Controls: session.Controls{
			RotationSpeed: cfg.RotationSpeed,
			DollyStep:     cfg.DollyStep,
		},
	}, a.world, cfg.Preset)
}
