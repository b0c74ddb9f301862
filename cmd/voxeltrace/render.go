package main

import (
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"voxel-raytracer/internal/postprocess"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/stats"
	"voxel-raytracer/internal/tracer"
)

// RenderFrame renders a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	a, err := loadWorld(cfg)
	if err != nil {
		return err
	}
	if err := applyPreset(a.world, cfg.Preset); err != nil {
		return err
	}

	cam := a.world.Camera
	if yaw, pitch := ctx.Float64("yaw"), ctx.Float64("pitch"); yaw != 0 || pitch != 0 {
		cam.Orbit(yaw, pitch)
	}
	if d := ctx.Float64("dolly"); d != 0 {
		cam.Dolly(d)
	}

	out := ctx.String("out")
	if out == "" {
		out = filepath.Join(cfg.OutputDir, "frame.webp")
	}

	start := time.Now()
	ss := cfg.Supersample
	fb := raster.NewFrameBuffer(cfg.Width*ss, cfg.Height*ss)
	st := tracer.Render(fb, a.world.Scene, cam, a.world.Lights, a.world.Sky, tracer.Options{
		FOV:     cfg.FOV(),
		Workers: cfg.Workers,
	})

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	if err := postprocess.Save(out, img); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)

	displayFrameStats([]stats.Frame{{
		Name:    filepath.Base(out),
		Pixels:  st.Pixels,
		Elapsed: st.Elapsed,
		Success: true,
	}}, time.Since(start))
	return nil
}
