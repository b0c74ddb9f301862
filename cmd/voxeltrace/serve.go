package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"voxel-raytracer/internal/server"
)

// Serve runs the HTTP preview server until interrupted.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	a, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		FOV:     cfg.FOV(),
		Workers: cfg.Workers,
	}, a.world)
	if cfg.Preset != "" && !srv.UsePreset(cfg.Preset) {
		return fmt.Errorf("unknown preset %q", cfg.Preset)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(cfg.ServerAddr) }()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}

	logger.Notice("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
