package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"voxel-raytracer/internal/stats"
)

// Inspect prints the scene contents, texture indexes and host details.
func Inspect(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	a, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	scenePath := cfg.SceneFile
	if scenePath == "" {
		scenePath = "(built-in)"
	}
	fmt.Printf("Scene: %s\n", scenePath)
	stats.WriteScene(os.Stdout, a.world)

	if cfg.TextureDir != "" {
		fmt.Printf("\nTextures: %s\n", cfg.TextureDir)
		stats.WriteTextures(os.Stdout, a.textures)
	}
	if cfg.SkyboxDir != "" {
		fmt.Printf("\nSky textures: %s\n", cfg.SkyboxDir)
		stats.WriteTextures(os.Stdout, a.skyTextures)
	}

	host, err := stats.HostInfo()
	if err != nil {
		return err
	}
	fmt.Println("\nHost:")
	stats.WriteHost(os.Stdout, host)
	return nil
}
