package main

import (
	"os"

	"github.com/urfave/cli"

	"voxel-raytracer/internal/log"
)

var logger = log.New("voxeltrace")

func main() {
	app := cli.NewApp()
	app.Name = "voxeltrace"
	app.Usage = "ray trace voxel scenes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to a JSON config file",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	frameFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Usage: "scene description file (default: built-in cube)",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "frame width (default 600)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "frame height (default 400)",
		},
		cli.StringFlag{
			Name:  "preset, p",
			Usage: "lighting preset: day, sunset, night or one defined by the scene",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Usage: "render goroutines (default: NumCPU)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one frame of the scene and write it as WebP or PNG, chosen by the
output file extension. The camera can be orbited and dollied away from the
position stored in the scene before rendering.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output image (default: <output_dir>/frame.webp)",
				},
				cli.IntFlag{
					Name:  "supersample",
					Usage: "render at N times the resolution and filter down",
				},
				cli.Float64Flag{
					Name:  "yaw",
					Usage: "orbit the camera around its target by this many radians",
				},
				cli.Float64Flag{
					Name:  "pitch",
					Usage: "tilt the camera by this many radians",
				},
				cli.Float64Flag{
					Name:  "dolly",
					Usage: "move the camera toward its target by this distance",
				},
			}, frameFlags...),
			Action: RenderFrame,
		},
		{
			Name:  "batch",
			Usage: "render an orbit sweep around the scene",
			Description: `
Render frames evenly spaced on a full orbit around the camera target, one
goroutine per frame, and write them with a manifest.json to the output dir.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output directory (default: output_dir)",
				},
				cli.IntFlag{
					Name:  "frames, n",
					Usage: "number of frames (default 36)",
				},
				cli.IntFlag{
					Name:  "supersample",
					Usage: "render at N times the resolution and filter down",
				},
				cli.BoolFlag{
					Name:  "cycle-presets",
					Usage: "switch to the next lighting preset on every frame",
				},
				cli.BoolFlag{
					Name:  "animate-sun",
					Usage: "move the sun through a full day over the sweep",
				},
				cli.BoolFlag{
					Name:  "label",
					Usage: "stamp frame number and preset onto each image",
				},
			}, frameFlags...),
			Action: RenderBatch,
		},
		{
			Name:        "view",
			Usage:       "open an interactive window",
			Description: `W/S dolly, arrow keys orbit, 1/2/3 switch presets, Escape quits.`,
			Flags:       frameFlags,
			Action:      View,
		},
		{
			Name:  "serve",
			Usage: "serve frames and camera controls over HTTP",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "addr",
					Usage: "listen address (default :5053)",
				},
			}, frameFlags...),
			Action: Serve,
		},
		{
			Name:   "inspect",
			Usage:  "print the scene, texture index and host details",
			Flags:  frameFlags,
			Action: Inspect,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
