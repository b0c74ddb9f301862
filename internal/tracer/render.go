package tracer

import (
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/camera"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/skybox"
)

// DefaultFOV is the vertical field of view in radians.
const DefaultFOV = math.Pi / 3

// Target receives one color per pixel. With Workers > 1, Set is called
// concurrently for distinct pixels.
type Target interface {
	Size() (width, height int)
	Set(x, y int, c raster.Color)
}

// Options tunes a render pass.
type Options struct {
	FOV     float64 // vertical, radians; zero means DefaultFOV
	Workers int     // scan-line workers; zero or one renders on the caller's goroutine
}

// Stats summarizes a render pass.
type Stats struct {
	Pixels  int
	Elapsed time.Duration
}

// PixelsPerSecond returns the throughput of the pass.
func (s Stats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Elapsed.Seconds()
}

// Render fills every pixel of target with the color seen through it. The
// scene, lights and sky are only read, so the snapshot may be shared.
func Render(target Target, sc *scene.Scene, cam camera.Camera, lights []scene.Light, sky skybox.Sampler, opts Options) Stats {
	start := time.Now()
	width, height := target.Size()
	if width <= 0 || height <= 0 {
		return Stats{}
	}

	fov := opts.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	scale := math.Tan(fov / 2)
	aspect := float64(width) / float64(height)

	row := func(y int) {
		sy := (1 - 2*(float64(y)+0.5)/float64(height)) * scale
		for x := 0; x < width; x++ {
			sx := (2*(float64(x)+0.5)/float64(width) - 1) * aspect * scale
			dir := cam.TransformVector(mgl64.Vec3{sx, sy, -1})
			target.Set(x, y, CastRay(cam.Position, dir, sc, lights, 0, sky))
		}
	}

	if opts.Workers <= 1 {
		for y := 0; y < height; y++ {
			row(y)
		}
	} else {
		rows := make(chan int, height)
		for y := 0; y < height; y++ {
			rows <- y
		}
		close(rows)

		var wg sync.WaitGroup
		for w := 0; w < opts.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for y := range rows {
					row(y)
				}
			}()
		}
		wg.Wait()
	}

	return Stats{Pixels: width * height, Elapsed: time.Since(start)}
}
