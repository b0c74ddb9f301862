package batch

import (
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"voxel-raytracer/internal/camera"
	"voxel-raytracer/internal/log"
	"voxel-raytracer/internal/postprocess"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/skybox"
	"voxel-raytracer/internal/tracer"
)

var logger = log.New("batch")

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	FOV         float64
	Workers     int
	Frames      int

	// Presets are cycled one per frame; empty keeps the scene lights.
	Presets []scene.Preset
	// AnimateSun moves the first light along a day arc over the sweep.
	AnimateSun bool
	// Label stamps the frame number and preset onto each image.
	Label bool
}

// Frame is one fully resolved render job. Frames share the scene but own
// their camera and light snapshot.
type Frame struct {
	Index  int
	Yaw    float64
	Preset string
	Camera camera.Camera
	Lights []scene.Light
	Sky    skybox.Sampler
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Path    string
	Success bool
	Error   string
	Pixels  int
	Elapsed time.Duration
}

// Plan lays out an orbit sweep: frame i sees the scene from yaw i*2π/n
// around the camera target.
func Plan(cfg Config, w *scene.World) []Frame {
	n := cfg.Frames
	frames := make([]Frame, n)
	for i := 0; i < n; i++ {
		yaw := float64(i) * 2 * math.Pi / float64(n)

		cam := w.Camera
		cam.Orbit(yaw, 0)

		f := Frame{Index: i, Yaw: yaw, Camera: cam, Lights: w.CopyLights(), Sky: w.Sky}
		if len(cfg.Presets) > 0 {
			p := cfg.Presets[i%len(cfg.Presets)]
			f.Preset = p.Name
			f.Lights = p.Apply(f.Lights)
			f.Sky = p.Sky(w.Sky)
		}
		if cfg.AnimateSun {
			f.Lights = animateSun(f.Lights, float64(i)/float64(n))
		}
		frames[i] = f
	}
	return frames
}

func animateSun(lights []scene.Light, t float64) []scene.Light {
	radius, intensity := 10.0, 2.0
	if len(lights) > 0 {
		if r := lights[0].Position.Len(); r > 0 {
			radius = r
		}
		intensity = lights[0].Intensity
	}
	sun := scene.SunArc(radius, intensity, t)
	if len(lights) == 0 {
		return []scene.Light{sun}
	}
	out := make([]scene.Light, len(lights))
	copy(out, lights)
	out[0] = sun
	return out
}

// Run renders all frames using a worker pool. Each frame renders on a
// single goroutine; parallelism is across frames.
func Run(cfg Config, sc *scene.Scene, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					logger.Infof("[%d/%d] %.2f frames/sec", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, sc, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// FrameName returns the image file name of frame i, relative to the output dir.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%03d.webp", i)
}

func processFrame(cfg Config, sc *scene.Scene, f Frame) Result {
	res := Result{Index: f.Index, Path: filepath.Join(cfg.OutputDir, FrameName(f.Index))}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	fb := raster.NewFrameBuffer(cfg.Width*ss, cfg.Height*ss)
	stats := tracer.Render(fb, sc, f.Camera, f.Lights, f.Sky, tracer.Options{FOV: cfg.FOV})
	res.Pixels = stats.Pixels
	res.Elapsed = stats.Elapsed

	img := fb.Image()

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	if cfg.Label {
		label := fmt.Sprintf("#%d", f.Index)
		if f.Preset != "" {
			label += " " + f.Preset
		}
		img = postprocess.Annotate(img, label)
	}

	if err := postprocess.Save(res.Path, img); err != nil {
		res.Error = err.Error()
		logger.Warningf("frame %d: %v", f.Index, err)
		return res
	}

	logger.Debugf("frame %d rendered in %v", f.Index, stats.Elapsed)
	res.Success = true
	return res
}
