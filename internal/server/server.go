// Package server exposes a scene over HTTP: clients steer the camera and
// lighting and fetch freshly rendered frames.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"voxel-raytracer/internal/log"
	"voxel-raytracer/internal/postprocess"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/session"
	"voxel-raytracer/internal/tracer"
)

var logger = log.New("server")

const (
	// MaxDimension bounds the width and height a client may request.
	MaxDimension = 4096
	// MaxOrbit bounds the yaw and pitch deltas of one orbit request, in radians.
	MaxOrbit = 2 * math.Pi
	// MaxDolly bounds the distance of one dolly request, in world units.
	MaxDolly = 1000.0
)

// Config holds frame defaults for the server.
type Config struct {
	Width   int
	Height  int
	FOV     float64
	Workers int
}

// Server guards one session behind a mutex. Handlers mutate the session
// under the lock; renders work on a snapshot taken under the lock.
type Server struct {
	cfg   Config
	sc    *scene.Scene
	mu    sync.Mutex
	state *session.State
	echo  *echo.Echo
}

type orbitRequest struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

type dollyRequest struct {
	Distance float64 `json:"distance"`
}

type cameraResponse struct {
	Position [3]float64 `json:"position"`
	Target   [3]float64 `json:"target"`
	Up       [3]float64 `json:"up"`
	Yaw      float64    `json:"yaw"`
	Pitch    float64    `json:"pitch"`
	Distance float64    `json:"distance"`
	Preset   string     `json:"preset"`
}

// New builds a server for world.
func New(cfg Config, w *scene.World) *Server {
	s := &Server{cfg: cfg, sc: w.Scene, state: session.NewState(w)}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(corsMiddleware)

	e.GET("/frame", s.getFrame)
	e.GET("/camera", s.getCamera)
	e.POST("/camera/orbit", s.orbit)
	e.POST("/camera/dolly", s.dolly)
	e.GET("/presets", s.listPresets)
	e.POST("/preset/:name", s.usePreset)

	s.echo = e
	return s
}

// UsePreset selects the starting preset.
func (s *Server) UsePreset(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UsePreset(name)
}

// Handler returns the HTTP handler, e.g. for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	logger.Noticef("serving on %s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

func (s *Server) getFrame(c echo.Context) error {
	format, err := postprocess.ParseFormat(queryDefault(c, "format", string(postprocess.WebP)))
	if err != nil {
		return badRequest(c, err)
	}
	width, err := dimension(c, "width", s.cfg.Width)
	if err != nil {
		return badRequest(c, err)
	}
	height, err := dimension(c, "height", s.cfg.Height)
	if err != nil {
		return badRequest(c, err)
	}

	s.mu.Lock()
	snap := s.state.Snapshot()
	s.mu.Unlock()

	fb := raster.NewFrameBuffer(width, height)
	stats := tracer.Render(fb, s.sc, snap.Camera, snap.Lights, snap.Sky, tracer.Options{FOV: s.cfg.FOV, Workers: s.cfg.Workers})
	logger.Debugf("frame %dx%d rendered in %v", width, height, stats.Elapsed)

	var buf bytes.Buffer
	if err := postprocess.Encode(&buf, fb.Image(), format); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (s *Server) getCamera(c echo.Context) error {
	s.mu.Lock()
	resp := s.cameraLocked()
	s.mu.Unlock()
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) orbit(c echo.Context) error {
	var req orbitRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := bounded("yaw", req.Yaw, MaxOrbit); err != nil {
		return badRequest(c, err)
	}
	if err := bounded("pitch", req.Pitch, MaxOrbit); err != nil {
		return badRequest(c, err)
	}

	s.mu.Lock()
	s.state.Camera.Orbit(req.Yaw, req.Pitch)
	resp := s.cameraLocked()
	s.mu.Unlock()
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) dolly(c echo.Context) error {
	var req dollyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := bounded("distance", req.Distance, MaxDolly); err != nil {
		return badRequest(c, err)
	}

	s.mu.Lock()
	s.state.Camera.Dolly(req.Distance)
	resp := s.cameraLocked()
	s.mu.Unlock()
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) listPresets(c echo.Context) error {
	s.mu.Lock()
	presets := s.state.Presets()
	s.mu.Unlock()

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return c.JSON(http.StatusOK, names)
}

func (s *Server) usePreset(c echo.Context) error {
	name := c.Param("name")

	s.mu.Lock()
	ok := s.state.UsePreset(name)
	resp := s.cameraLocked()
	s.mu.Unlock()

	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("unknown preset %q", name)})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) cameraLocked() cameraResponse {
	cam := s.state.Camera
	yaw, pitch := cam.Angles()
	return cameraResponse{
		Position: cam.Position,
		Target:   cam.Target,
		Up:       cam.Up,
		Yaw:      yaw,
		Pitch:    pitch,
		Distance: cam.Distance(),
		Preset:   s.state.Preset,
	}
}

func queryDefault(c echo.Context, name, def string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return def
}

func dimension(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > MaxDimension {
		return 0, fmt.Errorf("%s must be an integer in [1, %d]", name, MaxDimension)
	}
	return n, nil
}

// bounded rejects non-finite values and magnitudes above limit.
func bounded(name string, v, limit float64) error {
	if math.IsNaN(v) || math.Abs(v) > limit {
		return fmt.Errorf("%s must be a finite number in [-%g, %g]", name, limit, limit)
	}
	return nil
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}
