// Package viewer shows a live render of a scene in a window and maps
// keyboard input onto the camera and lighting presets.
package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"voxel-raytracer/internal/log"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/session"
	"voxel-raytracer/internal/tracer"
)

var logger = log.New("viewer")

// Config sizes the window and the internal framebuffer.
type Config struct {
	Title        string
	Width        int // framebuffer
	Height       int
	WindowWidth  int
	WindowHeight int
	FOV          float64
	Workers      int
	Controls     session.Controls
}

type heldKey struct {
	key    ebiten.Key
	action session.Action
}

var held = []heldKey{
	{ebiten.KeyW, session.DollyIn},
	{ebiten.KeyS, session.DollyOut},
	{ebiten.KeyLeft, session.OrbitLeft},
	{ebiten.KeyRight, session.OrbitRight},
	{ebiten.KeyUp, session.OrbitUp},
	{ebiten.KeyDown, session.OrbitDown},
}

var pressed = []heldKey{
	{ebiten.Key1, session.PresetDay},
	{ebiten.Key2, session.PresetSunset},
	{ebiten.Key3, session.PresetNight},
}

// Game implements ebiten.Game.
type Game struct {
	cfg   Config
	sc    *scene.Scene
	state *session.State

	fb     *raster.FrameBuffer
	pixels []byte
	frame  *ebiten.Image
}

// NewGame prepares a viewer for world.
func NewGame(cfg Config, w *scene.World) *Game {
	return &Game{
		cfg:    cfg,
		sc:     w.Scene,
		state:  session.NewState(w),
		fb:     raster.NewFrameBuffer(cfg.Width, cfg.Height),
		pixels: make([]byte, 4*cfg.Width*cfg.Height),
	}
}

// State exposes the mutable view state, e.g. to select an initial preset.
func (g *Game) State() *session.State {
	return g.state
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var actions []session.Action
	for _, k := range held {
		if ebiten.IsKeyPressed(k.key) {
			actions = append(actions, k.action)
		}
	}
	for _, k := range pressed {
		if inpututil.IsKeyJustPressed(k.key) {
			actions = append(actions, k.action)
		}
	}
	if len(actions) > 0 {
		g.state.Apply(actions, g.cfg.Controls)
		logger.Debugf("camera at %v, preset %q", g.state.Camera.Position, g.state.Preset)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	tracer.Render(g.fb, g.sc, g.state.Camera, g.state.Lights, g.state.Sky, tracer.Options{
		FOV:     g.cfg.FOV,
		Workers: g.cfg.Workers,
	})
	g.fb.CopyTo(g.pixels)
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.cfg.Width, g.cfg.Height)
	}
	g.frame.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.WindowWidth)/float64(g.cfg.Width), float64(g.cfg.WindowHeight)/float64(g.cfg.Height))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.frame, op)

	ebiten.SetWindowTitle(title(g.cfg.Title, g.state.Preset, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg Config, w *scene.World, preset string) error {
	g := NewGame(cfg, w)
	if preset != "" && !g.state.UsePreset(preset) {
		return fmt.Errorf("viewer: unknown preset %q", preset)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(title(cfg.Title, g.state.Preset, 0))
	logger.Infof("opening %dx%d window, rendering %dx%d", cfg.WindowWidth, cfg.WindowHeight, cfg.Width, cfg.Height)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

func title(base, preset string, fps float64) string {
	if preset != "" {
		base = fmt.Sprintf("%s [%s]", base, preset)
	}
	return fmt.Sprintf("%s - FPS: %.2f", base, fps)
}
