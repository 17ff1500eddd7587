// Package viewer is the interactive window: it maps keyboard and mouse input
// to the camera and scene toggles, advances the scene by wall-clock time and
// blits the software-rendered frame each tick.
package viewer

import (
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"solarsys/internal/camera"
	"solarsys/internal/overlay"
	"solarsys/internal/postprocess"
	"solarsys/internal/raster"
	"solarsys/internal/scene"
)

// maxFrameDT caps a single step after stalls such as a window drag.
const maxFrameDT = 0.25

// Options sizes the window and its internal render target.
type Options struct {
	Title       string
	Width       int
	Height      int
	Supersample int
	Camera      camera.State
}

// Game implements ebiten.Game.
type Game struct {
	scene  *scene.Scene
	assets *raster.Assets
	cfg    *scene.Config
	orbit  *camera.Orbit
	opts   Options
	legend []overlay.Binding

	last     time.Time
	dragging bool
	lastX    int
	lastY    int
}

// New wires a viewer around an already loaded scene.
func New(sc *scene.Scene, assets *raster.Assets, cfg *scene.Config, opts Options) *Game {
	orbit := camera.NewOrbit()
	orbit.State = opts.Camera.Normalize()
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	return &Game{
		scene:  sc,
		assets: assets,
		cfg:    cfg,
		orbit:  orbit,
		opts:   opts,
		legend: Legend(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	slog.Info("viewer started", "width", g.opts.Width, "height", g.opts.Height, "bodies", len(g.scene.Bodies))
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last).Seconds(), maxFrameDT)
	}
	g.last = now

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) && !ApplyAction(b.action, g.cfg, g.orbit) {
			return ebiten.Termination
		}
	}
	for _, h := range holdKeys {
		for _, k := range h.keys {
			if ebiten.IsKeyPressed(k) {
				g.orbit.ApplyKey(h.key)
				break
			}
		}
	}
	g.handleMouse()

	g.Step(dt)
	return nil
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.orbit.ApplyMouseDelta(float64(x-g.lastX), float64(y-g.lastY))
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
	} else {
		g.dragging = false
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.orbit.Zoom(-wy)
	}
}

// Step advances the scene and camera animation by dt seconds.
func (g *Game) Step(dt float64) {
	g.scene.Update(dt, g.cfg)
	g.orbit.Update(dt)
}

// Render produces the current frame with overlays at window resolution.
func (g *Game) Render() *image.NRGBA {
	var meteors []scene.Meteor
	if g.scene.Meteors != nil {
		meteors = g.scene.Meteors.Active()
	}
	img := raster.RenderScene(raster.Frame{
		Width:       g.opts.Width,
		Height:      g.opts.Height,
		Supersample: g.opts.Supersample,
		Bodies:      g.scene.Bodies,
		Meteors:     meteors,
		Camera:      g.orbit.State,
		Config:      g.cfg,
	}, g.assets)
	if g.opts.Supersample > 1 {
		img = postprocess.Downsample(img, g.opts.Width, g.opts.Height)
	}

	overlay.Draw(img, overlay.State{
		Bodies:   g.scene.Bodies,
		Config:   g.cfg,
		Camera:   g.orbit.State,
		FPS:      ebiten.ActualFPS(),
		Bindings: g.legend,
	})
	return img
}

// Draw uploads the frame. Frames are opaque, so the straight-alpha pixels are
// valid premultiplied data.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.Render().Pix)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Camera returns the current camera state.
func (g *Game) Camera() camera.State { return g.orbit.State }
