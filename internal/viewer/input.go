package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"solarsys/internal/camera"
	"solarsys/internal/overlay"
	"solarsys/internal/scene"
)

// Action is a discrete command triggered by a key press.
type Action int

const (
	ActionNone Action = iota
	ActionToggleOrbits
	ActionToggleMoons
	ActionToggleRings
	ActionToggleMeteors
	ActionToggleTable
	ActionToggleBackground
	ActionTogglePause
	ActionFaster
	ActionSlower
	ActionMoreMeteors
	ActionFewerMeteors
	ActionResetCamera
	ActionQuit
)

const (
	TimeScaleStep = 0.5
	MeteorStep    = 10
	ResetDuration = 0.6 // seconds
)

// binding maps a key to an action fired once per press.
type binding struct {
	key    ebiten.Key
	label  string
	action Action
	help   string
}

var bindings = []binding{
	{ebiten.KeyO, "O", ActionToggleOrbits, "orbits"},
	{ebiten.KeyM, "M", ActionToggleMoons, "moons"},
	{ebiten.KeyR, "R", ActionToggleRings, "rings"},
	{ebiten.KeyN, "N", ActionToggleMeteors, "meteors"},
	{ebiten.KeyT, "T", ActionToggleTable, "data table"},
	{ebiten.KeyB, "B", ActionToggleBackground, "galaxy"},
	{ebiten.KeySpace, "Space", ActionTogglePause, "pause"},
	{ebiten.KeyEqual, "+", ActionFaster, "faster"},
	{ebiten.KeyMinus, "-", ActionSlower, "slower"},
	{ebiten.KeyBracketRight, "]", ActionMoreMeteors, "more meteors"},
	{ebiten.KeyBracketLeft, "[", ActionFewerMeteors, "fewer meteors"},
	{ebiten.KeyC, "C", ActionResetCamera, "reset camera"},
	{ebiten.KeyEscape, "Esc", ActionQuit, "quit"},
}

// holdKeys repeat every tick while held.
var holdKeys = []struct {
	keys []ebiten.Key
	key  camera.Key
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, camera.KeyYawLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, camera.KeyYawRight},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, camera.KeyPitchUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, camera.KeyPitchDown},
	{[]ebiten.Key{ebiten.KeyE, ebiten.KeyPageUp}, camera.KeyZoomIn},
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyPageDown}, camera.KeyZoomOut},
}

// Legend lists the key bindings for the overlay.
func Legend() []overlay.Binding {
	out := []overlay.Binding{
		{Key: "Arrows", Action: "orbit camera (or drag)"},
		{Key: "E/Q", Action: "zoom (or wheel)"},
	}
	for _, b := range bindings {
		out = append(out, overlay.Binding{Key: b.label, Action: b.help})
	}
	return out
}

// ApplyAction mutates the scene config or camera for one action. It reports
// false for ActionQuit.
func ApplyAction(a Action, cfg *scene.Config, orbit *camera.Orbit) bool {
	switch a {
	case ActionToggleOrbits:
		cfg.ShowOrbits = !cfg.ShowOrbits
	case ActionToggleMoons:
		cfg.ShowMoons = !cfg.ShowMoons
	case ActionToggleRings:
		cfg.ShowRings = !cfg.ShowRings
	case ActionToggleMeteors:
		cfg.ShowMeteors = !cfg.ShowMeteors
	case ActionToggleTable:
		cfg.ShowTable = !cfg.ShowTable
	case ActionToggleBackground:
		cfg.ShowBackground = !cfg.ShowBackground
	case ActionTogglePause:
		cfg.Paused = !cfg.Paused
	case ActionFaster:
		cfg.TimeScale += TimeScaleStep
	case ActionSlower:
		cfg.TimeScale -= TimeScaleStep
	case ActionMoreMeteors:
		cfg.MeteorCount += MeteorStep
	case ActionFewerMeteors:
		cfg.MeteorCount -= MeteorStep
	case ActionResetCamera:
		orbit.Reset(ResetDuration)
	case ActionQuit:
		return false
	}
	cfg.Clamp()
	return true
}
