// Package camera implements the orbit camera: pitch and yaw around the origin at
// a fixed distance, with an up-vector blend near the poles.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"solarsys/internal/mathutil"
)

// Limits and defaults.
const (
	MaxPitch = 90.0

	// PoleBlendStart is the |pitch| above which the up vector leans toward the pole.
	PoleBlendStart = 70.0

	DefaultPitch    = 17.0
	DefaultYaw      = 0.0
	DefaultDistance = 24.0
	MinDistance     = 4.0
	MaxDistance     = 45.0

	FOV  = 45.0
	Near = 0.1
	Far  = 100.0
)

// State is the user-controlled camera orientation.
type State struct {
	Pitch    float64 // [-90, 90]
	Yaw      float64 // [0, 360)
	Distance float64
}

// DefaultState is the opening view: slightly above the ecliptic, looking at the Sun.
func DefaultState() State {
	return State{Pitch: DefaultPitch, Yaw: DefaultYaw, Distance: DefaultDistance}
}

// Normalize clamps pitch and distance and wraps yaw.
func (s State) Normalize() State {
	s.Pitch = mathutil.Clamp(s.Pitch, -MaxPitch, MaxPitch)
	s.Yaw = mathutil.WrapDegrees(s.Yaw)
	s.Distance = mathutil.Clamp(s.Distance, MinDistance, MaxDistance)
	return s
}

// Eye returns the camera position orbiting the origin.
func (s State) Eye() mgl64.Vec3 {
	p := mathutil.Deg2Rad(s.Pitch)
	y := mathutil.Deg2Rad(s.Yaw)
	return mgl64.Vec3{
		s.Distance * math.Cos(p) * math.Sin(y),
		s.Distance * math.Sin(p),
		s.Distance * math.Cos(p) * math.Cos(y),
	}
}

// Up returns the look-at up vector. Past ±70° pitch it blends linearly from +Y
// toward ∓Z so the basis never degenerates at the poles. This is a heuristic;
// the blend curve is part of the visible camera motion.
func (s State) Up() mgl64.Vec3 {
	a := math.Abs(s.Pitch)
	if a <= PoleBlendStart {
		return mgl64.Vec3{0, 1, 0}
	}
	factor := (MaxPitch - a) / (MaxPitch - PoleBlendStart)
	z := 1 - factor
	if s.Pitch > 0 {
		z = -z
	}
	return mgl64.Vec3{0, factor, z}.Normalize()
}

// View returns the world-to-camera matrix.
func (s State) View() mgl64.Mat4 {
	return mgl64.LookAtV(s.Eye(), mgl64.Vec3{}, s.Up())
}

// Projection returns the perspective matrix for the given aspect ratio.
func Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mathutil.Deg2Rad(FOV), aspect, Near, Far)
}

// Key is a discrete camera input, independent of the windowing library.
type Key int

const (
	KeyNone Key = iota
	KeyYawLeft
	KeyYawRight
	KeyPitchUp
	KeyPitchDown
	KeyZoomIn
	KeyZoomOut
)

// Input sensitivities.
const (
	KeyStep          = 2.0  // degrees per key press
	ZoomStep         = 1.0  // distance per zoom key press or wheel notch
	MouseSensitivity = 0.25 // degrees per pixel of drag
)

// Orbit owns the camera state and its reset animation.
type Orbit struct {
	State State

	reset *resetAnim
}

type resetAnim struct {
	pitch, yaw, dist *gween.Tween
	done             [3]bool
}

// NewOrbit starts at the default view.
func NewOrbit() *Orbit {
	return &Orbit{State: DefaultState()}
}

// ApplyMouseDelta turns a cursor drag in pixels into yaw and pitch changes.
// Dragging right spins the view right; dragging up raises the camera.
func (o *Orbit) ApplyMouseDelta(dx, dy float64) {
	o.cancelReset()
	o.State.Yaw -= dx * MouseSensitivity
	o.State.Pitch += dy * MouseSensitivity
	o.State = o.State.Normalize()
}

// ApplyKey applies one discrete key press.
func (o *Orbit) ApplyKey(k Key) {
	if k == KeyNone {
		return
	}
	o.cancelReset()
	switch k {
	case KeyYawLeft:
		o.State.Yaw -= KeyStep
	case KeyYawRight:
		o.State.Yaw += KeyStep
	case KeyPitchUp:
		o.State.Pitch += KeyStep
	case KeyPitchDown:
		o.State.Pitch -= KeyStep
	case KeyZoomIn:
		o.State.Distance -= ZoomStep
	case KeyZoomOut:
		o.State.Distance += ZoomStep
	}
	o.State = o.State.Normalize()
}

// Zoom moves the camera toward (negative notches) or away from the origin.
func (o *Orbit) Zoom(notches float64) {
	o.State.Distance += notches * ZoomStep
	o.State = o.State.Normalize()
}

// Reset eases back to the default view over duration seconds. Yaw takes the
// short way around.
func (o *Orbit) Reset(duration float32) {
	target := DefaultState()
	// Start the yaw tween at the equivalent angle nearest the target.
	yaw := target.Yaw + mathutil.AngleDist(o.State.Yaw, target.Yaw)
	if mathutil.WrapDegrees(o.State.Yaw-target.Yaw) > 180 {
		yaw = target.Yaw - mathutil.AngleDist(o.State.Yaw, target.Yaw)
	}
	o.reset = &resetAnim{
		pitch: gween.New(float32(o.State.Pitch), float32(target.Pitch), duration, ease.OutCubic),
		yaw:   gween.New(float32(yaw), float32(target.Yaw), duration, ease.OutCubic),
		dist:  gween.New(float32(o.State.Distance), float32(target.Distance), duration, ease.OutCubic),
	}
}

// Resetting reports whether a reset animation is running.
func (o *Orbit) Resetting() bool { return o.reset != nil }

// Update advances the reset animation by dt seconds.
func (o *Orbit) Update(dt float64) {
	r := o.reset
	if r == nil {
		return
	}
	step := float32(dt)
	var v float32
	if !r.done[0] {
		v, r.done[0] = r.pitch.Update(step)
		o.State.Pitch = float64(v)
	}
	if !r.done[1] {
		v, r.done[1] = r.yaw.Update(step)
		o.State.Yaw = float64(v)
	}
	if !r.done[2] {
		v, r.done[2] = r.dist.Update(step)
		o.State.Distance = float64(v)
	}
	o.State = o.State.Normalize()
	if r.done[0] && r.done[1] && r.done[2] {
		o.reset = nil
	}
}

func (o *Orbit) cancelReset() {
	o.reset = nil
}
