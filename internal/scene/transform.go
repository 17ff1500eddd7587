package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"solarsys/internal/mathutil"
)

// MoonScale is the moon's size as a fraction of its parent's.
const MoonScale = 0.3

// Placement holds the model matrices for one body. Ring and Moon are only
// meaningful when the matching Has flag is set.
type Placement struct {
	Frame   mgl64.Mat4
	Body    mgl64.Mat4
	Ring    mgl64.Mat4
	Moon    mgl64.Mat4
	HasRing bool
	HasMoon bool
}

// OrbitalFrame rotates the origin-centered system by the orbit angle and then
// pushes it out to the orbit radius. Ring and moon reuse it so the planet's
// orbital position is derived once.
func (b *CelestialBody) OrbitalFrame() mgl64.Mat4 {
	return mgl64.HomogRotate3DY(mathutil.Deg2Rad(b.OrbitAngle)).
		Mul4(mgl64.Translate3D(b.OrbitRadius, 0, 0))
}

// Place composes the full matrix set for b from its current angles.
func (b *CelestialBody) Place() Placement {
	frame := b.OrbitalFrame()
	p := Placement{
		Frame: frame,
		Body: frame.
			Mul4(mgl64.HomogRotate3DY(mathutil.Deg2Rad(b.RotationAngle))).
			Mul4(mgl64.Scale3D(b.Size, b.Size, b.Size)),
	}

	if r := b.Ring; r != nil {
		outer := b.Size * r.OuterScale
		p.Ring = frame.
			Mul4(mgl64.HomogRotate3DX(mathutil.Deg2Rad(r.Tilt))).
			Mul4(mgl64.Scale3D(outer, b.Size*r.Thinness, outer))
		p.HasRing = true
	}

	if m := b.Moon; m != nil {
		s := b.Size * MoonScale
		p.Moon = frame.
			Mul4(mgl64.HomogRotate3DY(mathutil.Deg2Rad(m.Angle))).
			Mul4(mgl64.Translate3D(m.Distance, 0, 0)).
			Mul4(mgl64.Scale3D(s, s, s))
		p.HasMoon = true
	}
	return p
}

// OrbitPath maps the unit circle onto the body's orbit around the origin.
func (b *CelestialBody) OrbitPath() mgl64.Mat4 {
	return mgl64.Scale3D(b.OrbitRadius, b.OrbitRadius, b.OrbitRadius)
}

// MoonPath maps the unit circle onto the moon's orbit around the body.
func (b *CelestialBody) MoonPath() (mgl64.Mat4, bool) {
	if b.Moon == nil {
		return mgl64.Ident4(), false
	}
	d := b.Moon.Distance
	return b.OrbitalFrame().Mul4(mgl64.Scale3D(d, d, d)), true
}

// WorldPosition returns the body's center in world space.
func (b *CelestialBody) WorldPosition() mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, b.OrbitalFrame())
}
