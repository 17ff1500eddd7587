package scene

import "solarsys/internal/mathutil"

// Advance moves every phase angle of b forward by dt seconds, wrapping into
// [0,360). dt == 0 leaves the angles untouched.
func (b *CelestialBody) Advance(dt float64) {
	b.OrbitAngle = mathutil.WrapDegrees(b.OrbitAngle + b.OrbitSpeed*dt)
	b.RotationAngle = mathutil.WrapDegrees(b.RotationAngle + b.RotationSpeed*dt)
	if b.Moon != nil {
		b.Moon.Angle = mathutil.WrapDegrees(b.Moon.Angle + b.Moon.Speed*dt)
	}
}
