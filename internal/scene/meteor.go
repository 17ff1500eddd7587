package scene

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"solarsys/internal/mathutil"
)

// Meteor is one recycled particle on the normalized screen plane [-1,1]².
type Meteor struct {
	Pos           mgl64.Vec2
	Vel           mgl64.Vec2
	Visible       bool
	ReappearDelay float64 // seconds until a hidden meteor respawns
}

// Meteor spawn tuning.
const (
	meteorMinSpeed = 0.25
	meteorMaxSpeed = 0.9
	meteorMaxDelay = 3.0
)

// MeteorField is a fixed pool of meteors. Nothing is allocated after NewMeteorField.
type MeteorField struct {
	pool   []Meteor
	active int
	rng    *rand.Rand
}

// NewMeteorField allocates MaxMeteors particles, all hidden with staggered delays.
func NewMeteorField(seed uint64) *MeteorField {
	f := &MeteorField{
		pool: make([]Meteor, MaxMeteors),
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	for i := range f.pool {
		f.pool[i].ReappearDelay = f.rng.Float64() * meteorMaxDelay
	}
	return f
}

// SetCount sets how many meteors are simulated, clamped to [0, MaxMeteors].
func (f *MeteorField) SetCount(n int) {
	f.active = mathutil.ClampInt(n, 0, len(f.pool))
}

// Count returns the number of simulated meteors.
func (f *MeteorField) Count() int { return f.active }

// Active returns the simulated slice of the pool. Callers must not retain it
// across updates.
func (f *MeteorField) Active() []Meteor { return f.pool[:f.active] }

// Snapshot copies the active meteors.
func (f *MeteorField) Snapshot() []Meteor {
	out := make([]Meteor, f.active)
	copy(out, f.pool[:f.active])
	return out
}

// Update moves visible meteors and counts down hidden ones.
func (f *MeteorField) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range f.pool[:f.active] {
		m := &f.pool[i]
		if !m.Visible {
			m.ReappearDelay -= dt
			if m.ReappearDelay <= 0 {
				f.spawn(m)
			}
			continue
		}
		m.Pos = m.Pos.Add(m.Vel.Mul(dt))
		if math.Abs(m.Pos[0]) > 1 || math.Abs(m.Pos[1]) > 1 {
			m.Visible = false
			m.ReappearDelay = f.rng.Float64() * meteorMaxDelay
		}
	}
}

// spawn places m on a random edge heading into the plane.
func (f *MeteorField) spawn(m *Meteor) {
	edge := f.rng.IntN(4)
	t := f.rng.Float64()*2 - 1
	switch edge {
	case 0:
		m.Pos = mgl64.Vec2{-1, t}
	case 1:
		m.Pos = mgl64.Vec2{1, t}
	case 2:
		m.Pos = mgl64.Vec2{t, -1}
	default:
		m.Pos = mgl64.Vec2{t, 1}
	}
	// Aim at a random point near the middle so the streak crosses the view.
	target := mgl64.Vec2{f.rng.Float64() - 0.5, f.rng.Float64() - 0.5}
	dir := target.Sub(m.Pos).Normalize()
	speed := meteorMinSpeed + f.rng.Float64()*(meteorMaxSpeed-meteorMinSpeed)
	m.Vel = dir.Mul(speed)
	m.Visible = true
	m.ReappearDelay = 0
}
