package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeteorCountClamped(t *testing.T) {
	f := NewMeteorField(7)
	f.SetCount(-5)
	assert.Equal(t, 0, f.Count())
	f.SetCount(MaxMeteors + 100)
	assert.Equal(t, MaxMeteors, f.Count())
	f.SetCount(12)
	assert.Len(t, f.Active(), 12)
}

func TestMeteorsStayInPlane(t *testing.T) {
	f := NewMeteorField(42)
	f.SetCount(50)
	pool := &f.pool[0]
	spawned := false
	for i := 0; i < 2000; i++ {
		f.Update(1.0 / 60)
		for _, m := range f.Active() {
			if m.Visible {
				spawned = true
				assert.LessOrEqual(t, m.Pos.Len(), 1.5)
			} else {
				assert.GreaterOrEqual(t, m.ReappearDelay, -1.0/60)
			}
		}
	}
	assert.True(t, spawned)
	assert.Same(t, pool, &f.pool[0], "pool is recycled in place")
}

func TestMeteorRecycle(t *testing.T) {
	f := NewMeteorField(3)
	f.SetCount(1)
	m := &f.pool[0]
	m.ReappearDelay = 0.01
	f.Update(0.02)
	require.True(t, m.Visible)

	m.Pos[0] = 0.999
	m.Vel[0] = 1
	m.Vel[1] = 0
	f.Update(0.1)
	assert.False(t, m.Visible)
	assert.GreaterOrEqual(t, m.ReappearDelay, 0.0)
}

func TestMeteorDeterministic(t *testing.T) {
	a, b := NewMeteorField(9), NewMeteorField(9)
	a.SetCount(20)
	b.SetCount(20)
	for i := 0; i < 300; i++ {
		a.Update(0.05)
		b.Update(0.05)
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestMeteorZeroDT(t *testing.T) {
	f := NewMeteorField(1)
	f.SetCount(10)
	before := f.Snapshot()
	f.Update(0)
	assert.Equal(t, before, f.Snapshot())
}

func TestConfigClamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MeteorCount = 5000
	cfg.TimeScale = -1
	cfg.Clamp()
	assert.Equal(t, MaxMeteors, cfg.MeteorCount)
	assert.Equal(t, 0.0, cfg.TimeScale)

	cfg = DefaultConfig()
	assert.Equal(t, 0.5, cfg.EffectiveDT(0.5))
	cfg.Paused = true
	assert.Equal(t, 0.0, cfg.EffectiveDT(0.5))
}
