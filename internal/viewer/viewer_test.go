package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsys/internal/camera"
	"solarsys/internal/raster"
	"solarsys/internal/scene"
	"solarsys/internal/texture"
)

func TestApplyActionToggles(t *testing.T) {
	cfg := scene.DefaultConfig()
	orbit := camera.NewOrbit()

	toggles := []struct {
		action Action
		get    func() bool
	}{
		{ActionToggleOrbits, func() bool { return cfg.ShowOrbits }},
		{ActionToggleMoons, func() bool { return cfg.ShowMoons }},
		{ActionToggleRings, func() bool { return cfg.ShowRings }},
		{ActionToggleMeteors, func() bool { return cfg.ShowMeteors }},
		{ActionToggleTable, func() bool { return cfg.ShowTable }},
		{ActionToggleBackground, func() bool { return cfg.ShowBackground }},
		{ActionTogglePause, func() bool { return cfg.Paused }},
	}
	for _, tc := range toggles {
		before := tc.get()
		assert.True(t, ApplyAction(tc.action, &cfg, orbit))
		assert.NotEqual(t, before, tc.get(), "action %d", tc.action)
	}
}

func TestApplyActionClamps(t *testing.T) {
	cfg := scene.DefaultConfig()
	orbit := camera.NewOrbit()

	for i := 0; i < 100; i++ {
		ApplyAction(ActionFaster, &cfg, orbit)
		ApplyAction(ActionMoreMeteors, &cfg, orbit)
	}
	assert.Equal(t, scene.MaxTimeScale, cfg.TimeScale)
	assert.Equal(t, scene.MaxMeteors, cfg.MeteorCount)

	for i := 0; i < 100; i++ {
		ApplyAction(ActionSlower, &cfg, orbit)
		ApplyAction(ActionFewerMeteors, &cfg, orbit)
	}
	assert.Equal(t, 0.0, cfg.TimeScale)
	assert.Equal(t, 0, cfg.MeteorCount)
}

func TestApplyActionQuitAndReset(t *testing.T) {
	cfg := scene.DefaultConfig()
	orbit := camera.NewOrbit()
	orbit.ApplyMouseDelta(100, 40)

	assert.True(t, ApplyAction(ActionResetCamera, &cfg, orbit))
	assert.True(t, orbit.Resetting())
	assert.False(t, ApplyAction(ActionQuit, &cfg, orbit))
}

func TestLegendCoversBindings(t *testing.T) {
	assert.Len(t, Legend(), len(bindings)+2)
	seen := map[Action]bool{}
	for _, b := range bindings {
		assert.False(t, seen[b.action], "duplicate binding for %d", b.action)
		seen[b.action] = true
	}
}

func newTestGame(t *testing.T) (*Game, *scene.Config) {
	t.Helper()
	sc := scene.New(scene.DefaultCatalog(), 3)
	store := texture.NewStore(nil)
	assets := raster.LoadAssets(sc, store, store.AddPlaceholder(""))
	cfg := scene.DefaultConfig()
	g := New(sc, assets, &cfg, Options{Width: 64, Height: 48, Supersample: 2, Camera: camera.DefaultState()})
	return g, &cfg
}

func TestStepAdvancesScene(t *testing.T) {
	g, cfg := newTestGame(t)
	earth, ok := g.scene.Find(scene.Earth)
	require.True(t, ok)
	start := earth.OrbitAngle

	g.Step(0.5)
	assert.InDelta(t, start+earth.OrbitSpeed*0.5, earth.OrbitAngle, 1e-9)

	cfg.Paused = true
	g.Step(0.5)
	assert.InDelta(t, start+earth.OrbitSpeed*0.5, earth.OrbitAngle, 1e-9)
}

func TestStepRunsCameraReset(t *testing.T) {
	g, cfg := newTestGame(t)
	g.orbit.ApplyMouseDelta(200, 80)
	ApplyAction(ActionResetCamera, cfg, g.orbit)
	for i := 0; i < 20; i++ {
		g.Step(0.1)
	}
	assert.False(t, g.orbit.Resetting())
	assert.InDelta(t, camera.DefaultPitch, g.Camera().Pitch, 1e-3)
	assert.InDelta(t, camera.DefaultDistance, g.Camera().Distance, 1e-3)
}

func TestRenderSize(t *testing.T) {
	g, _ := newTestGame(t)
	img := g.Render()
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
	w, h := g.Layout(1000, 1000)
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
}
