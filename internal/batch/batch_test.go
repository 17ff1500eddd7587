package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsys/internal/camera"
	"solarsys/internal/raster"
	"solarsys/internal/scene"
	"solarsys/internal/texture"
)

func testSetup(t *testing.T) (*scene.Scene, *raster.Assets, Config) {
	t.Helper()
	sc := scene.New(scene.DefaultCatalog(), 7)
	store := texture.NewStore(nil)
	assets := raster.LoadAssets(sc, store, store.AddPlaceholder(""))
	cfg := Config{
		OutputDir:   t.TempDir(),
		Width:       48,
		Height:      32,
		Supersample: 2,
		Workers:     2,
		Frames:      4,
		FPS:         10,
		Camera:      camera.DefaultState(),
		YawSpeed:    20,
		Scene:       scene.DefaultConfig(),
	}
	return sc, assets, cfg
}

func TestPlanAdvancesTime(t *testing.T) {
	sc, _, cfg := testSetup(t)
	jobs := Plan(sc, cfg)
	require.Len(t, jobs, 4)

	earth0 := jobs[0].Bodies[3]
	earth2 := jobs[2].Bodies[3]
	require.Equal(t, "Earth", earth0.Name)
	assert.InDelta(t, earth0.OrbitAngle+earth0.OrbitSpeed*0.2, earth2.OrbitAngle, 1e-9)
	assert.InDelta(t, 0.2, jobs[2].Time, 1e-12)
	assert.InDelta(t, camera.DefaultYaw+20*0.3, jobs[3].Camera.Yaw, 1e-9)
	assert.Len(t, jobs[1].Meteors, cfg.Scene.MeteorCount)

	// Snapshots must not alias the live scene.
	jobs[0].Bodies[3].Moon.Angle = 123
	assert.NotEqual(t, 123.0, sc.Bodies[3].Moon.Angle)
}

func TestPlanPausedFreezes(t *testing.T) {
	sc, _, cfg := testSetup(t)
	cfg.Scene.Paused = true
	jobs := Plan(sc, cfg)
	assert.Equal(t, jobs[0].Bodies, jobs[3].Bodies)
}

func TestRunWritesFrames(t *testing.T) {
	sc, assets, cfg := testSetup(t)
	jobs := Plan(sc, cfg)
	results := Run(context.Background(), cfg, assets, jobs)

	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.True(t, r.Success, r.Error)
		assert.Equal(t, FrameName(i), r.File)
		st, err := os.Stat(filepath.Join(cfg.OutputDir, r.File))
		require.NoError(t, err)
		assert.Positive(t, st.Size())
	}
}

func TestRunCancelled(t *testing.T) {
	sc, assets, cfg := testSetup(t)
	jobs := Plan(sc, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.Workers = 1

	results := Run(ctx, cfg, assets, jobs)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.Equal(t, "not rendered", r.Error)
	}
}

func TestRenderFrameSize(t *testing.T) {
	sc, assets, cfg := testSetup(t)
	img := RenderFrame(cfg, assets, Plan(sc, cfg)[0])
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestWriteManifest(t *testing.T) {
	sc, _, cfg := testSetup(t)
	jobs := Plan(sc, cfg)
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, jobs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 4)
	assert.Equal(t, "frame_00002.webp", entries[2].Image)
	assert.Equal(t, "Sun", entries[0].Bodies[0].Name)
	assert.Nil(t, entries[0].Bodies[0].MoonAngle)
	require.NotNil(t, entries[0].Bodies[3].MoonAngle)
}
