package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsys/internal/scene"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadJSONKeepsDefaults(t *testing.T) {
	p := writeFile(t, "cfg.json", `{"width": 800, "scene": {"show_orbits": false, "time_scale": 4}}`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.False(t, cfg.Scene.ShowOrbits)
	assert.True(t, cfg.Scene.ShowMoons)
	assert.Equal(t, 4.0, cfg.Scene.TimeScale)
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, "cfg.toml", `
asset_dir = "/data/solar"
fps = 24.0

[camera]
pitch = 45.0
yaw_speed = 10.0

[scene]
meteor_count = 80
paused = true
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/data/solar", cfg.AssetDir)
	assert.Equal(t, 24.0, cfg.FPS)
	assert.Equal(t, 45.0, cfg.Camera.Pitch)
	assert.Equal(t, 10.0, cfg.Camera.YawSpeed)
	assert.Equal(t, 24.0, cfg.Camera.Distance)
	assert.Equal(t, 80, cfg.Scene.MeteorCount)
	assert.True(t, cfg.Scene.Paused)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	_, err = Load(writeFile(t, "bad.toml", "width = ["))
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolve(t *testing.T) {
	base := t.TempDir()
	cfg := Config{AssetDir: base, CatalogFile: "bodies.yaml", Placeholder: "/abs/missing.png", Scene: scene.Config{TimeScale: 99, MeteorCount: -3}}
	cfg.Resolve(Flags{Width: 320, Workers: 3})

	assert.Equal(t, filepath.Join(base, "bodies.yaml"), cfg.CatalogFile)
	assert.Equal(t, "/abs/missing.png", cfg.Placeholder)
	assert.Equal(t, filepath.Join(base, "frames"), cfg.OutputDir)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 1, cfg.Supersample)
	assert.Equal(t, 30.0, cfg.FPS)
	assert.Equal(t, 24.0, cfg.Camera.Distance)
	assert.Equal(t, scene.MaxTimeScale, cfg.Scene.TimeScale)
	assert.Equal(t, 0, cfg.Scene.MeteorCount)
}

func TestCameraState(t *testing.T) {
	st := CameraConfig{Pitch: 120, Yaw: -90, Distance: 100}.State()
	assert.Equal(t, 90.0, st.Pitch)
	assert.Equal(t, 270.0, st.Yaw)
	assert.LessOrEqual(t, st.Distance, 45.0)
}
