package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"solarsys/internal/camera"
	"solarsys/internal/scene"
)

// Config holds all configurable paths, window/render settings and the initial
// scene toggles.
type Config struct {
	// Paths
	AssetDir    string `json:"asset_dir" toml:"asset_dir"`
	CatalogFile string `json:"catalog" toml:"catalog"`
	// Placeholder is a texture that must exist; startup fails without it.
	// Empty means a generated checkerboard is used instead.
	Placeholder string `json:"placeholder" toml:"placeholder"`
	OutputDir   string `json:"output_dir" toml:"output_dir"`

	// Render settings
	Width       int     `json:"width" toml:"width"`
	Height      int     `json:"height" toml:"height"`
	Supersample int     `json:"supersample" toml:"supersample"`
	Workers     int     `json:"workers" toml:"workers"`
	Frames      int     `json:"frames" toml:"frames"`
	FPS         float64 `json:"fps" toml:"fps"`
	Seed        uint64  `json:"seed" toml:"seed"`

	Camera CameraConfig `json:"camera" toml:"camera"`
	Scene  scene.Config `json:"scene" toml:"scene"`
}

// CameraConfig is the starting camera, plus a yaw drift used by frame export.
type CameraConfig struct {
	Pitch    float64 `json:"pitch" toml:"pitch"`
	Yaw      float64 `json:"yaw" toml:"yaw"`
	Distance float64 `json:"distance" toml:"distance"`
	YawSpeed float64 `json:"yaw_speed" toml:"yaw_speed"` // degrees per second
}

// State converts to a normalized camera state.
func (c CameraConfig) State() camera.State {
	return camera.State{Pitch: c.Pitch, Yaw: c.Yaw, Distance: c.Distance}.Normalize()
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cam := camera.DefaultState()
	return Config{
		Width:       1280,
		Height:      720,
		Supersample: 1,
		Frames:      120,
		FPS:         30,
		Seed:        1,
		Camera:      CameraConfig{Pitch: cam.Pitch, Yaw: cam.Yaw, Distance: cam.Distance},
		Scene:       scene.DefaultConfig(),
	}
}

// Load reads a JSON or TOML config file (by extension) over Default.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetDir  string
	OutputDir string
	Width     int
	Height    int
	Workers   int
	Frames    int
}

// Resolve applies flag overrides, then fills any empty or invalid fields
// with defaults. Relative paths are resolved against AssetDir.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}

	if c.AssetDir == "" {
		c.AssetDir = detectAssetDir()
	}

	if c.AssetDir != "" {
		c.CatalogFile = resolvePath(c.AssetDir, c.CatalogFile)
		c.Placeholder = resolvePath(c.AssetDir, c.Placeholder)
		if c.OutputDir == "" {
			c.OutputDir = filepath.Join(c.AssetDir, "frames")
		}
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}

	def := Default()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Supersample <= 0 {
		c.Supersample = def.Supersample
	}
	if c.Frames <= 0 {
		c.Frames = def.Frames
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.Camera.Distance <= 0 {
		c.Camera.Distance = def.Camera.Distance
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	c.Scene.Clamp()
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// detectAssetDir looks for a textures/ directory next to the executable or
// in the working directory.
func detectAssetDir() string {
	var candidates []string
	if exe, _ := os.Executable(); exe != "" {
		dir := filepath.Dir(exe)
		candidates = append(candidates, dir, filepath.Dir(dir))
	}
	if cwd, _ := os.Getwd(); cwd != "" {
		candidates = append(candidates, cwd, filepath.Dir(cwd))
	}
	for _, base := range candidates {
		if st, err := os.Stat(filepath.Join(base, "textures")); err == nil && st.IsDir() {
			return base
		}
	}
	return ""
}
