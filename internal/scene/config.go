package scene

import "solarsys/internal/mathutil"

// Limits for values the UI can push out of range.
const (
	MaxMeteors   = 200
	MaxTimeScale = 20.0
)

// Config is the scene state bound to the UI toggles. It is passed by pointer to
// both the input layer and the update/render code.
type Config struct {
	ShowOrbits     bool    `json:"show_orbits" toml:"show_orbits"`
	ShowMoons      bool    `json:"show_moons" toml:"show_moons"`
	ShowRings      bool    `json:"show_rings" toml:"show_rings"`
	ShowMeteors    bool    `json:"show_meteors" toml:"show_meteors"`
	ShowTable      bool    `json:"show_table" toml:"show_table"`
	ShowBackground bool    `json:"show_background" toml:"show_background"`
	Paused         bool    `json:"paused" toml:"paused"`
	TimeScale      float64 `json:"time_scale" toml:"time_scale"`
	MeteorCount    int     `json:"meteor_count" toml:"meteor_count"`
}

// DefaultConfig returns everything visible, running at real time.
func DefaultConfig() Config {
	return Config{
		ShowOrbits:     true,
		ShowMoons:      true,
		ShowRings:      true,
		ShowMeteors:    true,
		ShowTable:      false,
		ShowBackground: true,
		TimeScale:      1,
		MeteorCount:    40,
	}
}

// Clamp pulls numeric fields back into their valid ranges.
func (c *Config) Clamp() {
	c.MeteorCount = mathutil.ClampInt(c.MeteorCount, 0, MaxMeteors)
	c.TimeScale = mathutil.Clamp(c.TimeScale, 0, MaxTimeScale)
}

// EffectiveDT converts wall-clock dt into scene time.
func (c *Config) EffectiveDT(dt float64) float64 {
	if c.Paused || dt <= 0 {
		return 0
	}
	return dt * c.TimeScale
}
