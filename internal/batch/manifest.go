package batch

import (
	"encoding/json"
	"os"

	"solarsys/internal/scene"
)

// BodyState is one body's animated angles at a frame.
type BodyState struct {
	Name          string   `json:"name"`
	OrbitAngle    float64  `json:"orbit_angle"`
	RotationAngle float64  `json:"rotation_angle"`
	MoonAngle     *float64 `json:"moon_angle,omitempty"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index  int         `json:"index"`
	Time   float64     `json:"time"`
	Image  string      `json:"image"`
	Pitch  float64     `json:"pitch"`
	Yaw    float64     `json:"yaw"`
	Bodies []BodyState `json:"bodies"`
}

// NewManifest describes the given jobs.
func NewManifest(jobs []Job) []ManifestEntry {
	entries := make([]ManifestEntry, len(jobs))
	for i, j := range jobs {
		entries[i] = ManifestEntry{
			Index:  j.Index,
			Time:   j.Time,
			Image:  FrameName(j.Index),
			Pitch:  j.Camera.Pitch,
			Yaw:    j.Camera.Yaw,
			Bodies: bodyStates(j.Bodies),
		}
	}
	return entries
}

func bodyStates(bodies []scene.CelestialBody) []BodyState {
	out := make([]BodyState, len(bodies))
	for i, b := range bodies {
		out[i] = BodyState{Name: b.Name, OrbitAngle: b.OrbitAngle, RotationAngle: b.RotationAngle}
		if b.Moon != nil {
			a := b.Moon.Angle
			out[i].MoonAngle = &a
		}
	}
	return out
}

// WriteManifest writes manifest.json describing jobs to path.
func WriteManifest(path string, jobs []Job) error {
	data, err := json.MarshalIndent(NewManifest(jobs), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
