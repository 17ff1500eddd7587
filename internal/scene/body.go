// Package scene holds the solar-system model: bodies with their orbital and
// rotational phase, the fixed ring table, the per-frame updater and the
// parent-relative transform chain Sun → Planet → {Moon, Ring}.
package scene

import (
	"fmt"
	"strings"
)

// BodyID identifies a known body. Per-body constants (ring geometry, emissive
// shading) are keyed on it instead of on display names.
type BodyID int

const (
	Custom BodyID = iota
	Sun
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var bodyNames = [...]string{
	Custom:  "custom",
	Sun:     "sun",
	Mercury: "mercury",
	Venus:   "venus",
	Earth:   "earth",
	Mars:    "mars",
	Jupiter: "jupiter",
	Saturn:  "saturn",
	Uranus:  "uranus",
	Neptune: "neptune",
}

func (id BodyID) String() string {
	if id < 0 || int(id) >= len(bodyNames) {
		return fmt.Sprintf("BodyID(%d)", int(id))
	}
	return bodyNames[id]
}

// ParseBodyID maps a case-insensitive name to its ID; unknown names are Custom.
func ParseBodyID(s string) BodyID {
	s = strings.ToLower(strings.TrimSpace(s))
	for id, name := range bodyNames {
		if name == s {
			return BodyID(id)
		}
	}
	return Custom
}

// MoonAttachment is a single moon circling its parent in the parent's orbital frame.
type MoonAttachment struct {
	Distance float64 // from the parent's center, in scene units
	Speed    float64 // deg/s
	Angle    float64 // [0,360)
	Texture  string
}

// RingAttachment is a planetary ring. Geometry comes from the ring table.
type RingAttachment struct {
	Texture    string
	Tilt       float64 // degrees about X
	InnerScale float64 // multiples of body size
	OuterScale float64
	Thinness   float64
}

// CelestialBody is one sphere in the scene. Only the angle fields change after
// construction.
type CelestialBody struct {
	ID   BodyID
	Name string

	OrbitRadius float64
	OrbitSpeed  float64 // deg/s
	OrbitAngle  float64 // [0,360)

	RotationSpeed float64 // deg/s
	RotationAngle float64 // [0,360)

	Size    float64
	Texture string
	Color   string // hex tint for the placeholder when Texture fails to load

	Moon *MoonAttachment
	Ring *RingAttachment
}

// Emissive reports whether the body is drawn unlit (the light source itself).
func (b *CelestialBody) Emissive() bool {
	return b.ID == Sun
}

// HasMoon reports whether the body carries a moon.
func (b *CelestialBody) HasMoon() bool { return b.Moon != nil }

// HasRing reports whether the body carries a ring.
func (b *CelestialBody) HasRing() bool { return b.Ring != nil }

// Clone returns a deep copy so the attachments can be advanced independently.
func (b CelestialBody) Clone() CelestialBody {
	if b.Moon != nil {
		m := *b.Moon
		b.Moon = &m
	}
	if b.Ring != nil {
		r := *b.Ring
		b.Ring = &r
	}
	return b
}
