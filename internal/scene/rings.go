package scene

// RingGeometry is the fixed per-planet ring shape.
type RingGeometry struct {
	Tilt       float64 // degrees about X
	InnerScale float64
	OuterScale float64
	Thinness   float64
}

// ringTable holds the hand-tuned ring shapes. These are display constants,
// not derived physical properties.
var ringTable = map[BodyID]RingGeometry{
	Saturn:  {Tilt: 23, InnerScale: 1.3, OuterScale: 2.2, Thinness: 0.01},
	Jupiter: {Tilt: 3, InnerScale: 1.4, OuterScale: 1.7, Thinness: 0.005},
	Uranus:  {Tilt: 98, InnerScale: 1.5, OuterScale: 1.9, Thinness: 0.005},
	Neptune: {Tilt: 29, InnerScale: 1.5, OuterScale: 1.8, Thinness: 0.005},
}

// DefaultRingGeometry is used when a body with no table entry asks for a ring.
var DefaultRingGeometry = RingGeometry{Tilt: 0, InnerScale: 1.4, OuterScale: 2.0, Thinness: 0.01}

// RingFor returns the ring geometry for id and whether the table has an entry.
func RingFor(id BodyID) (RingGeometry, bool) {
	g, ok := ringTable[id]
	return g, ok
}

// NewRing builds a ring attachment for id from the ring table.
func NewRing(id BodyID, texture string) *RingAttachment {
	g, ok := RingFor(id)
	if !ok {
		g = DefaultRingGeometry
	}
	return &RingAttachment{
		Texture:    texture,
		Tilt:       g.Tilt,
		InnerScale: g.InnerScale,
		OuterScale: g.OuterScale,
		Thinness:   g.Thinness,
	}
}
