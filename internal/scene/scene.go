package scene

// Scene is everything the render loop mutates per frame.
type Scene struct {
	Background string
	Bodies     []CelestialBody
	Meteors    *MeteorField
}

// New builds a scene from a catalog with a meteor pool seeded by seed.
func New(c *Catalog, seed uint64) *Scene {
	return &Scene{
		Background: c.Background,
		Bodies:     c.Build(),
		Meteors:    NewMeteorField(seed),
	}
}

// Update advances the scene by dt seconds of wall-clock time under cfg.
func (s *Scene) Update(dt float64, cfg *Config) {
	cfg.Clamp()
	if s.Meteors != nil {
		s.Meteors.SetCount(cfg.MeteorCount)
	}
	dt = cfg.EffectiveDT(dt)
	if dt == 0 {
		return
	}
	for i := range s.Bodies {
		s.Bodies[i].Advance(dt)
	}
	if s.Meteors != nil && cfg.ShowMeteors {
		s.Meteors.Update(dt)
	}
}

// CloneBodies deep-copies the body list.
func (s *Scene) CloneBodies() []CelestialBody {
	out := make([]CelestialBody, len(s.Bodies))
	for i, b := range s.Bodies {
		out[i] = b.Clone()
	}
	return out
}

// Find returns the first body with the given ID.
func (s *Scene) Find(id BodyID) (*CelestialBody, bool) {
	for i := range s.Bodies {
		if s.Bodies[i].ID == id {
			return &s.Bodies[i], true
		}
	}
	return nil, false
}
