package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"solarsys/internal/mathutil"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// MoonSpec is the catalog form of a MoonAttachment.
type MoonSpec struct {
	Texture  string  `yaml:"texture"`
	Distance float64 `yaml:"distance"`
	Speed    float64 `yaml:"speed"`
	Angle    float64 `yaml:"angle"`
}

// RingSpec only names the texture; the shape comes from the ring table.
type RingSpec struct {
	Texture string `yaml:"texture"`
}

// BodySpec is one catalog entry.
type BodySpec struct {
	Name          string    `yaml:"name"`
	Texture       string    `yaml:"texture"`
	Color         string    `yaml:"color"`
	OrbitRadius   float64   `yaml:"orbit_radius"`
	OrbitSpeed    float64   `yaml:"orbit_speed"`
	OrbitAngle    float64   `yaml:"orbit_angle"`
	RotationSpeed float64   `yaml:"rotation_speed"`
	RotationAngle float64   `yaml:"rotation_angle"`
	Size          float64   `yaml:"size"`
	Moon          *MoonSpec `yaml:"moon"`
	Ring          *RingSpec `yaml:"ring"`
}

// Catalog describes a scene: the background texture and the bodies in draw order.
type Catalog struct {
	Background string     `yaml:"background"`
	Bodies     []BodySpec `yaml:"bodies"`
}

// ParseCatalog decodes and validates YAML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalog reads a catalog file. An empty path selects the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog. It panics only if the embedded
// file is broken.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate rejects entries that would put NaN, infinities or negative speeds
// into the model.
func (c *Catalog) Validate() error {
	if len(c.Bodies) == 0 {
		return errors.New("catalog: no bodies")
	}
	var errs []error
	for i, b := range c.Bodies {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("catalog: body %d: missing name", i))
			continue
		}
		for _, f := range b.nonFinite() {
			errs = append(errs, fmt.Errorf("catalog: %s: %s must be finite", b.Name, f))
		}
		if b.Size <= 0 {
			errs = append(errs, fmt.Errorf("catalog: %s: size must be positive", b.Name))
		}
		if b.OrbitRadius < 0 || b.OrbitSpeed < 0 || b.RotationSpeed < 0 {
			errs = append(errs, fmt.Errorf("catalog: %s: radius and speeds must be non-negative", b.Name))
		}
		if m := b.Moon; m != nil && (m.Distance <= 0 || m.Speed < 0) {
			errs = append(errs, fmt.Errorf("catalog: %s: moon needs positive distance and non-negative speed", b.Name))
		}
	}
	return errors.Join(errs...)
}

// nonFinite names the numeric fields of b that are NaN or infinite.
func (b *BodySpec) nonFinite() []string {
	type field struct {
		name string
		v    float64
	}
	fields := []field{
		{"size", b.Size},
		{"orbit_radius", b.OrbitRadius},
		{"orbit_speed", b.OrbitSpeed},
		{"orbit_angle", b.OrbitAngle},
		{"rotation_speed", b.RotationSpeed},
		{"rotation_angle", b.RotationAngle},
	}
	if m := b.Moon; m != nil {
		fields = append(fields,
			field{"moon.distance", m.Distance},
			field{"moon.speed", m.Speed},
			field{"moon.angle", m.Angle},
		)
	}
	var bad []string
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			bad = append(bad, f.name)
		}
	}
	return bad
}

// Build constructs fully initialized bodies from the catalog.
func (c *Catalog) Build() []CelestialBody {
	bodies := make([]CelestialBody, 0, len(c.Bodies))
	for _, s := range c.Bodies {
		id := ParseBodyID(s.Name)
		b := CelestialBody{
			ID:            id,
			Name:          s.Name,
			OrbitRadius:   s.OrbitRadius,
			OrbitSpeed:    s.OrbitSpeed,
			OrbitAngle:    mathutil.WrapDegrees(s.OrbitAngle),
			RotationSpeed: s.RotationSpeed,
			RotationAngle: mathutil.WrapDegrees(s.RotationAngle),
			Size:          s.Size,
			Texture:       s.Texture,
			Color:         s.Color,
		}
		if s.Moon != nil {
			b.Moon = &MoonAttachment{
				Distance: s.Moon.Distance,
				Speed:    s.Moon.Speed,
				Angle:    mathutil.WrapDegrees(s.Moon.Angle),
				Texture:  s.Moon.Texture,
			}
		}
		if s.Ring != nil {
			b.Ring = NewRing(id, s.Ring.Texture)
		}
		bodies = append(bodies, b)
	}
	return bodies
}
