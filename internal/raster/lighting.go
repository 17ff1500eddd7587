package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LightConfig holds the point-light parameters. The light sits at the origin
// (inside the Sun).
type LightConfig struct {
	Ambient   float64
	Direct    float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

// DefaultLightConfig returns the standard scene lighting.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Ambient:   0.08,
		Direct:    1.6,
		Exposure:  1.0,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the lighting scalar at world position pos with world
// normal n. Double-sided surfaces use |N·L|.
func (lc *LightConfig) ComputeShade(pos, n mgl64.Vec3, doubleSided bool) float64 {
	l := pos.Mul(-1)
	if l.Len() < 1e-12 {
		return lc.Ambient + lc.Direct
	}
	l = l.Normalize()
	ndl := n.Dot(l)
	if doubleSided {
		ndl = math.Abs(ndl)
	} else if ndl < 0 {
		ndl = 0
	}
	return lc.Ambient + ndl*lc.Direct
}

// Shade applies the lighting scalar to an sRGB texel: decode to linear, scale,
// ACES tone map, encode back.
func (lc *LightConfig) Shade(r, g, b uint8, shade float64) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	return encodeSRGB(ACESTonemap(srgbToLinear[r]*k), lc.InvGamma),
		encodeSRGB(ACESTonemap(srgbToLinear[g]*k), lc.InvGamma),
		encodeSRGB(ACESTonemap(srgbToLinear[b]*k), lc.InvGamma)
}

func encodeSRGB(v, invGamma float64) uint8 {
	if v <= 0 {
		return 0
	}
	return clamp255(math.Pow(v, invGamma) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
