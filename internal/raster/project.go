package raster

import (
	"github.com/go-gl/mathgl/mgl64"

	"solarsys/internal/camera"
)

// Viewport maps clip space onto a w×h pixel grid.
type Viewport struct {
	W, H float64
}

// Project transforms p by mvp. ok is false when the point is behind the near
// plane; such primitives are dropped whole instead of clipped.
func (vp Viewport) Project(mvp mgl64.Mat4, p mgl64.Vec3) (ScreenVertex, bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < camera.Near {
		return ScreenVertex{}, false
	}
	inv := 1 / w
	return ScreenVertex{
		X:    (clip.X()*inv + 1) * 0.5 * vp.W,
		Y:    (1 - clip.Y()*inv) * 0.5 * vp.H,
		InvW: inv,
	}, true
}
