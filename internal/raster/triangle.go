package raster

import (
	"image"
	"math"
)

// ScreenVertex is a vertex after projection and viewport mapping.
type ScreenVertex struct {
	X, Y  float64 // pixels, Y down
	InvW  float64 // 1/clip.w; larger is nearer
	U, V  float64
	Shade float64 // lighting scalar, ignored when Mode.Unlit
}

// Mode selects the per-draw raster state.
type Mode struct {
	DepthTest  bool
	DepthWrite bool
	CullBack   bool // drop triangles that wind clockwise on screen
	Blend      bool // alpha-blend over the framebuffer instead of replacing
	Unlit      bool // use texels as-is
}

// Preset modes.
var (
	ModeOpaque     = Mode{DepthTest: true, DepthWrite: true, CullBack: true}
	ModeEmissive   = Mode{DepthTest: true, DepthWrite: true, CullBack: true, Unlit: true}
	ModeBackground = Mode{Unlit: true}
	ModeBlended    = Mode{DepthTest: true, Blend: true}
)

// Default color when a draw has no texture.
var defaultTexel = [4]uint8{160, 160, 170, 255}

// RasterizeTriangle fills one triangle with perspective-correct UVs and shading.
//
// This is the HOT PATH: no allocations in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, a, b, c ScreenVertex, tex *image.NRGBA, mode Mode, lc *LightConfig) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	x2, y2 := c.X, c.Y

	// Signed area on a Y-down screen: counter-clockwise (front) faces are negative.
	area := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	if mode.CullBack && area >= 0 {
		return
	}

	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Attributes pre-divided by w for perspective-correct interpolation.
	w0, w1, w2 := a.InvW, b.InvW, c.InvW
	u0, u1, u2 := a.U*w0, b.U*w1, c.U*w2
	v0, v1, v2 := a.V*w0, b.V*w1, c.V*w2
	s0, s1, s2 := a.Shade*w0, b.Shade*w1, c.Shade*w2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			b0 := (dy12*dsx + dx21*dsy) * invDet
			b1 := (dy20*dsx + dx02*dsy) * invDet
			b2 := 1.0 - b0 - b1

			if b0 < -0.001 || b1 < -0.001 || b2 < -0.001 {
				continue
			}

			invW := b0*w0 + b1*w1 + b2*w2
			if invW <= 0 {
				continue
			}
			zIdx := rowOff + sx
			if mode.DepthTest && invW <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := defaultTexel[0], defaultTexel[1], defaultTexel[2], defaultTexel[3]
			if tex != nil {
				u := (b0*u0 + b1*u1 + b2*u2) / invW
				v := (b0*v0 + b1*v1 + b2*v2) / invW
				cr, cg, cb, ca = SampleTexture(tex, u, v)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}

			if !mode.Unlit {
				shade := (b0*s0 + b1*s1 + b2*s2) / invW
				cr, cg, cb = lc.Shade(cr, cg, cb, shade)
			}

			if mode.DepthWrite {
				fb.ZBuf[zIdx] = invW
			}

			pxIdx := zIdx * 4
			if mode.Blend {
				fb.blend(pxIdx, cr, cg, cb, ca)
			} else {
				fb.Color[pxIdx] = cr
				fb.Color[pxIdx+1] = cg
				fb.Color[pxIdx+2] = cb
				fb.Color[pxIdx+3] = 255
			}
		}
	}
}
