package raster

import (
	"image/color"
	"math"
)

// DrawLine draws a 1-pixel line between two projected points, alpha-blended,
// depth-tested against opaque geometry but never writing depth.
func DrawLine(fb *FrameBuffer, a, b ScreenVertex, c color.NRGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	inv := 1.0 / float64(steps)
	for i := 0; i <= steps; i++ {
		t := float64(i) * inv
		x := int(a.X + dx*t)
		y := int(a.Y + dy*t)
		if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
			continue
		}
		idx := y*fb.Width + x
		// 1/w is affine in screen space, so plain lerp is exact here.
		if a.InvW+(b.InvW-a.InvW)*t <= fb.ZBuf[idx] {
			continue
		}
		fb.blend(idx*4, c.R, c.G, c.B, c.A)
	}
}

// DrawStreak draws an additive fading streak of length pixels from (x, y)
// along (dirX, dirY), brightest at the head. Used for meteors.
func DrawStreak(fb *FrameBuffer, x, y, dirX, dirY float64, length int, c color.NRGBA) {
	l := math.Hypot(dirX, dirY)
	if l < 1e-12 || length <= 0 {
		return
	}
	dirX /= l
	dirY /= l
	for i := 0; i < length; i++ {
		px := int(x - dirX*float64(i))
		py := int(y - dirY*float64(i))
		if px < 0 || py < 0 || px >= fb.Width || py >= fb.Height {
			continue
		}
		k := 1 - float64(i)/float64(length)
		fb.add((py*fb.Width+px)*4, c.R, c.G, c.B, k*float64(c.A)/255)
	}
}
