package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Depth is stored as 1/w: larger values are nearer.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // 1/w per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Clear fills the color buffer with c and resets depth.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// blend composites (r,g,b) with coverage a over the pixel at idx.
func (fb *FrameBuffer) blend(idx int, r, g, b, a uint8) {
	if a == 255 {
		fb.Color[idx] = r
		fb.Color[idx+1] = g
		fb.Color[idx+2] = b
		fb.Color[idx+3] = 255
		return
	}
	fa := float64(a) / 255
	inv := 1 - fa
	fb.Color[idx] = clamp255(float64(r)*fa + float64(fb.Color[idx])*inv)
	fb.Color[idx+1] = clamp255(float64(g)*fa + float64(fb.Color[idx+1])*inv)
	fb.Color[idx+2] = clamp255(float64(b)*fa + float64(fb.Color[idx+2])*inv)
	fb.Color[idx+3] = clamp255(float64(a) + float64(fb.Color[idx+3])*inv)
}

// add adds (r,g,b) scaled by k to the pixel at idx, clamping at white.
func (fb *FrameBuffer) add(idx int, r, g, b uint8, k float64) {
	fb.Color[idx] = clamp255(float64(fb.Color[idx]) + float64(r)*k)
	fb.Color[idx+1] = clamp255(float64(fb.Color[idx+1]) + float64(g)*k)
	fb.Color[idx+2] = clamp255(float64(fb.Color[idx+2]) + float64(b)*k)
	fb.Color[idx+3] = 255
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
