package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleSize(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	out := Downsample(solid(64, 48, c), 32, 24)
	assert.Equal(t, image.Pt(32, 24), out.Bounds().Size())
	got := out.NRGBAAt(10, 10)
	assert.InDelta(t, 200, int(got.R), 1)
	assert.InDelta(t, 100, int(got.G), 1)
	assert.Equal(t, uint8(255), got.A)
}

func TestDownsampleNoop(t *testing.T) {
	img := solid(16, 16, color.NRGBA{A: 255})
	assert.Same(t, img, Downsample(img, 16, 16))
}

func TestDownsampleKeepsTransparentColor(t *testing.T) {
	img := solid(8, 8, color.NRGBA{R: 255, A: 64})
	out := Downsample(img, 4, 4)
	got := out.NRGBAAt(2, 2)
	assert.InDelta(t, 255, int(got.R), 6, "no dark halo from premultiplication")
	assert.InDelta(t, 64, int(got.A), 2)
}
