package texture

import (
	"fmt"
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultPlaceholderColor is used when no tint is given: loud enough that a
// missing asset is obvious on screen.
const DefaultPlaceholderColor = "#FF00FF"

const (
	placeholderW = 64
	placeholderH = 32
	checkSize    = 8
)

// Placeholder generates a checkerboard in two shades of hex. An empty or
// malformed hex falls back to DefaultPlaceholderColor.
func Placeholder(hex string) (*image.NRGBA, error) {
	if hex == "" {
		hex = DefaultPlaceholderColor
	}
	base, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("texture: placeholder color %q: %w", hex, err)
	}
	dark := base.BlendLab(colorful.Color{}, 0.35).Clamped()

	img := image.NewNRGBA(image.Rect(0, 0, placeholderW, placeholderH))
	for y := 0; y < placeholderH; y++ {
		for x := 0; x < placeholderW; x++ {
			c := base
			if (x/checkSize+y/checkSize)%2 == 1 {
				c = dark
			}
			r, g, b := c.RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img, nil
}

// AddPlaceholder generates a placeholder for hex and stores it. Malformed
// colors fall back to the default tint.
func (s *Store) AddPlaceholder(hex string) Handle {
	img, err := Placeholder(hex)
	if err != nil {
		img, _ = Placeholder(DefaultPlaceholderColor)
	}
	return s.Add(img)
}
