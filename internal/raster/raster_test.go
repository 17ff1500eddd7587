package raster

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsys/internal/camera"
	"solarsys/internal/scene"
	"solarsys/internal/texture"
)

func pixel(fb *FrameBuffer, x, y int) color.NRGBA {
	i := (y*fb.Width + x) * 4
	return color.NRGBA{R: fb.Color[i], G: fb.Color[i+1], B: fb.Color[i+2], A: fb.Color[i+3]}
}

// quad returns two counter-clockwise (front-facing) triangles covering the
// whole 8×8 buffer at depth invW.
func quad(invW float64) [2][3]ScreenVertex {
	tl := ScreenVertex{X: -1, Y: -1, InvW: invW, Shade: 1}
	tr := ScreenVertex{X: 9, Y: -1, InvW: invW, Shade: 1}
	bl := ScreenVertex{X: -1, Y: 9, InvW: invW, Shade: 1}
	br := ScreenVertex{X: 9, Y: 9, InvW: invW, Shade: 1}
	return [2][3]ScreenVertex{{tl, bl, br}, {tl, br, tr}}
}

func TestFrameBufferClear(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	assert.Len(t, fb.Color, 48)
	assert.True(t, math.IsInf(fb.ZBuf[0], -1))
	fb.ZBuf[5] = 2
	fb.Clear(ClearColor)
	assert.Equal(t, ClearColor, pixel(fb, 3, 2))
	assert.True(t, math.IsInf(fb.ZBuf[5], -1))
	img := fb.Image()
	assert.Equal(t, ClearColor, img.NRGBAAt(1, 1))
}

func TestRasterizeTriangleDepth(t *testing.T) {
	lc := DefaultLightConfig()
	fb := NewFrameBuffer(8, 8)

	near, _ := texture.Placeholder("#FF0000")
	far, _ := texture.Placeholder("#0000FF")
	for _, tri := range quad(0.5) {
		RasterizeTriangle(fb, tri[0], tri[1], tri[2], near, ModeEmissive, &lc)
	}
	// drawn second but farther away: must not show
	for _, tri := range quad(0.1) {
		RasterizeTriangle(fb, tri[0], tri[1], tri[2], far, ModeEmissive, &lc)
	}
	c := pixel(fb, 4, 4)
	assert.Greater(t, c.R, c.B)
	assert.InDelta(t, 0.5, fb.ZBuf[4*8+4], 1e-9)
}

func TestRasterizeTriangleCullsBackFaces(t *testing.T) {
	lc := DefaultLightConfig()
	fb := NewFrameBuffer(8, 8)
	for _, tri := range quad(0.5) {
		// reversed winding
		RasterizeTriangle(fb, tri[0], tri[2], tri[1], nil, ModeOpaque, &lc)
	}
	assert.Equal(t, color.NRGBA{}, pixel(fb, 4, 4))

	for _, tri := range quad(0.5) {
		RasterizeTriangle(fb, tri[0], tri[2], tri[1], nil, ModeBackground, &lc)
	}
	assert.Equal(t, color.NRGBA{R: 160, G: 160, B: 170, A: 255}, pixel(fb, 4, 4))
}

func TestRasterizeTriangleBlend(t *testing.T) {
	lc := DefaultLightConfig()
	fb := NewFrameBuffer(8, 8)
	fb.Clear(color.NRGBA{A: 255})
	tex, _ := texture.Placeholder("#FFFFFF")
	for i := 3; i < len(tex.Pix); i += 4 {
		tex.Pix[i] = 128
	}
	mode := ModeBlended
	mode.Unlit = true
	for _, tri := range quad(0.5) {
		RasterizeTriangle(fb, tri[0], tri[1], tri[2], tex, mode, &lc)
	}
	c := pixel(fb, 4, 4)
	assert.InDelta(t, 128, int(c.G), 40)
	assert.True(t, math.IsInf(fb.ZBuf[4*8+4], -1), "blended draws do not write depth")
}

func TestShadeFacesLight(t *testing.T) {
	lc := DefaultLightConfig()
	pos := mgl64.Vec3{5, 0, 0}
	lit := lc.ComputeShade(pos, mgl64.Vec3{-1, 0, 0}, false)
	dark := lc.ComputeShade(pos, mgl64.Vec3{1, 0, 0}, false)
	assert.InDelta(t, lc.Ambient+lc.Direct, lit, 1e-12)
	assert.InDelta(t, lc.Ambient, dark, 1e-12)
	assert.InDelta(t, lit, lc.ComputeShade(pos, mgl64.Vec3{1, 0, 0}, true), 1e-12)

	r, _, _ := lc.Shade(200, 200, 200, dark)
	r2, _, _ := lc.Shade(200, 200, 200, lit)
	assert.Less(t, r, r2)
}

func TestDrawLineDepthTested(t *testing.T) {
	fb := NewFrameBuffer(10, 1)
	fb.ZBuf[2] = 1.0
	DrawLine(fb, ScreenVertex{X: 0, Y: 0, InvW: 0.5}, ScreenVertex{X: 9, Y: 0, InvW: 0.5}, color.NRGBA{R: 255, A: 255})
	assert.Equal(t, uint8(255), pixel(fb, 0, 0).R)
	assert.Equal(t, uint8(0), pixel(fb, 2, 0).R, "hidden behind nearer geometry")
	assert.Equal(t, uint8(255), pixel(fb, 9, 0).R)
}

func TestDrawStreak(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	DrawStreak(fb, 8, 5, 1, 0, 5, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	assert.Equal(t, uint8(200), pixel(fb, 8, 5).R)
	assert.Less(t, pixel(fb, 5, 5).R, pixel(fb, 7, 5).R)
	assert.Equal(t, uint8(0), pixel(fb, 9, 5).R)
}

func TestProjectBehindCamera(t *testing.T) {
	s := camera.State{Pitch: 0, Yaw: 0, Distance: 10}
	vp := Viewport{W: 100, H: 100}
	mvp := camera.Projection(1).Mul4(s.View())

	center, ok := vp.Project(mvp, mgl64.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 50, center.X, 1e-9)
	assert.InDelta(t, 50, center.Y, 1e-9)
	assert.InDelta(t, 0.1, center.InvW, 1e-9)

	_, ok = vp.Project(mvp, mgl64.Vec3{0, 0, 20})
	assert.False(t, ok)
}

func newTestAssets(t *testing.T, sc *scene.Scene) *Assets {
	t.Helper()
	store := texture.NewStore(texture.BuildIndex(t.TempDir()))
	placeholder := store.AddPlaceholder("")
	a := LoadAssets(sc, store, placeholder)
	require.Len(t, a.Bodies, len(sc.Bodies))
	return a
}

func TestLoadAssetsFallsBackToBodyColor(t *testing.T) {
	sc := scene.New(scene.DefaultCatalog(), 1)
	a := newTestAssets(t, sc)

	sun := a.Textures.Image(a.Bodies[0].Surface)
	require.NotNil(t, sun)
	assert.Equal(t, color.NRGBA{R: 0xFD, G: 0xB8, B: 0x13, A: 255}, sun.NRGBAAt(0, 0))

	sat, ok := sc.Find(scene.Saturn)
	require.True(t, ok)
	for i := range sc.Bodies {
		if &sc.Bodies[i] == sat {
			assert.NotNil(t, a.Bodies[i].RingMesh)
		}
	}
}

func TestRenderScene(t *testing.T) {
	sc := scene.New(scene.DefaultCatalog(), 1)
	a := newTestAssets(t, sc)
	cfg := scene.DefaultConfig()
	cfg.ShowBackground = false
	cfg.ShowMeteors = false

	f := Frame{
		Width:       96,
		Height:      72,
		Supersample: 1,
		Bodies:      sc.Bodies,
		Camera:      camera.DefaultState(),
		Config:      &cfg,
	}
	img := RenderScene(f, a)
	require.Equal(t, 96, img.Bounds().Dx())
	require.Equal(t, 72, img.Bounds().Dy())

	assert.Equal(t, ClearColor, img.NRGBAAt(0, 0))
	assert.NotEqual(t, ClearColor, img.NRGBAAt(48, 36), "the Sun covers the center")

	f.Supersample = 2
	assert.Equal(t, 192, RenderScene(f, a).Bounds().Dx())
}

func TestRenderSceneBackgroundFillsFrame(t *testing.T) {
	sc := scene.New(scene.DefaultCatalog(), 1)
	a := newTestAssets(t, sc)
	cfg := scene.DefaultConfig()
	cfg.ShowMeteors = false

	img := RenderScene(Frame{Width: 64, Height: 48, Bodies: sc.Bodies, Camera: camera.DefaultState(), Config: &cfg}, a)
	assert.NotEqual(t, ClearColor, img.NRGBAAt(0, 0))
}
