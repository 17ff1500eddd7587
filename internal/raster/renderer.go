package raster

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"solarsys/internal/camera"
	"solarsys/internal/mesh"
	"solarsys/internal/scene"
	"solarsys/internal/texture"
)

// ClearColor is used when the sky sphere is hidden.
var ClearColor = color.NRGBA{R: 26, G: 26, B: 26, A: 255}

var (
	orbitGray   = colorful.Color{R: 0.55, G: 0.55, B: 0.6}
	meteorColor = color.NRGBA{R: 255, G: 236, B: 200, A: 255}
)

const (
	orbitAlpha     = 110
	moonOrbitAlpha = 70
	meteorLength   = 10
)

// Frame is one self-contained render request. Bodies must be parallel to the
// Assets they are drawn with.
type Frame struct {
	Width, Height int
	Supersample   int
	Bodies        []scene.CelestialBody
	Meteors       []scene.Meteor
	Camera        camera.State
	Config        *scene.Config
}

// RenderScene rasterizes a frame. The result is Width×Height scaled by
// Supersample; callers downsample with postprocess.Downsample.
func RenderScene(f Frame, a *Assets) *image.NRGBA {
	ss := f.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := f.Width*ss, f.Height*ss
	cfg := f.Config
	if cfg == nil {
		def := scene.DefaultConfig()
		cfg = &def
	}

	fb := NewFrameBuffer(w, h)
	fb.Clear(ClearColor)
	lc := DefaultLightConfig()
	r := &renderer{
		fb:       fb,
		vp:       Viewport{W: float64(w), H: float64(h)},
		viewProj: camera.Projection(float64(w) / float64(h)).Mul4(f.Camera.View()),
		lc:       &lc,
		assets:   a,
	}

	if cfg.ShowBackground {
		r.drawMesh(a.Meshes.Sphere, mgl64.Scale3D(BackgroundScale, BackgroundScale, BackgroundScale), a.Background, ModeBackground)
	}

	for i := range f.Bodies {
		b := &f.Bodies[i]
		ba := a.Bodies[i]
		p := b.Place()

		mode := ModeOpaque
		if b.Emissive() {
			mode = ModeEmissive
		}
		r.drawMesh(a.Meshes.Sphere, p.Body, ba.Surface, mode)

		if cfg.ShowMoons && p.HasMoon {
			r.drawMesh(a.Meshes.Sphere, p.Moon, ba.Moon, ModeOpaque)
		}
	}

	if cfg.ShowOrbits {
		for i := range f.Bodies {
			r.drawOrbits(&f.Bodies[i], cfg.ShowMoons)
		}
	}

	if cfg.ShowRings {
		for i := range f.Bodies {
			b := &f.Bodies[i]
			ba := a.Bodies[i]
			if b.Ring == nil || ba.RingMesh == nil {
				continue
			}
			r.drawMesh(ba.RingMesh, b.Place().Ring, ba.Ring, ModeBlended)
		}
	}

	if cfg.ShowMeteors {
		for _, m := range f.Meteors {
			if !m.Visible {
				continue
			}
			x := (m.Pos[0] + 1) * 0.5 * float64(w)
			y := (1 - m.Pos[1]) * 0.5 * float64(h)
			DrawStreak(fb, x, y, m.Vel[0], -m.Vel[1], meteorLength*ss, meteorColor)
		}
	}

	return fb.Image()
}

type renderer struct {
	fb       *FrameBuffer
	vp       Viewport
	viewProj mgl64.Mat4
	lc       *LightConfig
	assets   *Assets
}

// drawMesh projects, lights and rasterizes every triangle of m under model.
func (r *renderer) drawMesh(m *mesh.Mesh, model mgl64.Mat4, texH texture.Handle, mode Mode) {
	tex := r.assets.Textures.Image(texH)
	mvp := r.viewProj.Mul4(model)
	normalMat := model.Mat3()
	doubleSided := !mode.CullBack

	verts := make([]ScreenVertex, len(m.Verts))
	valid := make([]bool, len(m.Verts))
	for i, v := range m.Verts {
		sv, ok := r.vp.Project(mvp, v.Pos)
		if !ok {
			continue
		}
		sv.U, sv.V = v.UV[0], v.UV[1]
		if !mode.Unlit {
			wp := mgl64.TransformCoordinate(v.Pos, model)
			n := normalMat.Mul3x1(v.Normal).Normalize()
			sv.Shade = r.lc.ComputeShade(wp, n, doubleSided)
		}
		verts[i] = sv
		valid[i] = true
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		if !valid[i0] || !valid[i1] || !valid[i2] {
			continue
		}
		RasterizeTriangle(r.fb, verts[i0], verts[i1], verts[i2], tex, mode, r.lc)
	}
}

// drawOrbits traces the planet's orbit and, when moons are shown, the moon's.
func (r *renderer) drawOrbits(b *scene.CelestialBody, moons bool) {
	if b.OrbitRadius > 0 {
		r.drawLoop(r.assets.Meshes.Circle, b.OrbitPath(), orbitColor(b.Color, orbitAlpha))
	}
	if !moons {
		return
	}
	if m, ok := b.MoonPath(); ok {
		r.drawLoop(r.assets.Meshes.Circle, m, orbitColor(b.Color, moonOrbitAlpha))
	}
}

func (r *renderer) drawLoop(loop mesh.LineLoop, model mgl64.Mat4, c color.NRGBA) {
	if len(loop) < 2 {
		return
	}
	mvp := r.viewProj.Mul4(model)
	first, firstOK := r.vp.Project(mvp, loop[0])
	prev, prevOK := first, firstOK
	for i := 1; i <= len(loop); i++ {
		var cur ScreenVertex
		var ok bool
		if i == len(loop) {
			cur, ok = first, firstOK
		} else {
			cur, ok = r.vp.Project(mvp, loop[i])
		}
		if ok && prevOK {
			DrawLine(r.fb, prev, cur, c)
		}
		prev, prevOK = cur, ok
	}
}

// orbitColor tints the orbit gray toward the body's catalog color.
func orbitColor(hex string, alpha uint8) color.NRGBA {
	c := orbitGray
	if body, err := colorful.Hex(hex); err == nil {
		c = orbitGray.BlendLab(body, 0.5).Clamped()
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}
