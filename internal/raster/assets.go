package raster

import (
	"solarsys/internal/mesh"
	"solarsys/internal/scene"
	"solarsys/internal/texture"
)

// BackgroundScale is the radius of the sky sphere around the origin.
const BackgroundScale = 50.0

// BodyAssets holds the loaded resources for one body, parallel to Scene.Bodies.
type BodyAssets struct {
	Surface  texture.Handle
	Moon     texture.Handle
	Ring     texture.Handle
	RingMesh *mesh.Mesh // nil without a ring
}

// Assets is everything loaded once at startup and shared read-only by renders.
type Assets struct {
	Meshes     *mesh.Set
	Textures   *texture.Store
	Background texture.Handle
	Bodies     []BodyAssets
}

// LoadAssets builds meshes and loads every texture the scene names. Each body
// falls back to a placeholder tinted with its catalog color, or to placeholder
// when it has none.
func LoadAssets(sc *scene.Scene, store *texture.Store, placeholder texture.Handle) *Assets {
	a := &Assets{
		Meshes:   mesh.NewSet(),
		Textures: store,
		Bodies:   make([]BodyAssets, len(sc.Bodies)),
	}
	a.Background = store.Load(sc.Background, placeholder)

	for i := range sc.Bodies {
		b := &sc.Bodies[i]
		fallback := placeholder
		if b.Color != "" {
			fallback = store.AddPlaceholder(b.Color)
		}
		ba := BodyAssets{Surface: store.Load(b.Texture, fallback), Moon: placeholder, Ring: fallback}
		if b.Moon != nil {
			ba.Moon = store.Load(b.Moon.Texture, placeholder)
		}
		if r := b.Ring; r != nil {
			ba.Ring = store.Load(r.Texture, fallback)
			ba.RingMesh = mesh.Annulus(mesh.RingSegs, r.InnerScale/r.OuterScale)
		}
		a.Bodies[i] = ba
	}
	return a
}
