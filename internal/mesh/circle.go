package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle returns a unit circle in the XZ plane as a closed loop of segs points.
func Circle(segs int) LineLoop {
	loop := make(LineLoop, segs)
	step := 2 * math.Pi / float64(segs)
	for i := range loop {
		a := float64(i) * step
		loop[i] = mgl64.Vec3{math.Cos(a), 0, -math.Sin(a)}
	}
	return loop
}

// Annulus builds a flat ring in the XZ plane between innerRatio and 1.
// U runs from the inner edge (0) to the outer edge (1), V around the ring.
// Normals point up; the ring is meant to be drawn double-sided.
func Annulus(segs int, innerRatio float64) *Mesh {
	m := &Mesh{
		Verts:   make([]Vertex, 0, (segs+1)*2),
		Indices: make([]uint32, 0, segs*6),
	}
	up := mgl64.Vec3{0, 1, 0}
	step := 2 * math.Pi / float64(segs)
	for j := 0; j <= segs; j++ {
		a := float64(j) * step
		c, s := math.Cos(a), -math.Sin(a)
		v := float64(j) / float64(segs)
		m.Verts = append(m.Verts,
			Vertex{Pos: mgl64.Vec3{c * innerRatio, 0, s * innerRatio}, Normal: up, UV: mgl64.Vec2{0, v}},
			Vertex{Pos: mgl64.Vec3{c, 0, s}, Normal: up, UV: mgl64.Vec2{1, v}},
		)
	}
	for j := 0; j < segs; j++ {
		in0 := uint32(j * 2)
		out0 := in0 + 1
		in1 := in0 + 2
		out1 := in0 + 3
		m.Indices = append(m.Indices, in0, out0, out1, in0, out1, in1)
	}
	return m
}
