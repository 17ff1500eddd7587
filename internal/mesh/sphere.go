package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UVSphere builds a radius-1 sphere with the poles on the Y axis.
//
// Vertices are laid out stack by stack from the north pole, (sectors+1) per
// stack so the texture seam gets its own column. The first and last stacks
// emit a single triangle per sector; the rest emit two. Triangles wind
// counter-clockwise when viewed from outside.
func UVSphere(sectors, stacks int) *Mesh {
	m := &Mesh{
		Verts:   make([]Vertex, 0, (stacks+1)*(sectors+1)),
		Indices: make([]uint32, 0, (stacks-1)*sectors*6),
	}

	sectorStep := 2 * math.Pi / float64(sectors)
	stackStep := math.Pi / float64(stacks)

	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		xz := math.Cos(stackAngle)
		y := math.Sin(stackAngle)
		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			p := mgl64.Vec3{xz * math.Cos(sectorAngle), y, -xz * math.Sin(sectorAngle)}
			m.Verts = append(m.Verts, Vertex{
				Pos:    p,
				Normal: p,
				UV:     mgl64.Vec2{float64(j) / float64(sectors), float64(i) / float64(stacks)},
			})
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1
		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
		}
	}
	return m
}
