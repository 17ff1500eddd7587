// Package mesh generates the static geometry shared by every body in the scene.
// All meshes are unit-sized and centered on the origin; placement comes from the
// model matrices built in package scene.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// Vertex is one (position, normal, UV) triple.
type Vertex struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
	UV     mgl64.Vec2
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Verts   []Vertex
	Indices []uint32
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) (Vertex, Vertex, Vertex) {
	j := i * 3
	return m.Verts[m.Indices[j]], m.Verts[m.Indices[j+1]], m.Verts[m.Indices[j+2]]
}

// LineLoop is a closed polyline; the last point connects back to the first.
type LineLoop []mgl64.Vec3

// Set bundles the meshes shared by every body, generated once at startup.
type Set struct {
	Sphere *Mesh
	Circle LineLoop
}

// Default sphere and loop resolutions.
const (
	SphereSectors = 36
	SphereStacks  = 18
	CircleSegs    = 128
	RingSegs      = 72
)

// NewSet builds the default mesh set.
func NewSet() *Set {
	return &Set{
		Sphere: UVSphere(SphereSectors, SphereStacks),
		Circle: Circle(CircleSegs),
	}
}
