// Package tessellate converts a BRep solid into a triangle mesh, used both
// as the pipeline's external output format and as classify's point-in-solid
// ground truth.
package tessellate

import (
	"github.com/solidkit/brep/internal/brep/geomath"
)

// Mesh is a flat triangle soup: Positions and Normals are packed
// component-major (x0,y0,z0,x1,y1,z1,...), Indices group every three
// entries into one triangle.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

func (m *Mesh) addVertex(p geomath.Point3, n geomath.Vector3) uint32 {
	idx := uint32(len(m.Positions) / 3)
	m.Positions = append(m.Positions, float32(p[0]), float32(p[1]), float32(p[2]))
	m.Normals = append(m.Normals, float32(n[0]), float32(n[1]), float32(n[2]))
	return idx
}

func (m *Mesh) addTriangle(p0, p1, p2 geomath.Point3, n geomath.Vector3) {
	i0 := m.addVertex(p0, n)
	i1 := m.addVertex(p1, n)
	i2 := m.addVertex(p2, n)
	m.Indices = append(m.Indices, i0, i1, i2)
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int { return len(m.Indices) / 3 }
