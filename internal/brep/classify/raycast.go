package classify

import (
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/tessellate"
)

// rayDir is a deterministic, slightly off-axis ray direction used for the
// point-in-mesh parity test; the small Y/Z skew avoids the ray grazing an
// edge or vertex of an axis-aligned mesh exactly.
var rayDir = geomath.NewPoint3(1, 1e-7, 1.3e-7)

// pointInMesh tests p against mesh via a Möller-Trumbore ray cast along
// rayDir, counting intersections; odd parity means p is inside.
func pointInMesh(p geomath.Point3, mesh *tessellate.Mesh) bool {
	hits := 0
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := vertexAt(mesh, mesh.Indices[i])
		b := vertexAt(mesh, mesh.Indices[i+1])
		c := vertexAt(mesh, mesh.Indices[i+2])
		if rayIntersectsTriangle(p, rayDir, a, b, c) {
			hits++
		}
	}
	return hits%2 == 1
}

func vertexAt(mesh *tessellate.Mesh, idx uint32) geomath.Point3 {
	base := int(idx) * 3
	return geomath.NewPoint3(
		float64(mesh.Positions[base]),
		float64(mesh.Positions[base+1]),
		float64(mesh.Positions[base+2]),
	)
}

// rayIntersectsTriangle is the standard Möller-Trumbore test, counting only
// forward (t > epsilon) intersections.
func rayIntersectsTriangle(origin, dir, a, b, c geomath.Point3) bool {
	const eps = 1e-12
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if det > -eps && det < eps {
		return false
	}
	invDet := 1.0 / det
	tvec := origin.Sub(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return false
	}
	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return false
	}
	t := e2.Dot(qvec) * invDet
	return t > eps
}
