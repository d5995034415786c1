// Package broadphase computes per-face and per-solid axis-aligned bounding
// boxes and enumerates candidate face pairs between two solids, backed by
// an rtreego R-tree over one solid's face boxes so the pair search stays
// sub-quadratic once either solid has more than a handful of faces.
package broadphase

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/topo"
)

// AABB is an axis-aligned bounding box in model space.
type AABB struct {
	Min, Max geomath.Point3
}

// EmptyAABB returns an inverted box ready for expansion via Include.
func EmptyAABB() AABB {
	return AABB{
		Min: geomath.NewPoint3(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: geomath.NewPoint3(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Include expands the box to cover p.
func (a *AABB) Include(p geomath.Point3) {
	for i := 0; i < 3; i++ {
		if p[i] < a.Min[i] {
			a.Min[i] = p[i]
		}
		if p[i] > a.Max[i] {
			a.Max[i] = p[i]
		}
	}
}

// Overlaps reports whether a and b overlap; touching boxes count as
// overlapping.
func (a AABB) Overlaps(b AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Min[i] > b.Max[i] || a.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// Expand grows the box by tol in every direction.
func (a *AABB) Expand(tol float64) {
	for i := 0; i < 3; i++ {
		a.Min[i] -= tol
		a.Max[i] += tol
	}
}

func (a AABB) diagonal() float64 {
	return a.Max.Sub(a.Min).Len()
}

// FaceAABB computes the conservative world-space bounding box of a single
// face: boundary-vertex bounds, further enlarged per surface kind to cover
// curved interiors the vertex hull underestimates.
func FaceAABB(b *model.BRepSolid, f topo.FaceID) AABB {
	box := EmptyAABB()
	for _, v := range b.Topo.FaceBoundaryVertices(f) {
		box.Include(b.Topo.Vertex(v).Point)
	}

	surf := b.Surface(f)
	switch s := surf.(type) {
	case geom.Plane:
		// A planar cap with a single seam vertex (disk) has a near-degenerate
		// vertex AABB; reconstruct the bounding square from the seam
		// vertex's in-plane distance from the plane origin.
		if box.diagonal() < 1.0 {
			verts := b.Topo.FaceBoundaryVertices(f)
			if len(verts) > 0 {
				vPos := b.Topo.Vertex(verts[0]).Point
				toVertex := vPos.Sub(s.Origin)
				normal := s.XDir.Vec().Cross(s.YDir.Vec())
				onPlane := toVertex.Sub(normal.Mul(toVertex.Dot(normal)))
				radius := onPlane.Len()
				if radius > 1e-6 {
					box = EmptyAABB()
					center := s.Origin
					x, y := s.XDir.Vec().Mul(radius), s.YDir.Vec().Mul(radius)
					box.Include(center.Add(x).Add(y))
					box.Include(center.Add(x).Sub(y))
					box.Include(center.Sub(x).Add(y))
					box.Include(center.Sub(x).Sub(y))
				}
			}
		}
	case geom.Cylinder:
		vMin, vMax := math.Inf(1), math.Inf(-1)
		for _, v := range b.Topo.FaceBoundaryVertices(f) {
			p := b.Topo.Vertex(v).Point
			h := p.Sub(s.Origin).Dot(s.Axis.Vec())
			if h < vMin {
				vMin = h
			}
			if h > vMax {
				vMax = h
			}
		}
		bottomCenter := s.Origin.Add(s.Axis.Vec().Mul(vMin))
		topCenter := s.Origin.Add(s.Axis.Vec().Mul(vMax))
		r := s.Radius
		// Bound the full circle swept at each end in the plane perpendicular
		// to the cylinder's own axis, not the world XY plane: a point on
		// that circle is r*cos(t)*x + r*sin(t)*y for basis vectors x, y
		// perpendicular to axis, so its extent along world axis i is
		// r*sqrt(x[i]^2+y[i]^2), which reduces to the old ±r offset only
		// when the axis happens to be world Z.
		x := s.XDir.Vec()
		y := s.Axis.Vec().Cross(x)
		box = EmptyAABB()
		for _, c := range []geomath.Point3{bottomCenter, topCenter} {
			for i := 0; i < 3; i++ {
				extent := r * math.Hypot(x[i], y[i])
				lo, hi := c, c
				lo[i] -= extent
				hi[i] += extent
				box.Include(lo)
				box.Include(hi)
			}
		}
	case geom.Sphere:
		box.Expand(s.Radius)
	case geom.Cone:
		box.Expand(box.diagonal() * 0.5)
	case geom.Torus:
		box.Expand(s.MajorRadius + s.MinorRadius)
	case geom.Bilinear:
		// Exact from vertices; the patch is defined by its own corners.
	}
	return box
}

// SolidAABB is the union of every live face's AABB.
func SolidAABB(b *model.BRepSolid) AABB {
	box := EmptyAABB()
	for _, f := range b.Faces() {
		fb := FaceAABB(b, f)
		box.Include(fb.Min)
		box.Include(fb.Max)
	}
	return box
}
