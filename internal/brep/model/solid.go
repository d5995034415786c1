// Package model ties a topo.Topology to the geom.Store its faces and
// trimmed edges index into, and adds the solid-level operations (volume,
// bounding-box seed, validity check) that need both halves at once.
package model

import (
	"github.com/google/uuid"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/kernelerr"
	"github.com/solidkit/brep/internal/brep/topo"
)

// BRepSolid is one watertight solid: its topology, the geometry store its
// faces' SurfaceIdx and trimmed edges' curve ids index into, and the
// tolerance its own geometry was built under. ID is a stable identity used
// by export and scene-file provenance (3MF object ids, logging) that
// survives Clone but not Sew, which produces a logically new solid.
type BRepSolid struct {
	ID        uuid.UUID
	Topo      *topo.Topology
	Geom      *geom.Store
	Root      topo.SolidID
	Tolerance geomath.Tolerance
}

// New wraps an already-built topology/geometry pair as a solid rooted at
// root, assigning it a fresh identity.
func New(top *topo.Topology, store *geom.Store, root topo.SolidID, tol geomath.Tolerance) *BRepSolid {
	return &BRepSolid{ID: uuid.New(), Topo: top, Geom: store, Root: root, Tolerance: tol}
}

// Clone deep-copies both halves so a boolean operation can mutate a working
// copy while the caller's solid stays untouched; the clone keeps the
// original's identity since it represents the same logical solid.
func (b *BRepSolid) Clone() *BRepSolid {
	return &BRepSolid{
		ID:        b.ID,
		Topo:      b.Topo.Clone(),
		Geom:      b.Geom.Clone(),
		Root:      b.Root,
		Tolerance: b.Tolerance,
	}
}

// Surface returns the analytic surface backing face f.
func (b *BRepSolid) Surface(f topo.FaceID) geom.Surface {
	return b.Geom.Surface(geom.SurfaceID(b.Topo.Face(f).SurfaceIdx))
}

// Faces returns every live face of the solid.
func (b *BRepSolid) Faces() []topo.FaceID {
	return b.Topo.SolidFaces(b.Root)
}

// Validate runs the shell-level manifold and double-cover checks against
// every shell reachable from the solid's root, per the topology contract's
// invariant 5.
func (b *BRepSolid) Validate() error {
	for _, s := range b.Topo.SolidShells(b.Root) {
		if err := b.Topo.CheckShellManifold(s); err != nil {
			return err
		}
		if err := b.Topo.CheckEdgeDoubleCover(s); err != nil {
			return err
		}
	}
	return nil
}

// Volume computes the solid's signed volume via the divergence theorem,
// decomposing each face into a planar tessellation-free triangle fan over
// each of its loops' vertices (outer and inner) and summing signed
// tetrahedra against the origin. It is exact only for planar faces; a
// curved face contributes only the fan over its boundary vertices, and a
// loop with fewer than three vertices contributes nothing.
func (b *BRepSolid) Volume() float64 {
	var total float64
	for _, f := range b.Faces() {
		total += b.faceSignedVolumeContribution(f)
	}
	return total
}

func (b *BRepSolid) faceSignedVolumeContribution(f topo.FaceID) float64 {
	face := b.Topo.Face(f)
	sign := 1.0
	if face.Orientation == topo.Reversed {
		sign = -1.0
	}
	var sum float64
	// Inner (hole) loops wind opposite the outer loop by construction, so
	// fanning each loop independently and summing naturally subtracts the
	// hole's volume without a separate sign flip.
	for _, l := range b.Topo.FaceLoops(f) {
		verts := b.Topo.LoopVertices(l)
		if len(verts) < 3 {
			continue
		}
		p0 := b.Topo.Vertex(verts[0]).Point
		for i := 1; i < len(verts)-1; i++ {
			p1 := b.Topo.Vertex(verts[i]).Point
			p2 := b.Topo.Vertex(verts[i+1]).Point
			// Signed volume of the tetrahedron (origin, p0, p1, p2).
			sum += p0.Dot(p1.Cross(p2)) / 6.0
		}
	}
	return sign * sum
}

// Transform returns a new solid with every vertex and surface mapped
// through t. Per the geometry contract, a negative-determinant transform
// (a reflection) flips each face's Orientation rather than its surface's
// own normal convention, so the result's outward-normal invariant still
// holds without renegotiating every surface's parameterization.
func (b *BRepSolid) Transform(t geomath.Transform) *BRepSolid {
	top := b.Topo.Clone()
	for i := 0; i < top.NumVertices(); i++ {
		v := top.Vertex(topo.VertexID(i))
		v.Point = t.Apply(v.Point)
	}

	store := b.Geom.Clone()
	for i := 0; i < store.NumSurfaces(); i++ {
		id := geom.SurfaceID(i)
		store.SetSurface(id, store.Surface(id).Transform(t))
	}

	if t.Determinant() < 0 {
		for _, f := range top.FaceIDs() {
			if top.FaceReleased(f) {
				continue
			}
			face := top.Face(f)
			face.Orientation = face.Orientation.Flip()
		}
	}

	return &BRepSolid{ID: uuid.New(), Topo: top, Geom: store, Root: b.Root, Tolerance: b.Tolerance}
}

// AABBSeed returns the axis-aligned bounds of the solid's boundary
// vertices; it is a coarse seed for the broadphase pass, which enlarges it
// per surface kind to cover curved interiors that lie outside the vertex
// hull (see broadphase.FaceAABB).
func (b *BRepSolid) AABBSeed() (min, max geomath.Point3) {
	faces := b.Faces()
	if len(faces) == 0 {
		return geomath.Point3{}, geomath.Point3{}
	}
	first := true
	for _, f := range faces {
		for _, v := range b.Topo.FaceBoundaryVertices(f) {
			p := b.Topo.Vertex(v).Point
			if first {
				min, max = p, p
				first = false
				continue
			}
			for i := 0; i < 3; i++ {
				if p[i] < min[i] {
					min[i] = p[i]
				}
				if p[i] > max[i] {
					max[i] = p[i]
				}
			}
		}
	}
	return min, max
}

// MustValidate panics with a kernelerr-wrapped message if the solid fails
// validation; intended for primitive builders and tests where a malformed
// result is a programming error, not a recoverable condition.
func (b *BRepSolid) MustValidate() {
	if err := b.Validate(); err != nil {
		panic(kernelerr.NonManifold("solid failed validation: %v", err))
	}
}
