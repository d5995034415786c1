// Package sew assembles the faces a boolean operation kept from two input
// solids into one fresh, watertight result topology.
package sew

import (
	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/kernelerr"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/topo"
)

// builder accumulates a fresh topology/geometry pair while copying faces
// from one or more source solids, deduplicating vertices by quantized
// position and re-pairing twins by endpoint coincidence once every face is
// in.
type builder struct {
	top   *topo.Topology
	store *geom.Store
	tol   geomath.Tolerance

	vertexByKey map[[3]int64]topo.VertexID
	newFaces    []topo.FaceID
}

func newBuilder(tol geomath.Tolerance) *builder {
	return &builder{
		top:         topo.NewTopology(),
		store:       geom.NewStore(),
		tol:         tol,
		vertexByKey: make(map[[3]int64]topo.VertexID),
	}
}

func (bd *builder) vertex(p geomath.Point3) topo.VertexID {
	key := geomath.QuantizeKey(p, bd.tol.Linear)
	if v, ok := bd.vertexByKey[key]; ok {
		return v
	}
	v := bd.top.AddVertex(p)
	bd.vertexByKey[key] = v
	return v
}

// copyLoop duplicates src's vertex chain (via the owning solid's topology)
// into bd's topology, wiring a fresh half-edge per vertex and returning the
// new loop id.
func (bd *builder) copyLoop(src *model.BRepSolid, l topo.LoopID) topo.LoopID {
	verts := src.Topo.LoopVertices(l)
	hes := make([]topo.HalfEdgeID, len(verts))
	for i, v := range verts {
		nv := bd.vertex(src.Topo.Vertex(v).Point)
		hes[i] = bd.top.AddHalfEdge(nv, topo.LoopID(topo.None))
	}
	for i := range hes {
		bd.top.LinkNext(hes[i], hes[(i+1)%len(hes)])
	}
	return bd.top.AddLoop(hes[0])
}

// copyFace duplicates src's face f into bd's topology, keeping its loop
// winding but optionally flipping only the Orientation field (never the
// winding itself, since flipping both would reverse the face twice).
func (bd *builder) copyFace(src *model.BRepSolid, f topo.FaceID, flipOrientation bool) topo.FaceID {
	face := src.Topo.Face(f)
	surf := src.Surface(f)
	newSurfIdx := bd.store.AddSurface(surf)

	outer := bd.copyLoop(src, face.OuterLoop)
	orientation := face.Orientation
	if flipOrientation {
		orientation = orientation.Flip()
	}
	newFace := bd.top.AddFace(outer, int(newSurfIdx), orientation)
	for _, il := range face.InnerLoops {
		innerLoop := bd.copyLoop(src, il)
		ff := bd.top.Face(newFace)
		ff.InnerLoops = append(ff.InnerLoops, innerLoop)
	}
	bd.newFaces = append(bd.newFaces, newFace)
	return newFace
}

// repairTwins hashes every half-edge's (origin, destination) vertex pair
// and matches it against the reverse pair, pairing twins across faces that
// may have come from either input solid. A half-edge with no match is a
// non-manifold result.
func (bd *builder) repairTwins() error {
	type key struct{ from, to topo.VertexID }
	byKey := make(map[key]topo.HalfEdgeID)
	paired := make(map[topo.HalfEdgeID]bool)

	n := bd.top.NumHalfEdges()
	for i := 0; i < n; i++ {
		he := topo.HalfEdgeID(i)
		h := bd.top.HalfEdge(he)
		next := bd.top.HalfEdge(h.Next)
		k := key{from: h.Origin, to: next.Origin}
		byKey[k] = he
	}

	for i := 0; i < n; i++ {
		he := topo.HalfEdgeID(i)
		if paired[he] {
			continue
		}
		h := bd.top.HalfEdge(he)
		next := bd.top.HalfEdge(h.Next)
		revKey := key{from: next.Origin, to: h.Origin}
		twin, ok := byKey[revKey]
		if !ok || twin == he {
			return kernelerr.NonManifold("half-edge %d (origin %d) has no twin after sew", he, h.Origin)
		}
		bd.top.LinkTwin(he, twin)
		paired[he] = true
		paired[twin] = true
	}
	return nil
}

// Solids sews the faces keepA of a and keepB of b (b's faces reversed in
// orientation only, never in winding, when reverseB is set) into one fresh
// result solid.
func Solids(a *model.BRepSolid, keepA []topo.FaceID, b *model.BRepSolid, keepB []topo.FaceID, reverseB bool, tol geomath.Tolerance) (*model.BRepSolid, error) {
	bd := newBuilder(tol)
	for _, f := range keepA {
		bd.copyFace(a, f, false)
	}
	for _, f := range keepB {
		bd.copyFace(b, f, reverseB)
	}
	if len(bd.newFaces) == 0 {
		shell := bd.top.AddShell(topo.Outer, nil)
		solid := bd.top.AddSolid(shell, nil)
		return model.New(bd.top, bd.store, solid, tol), nil
	}
	if err := bd.repairTwins(); err != nil {
		return nil, err
	}
	shell := bd.top.AddShell(topo.Outer, bd.newFaces)
	solid := bd.top.AddSolid(shell, nil)
	return model.New(bd.top, bd.store, solid, tol), nil
}
