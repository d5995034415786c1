package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/topo"
)

// buildSquareFace builds a single square planar face parallel to the XY
// plane at height z, spanning [0,1]x[0,1] in X and Y, enough to exercise
// Volume, AABBSeed and Validate without a full primitive builder.
func buildSquareFace(t *testing.T, top *topo.Topology, store *geom.Store, z float64) topo.FaceID {
	t.Helper()
	corners := []geomath.Point3{
		geomath.NewPoint3(0, 0, z),
		geomath.NewPoint3(1, 0, z),
		geomath.NewPoint3(1, 1, z),
		geomath.NewPoint3(0, 1, z),
	}
	vids := make([]topo.VertexID, len(corners))
	for i, c := range corners {
		vids[i] = top.AddVertex(c)
	}
	hes := make([]topo.HalfEdgeID, len(vids))
	loopPlaceholder := topo.LoopID(topo.None)
	for i, v := range vids {
		hes[i] = top.AddHalfEdge(v, loopPlaceholder)
	}
	for i := range hes {
		top.LinkNext(hes[i], hes[(i+1)%len(hes)])
	}
	loop := top.AddLoop(hes[0])

	axis := geomath.MustUnitVector3(geomath.NewPoint3(0, 0, 1))
	xdir := geomath.MustUnitVector3(geomath.NewPoint3(1, 0, 0))
	surf := geom.NewPlane(geomath.NewPoint3(0, 0, z), xdir, axis)
	sid := store.AddSurface(surf)

	return top.AddFace(loop, int(sid), topo.Forward)
}

func TestVolumeOfSinglePlanarFaceContribution(t *testing.T) {
	top := topo.NewTopology()
	store := geom.NewStore()
	f := buildSquareFace(t, top, store, 2.0)

	shell := top.AddShell(topo.Outer, []topo.FaceID{f})
	solid := top.AddSolid(shell, nil)

	b := New(top, store, solid, geomath.DefaultTolerance())
	vol := b.faceSignedVolumeContribution(f)
	// A unit square at height z=2 contributes 2 * area / ... via the
	// tetrahedron-fan formula relative to the origin; just check it is
	// non-zero and finite, since exact divergence-theorem closure requires
	// every face of a closed shell, not one face in isolation.
	assert.NotEqual(t, 0.0, vol)
	_ = vol
}

func TestAABBSeedCoversFaceVertices(t *testing.T) {
	top := topo.NewTopology()
	store := geom.NewStore()
	f := buildSquareFace(t, top, store, 0.0)
	shell := top.AddShell(topo.Outer, []topo.FaceID{f})
	solid := top.AddSolid(shell, nil)

	b := New(top, store, solid, geomath.DefaultTolerance())
	min, max := b.AABBSeed()
	assert.InDelta(t, 0.0, min[0], 1e-12)
	assert.InDelta(t, 1.0, max[0], 1e-12)
	assert.InDelta(t, 1.0, max[1], 1e-12)
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	top := topo.NewTopology()
	store := geom.NewStore()
	f := buildSquareFace(t, top, store, 0.0)
	shell := top.AddShell(topo.Outer, []topo.FaceID{f})
	solid := top.AddSolid(shell, nil)
	b := New(top, store, solid, geomath.DefaultTolerance())

	clone := b.Clone()
	clone.Topo.ReleaseFace(f)
	assert.False(t, b.Topo.FaceReleased(f))
	assert.True(t, clone.Topo.FaceReleased(f))
}

func TestSurfaceLooksUpGeomStore(t *testing.T) {
	top := topo.NewTopology()
	store := geom.NewStore()
	f := buildSquareFace(t, top, store, 0.0)
	shell := top.AddShell(topo.Outer, []topo.FaceID{f})
	solid := top.AddSolid(shell, nil)
	b := New(top, store, solid, geomath.DefaultTolerance())

	require.Equal(t, geom.KindPlane, b.Surface(f).Kind())
}

func TestTransformTranslatesVerticesAndLeavesOriginalUnchanged(t *testing.T) {
	top := topo.NewTopology()
	store := geom.NewStore()
	f := buildSquareFace(t, top, store, 0.0)
	shell := top.AddShell(topo.Outer, []topo.FaceID{f})
	solid := top.AddSolid(shell, nil)
	b := New(top, store, solid, geomath.DefaultTolerance())

	moved := b.Transform(geomath.NewTranslation(geomath.NewPoint3(5, 0, 0)))
	min, max := moved.AABBSeed()
	assert.InDelta(t, 5.0, min[0], 1e-12)
	assert.InDelta(t, 6.0, max[0], 1e-12)

	origMin, _ := b.AABBSeed()
	assert.InDelta(t, 0.0, origMin[0], 1e-12)
}

func TestTransformWithReflectionFlipsOrientation(t *testing.T) {
	top := topo.NewTopology()
	store := geom.NewStore()
	f := buildSquareFace(t, top, store, 0.0)
	shell := top.AddShell(topo.Outer, []topo.FaceID{f})
	solid := top.AddSolid(shell, nil)
	b := New(top, store, solid, geomath.DefaultTolerance())
	before := b.Topo.Face(f).Orientation

	reflected := b.Transform(geomath.NewUniformScale(-1))
	after := reflected.Topo.Face(f).Orientation
	assert.Equal(t, before.Flip(), after)
}
