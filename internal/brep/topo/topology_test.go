package topo

import (
	"testing"

	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangleLoop wires a single triangular loop and returns its LoopID
// plus the three half-edge ids in traversal order.
func buildTriangleLoop(t *Topology, a, b, c geomath.Point3) (LoopID, [3]HalfEdgeID) {
	va := t.AddVertex(a)
	vb := t.AddVertex(b)
	vc := t.AddVertex(c)

	l := t.AddLoop(HalfEdgeID(None))
	he0 := t.AddHalfEdge(va, l)
	he1 := t.AddHalfEdge(vb, l)
	he2 := t.AddHalfEdge(vc, l)
	t.LinkNext(he0, he1)
	t.LinkNext(he1, he2)
	t.LinkNext(he2, he0)
	t.Loop(l).First = he0
	return l, [3]HalfEdgeID{he0, he1, he2}
}

func TestLoopHalfEdgesClosesAtExpectedSize(t *testing.T) {
	topo := NewTopology()
	l, _ := buildTriangleLoop(topo, geomath.NewPoint3(0, 0, 0), geomath.NewPoint3(1, 0, 0), geomath.NewPoint3(0, 1, 0))

	hes := topo.LoopHalfEdges(l)
	require.Len(t, hes, 3)
	assert.True(t, topo.LoopClosesWithinSize(l))
}

func TestFaceBoundaryVerticesIncludesHoles(t *testing.T) {
	topo := NewTopology()
	outer, _ := buildTriangleLoop(topo, geomath.NewPoint3(0, 0, 0), geomath.NewPoint3(10, 0, 0), geomath.NewPoint3(0, 10, 0))
	hole, _ := buildTriangleLoop(topo, geomath.NewPoint3(1, 1, 0), geomath.NewPoint3(2, 1, 0), geomath.NewPoint3(1, 2, 0))

	f := topo.AddFace(outer, 0, Forward)
	topo.Face(f).InnerLoops = []LoopID{hole}

	verts := topo.FaceBoundaryVertices(f)
	assert.Len(t, verts, 6)
}

func TestCloneIsIndependent(t *testing.T) {
	topo := NewTopology()
	outer, hes := buildTriangleLoop(topo, geomath.NewPoint3(0, 0, 0), geomath.NewPoint3(1, 0, 0), geomath.NewPoint3(0, 1, 0))
	f := topo.AddFace(outer, 0, Forward)
	topo.Face(f).InnerLoops = []LoopID{}

	clone := topo.Clone()
	clone.Vertex(topo.HalfEdge(hes[0]).Origin).Point = geomath.NewPoint3(99, 99, 99)

	original := topo.Vertex(topo.HalfEdge(hes[0]).Origin).Point
	assert.NotEqual(t, geomath.NewPoint3(99, 99, 99), original)
}

func TestCheckShellManifoldDetectsMissingTwin(t *testing.T) {
	topo := NewTopology()
	outer, _ := buildTriangleLoop(topo, geomath.NewPoint3(0, 0, 0), geomath.NewPoint3(1, 0, 0), geomath.NewPoint3(0, 1, 0))
	f := topo.AddFace(outer, 0, Forward)
	shell := topo.AddShell(Outer, []FaceID{f})

	err := topo.CheckShellManifold(shell)
	require.Error(t, err)
}

func TestReleaseFaceExcludesFromFaceIDs(t *testing.T) {
	topo := NewTopology()
	outer, _ := buildTriangleLoop(topo, geomath.NewPoint3(0, 0, 0), geomath.NewPoint3(1, 0, 0), geomath.NewPoint3(0, 1, 0))
	f := topo.AddFace(outer, 0, Forward)
	require.Contains(t, topo.FaceIDs(), f)

	topo.ReleaseFace(f)
	assert.NotContains(t, topo.FaceIDs(), f)
}
