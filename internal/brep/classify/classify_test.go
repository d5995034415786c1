package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/primitives"
	"github.com/solidkit/brep/internal/brep/topo"
)

func TestFaceSamplePointWithinCubeExtent(t *testing.T) {
	b := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	for _, f := range b.Faces() {
		p := faceSamplePoint(b, f)
		assert.GreaterOrEqual(t, p[0], -0.1)
		assert.LessOrEqual(t, p[0], 10.1)
		assert.GreaterOrEqual(t, p[1], -0.1)
		assert.LessOrEqual(t, p[1], 10.1)
		assert.GreaterOrEqual(t, p[2], -0.1)
		assert.LessOrEqual(t, p[2], 10.1)
	}
}

func TestClassifyAllFacesNonOverlappingAreOutside(t *testing.T) {
	a := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	bSolid := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	for i := 0; i < bSolid.Topo.NumVertices(); i++ {
		v := bSolid.Topo.Vertex(topo.VertexID(i))
		v.Point[0] += 100
	}
	classes := AllFaces(a, bSolid, 16)
	for _, fc := range classes {
		assert.Equal(t, Outside, fc.Class)
	}
}

func TestClassifySmallCubeInsideLargerCube(t *testing.T) {
	small := primitives.Box(2, 2, 2, geomath.DefaultTolerance())
	big := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	for i := 0; i < big.Topo.NumVertices(); i++ {
		v := big.Topo.Vertex(topo.VertexID(i))
		v.Point[0] -= 1
		v.Point[1] -= 1
		v.Point[2] -= 1
	}
	classes := AllFaces(small, big, 16)
	for _, fc := range classes {
		assert.Equal(t, Inside, fc.Class)
	}
}

func TestSelectFacesDifferenceReversesB(t *testing.T) {
	_, _, reverseB := SelectFaces(Difference, nil, nil)
	assert.True(t, reverseB)
}

func TestSelectFacesUnionKeepsOutsideOnSame(t *testing.T) {
	classesA := []FaceClass{{Face: 0, Class: Outside}, {Face: 1, Class: Inside}, {Face: 2, Class: OnSame}}
	classesB := []FaceClass{{Face: 0, Class: Outside}, {Face: 1, Class: Inside}}
	keepA, keepB, reverseB := SelectFaces(Union, classesA, classesB)
	assert.ElementsMatch(t, []topo.FaceID{0, 2}, keepA)
	assert.ElementsMatch(t, []topo.FaceID{0}, keepB)
	assert.False(t, reverseB)
}
