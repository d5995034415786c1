package coordinate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/primitives"
	"github.com/solidkit/brep/internal/brep/topo"
)

// translateVertices shifts every vertex of b by dx along X, for test setup
// only.
func translateVertices(b *model.BRepSolid, dx float64) {
	n := b.Topo.NumVertices()
	for i := 0; i < n; i++ {
		v := b.Topo.Vertex(topo.VertexID(i))
		v.Point[0] += dx
	}
}

func TestBooleanUnionOfDisjointCubesKeepsBothWhole(t *testing.T) {
	opts := DefaultOptions()
	a := primitives.Box(10, 10, 10, opts.Tolerance)
	b := primitives.Box(10, 10, 10, opts.Tolerance)
	translateVertices(b, 100)

	result, err := Boolean(Union, a, b, opts)
	require.NoError(t, err)
	assert.Len(t, result.Faces(), len(a.Faces())+len(b.Faces()))
	wantVol := a.Volume() + b.Volume()
	assert.InDelta(t, wantVol, result.Volume(), opts.Tolerance.VolumeTolerance(wantVol, wantVol))
}

func TestBooleanDifferenceOfDisjointCubesKeepsOnlyA(t *testing.T) {
	opts := DefaultOptions()
	a := primitives.Box(10, 10, 10, opts.Tolerance)
	b := primitives.Box(10, 10, 10, opts.Tolerance)
	translateVertices(b, 100)

	result, err := Boolean(Difference, a, b, opts)
	require.NoError(t, err)
	assert.Len(t, result.Faces(), len(a.Faces()))
	assert.InDelta(t, a.Volume(), result.Volume(), opts.Tolerance.VolumeTolerance(a.Volume(), a.Volume()))
}

func TestBooleanIntersectionOfDisjointCubesIsEmpty(t *testing.T) {
	opts := DefaultOptions()
	a := primitives.Box(10, 10, 10, opts.Tolerance)
	b := primitives.Box(10, 10, 10, opts.Tolerance)
	translateVertices(b, 100)

	result, err := Boolean(Intersection, a, b, opts)
	require.NoError(t, err)
	assert.Empty(t, result.Faces())
	assert.Zero(t, result.Volume())
}

func TestBooleanUnionOfOverlappingCubes(t *testing.T) {
	opts := DefaultOptions()
	a := primitives.Box(10, 10, 10, opts.Tolerance)
	b := primitives.Box(10, 10, 10, opts.Tolerance)
	translateVertices(b, 5)

	result, err := Boolean(Union, a, b, opts)
	require.NoError(t, err)
	require.NoError(t, result.Validate())
	// Two 1000-volume cubes overlapping in a 5x10x10 = 500 region.
	assert.InDelta(t, 1500.0, result.Volume(), 0.5)
}

// TestBooleanIntersectionOfOffsetCubes is scenario 4: two 10x10x10 cubes,
// one shifted by (5,0,0), intersected.
func TestBooleanIntersectionOfOffsetCubes(t *testing.T) {
	opts := DefaultOptions()
	a := primitives.Box(10, 10, 10, opts.Tolerance)
	b := primitives.Box(10, 10, 10, opts.Tolerance)
	translateVertices(b, 5)

	result, err := Boolean(Intersection, a, b, opts)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, result.Volume(), 0.5)

	min, max := result.AABBSeed()
	assert.InDelta(t, 5, min[0], opts.Tolerance.Linear*10)
	assert.InDelta(t, 0, min[1], opts.Tolerance.Linear*10)
	assert.InDelta(t, 0, min[2], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[0], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[1], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[2], opts.Tolerance.Linear*10)
}

// TestBooleanUnionOfIdenticalCubes is scenario 1: cube union cube, identical,
// at origin, 10x10x10.
func TestBooleanUnionOfIdenticalCubes(t *testing.T) {
	opts := DefaultOptions()
	a := primitives.Box(10, 10, 10, opts.Tolerance)
	b := primitives.Box(10, 10, 10, opts.Tolerance)

	result, err := Boolean(Union, a, b, opts)
	require.NoError(t, err)
	require.NoError(t, result.Validate())
	assert.InDelta(t, 1000.0, result.Volume(), 0.1)
	assert.Len(t, result.Faces(), 6)

	min, max := result.AABBSeed()
	assert.InDelta(t, 0, min[0], opts.Tolerance.Linear*10)
	assert.InDelta(t, 0, min[1], opts.Tolerance.Linear*10)
	assert.InDelta(t, 0, min[2], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[0], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[1], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[2], opts.Tolerance.Linear*10)
}

// TestBooleanCubeMinusSmallerCube is scenario 2: cube 10x10x10 minus cube
// 5x5x5, both corner-anchored at the origin.
func TestBooleanCubeMinusSmallerCube(t *testing.T) {
	opts := DefaultOptions()
	a := primitives.Box(10, 10, 10, opts.Tolerance)
	b := primitives.Box(5, 5, 5, opts.Tolerance)

	result, err := Boolean(Difference, a, b, opts)
	require.NoError(t, err)
	require.NoError(t, result.Validate())
	assert.InDelta(t, 875.0, result.Volume(), 0.1)
	assert.Len(t, result.Faces(), 9)

	min, max := result.AABBSeed()
	assert.InDelta(t, 0, min[0], opts.Tolerance.Linear*10)
	assert.InDelta(t, 0, min[1], opts.Tolerance.Linear*10)
	assert.InDelta(t, 0, min[2], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[0], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[1], opts.Tolerance.Linear*10)
	assert.InDelta(t, 10, max[2], opts.Tolerance.Linear*10)
}

// wallFaceMatches reports whether f's boundary vertices lie on the plane
// where coordinate constAxis equals constVal (within tol) and span exactly
// the [spanLo, spanHi] range on spanAxis (within tol); the remaining axis is
// not checked.
func wallFaceMatches(b *model.BRepSolid, f topo.FaceID, constAxis int, constVal float64, spanAxis int, spanLo, spanHi, tol float64) bool {
	verts := b.Topo.FaceBoundaryVertices(f)
	if len(verts) == 0 {
		return false
	}
	spanMin, spanMax := math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		p := b.Topo.Vertex(v).Point
		if math.Abs(p[constAxis]-constVal) > tol {
			return false
		}
		if p[spanAxis] < spanMin {
			spanMin = p[spanAxis]
		}
		if p[spanAxis] > spanMax {
			spanMax = p[spanAxis]
		}
	}
	return math.Abs(spanMin-spanLo) <= tol && math.Abs(spanMax-spanHi) <= tol
}

// TestBooleanPlateMinusThroughHole is scenario 3: an 80x6x60 plate minus a
// 12x20x12 through-hole box at (34,-7,24) — the plate-with-hole regression.
func TestBooleanPlateMinusThroughHole(t *testing.T) {
	opts := DefaultOptions()
	plate := primitives.Box(80, 6, 60, opts.Tolerance)
	hole := primitives.Box(12, 20, 12, opts.Tolerance)
	hole = hole.Transform(geomath.NewTranslation(geomath.NewPoint3(34, -7, 24)))

	result, err := Boolean(Difference, plate, hole, opts)
	require.NoError(t, err)
	require.NoError(t, result.Validate())
	assert.InDelta(t, 27936.0, result.Volume(), 100)

	min, max := result.AABBSeed()
	assert.InDelta(t, 0, min[0], opts.Tolerance.Linear*10)
	assert.InDelta(t, 0, min[1], opts.Tolerance.Linear*10)
	assert.InDelta(t, 0, min[2], opts.Tolerance.Linear*10)
	assert.InDelta(t, 80, max[0], opts.Tolerance.Linear*10)
	assert.InDelta(t, 6, max[1], opts.Tolerance.Linear*10)
	assert.InDelta(t, 60, max[2], opts.Tolerance.Linear*10)

	const wallTol = 1e-3
	wantWalls := []struct {
		axis int
		val  float64
	}{
		{0, 34}, {0, 46}, {2, 24}, {2, 36},
	}
	found := make([]bool, len(wantWalls))
	for _, f := range result.Faces() {
		for i, w := range wantWalls {
			if wallFaceMatches(result, f, w.axis, w.val, 1, 0, 6, wallTol) {
				found[i] = true
			}
		}
	}
	for i, w := range wantWalls {
		assert.Truef(t, found[i], "missing interior wall face at axis %d = %v spanning Y in [0,6]", w.axis, w.val)
	}
}

// TestBooleanCylinderMinusSquareTunnel is scenario 6: a cylinder r=5 h=10
// minus a 3x3x20 square tunnel centered on the cylinder's axis.
func TestBooleanCylinderMinusSquareTunnel(t *testing.T) {
	opts := DefaultOptions()
	cyl := primitives.Cylinder(5, 10, opts.Tolerance)
	tunnel := primitives.Box(3, 3, 20, opts.Tolerance)
	tunnel = tunnel.Transform(geomath.NewTranslation(geomath.NewPoint3(-1.5, -1.5, -5)))

	result, err := Boolean(Difference, cyl, tunnel, opts)
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	want := math.Pi*25*10 - 3*3*10
	assert.InDelta(t, want, result.Volume(), 0.02*want)
}
