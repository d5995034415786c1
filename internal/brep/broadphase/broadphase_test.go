package broadphase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/primitives"
	"github.com/solidkit/brep/internal/brep/topo"
)

// translateVertices shifts every vertex of b by dx along X, for test setup
// only; the boolean pipeline itself never mutates vertex positions outside
// of split/sew.
func translateVertices(b *model.BRepSolid, dx float64) {
	n := b.Topo.NumVertices()
	for i := 0; i < n; i++ {
		v := b.Topo.Vertex(topo.VertexID(i))
		v.Point[0] += dx
	}
}

func TestAABBOverlap(t *testing.T) {
	a := AABB{Min: geomath.NewPoint3(0, 0, 0), Max: geomath.NewPoint3(10, 10, 10)}
	b := AABB{Min: geomath.NewPoint3(5, 5, 5), Max: geomath.NewPoint3(15, 15, 15)}
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	c := AABB{Min: geomath.NewPoint3(20, 20, 20), Max: geomath.NewPoint3(30, 30, 30)}
	assert.False(t, a.Overlaps(c))
}

func TestAABBTouchingCountsAsOverlap(t *testing.T) {
	a := AABB{Min: geomath.NewPoint3(0, 0, 0), Max: geomath.NewPoint3(10, 10, 10)}
	b := AABB{Min: geomath.NewPoint3(10, 0, 0), Max: geomath.NewPoint3(20, 10, 10)}
	assert.True(t, a.Overlaps(b))
}

func TestSolidAABBOfCubeMatchesCorners(t *testing.T) {
	cube := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	box := SolidAABB(cube)
	assert.InDelta(t, 0.0, box.Min[0], 1e-9)
	assert.InDelta(t, 10.0, box.Max[0], 1e-9)
}

func TestFindCandidatePairsNonOverlappingCubesHaveNone(t *testing.T) {
	a := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	b := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	translateVertices(b, 100)
	pairs := FindCandidatePairs(a, b)
	assert.Empty(t, pairs)
}

func TestFindCandidatePairsOverlappingCubesHaveSome(t *testing.T) {
	a := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	b := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	translateVertices(b, 5)
	pairs := FindCandidatePairs(a, b)
	assert.NotEmpty(t, pairs)
}
