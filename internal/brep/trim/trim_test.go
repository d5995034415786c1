package trim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/primitives"
	"github.com/solidkit/brep/internal/brep/ssi"
	"github.com/solidkit/brep/internal/brep/topo"
)

func TestPointInPolygonSquare(t *testing.T) {
	square := []geomath.Point2{
		geomath.NewPoint2(0, 0),
		geomath.NewPoint2(10, 0),
		geomath.NewPoint2(10, 10),
		geomath.NewPoint2(0, 10),
	}
	assert.True(t, pointInPolygon(geomath.NewPoint2(5, 5), square))
	assert.False(t, pointInPolygon(geomath.NewPoint2(15, 5), square))
	assert.False(t, pointInPolygon(geomath.NewPoint2(-1, 5), square))
}

func findBottomFace(t *testing.T, b interface {
	Faces() []topo.FaceID
	Surface(topo.FaceID) geom.Surface
}) topo.FaceID {
	for _, f := range b.Faces() {
		if plane, ok := b.Surface(f).(geom.Plane); ok {
			if plane.Origin[2] > -1e-9 && plane.Origin[2] < 1e-9 {
				return f
			}
		}
	}
	t.Fatal("no bottom face found")
	return -1
}

func TestPointInFaceCube(t *testing.T) {
	b := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	fid := findBottomFace(t, b)
	require.True(t, PointInFace(b, fid, geomath.NewPoint3(5, 5, 0)))
	assert.False(t, PointInFace(b, fid, geomath.NewPoint3(15, 5, 0)))
}

func TestTrimEmptyCurveYieldsNoSegments(t *testing.T) {
	b := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	fid := b.Faces()[0]
	segs := TrimCurveToFace(ssi.Empty(), fid, b, 100)
	assert.Empty(t, segs)
}
