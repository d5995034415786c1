package ssi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
)

func axes() (geomath.UnitVector3, geomath.UnitVector3, geomath.UnitVector3) {
	return geomath.MustUnitVector3(geomath.NewPoint3(1, 0, 0)),
		geomath.MustUnitVector3(geomath.NewPoint3(0, 1, 0)),
		geomath.MustUnitVector3(geomath.NewPoint3(0, 0, 1))
}

func TestPlanePlaneParallelIsEmpty(t *testing.T) {
	x, y, z := axes()
	a := geom.NewPlane(geomath.NewPoint3(0, 0, 0), x, z)
	b := geom.NewPlane(geomath.NewPoint3(0, 0, 5), x, z)
	_ = y
	curve := Intersect(a, b, geomath.DefaultTolerance())
	assert.Equal(t, KindEmpty, curve.Kind)
}

func TestPlanePlaneXYWithXZIntersectAlongX(t *testing.T) {
	x, y, z := axes()
	xy := geom.NewPlane(geomath.NewPoint3(0, 0, 0), x, z)
	xz := geom.NewPlane(geomath.NewPoint3(0, 0, 0), x, y.Negate())
	curve := Intersect(xy, xz, geomath.DefaultTolerance())
	require.Equal(t, KindLine, curve.Kind)
	assert.InDelta(t, 0.0, curve.Line1.Origin[1], 1e-9)
	assert.InDelta(t, 0.0, curve.Line1.Origin[2], 1e-9)
	assert.InDelta(t, 1.0, math.Abs(curve.Line1.Direction.Normalize()[0]), 1e-9)
}

func TestPlaneCylinderPerpendicularIsCircle(t *testing.T) {
	x, y, z := axes()
	_ = y
	cyl := geom.NewCylinder(geomath.NewPoint3(0, 0, 0), z, x, 3)
	pl := geom.NewPlane(geomath.NewPoint3(0, 0, 5), x, z)
	curve := Intersect(pl, cyl, geomath.DefaultTolerance())
	require.Equal(t, KindCircle, curve.Kind)
	assert.InDelta(t, 5.0, curve.Circle.Center[2], 1e-9)
	assert.InDelta(t, 3.0, curve.Circle.Radius, 1e-9)
}

func TestPlaneCylinderParallelWithinRadiusIsTwoLines(t *testing.T) {
	x, y, z := axes()
	_ = y
	cyl := geom.NewCylinder(geomath.NewPoint3(0, 0, 0), z, x, 5)
	pl := geom.NewPlane(geomath.NewPoint3(2, 0, 0), z, x)
	curve := Intersect(pl, cyl, geomath.DefaultTolerance())
	require.Equal(t, KindTwoLines, curve.Kind)
}

func TestPlaneCylinderParallelBeyondRadiusIsEmpty(t *testing.T) {
	x, y, z := axes()
	_ = y
	cyl := geom.NewCylinder(geomath.NewPoint3(0, 0, 0), z, x, 2)
	pl := geom.NewPlane(geomath.NewPoint3(10, 0, 0), z, x)
	curve := Intersect(pl, cyl, geomath.DefaultTolerance())
	assert.Equal(t, KindEmpty, curve.Kind)
}

func TestPlaneSphereCircle(t *testing.T) {
	x, y, z := axes()
	_ = y
	sph := geom.NewSphere(geomath.NewPoint3(0, 0, 0), 5, z, x)
	pl := geom.NewPlane(geomath.NewPoint3(0, 0, 3), x, z)
	curve := Intersect(pl, sph, geomath.DefaultTolerance())
	require.Equal(t, KindCircle, curve.Kind)
	assert.InDelta(t, 4.0, curve.Circle.Radius, 1e-9)
}

func TestCylinderCylinderParallelOffsetTwoLines(t *testing.T) {
	x, y, z := axes()
	_ = y
	a := geom.NewCylinder(geomath.NewPoint3(0, 0, 0), z, x, 5)
	b := geom.NewCylinder(geomath.NewPoint3(3, 0, 0), z, x, 5)
	curve := Intersect(a, b, geomath.DefaultTolerance())
	assert.Equal(t, KindTwoLines, curve.Kind)
}
