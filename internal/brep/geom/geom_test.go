package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidkit/brep/internal/brep/geomath"
)

func axes() (geomath.UnitVector3, geomath.UnitVector3) {
	z := geomath.MustUnitVector3(geomath.NewPoint3(0, 0, 1))
	x := geomath.MustUnitVector3(geomath.NewPoint3(1, 0, 0))
	return z, x
}

func TestPlaneEvaluateAndProjectRoundTrip(t *testing.T) {
	axis, x := axes()
	p := NewPlane(geomath.NewPoint3(1, 2, 3), x, axis)

	pt := p.Evaluate(4, 5)
	u, v := p.Project(pt)
	assert.InDelta(t, 4.0, u, 1e-9)
	assert.InDelta(t, 5.0, v, 1e-9)
}

func TestCylinderProjectRoundTrip(t *testing.T) {
	axis, x := axes()
	c := NewCylinder(geomath.NewPoint3(0, 0, 0), axis, x, 2.0)

	pt := c.Evaluate(1.2, 3.4)
	theta, h := c.Project(pt)
	assert.InDelta(t, 1.2, theta, 1e-9)
	assert.InDelta(t, 3.4, h, 1e-9)
}

func TestCylinderNormalIsUnitAndRadial(t *testing.T) {
	axis, x := axes()
	c := NewCylinder(geomath.NewPoint3(0, 0, 0), axis, x, 2.0)
	n := c.Normal(0.7, 10.0)
	assert.InDelta(t, 1.0, n.Vec().Len(), 1e-9)
	assert.InDelta(t, 0.0, n.Vec().Dot(axis.Vec()), 1e-9)
}

func TestSphereProjectRoundTrip(t *testing.T) {
	axis, x := axes()
	s := NewSphere(geomath.NewPoint3(0, 0, 0), 3.0, axis, x)

	pt := s.Evaluate(0.8, 0.3)
	lon, lat := s.Project(pt)
	assert.InDelta(t, 0.8, lon, 1e-9)
	assert.InDelta(t, 0.3, lat, 1e-9)
}

func TestConeApexDegeneracyFallsBackToRadialNormal(t *testing.T) {
	axis, x := axes()
	c := NewCone(geomath.NewPoint3(0, 0, 0), axis, x, 0.0, math.Pi/4)
	n := c.Normal(0.5, 0.0)
	assert.InDelta(t, 1.0, n.Vec().Len(), 1e-9)
}

func TestConeProjectRoundTrip(t *testing.T) {
	axis, x := axes()
	c := NewCone(geomath.NewPoint3(0, 0, 1), axis, x, 1.0, math.Pi/6)

	pt := c.Evaluate(2.1, 4.0)
	theta, v := c.Project(pt)
	assert.InDelta(t, 2.1, theta, 1e-9)
	assert.InDelta(t, 4.0, v, 1e-9)
}

func TestTorusProjectRoundTrip(t *testing.T) {
	axis, x := axes()
	tr := NewTorus(geomath.NewPoint3(0, 0, 0), axis, x, 5.0, 1.5)

	pt := tr.Evaluate(1.0, 2.0)
	theta, phi := tr.Project(pt)
	assert.InDelta(t, 1.0, theta, 1e-9)
	assert.InDelta(t, 2.0, phi, 1e-9)
}

func TestTorusNormalUnitLength(t *testing.T) {
	axis, x := axes()
	tr := NewTorus(geomath.NewPoint3(0, 0, 0), axis, x, 5.0, 1.5)
	n := tr.Normal(0.3, 2.8)
	assert.InDelta(t, 1.0, n.Vec().Len(), 1e-9)
}

func TestBilinearEvaluateAtCorners(t *testing.T) {
	p00 := geomath.NewPoint3(0, 0, 0)
	p10 := geomath.NewPoint3(1, 0, 0)
	p01 := geomath.NewPoint3(0, 1, 0)
	p11 := geomath.NewPoint3(1, 1, 1)
	b := NewBilinear(p00, p10, p01, p11)

	assert.Equal(t, p00, b.Evaluate(0, 0))
	assert.Equal(t, p10, b.Evaluate(1, 0))
	assert.Equal(t, p01, b.Evaluate(0, 1))
	assert.Equal(t, p11, b.Evaluate(1, 1))
}

func TestBilinearProjectFindsKnownParameter(t *testing.T) {
	p00 := geomath.NewPoint3(0, 0, 0)
	p10 := geomath.NewPoint3(2, 0, 0.3)
	p01 := geomath.NewPoint3(0, 2, -0.2)
	p11 := geomath.NewPoint3(2, 2, 0.5)
	b := NewBilinear(p00, p10, p01, p11)

	target := b.Evaluate(0.3, 0.7)
	u, v := b.Project(target)
	got := b.Evaluate(u, v)
	assert.InDelta(t, 0.0, got.Sub(target).Len(), 1e-6)
}

func TestLine3EvaluateAndTangent(t *testing.T) {
	dir := geomath.MustUnitVector3(geomath.NewPoint3(1, 0, 0))
	l := NewLine3(geomath.NewPoint3(0, 0, 0), dir, 0, 10)

	p := l.Evaluate(3)
	assert.InDelta(t, 3.0, p[0], 1e-12)
	assert.Equal(t, dir.Vec(), l.Tangent(3))
	assert.False(t, l.Periodic())
}

func TestCircle3EvaluateIsOnCircle(t *testing.T) {
	axis, x := axes()
	c := NewCircle3(geomath.NewPoint3(0, 0, 0), axis, x, 4.0)

	p := c.Evaluate(1.1)
	require.InDelta(t, 4.0, p.Sub(c.Center).Len(), 1e-9)
	assert.True(t, c.Periodic())
	assert.InDelta(t, 2*math.Pi, c.TMax(), 1e-12)
}

func TestSampledEvaluateInterpolatesLinearly(t *testing.T) {
	pts := []geomath.Point3{
		geomath.NewPoint3(0, 0, 0),
		geomath.NewPoint3(1, 0, 0),
		geomath.NewPoint3(1, 1, 0),
	}
	s := NewSampled(pts)

	mid := s.Evaluate(0.25)
	assert.InDelta(t, 0.5, mid[0], 1e-12)
	assert.InDelta(t, 0.0, mid[1], 1e-12)

	end := s.Evaluate(1.0)
	assert.Equal(t, pts[2], end)
}

func TestStoreAddAndRetrieve(t *testing.T) {
	store := NewStore()
	axis, x := axes()
	id := store.AddSurface(NewPlane(geomath.NewPoint3(0, 0, 0), x, axis))
	assert.Equal(t, SurfaceID(0), id)
	assert.Equal(t, KindPlane, store.Surface(id).Kind())

	cid := store.AddCurve(NewLine3(geomath.NewPoint3(0, 0, 0), x, 0, 1))
	assert.Equal(t, CurveID(0), cid)
	assert.Equal(t, KindLine3, store.Curve(cid).Kind())

	clone := store.Clone()
	assert.Equal(t, 1, clone.NumSurfaces())
	assert.Equal(t, 1, clone.NumCurves())
}

func TestCylinderTransformScalesRadius(t *testing.T) {
	axis, x := axes()
	c := NewCylinder(geomath.NewPoint3(0, 0, 0), axis, x, 2.0)

	scaled := c.Transform(geomath.NewUniformScale(3.0)).(Cylinder)
	assert.InDelta(t, 6.0, scaled.Radius, 1e-9)

	// A point on the scaled surface must sit radius*3 from the axis.
	pt := scaled.Evaluate(0.7, 1.1)
	axialOffset := pt.Sub(scaled.Origin).Dot(scaled.Axis.Vec())
	radial := pt.Sub(scaled.Origin.Add(scaled.Axis.Vec().Mul(axialOffset)))
	assert.InDelta(t, 6.0, radial.Len(), 1e-9)
}

func TestSphereTransformScalesRadius(t *testing.T) {
	axis, x := axes()
	s := NewSphere(geomath.NewPoint3(0, 0, 0), 4.0, axis, x)

	scaled := s.Transform(geomath.NewUniformScale(2.5)).(Sphere)
	assert.InDelta(t, 10.0, scaled.Radius, 1e-9)
}

func TestConeTransformScalesRadiusNotHalfAngle(t *testing.T) {
	axis, x := axes()
	c := NewCone(geomath.NewPoint3(0, 0, 0), axis, x, 3.0, 0.4)

	scaled := c.Transform(geomath.NewUniformScale(2.0)).(Cone)
	assert.InDelta(t, 6.0, scaled.RadiusAtOrigin, 1e-9)
	assert.InDelta(t, 0.4, scaled.HalfAngle, 1e-12)
}

func TestTorusTransformScalesBothRadii(t *testing.T) {
	axis, x := axes()
	tr := NewTorus(geomath.NewPoint3(0, 0, 0), axis, x, 5.0, 1.0)

	scaled := tr.Transform(geomath.NewUniformScale(2.0)).(Torus)
	assert.InDelta(t, 10.0, scaled.MajorRadius, 1e-9)
	assert.InDelta(t, 2.0, scaled.MinorRadius, 1e-9)
}
