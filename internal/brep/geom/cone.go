package geom

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geomath"
)

// Cone is parameterized as (theta, v): the radius at axial offset v is
// RadiusAtOrigin + v*tan(HalfAngle). HalfAngle is signed: positive widens
// moving along +Axis.
type Cone struct {
	Origin         geomath.Point3
	Axis           geomath.UnitVector3
	XDir           geomath.UnitVector3
	RadiusAtOrigin float64
	HalfAngle      float64
}

func NewCone(origin geomath.Point3, axis, xdir geomath.UnitVector3, radiusAtOrigin, halfAngle float64) Cone {
	return Cone{Origin: origin, Axis: axis, XDir: xdir, RadiusAtOrigin: radiusAtOrigin, HalfAngle: halfAngle}
}

func (c Cone) yDir() geomath.UnitVector3 {
	return geomath.MustUnitVector3(c.Axis.Vec().Cross(c.XDir.Vec()))
}

func (c Cone) radiusAt(v float64) float64 {
	return c.RadiusAtOrigin + v*math.Tan(c.HalfAngle)
}

func (c Cone) Kind() SurfaceKind { return KindCone }

func (c Cone) Evaluate(theta, v float64) geomath.Point3 {
	r := c.radiusAt(v)
	radial := c.XDir.Vec().Mul(r * math.Cos(theta)).Add(c.yDir().Vec().Mul(r * math.Sin(theta)))
	return c.Origin.Add(radial).Add(c.Axis.Vec().Mul(v))
}

func (c Cone) Du(theta, v float64) geomath.Vector3 {
	r := c.radiusAt(v)
	return c.XDir.Vec().Mul(-r * math.Sin(theta)).Add(c.yDir().Vec().Mul(r * math.Cos(theta)))
}

func (c Cone) Dv(theta, v float64) geomath.Vector3 {
	slope := math.Tan(c.HalfAngle)
	radial := c.XDir.Vec().Mul(slope * math.Cos(theta)).Add(c.yDir().Vec().Mul(slope * math.Sin(theta)))
	return radial.Add(c.Axis.Vec())
}

func (c Cone) Normal(theta, v float64) geomath.UnitVector3 {
	du := c.Du(theta, v)
	dv := c.Dv(theta, v)
	n := du.Cross(dv)
	if n.Len() < 1e-15 {
		// Apex degeneracy: fall back to the radial direction.
		return geomath.MustUnitVector3(c.XDir.Vec().Mul(math.Cos(theta)).Add(c.yDir().Vec().Mul(math.Sin(theta))))
	}
	return geomath.MustUnitVector3(n)
}

func (c Cone) Project(p geomath.Point3) (float64, float64) {
	rel := p.Sub(c.Origin)
	v := rel.Dot(c.Axis.Vec())
	x := rel.Dot(c.XDir.Vec())
	y := rel.Dot(c.yDir().Vec())
	theta := math.Atan2(y, x)
	if theta < 0 {
		theta += twoPi
	}
	return theta, v
}

func (c Cone) Transform(t geomath.Transform) Surface {
	// ApplyDirection of a unit vector returns a vector whose length is the
	// transform's uniform scale factor, regardless of which direction is
	// chosen, since only rigid + uniform-scale transforms reach here.
	// HalfAngle is an angle between two directions and is scale-invariant.
	scale := t.ApplyDirection(c.XDir.Vec()).Len()
	return Cone{
		Origin:         t.Apply(c.Origin),
		Axis:           geomath.MustUnitVector3(t.ApplyDirection(c.Axis.Vec())),
		XDir:           geomath.MustUnitVector3(t.ApplyDirection(c.XDir.Vec())),
		RadiusAtOrigin: c.RadiusAtOrigin * scale,
		HalfAngle:      c.HalfAngle,
	}
}

func (c Cone) Domain() Domain {
	return Domain{UMin: 0, UMax: twoPi, VMin: negInf, VMax: posInf, UPeriodic: true}
}
