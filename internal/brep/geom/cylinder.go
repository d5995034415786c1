package geom

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geomath"
)

// Cylinder is parameterized as (theta, h): Evaluate(theta, h) = Origin +
// r*cos(theta)*XDir + r*sin(theta)*YDir + h*Axis, with YDir = Axis x XDir.
// theta is periodic on [0, 2*pi); h is unbounded.
type Cylinder struct {
	Origin geomath.Point3
	Axis   geomath.UnitVector3
	XDir   geomath.UnitVector3
	Radius float64
}

// NewCylinder builds a cylinder from its axis origin, axis direction, a
// reference direction orthogonal to the axis, and a radius.
func NewCylinder(origin geomath.Point3, axis, xdir geomath.UnitVector3, radius float64) Cylinder {
	return Cylinder{Origin: origin, Axis: axis, XDir: xdir, Radius: radius}
}

func (c Cylinder) yDir() geomath.UnitVector3 {
	return geomath.MustUnitVector3(c.Axis.Vec().Cross(c.XDir.Vec()))
}

func (c Cylinder) Kind() SurfaceKind { return KindCylinder }

func (c Cylinder) Evaluate(theta, h float64) geomath.Point3 {
	radial := c.XDir.Vec().Mul(c.Radius * math.Cos(theta)).Add(c.yDir().Vec().Mul(c.Radius * math.Sin(theta)))
	return c.Origin.Add(radial).Add(c.Axis.Vec().Mul(h))
}

func (c Cylinder) Du(theta, h float64) geomath.Vector3 {
	return c.XDir.Vec().Mul(-c.Radius * math.Sin(theta)).Add(c.yDir().Vec().Mul(c.Radius * math.Cos(theta)))
}

func (c Cylinder) Dv(theta, h float64) geomath.Vector3 { return c.Axis.Vec() }

func (c Cylinder) Normal(theta, h float64) geomath.UnitVector3 {
	radial := c.XDir.Vec().Mul(math.Cos(theta)).Add(c.yDir().Vec().Mul(math.Sin(theta)))
	return geomath.MustUnitVector3(radial)
}

// Project returns theta in [0, 2*pi) and h along the axis.
func (c Cylinder) Project(p geomath.Point3) (float64, float64) {
	rel := p.Sub(c.Origin)
	h := rel.Dot(c.Axis.Vec())
	x := rel.Dot(c.XDir.Vec())
	y := rel.Dot(c.yDir().Vec())
	theta := math.Atan2(y, x)
	if theta < 0 {
		theta += twoPi
	}
	return theta, h
}

func (c Cylinder) Transform(t geomath.Transform) Surface {
	// ApplyDirection of a unit vector returns a vector whose length is the
	// transform's uniform scale factor, regardless of which direction is
	// chosen, since only rigid + uniform-scale transforms reach here.
	scale := t.ApplyDirection(c.XDir.Vec()).Len()
	return Cylinder{
		Origin: t.Apply(c.Origin),
		Axis:   geomath.MustUnitVector3(t.ApplyDirection(c.Axis.Vec())),
		XDir:   geomath.MustUnitVector3(t.ApplyDirection(c.XDir.Vec())),
		Radius: c.Radius * scale,
	}
}

func (c Cylinder) Domain() Domain {
	return Domain{UMin: 0, UMax: twoPi, VMin: negInf, VMax: posInf, UPeriodic: true}
}
