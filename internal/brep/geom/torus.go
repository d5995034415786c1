package geom

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geomath"
)

// Torus is parameterized as (theta, phi): theta sweeps the major (tube
// center) circle, phi sweeps the minor (tube) circle. Both are periodic on
// [0, 2*pi).
type Torus struct {
	Center      geomath.Point3
	Axis        geomath.UnitVector3
	XDir        geomath.UnitVector3
	MajorRadius float64
	MinorRadius float64
}

func NewTorus(center geomath.Point3, axis, xdir geomath.UnitVector3, majorR, minorR float64) Torus {
	return Torus{Center: center, Axis: axis, XDir: xdir, MajorRadius: majorR, MinorRadius: minorR}
}

func (tr Torus) yDir() geomath.UnitVector3 {
	return geomath.MustUnitVector3(tr.Axis.Vec().Cross(tr.XDir.Vec()))
}

func (tr Torus) Kind() SurfaceKind { return KindTorus }

func (tr Torus) radialDir(theta float64) geomath.Vector3 {
	return tr.XDir.Vec().Mul(math.Cos(theta)).Add(tr.yDir().Vec().Mul(math.Sin(theta)))
}

func (tr Torus) Evaluate(theta, phi float64) geomath.Point3 {
	radial := tr.radialDir(theta)
	tubeRadius := tr.MajorRadius + tr.MinorRadius*math.Cos(phi)
	p := tr.Center.Add(radial.Mul(tubeRadius)).Add(tr.Axis.Vec().Mul(tr.MinorRadius * math.Sin(phi)))
	return p
}

func (tr Torus) Du(theta, phi float64) geomath.Vector3 {
	tangent := tr.yDir().Vec().Mul(math.Cos(theta)).Sub(tr.XDir.Vec().Mul(math.Sin(theta)))
	tubeRadius := tr.MajorRadius + tr.MinorRadius*math.Cos(phi)
	return tangent.Mul(tubeRadius)
}

func (tr Torus) Dv(theta, phi float64) geomath.Vector3 {
	radial := tr.radialDir(theta)
	return radial.Mul(-tr.MinorRadius * math.Sin(phi)).Add(tr.Axis.Vec().Mul(tr.MinorRadius * math.Cos(phi)))
}

func (tr Torus) Normal(theta, phi float64) geomath.UnitVector3 {
	radial := tr.radialDir(theta)
	n := radial.Mul(math.Cos(phi)).Add(tr.Axis.Vec().Mul(math.Sin(phi)))
	return geomath.MustUnitVector3(n)
}

func (tr Torus) Project(p geomath.Point3) (float64, float64) {
	rel := p.Sub(tr.Center)
	axial := rel.Dot(tr.Axis.Vec())
	x := rel.Dot(tr.XDir.Vec())
	y := rel.Dot(tr.yDir().Vec())
	theta := math.Atan2(y, x)
	if theta < 0 {
		theta += twoPi
	}
	radialDist := math.Hypot(x, y)
	phi := math.Atan2(axial, radialDist-tr.MajorRadius)
	if phi < 0 {
		phi += twoPi
	}
	return theta, phi
}

func (tr Torus) Transform(t geomath.Transform) Surface {
	// ApplyDirection of a unit vector returns a vector whose length is the
	// transform's uniform scale factor, regardless of which direction is
	// chosen, since only rigid + uniform-scale transforms reach here.
	scale := t.ApplyDirection(tr.XDir.Vec()).Len()
	return Torus{
		Center:      t.Apply(tr.Center),
		Axis:        geomath.MustUnitVector3(t.ApplyDirection(tr.Axis.Vec())),
		XDir:        geomath.MustUnitVector3(t.ApplyDirection(tr.XDir.Vec())),
		MajorRadius: tr.MajorRadius * scale,
		MinorRadius: tr.MinorRadius * scale,
	}
}

func (tr Torus) Domain() Domain {
	return Domain{UMin: 0, UMax: twoPi, VMin: 0, VMax: twoPi, UPeriodic: true, VPeriodic: true}
}
