package geom

import "github.com/solidkit/brep/internal/brep/geomath"

// Plane is parameterized by (x, y) in its local right-handed frame:
// Evaluate(u,v) = Origin + u*XDir + v*YDir, with Normal = XDir x YDir.
type Plane struct {
	Origin geomath.Point3
	XDir   geomath.UnitVector3
	YDir   geomath.UnitVector3
}

// NewPlane builds a plane from an origin, a reference (x) direction and an
// axis (normal) direction; YDir is derived as axis x xdir so the frame
// stays right-handed.
func NewPlane(origin geomath.Point3, xdir, axis geomath.UnitVector3) Plane {
	y := geomath.MustUnitVector3(axis.Vec().Cross(xdir.Vec()))
	return Plane{Origin: origin, XDir: xdir, YDir: y}
}

func (p Plane) Kind() SurfaceKind { return KindPlane }

func (p Plane) Evaluate(u, v float64) geomath.Point3 {
	return p.Origin.Add(p.XDir.Vec().Mul(u)).Add(p.YDir.Vec().Mul(v))
}

func (p Plane) Du(u, v float64) geomath.Vector3 { return p.XDir.Vec() }
func (p Plane) Dv(u, v float64) geomath.Vector3 { return p.YDir.Vec() }

func (p Plane) Normal(u, v float64) geomath.UnitVector3 {
	return geomath.MustUnitVector3(p.XDir.Vec().Cross(p.YDir.Vec()))
}

func (p Plane) Project(pt geomath.Point3) (float64, float64) {
	rel := pt.Sub(p.Origin)
	return rel.Dot(p.XDir.Vec()), rel.Dot(p.YDir.Vec())
}

func (p Plane) Transform(t geomath.Transform) Surface {
	return Plane{
		Origin: t.Apply(p.Origin),
		XDir:   geomath.MustUnitVector3(t.ApplyDirection(p.XDir.Vec())),
		YDir:   geomath.MustUnitVector3(t.ApplyDirection(p.YDir.Vec())),
	}
}

func (p Plane) Domain() Domain {
	return Domain{UMin: negInf, UMax: posInf, VMin: negInf, VMax: posInf}
}
