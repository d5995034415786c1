package geom

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geomath"
)

// Sphere is parameterized as (longitude, latitude): longitude in
// [0, 2*pi) about PoleAxis, latitude in [-pi/2, pi/2] with +pi/2 at the
// pole.
type Sphere struct {
	Center   geomath.Point3
	Radius   float64
	PoleAxis geomath.UnitVector3
	XDir     geomath.UnitVector3
}

func NewSphere(center geomath.Point3, radius float64, poleAxis, xdir geomath.UnitVector3) Sphere {
	return Sphere{Center: center, Radius: radius, PoleAxis: poleAxis, XDir: xdir}
}

func (s Sphere) yDir() geomath.UnitVector3 {
	return geomath.MustUnitVector3(s.PoleAxis.Vec().Cross(s.XDir.Vec()))
}

func (s Sphere) Kind() SurfaceKind { return KindSphere }

func (s Sphere) Evaluate(lon, lat float64) geomath.Point3 {
	cosLat := math.Cos(lat)
	equatorial := s.XDir.Vec().Mul(cosLat * math.Cos(lon)).Add(s.yDir().Vec().Mul(cosLat * math.Sin(lon)))
	polar := s.PoleAxis.Vec().Mul(math.Sin(lat))
	return s.Center.Add(equatorial.Add(polar).Mul(s.Radius))
}

func (s Sphere) Du(lon, lat float64) geomath.Vector3 {
	cosLat := math.Cos(lat)
	return s.XDir.Vec().Mul(-cosLat * math.Sin(lon)).Add(s.yDir().Vec().Mul(cosLat * math.Cos(lon))).Mul(s.Radius)
}

func (s Sphere) Dv(lon, lat float64) geomath.Vector3 {
	equatorial := s.XDir.Vec().Mul(-math.Sin(lat) * math.Cos(lon)).Add(s.yDir().Vec().Mul(-math.Sin(lat) * math.Sin(lon)))
	polar := s.PoleAxis.Vec().Mul(math.Cos(lat))
	return equatorial.Add(polar).Mul(s.Radius)
}

func (s Sphere) Normal(lon, lat float64) geomath.UnitVector3 {
	p := s.Evaluate(lon, lat)
	return geomath.MustUnitVector3(p.Sub(s.Center))
}

func (s Sphere) Project(p geomath.Point3) (float64, float64) {
	rel := p.Sub(s.Center).Normalize()
	z := rel.Dot(s.PoleAxis.Vec())
	lat := math.Asin(clamp(z, -1, 1))
	x := rel.Dot(s.XDir.Vec())
	y := rel.Dot(s.yDir().Vec())
	lon := math.Atan2(y, x)
	if lon < 0 {
		lon += twoPi
	}
	return lon, lat
}

func (s Sphere) Transform(t geomath.Transform) Surface {
	// ApplyDirection of a unit vector returns a vector whose length is the
	// transform's uniform scale factor, regardless of which direction is
	// chosen, since only rigid + uniform-scale transforms reach here.
	scale := t.ApplyDirection(s.XDir.Vec()).Len()
	return Sphere{
		Center:   t.Apply(s.Center),
		Radius:   s.Radius * scale,
		PoleAxis: geomath.MustUnitVector3(t.ApplyDirection(s.PoleAxis.Vec())),
		XDir:     geomath.MustUnitVector3(t.ApplyDirection(s.XDir.Vec())),
	}
}

func (s Sphere) Domain() Domain {
	return Domain{UMin: 0, UMax: twoPi, VMin: -math.Pi / 2, VMax: math.Pi / 2, UPeriodic: true}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
