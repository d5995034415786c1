package geom

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geomath"
)

// CurveKind enumerates the 3D curve variants an SSI result or a trimmed
// edge can carry.
type CurveKind int

const (
	KindLine3 CurveKind = iota
	KindCircle3
	KindSampled
)

func (k CurveKind) String() string {
	switch k {
	case KindLine3:
		return "Line3"
	case KindCircle3:
		return "Circle3"
	case KindSampled:
		return "Sampled"
	default:
		return "Unknown"
	}
}

// Curve3 is a 3D parametric curve. TMin() and TMax() give the closed
// interval [TMin, TMax] (or [0, 2*pi) for a full circle) that Evaluate
// accepts.
type Curve3 interface {
	Kind() CurveKind
	Evaluate(t float64) geomath.Point3
	Tangent(t float64) geomath.Vector3
	TMin() float64
	TMax() float64
	Periodic() bool
}

// Line3 is an infinite-direction line clipped to [TMin, TMax] along Dir
// from Origin.
type Line3 struct {
	Origin  geomath.Point3
	Dir     geomath.UnitVector3
	TMinVal float64
	TMaxVal float64
}

func NewLine3(origin geomath.Point3, dir geomath.UnitVector3, tMin, tMax float64) Line3 {
	return Line3{Origin: origin, Dir: dir, TMinVal: tMin, TMaxVal: tMax}
}

func (l Line3) Kind() CurveKind             { return KindLine3 }
func (l Line3) Evaluate(t float64) geomath.Point3 { return l.Origin.Add(l.Dir.Vec().Mul(t)) }
func (l Line3) Tangent(t float64) geomath.Vector3 { return l.Dir.Vec() }
func (l Line3) TMin() float64               { return l.TMinVal }
func (l Line3) TMax() float64               { return l.TMaxVal }
func (l Line3) Periodic() bool              { return false }

// Circle3 is a circle of Radius centered at Center, in the plane spanned by
// XDir and YDir = Axis x XDir, parameterized by angle t in [0, 2*pi).
type Circle3 struct {
	Center geomath.Point3
	Axis   geomath.UnitVector3
	XDir   geomath.UnitVector3
	Radius float64
}

func NewCircle3(center geomath.Point3, axis, xdir geomath.UnitVector3, radius float64) Circle3 {
	return Circle3{Center: center, Axis: axis, XDir: xdir, Radius: radius}
}

func (c Circle3) yDir() geomath.UnitVector3 {
	return geomath.MustUnitVector3(c.Axis.Vec().Cross(c.XDir.Vec()))
}

func (c Circle3) Kind() CurveKind { return KindCircle3 }

func (c Circle3) Evaluate(t float64) geomath.Point3 {
	radial := c.XDir.Vec().Mul(c.Radius * math.Cos(t)).Add(c.yDir().Vec().Mul(c.Radius * math.Sin(t)))
	return c.Center.Add(radial)
}

func (c Circle3) Tangent(t float64) geomath.Vector3 {
	return c.XDir.Vec().Mul(-c.Radius * math.Sin(t)).Add(c.yDir().Vec().Mul(c.Radius * math.Cos(t)))
}

func (c Circle3) TMin() float64  { return 0 }
func (c Circle3) TMax() float64  { return twoPi }
func (c Circle3) Periodic() bool { return true }

// Sampled is a polyline approximation of a curve with no closed analytic
// form (e.g. a general surface-surface intersection branch). Parameter t
// runs [0, 1] across the whole polyline; Evaluate interpolates linearly
// within the bracketing segment and Tangent is the constant direction of
// that segment.
type Sampled struct {
	Points []geomath.Point3
}

func NewSampled(points []geomath.Point3) Sampled {
	return Sampled{Points: points}
}

func (s Sampled) Kind() CurveKind { return KindSampled }

func (s Sampled) segmentFor(t float64) (int, float64) {
	n := len(s.Points) - 1
	if n <= 0 {
		return 0, 0
	}
	if t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return n - 1, 1
	}
	scaled := t * float64(n)
	idx := int(math.Floor(scaled))
	if idx >= n {
		idx = n - 1
	}
	local := scaled - float64(idx)
	return idx, local
}

func (s Sampled) Evaluate(t float64) geomath.Point3 {
	if len(s.Points) == 1 {
		return s.Points[0]
	}
	idx, local := s.segmentFor(t)
	a, b := s.Points[idx], s.Points[idx+1]
	return a.Mul(1 - local).Add(b.Mul(local))
}

func (s Sampled) Tangent(t float64) geomath.Vector3 {
	if len(s.Points) < 2 {
		return geomath.Vector3{}
	}
	idx, _ := s.segmentFor(t)
	return s.Points[idx+1].Sub(s.Points[idx])
}

func (s Sampled) TMin() float64  { return 0 }
func (s Sampled) TMax() float64  { return 1 }
func (s Sampled) Periodic() bool { return false }
