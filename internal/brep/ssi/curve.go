// Package ssi computes the intersection curve of two analytic surfaces,
// dispatching on the closed set of surface-kind pairs the kernel
// understands. The returned curve is purely geometric (defined on the
// full infinite surfaces); clipping it to a face's trim loops is the
// trim package's job.
package ssi

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geomath"
)

// Kind enumerates the shapes an intersection curve can take.
type Kind int

const (
	KindEmpty Kind = iota
	KindPoint
	KindLine
	KindTwoLines
	KindCircle
	KindSampled
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindPoint:
		return "Point"
	case KindLine:
		return "Line"
	case KindTwoLines:
		return "TwoLines"
	case KindCircle:
		return "Circle"
	case KindSampled:
		return "Sampled"
	default:
		return "Unknown"
	}
}

// Line is an infinite line given by an origin and a (not necessarily unit)
// direction.
type Line struct {
	Origin    geomath.Point3
	Direction geomath.Vector3
}

// Evaluate returns the point at parameter t along the line.
func (l Line) Evaluate(t float64) geomath.Point3 {
	return l.Origin.Add(l.Direction.Mul(t))
}

// Circle is a full circle embedded in 3-space.
type Circle struct {
	Center geomath.Point3
	Normal geomath.UnitVector3
	Radius float64
	XDir   geomath.UnitVector3
	YDir   geomath.UnitVector3
}

// Evaluate returns the point at angle t (radians) around the circle.
func (c Circle) Evaluate(t float64) geomath.Point3 {
	sin, cos := math.Sincos(t)
	return c.Center.Add(c.XDir.Vec().Mul(c.Radius * cos)).Add(c.YDir.Vec().Mul(c.Radius * sin))
}

// Curve is a tagged union over the intersection-curve shapes SSI can
// produce. Exactly the fields matching Kind are meaningful.
type Curve struct {
	Kind    Kind
	Point   geomath.Point3
	Line1   Line
	Line2   Line
	Circle  Circle
	Samples []geomath.Point3
}

// Empty is the curve value for a non-intersecting pair.
func Empty() Curve { return Curve{Kind: KindEmpty} }
