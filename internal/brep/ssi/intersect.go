package ssi

import (
	"math"
	"sort"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
)

// Intersect dispatches on (a.Kind(), b.Kind()) and returns the geometric
// intersection curve of the two full (untrimmed) surfaces. Pairs without a
// closed-form case fall back to a numeric marching search that returns a
// Sampled curve, or Empty if no crossing is found within the searched
// window.
func Intersect(a, b geom.Surface, tol geomath.Tolerance) Curve {
	switch av := a.(type) {
	case geom.Plane:
		switch bv := b.(type) {
		case geom.Plane:
			return planePlane(av, bv, tol)
		case geom.Cylinder:
			return planeCylinder(av, bv, tol)
		case geom.Sphere:
			return planeSphere(av, bv, tol)
		}
	case geom.Cylinder:
		switch bv := b.(type) {
		case geom.Plane:
			return planeCylinder(bv, av, tol)
		case geom.Cylinder:
			return cylinderCylinder(av, bv, tol)
		}
	case geom.Sphere:
		if bv, ok := b.(geom.Plane); ok {
			return planeSphere(bv, av, tol)
		}
	}
	return genericSampled(a, b, tol)
}

func planePlane(a, b geom.Plane, tol geomath.Tolerance) Curve {
	n1 := a.Normal(0, 0).Vec()
	n2 := b.Normal(0, 0).Vec()
	dir := n1.Cross(n2)
	if dir.Len() < tol.Angular*1e3 {
		// Parallel (or anti-parallel) planes: per the kernel's contract
		// this is always Empty, even when coincident — a coincident pair
		// has no well-defined single intersection curve.
		return Empty()
	}

	d1 := n1.Dot(a.Origin)
	d2 := n2.Dot(b.Origin)
	denom := dir.Dot(dir)
	p0 := n2.Cross(dir).Mul(d1).Add(dir.Cross(n1).Mul(d2)).Mul(1.0 / denom)

	return Curve{Kind: KindLine, Line1: Line{Origin: p0, Direction: dir.Normalize()}}
}

// planeCylinder handles both orderings; pl is always the plane.
func planeCylinder(pl geom.Plane, cyl geom.Cylinder, tol geomath.Tolerance) Curve {
	n := pl.Normal(0, 0).Vec()
	axis := cyl.Axis.Vec()
	cosAngle := math.Abs(n.Dot(axis))

	switch {
	case cosAngle > 1-1e-7:
		// Plane normal parallel to axis: the plane is a cross-section of
		// the cylinder, so the intersection is a full circle.
		d := n.Dot(pl.Origin.Sub(cyl.Origin))
		nDotAxis := n.Dot(axis)
		t := d / nDotAxis
		center := cyl.Origin.Add(axis.Mul(t))
		return Curve{Kind: KindCircle, Circle: Circle{
			Center: center,
			Normal: geomath.MustUnitVector3(axis),
			Radius: cyl.Radius,
			XDir:   cyl.XDir,
			YDir:   geomath.MustUnitVector3(axis.Cross(cyl.XDir.Vec())),
		}}
	case cosAngle < 1e-7:
		// Plane normal perpendicular to axis: the plane is parallel to the
		// cylinder's axis, so it meets the cylinder (if at all) in one or
		// two lines parallel to the axis.
		dc := n.Dot(cyl.Origin.Sub(pl.Origin))
		r := cyl.Radius
		if math.Abs(dc) > r+tol.Linear {
			return Empty()
		}
		foot := cyl.Origin.Sub(n.Mul(dc))
		if math.Abs(math.Abs(dc)-r) <= tol.Linear {
			return Curve{Kind: KindLine, Line1: Line{Origin: foot, Direction: axis}}
		}
		w := geomath.MustUnitVector3(axis.Cross(n)).Vec()
		s := math.Sqrt(r*r - dc*dc)
		return Curve{
			Kind:  KindTwoLines,
			Line1: Line{Origin: foot.Add(w.Mul(s)), Direction: axis},
			Line2: Line{Origin: foot.Sub(w.Mul(s)), Direction: axis},
		}
	default:
		// Oblique: the cross-section is an ellipse with no simple closed
		// analytic form worth special-casing here; march it numerically.
		return genericSampled(pl, cyl, tol)
	}
}

func planeSphere(pl geom.Plane, sph geom.Sphere, tol geomath.Tolerance) Curve {
	n := pl.Normal(0, 0).Vec()
	d := n.Dot(sph.Center.Sub(pl.Origin))
	r := sph.Radius
	if math.Abs(d) > r+tol.Linear {
		return Empty()
	}
	center := sph.Center.Sub(n.Mul(d))
	if math.Abs(math.Abs(d)-r) <= tol.Linear {
		return Curve{Kind: KindPoint, Point: center}
	}
	radius := math.Sqrt(r*r - d*d)
	xdir := pl.XDir
	ydir := geomath.MustUnitVector3(n.Cross(xdir.Vec()))
	return Curve{Kind: KindCircle, Circle: Circle{
		Center: center,
		Normal: geomath.MustUnitVector3(n),
		Radius: radius,
		XDir:   xdir,
		YDir:   ydir,
	}}
}

// cylinderCylinder only handles the parallel-axis case precisely, per the
// kernel's stated scope; skew or intersecting axes fall back to the
// numeric marcher.
func cylinderCylinder(a, b geom.Cylinder, tol geomath.Tolerance) Curve {
	axisA := a.Axis.Vec()
	axisB := b.Axis.Vec()
	if axisA.Cross(axisB).Len() > tol.Angular*1e3 {
		return genericSampled(a, b, tol)
	}

	// Project b's origin onto a's cross-sectional plane to get the
	// perpendicular offset between the two axis lines.
	rel := b.Origin.Sub(a.Origin)
	alongAxis := axisA.Mul(rel.Dot(axisA))
	perp := rel.Sub(alongAxis)
	dist := perp.Len()

	ra, rb := a.Radius, b.Radius
	if dist > ra+rb+tol.Linear || dist < math.Abs(ra-rb)-tol.Linear {
		return Empty()
	}
	if dist < tol.Linear {
		// Coincident axes: either identical cylinders (no single curve) or
		// one strictly inside the other (no intersection at all).
		return Empty()
	}

	// The two axis lines, projected into a's cross-section, form two
	// circles of radius ra and rb separated by dist; find their 2D
	// intersection points via the standard two-circle formula, then lift
	// each back into a line parallel to the (shared) axis.
	w := perp.Mul(1.0 / dist)
	aDist := (dist*dist + ra*ra - rb*rb) / (2 * dist)
	h2 := ra*ra - aDist*aDist
	mid := a.Origin.Add(w.Mul(aDist))
	if h2 < -tol.Linear {
		return Empty()
	}
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	v := geomath.MustUnitVector3(axisA.Cross(w)).Vec()
	p1 := mid.Add(v.Mul(h))
	p2 := mid.Sub(v.Mul(h))
	if h <= tol.Linear {
		return Curve{Kind: KindLine, Line1: Line{Origin: p1, Direction: axisA}}
	}
	return Curve{
		Kind:  KindTwoLines,
		Line1: Line{Origin: p1, Direction: axisA},
		Line2: Line{Origin: p2, Direction: axisA},
	}
}

// genericSampled marches a's parameter domain on a coarse grid, keeping
// every sample whose closest point on b is within a loose multiple of the
// linear tolerance, then chains the surviving points into a polyline by
// nearest neighbor. It is the fallback for surface pairs (cone, torus,
// bilinear, or oblique cylinder/plane) with no closed-form case above.
func genericSampled(a, b geom.Surface, tol geomath.Tolerance) Curve {
	const steps = 96
	thresh := tol.Linear * 5e4

	da := a.Domain()
	uMin, uMax := boundedRange(da.UMin, da.UMax)
	vMin, vMax := boundedRange(da.VMin, da.VMax)

	var pts []geomath.Point3
	for i := 0; i <= steps; i++ {
		u := uMin + (uMax-uMin)*float64(i)/steps
		for j := 0; j <= steps; j++ {
			v := vMin + (vMax-vMin)*float64(j)/steps
			p := a.Evaluate(u, v)
			u2, v2 := b.Project(p)
			q := b.Evaluate(u2, v2)
			if p.Sub(q).Len() < thresh {
				pts = append(pts, p)
			}
		}
	}
	if len(pts) < 2 {
		return Empty()
	}
	return Curve{Kind: KindSampled, Samples: chainNearestNeighbor(pts)}
}

func boundedRange(lo, hi float64) (float64, float64) {
	const cap = 1e3
	if math.IsInf(lo, -1) {
		lo = -cap
	}
	if math.IsInf(hi, 1) {
		hi = cap
	}
	return lo, hi
}

// chainNearestNeighbor greedily orders an unordered point cloud into a
// polyline by repeatedly appending the nearest remaining point; adequate
// for the dense, locally-1D point sets genericSampled produces.
func chainNearestNeighbor(pts []geomath.Point3) []geomath.Point3 {
	remaining := make([]geomath.Point3, len(pts))
	copy(remaining, pts)
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i][0] < remaining[j][0]
	})

	ordered := make([]geomath.Point3, 0, len(remaining))
	ordered = append(ordered, remaining[0])
	remaining = remaining[1:]

	for len(remaining) > 0 {
		last := ordered[len(ordered)-1]
		best := 0
		bestDist := math.Inf(1)
		for i, p := range remaining {
			d := p.Sub(last).Len()
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
		ordered = append(ordered, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return ordered
}
