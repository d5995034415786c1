package trim

import (
	"math"

	"github.com/solidkit/brep/internal/brep/broadphase"
	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/ssi"
	"github.com/solidkit/brep/internal/brep/topo"
)

// Segment is a parameter interval on an intersection curve that lies
// inside a face.
type Segment struct {
	TStart, TEnd float64
}

func loopUV(b *model.BRepSolid, s geom.Surface, l topo.LoopID) []geomath.Point2 {
	verts := b.Topo.LoopVertices(l)
	out := make([]geomath.Point2, len(verts))
	for i, v := range verts {
		u, vv := projectToUV(s, b.Topo.Vertex(v).Point)
		out[i] = geomath.NewPoint2(u, vv)
	}
	return out
}

// PointInFace reports whether point3D, projected onto face f's surface,
// lies inside the face's outer trim loop and outside every inner (hole)
// loop.
func PointInFace(b *model.BRepSolid, f topo.FaceID, point3D geomath.Point3) bool {
	face := b.Topo.Face(f)
	surf := b.Surface(f)
	domain := surf.Domain()

	outer := loopUV(b, surf, face.OuterLoop)
	u, v := projectToUV(surf, point3D)
	test := geomath.NewPoint2(u, v)

	outerW, testW := unwrapPeriodic(outer, test, domain.UPeriodic, domain.VPeriodic)
	if !pointInPolygon(testW, outerW) {
		return false
	}

	for _, inner := range face.InnerLoops {
		innerUV := loopUV(b, surf, inner)
		innerW, testW2 := unwrapPeriodic(innerUV, test, domain.UPeriodic, domain.VPeriodic)
		if pointInPolygon(testW2, innerW) {
			return false
		}
	}
	return true
}

// TrimCurveToFace samples curve at nSamples points across a safe parameter
// range (ray-AABB slab intersection for a Line, full 2*pi for a Circle),
// classifies each with PointInFace, and binary-searches each
// inside/outside transition to linear tolerance. A Sampled polyline is
// instead classified at its own points (t = i/(n-1) over 0..1), without
// nSamples and without bisection.
func TrimCurveToFace(curve ssi.Curve, f topo.FaceID, b *model.BRepSolid, nSamples int) []Segment {
	switch curve.Kind {
	case ssi.KindEmpty:
		return nil
	case ssi.KindPoint:
		if PointInFace(b, f, curve.Point) {
			return []Segment{{TStart: 0, TEnd: 0}}
		}
		return nil
	case ssi.KindLine:
		return trimLine(curve.Line1, f, b, nSamples)
	case ssi.KindTwoLines:
		out := trimLine(curve.Line1, f, b, nSamples)
		return append(out, trimLine(curve.Line2, f, b, nSamples)...)
	case ssi.KindCircle:
		eval := func(t float64) geomath.Point3 { return curve.Circle.Evaluate(t) }
		return sampleAndTrim(eval, 0, 2*math.Pi, nSamples, f, b)
	case ssi.KindSampled:
		return trimSampled(curve.Samples, f, b)
	default:
		return nil
	}
}

func trimLine(line ssi.Line, f topo.FaceID, b *model.BRepSolid, nSamples int) []Segment {
	dirLen := line.Direction.Len()
	if dirLen < 1e-15 {
		return nil
	}
	aabb := broadphase.FaceAABB(b, f)

	tMin, tMax := math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		d := line.Direction[axis]
		if math.Abs(d) > 1e-15 {
			t1 := (aabb.Min[axis] - line.Origin[axis]) / d
			t2 := (aabb.Max[axis] - line.Origin[axis]) / d
			enter, exit := t1, t2
			if enter > exit {
				enter, exit = exit, enter
			}
			if enter > tMin {
				tMin = enter
			}
			if exit < tMax {
				tMax = exit
			}
		} else if line.Origin[axis] < aabb.Min[axis] || line.Origin[axis] > aabb.Max[axis] {
			return nil
		}
	}
	if tMin > tMax {
		return nil
	}
	padding := math.Max(tMax-tMin, 1.0) * 0.1
	tMin -= padding
	tMax += padding

	eval := func(t float64) geomath.Point3 { return line.Evaluate(t) }
	return sampleAndTrim(eval, tMin, tMax, nSamples, f, b)
}

func trimSampled(points []geomath.Point3, f topo.FaceID, b *model.BRepSolid) []Segment {
	n := len(points)
	if n == 0 {
		return nil
	}
	var segments []Segment
	inSeg := false
	segStart := 0.0
	denom := float64(n - 1)
	if denom < 1 {
		denom = 1
	}
	for i, p := range points {
		t := float64(i) / denom
		inside := PointInFace(b, f, p)
		if inside && !inSeg {
			segStart = t
			inSeg = true
		} else if !inside && inSeg {
			segments = append(segments, Segment{TStart: segStart, TEnd: t})
			inSeg = false
		}
	}
	if inSeg {
		segments = append(segments, Segment{TStart: segStart, TEnd: 1.0})
	}
	return segments
}

func refineCrossing(eval func(float64) geomath.Point3, tInside, tOutside float64, f topo.FaceID, b *model.BRepSolid, iterations int) float64 {
	tIn, tOut := tInside, tOutside
	for i := 0; i < iterations; i++ {
		tMid := 0.5 * (tIn + tOut)
		if PointInFace(b, f, eval(tMid)) {
			tIn = tMid
		} else {
			tOut = tMid
		}
	}
	return tIn
}

func sampleAndTrim(eval func(float64) geomath.Point3, tMin, tMax float64, nSamples int, f topo.FaceID, b *model.BRepSolid) []Segment {
	n := nSamples
	if n < 2 {
		n = 2
	}

	type sample struct {
		t      float64
		inside bool
	}
	samples := make([]sample, 0, n+1)
	for i := 0; i <= n; i++ {
		t := tMin + (tMax-tMin)*float64(i)/float64(n)
		samples = append(samples, sample{t: t, inside: PointInFace(b, f, eval(t))})
	}

	var segments []Segment
	inSeg := false
	segStart := tMin

	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		switch {
		case cur.inside && !prev.inside:
			segStart = refineCrossing(eval, cur.t, prev.t, f, b, 20)
			inSeg = true
		case !cur.inside && prev.inside:
			segEnd := refineCrossing(eval, prev.t, cur.t, f, b, 20)
			if inSeg {
				segments = append(segments, Segment{TStart: segStart, TEnd: segEnd})
				inSeg = false
			}
		}
	}

	if inSeg {
		last := samples[len(samples)-1]
		if last.inside {
			segments = append(segments, Segment{TStart: segStart, TEnd: last.t})
		}
	}

	if len(segments) > 0 {
		return segments
	}

	allInside := true
	anyInside := false
	for _, s := range samples {
		if s.inside {
			anyInside = true
		} else {
			allInside = false
		}
	}
	if anyInside && allInside {
		return []Segment{{TStart: tMin, TEnd: tMax}}
	}
	return segments
}
