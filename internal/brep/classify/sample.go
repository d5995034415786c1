package classify

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/topo"
)

const snapEps = 1e-9

func snap(v float64) float64 {
	if math.Abs(v) < snapEps {
		return 0
	}
	return v
}

func snapPoint(p geomath.Point3) geomath.Point3 {
	return geomath.NewPoint3(snap(p[0]), snap(p[1]), snap(p[2]))
}

// pointToSegmentDist2D is the distance from (px,py) to the segment
// (ax,ay)-(bx,by).
func pointToSegmentDist2D(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-20 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx, cy := ax+t*dx, ay+t*dy
	return math.Hypot(px-cx, py-cy)
}

// faceSamplePoint computes a 3D point on f's surface that is robustly
// interior to its outer loop and outside any holes, per surface-kind
// strategy.
func faceSamplePoint(b *model.BRepSolid, f topo.FaceID) geomath.Point3 {
	face := b.Topo.Face(f)
	outerIDs := b.Topo.LoopVertices(face.OuterLoop)
	verts := make([]geomath.Point3, len(outerIDs))
	for i, v := range outerIDs {
		verts[i] = b.Topo.Vertex(v).Point
	}
	if len(verts) == 0 {
		return geomath.NewPoint3(0, 0, 0)
	}

	surf := b.Surface(f)

	// A single seam vertex means a circular disk cap (cylinder/cone end):
	// the vertex sits on the rim, not the center, so use the plane's own
	// origin instead.
	if len(verts) == 1 {
		if pl, ok := surf.(geom.Plane); ok {
			return pl.Origin
		}
		return verts[0]
	}

	if len(face.InnerLoops) > 0 {
		if pl, ok := surf.(geom.Plane); ok && len(verts) >= 3 {
			if pt, ok := planarSampleAvoidingHoles(b, face, pl, verts); ok {
				return pt
			}
		}
		return edgeMidpointTowardCentroid(verts)
	}

	if pl, ok := surf.(geom.Plane); ok && len(verts) >= 3 {
		if pt, ok := planarSampleFarFromEdges(pl, verts); ok {
			return snapPoint(pt)
		}
	}

	centroid := centroid3(verts)
	centroid = snapPoint(centroid)

	switch s := surf.(type) {
	case geom.Plane:
		return centroid
	case geom.Cylinder:
		return cylindricalSample(b, f, s, verts, centroid)
	default:
		return centroid
	}
}

// centroid3 averages pts per axis with stat.Mean.
func centroid3(pts []geomath.Point3) geomath.Point3 {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p[0], p[1], p[2]
	}
	return geomath.NewPoint3(stat.Mean(xs, nil), stat.Mean(ys, nil), stat.Mean(zs, nil))
}

func planeBasis(pl geom.Plane) (u, v geomath.Vector3) {
	return pl.XDir.Vec(), pl.YDir.Vec()
}

func project2D(pl geom.Plane, p geomath.Point3) (float64, float64) {
	u, v := pl.Project(p)
	return u, v
}

// planarSampleFarFromEdges tries, for each boundary edge, the point 20% of
// the way from that edge's midpoint toward the polygon centroid, and keeps
// whichever candidate is farthest from every edge of the polygon.
func planarSampleFarFromEdges(pl geom.Plane, verts []geomath.Point3) (geomath.Point3, bool) {
	uv := make([][2]float64, len(verts))
	for i, p := range verts {
		u, v := project2D(pl, p)
		uv[i] = [2]float64{u, v}
	}
	n := len(uv)
	var cu, cv float64
	for _, p := range uv {
		cu += p[0]
		cv += p[1]
	}
	cu /= float64(n)
	cv /= float64(n)

	var best [2]float64
	bestDist := 0.0
	found := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		midU := uv[i][0] + 0.5*(uv[j][0]-uv[i][0])
		midV := uv[i][1] + 0.5*(uv[j][1]-uv[i][1])
		candU := midU + 0.2*(cu-midU)
		candV := midV + 0.2*(cv-midV)

		minDist := math.Inf(1)
		for k := 0; k < n; k++ {
			l := (k + 1) % n
			d := pointToSegmentDist2D(candU, candV, uv[k][0], uv[k][1], uv[l][0], uv[l][1])
			if d < minDist {
				minDist = d
			}
		}
		if minDist > bestDist {
			bestDist = minDist
			best = [2]float64{candU, candV}
			found = true
		}
	}
	if !found {
		return geomath.Point3{}, false
	}
	xdir, ydir := planeBasis(pl)
	p := pl.Origin.Add(xdir.Mul(best[0])).Add(ydir.Mul(best[1]))
	return p, true
}

// planarSampleAvoidingHoles mirrors planarSampleFarFromEdges for a face
// with holes: candidates at several fractions along each outer edge are
// shifted 20% of the way toward the outer polygon's centroid, and the one
// farthest from every outer and hole edge wins.
func planarSampleAvoidingHoles(b *model.BRepSolid, face *topo.Face, pl geom.Plane, verts []geomath.Point3) (geomath.Point3, bool) {
	n := len(verts)
	uv := make([][2]float64, n)
	var cu, cv float64
	for i, p := range verts {
		u, v := project2D(pl, p)
		uv[i] = [2]float64{u, v}
		cu += u
		cv += v
	}
	cu /= float64(n)
	cv /= float64(n)

	var holes [][][2]float64
	for _, il := range face.InnerLoops {
		ids := b.Topo.LoopVertices(il)
		if len(ids) == 0 {
			continue
		}
		loopUV := make([][2]float64, len(ids))
		for i, v := range ids {
			u, vv := project2D(pl, b.Topo.Vertex(v).Point)
			loopUV[i] = [2]float64{u, vv}
		}
		holes = append(holes, loopUV)
	}

	var best [2]float64
	bestDist := 0.0
	found := false
	fractions := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		for _, t := range fractions {
			edgeU := uv[i][0] + t*(uv[j][0]-uv[i][0])
			edgeV := uv[i][1] + t*(uv[j][1]-uv[i][1])
			candU := edgeU + 0.2*(cu-edgeU)
			candV := edgeV + 0.2*(cv-edgeV)

			minDist := math.Inf(1)
			for _, ring := range append([][][2]float64{uv}, holes...) {
				m := len(ring)
				for k := 0; k < m; k++ {
					l := (k + 1) % m
					d := pointToSegmentDist2D(candU, candV, ring[k][0], ring[k][1], ring[l][0], ring[l][1])
					if d < minDist {
						minDist = d
					}
				}
			}
			if minDist > bestDist {
				bestDist = minDist
				best = [2]float64{candU, candV}
				found = true
			}
		}
	}
	if !found {
		return geomath.Point3{}, false
	}
	xdir, ydir := planeBasis(pl)
	p := pl.Origin.Add(xdir.Mul(best[0])).Add(ydir.Mul(best[1]))
	return p, true
}

func edgeMidpointTowardCentroid(verts []geomath.Point3) geomath.Point3 {
	if len(verts) < 2 {
		return centroid3(verts)
	}
	edgeMid := verts[0].Add(verts[1]).Mul(0.5)
	centroid := centroid3(verts)
	dir := centroid.Sub(edgeMid)
	return edgeMid.Add(dir.Mul(0.1))
}

// cylindricalSample evaluates a point on the surface at the midpoint of
// the boundary vertices' theta range (handling wrap-around at the seam)
// and at the mean v, since the vertex centroid generally sits inside the
// cylinder rather than on its surface.
func cylindricalSample(b *model.BRepSolid, f topo.FaceID, cyl geom.Cylinder, verts []geomath.Point3, centroid geomath.Point3) geomath.Point3 {
	_ = f
	thetas := make([]float64, len(verts))
	for i, p := range verts {
		theta, _ := cyl.Project(p)
		thetas[i] = theta
	}
	sorted := append([]float64(nil), thetas...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	if len(sorted) < 2 {
		return centroid
	}
	uMin, uMax := sorted[0], sorted[len(sorted)-1]
	directSpan := uMax - uMin
	wrapSpan := 2*math.Pi - directSpan
	var uMid float64
	if wrapSpan < directSpan {
		mid := (uMax + uMin + 2*math.Pi) / 2
		if mid >= 2*math.Pi {
			mid -= 2 * math.Pi
		}
		uMid = mid
	} else {
		uMid = 0.5 * (uMin + uMax)
	}
	_, vMid := cyl.Project(centroid)
	return cyl.Evaluate(uMid, vMid)
}
