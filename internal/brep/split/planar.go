package split

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/topo"
	"github.com/solidkit/brep/internal/brep/trim"
)

// chordSplitLoop applies each chord's segments to f in turn, splitting
// whichever currently-live sub-face contains the segment's midpoint; it
// works over any surface kind whose outer loop is an explicit polygon
// (straight 3D edges between distinct vertices), which planar faces are
// natively and cylindrical/disk faces become after expandCylindricalFace
// / expandDiskFace replace their degenerate rim edges with tessellated
// polylines.
func chordSplitLoop(b *model.BRepSolid, shell topo.ShellID, f topo.FaceID, chords []chord) ([]topo.FaceID, error) {
	current := []topo.FaceID{f}
	for _, c := range chords {
		for _, seg := range c.segs {
			entry := c.eval(seg.TStart)
			exit := c.eval(seg.TEnd)
			if entry.Sub(exit).Len() < 1e-9 {
				continue
			}
			mid := entry.Add(exit).Mul(0.5)
			idx := -1
			for i, cf := range current {
				if trim.PointInFace(b, cf, mid) {
					idx = i
					break
				}
			}
			if idx < 0 {
				continue
			}
			target := current[idx]
			replacements, err := splitFaceByChord(b, shell, target, entry, exit)
			if err != nil {
				return nil, err
			}
			next := make([]topo.FaceID, 0, len(current)+len(replacements)-1)
			next = append(next, current[:idx]...)
			next = append(next, replacements...)
			next = append(next, current[idx+1:]...)
			current = next
		}
	}
	return current, nil
}

// edgeInsertion records a new (or snapped) vertex splitting boundary edge
// index i of the original loop, at parameter t along it.
type edgeInsertion struct {
	afterEdge int
	t         float64
	vertex    topo.VertexID
}

// splitFaceByChord cuts a single face's outer loop into two sub-faces
// joined by a new chord edge running from entry to exit, both of which
// must lie on (or very near) the face's boundary. Inner loops are
// reattached to whichever side's 2D polygon contains their centroid.
func splitFaceByChord(b *model.BRepSolid, shell topo.ShellID, f topo.FaceID, entry, exit geomath.Point3) ([]topo.FaceID, error) {
	face := b.Topo.Face(f)
	surf := b.Surface(f)
	tol := b.Tolerance.Linear

	outerIDs := b.Topo.LoopVertices(face.OuterLoop)
	n := len(outerIDs)
	if n < 3 {
		return []topo.FaceID{f}, nil
	}
	pts := make([]geomath.Point3, n)
	for i, v := range outerIDs {
		pts[i] = b.Topo.Vertex(v).Point
	}

	entryVID, entryIns, entryNew := locateOnLoop(b, pts, outerIDs, entry, tol)
	exitVID, exitIns, exitNew := locateOnLoop(b, pts, outerIDs, exit, tol)
	if entryVID == exitVID {
		return []topo.FaceID{f}, nil
	}

	var insertions []edgeInsertion
	if entryNew {
		insertions = append(insertions, entryIns)
	}
	if exitNew {
		insertions = append(insertions, exitIns)
	}

	augmented := buildAugmentedLoop(outerIDs, insertions)

	ei := indexOf(augmented, entryVID)
	xi := indexOf(augmented, exitVID)
	if ei < 0 || xi < 0 {
		return nil, splitFailed(f, "entry/exit vertex not found on augmented loop")
	}

	path1 := cyclicSlice(augmented, ei, xi)
	path2 := cyclicSlice(augmented, xi, ei)
	if len(path1) < 3 || len(path2) < 3 {
		// The chord coincides with an existing boundary edge; nothing to
		// split.
		return []topo.FaceID{f}, nil
	}

	face1 := buildLoopFace(b, path1, face.SurfaceIdx, face.Orientation)
	face2 := buildLoopFace(b, path2, face.SurfaceIdx, face.Orientation)

	chord1 := lastHalfEdgeOf(b, face1)
	chord2 := lastHalfEdgeOf(b, face2)
	b.Topo.LinkTwin(chord1, chord2)

	assignHoles(b, face, surf, face1, path1, face2, path2)

	b.Topo.AddFacesToShell(shell, face1, face2)
	b.Topo.ReleaseFace(f)
	return []topo.FaceID{face1, face2}, nil
}

// locateOnLoop finds where p sits relative to loop vertices pts/ids: if it
// is within tol of an existing vertex it is snapped to that vertex's id,
// otherwise it is placed on the closest boundary edge as a new vertex.
func locateOnLoop(b *model.BRepSolid, pts []geomath.Point3, ids []topo.VertexID, p geomath.Point3, tol float64) (topo.VertexID, edgeInsertion, bool) {
	n := len(pts)
	for i, v := range pts {
		if p.Sub(v).Len() <= tol {
			return ids[i], edgeInsertion{}, false
		}
	}

	bestEdge := 0
	bestDist := math.MaxFloat64
	bestT := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, c := pts[i], pts[j]
		d := c.Sub(a)
		lenSq := d.Dot(d)
		t := 0.0
		if lenSq > 1e-18 {
			t = p.Sub(a).Dot(d) / lenSq
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		cand := a.Add(d.Mul(t))
		dist := cand.Sub(p).Len()
		if dist < bestDist {
			bestDist = dist
			bestEdge = i
			bestT = t
		}
	}
	newVID := b.Topo.AddVertex(p)
	return newVID, edgeInsertion{afterEdge: bestEdge, t: bestT, vertex: newVID}, true
}

func buildAugmentedLoop(ids []topo.VertexID, insertions []edgeInsertion) []topo.VertexID {
	byEdge := make(map[int][]edgeInsertion)
	for _, ins := range insertions {
		byEdge[ins.afterEdge] = append(byEdge[ins.afterEdge], ins)
	}
	var out []topo.VertexID
	for i, v := range ids {
		out = append(out, v)
		group := byEdge[i]
		for a := 0; a < len(group); a++ {
			for bIdx := a + 1; bIdx < len(group); bIdx++ {
				if group[bIdx].t < group[a].t {
					group[a], group[bIdx] = group[bIdx], group[a]
				}
			}
		}
		for _, ins := range group {
			out = append(out, ins.vertex)
		}
	}
	return out
}

func indexOf(ids []topo.VertexID, v topo.VertexID) int {
	for i, id := range ids {
		if id == v {
			return i
		}
	}
	return -1
}

// cyclicSlice returns ids[from..to] inclusive, wrapping around if to < from.
func cyclicSlice(ids []topo.VertexID, from, to int) []topo.VertexID {
	n := len(ids)
	var out []topo.VertexID
	i := from
	for {
		out = append(out, ids[i])
		if i == to {
			break
		}
		i = (i + 1) % n
	}
	return out
}

// buildLoopFace allocates a fresh face over the cyclic vertex sequence
// verts (its last edge closes back to its first vertex), reusing surfIdx
// and orientation from the face it was split from.
func buildLoopFace(b *model.BRepSolid, verts []topo.VertexID, surfIdx int, orientation topo.Orientation) topo.FaceID {
	hes := make([]topo.HalfEdgeID, len(verts))
	for i, v := range verts {
		hes[i] = b.Topo.AddHalfEdge(v, topo.LoopID(topo.None))
	}
	for i := range hes {
		b.Topo.LinkNext(hes[i], hes[(i+1)%len(hes)])
	}
	loop := b.Topo.AddLoop(hes[0])
	return b.Topo.AddFace(loop, surfIdx, orientation)
}

func lastHalfEdgeOf(b *model.BRepSolid, f topo.FaceID) topo.HalfEdgeID {
	hes := b.Topo.LoopHalfEdges(b.Topo.Face(f).OuterLoop)
	return hes[len(hes)-1]
}

// assignHoles reattaches each inner loop of the original face to whichever
// new sub-face's 2D polygon contains the hole's centroid. The projection
// uses the surface's own Project (no periodic seam unwrap), which is exact
// for planar faces and adequate for the rare case of a hole surviving a
// cylindrical split.
func assignHoles(b *model.BRepSolid, orig *topo.Face, surf geom.Surface, face1 topo.FaceID, path1 []topo.VertexID, face2 topo.FaceID, path2 []topo.VertexID) {
	if len(orig.InnerLoops) == 0 {
		return
	}
	poly1 := projectLoop(b, surf, path1)
	poly2 := projectLoop(b, surf, path2)
	for _, il := range orig.InnerLoops {
		ids := b.Topo.LoopVertices(il)
		if len(ids) == 0 {
			continue
		}
		var sum geomath.Point3
		for _, v := range ids {
			sum = sum.Add(b.Topo.Vertex(v).Point)
		}
		centroid := sum.Mul(1.0 / float64(len(ids)))
		u, v := surf.Project(centroid)
		pt := geomath.NewPoint2(u, v)
		if trim.PointInPolygon(pt, poly1) {
			f1 := b.Topo.Face(face1)
			f1.InnerLoops = append(f1.InnerLoops, il)
		} else if trim.PointInPolygon(pt, poly2) {
			f2 := b.Topo.Face(face2)
			f2.InnerLoops = append(f2.InnerLoops, il)
		}
	}
}

func projectLoop(b *model.BRepSolid, surf geom.Surface, verts []topo.VertexID) []geomath.Point2 {
	out := make([]geomath.Point2, len(verts))
	for i, v := range verts {
		u, vv := surf.Project(b.Topo.Vertex(v).Point)
		out[i] = geomath.NewPoint2(u, vv)
	}
	return out
}
