package broadphase

import (
	"github.com/dhconnelly/rtreego"

	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/topo"
)

// facebox adapts a face's AABB to rtreego.Spatial so it can be indexed.
type facebox struct {
	face topo.FaceID
	rect rtreego.Rect
}

func (fb *facebox) Bounds() rtreego.Rect { return fb.rect }

func toRect(box AABB) rtreego.Rect {
	const minSize = 1e-9
	lengths := make([]float64, 3)
	point := make(rtreego.Point, 3)
	for i := 0; i < 3; i++ {
		point[i] = box.Min[i]
		l := box.Max[i] - box.Min[i]
		if l < minSize {
			l = minSize
		}
		lengths[i] = l
	}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		// A degenerate box (zero-length dimension rejected by rtreego)
		// falls back to a minSize cube around the point.
		for i := range lengths {
			lengths[i] = minSize
		}
		rect, _ = rtreego.NewRect(point, lengths)
	}
	return rect
}

// FacePair is one candidate (face_a, face_b) whose world-space AABBs
// overlap and so must be handed to SSI.
type FacePair struct {
	A, B topo.FaceID
}

// FindCandidatePairs short-circuits when the two solids' overall AABBs are
// disjoint, then indexes B's face boxes in an R-tree and queries it once
// per face of A, returning every overlapping pair.
func FindCandidatePairs(a, b *model.BRepSolid) []FacePair {
	aabbA := SolidAABB(a)
	aabbB := SolidAABB(b)
	if !aabbA.Overlaps(aabbB) {
		return nil
	}

	bFaces := b.Faces()
	tree := rtreego.NewTree(3, 4, 16)
	boxesB := make(map[topo.FaceID]AABB, len(bFaces))
	for _, fb := range bFaces {
		box := FaceAABB(b, fb)
		boxesB[fb] = box
		tree.Insert(&facebox{face: fb, rect: toRect(box)})
	}

	var pairs []FacePair
	for _, fa := range a.Faces() {
		boxA := FaceAABB(a, fa)
		hits := tree.SearchIntersect(toRect(boxA))
		for _, h := range hits {
			fb := h.(*facebox).face
			if boxA.Overlaps(boxesB[fb]) {
				pairs = append(pairs, FacePair{A: fa, B: fb})
			}
		}
	}
	return pairs
}
