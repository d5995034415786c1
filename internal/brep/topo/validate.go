package topo

import "github.com/solidkit/brep/internal/brep/kernelerr"

// CheckShellManifold verifies invariant 5 from the topology contract: every
// half-edge of the shell has a twin, and that twin belongs to a face of the
// same shell. It returns kernelerr.ErrNonManifoldResult (wrapped with
// context) on the first violation found.
func (t *Topology) CheckShellManifold(s ShellID) error {
	faces := t.ShellFaces(s)
	faceSet := make(map[FaceID]bool, len(faces))
	for _, f := range faces {
		faceSet[f] = true
	}

	for _, f := range faces {
		for _, l := range t.FaceLoops(f) {
			for _, he := range t.LoopHalfEdges(l) {
				rec := t.HalfEdge(he)
				if rec.Twin == HalfEdgeID(None) {
					return kernelerr.NonManifold("half-edge %d has no twin", he)
				}
				twinLoop := t.HalfEdge(rec.Twin).Loop
				twinFace := t.loopOwnerFace(twinLoop, faceSet)
				if twinFace == FaceID(None) {
					return kernelerr.NonManifold("half-edge %d twin belongs to a face outside the shell", he)
				}
			}
		}
	}
	return nil
}

// loopOwnerFace returns the face in candidates whose outer or inner loop is
// l, or None if none of them own it.
func (t *Topology) loopOwnerFace(l LoopID, candidates map[FaceID]bool) FaceID {
	for f := range candidates {
		for _, fl := range t.FaceLoops(f) {
			if fl == l {
				return f
			}
		}
	}
	return FaceID(None)
}

// CheckEdgeDoubleCover verifies that the shell's edges are exactly
// double-covered: every edge has precisely two half-edges, and both belong
// to faces of the shell.
func (t *Topology) CheckEdgeDoubleCover(s ShellID) error {
	faces := t.ShellFaces(s)
	halfEdgeOwner := make(map[HalfEdgeID]FaceID)
	for _, f := range faces {
		for _, l := range t.FaceLoops(f) {
			for _, he := range t.LoopHalfEdges(l) {
				halfEdgeOwner[he] = f
			}
		}
	}
	for he, owner := range halfEdgeOwner {
		twin := t.HalfEdge(he).Twin
		if twin == HalfEdgeID(None) {
			return kernelerr.NonManifold("half-edge %d (face %d) has no twin", he, owner)
		}
		if _, ok := halfEdgeOwner[twin]; !ok {
			return kernelerr.NonManifold("half-edge %d (face %d) twin %d not covered by this shell", he, owner, twin)
		}
	}
	return nil
}

// LoopClosesWithinSize verifies invariant 2: following Next around l
// returns to the first half-edge within exactly l's size steps, and never
// visits a half-edge twice before closing.
func (t *Topology) LoopClosesWithinSize(l LoopID) bool {
	first := t.Loop(l).First
	if first == HalfEdgeID(None) {
		return false
	}
	seen := map[HalfEdgeID]bool{first: true}
	cur := t.HalfEdge(first).Next
	limit := t.halfEdges.len() + 1
	for i := 0; i < limit; i++ {
		if cur == first {
			return true
		}
		if cur == HalfEdgeID(None) || seen[cur] {
			return false
		}
		seen[cur] = true
		cur = t.HalfEdge(cur).Next
	}
	return false
}
