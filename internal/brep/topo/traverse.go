package topo

// LoopHalfEdges returns the half-edges of loop l in traversal order,
// starting at its First half-edge and following Next until it returns to
// the start. It is bounded to the number of half-edges ever allocated so a
// corrupt Next chain cannot spin forever (invariant: a loop closes within a
// bounded number of steps equal to its size).
func (t *Topology) LoopHalfEdges(l LoopID) []HalfEdgeID {
	first := t.Loop(l).First
	if first == HalfEdgeID(None) {
		return nil
	}
	limit := t.halfEdges.len() + 1
	out := make([]HalfEdgeID, 0, 8)
	cur := first
	for i := 0; i < limit; i++ {
		out = append(out, cur)
		cur = t.HalfEdge(cur).Next
		if cur == first {
			return out
		}
		if cur == HalfEdgeID(None) {
			return out
		}
	}
	return out
}

// LoopVertices returns the origin vertex of every half-edge in loop l, in
// traversal order.
func (t *Topology) LoopVertices(l LoopID) []VertexID {
	hes := t.LoopHalfEdges(l)
	out := make([]VertexID, len(hes))
	for i, he := range hes {
		out[i] = t.HalfEdge(he).Origin
	}
	return out
}

// LoopSize returns the number of half-edges in loop l.
func (t *Topology) LoopSize(l LoopID) int {
	return len(t.LoopHalfEdges(l))
}

// FaceLoops returns the face's outer loop followed by its inner loops.
func (t *Topology) FaceLoops(f FaceID) []LoopID {
	face := t.Face(f)
	out := make([]LoopID, 0, 1+len(face.InnerLoops))
	out = append(out, face.OuterLoop)
	out = append(out, face.InnerLoops...)
	return out
}

// FaceBoundaryVertices returns the vertex ids of every half-edge
// origin across all of the face's loops (outer and inner), used by the
// AABB and classification passes.
func (t *Topology) FaceBoundaryVertices(f FaceID) []VertexID {
	var out []VertexID
	for _, l := range t.FaceLoops(f) {
		out = append(out, t.LoopVertices(l)...)
	}
	return out
}

// ShellFaces returns the live faces of shell s.
func (t *Topology) ShellFaces(s ShellID) []FaceID {
	var out []FaceID
	for _, f := range t.Shell(s).Faces {
		if !t.FaceReleased(f) {
			out = append(out, f)
		}
	}
	return out
}

// SolidShells returns a solid's outer shell followed by its inner shells.
func (t *Topology) SolidShells(s SolidID) []ShellID {
	solid := t.Solid(s)
	out := make([]ShellID, 0, 1+len(solid.InnerShells))
	out = append(out, solid.OuterShell)
	out = append(out, solid.InnerShells...)
	return out
}

// SolidFaces returns every live face across every shell of solid s.
func (t *Topology) SolidFaces(s SolidID) []FaceID {
	var out []FaceID
	for _, sh := range t.SolidShells(s) {
		out = append(out, t.ShellFaces(sh)...)
	}
	return out
}
