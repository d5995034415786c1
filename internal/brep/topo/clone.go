package topo

// Clone performs a deep copy of the topology so a boolean pipeline run can
// mutate a working copy while leaving the caller's input solids read-only,
// per the coordinator's "A' <- clone(A); B' <- clone(B)" contract.
func (t *Topology) Clone() *Topology {
	out := &Topology{
		vertices:  t.vertices.clone(),
		halfEdges: t.halfEdges.clone(),
		edges:     t.edges.clone(),
		loops:     t.loops.clone(),
		faces:     t.faces.clone(),
		shells:    t.shells.clone(),
		solids:    t.solids.clone(),
	}
	for i := range out.faces.items {
		src := t.faces.items[i].InnerLoops
		cp := make([]LoopID, len(src))
		copy(cp, src)
		out.faces.items[i].InnerLoops = cp
	}
	for i := range out.shells.items {
		src := t.shells.items[i].Faces
		cp := make([]FaceID, len(src))
		copy(cp, src)
		out.shells.items[i].Faces = cp
	}
	for i := range out.solids.items {
		src := t.solids.items[i].InnerShells
		cp := make([]ShellID, len(src))
		copy(cp, src)
		out.solids.items[i].InnerShells = cp
	}
	return out
}
