package topo

import "github.com/solidkit/brep/internal/brep/geomath"

// Topology is the full arena set for one B-rep: vertices, half-edges,
// edges, loops, faces, shells and solids, each addressed by a stable id.
type Topology struct {
	vertices  arena[Vertex]
	halfEdges arena[HalfEdge]
	edges     arena[Edge]
	loops     arena[Loop]
	faces     arena[Face]
	shells    arena[Shell]
	solids    arena[Solid]
}

// NewTopology returns an empty topology ready for a primitive builder to
// populate.
func NewTopology() *Topology {
	return &Topology{
		vertices:  newArena[Vertex](),
		halfEdges: newArena[HalfEdge](),
		edges:     newArena[Edge](),
		loops:     newArena[Loop](),
		faces:     newArena[Face](),
		shells:    newArena[Shell](),
		solids:    newArena[Solid](),
	}
}

// AddVertex allocates a new vertex at p.
func (t *Topology) AddVertex(p geomath.Point3) VertexID {
	return VertexID(t.vertices.add(Vertex{Point: p}))
}

// Vertex returns a pointer to the vertex record for in-place mutation.
func (t *Topology) Vertex(id VertexID) *Vertex { return t.vertices.get(int(id)) }

// NumVertices returns the number of vertex records ever allocated.
func (t *Topology) NumVertices() int { return t.vertices.len() }

// AddHalfEdge allocates a half-edge with origin v, belonging to loop l.
// Next, Prev and Twin start at None and must be wired by the caller.
func (t *Topology) AddHalfEdge(v VertexID, l LoopID) HalfEdgeID {
	return HalfEdgeID(t.halfEdges.add(HalfEdge{Origin: v, Next: HalfEdgeID(None), Prev: HalfEdgeID(None), Twin: HalfEdgeID(None), Loop: l}))
}

// HalfEdge returns a pointer to the half-edge record.
func (t *Topology) HalfEdge(id HalfEdgeID) *HalfEdge { return t.halfEdges.get(int(id)) }

// NumHalfEdges returns the number of half-edge records ever allocated.
func (t *Topology) NumHalfEdges() int { return t.halfEdges.len() }

// LinkNext wires a.Next = b and b.Prev = a.
func (t *Topology) LinkNext(a, b HalfEdgeID) {
	t.HalfEdge(a).Next = b
	t.HalfEdge(b).Prev = a
}

// LinkTwin wires a and b as twins and records a new Edge pairing them.
func (t *Topology) LinkTwin(a, b HalfEdgeID) EdgeID {
	t.HalfEdge(a).Twin = b
	t.HalfEdge(b).Twin = a
	return EdgeID(t.edges.add(Edge{HalfEdges: [2]HalfEdgeID{a, b}}))
}

// Edge returns a pointer to the edge record.
func (t *Topology) Edge(id EdgeID) *Edge { return t.edges.get(int(id)) }

// AddLoop allocates a loop whose first half-edge is `first`. Callers must
// have already linked the half-edges into a closed Next chain.
func (t *Topology) AddLoop(first HalfEdgeID) LoopID {
	return LoopID(t.loops.add(Loop{First: first}))
}

// Loop returns a pointer to the loop record.
func (t *Topology) Loop(id LoopID) *Loop { return t.loops.get(int(id)) }

// AddFace allocates a face over outerLoop with no inner loops yet.
func (t *Topology) AddFace(outerLoop LoopID, surfaceIdx int, orientation Orientation) FaceID {
	return FaceID(t.faces.add(Face{OuterLoop: outerLoop, SurfaceIdx: surfaceIdx, Orientation: orientation}))
}

// Face returns a pointer to the face record.
func (t *Topology) Face(id FaceID) *Face { return t.faces.get(int(id)) }

// NumFaces returns the number of face records ever allocated.
func (t *Topology) NumFaces() int { return t.faces.len() }

// ReleaseFace marks a face as obsolete: ShellFaces and FaceIDs skip it from
// then on, while its record stays in the arena and its id stays in its
// shell's Faces slice.
func (t *Topology) ReleaseFace(id FaceID) { t.faces.release(int(id)) }

// FaceReleased reports whether id has been released.
func (t *Topology) FaceReleased(id FaceID) bool { return t.faces.isReleased(int(id)) }

// FaceIDs returns every live (non-released) face id, in allocation order.
func (t *Topology) FaceIDs() []FaceID {
	raw := t.faces.ids()
	out := make([]FaceID, len(raw))
	for i, v := range raw {
		out[i] = FaceID(v)
	}
	return out
}

// AddShell allocates a shell of the given type with the given faces.
func (t *Topology) AddShell(typ ShellType, faces []FaceID) ShellID {
	cp := make([]FaceID, len(faces))
	copy(cp, faces)
	return ShellID(t.shells.add(Shell{Faces: cp, Type: typ}))
}

// Shell returns a pointer to the shell record.
func (t *Topology) Shell(id ShellID) *Shell { return t.shells.get(int(id)) }

// AddFacesToShell appends faces to shell s's face list, so later
// SolidFaces/ShellFaces calls enumerate them; used when a split or sew
// pass replaces one face with several.
func (t *Topology) AddFacesToShell(s ShellID, faces ...FaceID) {
	sh := t.Shell(s)
	sh.Faces = append(sh.Faces, faces...)
}

// AddSolid allocates a solid with the given outer shell and inner shells.
func (t *Topology) AddSolid(outer ShellID, inner []ShellID) SolidID {
	cp := make([]ShellID, len(inner))
	copy(cp, inner)
	return SolidID(t.solids.add(Solid{OuterShell: outer, InnerShells: cp}))
}

// Solid returns a pointer to the solid record.
func (t *Topology) Solid(id SolidID) *Solid { return t.solids.get(int(id)) }
