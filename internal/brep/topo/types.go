package topo

import "github.com/solidkit/brep/internal/brep/geomath"

// VertexID, HalfEdgeID, EdgeID, LoopID, FaceID, ShellID and SolidID are
// newtype indices into their owning arena. -1 is the "no such record"
// sentinel (None).
type (
	VertexID   int
	HalfEdgeID int
	EdgeID     int
	LoopID     int
	FaceID     int
	ShellID    int
	SolidID    int
)

// None is the sentinel id meaning "absent" for every id type above.
const None = -1

// Vertex is a 3D point with stable identity; two vertices at the same
// location are still distinct records until sew deduplicates them.
type Vertex struct {
	Point geomath.Point3
}

// HalfEdge is a directed use of an edge by one adjacent face.
type HalfEdge struct {
	Origin VertexID
	Next   HalfEdgeID
	Prev   HalfEdgeID
	Twin   HalfEdgeID
	Loop   LoopID
}

// Edge pairs the two half-edges that traverse it in opposite directions.
type Edge struct {
	HalfEdges [2]HalfEdgeID
}

// Loop is a closed circular sequence of half-edges, referenced by its first
// member; the rest follow via HalfEdge.Next.
type Loop struct {
	First HalfEdgeID
}

// Orientation records whether a face's surface normal equals its outward
// normal (Forward) or the negative of it (Reversed).
type Orientation int

const (
	Forward Orientation = iota
	Reversed
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Forward {
		return Reversed
	}
	return Forward
}

// Face is one outer loop, zero or more inner (hole) loops, and an index
// into the geometry store's surface arena. SurfaceIdx is an opaque
// integer owned by the geom package; topo does not interpret it.
type Face struct {
	OuterLoop   LoopID
	InnerLoops  []LoopID
	SurfaceIdx  int
	Orientation Orientation
}

// ShellType distinguishes a solid's outer boundary from the boundaries of
// its internal voids.
type ShellType int

const (
	Outer ShellType = iota
	Inner
)

// Shell is a set of faces bounding one connected region.
type Shell struct {
	Faces []FaceID
	Type  ShellType
}

// Solid is an outer shell plus zero or more inner shells (voids).
type Solid struct {
	OuterShell  ShellID
	InnerShells []ShellID
}
