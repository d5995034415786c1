// Package classify decides, for each face of a solid after splitting,
// whether it lies inside, outside, or on the boundary of another solid,
// and selects which classified faces survive a given boolean operation.
package classify

import (
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/tessellate"
	"github.com/solidkit/brep/internal/brep/topo"
)

// Classification is a face's relationship to another solid.
type Classification int

const (
	Outside Classification = iota
	Inside
	OnSame
	OnOpposite
)

func (c Classification) String() string {
	switch c {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case OnSame:
		return "OnSame"
	case OnOpposite:
		return "OnOpposite"
	default:
		return "Unknown"
	}
}

// FaceClass pairs a face id with its classification.
type FaceClass struct {
	Face  topo.FaceID
	Class Classification
}

const inwardOffset = 1e-4

// outwardNormal returns the face's outward normal, preferring the loop's
// own vertex winding (v1-v0)x(v2-v0) over the surface's analytic normal,
// since the latter does not reliably indicate "outward" without trusting
// Orientation exactly.
func outwardNormal(b *model.BRepSolid, f topo.FaceID) [3]float64 {
	face := b.Topo.Face(f)
	ids := b.Topo.LoopVertices(face.OuterLoop)
	if len(ids) >= 3 {
		p0 := b.Topo.Vertex(ids[0]).Point
		p1 := b.Topo.Vertex(ids[1]).Point
		p2 := b.Topo.Vertex(ids[2]).Point
		e1 := p1.Sub(p0)
		e2 := p2.Sub(p0)
		n := e1.Cross(e2)
		if n.Len() > 1e-15 {
			u := n.Normalize()
			return [3]float64{u[0], u[1], u[2]}
		}
	}
	surf := b.Surface(f)
	n := surf.Normal(0, 0).Vec()
	if face.Orientation == topo.Reversed {
		n = n.Mul(-1)
	}
	return [3]float64{n[0], n[1], n[2]}
}

// Face classifies a single face of b against the tessellated mesh of the
// other solid.
func Face(b *model.BRepSolid, f topo.FaceID, otherMesh *tessellate.Mesh) Classification {
	sample := faceSamplePoint(b, f)
	n := outwardNormal(b, f)

	inward := sample
	for i := 0; i < 3; i++ {
		inward[i] -= inwardOffset * n[i]
	}

	if pointInMesh(inward, otherMesh) {
		return Inside
	}
	return Outside
}

// AllFaces classifies every live face of b against other, tessellated at
// the given angular resolution.
func AllFaces(b, other *model.BRepSolid, segments int) []FaceClass {
	otherMesh := tessellate.Brep(other, segments)
	faces := b.Faces()
	out := make([]FaceClass, len(faces))
	for i, f := range faces {
		out[i] = FaceClass{Face: f, Class: Face(b, f, otherMesh)}
	}
	return out
}

// Op is the boolean operation being evaluated.
type Op int

const (
	Union Op = iota
	Difference
	Intersection
)

// SelectFaces returns the faces to keep from A and from B for op, and
// whether B's kept faces must have their Orientation flipped (true only
// for Difference).
func SelectFaces(op Op, classesA, classesB []FaceClass) (keepA, keepB []topo.FaceID, reverseB bool) {
	for _, fc := range classesA {
		if keepFromA(op, fc.Class) {
			keepA = append(keepA, fc.Face)
		}
	}
	for _, fc := range classesB {
		if keepFromB(op, fc.Class) {
			keepB = append(keepB, fc.Face)
		}
	}
	return keepA, keepB, op == Difference
}

func keepFromA(op Op, c Classification) bool {
	switch op {
	case Union:
		return c == Outside || c == OnSame
	case Difference:
		return c == Outside || c == OnOpposite
	case Intersection:
		return c == Inside || c == OnSame
	default:
		return false
	}
}

func keepFromB(op Op, c Classification) bool {
	switch op {
	case Union:
		return c == Outside
	case Difference, Intersection:
		return c == Inside
	default:
		return false
	}
}
