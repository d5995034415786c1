package split

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/ssi"
	"github.com/solidkit/brep/internal/brep/topo"
)

// cylindricalByCurve splits a cylindrical lateral face along curve. A
// cylinder's two degenerate rim edges (a single vertex standing for a full
// revolution at constant v, per the seam convention primitives.Cylinder
// and primitives.Cone use) cannot host a new chord vertex directly, so the
// face is first expanded into an explicit polygon approximating its (u, v)
// boundary rectangle before handing off to the same chord-splitting
// machinery the planar case uses.
func cylindricalByCurve(b *model.BRepSolid, shell topo.ShellID, f topo.FaceID, curve ssi.Curve, segments int) ([]topo.FaceID, error) {
	expanded, err := expandCylindricalFace(b, shell, f, segments)
	if err != nil {
		return nil, err
	}
	chords := chordsForFace(b, expanded, curve)
	if len(chords) == 0 {
		return []topo.FaceID{expanded}, nil
	}
	return chordSplitLoop(b, shell, expanded, chords)
}

// expandCylindricalFace replaces each degenerate (zero-length, full
// revolution) edge of f's outer loop with `segments` explicit vertices
// sampled around the rim, alternating sweep direction on each degenerate
// edge encountered to preserve the loop's CCW winding (the bottom rim
// sweeps forward in theta, the top rim sweeps backward, matching how
// primitives.Cylinder itself threads the lateral loop).
func expandCylindricalFace(b *model.BRepSolid, shell topo.ShellID, f topo.FaceID, segments int) (topo.FaceID, error) {
	face := b.Topo.Face(f)
	cyl, ok := b.Surface(f).(geom.Cylinder)
	if !ok {
		return f, nil
	}
	if segments < 3 {
		segments = 3
	}

	outerIDs := b.Topo.LoopVertices(face.OuterLoop)
	n := len(outerIDs)
	if n == 0 {
		return f, nil
	}
	pts := make([]geomath.Point3, n)
	for i, v := range outerIDs {
		pts[i] = b.Topo.Vertex(v).Point
	}

	var expanded []topo.VertexID
	forward := true
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		expanded = append(expanded, outerIDs[i])
		if pts[i].Sub(pts[j]).Len() < 1e-9 {
			theta0, v0 := cyl.Project(pts[i])
			sweep := 2 * math.Pi
			if !forward {
				sweep = -sweep
			}
			for k := 1; k < segments; k++ {
				theta := theta0 + sweep*float64(k)/float64(segments)
				p := cyl.Evaluate(theta, v0)
				expanded = append(expanded, b.Topo.AddVertex(p))
			}
			forward = !forward
		}
	}

	newFace := buildLoopFace(b, expanded, face.SurfaceIdx, face.Orientation)
	b.Topo.AddFacesToShell(shell, newFace)
	b.Topo.ReleaseFace(f)
	return newFace, nil
}
