package split

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/ssi"
	"github.com/solidkit/brep/internal/brep/topo"
)

// diskByCurve splits a circular-disk cap face (a cylinder or cone's end,
// whose outer loop is a single seam vertex standing for the whole rim
// circle) along curve. Like the cylindrical case, the degenerate rim is
// first tessellated into an explicit polygon so the generic chord-split
// machinery can locate and insert entry/exit vertices on it.
func diskByCurve(b *model.BRepSolid, shell topo.ShellID, f topo.FaceID, curve ssi.Curve, segments int) ([]topo.FaceID, error) {
	expanded, err := expandDiskFace(b, shell, f, segments)
	if err != nil {
		return nil, err
	}
	chords := chordsForFace(b, expanded, curve)
	if len(chords) == 0 {
		return []topo.FaceID{expanded}, nil
	}
	return chordSplitLoop(b, shell, expanded, chords)
}

// expandDiskFace replaces f's single-vertex rim loop with `segments`
// explicit vertices around the circle, recovering the circle's center from
// the plane's own origin (the planar cap is always built with its plane
// origin at the disk's center) and its radius from the seam vertex's
// distance to that origin.
func expandDiskFace(b *model.BRepSolid, shell topo.ShellID, f topo.FaceID, segments int) (topo.FaceID, error) {
	face := b.Topo.Face(f)
	pl, ok := b.Surface(f).(geom.Plane)
	if !ok {
		return f, nil
	}
	if segments < 3 {
		segments = 3
	}

	rimIDs := b.Topo.LoopVertices(face.OuterLoop)
	if len(rimIDs) != 1 {
		return f, nil
	}
	rim := b.Topo.Vertex(rimIDs[0]).Point
	radius := rim.Sub(pl.Origin).Len()
	if radius < 1e-12 {
		return f, nil
	}
	xdir, ydir := pl.XDir.Vec(), pl.YDir.Vec()

	verts := make([]topo.VertexID, segments)
	for k := 0; k < segments; k++ {
		angle := 2 * math.Pi * float64(k) / float64(segments)
		p := pl.Origin.Add(xdir.Mul(radius * math.Cos(angle))).Add(ydir.Mul(radius * math.Sin(angle)))
		verts[k] = b.Topo.AddVertex(p)
	}

	newFace := buildLoopFace(b, verts, face.SurfaceIdx, face.Orientation)
	b.Topo.AddFacesToShell(shell, newFace)
	b.Topo.ReleaseFace(f)
	return newFace, nil
}
