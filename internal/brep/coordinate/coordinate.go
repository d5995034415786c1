// Package coordinate drives the full boolean pipeline — broadphase,
// surface-surface intersection, trim, split, classify and sew — over a
// pair of input solids.
package coordinate

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/solidkit/brep/internal/brep/broadphase"
	"github.com/solidkit/brep/internal/brep/classify"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/sew"
	"github.com/solidkit/brep/internal/brep/ssi"
	"github.com/solidkit/brep/internal/brep/split"
	"github.com/solidkit/brep/internal/brep/topo"
	"github.com/solidkit/brep/internal/config"
	"github.com/solidkit/brep/internal/profiling"
)

// Op is the boolean operation to perform.
type Op = classify.Op

const (
	Union        = classify.Union
	Difference   = classify.Difference
	Intersection = classify.Intersection
)

// Options bundles the tunables the pipeline needs beyond the two input
// solids: tessellation density for classification's point-in-mesh test and
// the split curve-to-polygon segment count.
type Options struct {
	Tolerance geomath.Tolerance
	Segments  int
}

// DefaultOptions reads the pipeline's configured tolerance and
// tessellation budget from internal/config.
func DefaultOptions() Options {
	return Options{
		Tolerance: geomath.Tolerance{
			Linear:  config.GetLinearTolerance(),
			Angular: config.GetAngularTolerance(),
		},
		Segments: config.GetSegments(),
	}
}

// curveRecord is one candidate pair's intersection curve, keyed by the face
// of A and of B it must be trimmed and split against.
type curveRecord struct {
	pairIndex int
	faceA     topo.FaceID
	faceB     topo.FaceID
	curve     ssi.Curve
}

// Boolean runs op(a, b) to completion, returning a freshly-sewn result
// solid. a and b are read-only; the pipeline works against internal
// clones.
func Boolean(op Op, a, b *model.BRepSolid, opts Options) (*model.BRepSolid, error) {
	defer profiling.Track("coordinate.Boolean")()

	if !broadphase.SolidAABB(a).Overlaps(broadphase.SolidAABB(b)) {
		return shortCircuit(op, a, b, opts)
	}

	workA := a.Clone()
	workB := b.Clone()

	pairs := broadphase.FindCandidatePairs(workA, workB)

	ssiDone := profiling.Track("coordinate.intersectPairs")
	records, err := intersectPairs(workA, workB, pairs, opts.Tolerance)
	ssiDone()
	if err != nil {
		return nil, err
	}

	shellA := workA.Topo.Solid(workA.Root).OuterShell
	shellB := workB.Topo.Solid(workB.Root).OuterShell

	splitDone := profiling.Track("coordinate.applySplits")
	if err := applySplits(workA, shellA, recordsFor(records, true), opts.Segments); err != nil {
		splitDone()
		return nil, err
	}
	if err := applySplits(workB, shellB, recordsFor(records, false), opts.Segments); err != nil {
		splitDone()
		return nil, err
	}
	splitDone()

	classifyDone := profiling.Track("coordinate.classify")
	classesA := classify.AllFaces(workA, workB, opts.Segments)
	classesB := classify.AllFaces(workB, workA, opts.Segments)
	classifyDone()
	keepA, keepB, reverseB := classify.SelectFaces(op, classesA, classesB)

	defer profiling.Track("coordinate.sew")()
	return sew.Solids(workA, keepA, workB, keepB, reverseB, opts.Tolerance)
}

// shortCircuit handles the disjoint-AABB case per the operation's
// selection table: with no possible overlap, every face of A is Outside B
// and every face of B is Outside A, so the table's outcome is known
// without running SSI at all.
func shortCircuit(op Op, a, b *model.BRepSolid, opts Options) (*model.BRepSolid, error) {
	switch op {
	case Union:
		return sew.Solids(a, a.Faces(), b, b.Faces(), false, opts.Tolerance)
	case Difference:
		return sew.Solids(a, a.Faces(), nil, nil, false, opts.Tolerance)
	case Intersection:
		return sew.Solids(a, nil, nil, nil, false, opts.Tolerance)
	default:
		return sew.Solids(a, a.Faces(), b, b.Faces(), false, opts.Tolerance)
	}
}

// intersectPairs computes the SSI curve for every candidate face pair
// concurrently; each task only reads its two faces' immutable surfaces, so
// the fan-out is safe without locking. Results are collected into a slice
// indexed by pair position, preserving FindCandidatePairs' own order for
// the later deterministic reduction.
func intersectPairs(a, b *model.BRepSolid, pairs []broadphase.FacePair, tol geomath.Tolerance) ([]curveRecord, error) {
	out := make([]curveRecord, len(pairs))
	var g errgroup.Group
	if limit := config.GetMaxWorkerCount(); limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			surfA := a.Surface(p.A)
			surfB := b.Surface(p.B)
			curve := ssi.Intersect(surfA, surfB, tol)
			out[i] = curveRecord{pairIndex: i, faceA: p.A, faceB: p.B, curve: curve}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	filtered := out[:0]
	for _, r := range out {
		if r.curve.Kind != ssi.KindEmpty {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// recordsFor groups records by the requested side's face id, sorted by
// face id and then by original pair index, so the subsequent split pass
// sees a bit-stable order regardless of goroutine scheduling.
func recordsFor(records []curveRecord, sideA bool) map[topo.FaceID][]ssi.Curve {
	byFace := make(map[topo.FaceID][]curveRecord)
	for _, r := range records {
		key := r.faceB
		if sideA {
			key = r.faceA
		}
		byFace[key] = append(byFace[key], r)
	}
	out := make(map[topo.FaceID][]ssi.Curve, len(byFace))
	for face, recs := range byFace {
		sort.Slice(recs, func(i, j int) bool { return recs[i].pairIndex < recs[j].pairIndex })
		curves := make([]ssi.Curve, len(recs))
		for i, r := range recs {
			curves[i] = r.curve
		}
		out[face] = curves
	}
	return out
}

// applySplits feeds each face's accumulated curves through split in face-id
// order (so output face numbering is deterministic), re-trimming against
// whichever sub-faces the previous curve in the list left behind — split's
// own chordsForFace always trims against the current face's current
// boundary, which is exactly the "re-trim as the face shrinks" rule the
// pipeline requires.
func applySplits(b *model.BRepSolid, shell topo.ShellID, byFace map[topo.FaceID][]ssi.Curve, segments int) error {
	faces := make([]topo.FaceID, 0, len(byFace))
	for f := range byFace {
		faces = append(faces, f)
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i] < faces[j] })

	for _, f := range faces {
		live := []topo.FaceID{f}
		for _, curve := range byFace[f] {
			var next []topo.FaceID
			for _, lf := range live {
				sub, err := split.FaceByCurve(b, shell, lf, curve, segments)
				if err != nil {
					return err
				}
				next = append(next, sub...)
			}
			live = next
		}
	}
	return nil
}
