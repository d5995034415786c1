// Package trim clips a geometric intersection curve to the bounded region
// of a face, and provides the point-in-face test the rest of the pipeline
// (classify, split) also relies on.
package trim

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
)

// projectToUV maps a 3D point onto a surface's (u, v) parameter space by
// delegating to the surface's own Project (closed-form for Plane,
// Cylinder, Sphere and Cone; Bilinear seeds from a grid and refines with
// Newton steps internally).
func projectToUV(s geom.Surface, p geomath.Point3) (u, v float64) {
	return s.Project(p)
}

// PointInPolygon is the standard winding-number test for a 2D point
// against a closed polygon (last vertex implicitly connects to the
// first). Points exactly on the boundary get no special handling: whether
// one counts as inside depends on the direction of the edge it lies on.
func PointInPolygon(pt geomath.Point2, poly []geomath.Point2) bool {
	return pointInPolygon(pt, poly)
}

func pointInPolygon(pt geomath.Point2, poly []geomath.Point2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	winding := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		yi, yj := poly[i][1], poly[j][1]
		if yi <= pt[1] {
			if yj > pt[1] {
				if cross2D(poly[j][0]-poly[i][0], poly[j][1]-poly[i][1], pt[0]-poly[i][0], pt[1]-poly[i][1]) > 0 {
					winding++
				}
			}
		} else if yj <= pt[1] {
			if cross2D(poly[j][0]-poly[i][0], poly[j][1]-poly[i][1], pt[0]-poly[i][0], pt[1]-poly[i][1]) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

func cross2D(ax, ay, bx, by float64) float64 { return ax*by - ay*bx }

// unwrapPeriodic adds or subtracts 2*pi from uv values in poly so that the
// whole polygon (plus the query point) lies in a single contiguous window,
// avoiding a false boundary crossing at a periodic surface's seam.
func unwrapPeriodic(poly []geomath.Point2, test geomath.Point2, periodicU, periodicV bool) ([]geomath.Point2, geomath.Point2) {
	if !periodicU && !periodicV {
		return poly, test
	}
	out := make([]geomath.Point2, len(poly))
	copy(out, poly)
	if periodicU {
		rewrapAxis(out, &test, 0)
	}
	if periodicV {
		rewrapAxis(out, &test, 1)
	}
	return out, test
}

func rewrapAxis(poly []geomath.Point2, test *geomath.Point2, axis int) {
	if len(poly) == 0 {
		return
	}
	ref := poly[0][axis]
	for i := range poly {
		for poly[i][axis]-ref > math.Pi {
			poly[i][axis] -= 2 * math.Pi
		}
		for poly[i][axis]-ref < -math.Pi {
			poly[i][axis] += 2 * math.Pi
		}
	}
	for (*test)[axis]-ref > math.Pi {
		(*test)[axis] -= 2 * math.Pi
	}
	for (*test)[axis]-ref < -math.Pi {
		(*test)[axis] += 2 * math.Pi
	}
}
