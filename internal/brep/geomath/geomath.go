// Package geomath provides the points, vectors, unit directions, rigid and
// affine transforms, and tolerance values shared by every other package in
// the boolean pipeline. Nothing downstream should hard-code a linear or
// angular epsilon; it should take a Tolerance value instead.
package geomath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a point in model space. It is a plain alias over mgl64.Vec3 so
// every vector operation (Add, Sub, Dot, Cross, Len) is available directly.
type Point3 = mgl64.Vec3

// Vector3 is a displacement or direction in model space.
type Vector3 = mgl64.Vec3

// Point2 is a point in a surface's (u, v) parameter space.
type Point2 = mgl64.Vec2

// NewPoint3 constructs a Point3 from components.
func NewPoint3(x, y, z float64) Point3 { return mgl64.Vec3{x, y, z} }

// NewPoint2 constructs a Point2 from components.
func NewPoint2(u, v float64) Point2 { return mgl64.Vec2{u, v} }

// UnitVector3 is a Vector3 known to have unit length. The zero value is NOT
// a valid unit vector; always construct one through NewUnitVector3.
type UnitVector3 struct {
	v Vector3
}

// NewUnitVector3 normalizes v and returns an error if it is too short to
// normalize stably under tol.
func NewUnitVector3(v Vector3, tol Tolerance) (UnitVector3, error) {
	n := v.Len()
	if n < tol.Linear {
		return UnitVector3{}, ErrDegenerateDirection
	}
	return UnitVector3{v: v.Mul(1.0 / n)}, nil
}

// MustUnitVector3 is NewUnitVector3 but panics on a degenerate input. Use
// only where the caller has already established the vector is well-formed
// (e.g. the cross product of two known-independent axes).
func MustUnitVector3(v Vector3) UnitVector3 {
	n := v.Len()
	if n == 0 {
		panic("geomath: MustUnitVector3 of zero vector")
	}
	return UnitVector3{v: v.Mul(1.0 / n)}
}

// Vec returns the underlying unit vector.
func (u UnitVector3) Vec() Vector3 { return u.v }

// Negate returns the opposite unit direction.
func (u UnitVector3) Negate() UnitVector3 { return UnitVector3{v: u.v.Mul(-1)} }

// Tolerance bundles the linear and angular epsilons that every geometric
// predicate in the pipeline is parameterized on.
type Tolerance struct {
	// Linear is the distance tolerance, in model units (default 1e-6 m at
	// model scale).
	Linear float64
	// Angular is the angle tolerance, in radians (default 1e-9 rad).
	Angular float64
}

// DefaultTolerance returns the pipeline's standard numeric budget.
func DefaultTolerance() Tolerance {
	return Tolerance{Linear: 1e-6, Angular: 1e-9}
}

// PointsEqual reports whether a and b are within the linear tolerance.
func (t Tolerance) PointsEqual(a, b Point3) bool {
	return a.Sub(b).Len() <= t.Linear
}

// IsZero reports whether x is within the linear tolerance of zero.
func (t Tolerance) IsZero(x float64) bool {
	return math.Abs(x) <= t.Linear
}

// AnglesParallel reports whether two unit vectors are parallel (including
// anti-parallel) within the angular tolerance.
func (t Tolerance) AnglesParallel(a, b UnitVector3) bool {
	c := a.Vec().Cross(b.Vec()).Len()
	return c <= t.Angular
}

// VolumeTolerance scales the linear tolerance to a volume-comparison budget
// for a pair of solids, per the testable property in the kernel's
// volume-conservation law (100 * eps * max(volA, volB)).
func (t Tolerance) VolumeTolerance(volA, volB float64) float64 {
	maxVol := math.Max(math.Abs(volA), math.Abs(volB))
	eps := t.Linear * t.Linear
	return 100 * eps * maxVol
}

// ErrDegenerateDirection is returned by NewUnitVector3 when the input is too
// short to normalize reliably.
var ErrDegenerateDirection = degenerateDirErr{}

type degenerateDirErr struct{}

func (degenerateDirErr) Error() string { return "geomath: degenerate direction" }

// QuantizeKey rounds p to the given tolerance and returns an integer key
// suitable for map-based coincidence matching (twin pairing, vertex
// deduplication during sew). Two points within tol of each other are NOT
// guaranteed to hash identically if they straddle a quantization boundary;
// callers that need exact coincidence should additionally verify with
// Tolerance.PointsEqual against nearby buckets.
func QuantizeKey(p Point3, tol float64) [3]int64 {
	if tol <= 0 {
		tol = 1e-9
	}
	return [3]int64{
		int64(math.Round(p[0] / tol)),
		int64(math.Round(p[1] / tol)),
		int64(math.Round(p[2] / tol)),
	}
}
