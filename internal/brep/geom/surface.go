// Package geom holds the analytic surface and curve variants bound to
// topology by the brep model: planes, cylinders, spheres, cones, tori and
// bilinear patches for surfaces; lines, circles and sampled polylines for
// 3D curves. Every surface exposes evaluate/derivative/project/transform
// so the rest of the pipeline (SSI, trim, split, classify) can stay
// generic over surface kind and dispatch only where the math genuinely
// differs (principally in ssi and split).
package geom

import "github.com/solidkit/brep/internal/brep/geomath"

// SurfaceKind enumerates the closed set of analytic surface variants the
// kernel understands. SSI dispatches on pairs of these; a pair with no
// closed-form case falls back to a numeric sampled intersection.
type SurfaceKind int

const (
	KindPlane SurfaceKind = iota
	KindCylinder
	KindSphere
	KindCone
	KindTorus
	KindBilinear
)

func (k SurfaceKind) String() string {
	switch k {
	case KindPlane:
		return "Plane"
	case KindCylinder:
		return "Cylinder"
	case KindSphere:
		return "Sphere"
	case KindCone:
		return "Cone"
	case KindTorus:
		return "Torus"
	case KindBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Domain describes a surface's parameter-space rectangle. A periodic axis
// wraps at [Min, Max); UMax/VMax may be math.Inf(1) for an unbounded axis
// (e.g. a cylinder's height).
type Domain struct {
	UMin, UMax float64
	VMin, VMax float64
	UPeriodic  bool
	VPeriodic  bool
}

// Surface is the common interface every analytic surface variant
// implements.
type Surface interface {
	Kind() SurfaceKind
	// Evaluate returns the 3D point at parameter (u, v).
	Evaluate(u, v float64) geomath.Point3
	// Du returns the partial derivative with respect to u.
	Du(u, v float64) geomath.Vector3
	// Dv returns the partial derivative with respect to v.
	Dv(u, v float64) geomath.Vector3
	// Normal returns the surface's own analytic normal at (u, v); it is
	// independent of the owning face's Orientation flag.
	Normal(u, v float64) geomath.UnitVector3
	// Project finds the (u, v) at which the surface comes closest to p; it
	// is closed-form for every variant except Bilinear, which falls back
	// to a grid search refined by a few Newton steps.
	Project(p geomath.Point3) (u, v float64)
	// Transform returns a new surface with the given rigid/affine
	// transform applied. A negative-determinant transform flips the face
	// Orientation, not the surface itself.
	Transform(t geomath.Transform) Surface
	// Domain returns the surface's parameter-space rectangle.
	Domain() Domain
}
