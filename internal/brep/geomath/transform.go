package geomath

import "github.com/go-gl/mathgl/mgl64"

// Transform is a rigid or affine (rigid + uniform scale) transform applied
// to points and directions. It wraps mgl64.Mat4 so composition reuses
// mathgl's matrix multiplication directly.
type Transform struct {
	m mgl64.Mat4
}

// Identity returns the identity transform.
func Identity() Transform { return Transform{m: mgl64.Ident4()} }

// NewTranslation builds a pure translation transform.
func NewTranslation(d Vector3) Transform {
	return Transform{m: mgl64.Translate3D(d[0], d[1], d[2])}
}

// NewRotation builds a rotation by angle radians about axis (need not be
// pre-normalized).
func NewRotation(axis Vector3, angle float64) Transform {
	n := axis.Normalize()
	return Transform{m: mgl64.HomogRotate3D(angle, n)}
}

// NewUniformScale builds a uniform scale transform about the origin.
func NewUniformScale(s float64) Transform {
	return Transform{m: mgl64.Scale3D(s, s, s)}
}

// Compose returns the transform that applies t first, then other
// (t.Compose(other) == apply t, then other, matching matrix-multiply order
// other.m * t.m).
func (t Transform) Compose(other Transform) Transform {
	return Transform{m: other.m.Mul4(t.m)}
}

// Apply transforms a point, including translation.
func (t Transform) Apply(p Point3) Point3 {
	v4 := t.m.Mul4x1(mgl64.Vec4{p[0], p[1], p[2], 1})
	return Point3{v4[0], v4[1], v4[2]}
}

// ApplyDirection transforms a direction, ignoring translation.
func (t Transform) ApplyDirection(v Vector3) Vector3 {
	v4 := t.m.Mul4x1(mgl64.Vec4{v[0], v[1], v[2], 0})
	return Vector3{v4[0], v4[1], v4[2]}
}

// Determinant returns the determinant of the linear part of the transform.
// A negative determinant flips handedness (e.g. a mirror); callers must
// compensate at the face-orientation level rather than the surface level,
// per the kernel's surface-transform contract.
func (t Transform) Determinant() float64 {
	m3 := mgl64.Mat3{
		t.m[0], t.m[1], t.m[2],
		t.m[4], t.m[5], t.m[6],
		t.m[8], t.m[9], t.m[10],
	}
	return m3.Det()
}

// Mat4 exposes the underlying matrix for collaborators that need raw
// matrix access (e.g. a tessellator or an exporter baking transforms).
func (t Transform) Mat4() mgl64.Mat4 { return t.m }
