package geom

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geomath"
)

// Bilinear is a ruled patch over four corners, parameterized on the unit
// square [0,1]x[0,1]:
//
//	P(u,v) = (1-u)(1-v)*P00 + u(1-v)*P10 + (1-u)v*P01 + u*v*P11
//
// It has no closed-form Project; Project uses Newton iteration seeded by a
// coarse grid search, since the patch is not generally planar.
type Bilinear struct {
	P00, P10, P01, P11 geomath.Point3
}

func NewBilinear(p00, p10, p01, p11 geomath.Point3) Bilinear {
	return Bilinear{P00: p00, P10: p10, P01: p01, P11: p11}
}

func (b Bilinear) Kind() SurfaceKind { return KindBilinear }

func (b Bilinear) Evaluate(u, v float64) geomath.Point3 {
	bottom := b.P00.Mul(1 - u).Add(b.P10.Mul(u))
	top := b.P01.Mul(1 - u).Add(b.P11.Mul(u))
	return bottom.Mul(1 - v).Add(top.Mul(v))
}

func (b Bilinear) Du(u, v float64) geomath.Vector3 {
	bottom := b.P10.Sub(b.P00)
	top := b.P11.Sub(b.P01)
	return bottom.Mul(1 - v).Add(top.Mul(v))
}

func (b Bilinear) Dv(u, v float64) geomath.Vector3 {
	left := b.P01.Sub(b.P00)
	right := b.P11.Sub(b.P10)
	return left.Mul(1 - u).Add(right.Mul(u))
}

func (b Bilinear) Normal(u, v float64) geomath.UnitVector3 {
	n := b.Du(u, v).Cross(b.Dv(u, v))
	if n.Len() < 1e-15 {
		// Degenerate tangent plane (e.g. a collapsed corner): fall back to
		// the patch's overall diagonal cross product.
		n = b.P10.Sub(b.P00).Cross(b.P01.Sub(b.P00))
	}
	return geomath.MustUnitVector3(n)
}

// Project locates the closest (u, v) by a coarse grid search followed by a
// few Newton-Gauss iterations against the squared distance residual.
func (b Bilinear) Project(p geomath.Point3) (float64, float64) {
	const gridN = 8
	bestU, bestV := 0.0, 0.0
	bestDist := b.Evaluate(0, 0).Sub(p).Len()
	for i := 0; i <= gridN; i++ {
		for j := 0; j <= gridN; j++ {
			u := float64(i) / gridN
			v := float64(j) / gridN
			d := b.Evaluate(u, v).Sub(p).Len()
			if d < bestDist {
				bestDist = d
				bestU, bestV = u, v
			}
		}
	}
	u, v := bestU, bestV
	for iter := 0; iter < 8; iter++ {
		f := b.Evaluate(u, v).Sub(p)
		du := b.Du(u, v)
		dv := b.Dv(u, v)
		// Linearized normal equations for a 2-parameter least-squares step.
		a11, a12 := du.Dot(du), du.Dot(dv)
		a21, a22 := dv.Dot(du), dv.Dot(dv)
		b1, b2 := -f.Dot(du), -f.Dot(dv)
		det := a11*a22 - a12*a21
		if math.Abs(det) < 1e-15 {
			break
		}
		deltaU := (b1*a22 - a12*b2) / det
		deltaV := (a11*b2 - b1*a21) / det
		u = clampUnit(u + deltaU)
		v = clampUnit(v + deltaV)
	}
	return u, v
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func (b Bilinear) Transform(t geomath.Transform) Surface {
	return Bilinear{
		P00: t.Apply(b.P00),
		P10: t.Apply(b.P10),
		P01: t.Apply(b.P01),
		P11: t.Apply(b.P11),
	}
}

func (b Bilinear) Domain() Domain {
	return Domain{UMin: 0, UMax: 1, VMin: 0, VMax: 1}
}
