package tessellate

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/topo"
	"github.com/solidkit/brep/internal/brep/trim"
	"github.com/solidkit/brep/internal/profiling"
)

// Brep tessellates every live face of b into triangles. segments controls
// the angular resolution used for curved (cylinder/sphere/cone/torus)
// faces and for disk caps (planar faces whose outer loop is one seam
// vertex), whose rim circle is fanned around the plane origin; other
// planar faces are fan-triangulated exactly from their loop vertices
// regardless of segments.
func Brep(b *model.BRepSolid, segments int) *Mesh {
	defer profiling.Track("tessellate.Brep")()
	if segments < 3 {
		segments = 3
	}
	mesh := &Mesh{}
	for _, f := range b.Faces() {
		tessellateFace(mesh, b, f, segments)
	}
	return mesh
}

func tessellateFace(mesh *Mesh, b *model.BRepSolid, f topo.FaceID, segments int) {
	surf := b.Surface(f)
	face := b.Topo.Face(f)
	sign := 1.0
	if face.Orientation == topo.Reversed {
		sign = -1.0
	}
	if pl, ok := surf.(geom.Plane); ok && b.Topo.LoopSize(face.OuterLoop) == 1 {
		rim := b.Topo.Vertex(b.Topo.LoopVertices(face.OuterLoop)[0]).Point
		r := rim.Sub(pl.Origin).Len()
		n := pl.Normal(0, 0).Vec().Mul(sign)
		for k := 0; k < segments; k++ {
			a0 := 2 * math.Pi * float64(k) / float64(segments)
			a1 := 2 * math.Pi * float64(k+1) / float64(segments)
			p0, p1 := pl.Evaluate(r*math.Cos(a0), r*math.Sin(a0)), pl.Evaluate(r*math.Cos(a1), r*math.Sin(a1))
			if sign < 0 {
				p0, p1 = p1, p0
			}
			mesh.addTriangle(pl.Origin, p0, p1, n)
		}
		return
	}
	if surf.Kind() == geom.KindPlane {
		tessellatePlanar(mesh, b, f, surf, sign)
		return
	}
	tessellateGrid(mesh, b, f, surf, segments, sign)
}

// tessellatePlanar fan-triangulates the outer loop from its first vertex,
// dropping any triangle whose centroid falls inside a hole.
func tessellatePlanar(mesh *Mesh, b *model.BRepSolid, f topo.FaceID, surf geom.Surface, sign float64) {
	face := b.Topo.Face(f)
	outerVerts := b.Topo.LoopVertices(face.OuterLoop)
	if len(outerVerts) < 3 {
		return
	}
	pts := make([]geomath.Point3, len(outerVerts))
	for i, v := range outerVerts {
		pts[i] = b.Topo.Vertex(v).Point
	}
	n := faceNormal(pts, surf, sign)

	innerUV := make([][]geomath.Point2, 0, len(face.InnerLoops))
	for _, il := range face.InnerLoops {
		innerUV = append(innerUV, loopUV2(b, surf, il))
	}

	p0 := pts[0]
	for i := 1; i+1 < len(pts); i++ {
		p1, p2 := pts[i], pts[i+1]
		centroid := p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
		u, v := surf.Project(centroid)
		cuv := geomath.NewPoint2(u, v)
		insideHole := false
		for _, hole := range innerUV {
			if trim.PointInPolygon(cuv, hole) {
				insideHole = true
				break
			}
		}
		if insideHole {
			continue
		}
		if sign < 0 {
			mesh.addTriangle(p0, p2, p1, n)
		} else {
			mesh.addTriangle(p0, p1, p2, n)
		}
	}
}

func loopUV2(b *model.BRepSolid, surf geom.Surface, l topo.LoopID) []geomath.Point2 {
	verts := b.Topo.LoopVertices(l)
	out := make([]geomath.Point2, len(verts))
	for i, v := range verts {
		u, vv := surf.Project(b.Topo.Vertex(v).Point)
		out[i] = geomath.NewPoint2(u, vv)
	}
	return out
}

func faceNormal(pts []geomath.Point3, surf geom.Surface, sign float64) geomath.Vector3 {
	if len(pts) >= 3 {
		e1 := pts[1].Sub(pts[0])
		e2 := pts[2].Sub(pts[0])
		n := e1.Cross(e2)
		if n.Len() > 1e-15 {
			return n.Normalize().Mul(sign)
		}
	}
	return surf.Normal(0, 0).Vec().Mul(sign)
}

// tessellateGrid samples the face's surface on a (segments x segments)
// grid spanning the loop vertices' UV bounding box (a periodic U range
// wider than pi is widened to the full period; V is not wrapped), keeping
// only grid cells whose center
// projects inside the face via trim.PointInFace.
func tessellateGrid(mesh *Mesh, b *model.BRepSolid, f topo.FaceID, surf geom.Surface, segments int, sign float64) {
	face := b.Topo.Face(f)
	domain := surf.Domain()
	verts := b.Topo.FaceBoundaryVertices(f)
	if len(verts) == 0 {
		return
	}

	uMin, uMax := math.Inf(1), math.Inf(-1)
	vMin, vMax := math.Inf(1), math.Inf(-1)
	for _, vid := range verts {
		u, v := surf.Project(b.Topo.Vertex(vid).Point)
		if u < uMin {
			uMin = u
		}
		if u > uMax {
			uMax = u
		}
		if v < vMin {
			vMin = v
		}
		if v > vMax {
			vMax = v
		}
	}
	if domain.UPeriodic && uMax-uMin > math.Pi {
		// The loop likely wraps the seam; cover the full period instead of
		// guessing a sub-range from an unwrapped vertex spread.
		uMin, uMax = 0, 2*math.Pi
	}
	if vMin == vMax {
		vMax = vMin + 1e-6
	}
	if uMin == uMax {
		uMax = uMin + 1e-6
	}

	uSteps := segments
	vSteps := segments

	eval := func(u, v float64) geomath.Point3 { return surf.Evaluate(u, v) }
	normalAt := func(u, v float64) geomath.Vector3 { return surf.Normal(u, v).Vec().Mul(sign) }

	_ = face
	for i := 0; i < uSteps; i++ {
		u0 := uMin + (uMax-uMin)*float64(i)/float64(uSteps)
		u1 := uMin + (uMax-uMin)*float64(i+1)/float64(uSteps)
		for j := 0; j < vSteps; j++ {
			v0 := vMin + (vMax-vMin)*float64(j)/float64(vSteps)
			v1 := vMin + (vMax-vMin)*float64(j+1)/float64(vSteps)

			uc := 0.5 * (u0 + u1)
			vc := 0.5 * (v0 + v1)
			center := eval(uc, vc)
			if !trim.PointInFace(b, f, center) {
				continue
			}

			p00 := eval(u0, v0)
			p10 := eval(u1, v0)
			p11 := eval(u1, v1)
			p01 := eval(u0, v1)
			n := normalAt(uc, vc)

			if sign < 0 {
				mesh.addTriangle(p00, p01, p10, n)
				mesh.addTriangle(p10, p01, p11, n)
			} else {
				mesh.addTriangle(p00, p10, p01, n)
				mesh.addTriangle(p10, p11, p01, n)
			}
		}
	}
}
