// Package primitives builds valid B-rep topology and geometry for the
// standard CAD primitives: box, cylinder, sphere and cone, including the
// degenerate seam edges and pole vertices their surface periodicity
// requires.
package primitives

import (
	"math"

	"github.com/solidkit/brep/internal/brep/geom"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/topo"
)

var (
	xAxis = geomath.MustUnitVector3(geomath.NewPoint3(1, 0, 0))
	yAxis = geomath.MustUnitVector3(geomath.NewPoint3(0, 1, 0))
	zAxis = geomath.MustUnitVector3(geomath.NewPoint3(0, 0, 1))
)

// closeLoop wires Next/Prev across hes in order (wrapping to the first) and
// allocates the loop record.
func closeLoop(top *topo.Topology, hes []topo.HalfEdgeID) topo.LoopID {
	for i := range hes {
		top.LinkNext(hes[i], hes[(i+1)%len(hes)])
	}
	return top.AddLoop(hes[0])
}

type faceDef struct {
	verts  [4]topo.VertexID
	origin geomath.Point3
}

// Box builds a B-rep cuboid with one corner at the origin and dimensions
// (sx, sy, sz); the far corner sits at (sx, sy, sz). It has 8 vertices, 6
// planar faces, 12 edges and 24 half-edges.
//
//	     v7----v6
//	    /|    /|
//	   v4----v5|    z
//	   | v3--|-v2   | y
//	   |/    |/     |/
//	   v0----v1     +---x
func Box(sx, sy, sz float64, tol geomath.Tolerance) *model.BRepSolid {
	top := topo.NewTopology()
	store := geom.NewStore()

	v0 := top.AddVertex(geomath.NewPoint3(0, 0, 0))
	v1 := top.AddVertex(geomath.NewPoint3(sx, 0, 0))
	v2 := top.AddVertex(geomath.NewPoint3(sx, sy, 0))
	v3 := top.AddVertex(geomath.NewPoint3(0, sy, 0))
	v4 := top.AddVertex(geomath.NewPoint3(0, 0, sz))
	v5 := top.AddVertex(geomath.NewPoint3(sx, 0, sz))
	v6 := top.AddVertex(geomath.NewPoint3(sx, sy, sz))
	v7 := top.AddVertex(geomath.NewPoint3(0, sy, sz))

	faceDefs := []faceDef{
		// Bottom (z=0), normal -Z
		{[4]topo.VertexID{v0, v3, v2, v1}, geomath.NewPoint3(0, 0, 0)},
		// Top (z=sz), normal +Z
		{[4]topo.VertexID{v4, v5, v6, v7}, geomath.NewPoint3(0, 0, sz)},
		// Front (y=0), normal -Y
		{[4]topo.VertexID{v0, v1, v5, v4}, geomath.NewPoint3(0, 0, 0)},
		// Back (y=sy), normal +Y
		{[4]topo.VertexID{v2, v3, v7, v6}, geomath.NewPoint3(0, sy, 0)},
		// Left (x=0), normal -X
		{[4]topo.VertexID{v0, v4, v7, v3}, geomath.NewPoint3(0, 0, 0)},
		// Right (x=sx), normal +X
		{[4]topo.VertexID{v1, v2, v6, v5}, geomath.NewPoint3(sx, 0, 0)},
	}

	type edgeKey struct{ from, to topo.VertexID }
	heByEdge := make(map[edgeKey]topo.HalfEdgeID)

	var allFaces []topo.FaceID
	for _, fd := range faceDefs {
		// The outward normal follows the CCW vertex winding of the face
		// loop; XDir is the first edge direction, and NewPlane's axis
		// parameter is that normal (YDir = axis x xdir recovers xdir x
		// YDir = axis exactly when axis is already perpendicular to xdir).
		p0 := top.Vertex(fd.verts[0]).Point
		p1 := top.Vertex(fd.verts[1]).Point
		p2 := top.Vertex(fd.verts[2]).Point
		xdir := geomath.MustUnitVector3(p1.Sub(p0))
		normal := geomath.MustUnitVector3(p1.Sub(p0).Cross(p2.Sub(p1)))
		surf := geom.NewPlane(fd.origin, xdir, normal)
		sid := store.AddSurface(surf)

		hes := make([]topo.HalfEdgeID, 4)
		for j := 0; j < 4; j++ {
			he := top.AddHalfEdge(fd.verts[j], topo.LoopID(topo.None))
			hes[j] = he
			heByEdge[edgeKey{fd.verts[j], fd.verts[(j+1)%4]}] = he
		}
		loop := closeLoop(top, hes)
		face := top.AddFace(loop, int(sid), topo.Forward)
		allFaces = append(allFaces, face)
	}

	paired := make(map[edgeKey]bool)
	for k, he1 := range heByEdge {
		rev := edgeKey{k.to, k.from}
		if paired[k] || paired[rev] {
			continue
		}
		if he2, ok := heByEdge[rev]; ok {
			top.LinkTwin(he1, he2)
			paired[k] = true
		}
	}

	shell := top.AddShell(topo.Outer, allFaces)
	solid := top.AddSolid(shell, nil)
	return model.New(top, store, solid, tol)
}

// Cylinder builds a B-rep cylinder of the given radius and height, axis
// along +Z, base centered at the origin. It has one cylindrical lateral
// face, two planar caps, two circular edges and one seam edge connecting
// them at theta=0.
func Cylinder(radius, height float64, tol geomath.Tolerance) *model.BRepSolid {
	top := topo.NewTopology()
	store := geom.NewStore()

	vBot := top.AddVertex(geomath.NewPoint3(radius, 0, 0))
	vTop := top.AddVertex(geomath.NewPoint3(radius, 0, height))

	cylSurf := geom.NewCylinder(geomath.NewPoint3(0, 0, 0), zAxis, xAxis, radius)
	cylIdx := store.AddSurface(cylSurf)

	botPlane := geom.NewPlane(geomath.NewPoint3(0, 0, 0), xAxis, zAxis.Negate())
	botIdx := store.AddSurface(botPlane)

	topPlane := geom.NewPlane(geomath.NewPoint3(0, 0, height), xAxis, zAxis)
	topIdx := store.AddSurface(topPlane)

	heBotLat := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
	heSeamUp := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
	heTopLat := top.AddHalfEdge(vTop, topo.LoopID(topo.None))
	heSeamDown := top.AddHalfEdge(vTop, topo.LoopID(topo.None))
	latLoop := closeLoop(top, []topo.HalfEdgeID{heBotLat, heSeamUp, heTopLat, heSeamDown})
	latFace := top.AddFace(latLoop, int(cylIdx), topo.Forward)

	heBotCap := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
	botLoop := closeLoop(top, []topo.HalfEdgeID{heBotCap})
	botFace := top.AddFace(botLoop, int(botIdx), topo.Forward)

	heTopCap := top.AddHalfEdge(vTop, topo.LoopID(topo.None))
	topLoop := closeLoop(top, []topo.HalfEdgeID{heTopCap})
	topFace := top.AddFace(topLoop, int(topIdx), topo.Forward)

	top.LinkTwin(heBotLat, heBotCap)
	top.LinkTwin(heTopLat, heTopCap)
	top.LinkTwin(heSeamUp, heSeamDown)

	shell := top.AddShell(topo.Outer, []topo.FaceID{latFace, botFace, topFace})
	solid := top.AddSolid(shell, nil)
	return model.New(top, store, solid, tol)
}

// Sphere builds a B-rep sphere of the given radius centered at the origin:
// one spherical face, one longitude seam edge at theta=0, and a pair of
// degenerate pole vertices joined by a self-twinned edge.
func Sphere(radius float64, tol geomath.Tolerance) *model.BRepSolid {
	top := topo.NewTopology()
	store := geom.NewStore()

	sphereSurf := geom.NewSphere(geomath.NewPoint3(0, 0, 0), radius, zAxis, xAxis)
	surfIdx := store.AddSurface(sphereSurf)

	vNorth := top.AddVertex(geomath.NewPoint3(0, 0, radius))
	vSouth := top.AddVertex(geomath.NewPoint3(0, 0, -radius))

	heSouthDegen := top.AddHalfEdge(vSouth, topo.LoopID(topo.None))
	heSeamUp := top.AddHalfEdge(vSouth, topo.LoopID(topo.None))
	heNorthDegen := top.AddHalfEdge(vNorth, topo.LoopID(topo.None))
	heSeamDown := top.AddHalfEdge(vNorth, topo.LoopID(topo.None))

	sphereLoop := closeLoop(top, []topo.HalfEdgeID{heSouthDegen, heSeamUp, heNorthDegen, heSeamDown})
	sphereFace := top.AddFace(sphereLoop, int(surfIdx), topo.Forward)

	top.LinkTwin(heSeamUp, heSeamDown)
	top.LinkTwin(heNorthDegen, heSouthDegen)

	shell := top.AddShell(topo.Outer, []topo.FaceID{sphereFace})
	solid := top.AddSolid(shell, nil)
	return model.New(top, store, solid, tol)
}

// Cone builds a B-rep cone or frustum: a conical lateral face plus a
// bottom cap, and (when radiusTop > 0) a top cap. radiusTop == 0 yields a
// pointed cone with an apex vertex in place of a top circle. Equal radii
// fall back to Cylinder.
func Cone(radiusBottom, radiusTop, height float64, tol geomath.Tolerance) *model.BRepSolid {
	if math.Abs(radiusBottom-radiusTop) < 1e-12 {
		return Cylinder(radiusBottom, height, tol)
	}

	top := topo.NewTopology()
	store := geom.NewStore()

	isPointed := radiusTop < 1e-12

	halfAngle := math.Atan2(radiusTop-radiusBottom, height)
	coneSurf := geom.NewCone(geomath.NewPoint3(0, 0, 0), zAxis, xAxis, radiusBottom, halfAngle)
	coneIdx := store.AddSurface(coneSurf)

	botPlane := geom.NewPlane(geomath.NewPoint3(0, 0, 0), xAxis, zAxis.Negate())
	botIdx := store.AddSurface(botPlane)

	if isPointed {
		vBot := top.AddVertex(geomath.NewPoint3(radiusBottom, 0, 0))
		vApex := top.AddVertex(geomath.NewPoint3(0, 0, height))

		heBotLat := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
		heSeamUp := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
		heSeamDown := top.AddHalfEdge(vApex, topo.LoopID(topo.None))
		latLoop := closeLoop(top, []topo.HalfEdgeID{heBotLat, heSeamUp, heSeamDown})
		latFace := top.AddFace(latLoop, int(coneIdx), topo.Forward)

		heBotCap := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
		botLoop := closeLoop(top, []topo.HalfEdgeID{heBotCap})
		botFace := top.AddFace(botLoop, int(botIdx), topo.Forward)

		top.LinkTwin(heBotLat, heBotCap)
		top.LinkTwin(heSeamUp, heSeamDown)

		shell := top.AddShell(topo.Outer, []topo.FaceID{latFace, botFace})
		solid := top.AddSolid(shell, nil)
		return model.New(top, store, solid, tol)
	}

	vBot := top.AddVertex(geomath.NewPoint3(radiusBottom, 0, 0))
	vTop := top.AddVertex(geomath.NewPoint3(radiusTop, 0, height))

	topPlane := geom.NewPlane(geomath.NewPoint3(0, 0, height), xAxis, zAxis)
	topIdx := store.AddSurface(topPlane)

	heBotLat := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
	heSeamUp := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
	heTopLat := top.AddHalfEdge(vTop, topo.LoopID(topo.None))
	heSeamDown := top.AddHalfEdge(vTop, topo.LoopID(topo.None))
	latLoop := closeLoop(top, []topo.HalfEdgeID{heBotLat, heSeamUp, heTopLat, heSeamDown})
	latFace := top.AddFace(latLoop, int(coneIdx), topo.Forward)

	heBotCap := top.AddHalfEdge(vBot, topo.LoopID(topo.None))
	botLoop := closeLoop(top, []topo.HalfEdgeID{heBotCap})
	botFace := top.AddFace(botLoop, int(botIdx), topo.Forward)

	heTopCap := top.AddHalfEdge(vTop, topo.LoopID(topo.None))
	topLoop := closeLoop(top, []topo.HalfEdgeID{heTopCap})
	topFace := top.AddFace(topLoop, int(topIdx), topo.Forward)

	top.LinkTwin(heBotLat, heBotCap)
	top.LinkTwin(heTopLat, heTopCap)
	top.LinkTwin(heSeamUp, heSeamDown)

	shell := top.AddShell(topo.Outer, []topo.FaceID{latFace, botFace, topFace})
	solid := top.AddSolid(shell, nil)
	return model.New(top, store, solid, tol)
}
