package geom

// SurfaceID indexes a Surface held by a Store.
type SurfaceID int

// CurveID indexes a Curve3 held by a Store.
type CurveID int

// Store is the arena-indexed table of analytic surfaces and 3D curves a
// solid's faces and trimmed edges point into by index, mirroring the way
// topo indexes its own records: no record owns another, only the Store
// allocates and frees them. A model.BRepSolid pairs a topo.Topology with
// one of these.
type Store struct {
	surfaces []Surface
	curves   []Curve3
}

func NewStore() *Store {
	return &Store{}
}

// AddSurface appends s and returns its new id.
func (s *Store) AddSurface(surf Surface) SurfaceID {
	s.surfaces = append(s.surfaces, surf)
	return SurfaceID(len(s.surfaces) - 1)
}

// SetSurface replaces the surface at id in place, used when a solid-level
// transform rewrites every surface's local frame without reallocating ids.
func (s *Store) SetSurface(id SurfaceID, surf Surface) {
	s.surfaces[id] = surf
}

// Surface returns the surface at id.
func (s *Store) Surface(id SurfaceID) Surface {
	return s.surfaces[id]
}

// NumSurfaces returns the count of surfaces ever allocated.
func (s *Store) NumSurfaces() int {
	return len(s.surfaces)
}

// AddCurve appends c and returns its new id.
func (s *Store) AddCurve(c Curve3) CurveID {
	s.curves = append(s.curves, c)
	return CurveID(len(s.curves) - 1)
}

// Curve returns the curve at id.
func (s *Store) Curve(id CurveID) Curve3 {
	return s.curves[id]
}

// NumCurves returns the count of curves ever allocated.
func (s *Store) NumCurves() int {
	return len(s.curves)
}

// Clone deep-copies the store. Surface and Curve3 values are themselves
// immutable value types (or interfaces over them), so a shallow slice copy
// is sufficient.
func (s *Store) Clone() *Store {
	out := &Store{
		surfaces: make([]Surface, len(s.surfaces)),
		curves:   make([]Curve3, len(s.curves)),
	}
	copy(out.surfaces, s.surfaces)
	copy(out.curves, s.curves)
	return out
}
