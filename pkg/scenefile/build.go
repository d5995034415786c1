package scenefile

import (
	"fmt"

	"github.com/solidkit/brep/internal/brep/coordinate"
	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/model"
	"github.com/solidkit/brep/internal/brep/primitives"
)

// Build constructs every shape in scene in order and returns the named
// Result shape. Boolean shapes may reference any earlier shape by name;
// referencing a later or unknown name is an error.
func Build(scene *Scene, tol geomath.Tolerance) (*model.BRepSolid, error) {
	built := make(map[string]*model.BRepSolid, len(scene.Shapes))

	for i, spec := range scene.Shapes {
		if spec.Name == "" {
			return nil, fmt.Errorf("shape at index %d with no name", i)
		}
		if _, exists := built[spec.Name]; exists {
			return nil, fmt.Errorf("duplicate shape name %q", spec.Name)
		}

		solid, err := buildOne(spec, built, tol)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec.Name, err)
		}
		if spec.Translate != nil {
			d := *spec.Translate
			solid = solid.Transform(geomath.NewTranslation(geomath.NewPoint3(d[0], d[1], d[2])))
		}
		built[spec.Name] = solid
	}

	if scene.Result == "" {
		return nil, fmt.Errorf("scene has no result shape")
	}
	result, ok := built[scene.Result]
	if !ok {
		return nil, fmt.Errorf("result shape %q not found", scene.Result)
	}
	return result, nil
}

func buildOne(spec ShapeSpec, built map[string]*model.BRepSolid, tol geomath.Tolerance) (*model.BRepSolid, error) {
	switch {
	case spec.Box != nil:
		return primitives.Box(spec.Box.SX, spec.Box.SY, spec.Box.SZ, tol), nil
	case spec.Cylinder != nil:
		return primitives.Cylinder(spec.Cylinder.Radius, spec.Cylinder.Height, tol), nil
	case spec.Sphere != nil:
		return primitives.Sphere(spec.Sphere.Radius, tol), nil
	case spec.Cone != nil:
		return primitives.Cone(spec.Cone.RadiusBottom, spec.Cone.RadiusTop, spec.Cone.Height, tol), nil
	case spec.Boolean != nil:
		return buildBoolean(spec.Boolean, built, tol)
	default:
		return nil, fmt.Errorf("no primitive or boolean specified")
	}
}

func buildBoolean(p *BooleanParams, built map[string]*model.BRepSolid, tol geomath.Tolerance) (*model.BRepSolid, error) {
	a, ok := built[p.A]
	if !ok {
		return nil, fmt.Errorf("operand %q not yet built (must appear earlier in scene)", p.A)
	}
	b, ok := built[p.B]
	if !ok {
		return nil, fmt.Errorf("operand %q not yet built (must appear earlier in scene)", p.B)
	}

	var op coordinate.Op
	switch p.Op {
	case "union":
		op = coordinate.Union
	case "difference":
		op = coordinate.Difference
	case "intersection":
		op = coordinate.Intersection
	default:
		return nil, fmt.Errorf("unknown boolean op %q", p.Op)
	}

	opts := coordinate.DefaultOptions()
	opts.Tolerance = tol
	return coordinate.Boolean(op, a, b, opts)
}
