// Package threemf writes a tessellated B-rep solid as a 3MF model, the
// textured successor to STL most slicers and CAD viewers also accept.
package threemf

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/hpinc/go3mf"

	"github.com/solidkit/brep/internal/brep/tessellate"
)

// Write encodes mesh as a single-object 3MF package to w, stamping id (the
// solid's identity) into the model's metadata so downstream tooling can
// trace the package back to its source solid.
func Write(w io.Writer, mesh *tessellate.Mesh, id uuid.UUID, name string) error {
	model := &go3mf.Model{
		Units:    go3mf.UnitMillimeter,
		Language: "en-US",
	}
	model.Metadata = append(model.Metadata, go3mf.Metadata{
		Name:  "solidkit:sourceID",
		Value: id.String(),
	})

	mesh3mf := &go3mf.Mesh{}
	for i := 0; i < len(mesh.Positions)/3; i++ {
		mesh3mf.Vertices.Vertex = append(mesh3mf.Vertices.Vertex, go3mf.Point3D{
			mesh.Positions[i*3], mesh.Positions[i*3+1], mesh.Positions[i*3+2],
		})
	}
	for t := 0; t < mesh.NumTriangles(); t++ {
		mesh3mf.Triangles.Triangle = append(mesh3mf.Triangles.Triangle, go3mf.Triangle{
			V1: int(mesh.Indices[t*3]),
			V2: int(mesh.Indices[t*3+1]),
			V3: int(mesh.Indices[t*3+2]),
		})
	}

	const objectID = 1
	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID:   objectID,
		Name: name,
		Mesh: mesh3mf,
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{
		ObjectID: objectID,
	})

	if err := go3mf.NewEncoder(w).Encode(model); err != nil {
		return fmt.Errorf("threemf: encoding model: %w", err)
	}
	return nil
}
