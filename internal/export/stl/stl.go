// Package stl writes a tessellated B-rep solid as a binary STL file.
package stl

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/solidkit/brep/internal/brep/tessellate"
)

// headerSize is the format's fixed 80-byte comment field; the header is
// zero-padded to it.
const headerSize = 80

// Write encodes mesh as binary STL (little-endian, the de facto standard
// most consumers expect) to w.
func Write(w io.Writer, mesh *tessellate.Mesh, comment string) error {
	header := make([]byte, headerSize)
	copy(header, comment)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("stl: writing header: %w", err)
	}

	n := uint32(mesh.NumTriangles())
	if err := binary.Write(w, binary.LittleEndian, n); err != nil {
		return fmt.Errorf("stl: writing triangle count: %w", err)
	}

	for t := 0; t < mesh.NumTriangles(); t++ {
		i0, i1, i2 := mesh.Indices[t*3], mesh.Indices[t*3+1], mesh.Indices[t*3+2]
		// Every vertex of a flat-shaded triangle carries the same normal;
		// the first is representative for the facet record.
		nx, ny, nz := mesh.Normals[i0*3], mesh.Normals[i0*3+1], mesh.Normals[i0*3+2]

		values := []float32{
			nx, ny, nz,
			mesh.Positions[i0*3], mesh.Positions[i0*3+1], mesh.Positions[i0*3+2],
			mesh.Positions[i1*3], mesh.Positions[i1*3+1], mesh.Positions[i1*3+2],
			mesh.Positions[i2*3], mesh.Positions[i2*3+1], mesh.Positions[i2*3+2],
		}
		for _, v := range values {
			if err := binary.Write(w, binary.LittleEndian, v); err != nil {
				return fmt.Errorf("stl: writing facet %d: %w", t, err)
			}
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("stl: writing facet %d attribute bytes: %w", t, err)
		}
	}
	return nil
}
