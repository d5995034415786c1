package threemf

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/primitives"
	"github.com/solidkit/brep/internal/brep/tessellate"
)

func TestWriteProducesNonEmptyPackage(t *testing.T) {
	box := primitives.Box(10, 10, 10, geomath.DefaultTolerance())
	mesh := tessellate.Brep(box, 4)

	var buf bytes.Buffer
	err := Write(&buf, mesh, uuid.New(), "test-box")
	require.NoError(t, err)
	assert.NotEmpty(t, buf.Bytes())
}
