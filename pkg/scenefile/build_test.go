package scenefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidkit/brep/internal/brep/geomath"
)

func writeScene(t *testing.T, dir, name string, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(contents), 0o644))
}

func TestLoadSceneCachesByName(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "cube", `{"shapes":[{"name":"a","box":{"sx":10,"sy":10,"sz":10}}],"result":"a"}`)

	loader := NewLoader(dir)
	first, err := loader.LoadScene("cube")
	require.NoError(t, err)
	second, err := loader.LoadScene("cube.json")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestBuildSinglePrimitive(t *testing.T) {
	scene := &Scene{
		Shapes: []ShapeSpec{{Name: "box", Box: &BoxParams{SX: 10, SY: 10, SZ: 10}}},
		Result: "box",
	}
	solid, err := Build(scene, geomath.DefaultTolerance())
	require.NoError(t, err)
	assert.NotEmpty(t, solid.Faces())
}

func TestBuildBooleanReferencingEarlierShapes(t *testing.T) {
	scene := &Scene{
		Shapes: []ShapeSpec{
			{Name: "a", Box: &BoxParams{SX: 10, SY: 10, SZ: 10}},
			{Name: "b", Box: &BoxParams{SX: 10, SY: 10, SZ: 10}, Translate: &[3]float64{100, 0, 0}},
			{Name: "u", Boolean: &BooleanParams{Op: "union", A: "a", B: "b"}},
		},
		Result: "u",
	}
	solid, err := Build(scene, geomath.DefaultTolerance())
	require.NoError(t, err)
	assert.NotEmpty(t, solid.Faces())
}

func TestBuildUnknownOperandIsError(t *testing.T) {
	scene := &Scene{
		Shapes: []ShapeSpec{
			{Name: "u", Boolean: &BooleanParams{Op: "union", A: "missing", B: "also-missing"}},
		},
		Result: "u",
	}
	_, err := Build(scene, geomath.DefaultTolerance())
	assert.Error(t, err)
}
