package geomath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTolerance(t *testing.T) {
	tol := DefaultTolerance()
	assert.Equal(t, 1e-6, tol.Linear)
	assert.Equal(t, 1e-9, tol.Angular)
}

func TestPointsEqual(t *testing.T) {
	tol := DefaultTolerance()
	a := NewPoint3(0, 0, 0)
	b := NewPoint3(1e-7, 0, 0)
	assert.True(t, tol.PointsEqual(a, b))

	c := NewPoint3(1e-3, 0, 0)
	assert.False(t, tol.PointsEqual(a, c))
}

func TestUnitVector3Degenerate(t *testing.T) {
	_, err := NewUnitVector3(NewPoint3(0, 0, 0), DefaultTolerance())
	require.ErrorIs(t, err, ErrDegenerateDirection)
}

func TestUnitVector3Normalizes(t *testing.T) {
	u, err := NewUnitVector3(NewPoint3(3, 0, 0), DefaultTolerance())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Vec().Len(), 1e-12)
}

func TestTransformComposeTranslateThenRotate(t *testing.T) {
	translate := NewTranslation(NewPoint3(1, 0, 0))
	rotate := NewRotation(NewPoint3(0, 0, 1), 1.5707963267948966) // 90 deg about Z
	combined := translate.Compose(rotate)

	p := combined.Apply(NewPoint3(0, 0, 0))
	assert.InDelta(t, 0.0, p[0], 1e-9)
	assert.InDelta(t, 1.0, p[1], 1e-9)
}

func TestTransformDeterminantMirror(t *testing.T) {
	mirror := NewUniformScale(-1)
	assert.Less(t, mirror.Determinant(), 0.0)

	identity := Identity()
	assert.InDelta(t, 1.0, identity.Determinant(), 1e-12)
}

func TestQuantizeKeyStableForNearbyPoints(t *testing.T) {
	a := NewPoint3(1.0000000001, 2.0, 3.0)
	b := NewPoint3(1.0000000002, 2.0, 3.0)
	assert.Equal(t, QuantizeKey(a, 1e-6), QuantizeKey(b, 1e-6))
}

func TestVolumeTolerance(t *testing.T) {
	tol := DefaultTolerance()
	vt := tol.VolumeTolerance(1000, 500)
	assert.InDelta(t, 100*1e-12*1000, vt, 1e-15)
}
