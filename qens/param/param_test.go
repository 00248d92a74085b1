package param

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarBroadcast(t *testing.T) {
	p := Scalar(0.25)

	got, err := p.Broadcast("A0", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, got)
	assert.False(t, p.IsPerQ())
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 0.25, p.At(7))
}

func TestPerQBroadcast(t *testing.T) {
	src := []float64{1, 2, 3}
	p := PerQ(src...)
	src[0] = 99

	got, err := p.Broadcast("hwhm", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	got[1] = -1
	assert.Equal(t, 2.0, p.At(1), "broadcast result must not alias the parameter")
}

func TestZeroValueIsScalarZero(t *testing.T) {
	var p Param

	assert.False(t, p.IsPerQ())
	assert.Equal(t, 0.0, p.Value())

	got, err := p.Broadcast("scale", 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, got)
}

func TestShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		p    Param
		n    int
	}{
		{"too short", PerQ(1), 2},
		{"too long", PerQ(1, 2, 3), 2},
		{"empty", PerQ(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.Broadcast("A1", tt.n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShapeMismatch))

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, "A1", shapeErr.Name)
			assert.Equal(t, tt.p.Len(), shapeErr.Got)
			assert.Equal(t, tt.n, shapeErr.Want)
			assert.Contains(t, err.Error(), "A1")
		})
	}
}

func TestSingleValuePerQMatchesSingleQ(t *testing.T) {
	require.NoError(t, PerQ(0.5).Check("A0", 1))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Scalar(1).IsFinite())
	assert.False(t, Scalar(math.NaN()).IsFinite())
	assert.False(t, PerQ(1, math.Inf(1)).IsFinite())
	assert.True(t, PerQ(1, 2).IsFinite())
}

func TestValues(t *testing.T) {
	assert.Equal(t, []float64{3}, Scalar(3).Values())
	assert.Equal(t, []float64{1, 2}, PerQ(1, 2).Values())
	assert.Equal(t, 1.0, PerQ(1, 2).Value())
	assert.Equal(t, 0.0, PerQ().Value())
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.5", Scalar(1.5).String())
	assert.Equal(t, "[1 2]", PerQ(1, 2).String())
}
