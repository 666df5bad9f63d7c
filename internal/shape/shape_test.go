package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_AbsentPreserved(t *testing.T) {
	s, err := Normalize(nil)
	require.NoError(t, err)

	assert.True(t, s.IsAbsent())
	assert.True(t, s.Equal(Absent()))
	// Absent must never collapse into a present empty sequence.
	assert.False(t, s.Equal(Scalar()))
}

func TestNormalize_EmptyIsScalar(t *testing.T) {
	s, err := Normalize([]any{})
	require.NoError(t, err)

	assert.False(t, s.IsAbsent())
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.NumElements())
}

func TestNormalize_Elements(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   []int
	}{
		{"ints", []any{3, 4}, []int{3, 4}},
		{"nil marker keeps its position", []any{nil, 32}, []int{Unknown, 32}},
		{"unknown constant passes through", []any{Unknown, 32}, []int{Unknown, 32}},
		{"floats truncate", []any{32.9, 7.1}, []int{32, 7}},
		{"mixed integer kinds", []any{int64(5), int32(6), uint8(7)}, []int{5, 6, 7}},
		{"trailing marker", []any{10, nil}, []int{10, Unknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Normalize(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Dims())
		})
	}
}

func TestNormalize_ConversionErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		index  int
	}{
		{"string", []any{"32"}, 0},
		{"bool", []any{4, true}, 1},
		{"zero", []any{0}, 0},
		{"negative", []any{3, -2}, 1},
		{"nested slice", []any{[]int{3}}, 0},
		{"nan", []any{3, math.NaN()}, 1},
		{"inf", []any{math.Inf(1)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.values)
			require.Error(t, err)

			var convErr *ConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, tt.index, convErr.Index)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := [][]any{
		{nil, 32},
		{3, 4, 5},
		{},
		{nil},
	}
	for _, in := range inputs {
		first, err := Normalize(in)
		require.NoError(t, err)

		again := make([]any, 0, first.Rank())
		for _, d := range first.Dims() {
			again = append(again, d)
		}
		second, err := Normalize(again)
		require.NoError(t, err)

		assert.True(t, first.Equal(second), "Normalize not idempotent for %v: %v vs %v", in, first, second)
	}
}

func TestMake_PanicsOnInvalidDim(t *testing.T) {
	assert.Panics(t, func() { Make(3, 0) })
	assert.Panics(t, func() { Make(-2) })
	assert.NotPanics(t, func() { Make(Unknown, 32) })
}

func TestShape_Accessors(t *testing.T) {
	s := Make(Unknown, 28, 28)

	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, Unknown, s.Dim(0))
	assert.Equal(t, 28, s.Dim(2))
	assert.False(t, s.IsFullyDefined())
	assert.Equal(t, 1, s.CountUnknown())
	assert.Equal(t, -1, s.NumElements())
	assert.Equal(t, "[?, 28, 28]", s.String())

	full := Make(2, 3, 4)
	assert.True(t, full.IsFullyDefined())
	assert.Equal(t, 24, full.NumElements())

	assert.Equal(t, "<absent>", Absent().String())
	assert.Equal(t, -1, Absent().Rank())
}

func TestShape_DimsIsACopy(t *testing.T) {
	s := Make(3, 4)
	dims := s.Dims()
	dims[0] = 99

	assert.Equal(t, []int{3, 4}, s.Dims())
}

func TestShape_WithBatch(t *testing.T) {
	s := Make(784).WithBatch()
	assert.Equal(t, []int{Unknown, 784}, s.Dims())

	assert.Panics(t, func() { Absent().WithBatch() })
}
