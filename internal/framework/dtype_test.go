package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataType_Defaults(t *testing.T) {
	var dt DataType
	assert.Equal(t, Float32, dt, "zero value must be the documented Float32 default")
}

func TestDataType_SizeAndString(t *testing.T) {
	tests := []struct {
		dt   DataType
		size int
		name string
	}{
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
		{Float16, 2, "float16"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dt.Size())
		assert.Equal(t, tt.name, tt.dt.String())

		parsed, err := ParseDataType(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.dt, parsed)
	}

	_, err := ParseDataType("complex128")
	assert.Error(t, err)
}

func TestEncodeDecodeValues_RoundTrip(t *testing.T) {
	// Values exactly representable in every type they are paired with;
	// the float set fits half precision, the int set has no fraction.
	cases := map[DataType][]float64{
		Float32: {0, 1, -1, 0.5, 1024},
		Float64: {0, 1, -1, 0.5, 1024},
		Float16: {0, 1, -1, 0.5, 1024},
		Int32:   {0, 1, -1, 7, 1024},
		Int64:   {0, 1, -1, 7, 1024},
	}
	for dt, values := range cases {
		t.Run(dt.String(), func(t *testing.T) {
			encoded := EncodeValues(dt, values)
			assert.Equal(t, len(values)*dt.Size(), len(encoded))

			decoded, err := DecodeValues(dt, encoded)
			require.NoError(t, err)
			assert.Equal(t, values, decoded)
		})
	}
}

func TestDecodeValues_BadLength(t *testing.T) {
	_, err := DecodeValues(Float32, []byte{1, 2, 3})
	assert.Error(t, err)
}
