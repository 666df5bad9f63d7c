package ref

import (
	"fmt"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/shape"
)

// Symbol is a symbolic tensor: a shape and an element type, with no data.
// Applying a layer to a Symbol performs shape inference only.
type Symbol struct {
	name  string
	shape shape.Shape
	dtype framework.DataType
}

// Name returns the symbol's name, when it originated from an Input layer.
func (s *Symbol) Name() string { return s.name }

// Shape returns the symbol's (possibly partially known) shape.
func (s *Symbol) Shape() shape.Shape { return s.shape }

// DType returns the symbol's element type.
func (s *Symbol) DType() framework.DataType { return s.dtype }

// Value is a concrete tensor: a fully defined shape and row-major float64
// data. Applying a layer to a Value evaluates the layer.
type Value struct {
	shape shape.Shape
	dtype framework.DataType
	data  []float64
}

// NewValue creates a concrete tensor with the default Float32 element type.
// The shape must be fully defined and match the data length.
func NewValue(data []float64, s shape.Shape) (*Value, error) {
	return NewTypedValue(data, s, framework.Float32)
}

// NewTypedValue creates a concrete tensor with an explicit element type.
func NewTypedValue(data []float64, s shape.Shape, dt framework.DataType) (*Value, error) {
	if !s.IsFullyDefined() {
		return nil, fmt.Errorf("ref: value shape %s must be fully defined", s)
	}
	if len(data) != s.NumElements() {
		return nil, fmt.Errorf("ref: %d data elements do not fit shape %s (%d elements)", len(data), s, s.NumElements())
	}
	return &Value{shape: s, dtype: dt, data: data}, nil
}

// Shape returns the tensor's shape.
func (v *Value) Shape() shape.Shape { return v.shape }

// DType returns the tensor's element type.
func (v *Value) DType() framework.DataType { return v.dtype }

// Data returns the underlying row-major data. The slice is shared, not
// copied.
func (v *Value) Data() []float64 { return v.data }

// Bytes encodes the tensor's data in its element type, little-endian.
func (v *Value) Bytes() []byte {
	return framework.EncodeValues(v.dtype, v.data)
}

// ValueFromBytes decodes little-endian bytes of the given element type into
// a concrete tensor.
func ValueFromBytes(data []byte, s shape.Shape, dt framework.DataType) (*Value, error) {
	values, err := framework.DecodeValues(dt, data)
	if err != nil {
		return nil, err
	}
	return NewTypedValue(values, s, dt)
}

// withData returns a new Value sharing v's element type.
func (v *Value) withData(data []float64, s shape.Shape) *Value {
	return &Value{shape: s, dtype: v.dtype, data: data}
}
