// Package framework defines the object model strata expects from a compute
// framework: opaque layers, symbolic tensors, and sequential containers.
//
// Strata itself performs no numerical work. Everything behind these
// interfaces belongs to the framework; strata only normalizes arguments,
// builds typed parameter records, and composes the resulting layers.
package framework

import (
	"github.com/strata-ml/strata/internal/shape"
)

// Layer is an opaque unit of computation constructed by a framework.
type Layer interface {
	// Name returns the layer's unique name within its framework.
	Name() string

	// Apply functionally applies the layer to a tensor, producing a new
	// tensor. The input tensor is not modified.
	Apply(Tensor) (Tensor, error)

	// OutputShape computes the shape the layer produces for the given
	// input shape.
	OutputShape(in shape.Shape) (shape.Shape, error)
}

// Tensor is a symbolic value flowing between layers.
type Tensor interface {
	// Shape returns the tensor's (possibly partially known) shape.
	Shape() shape.Shape

	// DType returns the tensor's element type.
	DType() DataType
}

// Sequential is an ordered, mutable container of layers representing a
// linear model under construction. Composition appends to the container in
// place; the container is owned by the caller and is not safe for
// concurrent mutation.
type Sequential interface {
	// Add appends a layer to the container.
	Add(Layer)

	// Len returns the number of layers in the container.
	Len() int

	// Layer returns the layer at the given index.
	Layer(i int) Layer

	// OutputShape returns the shape produced by the final layer, derived
	// by chaining each layer's shape inference from the model's input.
	OutputShape() (shape.Shape, error)
}
