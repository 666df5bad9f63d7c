package layers

import (
	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/shape"
)

// InputConfig configures an Input layer.
//
// Exactly one of Shape and BatchShape must be present. Shape excludes the
// batch axis (the framework prepends an unknown batch dimension);
// BatchShape includes it.
type InputConfig struct {
	// Shape is the per-sample shape, without the batch axis.
	Shape shape.Shape

	// BatchShape is the full shape including the batch axis, for models
	// that fix their batch size.
	BatchShape shape.Shape

	// DType is the element type of the tensor. The zero value is the
	// default, Float32.
	DType framework.DataType

	// Name optionally names the tensor; frameworks auto-name when empty.
	Name string
}

func (c InputConfig) validate() error {
	if c.Shape.IsAbsent() && c.BatchShape.IsAbsent() {
		return &ConfigError{Layer: "input", Field: "Shape", Reason: "one of Shape or BatchShape is required"}
	}
	if !c.Shape.IsAbsent() && !c.BatchShape.IsAbsent() {
		return &ConfigError{Layer: "input", Field: "Shape", Reason: "Shape and BatchShape are mutually exclusive"}
	}
	return nil
}

// Input creates a symbolic tensor to start a functional graph. Unlike the
// layer constructors it takes no graph position: the returned tensor is the
// graph position for whatever comes next.
func Input(fw Framework, cfg InputConfig) (framework.Tensor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return fw.Input(cfg)
}
