package layers

import (
	"github.com/strata-ml/strata/internal/framework"
)

// Framework is the constructor surface strata requires from a compute
// framework. Each method receives a validated, typed parameter record and
// returns an opaque layer (or, for Input, a symbolic tensor).
//
// Errors returned by a Framework propagate to the binding's caller
// unchanged; strata performs no translation or recovery.
type Framework interface {
	// Input creates a symbolic entry-point tensor for a functional graph.
	Input(cfg InputConfig) (framework.Tensor, error)

	// Layer constructors.
	Dense(cfg DenseConfig) (framework.Layer, error)
	Reshape(cfg ReshapeConfig) (framework.Layer, error)
	Permute(cfg PermuteConfig) (framework.Layer, error)
	RepeatVector(cfg RepeatVectorConfig) (framework.Layer, error)
	Lambda(cfg LambdaConfig) (framework.Layer, error)
	ActivityRegularization(cfg ActivityRegularizationConfig) (framework.Layer, error)
	Masking(cfg MaskingConfig) (framework.Layer, error)
	Flatten(cfg FlattenConfig) (framework.Layer, error)
	Activation(cfg ActivationConfig) (framework.Layer, error)
	Dropout(cfg DropoutConfig) (framework.Layer, error)

	// NewSequential creates an empty sequential container.
	NewSequential() framework.Sequential
}
