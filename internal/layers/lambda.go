package layers

import (
	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/shape"
)

// LambdaConfig configures a Lambda layer wrapping an arbitrary tensor
// transformation.
type LambdaConfig struct {
	// Func is the wrapped transformation. Required.
	Func func(framework.Tensor) (framework.Tensor, error)

	// OutputShape optionally declares the per-sample output shape. When
	// absent, frameworks infer it by invoking Func.
	OutputShape shape.Shape

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

func (c LambdaConfig) validate() error {
	if c.Func == nil {
		return &ConfigError{Layer: "lambda", Field: "Func", Reason: "required"}
	}
	return nil
}

// Lambda constructs a layer from an arbitrary tensor function and composes
// it at x.
func Lambda(fw Framework, x any, cfg LambdaConfig) (any, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layer, err := fw.Lambda(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
