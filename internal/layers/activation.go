package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// ActivationConfig configures a standalone Activation layer.
type ActivationConfig struct {
	// Activation names the element-wise activation to apply. Required.
	Activation string

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

func (c ActivationConfig) validate() error {
	if c.Activation == "" {
		return &ConfigError{Layer: "activation", Field: "Activation", Reason: "required"}
	}
	return nil
}

// Activation constructs a layer applying an element-wise activation and
// composes it at x.
func Activation(fw Framework, x any, cfg ActivationConfig) (any, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layer, err := fw.Activation(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
