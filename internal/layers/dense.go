package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// DenseConfig configures a fully connected layer.
//
// The zero value of every optional field keeps the framework default: linear
// activation and an additive bias.
type DenseConfig struct {
	// Units is the dimensionality of the output space. Required.
	Units int

	// Activation names the element-wise activation applied to the output.
	// Empty means linear (no activation).
	Activation string

	// NoBias disables the additive bias vector.
	NoBias bool

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

func (c DenseConfig) validate() error {
	if c.Units <= 0 {
		return &ConfigError{Layer: "dense", Field: "Units", Reason: "must be positive"}
	}
	return nil
}

// Dense constructs a fully connected layer and composes it at x.
func Dense(fw Framework, x any, cfg DenseConfig) (any, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layer, err := fw.Dense(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
