package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// DropoutConfig configures a Dropout layer.
type DropoutConfig struct {
	// Rate is the fraction of input units dropped during training, in
	// [0, 1).
	Rate float64

	// Seed optionally fixes the dropout mask RNG for reproducibility.
	// Zero leaves seeding to the framework.
	Seed int64

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

func (c DropoutConfig) validate() error {
	if c.Rate < 0 || c.Rate >= 1 {
		return &ConfigError{Layer: "dropout", Field: "Rate", Reason: "must be in [0, 1)"}
	}
	return nil
}

// Dropout constructs a layer that randomly zeroes inputs during training
// (identity at inference) and composes it at x.
func Dropout(fw Framework, x any, cfg DropoutConfig) (any, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layer, err := fw.Dropout(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
