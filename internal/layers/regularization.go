package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// ActivityRegularizationConfig configures an ActivityRegularization layer.
type ActivityRegularizationConfig struct {
	// L1 is the L1 regularization factor. Non-negative.
	L1 float64

	// L2 is the L2 regularization factor. Non-negative.
	L2 float64

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

func (c ActivityRegularizationConfig) validate() error {
	if c.L1 < 0 {
		return &ConfigError{Layer: "activity_regularization", Field: "L1", Reason: "must be non-negative"}
	}
	if c.L2 < 0 {
		return &ConfigError{Layer: "activity_regularization", Field: "L2", Reason: "must be non-negative"}
	}
	return nil
}

// ActivityRegularization constructs an identity layer that contributes an
// activity-based penalty to the training loss, and composes it at x.
func ActivityRegularization(fw Framework, x any, cfg ActivityRegularizationConfig) (any, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layer, err := fw.ActivityRegularization(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
