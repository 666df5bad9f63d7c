package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// RepeatVectorConfig configures a RepeatVector layer.
type RepeatVectorConfig struct {
	// N is the repetition count. Required, positive.
	N int

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

func (c RepeatVectorConfig) validate() error {
	if c.N <= 0 {
		return &ConfigError{Layer: "repeat_vector", Field: "N", Reason: "must be positive"}
	}
	return nil
}

// RepeatVector constructs a layer that repeats a 2D input N times along a
// new axis, turning [batch, d] into [batch, N, d], and composes it at x.
func RepeatVector(fw Framework, x any, cfg RepeatVectorConfig) (any, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layer, err := fw.RepeatVector(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
