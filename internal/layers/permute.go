package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// PermuteConfig configures a Permute layer.
type PermuteConfig struct {
	// Pattern is a permutation of the input's per-sample dimensions,
	// 1-indexed; the batch axis is not part of the pattern. For example
	// Pattern{2, 1} swaps the first two non-batch dimensions. Required.
	Pattern []int

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

func (c PermuteConfig) validate() error {
	if len(c.Pattern) == 0 {
		return &ConfigError{Layer: "permute", Field: "Pattern", Reason: "required"}
	}
	seen := make([]bool, len(c.Pattern))
	for _, p := range c.Pattern {
		if p < 1 || p > len(c.Pattern) {
			return &ConfigError{Layer: "permute", Field: "Pattern", Reason: "indices must cover 1..len(pattern)"}
		}
		if seen[p-1] {
			return &ConfigError{Layer: "permute", Field: "Pattern", Reason: "indices must not repeat"}
		}
		seen[p-1] = true
	}
	return nil
}

// Permute constructs a layer that reorders its input's non-batch dimensions
// and composes it at x.
func Permute(fw Framework, x any, cfg PermuteConfig) (any, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layer, err := fw.Permute(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
