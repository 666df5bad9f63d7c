package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// MaskingConfig configures a Masking layer.
type MaskingConfig struct {
	// MaskValue is the per-feature value marking a timestep as masked.
	// The default of 0 matches the framework default.
	MaskValue float64

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

// Masking constructs a layer that masks timesteps whose features all equal
// MaskValue, and composes it at x.
func Masking(fw Framework, x any, cfg MaskingConfig) (any, error) {
	layer, err := fw.Masking(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
