package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// ReshapeConfig configures a Reshape layer.
type ReshapeConfig struct {
	// TargetShape is the per-sample output shape, without the batch axis.
	// Required. At most one dimension may be Unknown; the framework infers
	// it from the number of input elements.
	TargetShape shape.Shape

	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

func (c ReshapeConfig) validate() error {
	if c.TargetShape.IsAbsent() {
		return &ConfigError{Layer: "reshape", Field: "TargetShape", Reason: "required"}
	}
	if c.TargetShape.CountUnknown() > 1 {
		return &ConfigError{Layer: "reshape", Field: "TargetShape", Reason: "at most one unknown dimension"}
	}
	return nil
}

// Reshape constructs a layer that reshapes its input (batch axis preserved)
// and composes it at x.
func Reshape(fw Framework, x any, cfg ReshapeConfig) (any, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layer, err := fw.Reshape(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
