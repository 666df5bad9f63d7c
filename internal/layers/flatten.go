package layers

import (
	"github.com/strata-ml/strata/internal/shape"
)

// FlattenConfig configures a Flatten layer.
type FlattenConfig struct {
	// InputShape optionally declares the per-sample input shape when this
	// is the first layer of a sequential model.
	InputShape shape.Shape

	// Name optionally names the layer; frameworks auto-name when empty.
	Name string
}

// Flatten constructs a layer that collapses all non-batch dimensions into
// one, and composes it at x.
func Flatten(fw Framework, x any, cfg FlattenConfig) (any, error) {
	layer, err := fw.Flatten(cfg)
	if err != nil {
		return nil, err
	}
	return Compose(x, layer)
}
