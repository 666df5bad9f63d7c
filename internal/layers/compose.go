package layers

import (
	"github.com/strata-ml/strata/internal/framework"
)

// Compose attaches a freshly constructed layer at the graph position x.
//
// The accepted variants of x are:
//
//   - nil: the layer is returned standalone, ready to start a new graph
//   - framework.Sequential: the layer is appended in place and the same
//     container is returned, so callers can keep chaining against it
//   - framework.Tensor: the layer is functionally applied, producing a new
//     tensor; the input tensor is not modified
//
// Any other value fails with an *InvalidArgumentError. Errors raised by the
// container or the layer itself propagate unchanged.
func Compose(x any, layer framework.Layer) (any, error) {
	switch pos := x.(type) {
	case nil:
		return layer, nil
	case framework.Sequential:
		pos.Add(layer)
		return pos, nil
	case framework.Tensor:
		return layer.Apply(pos)
	default:
		return nil, &InvalidArgumentError{Value: x}
	}
}
