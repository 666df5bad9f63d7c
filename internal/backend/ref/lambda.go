package ref

import (
	"fmt"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
	"github.com/strata-ml/strata/internal/shape"
)

// Lambda wraps an arbitrary tensor transformation as a layer.
type Lambda struct {
	baseLayer
	fn          func(framework.Tensor) (framework.Tensor, error)
	outputShape shape.Shape // per-sample; absent means infer by calling fn
}

// Lambda implements the constructor for the lambda layer.
func (f *Framework) Lambda(cfg layers.LambdaConfig) (framework.Layer, error) {
	return &Lambda{
		baseLayer: baseLayer{
			name:       f.uniqueName("lambda", cfg.Name),
			kind:       "lambda",
			inputShape: cfg.InputShape,
		},
		fn:          cfg.Func,
		outputShape: cfg.OutputShape,
	}, nil
}

// OutputShape uses the declared per-sample output shape when present, and
// otherwise infers by invoking the wrapped function on a symbolic tensor.
func (l *Lambda) OutputShape(in shape.Shape) (shape.Shape, error) {
	if err := requireMinRank(l.kind, in, 1); err != nil {
		return shape.Shape{}, err
	}
	if !l.outputShape.IsAbsent() {
		out := append([]int{in.Dim(0)}, l.outputShape.Dims()...)
		return shape.Make(out...), nil
	}
	res, err := l.fn(&Symbol{shape: in})
	if err != nil {
		return shape.Shape{}, fmt.Errorf("ref: lambda %s: shape inference: %w", l.name, err)
	}
	return res.Shape(), nil
}

// Apply implements framework.Layer.
func (l *Lambda) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *Lambda) eval(v *Value) (*Value, error) {
	res, err := l.fn(v)
	if err != nil {
		return nil, err
	}
	out, ok := res.(*Value)
	if !ok {
		return nil, fmt.Errorf("ref: lambda %s: function returned %T, want *ref.Value", l.name, res)
	}
	return out, nil
}
