package ref

import (
	"fmt"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/shape"
)

// refLayer is what every layer in this package implements on top of the
// framework.Layer surface: concrete evaluation and an optional declared
// input shape for use as the first layer of a sequential model.
type refLayer interface {
	framework.Layer
	eval(*Value) (*Value, error)
	declaredInputShape() shape.Shape
}

// baseLayer carries the fields every layer shares.
type baseLayer struct {
	name       string
	kind       string
	inputShape shape.Shape // per-sample, as declared in the config; may be absent
}

func (l *baseLayer) Name() string { return l.name }

// Kind returns the layer's kind tag, e.g. "dense".
func (l *baseLayer) Kind() string { return l.kind }

func (l *baseLayer) declaredInputShape() shape.Shape { return l.inputShape }

// apply implements functional application for any layer in this package:
// concrete tensors are evaluated, symbolic tensors are shape-inferred.
func apply(l refLayer, t framework.Tensor) (framework.Tensor, error) {
	switch in := t.(type) {
	case *Value:
		return l.eval(in)
	case *Symbol:
		out, err := l.OutputShape(in.Shape())
		if err != nil {
			return nil, err
		}
		return &Symbol{shape: out, dtype: in.DType()}, nil
	default:
		// A tensor from another framework: infer the shape, stay symbolic.
		out, err := l.OutputShape(t.Shape())
		if err != nil {
			return nil, err
		}
		return &Symbol{shape: out, dtype: t.DType()}, nil
	}
}

// requireRank checks that a batch-inclusive shape is present with the given
// rank.
func requireRank(kind string, in shape.Shape, rank int) error {
	if in.IsAbsent() {
		return fmt.Errorf("ref: %s: input shape is unknown", kind)
	}
	if in.Rank() != rank {
		return fmt.Errorf("ref: %s: expected rank-%d input (batch included), got %s", kind, rank, in)
	}
	return nil
}

// requireMinRank checks that a batch-inclusive shape is present with at
// least the given rank.
func requireMinRank(kind string, in shape.Shape, rank int) error {
	if in.IsAbsent() {
		return fmt.Errorf("ref: %s: input shape is unknown", kind)
	}
	if in.Rank() < rank {
		return fmt.Errorf("ref: %s: expected rank >= %d (batch included), got %s", kind, rank, in)
	}
	return nil
}
