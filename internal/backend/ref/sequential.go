package ref

import (
	"fmt"
	"strings"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/shape"
)

// Sequential is the reference sequential container: an ordered, mutable
// list of layers appended to in place. It is owned by the caller and
// assumes a single goroutine of graph construction.
type Sequential struct {
	layers []framework.Layer
}

// Add appends a layer to the container.
func (s *Sequential) Add(l framework.Layer) {
	s.layers = append(s.layers, l)
}

// Len returns the number of layers.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at index i.
//
// Panics if i is out of bounds.
func (s *Sequential) Layer(i int) framework.Layer {
	if i < 0 || i >= len(s.layers) {
		panic("ref: Sequential.Layer: index out of bounds")
	}
	return s.layers[i]
}

// inputShape determines the model's batch-inclusive input shape from the
// first layer's declared per-sample input shape.
func (s *Sequential) inputShape() (shape.Shape, error) {
	if len(s.layers) == 0 {
		return shape.Shape{}, fmt.Errorf("ref: model is empty")
	}
	first, ok := s.layers[0].(refLayer)
	if !ok {
		return shape.Shape{}, fmt.Errorf("ref: first layer %s is not a ref layer", s.layers[0].Name())
	}
	declared := first.declaredInputShape()
	if declared.IsAbsent() {
		return shape.Shape{}, fmt.Errorf("ref: model input shape is unknown; declare InputShape on the first layer")
	}
	return declared.WithBatch(), nil
}

// OutputShape chains shape inference through every layer, starting from
// the first layer's declared input shape.
func (s *Sequential) OutputShape() (shape.Shape, error) {
	cur, err := s.inputShape()
	if err != nil {
		return shape.Shape{}, err
	}
	for _, l := range s.layers {
		cur, err = l.OutputShape(cur)
		if err != nil {
			return shape.Shape{}, err
		}
	}
	return cur, nil
}

// Predict evaluates the model on a concrete input.
func (s *Sequential) Predict(v *Value) (*Value, error) {
	if len(s.layers) == 0 {
		return nil, fmt.Errorf("ref: model is empty")
	}
	var cur framework.Tensor = v
	for _, l := range s.layers {
		out, err := l.Apply(cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}
	res, ok := cur.(*Value)
	if !ok {
		return nil, fmt.Errorf("ref: prediction produced %T, want *ref.Value", cur)
	}
	return res, nil
}

// Summary renders one line per layer with its inferred output shape.
func (s *Sequential) Summary() string {
	var b strings.Builder
	cur, err := s.inputShape()
	for _, l := range s.layers {
		out := "?"
		if err == nil {
			cur, err = l.OutputShape(cur)
			if err == nil {
				out = cur.String()
			}
		}
		kind := "layer"
		if rl, ok := l.(interface{ Kind() string }); ok {
			kind = rl.Kind()
		}
		fmt.Fprintf(&b, "%-24s %-24s %s\n", l.Name(), "("+kind+")", out)
	}
	return b.String()
}
