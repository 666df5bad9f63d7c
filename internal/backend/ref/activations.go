package ref

import (
	"fmt"
	"math"
)

// activationFunc applies an activation in place over a batch of rows.
type activationFunc func(data []float64, rowLen int)

// activations maps activation names to their implementations. Softmax
// normalizes over the trailing axis; everything else is element-wise.
var activations = map[string]activationFunc{
	"linear": func([]float64, int) {},
	"relu": elementWise(func(x float64) float64 {
		return math.Max(0, x)
	}),
	"sigmoid": elementWise(func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	}),
	"tanh": elementWise(math.Tanh),
	"softmax": func(data []float64, rowLen int) {
		if rowLen <= 0 {
			rowLen = len(data)
		}
		for start := 0; start < len(data); start += rowLen {
			row := data[start : start+rowLen]
			maxV := math.Inf(-1)
			for _, x := range row {
				maxV = math.Max(maxV, x)
			}
			sum := 0.0
			for i, x := range row {
				row[i] = math.Exp(x - maxV)
				sum += row[i]
			}
			for i := range row {
				row[i] /= sum
			}
		}
	},
}

func elementWise(f func(float64) float64) activationFunc {
	return func(data []float64, _ int) {
		for i, x := range data {
			data[i] = f(x)
		}
	}
}

// lookupActivation resolves an activation name; empty means linear.
func lookupActivation(name string) (activationFunc, error) {
	if name == "" {
		name = "linear"
	}
	f, ok := activations[name]
	if !ok {
		return nil, fmt.Errorf("ref: unknown activation %q", name)
	}
	return f, nil
}
