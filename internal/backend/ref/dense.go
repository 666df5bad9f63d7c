package ref

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
	"github.com/strata-ml/strata/internal/shape"
)

// Dense is the reference fully connected layer: y = x @ W + b followed by
// the configured activation. The kernel has shape [in_features, units] and
// is built lazily on the first evaluation, once the input width is known.
type Dense struct {
	baseLayer
	units   int
	actName string
	act     activationFunc
	noBias  bool
	seed    int64

	kernel *mat.Dense
	bias   []float64
}

// Dense implements the fully connected layer constructor.
func (f *Framework) Dense(cfg layers.DenseConfig) (framework.Layer, error) {
	act, err := lookupActivation(cfg.Activation)
	if err != nil {
		return nil, err
	}
	return &Dense{
		baseLayer: baseLayer{
			name:       f.uniqueName("dense", cfg.Name),
			kind:       "dense",
			inputShape: cfg.InputShape,
		},
		units:   cfg.Units,
		actName: cfg.Activation,
		act:     act,
		noBias:  cfg.NoBias,
		seed:    f.layerSeed(),
	}, nil
}

// OutputShape replaces the trailing dimension with the unit count.
func (l *Dense) OutputShape(in shape.Shape) (shape.Shape, error) {
	if err := requireMinRank(l.kind, in, 2); err != nil {
		return shape.Shape{}, err
	}
	dims := in.Dims()
	dims[len(dims)-1] = l.units
	return shape.Make(dims...), nil
}

// Apply implements framework.Layer.
func (l *Dense) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

// Units returns the configured output width.
func (l *Dense) Units() int { return l.units }

// Activation returns the configured activation name; empty means linear.
func (l *Dense) Activation() string { return l.actName }

// HasBias reports whether the layer carries an additive bias.
func (l *Dense) HasBias() bool { return !l.noBias }

// SetWeights replaces the kernel (rows = input features, columns = units)
// and bias. A nil bias is required when the layer was built without one.
func (l *Dense) SetWeights(kernel [][]float64, bias []float64) error {
	if len(kernel) == 0 || len(kernel[0]) != l.units {
		return fmt.Errorf("ref: dense %s: kernel must be [in_features][%d]", l.name, l.units)
	}
	in := len(kernel)
	flat := make([]float64, 0, in*l.units)
	for _, row := range kernel {
		if len(row) != l.units {
			return fmt.Errorf("ref: dense %s: ragged kernel row", l.name)
		}
		flat = append(flat, row...)
	}
	switch {
	case l.noBias && bias != nil:
		return fmt.Errorf("ref: dense %s: layer has no bias", l.name)
	case !l.noBias && len(bias) != l.units:
		return fmt.Errorf("ref: dense %s: bias must have %d elements", l.name, l.units)
	}
	l.kernel = mat.NewDense(in, l.units, flat)
	l.bias = bias
	return nil
}

// buildParams initializes the kernel with Glorot-uniform values and the
// bias with zeros, using the layer's reproducible seed.
func (l *Dense) buildParams(in int) {
	rng := rand.New(rand.NewSource(l.seed))
	bound := math.Sqrt(6.0 / float64(in+l.units))
	flat := make([]float64, in*l.units)
	for i := range flat {
		flat[i] = (rng.Float64()*2 - 1) * bound
	}
	l.kernel = mat.NewDense(in, l.units, flat)
	if !l.noBias {
		l.bias = make([]float64, l.units)
	}
}

func (l *Dense) eval(v *Value) (*Value, error) {
	if err := requireRank(l.kind, v.Shape(), 2); err != nil {
		return nil, err
	}
	batch, in := v.Shape().Dim(0), v.Shape().Dim(1)
	if l.kernel == nil {
		l.buildParams(in)
	}
	rows, _ := l.kernel.Dims()
	if rows != in {
		return nil, fmt.Errorf("ref: dense %s: built for %d input features, got %d", l.name, rows, in)
	}

	x := mat.NewDense(batch, in, v.Data())
	out := mat.NewDense(batch, l.units, nil)
	out.Mul(x, l.kernel)

	data := out.RawMatrix().Data
	if l.bias != nil {
		for r := 0; r < batch; r++ {
			row := data[r*l.units : (r+1)*l.units]
			for c := range row {
				row[c] += l.bias[c]
			}
		}
	}
	l.act(data, l.units)

	return v.withData(data, shape.Make(batch, l.units)), nil
}
