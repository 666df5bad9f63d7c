package ref

import (
	"fmt"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
	"github.com/strata-ml/strata/internal/shape"
)

// Flatten collapses all non-batch dimensions into one.
type Flatten struct {
	baseLayer
}

// Flatten implements the constructor for the flatten layer.
func (f *Framework) Flatten(cfg layers.FlattenConfig) (framework.Layer, error) {
	return &Flatten{
		baseLayer: baseLayer{
			name:       f.uniqueName("flatten", cfg.Name),
			kind:       "flatten",
			inputShape: cfg.InputShape,
		},
	}, nil
}

// OutputShape turns [batch, d1, ..., dn] into [batch, d1*...*dn].
func (l *Flatten) OutputShape(in shape.Shape) (shape.Shape, error) {
	if err := requireMinRank(l.kind, in, 1); err != nil {
		return shape.Shape{}, err
	}
	dims := in.Dims()
	flat := 1
	for _, d := range dims[1:] {
		if d == shape.Unknown {
			flat = shape.Unknown
			break
		}
		flat *= d
	}
	return shape.Make(dims[0], flat), nil
}

// Apply implements framework.Layer.
func (l *Flatten) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *Flatten) eval(v *Value) (*Value, error) {
	out, err := l.OutputShape(v.Shape())
	if err != nil {
		return nil, err
	}
	return v.withData(v.Data(), out), nil
}

// Reshape rearranges the non-batch dimensions without touching the data.
type Reshape struct {
	baseLayer
	target shape.Shape // per-sample, at most one Unknown
}

// Reshape implements the constructor for the reshape layer.
func (f *Framework) Reshape(cfg layers.ReshapeConfig) (framework.Layer, error) {
	return &Reshape{
		baseLayer: baseLayer{
			name:       f.uniqueName("reshape", cfg.Name),
			kind:       "reshape",
			inputShape: cfg.InputShape,
		},
		target: cfg.TargetShape,
	}, nil
}

// OutputShape resolves the target against the input's per-sample element
// count, inferring a single Unknown target dimension when possible.
func (l *Reshape) OutputShape(in shape.Shape) (shape.Shape, error) {
	if err := requireMinRank(l.kind, in, 1); err != nil {
		return shape.Shape{}, err
	}
	dims := in.Dims()
	sample := 1
	for _, d := range dims[1:] {
		if d == shape.Unknown {
			sample = shape.Unknown
			break
		}
		sample *= d
	}

	target := l.target.Dims()
	known := 1
	unknownAt := -1
	for i, d := range target {
		if d == shape.Unknown {
			unknownAt = i
			continue
		}
		known *= d
	}

	out := append([]int{dims[0]}, target...)
	switch {
	case unknownAt < 0:
		if sample != shape.Unknown && sample != known {
			return shape.Shape{}, fmt.Errorf("ref: reshape %s: cannot reshape %d elements into %s", l.name, sample, l.target)
		}
	case sample == shape.Unknown:
		// Leave the unknown dimension unresolved.
	default:
		if sample%known != 0 {
			return shape.Shape{}, fmt.Errorf("ref: reshape %s: cannot infer unknown dimension of %s from %d elements", l.name, l.target, sample)
		}
		out[1+unknownAt] = sample / known
	}
	return shape.Make(out...), nil
}

// Apply implements framework.Layer.
func (l *Reshape) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *Reshape) eval(v *Value) (*Value, error) {
	out, err := l.OutputShape(v.Shape())
	if err != nil {
		return nil, err
	}
	return v.withData(v.Data(), out), nil
}

// Permute reorders the non-batch dimensions according to a 1-indexed
// pattern.
type Permute struct {
	baseLayer
	pattern []int
}

// Permute implements the constructor for the permute layer.
func (f *Framework) Permute(cfg layers.PermuteConfig) (framework.Layer, error) {
	pattern := make([]int, len(cfg.Pattern))
	copy(pattern, cfg.Pattern)
	return &Permute{
		baseLayer: baseLayer{
			name:       f.uniqueName("permute", cfg.Name),
			kind:       "permute",
			inputShape: cfg.InputShape,
		},
		pattern: pattern,
	}, nil
}

// OutputShape maps dimension i to the pattern's i-th source dimension.
func (l *Permute) OutputShape(in shape.Shape) (shape.Shape, error) {
	if err := requireRank(l.kind, in, len(l.pattern)+1); err != nil {
		return shape.Shape{}, err
	}
	dims := in.Dims()
	out := make([]int, len(dims))
	out[0] = dims[0]
	for i, p := range l.pattern {
		out[i+1] = dims[p]
	}
	return shape.Make(out...), nil
}

// Apply implements framework.Layer.
func (l *Permute) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *Permute) eval(v *Value) (*Value, error) {
	out, err := l.OutputShape(v.Shape())
	if err != nil {
		return nil, err
	}

	// Row-major transpose over the full (batch-inclusive) axis order.
	inDims := v.Shape().Dims()
	axes := make([]int, len(inDims))
	axes[0] = 0
	for i, p := range l.pattern {
		axes[i+1] = p
	}

	inStrides := rowMajorStrides(inDims)
	outDims := out.Dims()
	data := make([]float64, len(v.Data()))
	idx := make([]int, len(outDims))
	for i := range data {
		src := 0
		for d, ax := range axes {
			src += idx[d] * inStrides[ax]
		}
		data[i] = v.Data()[src]

		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < outDims[d] {
				break
			}
			idx[d] = 0
		}
	}
	return v.withData(data, out), nil
}

// rowMajorStrides computes strides for a fully defined shape.
func rowMajorStrides(dims []int) []int {
	strides := make([]int, len(dims))
	if len(dims) == 0 {
		return strides
	}
	strides[len(dims)-1] = 1
	for i := len(dims) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * dims[i+1]
	}
	return strides
}

// RepeatVector repeats a [batch, d] input n times into [batch, n, d].
type RepeatVector struct {
	baseLayer
	n int
}

// RepeatVector implements the constructor for the repeat-vector layer.
func (f *Framework) RepeatVector(cfg layers.RepeatVectorConfig) (framework.Layer, error) {
	return &RepeatVector{
		baseLayer: baseLayer{
			name:       f.uniqueName("repeat_vector", cfg.Name),
			kind:       "repeat_vector",
			inputShape: cfg.InputShape,
		},
		n: cfg.N,
	}, nil
}

// OutputShape turns [batch, d] into [batch, n, d].
func (l *RepeatVector) OutputShape(in shape.Shape) (shape.Shape, error) {
	if err := requireRank(l.kind, in, 2); err != nil {
		return shape.Shape{}, err
	}
	return shape.Make(in.Dim(0), l.n, in.Dim(1)), nil
}

// Apply implements framework.Layer.
func (l *RepeatVector) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *RepeatVector) eval(v *Value) (*Value, error) {
	out, err := l.OutputShape(v.Shape())
	if err != nil {
		return nil, err
	}
	batch, d := v.Shape().Dim(0), v.Shape().Dim(1)
	data := make([]float64, 0, batch*l.n*d)
	for r := 0; r < batch; r++ {
		row := v.Data()[r*d : (r+1)*d]
		for rep := 0; rep < l.n; rep++ {
			data = append(data, row...)
		}
	}
	return v.withData(data, out), nil
}
