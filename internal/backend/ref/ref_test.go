package ref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-ml/strata/internal/backend/ref"
	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
	"github.com/strata-ml/strata/internal/shape"
)

func TestInput_ShapeGetsBatchAxis(t *testing.T) {
	fw := ref.New()

	x, err := layers.Input(fw, layers.InputConfig{Shape: shape.Make(784)})
	require.NoError(t, err)

	assert.Equal(t, []int{shape.Unknown, 784}, x.Shape().Dims())
	assert.Equal(t, framework.Float32, x.DType(), "default dtype must be float32")
}

func TestInput_BatchShapeUsedVerbatim(t *testing.T) {
	fw := ref.New()

	x, err := layers.Input(fw, layers.InputConfig{
		BatchShape: shape.Make(32, 10, 4),
		DType:      framework.Float64,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{32, 10, 4}, x.Shape().Dims())
	assert.Equal(t, framework.Float64, x.DType())
}

func TestAutoNaming(t *testing.T) {
	fw := ref.New()

	l1, err := fw.Dense(layers.DenseConfig{Units: 4})
	require.NoError(t, err)
	l2, err := fw.Dense(layers.DenseConfig{Units: 4})
	require.NoError(t, err)
	l3, err := fw.Flatten(layers.FlattenConfig{})
	require.NoError(t, err)
	named, err := fw.Dense(layers.DenseConfig{Units: 4, Name: "logits"})
	require.NoError(t, err)

	assert.Equal(t, "dense_1", l1.Name())
	assert.Equal(t, "dense_2", l2.Name())
	assert.Equal(t, "flatten_1", l3.Name())
	assert.Equal(t, "logits", named.Name())
}

func TestDense_Defaults(t *testing.T) {
	fw := ref.New()

	// A dense layer on an absent graph position comes back standalone with
	// linear activation and bias enabled.
	out, err := layers.Dense(fw, nil, layers.DenseConfig{Units: 10})
	require.NoError(t, err)

	dense, ok := out.(*ref.Dense)
	require.True(t, ok)
	assert.Equal(t, 10, dense.Units())
	assert.Equal(t, "", dense.Activation())
	assert.True(t, dense.HasBias())
}

func TestDense_UnknownActivationRejected(t *testing.T) {
	fw := ref.New()

	_, err := layers.Dense(fw, nil, layers.DenseConfig{Units: 10, Activation: "warp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warp")
}

func TestDense_OutputShape(t *testing.T) {
	fw := ref.New()
	l, err := fw.Dense(layers.DenseConfig{Units: 8})
	require.NoError(t, err)

	out, err := l.OutputShape(shape.Make(shape.Unknown, 32))
	require.NoError(t, err)
	assert.Equal(t, []int{shape.Unknown, 8}, out.Dims())

	_, err = l.OutputShape(shape.Make(32))
	assert.Error(t, err, "dense needs a feature axis besides the batch axis")
}

func TestDense_EvalWithFixedWeights(t *testing.T) {
	fw := ref.New()
	out, err := layers.Dense(fw, nil, layers.DenseConfig{Units: 2})
	require.NoError(t, err)
	dense := out.(*ref.Dense)

	// y = x @ W + b with W = [[1, 0], [0, 2], [1, 1]], b = [0.5, -0.5]
	require.NoError(t, dense.SetWeights([][]float64{
		{1, 0},
		{0, 2},
		{1, 1},
	}, []float64{0.5, -0.5}))

	in, err := ref.NewValue([]float64{1, 2, 3}, shape.Make(1, 3))
	require.NoError(t, err)

	res, err := dense.Apply(in)
	require.NoError(t, err)

	val := res.(*ref.Value)
	assert.Equal(t, []int{1, 2}, val.Shape().Dims())
	assert.InDeltaSlice(t, []float64{1*1 + 3*1 + 0.5, 2*2 + 3*1 - 0.5}, val.Data(), 1e-12)
}

func TestDense_EvalReproducibleAcrossSeeds(t *testing.T) {
	in, err := ref.NewValue([]float64{1, 2, 3, 4}, shape.Make(2, 2))
	require.NoError(t, err)

	run := func() []float64 {
		fw := ref.New(ref.WithSeed(42))
		out, err := layers.Dense(fw, nil, layers.DenseConfig{Units: 3})
		require.NoError(t, err)
		res, err := out.(*ref.Dense).Apply(in)
		require.NoError(t, err)
		return res.(*ref.Value).Data()
	}

	assert.Equal(t, run(), run(), "same seed must yield the same parameters")
}

func TestFlatten_Shapes(t *testing.T) {
	fw := ref.New()
	l, err := fw.Flatten(layers.FlattenConfig{})
	require.NoError(t, err)

	out, err := l.OutputShape(shape.Make(shape.Unknown, 28, 28))
	require.NoError(t, err)
	assert.Equal(t, []int{shape.Unknown, 784}, out.Dims())

	out, err = l.OutputShape(shape.Make(4, shape.Unknown, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{4, shape.Unknown}, out.Dims())
}

func TestReshape_InfersUnknownDimension(t *testing.T) {
	fw := ref.New()
	l, err := fw.Reshape(layers.ReshapeConfig{TargetShape: shape.Make(shape.Unknown, 2)})
	require.NoError(t, err)

	out, err := l.OutputShape(shape.Make(10, 6))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 3, 2}, out.Dims())

	_, err = l.OutputShape(shape.Make(10, 7))
	assert.Error(t, err, "7 elements are not divisible into pairs")
}

func TestReshape_ElementCountMismatch(t *testing.T) {
	fw := ref.New()
	l, err := fw.Reshape(layers.ReshapeConfig{TargetShape: shape.Make(5, 2)})
	require.NoError(t, err)

	_, err = l.OutputShape(shape.Make(shape.Unknown, 3, 3))
	assert.Error(t, err)
}

func TestPermute_ShapeAndData(t *testing.T) {
	fw := ref.New()
	l, err := fw.Permute(layers.PermuteConfig{Pattern: []int{2, 1}})
	require.NoError(t, err)

	out, err := l.OutputShape(shape.Make(shape.Unknown, 10, 64))
	require.NoError(t, err)
	assert.Equal(t, []int{shape.Unknown, 64, 10}, out.Dims())

	// One batch entry, 2x3 -> 3x2 transpose.
	in, err := ref.NewValue([]float64{
		1, 2, 3,
		4, 5, 6,
	}, shape.Make(1, 2, 3))
	require.NoError(t, err)

	res, err := l.Apply(in)
	require.NoError(t, err)

	val := res.(*ref.Value)
	assert.Equal(t, []int{1, 3, 2}, val.Shape().Dims())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, val.Data())
}

func TestRepeatVector_ShapeAndData(t *testing.T) {
	fw := ref.New()
	l, err := fw.RepeatVector(layers.RepeatVectorConfig{N: 3})
	require.NoError(t, err)

	out, err := l.OutputShape(shape.Make(shape.Unknown, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{shape.Unknown, 3, 4}, out.Dims())

	in, err := ref.NewValue([]float64{7, 8}, shape.Make(1, 2))
	require.NoError(t, err)

	res, err := l.Apply(in)
	require.NoError(t, err)

	val := res.(*ref.Value)
	assert.Equal(t, []int{1, 3, 2}, val.Shape().Dims())
	assert.Equal(t, []float64{7, 8, 7, 8, 7, 8}, val.Data())
}

func TestLambda_DeclaredAndInferredShapes(t *testing.T) {
	fw := ref.New()

	double := func(t framework.Tensor) (framework.Tensor, error) {
		v, ok := t.(*ref.Value)
		if !ok {
			// Symbolic call: same shape.
			return t, nil
		}
		data := make([]float64, len(v.Data()))
		for i, x := range v.Data() {
			data[i] = 2 * x
		}
		return ref.NewValue(data, v.Shape())
	}

	declared, err := fw.Lambda(layers.LambdaConfig{Func: double, OutputShape: shape.Make(16)})
	require.NoError(t, err)
	out, err := declared.OutputShape(shape.Make(shape.Unknown, 16))
	require.NoError(t, err)
	assert.Equal(t, []int{shape.Unknown, 16}, out.Dims())

	inferred, err := fw.Lambda(layers.LambdaConfig{Func: double})
	require.NoError(t, err)
	out, err = inferred.OutputShape(shape.Make(shape.Unknown, 16))
	require.NoError(t, err)
	assert.Equal(t, []int{shape.Unknown, 16}, out.Dims())

	in, err := ref.NewValue([]float64{1, 2}, shape.Make(1, 2))
	require.NoError(t, err)
	res, err := inferred.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, res.(*ref.Value).Data())
}

func TestMasking_Mask(t *testing.T) {
	fw := ref.New()
	l, err := fw.Masking(layers.MaskingConfig{})
	require.NoError(t, err)

	// [1 batch, 3 steps, 2 features]; middle step is all mask value.
	in, err := ref.NewValue([]float64{
		1, 2,
		0, 0,
		0, 5,
	}, shape.Make(1, 3, 2))
	require.NoError(t, err)

	mask, err := l.(*ref.Masking).Mask(in)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true, false, true}}, mask)

	res, err := l.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, in.Data(), res.(*ref.Value).Data(), "masking passes data through")
}

func TestActivityRegularization_Penalty(t *testing.T) {
	fw := ref.New()
	l, err := fw.ActivityRegularization(layers.ActivityRegularizationConfig{L1: 0.5, L2: 2})
	require.NoError(t, err)

	in, err := ref.NewValue([]float64{1, -2, 3}, shape.Make(1, 3))
	require.NoError(t, err)

	reg := l.(*ref.ActivityRegularization)
	// 0.5*(1+2+3) + 2*(1+4+9)
	assert.InDelta(t, 3+28, reg.Penalty(in), 1e-12)

	res, err := l.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, in.Data(), res.(*ref.Value).Data())
}

func TestActivation_Softmax(t *testing.T) {
	fw := ref.New()
	l, err := fw.Activation(layers.ActivationConfig{Activation: "softmax"})
	require.NoError(t, err)

	in, err := ref.NewValue([]float64{0, 0, 0, 0}, shape.Make(2, 2))
	require.NoError(t, err)

	res, err := l.Apply(in)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5}, res.(*ref.Value).Data(), 1e-12)
}

func TestSequential_OutputShapeChaining(t *testing.T) {
	fw := ref.New()
	model := fw.NewSequential()

	_, err := layers.Reshape(fw, model, layers.ReshapeConfig{
		TargetShape: shape.Make(28, 28),
		InputShape:  shape.Make(784),
	})
	require.NoError(t, err)
	_, err = layers.Flatten(fw, model, layers.FlattenConfig{})
	require.NoError(t, err)
	_, err = layers.Dense(fw, model, layers.DenseConfig{Units: 10, Activation: "softmax"})
	require.NoError(t, err)

	out, err := model.OutputShape()
	require.NoError(t, err)
	assert.Equal(t, []int{shape.Unknown, 10}, out.Dims())
}

func TestSequential_UnknownInputShape(t *testing.T) {
	fw := ref.New()
	model := fw.NewSequential()

	_, err := layers.Dense(fw, model, layers.DenseConfig{Units: 10})
	require.NoError(t, err)

	_, err = model.OutputShape()
	assert.Error(t, err, "no declared input shape on the first layer")
}

func TestSequential_Predict(t *testing.T) {
	fw := ref.New()
	model := fw.NewSequential()

	_, err := layers.Dense(fw, model, layers.DenseConfig{
		Units:      2,
		InputShape: shape.Make(3),
	})
	require.NoError(t, err)
	_, err = layers.Activation(fw, model, layers.ActivationConfig{Activation: "relu"})
	require.NoError(t, err)

	dense := model.Layer(0).(*ref.Dense)
	require.NoError(t, dense.SetWeights([][]float64{
		{1, -1},
		{1, -1},
		{1, -1},
	}, []float64{0, 0}))

	in, err := ref.NewValue([]float64{1, 1, 1}, shape.Make(1, 3))
	require.NoError(t, err)

	seq := model.(*ref.Sequential)
	out, err := seq.Predict(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0}, out.Data(), "relu clips the negative unit")
}

func TestSequential_Summary(t *testing.T) {
	fw := ref.New()
	model := fw.NewSequential()

	_, err := layers.Dense(fw, model, layers.DenseConfig{Units: 4, InputShape: shape.Make(8)})
	require.NoError(t, err)

	summary := model.(*ref.Sequential).Summary()
	assert.Contains(t, summary, "dense_1")
	assert.Contains(t, summary, "[?, 4]")
}

func TestValue_BytesRoundTripFloat16(t *testing.T) {
	v, err := ref.NewTypedValue([]float64{1, -2, 0.5}, shape.Make(3), framework.Float16)
	require.NoError(t, err)

	raw := v.Bytes()
	assert.Len(t, raw, 6)

	back, err := ref.ValueFromBytes(raw, shape.Make(3), framework.Float16)
	require.NoError(t, err)
	assert.Equal(t, v.Data(), back.Data())
}

func TestFunctionalComposition(t *testing.T) {
	fw := ref.New()

	x, err := layers.Input(fw, layers.InputConfig{Shape: shape.Make(28, 28)})
	require.NoError(t, err)

	h, err := layers.Flatten(fw, x, layers.FlattenConfig{})
	require.NoError(t, err)
	out, err := layers.Dense(fw, h, layers.DenseConfig{Units: 10, Activation: "softmax"})
	require.NoError(t, err)

	tensor, ok := out.(framework.Tensor)
	require.True(t, ok)
	assert.Equal(t, []int{shape.Unknown, 10}, tensor.Shape().Dims())
}
