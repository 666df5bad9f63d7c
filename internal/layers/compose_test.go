package layers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/shape"
)

// fakeTensor is a minimal framework.Tensor for composer tests.
type fakeTensor struct {
	shape shape.Shape
}

func (t *fakeTensor) Shape() shape.Shape        { return t.shape }
func (t *fakeTensor) DType() framework.DataType { return framework.Float32 }

// fakeLayer records applications and returns a fresh tensor each time.
type fakeLayer struct {
	name     string
	applied  []framework.Tensor
	applyErr error
}

func (l *fakeLayer) Name() string { return l.name }

func (l *fakeLayer) Apply(t framework.Tensor) (framework.Tensor, error) {
	if l.applyErr != nil {
		return nil, l.applyErr
	}
	l.applied = append(l.applied, t)
	return &fakeTensor{shape: t.Shape()}, nil
}

func (l *fakeLayer) OutputShape(in shape.Shape) (shape.Shape, error) {
	return in, nil
}

// fakeSequential is a minimal framework.Sequential for composer tests.
type fakeSequential struct {
	layers []framework.Layer
}

func (s *fakeSequential) Add(l framework.Layer)       { s.layers = append(s.layers, l) }
func (s *fakeSequential) Len() int                    { return len(s.layers) }
func (s *fakeSequential) Layer(i int) framework.Layer { return s.layers[i] }
func (s *fakeSequential) OutputShape() (shape.Shape, error) {
	return shape.Absent(), nil
}

func TestCompose_AbsentReturnsLayer(t *testing.T) {
	layer := &fakeLayer{name: "standalone"}

	out, err := Compose(nil, layer)
	require.NoError(t, err)
	assert.Same(t, layer, out.(*fakeLayer))
	assert.Empty(t, layer.applied, "absent composition must not apply the layer")
}

func TestCompose_SequentialAppendsInPlace(t *testing.T) {
	first := &fakeLayer{name: "l1"}
	second := &fakeLayer{name: "l2"}
	model := &fakeSequential{layers: []framework.Layer{first}}

	out, err := Compose(model, second)
	require.NoError(t, err)

	// Same container identity, mutated in place.
	assert.Same(t, model, out.(*fakeSequential))
	require.Equal(t, 2, model.Len())
	assert.Same(t, first, model.Layer(0).(*fakeLayer))
	assert.Same(t, second, model.Layer(1).(*fakeLayer))
}

func TestCompose_TensorAppliesFunctionally(t *testing.T) {
	in := &fakeTensor{shape: shape.Make(shape.Unknown, 32)}
	layer := &fakeLayer{name: "l"}

	out, err := Compose(in, layer)
	require.NoError(t, err)

	outTensor, ok := out.(framework.Tensor)
	require.True(t, ok)
	assert.NotSame(t, in, outTensor.(*fakeTensor), "application must produce a new tensor")
	require.Len(t, layer.applied, 1)
	assert.Same(t, in, layer.applied[0].(*fakeTensor))
}

func TestCompose_TensorApplyErrorPropagates(t *testing.T) {
	boom := errors.New("framework exploded")
	layer := &fakeLayer{name: "l", applyErr: boom}

	_, err := Compose(&fakeTensor{}, layer)
	assert.ErrorIs(t, err, boom, "collaborator errors must propagate unchanged")
}

func TestCompose_InvalidArgument(t *testing.T) {
	for _, bad := range []any{42, "model", []int{1}, struct{}{}} {
		_, err := Compose(bad, &fakeLayer{})
		require.Error(t, err)

		var invalid *InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, bad, invalid.Value)
		assert.Contains(t, invalid.Error(), "Sequential")
		assert.Contains(t, invalid.Error(), "Tensor")
	}
}
