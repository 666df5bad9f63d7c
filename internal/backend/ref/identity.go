package ref

import (
	"gonum.org/v1/gonum/floats"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
	"github.com/strata-ml/strata/internal/shape"
)

// identityShape is shared by layers that do not change their input shape.
type identityShape struct {
	baseLayer
}

func (l *identityShape) OutputShape(in shape.Shape) (shape.Shape, error) {
	if in.IsAbsent() {
		return shape.Shape{}, requireMinRank(l.kind, in, 1)
	}
	return in, nil
}

// Masking marks timesteps whose features all equal the mask value. The
// reference framework records the mask value and passes data through
// unchanged; honoring the mask is up to downstream recurrent layers, which
// this framework does not provide.
type Masking struct {
	identityShape
	maskValue float64
}

// Masking implements the constructor for the masking layer.
func (f *Framework) Masking(cfg layers.MaskingConfig) (framework.Layer, error) {
	return &Masking{
		identityShape: identityShape{baseLayer{
			name:       f.uniqueName("masking", cfg.Name),
			kind:       "masking",
			inputShape: cfg.InputShape,
		}},
		maskValue: cfg.MaskValue,
	}, nil
}

// MaskValue returns the configured mask value.
func (l *Masking) MaskValue() float64 { return l.maskValue }

// Apply implements framework.Layer.
func (l *Masking) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *Masking) eval(v *Value) (*Value, error) {
	return v.withData(v.Data(), v.Shape()), nil
}

// Mask reports, per timestep of a [batch, steps, features] tensor, whether
// the timestep carries any non-masked feature.
func (l *Masking) Mask(v *Value) ([][]bool, error) {
	if err := requireRank(l.kind, v.Shape(), 3); err != nil {
		return nil, err
	}
	batch, steps, feats := v.Shape().Dim(0), v.Shape().Dim(1), v.Shape().Dim(2)
	mask := make([][]bool, batch)
	for b := 0; b < batch; b++ {
		mask[b] = make([]bool, steps)
		for s := 0; s < steps; s++ {
			row := v.Data()[(b*steps+s)*feats : (b*steps+s+1)*feats]
			for _, x := range row {
				if x != l.maskValue {
					mask[b][s] = true
					break
				}
			}
		}
	}
	return mask, nil
}

// Dropout randomly zeroes inputs during training. The reference framework
// evaluates in inference mode only, where dropout is the identity.
type Dropout struct {
	identityShape
	rate float64
	seed int64
}

// Dropout implements the constructor for the dropout layer.
func (f *Framework) Dropout(cfg layers.DropoutConfig) (framework.Layer, error) {
	return &Dropout{
		identityShape: identityShape{baseLayer{
			name:       f.uniqueName("dropout", cfg.Name),
			kind:       "dropout",
			inputShape: cfg.InputShape,
		}},
		rate: cfg.Rate,
		seed: cfg.Seed,
	}, nil
}

// Rate returns the configured drop fraction.
func (l *Dropout) Rate() float64 { return l.rate }

// Apply implements framework.Layer.
func (l *Dropout) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *Dropout) eval(v *Value) (*Value, error) {
	return v.withData(v.Data(), v.Shape()), nil
}

// ActivityRegularization passes its input through unchanged while exposing
// an activity-based penalty for the training loss.
type ActivityRegularization struct {
	identityShape
	l1, l2 float64
}

// ActivityRegularization implements the constructor for the
// activity-regularization layer.
func (f *Framework) ActivityRegularization(cfg layers.ActivityRegularizationConfig) (framework.Layer, error) {
	return &ActivityRegularization{
		identityShape: identityShape{baseLayer{
			name:       f.uniqueName("activity_regularization", cfg.Name),
			kind:       "activity_regularization",
			inputShape: cfg.InputShape,
		}},
		l1: cfg.L1,
		l2: cfg.L2,
	}, nil
}

// Apply implements framework.Layer.
func (l *ActivityRegularization) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *ActivityRegularization) eval(v *Value) (*Value, error) {
	return v.withData(v.Data(), v.Shape()), nil
}

// Penalty computes l1*sum(|x|) + l2*sum(x^2) over the tensor's data.
func (l *ActivityRegularization) Penalty(v *Value) float64 {
	n2 := floats.Norm(v.Data(), 2)
	return l.l1*floats.Norm(v.Data(), 1) + l.l2*n2*n2
}

// Activation applies a named element-wise activation.
type Activation struct {
	identityShape
	actName string
	act     activationFunc
}

// Activation implements the constructor for the activation layer.
func (f *Framework) Activation(cfg layers.ActivationConfig) (framework.Layer, error) {
	act, err := lookupActivation(cfg.Activation)
	if err != nil {
		return nil, err
	}
	return &Activation{
		identityShape: identityShape{baseLayer{
			name:       f.uniqueName("activation", cfg.Name),
			kind:       "activation",
			inputShape: cfg.InputShape,
		}},
		actName: cfg.Activation,
		act:     act,
	}, nil
}

// Apply implements framework.Layer.
func (l *Activation) Apply(t framework.Tensor) (framework.Tensor, error) {
	return apply(l, t)
}

func (l *Activation) eval(v *Value) (*Value, error) {
	data := make([]float64, len(v.Data()))
	copy(data, v.Data())
	rowLen := 0
	if r := v.Shape().Rank(); r > 0 {
		rowLen = v.Shape().Dim(r - 1)
	}
	l.act(data, rowLen)
	return v.withData(data, v.Shape()), nil
}
