package ref

import (
	"github.com/strata-ml/strata/internal/layers"
)

// Record implements arch.Recordable.
func (l *Dense) Record() (string, any) {
	return l.kind, layers.DenseConfig{
		Units:      l.units,
		Activation: l.actName,
		NoBias:     l.noBias,
		InputShape: l.inputShape,
		Name:       l.name,
	}
}

// Record implements arch.Recordable.
func (l *Flatten) Record() (string, any) {
	return l.kind, layers.FlattenConfig{InputShape: l.inputShape, Name: l.name}
}

// Record implements arch.Recordable.
func (l *Reshape) Record() (string, any) {
	return l.kind, layers.ReshapeConfig{
		TargetShape: l.target,
		InputShape:  l.inputShape,
		Name:        l.name,
	}
}

// Record implements arch.Recordable.
func (l *Permute) Record() (string, any) {
	pattern := make([]int, len(l.pattern))
	copy(pattern, l.pattern)
	return l.kind, layers.PermuteConfig{
		Pattern:    pattern,
		InputShape: l.inputShape,
		Name:       l.name,
	}
}

// Record implements arch.Recordable.
func (l *RepeatVector) Record() (string, any) {
	return l.kind, layers.RepeatVectorConfig{
		N:          l.n,
		InputShape: l.inputShape,
		Name:       l.name,
	}
}

// Record implements arch.Recordable.
func (l *Masking) Record() (string, any) {
	return l.kind, layers.MaskingConfig{
		MaskValue:  l.maskValue,
		InputShape: l.inputShape,
		Name:       l.name,
	}
}

// Record implements arch.Recordable.
func (l *Dropout) Record() (string, any) {
	return l.kind, layers.DropoutConfig{
		Rate:       l.rate,
		Seed:       l.seed,
		InputShape: l.inputShape,
		Name:       l.name,
	}
}

// Record implements arch.Recordable.
func (l *ActivityRegularization) Record() (string, any) {
	return l.kind, layers.ActivityRegularizationConfig{
		L1:         l.l1,
		L2:         l.l2,
		InputShape: l.inputShape,
		Name:       l.name,
	}
}

// Record implements arch.Recordable.
func (l *Activation) Record() (string, any) {
	return l.kind, layers.ActivationConfig{
		Activation: l.actName,
		InputShape: l.inputShape,
		Name:       l.name,
	}
}

// Record implements arch.Recordable.
func (l *Lambda) Record() (string, any) {
	return l.kind, layers.LambdaConfig{
		Func:        l.fn,
		OutputShape: l.outputShape,
		InputShape:  l.inputShape,
		Name:        l.name,
	}
}
