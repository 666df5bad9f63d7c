// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layers is strata's layer-construction surface.
//
// Every constructor takes the framework to build against, a graph position
// x, and a typed configuration record. The graph position dictates the
// composition:
//
//   - nil returns the layer standalone
//   - a framework.Sequential gets the layer appended in place and is
//     returned unchanged, for chaining
//   - a framework.Tensor gets the layer applied functionally, producing a
//     new tensor
//
// Example:
//
//	fw := ref.New()
//	model := fw.NewSequential()
//	_, err := layers.Dense(fw, model, layers.DenseConfig{
//	    Units:      128,
//	    Activation: "relu",
//	    InputShape: shape.Make(784),
//	})
package layers

import (
	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
)

// Framework is the constructor surface strata requires from a compute
// framework.
type Framework = layers.Framework

// InvalidArgumentError reports a graph position that is neither absent, a
// sequential container, nor a tensor.
type InvalidArgumentError = layers.InvalidArgumentError

// ConfigError reports a layer configuration rejected at construction time.
type ConfigError = layers.ConfigError

// Configuration records, one per layer kind.
type (
	// InputConfig configures an Input layer.
	InputConfig = layers.InputConfig
	// DenseConfig configures a fully connected layer.
	DenseConfig = layers.DenseConfig
	// ReshapeConfig configures a Reshape layer.
	ReshapeConfig = layers.ReshapeConfig
	// PermuteConfig configures a Permute layer.
	PermuteConfig = layers.PermuteConfig
	// RepeatVectorConfig configures a RepeatVector layer.
	RepeatVectorConfig = layers.RepeatVectorConfig
	// LambdaConfig configures a Lambda layer.
	LambdaConfig = layers.LambdaConfig
	// ActivityRegularizationConfig configures an ActivityRegularization layer.
	ActivityRegularizationConfig = layers.ActivityRegularizationConfig
	// MaskingConfig configures a Masking layer.
	MaskingConfig = layers.MaskingConfig
	// FlattenConfig configures a Flatten layer.
	FlattenConfig = layers.FlattenConfig
	// ActivationConfig configures a standalone Activation layer.
	ActivationConfig = layers.ActivationConfig
	// DropoutConfig configures a Dropout layer.
	DropoutConfig = layers.DropoutConfig
)

// Compose attaches a constructed layer at the graph position x. Most
// callers use the layer constructors below, which compose automatically;
// Compose is exported for frameworks and custom layer kinds.
func Compose(x any, layer framework.Layer) (any, error) {
	return layers.Compose(x, layer)
}

// Input creates a symbolic tensor to start a functional graph.
func Input(fw Framework, cfg InputConfig) (framework.Tensor, error) {
	return layers.Input(fw, cfg)
}

// Dense constructs a fully connected layer and composes it at x.
func Dense(fw Framework, x any, cfg DenseConfig) (any, error) {
	return layers.Dense(fw, x, cfg)
}

// Reshape constructs a layer that reshapes its input (batch axis
// preserved) and composes it at x.
func Reshape(fw Framework, x any, cfg ReshapeConfig) (any, error) {
	return layers.Reshape(fw, x, cfg)
}

// Permute constructs a layer that reorders its input's non-batch
// dimensions and composes it at x.
func Permute(fw Framework, x any, cfg PermuteConfig) (any, error) {
	return layers.Permute(fw, x, cfg)
}

// RepeatVector constructs a layer that repeats a 2D input N times along a
// new axis and composes it at x.
func RepeatVector(fw Framework, x any, cfg RepeatVectorConfig) (any, error) {
	return layers.RepeatVector(fw, x, cfg)
}

// Lambda constructs a layer from an arbitrary tensor function and composes
// it at x.
func Lambda(fw Framework, x any, cfg LambdaConfig) (any, error) {
	return layers.Lambda(fw, x, cfg)
}

// ActivityRegularization constructs an identity layer contributing an
// activity-based penalty to the training loss, and composes it at x.
func ActivityRegularization(fw Framework, x any, cfg ActivityRegularizationConfig) (any, error) {
	return layers.ActivityRegularization(fw, x, cfg)
}

// Masking constructs a layer that masks timesteps whose features all equal
// the configured mask value, and composes it at x.
func Masking(fw Framework, x any, cfg MaskingConfig) (any, error) {
	return layers.Masking(fw, x, cfg)
}

// Flatten constructs a layer that collapses all non-batch dimensions into
// one, and composes it at x.
func Flatten(fw Framework, x any, cfg FlattenConfig) (any, error) {
	return layers.Flatten(fw, x, cfg)
}

// Activation constructs a layer applying an element-wise activation and
// composes it at x.
func Activation(fw Framework, x any, cfg ActivationConfig) (any, error) {
	return layers.Activation(fw, x, cfg)
}

// Dropout constructs a layer that randomly zeroes inputs during training
// (identity at inference) and composes it at x.
func Dropout(fw Framework, x any, cfg DropoutConfig) (any, error) {
	return layers.Dropout(fw, x, cfg)
}
