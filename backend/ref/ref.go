// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ref provides the in-process reference framework for strata.
//
// It implements the full constructor surface with symbolic shape inference
// and small-scale concrete evaluation, and exists so that models can be
// built, inspected, persisted, and smoke-tested without an external
// runtime.
//
// Example:
//
//	fw := ref.New(ref.WithSeed(42))
//	model := fw.NewSequential()
//	_, err := layers.Dense(fw, model, layers.DenseConfig{
//	    Units:      10,
//	    Activation: "softmax",
//	    InputShape: shape.Make(784),
//	})
package ref

import (
	"github.com/strata-ml/strata/framework"
	internalref "github.com/strata-ml/strata/internal/backend/ref"
	"github.com/strata-ml/strata/layers"
	"github.com/strata-ml/strata/shape"
)

// Framework is the reference framework.
type Framework = internalref.Framework

// Compile-time check that Framework satisfies the binding's contract.
var _ layers.Framework = (*Framework)(nil)

// Option configures a Framework.
type Option = internalref.Option

// Sequential is the reference sequential container.
type Sequential = internalref.Sequential

// Symbol is a symbolic tensor: shape and element type, no data.
type Symbol = internalref.Symbol

// Value is a concrete tensor evaluated by the reference layers.
type Value = internalref.Value

// Layer types, exported for introspection after construction.
type (
	// Dense is the reference fully connected layer.
	Dense = internalref.Dense
	// Flatten collapses all non-batch dimensions into one.
	Flatten = internalref.Flatten
	// Reshape rearranges the non-batch dimensions.
	Reshape = internalref.Reshape
	// Permute reorders the non-batch dimensions.
	Permute = internalref.Permute
	// RepeatVector repeats a 2D input along a new axis.
	RepeatVector = internalref.RepeatVector
	// Lambda wraps an arbitrary tensor transformation.
	Lambda = internalref.Lambda
	// Masking marks timesteps matching the mask value.
	Masking = internalref.Masking
	// Dropout randomly zeroes inputs during training.
	Dropout = internalref.Dropout
	// ActivityRegularization exposes an activity-based loss penalty.
	ActivityRegularization = internalref.ActivityRegularization
	// Activation applies a named element-wise activation.
	Activation = internalref.Activation
)

// New creates a reference framework.
func New(opts ...Option) *Framework {
	return internalref.New(opts...)
}

// WithSeed fixes the weight-initialization seed.
func WithSeed(seed int64) Option {
	return internalref.WithSeed(seed)
}

// NewValue creates a concrete tensor with the default Float32 element
// type.
func NewValue(data []float64, s shape.Shape) (*Value, error) {
	return internalref.NewValue(data, s)
}

// NewTypedValue creates a concrete tensor with an explicit element type.
func NewTypedValue(data []float64, s shape.Shape, dt framework.DataType) (*Value, error) {
	return internalref.NewTypedValue(data, s, dt)
}
