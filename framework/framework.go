// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package framework defines the object model strata expects from a compute
// framework: opaque layers, symbolic tensors, and sequential containers.
//
// Implement these interfaces (plus the constructor surface in the layers
// package) to drive strata with your own runtime; the backend/ref package
// is the in-process reference implementation.
package framework

import (
	"github.com/strata-ml/strata/internal/framework"
)

// Layer is an opaque unit of computation constructed by a framework.
type Layer = framework.Layer

// Tensor is a symbolic value flowing between layers.
type Tensor = framework.Tensor

// Sequential is an ordered, mutable container of layers representing a
// linear model under construction.
type Sequential = framework.Sequential

// DataType represents the element type of a tensor. The zero value is
// Float32, the documented default.
type DataType = framework.DataType

// Supported element types.
const (
	Float32 DataType = framework.Float32
	Float64 DataType = framework.Float64
	Float16 DataType = framework.Float16
	Int32   DataType = framework.Int32
	Int64   DataType = framework.Int64
)

// ParseDataType resolves a data-type name such as "float32".
func ParseDataType(name string) (DataType, error) {
	return framework.ParseDataType(name)
}

// EncodeValues encodes float64 values into little-endian bytes of the
// given element type.
func EncodeValues(dt DataType, values []float64) []byte {
	return framework.EncodeValues(dt, values)
}

// DecodeValues decodes little-endian bytes of the given element type into
// float64 values.
func DecodeValues(dt DataType, data []byte) ([]float64, error) {
	return framework.DecodeValues(dt, data)
}
