// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape provides the canonical tensor-shape representation used
// throughout strata.
//
// A Shape is an immutable ordered sequence of dimensions, each a positive
// extent or Unknown. The zero value is the distinct "absent" sentinel for
// callers that supply no shape at all.
//
// Example:
//
//	s, err := shape.Normalize([]any{nil, 32})
//	// s.String() == "[?, 32]"
package shape

import (
	"github.com/strata-ml/strata/internal/shape"
)

// Unknown marks a dimension whose extent is not fixed at graph-construction
// time, typically the batch axis.
const Unknown = shape.Unknown

// Shape is an immutable, ordered sequence of dimensions: positive extents
// or Unknown. The zero value is the absent sentinel.
type Shape = shape.Shape

// ConversionError reports a shape element that could not be coerced into a
// dimension.
type ConversionError = shape.ConversionError

// Make builds a Shape from statically known dimensions. It panics on
// values that are neither positive nor Unknown.
func Make(dims ...int) Shape {
	return shape.Make(dims...)
}

// Scalar returns the present rank-0 shape.
func Scalar() Shape {
	return shape.Scalar()
}

// Absent returns the absent sentinel (equivalent to the zero value).
func Absent() Shape {
	return shape.Absent()
}

// Normalize coerces a caller-supplied shape into canonical form: nil slices
// stay absent, nil elements become Unknown dimensions, integers pass
// through, floats truncate, and anything else fails with a
// *ConversionError.
func Normalize(values []any) (Shape, error) {
	return shape.Normalize(values)
}
