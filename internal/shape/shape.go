// Package shape provides the canonical shape representation used at the
// binding boundary between strata and a compute framework.
package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Unknown marks a dimension whose extent is not fixed at graph-construction
// time, typically the batch axis.
const Unknown = -1

// Shape is the canonical form of a tensor shape: an immutable, ordered
// sequence of dimensions in which every entry is either a positive extent or
// Unknown.
//
// The zero value is the "absent" sentinel: the caller supplied no shape at
// all. Absent is distinct from a present rank-0 (scalar) shape, and the two
// never compare equal. Frameworks rely on this distinction, so Normalize
// preserves it rather than coercing absent to an empty sequence.
type Shape struct {
	dims    []int
	present bool
}

// Absent returns the absent sentinel. It is equivalent to the zero value and
// exists for readability at call sites.
func Absent() Shape {
	return Shape{}
}

// Scalar returns the present rank-0 shape.
func Scalar() Shape {
	return Shape{dims: []int{}, present: true}
}

// Make builds a Shape from the given dimensions. Each dimension must be a
// positive extent or Unknown.
//
// Make is intended for dimensions known statically at the call site; it
// panics on anything else. Use Normalize for values of uncertain provenance.
func Make(dims ...int) Shape {
	cpy := make([]int, len(dims))
	for i, d := range dims {
		if d <= 0 && d != Unknown {
			panic(fmt.Sprintf("shape.Make: invalid dimension %d at index %d", d, i))
		}
		cpy[i] = d
	}
	return Shape{dims: cpy, present: true}
}

// IsAbsent reports whether s is the absent sentinel.
func (s Shape) IsAbsent() bool {
	return !s.present
}

// Rank returns the number of dimensions, or -1 when the shape is absent.
func (s Shape) Rank() int {
	if !s.present {
		return -1
	}
	return len(s.dims)
}

// Dim returns the extent of dimension i (possibly Unknown).
//
// Panics if the shape is absent or i is out of range.
func (s Shape) Dim(i int) int {
	if !s.present {
		panic("shape.Dim: shape is absent")
	}
	if i < 0 || i >= len(s.dims) {
		panic(fmt.Sprintf("shape.Dim: index %d out of range for rank %d", i, len(s.dims)))
	}
	return s.dims[i]
}

// Dims returns a copy of the dimensions, or nil when the shape is absent.
func (s Shape) Dims() []int {
	if !s.present {
		return nil
	}
	cpy := make([]int, len(s.dims))
	copy(cpy, s.dims)
	return cpy
}

// Equal reports whether two shapes are both absent, or both present with
// identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if s.present != other.present {
		return false
	}
	if !s.present {
		return true
	}
	if len(s.dims) != len(other.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i] != other.dims[i] {
			return false
		}
	}
	return true
}

// IsFullyDefined reports whether the shape is present and free of Unknown
// dimensions.
func (s Shape) IsFullyDefined() bool {
	if !s.present {
		return false
	}
	for _, d := range s.dims {
		if d == Unknown {
			return false
		}
	}
	return true
}

// CountUnknown returns the number of Unknown dimensions, or 0 when absent.
func (s Shape) CountUnknown() int {
	n := 0
	for _, d := range s.dims {
		if d == Unknown {
			n++
		}
	}
	return n
}

// NumElements returns the total number of elements implied by the shape, or
// -1 when the shape is absent or contains an Unknown dimension. A scalar
// shape has one element.
func (s Shape) NumElements() int {
	if !s.IsFullyDefined() {
		return -1
	}
	n := 1
	for _, d := range s.dims {
		n *= d
	}
	return n
}

// WithBatch returns a new shape with an Unknown batch dimension prepended.
//
// Panics if the shape is absent.
func (s Shape) WithBatch() Shape {
	if !s.present {
		panic("shape.WithBatch: shape is absent")
	}
	dims := make([]int, 0, len(s.dims)+1)
	dims = append(dims, Unknown)
	dims = append(dims, s.dims...)
	return Shape{dims: dims, present: true}
}

// String renders the shape in a compact form: "[?, 32]" for a partially
// known shape, "[]" for a scalar, and "<absent>" for the absent sentinel.
func (s Shape) String() string {
	if !s.present {
		return "<absent>"
	}
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		if d == Unknown {
			parts[i] = "?"
		} else {
			parts[i] = strconv.Itoa(d)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
