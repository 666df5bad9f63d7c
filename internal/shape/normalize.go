package shape

import (
	"fmt"
	"math"
)

// ConversionError reports a shape element that could not be coerced into a
// dimension.
type ConversionError struct {
	Index  int    // position of the offending element
	Value  any    // the element as supplied
	Reason string // why the coercion failed
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot use %v (%T) as dimension %d: %s", e.Value, e.Value, e.Index, e.Reason)
}

// Normalize coerces a caller-supplied shape into canonical form.
//
// A nil slice is the absent shape and normalizes to the absent sentinel
// unchanged; it is never coerced to an empty sequence. A non-nil slice is
// normalized element-wise:
//
//   - nil and the Unknown constant pass through as Unknown dimensions
//   - integer values of any Go kind are accepted as-is
//   - floating-point values are truncated toward zero
//   - anything else fails with a *ConversionError
//
// A coerced element must end up a positive extent or Unknown; other values
// (zero, negative extents) also fail with a *ConversionError.
//
// Normalize is pure and idempotent: feeding the dimensions of a normalized
// shape back through Normalize yields an equal shape.
func Normalize(values []any) (Shape, error) {
	if values == nil {
		return Absent(), nil
	}
	dims := make([]int, len(values))
	for i, v := range values {
		d, err := coerceDim(i, v)
		if err != nil {
			return Shape{}, err
		}
		dims[i] = d
	}
	return Shape{dims: dims, present: true}, nil
}

// coerceDim converts a single shape element into a dimension.
func coerceDim(index int, v any) (int, error) {
	if v == nil {
		return Unknown, nil
	}
	var d int
	switch n := v.(type) {
	case int:
		d = n
	case int8:
		d = int(n)
	case int16:
		d = int(n)
	case int32:
		d = int(n)
	case int64:
		d = int(n)
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, &ConversionError{Index: index, Value: v, Reason: "value overflows int"}
		}
		d = int(n)
	case uint8:
		d = int(n)
	case uint16:
		d = int(n)
	case uint32:
		d = int(n)
	case uint64:
		if n > math.MaxInt {
			return 0, &ConversionError{Index: index, Value: v, Reason: "value overflows int"}
		}
		d = int(n)
	case float32:
		return coerceFloatDim(index, v, float64(n))
	case float64:
		return coerceFloatDim(index, v, n)
	default:
		return 0, &ConversionError{Index: index, Value: v, Reason: "not a numeric value"}
	}
	if d <= 0 && d != Unknown {
		return 0, &ConversionError{Index: index, Value: v, Reason: "dimension must be positive or unknown"}
	}
	return d, nil
}

// coerceFloatDim truncates a float toward zero, matching the framework's
// integer coercion of fractional dimensions.
func coerceFloatDim(index int, orig any, f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ConversionError{Index: index, Value: orig, Reason: "not a finite value"}
	}
	d := int(math.Trunc(f))
	if d <= 0 && d != Unknown {
		return 0, &ConversionError{Index: index, Value: orig, Reason: "dimension must be positive or unknown"}
	}
	return d, nil
}
