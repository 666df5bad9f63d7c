package framework

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/x448/float16"
)

// DataType represents the element type of a tensor.
//
// The zero value is Float32, the documented default for layers constructed
// without an explicit type.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
	Float16
	Int32
	Int64
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16:
		return 2
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// ParseDataType is the inverse of String. It fails on unrecognized names.
func ParseDataType(name string) (DataType, error) {
	switch name {
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	case "float16":
		return Float16, nil
	case "int32":
		return Int32, nil
	case "int64":
		return Int64, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", name)
	}
}

// EncodeValues encodes float64 values into little-endian bytes of the given
// element type. Integer types truncate toward zero; Float16 uses IEEE
// half-precision with round-to-nearest.
func EncodeValues(dt DataType, values []float64) []byte {
	out := make([]byte, 0, len(values)*dt.Size())
	for _, v := range values {
		switch dt {
		case Float32:
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(v)))
		case Float64:
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
		case Float16:
			out = binary.LittleEndian.AppendUint16(out, uint16(float16.Fromfloat32(float32(v))))
		case Int32:
			out = binary.LittleEndian.AppendUint32(out, uint32(int32(v)))
		case Int64:
			out = binary.LittleEndian.AppendUint64(out, uint64(int64(v)))
		default:
			panic(fmt.Sprintf("unknown data type %d", int(dt)))
		}
	}
	return out
}

// DecodeValues decodes little-endian bytes of the given element type into
// float64 values. It fails when the byte length is not a multiple of the
// element size.
func DecodeValues(dt DataType, data []byte) ([]float64, error) {
	size := dt.Size()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("byte length %d is not a multiple of %s element size %d", len(data), dt, size)
	}
	out := make([]float64, 0, len(data)/size)
	for i := 0; i < len(data); i += size {
		switch dt {
		case Float32:
			out = append(out, float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i:]))))
		case Float64:
			out = append(out, math.Float64frombits(binary.LittleEndian.Uint64(data[i:])))
		case Float16:
			out = append(out, float64(float16.Float16(binary.LittleEndian.Uint16(data[i:])).Float32()))
		case Int32:
			out = append(out, float64(int32(binary.LittleEndian.Uint32(data[i:]))))
		case Int64:
			out = append(out, float64(int64(binary.LittleEndian.Uint64(data[i:]))))
		default:
			panic(fmt.Sprintf("unknown data type %d", int(dt)))
		}
	}
	return out, nil
}
