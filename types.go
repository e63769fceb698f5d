package ncdf

import "fmt"

// TypeCode is one of the six NetCDF classic primitive type codes.
type TypeCode uint32

// The six NetCDF primitive type codes.
const (
	TypeByte   TypeCode = 1
	TypeChar   TypeCode = 2
	TypeShort  TypeCode = 3
	TypeInt    TypeCode = 4
	TypeFloat  TypeCode = 5
	TypeDouble TypeCode = 6
)

var typeNames = [...]string{"", "BYTE", "CHAR", "SHORT", "INT", "FLOAT", "DOUBLE"}
var typeSizes = [...]uint32{0, 1, 1, 2, 4, 4, 8}

// valid reports whether t is one of the six defined type codes.
func (t TypeCode) valid() bool { return t >= TypeByte && t <= TypeDouble }

// codeToName renders t as "BYTE", "CHAR", "SHORT", "INT", "FLOAT" or
// "DOUBLE". It panics if t is not valid; callers must validate first.
func codeToName(t TypeCode) string {
	if !t.valid() {
		panic(fmt.Sprintf("ncdf: invalid type code %d", t))
	}
	return typeNames[t]
}

// nameToCode is the inverse of codeToName. It returns (0, false) if name
// does not match one of the six type names.
func nameToCode(name string) (TypeCode, bool) {
	for i, n := range typeNames {
		if i != 0 && n == name {
			return TypeCode(i), true
		}
	}
	return 0, false
}

// sizeBytes returns the wire size in bytes of one element of t. It
// panics if t is not valid; callers must validate first.
func sizeBytes(t TypeCode) uint32 {
	if !t.valid() {
		panic(fmt.Sprintf("ncdf: invalid type code %d", t))
	}
	return typeSizes[t]
}

// ValueKind tags which field of a Value is populated.
type ValueKind int

// The "scalar vs sequence" split exists only for the four numeric
// types, collapsing to a scalar when an attribute or variable slice has
// exactly one element.
const (
	KindBytes ValueKind = iota
	KindText
	KindI16Scalar
	KindI16Seq
	KindI32Scalar
	KindI32Seq
	KindF32Scalar
	KindF32Seq
	KindF64Scalar
	KindF64Seq
)

// Value is the decoded payload of an attribute, or of a variable's
// non-record/record extraction. Exactly one of its accessors is valid,
// selected by Kind.
type Value struct {
	Kind ValueKind

	bytesV []byte
	textV  string
	i16    int16
	i16s   []int16
	i32    int32
	i32s   []int32
	f32    float32
	f32s   []float32
	f64    float64
	f64s   []float64
}

// Bytes returns the BYTE payload and true, or (nil, false) if Kind is not
// KindBytes.
func (v Value) Bytes() ([]byte, bool) {
	if v.Kind != KindBytes {
		return nil, false
	}
	return v.bytesV, true
}

// Text returns the CHAR payload (already trailing-NUL trimmed) and true,
// or ("", false) if Kind is not KindText.
func (v Value) Text() (string, bool) {
	if v.Kind != KindText {
		return "", false
	}
	return v.textV, true
}

// I16Seq returns the SHORT sequence, collapsing a scalar to a
// single-element slice for callers that always want a sequence.
func (v Value) I16Seq() ([]int16, bool) {
	switch v.Kind {
	case KindI16Seq:
		return v.i16s, true
	case KindI16Scalar:
		return []int16{v.i16}, true
	}
	return nil, false
}

// I32Seq returns the INT sequence, collapsing a scalar to a
// single-element slice.
func (v Value) I32Seq() ([]int32, bool) {
	switch v.Kind {
	case KindI32Seq:
		return v.i32s, true
	case KindI32Scalar:
		return []int32{v.i32}, true
	}
	return nil, false
}

// F32Seq returns the FLOAT sequence, collapsing a scalar to a
// single-element slice.
func (v Value) F32Seq() ([]float32, bool) {
	switch v.Kind {
	case KindF32Seq:
		return v.f32s, true
	case KindF32Scalar:
		return []float32{v.f32}, true
	}
	return nil, false
}

// F64Seq returns the DOUBLE sequence, collapsing a scalar to a
// single-element slice.
func (v Value) F64Seq() ([]float64, bool) {
	switch v.Kind {
	case KindF64Seq:
		return v.f64s, true
	case KindF64Scalar:
		return []float64{v.f64}, true
	}
	return nil, false
}

// Raw returns the decoded value as a dynamically typed Go value
// (interface{} of []uint8, string, int16, []int16, int32, []int32,
// float32, []float32, float64 or []float64) — useful for debug printing where the static tagging of
// Value is more ceremony than the call site needs.
func (v Value) Raw() interface{} {
	switch v.Kind {
	case KindBytes:
		return v.bytesV
	case KindText:
		return v.textV
	case KindI16Scalar:
		return v.i16
	case KindI16Seq:
		return v.i16s
	case KindI32Scalar:
		return v.i32
	case KindI32Seq:
		return v.i32s
	case KindF32Scalar:
		return v.f32
	case KindF32Seq:
		return v.f32s
	case KindF64Scalar:
		return v.f64
	case KindF64Seq:
		return v.f64s
	}
	return nil
}

// trimTrailingNUL removes exactly one trailing NUL byte from s, if
// present. Earlier NULs are retained verbatim.
func trimTrailingNUL(s string) string {
	if n := len(s); n > 0 && s[n-1] == 0 {
		return s[:n-1]
	}
	return s
}

// readOne extracts count elements of the given type from c and returns
// them as a Value, collapsing numeric sequences of length 1 to a
// scalar.
//
// An invalid code fails with ErrInvalidType; running past the end of
// the image fails with ErrTruncated (via the cursor's own checks).
func readOne(c *cursor, code TypeCode, count int) (Value, error) {
	if !code.valid() {
		return Value{}, invalidType(uint32(code))
	}

	switch code {
	case TypeByte:
		b, err := c.bytes(int64(count))
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBytes, bytesV: b}, nil

	case TypeChar:
		s, err := c.chars(int64(count))
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindText, textV: trimTrailingNUL(s)}, nil

	case TypeShort:
		seq := make([]int16, count)
		for i := range seq {
			v, err := c.i16()
			if err != nil {
				return Value{}, err
			}
			seq[i] = v
		}
		if count == 1 {
			return Value{Kind: KindI16Scalar, i16: seq[0]}, nil
		}
		return Value{Kind: KindI16Seq, i16s: seq}, nil

	case TypeInt:
		seq := make([]int32, count)
		for i := range seq {
			v, err := c.i32()
			if err != nil {
				return Value{}, err
			}
			seq[i] = v
		}
		if count == 1 {
			return Value{Kind: KindI32Scalar, i32: seq[0]}, nil
		}
		return Value{Kind: KindI32Seq, i32s: seq}, nil

	case TypeFloat:
		seq := make([]float32, count)
		for i := range seq {
			v, err := c.f32()
			if err != nil {
				return Value{}, err
			}
			seq[i] = v
		}
		if count == 1 {
			return Value{Kind: KindF32Scalar, f32: seq[0]}, nil
		}
		return Value{Kind: KindF32Seq, f32s: seq}, nil

	case TypeDouble:
		seq := make([]float64, count)
		for i := range seq {
			v, err := c.f64()
			if err != nil {
				return Value{}, err
			}
			seq[i] = v
		}
		if count == 1 {
			return Value{Kind: KindF64Scalar, f64: seq[0]}, nil
		}
		return Value{Kind: KindF64Seq, f64s: seq}, nil
	}

	// unreachable: code.valid() already excluded anything else
	return Value{}, invalidType(uint32(code))
}
