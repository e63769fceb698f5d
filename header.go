package ncdf

import (
	"bytes"
	"fmt"
)

// Dimension is a named, sized axis declared in a file's header. A
// Dimension with Size == 0 is the record (unlimited) dimension; a file
// has at most one.
type Dimension struct {
	Name string
	Size uint32
}

// Attribute is a named, typed piece of metadata attached either to the
// file (a global attribute) or to a single variable.
type Attribute struct {
	Name  string
	Type  TypeCode
	Value Value
}

// Variable describes one variable's shape, metadata, and on-disk
// location. Its decoded contents are produced on demand by the Reader,
// not stored here.
type Variable struct {
	Name       string
	DimIDs     []int
	Attributes []Attribute
	Type       TypeCode
	SizeBytes  uint32 // wire size of one record's worth of data, 4-byte padded
	Offset     int64  // absolute byte offset of this variable's first byte
	IsRecord   bool   // true iff DimIDs[0] is the record dimension
}

// FillValue resolves the variable's effective fill value: a scalar
// "_FillValue" attribute of the variable's own type if present,
// otherwise the classic-format default fill value for the type.
func (v *Variable) FillValue() Value {
	for i := range v.Attributes {
		a := &v.Attributes[i]
		if a.Name != "_FillValue" || a.Type != v.Type {
			continue
		}
		if isScalarValue(a.Value) {
			return a.Value
		}
		break // attribute present but not a scalar of the right type
	}
	return defaultFillValue(v.Type)
}

// isScalarValue reports whether val holds exactly one element: always
// true for Text, true for Bytes of length 1, true for any *Scalar kind.
func isScalarValue(val Value) bool {
	switch val.Kind {
	case KindBytes:
		return len(val.bytesV) == 1
	case KindText:
		return true
	case KindI16Scalar, KindI32Scalar, KindF32Scalar, KindF64Scalar:
		return true
	}
	return false
}

// defaultFillValue returns the NetCDF classic format's default fill
// value for t.
func defaultFillValue(t TypeCode) Value {
	switch t {
	case TypeByte:
		return Value{Kind: KindBytes, bytesV: []byte{0x81}} // -127 as int8, same bit pattern as uint8
	case TypeChar:
		return Value{Kind: KindText, textV: "\x00"}
	case TypeShort:
		return Value{Kind: KindI16Scalar, i16: -32767}
	case TypeInt:
		return Value{Kind: KindI32Scalar, i32: -2147483647}
	case TypeFloat:
		return Value{Kind: KindF32Scalar, f32: 9.9692099683868690e+36}
	case TypeDouble:
		return Value{Kind: KindF64Scalar, f64: 9.9692099683868690e+36}
	}
	return Value{}
}

// RecordDimension describes the at-most-one unlimited dimension in a
// file, and the record step derived from the variables that use it as
// their outermost dimension.
type RecordDimension struct {
	Length              uint32 // number of records present, from the wire header
	ID                  int    // index into Header.Dimensions, or -1 if no dimension has size 0
	Name                string // name of that dimension, or "" if ID == -1
	RecordStep          uint32 // sum of SizeBytes over all record variables
	RecordVariableCount int    // number of variables whose outermost dimension is the record dimension
}

// Header is the fully parsed, immutable description of a NetCDF
// classic/64-bit-offset file.
type Header struct {
	Version          int
	RecordDimension  RecordDimension
	Dimensions       []Dimension
	GlobalAttributes []Attribute
	Variables        []Variable
}

// VersionLabel renders the header's format version as a human-readable
// phrase: "classic format" for version 1, "64-bit offset format" for
// version 2.
func (h *Header) VersionLabel() string {
	if h.Version == 1 {
		return "classic format"
	}
	return "64-bit offset format"
}

// dimensionByName performs a linear scan by name. It is duplicated per
// entity type rather than expressed through a shared capability
// interface: each of dimensions, variables, and attributes is looked up
// by a simple forward scan of its own slice.
func (h *Header) dimensionByName(name string) (Dimension, bool) {
	for _, d := range h.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}

// variableByName is the variable-lookup half of the same pattern.
func (h *Header) variableByName(name string) (*Variable, bool) {
	for i := range h.Variables {
		if h.Variables[i].Name == name {
			return &h.Variables[i], true
		}
	}
	return nil, false
}

// globalAttributeByName is the attribute-lookup half; the first match
// wins on name collisions (the format does not forbid duplicate
// attribute names).
func (h *Header) globalAttributeByName(name string) (Attribute, bool) {
	for _, a := range h.GlobalAttributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// DimensionNames returns the names of v's dimensions in declared order,
// or all dimension names in the file if v == "".
func (h *Header) DimensionNames(v string) []string {
	if v == "" {
		names := make([]string, len(h.Dimensions))
		for i, d := range h.Dimensions {
			names[i] = d.Name
		}
		return names
	}
	vv, ok := h.variableByName(v)
	if !ok {
		return nil
	}
	names := make([]string, len(vv.DimIDs))
	for i, id := range vv.DimIDs {
		if id >= 0 && id < len(h.Dimensions) {
			names[i] = h.Dimensions[id].Name
		}
	}
	return names
}

// DimensionLengths returns the lengths of v's dimensions in declared
// order, or all dimension lengths in the file if v == "".
func (h *Header) DimensionLengths(v string) []int {
	if v == "" {
		lens := make([]int, len(h.Dimensions))
		for i, d := range h.Dimensions {
			lens[i] = int(d.Size)
		}
		return lens
	}
	vv, ok := h.variableByName(v)
	if !ok {
		return nil
	}
	lens := make([]int, len(vv.DimIDs))
	for i, id := range vv.DimIDs {
		if id >= 0 && id < len(h.Dimensions) {
			lens[i] = int(h.Dimensions[id].Size)
		}
	}
	return lens
}

// String renders a debug dump of the header: dimensions (flagging the
// unlimited one), variables with shape and attributes, then global
// attributes, truncating long CHAR values at 40 characters plus "...".
func (h *Header) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "version: %s\ndimensions:\n", h.VersionLabel())
	for _, d := range h.Dimensions {
		if d.Size == 0 {
			fmt.Fprintf(&b, "\t%s = UNLIMITED ;\n", d.Name)
		} else {
			fmt.Fprintf(&b, "\t%s = %d ;\n", d.Name, d.Size)
		}
	}

	fmt.Fprintf(&b, "variables:\n")
	for _, v := range h.Variables {
		fmt.Fprintf(&b, "\t%s %s[", v.Name, codeToName(v.Type))
		for j, id := range v.DimIDs {
			if j > 0 {
				fmt.Fprintf(&b, ", ")
			}
			if id < 0 || id >= len(h.Dimensions) {
				fmt.Fprintf(&b, "<invalid %d>", id)
				continue
			}
			fmt.Fprintf(&b, "%s", h.Dimensions[id].Name)
			if h.Dimensions[id].Size == 0 {
				fmt.Fprintf(&b, "*")
			}
		}
		fmt.Fprintf(&b, "] size:%d offset:%d\n", v.SizeBytes, v.Offset)
		for _, a := range v.Attributes {
			fmt.Fprintf(&b, "\t\t")
			fprintAttribute(&b, v.Name, a)
			fmt.Fprintf(&b, "\n")
		}
	}

	for _, a := range h.GlobalAttributes {
		fmt.Fprintf(&b, "\t")
		fprintAttribute(&b, "", a)
		fmt.Fprintf(&b, "\n")
	}

	return b.String()
}

// fprintAttribute writes "pfx:name TYPE = val" to b, truncating long
// CHAR values at 40 characters plus "...".
func fprintAttribute(b *bytes.Buffer, pfx string, a Attribute) {
	fmt.Fprintf(b, "%s:%s %s = ", pfx, a.Name, codeToName(a.Type))
	if s, ok := a.Value.Text(); ok {
		if len(s) > 40 {
			s = s[:40] + "..."
		}
		fmt.Fprintf(b, "%q", s)
		return
	}
	fmt.Fprintf(b, "%#v", a.Value.Raw())
}
