package ncdf

import (
	"github.com/sirupsen/logrus"
)

// Tag constants for the tagged-list framing shared by the dimension,
// attribute, and variable sections of a classic-format header.
const (
	tagAbsent    = 0
	tagDimension = 10 // NC_DIMENSION
	tagVariable  = 11 // NC_VARIABLE
	tagAttribute = 12 // NC_ATTRIBUTE

	streamingSizeSentinel = 0xFFFFFFFF
)

// log is the package-level logger, defaulting to logrus's standard
// logger. SetLogger lets a caller redirect it.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package-level logger used for informational
// messages emitted while parsing a header. Passing nil restores the
// default (logrus.StandardLogger()).
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	log = l
}

// decodeHeader consumes the file prefix starting at c's current offset
// (expected to be 0) and produces a fully parsed Header.
func decodeHeader(c *cursor) (*Header, error) {
	magic, err := c.chars(3)
	if err != nil {
		return nil, err
	}
	if magic != "CDF" {
		return nil, notNetCDF("should start with CDF")
	}

	versionByte, err := c.u8()
	if err != nil {
		return nil, err
	}
	if versionByte < 1 || versionByte > 2 {
		return nil, notNetCDF("unknown version")
	}
	version := int(versionByte)

	numRecs, err := c.u32()
	if err != nil {
		return nil, err
	}

	h := &Header{Version: version, RecordDimension: RecordDimension{Length: numRecs, ID: -1}}

	dims, err := decodeDimensionList(c)
	if err != nil {
		return nil, err
	}
	h.Dimensions = dims
	for i, d := range dims {
		if d.Size == 0 {
			h.RecordDimension.ID = i
			h.RecordDimension.Name = d.Name
			break // at most one record dimension; first zero-size dimension wins
		}
	}

	globals, err := decodeAttributeList(c)
	if err != nil {
		return nil, err
	}
	h.GlobalAttributes = globals

	vars, err := decodeVariableList(c, version == 2)
	if err != nil {
		return nil, err
	}
	h.Variables = vars

	var step uint32
	var recvars int
	for i := range h.Variables {
		v := &h.Variables[i]
		v.IsRecord = h.RecordDimension.ID >= 0 && len(v.DimIDs) > 0 && v.DimIDs[0] == h.RecordDimension.ID
		if v.IsRecord {
			step += v.SizeBytes
			recvars++
		}
	}
	h.RecordDimension.RecordStep = step
	h.RecordDimension.RecordVariableCount = recvars

	log.WithFields(logrus.Fields{
		"version":           h.VersionLabel(),
		"dimensions":        len(h.Dimensions),
		"global_attributes": len(h.GlobalAttributes),
		"variables":         len(h.Variables),
		"record_step":       step,
	}).Debug("ncdf: parsed header")

	return h, nil
}

// readTag reads the (tag, length) pair shared by every tagged list and
// validates it against expected.
func readTag(c *cursor, expected uint32, what string) (int, error) {
	tag, err := c.u32()
	if err != nil {
		return 0, err
	}
	length, err := c.u32()
	if err != nil {
		return 0, err
	}
	switch tag {
	case tagAbsent:
		if length != 0 {
			return 0, notNetCDF("wrong empty tag for list of " + what)
		}
		return 0, nil
	case expected:
		return int(length), nil
	default:
		return 0, notNetCDF("wrong tag for list of " + what)
	}
}

// readName decodes a name: a u32 length, that many ASCII bytes, then
// zero-padding to a 4-byte boundary.
func readName(c *cursor) (string, error) {
	n, err := c.u32()
	if err != nil {
		return "", err
	}
	s, err := c.chars(int64(n))
	if err != nil {
		return "", err
	}
	c.alignPad()
	return s, nil
}

func decodeDimensionList(c *cursor) ([]Dimension, error) {
	n, err := readTag(c, tagDimension, "dimensions")
	if err != nil {
		return nil, err
	}
	dims := make([]Dimension, n)
	for i := range dims {
		name, err := readName(c)
		if err != nil {
			return nil, err
		}
		size, err := c.u32()
		if err != nil {
			return nil, err
		}
		dims[i] = Dimension{Name: name, Size: size}
	}
	return dims, nil
}

func decodeAttributeList(c *cursor) ([]Attribute, error) {
	n, err := readTag(c, tagAttribute, "attributes")
	if err != nil {
		return nil, err
	}
	attrs := make([]Attribute, n)
	for i := range attrs {
		a, err := decodeAttribute(c)
		if err != nil {
			return nil, err
		}
		attrs[i] = a
	}
	return attrs, nil
}

// decodeAttribute parses one attribute element: name, type code, nelems,
// the typed payload, then pad-to-4.
func decodeAttribute(c *cursor) (Attribute, error) {
	name, err := readName(c)
	if err != nil {
		return Attribute{}, err
	}

	rawType, err := c.u32()
	if err != nil {
		return Attribute{}, err
	}
	code := TypeCode(rawType)
	if !code.valid() {
		return Attribute{}, invalidType(rawType)
	}

	nelems, err := c.u32()
	if err != nil {
		return Attribute{}, err
	}

	val, err := readOne(c, code, int(nelems))
	if err != nil {
		return Attribute{}, err
	}
	c.alignPad()

	return Attribute{Name: name, Type: code, Value: val}, nil
}

func decodeVariableList(c *cursor, offsets64 bool) ([]Variable, error) {
	n, err := readTag(c, tagVariable, "variables")
	if err != nil {
		return nil, err
	}
	vars := make([]Variable, n)
	for i := range vars {
		v, err := decodeVariable(c, offsets64)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}
	return vars, nil
}

// decodeVariable parses one variable element: name; rank; dimension ids;
// a nested attribute list; type code; vsize; offset (32 or 64 bit
// depending on the file version).
func decodeVariable(c *cursor, offsets64 bool) (Variable, error) {
	name, err := readName(c)
	if err != nil {
		return Variable{}, err
	}

	rank, err := c.u32()
	if err != nil {
		return Variable{}, err
	}
	dimIDs := make([]int, rank)
	for i := range dimIDs {
		id, err := c.u32()
		if err != nil {
			return Variable{}, err
		}
		dimIDs[i] = int(id)
	}

	attrs, err := decodeAttributeList(c)
	if err != nil {
		return Variable{}, err
	}

	rawType, err := c.u32()
	if err != nil {
		return Variable{}, err
	}
	code := TypeCode(rawType)
	if !code.valid() {
		// A variable's type code is validated the same way an
		// attribute's is: anything outside 1..=6 is rejected here,
		// before the size/offset fields are even read.
		return Variable{}, invalidType(rawType)
	}

	vsize, err := c.u32()
	if err != nil {
		return Variable{}, err
	}

	offset, err := readOffset(c, offsets64)
	if err != nil {
		return Variable{}, err
	}

	return Variable{
		Name:       name,
		DimIDs:     dimIDs,
		Attributes: attrs,
		Type:       code,
		SizeBytes:  vsize,
		Offset:     offset,
	}, nil
}

// readOffset reads a variable's begin offset: one u32 for version 1,
// two big-endian u32s (high word first) for version 2. A non-zero high
// word is rejected; offsets beyond 4GB are not supported.
func readOffset(c *cursor, offsets64 bool) (int64, error) {
	if !offsets64 {
		v, err := c.u32()
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	}

	hi, err := c.u32()
	if err != nil {
		return 0, err
	}
	lo, err := c.u32()
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, notNetCDF("offsets larger than 4GB not supported")
	}
	return int64(lo), nil
}
