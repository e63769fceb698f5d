package ncdf

import "strings"

// Reader is the read-only facade over a NetCDF classic or 64-bit-offset
// file image. Construction validates the magic and version, parses the
// header, and leaves the Reader ready for name-based lookup and
// on-demand data extraction.
//
// A Reader's exported methods are safe for concurrent use: each data
// read works from its own freshly cloned cursor rather than one shared,
// mutable position.
type Reader struct {
	Header *Header
	Image  []byte
}

// NewReader validates the magic and version bytes of image, parses its
// header, and returns a Reader for it. image must not be modified for
// the lifetime of the returned Reader; it is borrowed, not copied.
func NewReader(image []byte) (*Reader, error) {
	if len(image) == 0 {
		return nil, ErrEmptyInput
	}

	c := newCursor(image)
	h, err := decodeHeader(c)
	if err != nil {
		return nil, err
	}

	return &Reader{Header: h, Image: image}, nil
}

// VersionLabel returns "classic format" or "64-bit offset format".
func (r *Reader) VersionLabel() string { return r.Header.VersionLabel() }

// Dimensions returns the file's dimensions in declared order.
func (r *Reader) Dimensions() []Dimension { return r.Header.Dimensions }

// GlobalAttributes returns the file's global attributes in declared
// order.
func (r *Reader) GlobalAttributes() []Attribute { return r.Header.GlobalAttributes }

// Variables returns the file's variables in declared order.
func (r *Reader) Variables() []Variable { return r.Header.Variables }

// RecordDimension returns the file's record (unlimited) dimension
// description.
func (r *Reader) RecordDimension() RecordDimension { return r.Header.RecordDimension }

// GetAttribute returns the first global attribute named name, by exact
// byte equality, and true. If no such attribute exists, it returns the
// zero Value and false — absence is not an error.
func (r *Reader) GetAttribute(name string) (Value, bool) {
	a, ok := r.Header.globalAttributeByName(name)
	return a.Value, ok
}

// AttributeExists reports whether a global attribute named name exists.
func (r *Reader) AttributeExists(name string) bool {
	_, ok := r.Header.globalAttributeByName(name)
	return ok
}

// VariableExists reports whether a variable named name exists.
func (r *Reader) VariableExists(name string) bool {
	_, ok := r.Header.variableByName(name)
	return ok
}

// GetVariable resolves name to a Variable and returns its decoded
// values. A missing name fails with ErrNotFound.
func (r *Reader) GetVariable(name string) ([]Value, error) {
	v, ok := r.Header.variableByName(name)
	if !ok {
		return nil, notFound(name)
	}
	return r.GetVariableValues(v)
}

// GetVariableValues extracts the decoded values of an already-resolved
// Variable, e.g. one obtained from Variables(). It gives callers who
// already have a *Variable (perhaps from iterating Header.Variables) a
// way to skip the by-name lookup.
func (r *Reader) GetVariableValues(v *Variable) ([]Value, error) {
	c := newCursor(r.Image) // independent cursor: safe to call concurrently
	return extractVariable(c, v, r.Header.RecordDimension)
}

// GetVariableAsText runs GetVariable and concatenates the resulting
// elements into a single string. Meaningful only for CHAR variables;
// non-text elements are skipped, so a non-CHAR variable yields "".
func (r *Reader) GetVariableAsText(name string) (string, error) {
	vals, err := r.GetVariable(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, v := range vals {
		if s, ok := v.Text(); ok {
			b.WriteString(s)
		}
	}
	return b.String(), nil
}
