package ncdf

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the ways a file image can fail to decode.
// Use errors.Is against these, not string matching; the messages attach
// parameters but the sentinel identity is what callers should rely on.
var (
	// ErrNotNetCDF means the byte image is not a well-formed classic or
	// 64-bit-offset NetCDF file: bad magic, unsupported version,
	// inconsistent/wrong tagged-list framing, or a 64-bit variable offset
	// whose high word is non-zero.
	ErrNotNetCDF = errors.New("not a valid NetCDF v3.x file")

	// ErrInvalidType means an attribute or variable type code fell
	// outside 1..=6 (BYTE..DOUBLE).
	ErrInvalidType = errors.New("invalid NetCDF type code")

	// ErrTruncated means a read would have advanced the cursor past the
	// end of the byte image.
	ErrTruncated = errors.New("truncated NetCDF data")

	// ErrNotFound means a variable lookup by name matched nothing.
	ErrNotFound = errors.New("variable not found")

	// ErrEmptyInput means the reader was constructed with a zero-length
	// byte image.
	ErrEmptyInput = errors.New("empty input")
)

// notNetCDF wraps ErrNotNetCDF with a specific reason.
func notNetCDF(reason string) error {
	return fmt.Errorf("%w: %s", ErrNotNetCDF, reason)
}

// invalidType wraps ErrInvalidType with the offending code.
func invalidType(code uint32) error {
	return fmt.Errorf("%w: %d", ErrInvalidType, code)
}

// notFound wraps ErrNotFound with the requested name.
func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}
