package ncdf

import (
	"encoding/binary"
	"math"
)

// cursor is a random-access, big-endian view over an immutable byte
// image. It is deliberately tiny — a slice header, an offset and a
// byte order — so
// that it can be cloned per data extraction at no real cost, removing
// the concurrency hazard of a single shared cursor.
//
// NetCDF classic files are always big-endian on the wire, so byteOrder
// is fixed rather than pluggable; the field exists (instead of calling
// binary.BigEndian directly at each call site) so that choice has one
// explicit home.
type cursor struct {
	data      []byte
	off       int64
	byteOrder binary.ByteOrder
}

// newCursor returns a cursor over data, positioned at offset 0, in
// big-endian mode.
func newCursor(data []byte) *cursor {
	return &cursor{data: data, byteOrder: binary.BigEndian}
}

// clone returns an independent cursor over the same backing image,
// positioned at the same offset as c. The byte image is shared
// read-only; only the offset is copied.
func (c *cursor) clone() *cursor {
	return &cursor{data: c.data, off: c.off, byteOrder: c.byteOrder}
}

// offset returns the cursor's current position.
func (c *cursor) offset() int64 { return c.off }

// seek repositions the cursor to an absolute offset.
func (c *cursor) seek(off int64) { c.off = off }

// skip advances the cursor by n bytes, which may be negative.
func (c *cursor) skip(n int64) { c.off += n }

// require checks that n bytes are available starting at the current
// offset, returning ErrTruncated if not.
func (c *cursor) require(n int64) error {
	if c.off < 0 || n < 0 || c.off+n > int64(len(c.data)) {
		return ErrTruncated
	}
	return nil
}

func (c *cursor) u8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.data[c.off]
	c.off++
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := c.byteOrder.Uint32(c.data[c.off : c.off+4])
	c.off += 4
	return v, nil
}

func (c *cursor) i16() (int16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := int16(c.byteOrder.Uint16(c.data[c.off : c.off+2]))
	c.off += 2
	return v, nil
}

func (c *cursor) i32() (int32, error) {
	v, err := c.u32()
	return int32(v), err
}

func (c *cursor) f32() (float32, error) {
	v, err := c.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (c *cursor) f64() (float64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := c.byteOrder.Uint64(c.data[c.off : c.off+8])
	c.off += 8
	return math.Float64frombits(v), nil
}

// bytes returns a copy of the next n bytes and advances the cursor.
func (c *cursor) bytes(n int64) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, c.data[c.off:c.off+n])
	c.off += n
	return b, nil
}

// chars returns the next n bytes decoded as an ASCII string and advances
// the cursor. No charset validation is performed: NetCDF names and CHAR
// data are ASCII byte strings and are not UTF-8 validated here.
func (c *cursor) chars(n int64) (string, error) {
	b, err := c.bytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// pad4 rounds x up to the next multiple of 4.
func pad4(x int64) int64 { return (x + 3) &^ 3 }

// alignPad advances the cursor to the next 4-byte boundary. The skip
// amount is derived from the cursor's current absolute offset, not from
// the length of whatever was just read.
func (c *cursor) alignPad() {
	if m := c.off % 4; m != 0 {
		c.off += 4 - m
	}
}
