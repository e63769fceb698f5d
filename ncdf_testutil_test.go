package ncdf

import (
	"bytes"
	"encoding/binary"
	"math"
)

// fileBuilder assembles a synthetic NetCDF classic/64-bit-offset byte
// image for tests, matching the format's on-disk layout byte for byte.
// It is intentionally low-level (no validation) so that malformed-input
// tests can build exactly the bytes they want.
type fileBuilder struct {
	buf bytes.Buffer
}

func newFileBuilder(version byte) *fileBuilder {
	fb := &fileBuilder{}
	fb.buf.WriteString("CDF")
	fb.buf.WriteByte(version)
	return fb
}

func (fb *fileBuilder) u32(v uint32) *fileBuilder {
	binary.Write(&fb.buf, binary.BigEndian, v)
	return fb
}

func (fb *fileBuilder) i32(v int32) *fileBuilder {
	binary.Write(&fb.buf, binary.BigEndian, v)
	return fb
}

func (fb *fileBuilder) i16(v int16) *fileBuilder {
	binary.Write(&fb.buf, binary.BigEndian, v)
	return fb
}

func (fb *fileBuilder) f32(v float32) *fileBuilder {
	binary.Write(&fb.buf, binary.BigEndian, math.Float32bits(v))
	return fb
}

func (fb *fileBuilder) f64(v float64) *fileBuilder {
	binary.Write(&fb.buf, binary.BigEndian, math.Float64bits(v))
	return fb
}

func (fb *fileBuilder) raw(b ...byte) *fileBuilder {
	fb.buf.Write(b)
	return fb
}

// name writes a length-prefixed, 4-byte-padded ASCII name.
func (fb *fileBuilder) name(s string) *fileBuilder {
	fb.u32(uint32(len(s)))
	fb.buf.WriteString(s)
	if p := (4 - len(s)%4) % 4; p > 0 {
		fb.buf.Write(make([]byte, p))
	}
	return fb
}

// absentList writes the "absent" encoding for a tagged list: tag=0, len=0.
func (fb *fileBuilder) absentList() *fileBuilder {
	return fb.u32(0).u32(0)
}

// emptyPresentList writes a present-but-empty tagged list: the real tag,
// length=0.
func (fb *fileBuilder) emptyPresentList(tag uint32) *fileBuilder {
	return fb.u32(tag).u32(0)
}

func (fb *fileBuilder) bytes() []byte { return fb.buf.Bytes() }

func (fb *fileBuilder) len() int64 { return int64(fb.buf.Len()) }

// padTo4 writes zero bytes until the buffer length is a multiple of 4.
func (fb *fileBuilder) padTo4() *fileBuilder {
	if p := (4 - fb.buf.Len()%4) % 4; p > 0 {
		fb.buf.Write(make([]byte, p))
	}
	return fb
}

// padUntil writes zero bytes until the buffer reaches the given absolute
// length, used to place a variable's data at a specific offset.
func (fb *fileBuilder) padUntil(n int64) *fileBuilder {
	for int64(fb.buf.Len()) < n {
		fb.buf.WriteByte(0)
	}
	return fb
}

// flattenI16 concatenates the SHORT sequence/scalar carried by each Value.
func flattenI16(vals []Value) []int16 {
	var out []int16
	for _, v := range vals {
		seq, ok := v.I16Seq()
		if !ok {
			continue
		}
		out = append(out, seq...)
	}
	return out
}

// flattenF32 concatenates the FLOAT sequence/scalar carried by each Value.
func flattenF32(vals []Value) []float32 {
	var out []float32
	for _, v := range vals {
		seq, ok := v.F32Seq()
		if !ok {
			continue
		}
		out = append(out, seq...)
	}
	return out
}
