package ncdf

import "testing"

func TestCursorTypedReads(t *testing.T) {
	var fb fileBuilder
	fb.raw(0xFF) // u8
	fb.u32(0xDEADBEEF)
	fb.i16(-2)
	fb.i32(-70000)
	fb.f32(1.5)
	fb.f64(2.25)
	fb.raw('h', 'i')

	c := newCursor(fb.bytes())

	if v, err := c.u8(); err != nil || v != 0xFF {
		t.Fatalf("u8: got %v, %v", v, err)
	}
	if v, err := c.u32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("u32: got %v, %v", v, err)
	}
	if v, err := c.i16(); err != nil || v != -2 {
		t.Fatalf("i16: got %v, %v", v, err)
	}
	if v, err := c.i32(); err != nil || v != -70000 {
		t.Fatalf("i32: got %v, %v", v, err)
	}
	if v, err := c.f32(); err != nil || v != 1.5 {
		t.Fatalf("f32: got %v, %v", v, err)
	}
	if v, err := c.f64(); err != nil || v != 2.25 {
		t.Fatalf("f64: got %v, %v", v, err)
	}
	if v, err := c.chars(2); err != nil || v != "hi" {
		t.Fatalf("chars: got %q, %v", v, err)
	}
}

func TestCursorTruncated(t *testing.T) {
	c := newCursor([]byte{0x00, 0x01})
	if _, err := c.u32(); err == nil {
		t.Fatal("expected truncated error, got nil")
	}
}

func TestCursorSeekSkipOffset(t *testing.T) {
	c := newCursor(make([]byte, 16))
	c.seek(8)
	if c.offset() != 8 {
		t.Fatalf("offset after seek: got %d", c.offset())
	}
	c.skip(4)
	if c.offset() != 12 {
		t.Fatalf("offset after skip: got %d", c.offset())
	}
}

func TestCursorClone(t *testing.T) {
	c := newCursor(make([]byte, 16))
	c.seek(4)
	clone := c.clone()
	clone.seek(12)

	if c.offset() != 4 {
		t.Fatalf("original cursor mutated by clone: got offset %d", c.offset())
	}
	if clone.offset() != 12 {
		t.Fatalf("clone offset: got %d", clone.offset())
	}
}

func TestCursorAlignPad(t *testing.T) {
	c := newCursor(make([]byte, 16))
	c.seek(5)
	c.alignPad()
	if c.offset() != 8 {
		t.Fatalf("alignPad from 5: got %d, want 8", c.offset())
	}

	c.seek(8)
	c.alignPad()
	if c.offset() != 8 {
		t.Fatalf("alignPad from aligned 8: got %d, want unchanged 8", c.offset())
	}
}

func TestPad4(t *testing.T) {
	cases := map[int64]int64{0: 0, 1: 4, 3: 4, 4: 4, 5: 8}
	for in, want := range cases {
		if got := pad4(in); got != want {
			t.Errorf("pad4(%d) = %d, want %d", in, got, want)
		}
	}
}
