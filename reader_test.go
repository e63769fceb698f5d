package ncdf

import (
	"errors"
	"strings"
	"testing"
)

func TestNewReaderEmptyInput(t *testing.T) {
	_, err := NewReader(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestGetVariableNotFound(t *testing.T) {
	fb := newFileBuilder(1)
	fb.u32(0).absentList().absentList().absentList()
	r, err := NewReader(fb.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.GetVariable("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestGetAttributeAbsentIsNotAnError(t *testing.T) {
	fb := newFileBuilder(1)
	fb.u32(0).absentList().absentList().absentList()
	r, err := NewReader(fb.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.GetAttribute("missing"); ok {
		t.Fatal("expected (zero, false) for a missing attribute")
	}
}

func TestAttributeAndVariableExists(t *testing.T) {
	r, err := NewReader(buildOneDimOneFixedVar(uint32(TypeShort)))
	if err != nil {
		t.Fatal(err)
	}
	if !r.VariableExists("v") {
		t.Error("expected variable \"v\" to exist")
	}
	if r.VariableExists("nope") {
		t.Error("did not expect variable \"nope\" to exist")
	}
	if r.AttributeExists("anything") {
		t.Error("no global attributes were declared")
	}
}

func TestDimensionNamesAndLengths(t *testing.T) {
	r, err := NewReader(buildOneDimOneFixedVar(uint32(TypeShort)))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.Header.DimensionNames("v"), []string{"x"}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("DimensionNames = %v, want %v", got, want)
	}
	if got, want := r.Header.DimensionLengths("v"), []int{3}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("DimensionLengths = %v, want %v", got, want)
	}
	if r.Header.DimensionNames("bogus") != nil {
		t.Error("expected nil for an unknown variable")
	}
}

func TestFillValueDefaultsPerType(t *testing.T) {
	v := &Variable{Type: TypeInt}
	fv := v.FillValue()
	i, ok := fv.I32Seq()
	if !ok || i[0] != -2147483647 {
		t.Fatalf("got %v, %v", i, ok)
	}
}

func TestFillValueFromAttributeOverridesDefault(t *testing.T) {
	v := &Variable{
		Type: TypeShort,
		Attributes: []Attribute{
			{Name: "_FillValue", Type: TypeShort, Value: Value{Kind: KindI16Scalar, i16: -999}},
		},
	}
	fv := v.FillValue()
	seq, ok := fv.I16Seq()
	if !ok || seq[0] != -999 {
		t.Fatalf("got %v, %v, want -999", seq, ok)
	}
}

func TestHeaderStringDumpIncludesDimensionsAndVariables(t *testing.T) {
	r, err := NewReader(buildOneDimOneFixedVar(uint32(TypeShort)))
	if err != nil {
		t.Fatal(err)
	}
	s := r.Header.String()
	for _, want := range []string{"x = 3", "v SHORT[x]"} {
		if !strings.Contains(s, want) {
			t.Errorf("dump missing %q:\n%s", want, s)
		}
	}
}

func TestHeaderStringDumpFlagsUnlimitedDimension(t *testing.T) {
	r, err := NewReader(buildRecordVariables(2))
	if err != nil {
		t.Fatal(err)
	}
	s := r.Header.String()
	if !strings.Contains(s, "t = UNLIMITED") {
		t.Errorf("dump missing UNLIMITED marker:\n%s", s)
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	SetLogger(nil)
	if log == nil {
		t.Fatal("logger should never be nil")
	}
}
