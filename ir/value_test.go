package ir

import (
	"errors"
	"testing"
)

func TestTypedValues(t *testing.T) {
	if v, err := NewValued("Port", "22").Int(); err != nil || v != 22 {
		t.Errorf("Int: %v %v", v, err)
	}
	if v, err := NewValued("Max", "18446744073709551615").Uint(); err != nil || v != 18446744073709551615 {
		t.Errorf("Uint: %v %v", v, err)
	}
	if v, err := NewValued("Timeout", "1.5").Float(); err != nil || v != 1.5 {
		t.Errorf("Float: %v %v", v, err)
	}
	if v, err := NewValued("Compression", "true").Bool(); err != nil || !v {
		t.Errorf("Bool: %v %v", v, err)
	}
	if v, err := NewValued("User", "alice").Str(); err != nil || v != "alice" {
		t.Errorf("Str: %v %v", v, err)
	}
}

func TestMissingValue(t *testing.T) {
	n := New("Host")
	if _, err := n.Str(); !errors.Is(err, ErrMissingValue) {
		t.Errorf("Str: %v", err)
	}
	if _, err := n.Int(); !errors.Is(err, ErrMissingValue) {
		t.Errorf("Int: %v", err)
	}
	// a present empty value is not missing
	if v, err := NewValued("Host", "").Str(); err != nil || v != "" {
		t.Errorf("empty value: %q %v", v, err)
	}
}

func TestConversionErr(t *testing.T) {
	_, err := NewValued("Port", "ssh").Int()
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected ErrConversion, got %v", err)
	}
	if errors.Is(err, ErrMissingValue) {
		t.Fatal("conversion failure must not read as a missing value")
	}
	var ce *ConversionErr
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConversionErr, got %T", err)
	}
	if ce.Name != "Port" || ce.Raw != "ssh" || ce.Want != "int" {
		t.Errorf("ConversionErr fields: %+v", ce)
	}
}

func TestList(t *testing.T) {
	n := NewValued("Ciphers", "aes128, aes192 ,aes256")
	got, err := n.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"aes128", "aes192", "aes256"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List: %v", got)
		}
	}
	ints, err := ListOf[int64](NewValued("Vec", "1,2,3,4"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ints) != 4 || ints[0] != 1 || ints[3] != 4 {
		t.Fatalf("ListOf: %v", ints)
	}
	if _, err := ListOf[int64](NewValued("Vec", "1,x")); !errors.Is(err, ErrConversion) {
		t.Errorf("ListOf bad element: %v", err)
	}
}

func TestAs(t *testing.T) {
	n := NewValued("Port", "22")
	if v, err := As[int64](n); err != nil || v != 22 {
		t.Errorf("As[int64]: %v %v", v, err)
	}
	if v, err := As[string](n); err != nil || v != "22" {
		t.Errorf("As[string]: %v %v", v, err)
	}
	if _, err := As[bool](n); !errors.Is(err, ErrConversion) {
		t.Errorf("As[bool]: %v", err)
	}
}

func TestChildValues(t *testing.T) {
	host := New("Host")
	host.NewValuedChild("User", "alice")
	host.NewValuedChild("Port", "22")
	host.NewChild("Compression")

	if v, err := host.ChildStr("User"); err != nil || v != "alice" {
		t.Errorf("ChildStr: %v %v", v, err)
	}
	if v, err := host.ChildInt("Port"); err != nil || v != 22 {
		t.Errorf("ChildInt: %v %v", v, err)
	}
	if _, err := host.ChildStr("Nope"); !errors.Is(err, ErrMissingChild) {
		t.Errorf("missing child: %v", err)
	}
	if _, err := host.ChildStr("Compression"); !errors.Is(err, ErrMissingValue) {
		t.Errorf("present child, absent value: %v", err)
	}
	if _, err := host.ChildBool("User"); !errors.Is(err, ErrConversion) {
		t.Errorf("bad conversion: %v", err)
	}
	if v, err := ChildAs[int64](host, "Port"); err != nil || v != 22 {
		t.Errorf("ChildAs: %v %v", v, err)
	}
}
