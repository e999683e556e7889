package ir

import "testing"

func TestCompare(t *testing.T) {
	a := New("Host")
	b := New("Host")
	if Compare(a, b) != 0 {
		t.Error("equal names")
	}
	b.SetValue("v")
	if Compare(a, b) != -1 {
		t.Error("absent value sorts before present")
	}
	a.SetValue("v")
	if Compare(a, b) != 0 {
		t.Error("equal values")
	}
	a.NewChild("A")
	if Compare(a, b) != 1 {
		t.Error("more children sorts after")
	}
	b.NewChild("B")
	if Compare(a, b) != -1 {
		t.Error("child name order")
	}
	if Compare(nil, a) != -1 || Compare(a, nil) != 1 || Compare(nil, nil) != 0 {
		t.Error("nil ordering")
	}
}

func TestHash(t *testing.T) {
	a := New("Host").SetValue("x")
	a.NewValuedChild("User", "alice")
	b := a.Clone()
	if a.Hash() != b.Hash() {
		t.Error("equal trees must hash equally")
	}
	b.Child("User").SetValue("bob")
	if a.Hash() == b.Hash() {
		t.Error("differing trees should not collide")
	}
	// absent and empty values are distinct
	c := New("k")
	d := New("k").SetValue("")
	if c.Hash() == d.Hash() {
		t.Error("absent vs empty value should not collide")
	}
}
