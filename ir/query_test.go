package ir

import "testing"

func dupTree() *Node {
	doc := NewDocument()
	doc.NewValuedChild("X", "first")
	doc.NewValuedChild("Y", "only")
	doc.NewValuedChild("X", "second")
	return doc
}

func TestChildFirstMatch(t *testing.T) {
	doc := dupTree()
	x := doc.Child("X")
	if x == nil {
		t.Fatal("no X")
	}
	if got, _ := x.Str(); got != "first" {
		t.Errorf("Child returned %q, want first in document order", got)
	}
	if doc.Child("Z") != nil {
		t.Error("Child on a missing name should be nil")
	}
	if doc.Child("x") != nil {
		t.Error("lookup must be case-sensitive")
	}
}

func TestNamed(t *testing.T) {
	doc := dupTree()
	xs := doc.Named("X")
	if len(xs) != 2 {
		t.Fatalf("got %d X children", len(xs))
	}
	a, _ := xs[0].Str()
	b, _ := xs[1].Str()
	if a != "first" || b != "second" {
		t.Errorf("Named out of document order: %q %q", a, b)
	}
	zs := doc.Named("Z")
	if zs == nil || len(zs) != 0 {
		t.Errorf("Named on a missing name should be empty, got %v", zs)
	}
}

func TestAllRestartable(t *testing.T) {
	doc := dupTree()
	for pass := range 2 {
		var names []string
		for c := range doc.All() {
			names = append(names, c.Name)
		}
		if len(names) != 3 || names[0] != "X" || names[1] != "Y" || names[2] != "X" {
			t.Fatalf("pass %d: %v", pass, names)
		}
	}
	// early break
	count := 0
	for range doc.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("break yielded %d", count)
	}
}
