package screen

import "testing"

func TestFilter_Toggle(t *testing.T) {
	var f Filter
	if f.Chapter() != nil {
		t.Fatal("zero filter should be unfiltered")
	}

	f.Toggle("Algebra")
	if c := f.Chapter(); c == nil || *c != "Algebra" {
		t.Fatalf("Chapter = %v, want Algebra", c)
	}

	f.Toggle("Geometry")
	if c := f.Chapter(); c == nil || *c != "Geometry" {
		t.Fatalf("Chapter = %v, want Geometry", c)
	}

	f.Toggle("Geometry")
	if f.Chapter() != nil {
		t.Error("toggling the selected chapter should clear the filter")
	}
}

func TestFilter_NilIsUnfiltered(t *testing.T) {
	var f *Filter
	if f.Chapter() != nil {
		t.Error("nil filter should be unfiltered")
	}
}
