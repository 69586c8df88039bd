package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 9}
	if s.Empty() {
		t.Error("span should not be empty")
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
	if s.String() != "1:4-9" {
		t.Errorf("String = %q", s.String())
	}
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("zero-width span should be empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 2, Start: 10, End: 12}
	b := Span{File: 2, Start: 4, End: 11}
	if got := a.Cover(b); got != (Span{File: 2, Start: 4, End: 12}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 3, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
}
