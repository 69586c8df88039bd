package lexer

import (
	"testing"

	"stlkit/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.stl", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Bump = %q, want %q", got, want)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Peek/Bump past the end must return 0")
	}
}

func TestMarkReset(t *testing.T) {
	cursor := NewCursor(createFile("vertex 1"))
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	if got := string(cursor.Since(m)); got != "ve" {
		t.Errorf("Since = %q, want %q", got, "ve")
	}
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 || cursor.Peek() != 'v' {
		t.Errorf("Reset did not rewind: off=%d", cursor.Off)
	}
}

func TestEatString(t *testing.T) {
	cursor := NewCursor(createFile("solid x"))
	if cursor.EatString("solix") {
		t.Fatal("EatString matched a wrong prefix")
	}
	if cursor.Off != 0 {
		t.Fatalf("failed EatString consumed %d bytes", cursor.Off)
	}
	if !cursor.EatString("solid ") {
		t.Fatal("EatString(solid ) failed")
	}
	if cursor.Peek() != 'x' {
		t.Errorf("Peek after prefix = %q", cursor.Peek())
	}
	if cursor.EatString("xyz") || cursor.Off != 6 {
		t.Error("EatString past EOF must fail without consuming")
	}
}
