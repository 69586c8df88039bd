package source

import "testing"

func TestFileSetAddAndGet(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.stl", []byte("solid a\n"))
	b := fs.Add("dir/../b.stl", []byte{0, 1, 2}, 0)

	if a == b {
		t.Fatalf("expected distinct ids, got %d twice", a)
	}
	if fs.Len() != 2 {
		t.Fatalf("Len = %d, want 2", fs.Len())
	}
	if got := fs.Get(a); got.Flags&FileVirtual == 0 {
		t.Errorf("virtual flag missing on %q", got.Path)
	}
	f, ok := fs.GetByPath("b.stl")
	if !ok {
		t.Fatal("GetByPath(b.stl) not found")
	}
	if f.ID != b {
		t.Errorf("GetByPath returned id %d, want %d", f.ID, b)
	}
}

func TestFileSetKeepsBytesVerbatim(t *testing.T) {
	fs := NewFileSet()
	raw := []byte("solid x\r\nfacet\r\n")
	id := fs.AddVirtual("crlf.stl", raw)
	if got := string(fs.Get(id).Content); got != string(raw) {
		t.Fatalf("content rewritten: %q", got)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.stl", []byte("solid t\nfacet normal\n  outer"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{7, LineCol{1, 8}}, // сам '\n' принадлежит первой строке
		{8, LineCol{2, 1}},
		{14, LineCol{2, 7}},
		{23, LineCol{3, 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	f := NewVirtualFile("t.stl", []byte("first\r\n\nthird"))
	cases := map[uint32]string{
		0: "",
		1: "first",
		2: "",
		3: "third",
		4: "",
	}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}
