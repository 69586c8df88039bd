package testkit

import (
	"math"
	"strings"
	"testing"

	"stlkit/internal/geom"
	"stlkit/internal/lexer"
	"stlkit/internal/source"
	"stlkit/internal/stl"
	"stlkit/internal/token"
)

const sample = "solid t\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nvertex 0 1 0\nendloop\nendfacet\nendsolid t\n"

func TestCheckTokenSpans(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.stl", []byte(sample)))
	toks, err := lexer.New(file, lexer.Options{}).Tokenize()
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if err := CheckTokenSpans(toks, file); err != nil {
		t.Fatalf("valid stream rejected: %v", err)
	}

	bad := append([]token.Token(nil), toks...)
	bad[2].Span.Start = 0
	if err := CheckTokenSpans(bad, file); err == nil || !strings.Contains(err.Error(), "overlaps") {
		t.Fatalf("overlap not reported: %v", err)
	}

	bad = append([]token.Token(nil), toks...)
	bad[len(bad)-1].Span.End = uint32(len(sample) + 1)
	if err := CheckTokenSpans(bad, file); err == nil || !strings.Contains(err.Error(), "outside content") {
		t.Fatalf("out of range span not reported: %v", err)
	}

	if err := CheckTokenSpans(nil, nil); err == nil {
		t.Fatal("nil file must be rejected")
	}
}

func TestCheckRoundTrip(t *testing.T) {
	m := &stl.Model{
		Header: "line one\r\nline two",
		Triangles: []geom.Triangle{{
			Normal:   geom.Vec3{X: 0, Y: 0, Z: 1},
			Vertices: [3]geom.Vec3{{X: 1.5e-7}, {Y: -3.25}, {Z: 65504}},
		}},
	}
	if err := CheckRoundTrip(m); err != nil {
		t.Fatalf("CheckRoundTrip: %v", err)
	}

	m.Header = "solid inside"
	if err := CheckRoundTrip(m); err != nil {
		t.Fatalf("CheckRoundTrip with solid header: %v", err)
	}

	// неконечные значения проверяются только в бинарном виде
	inf := float32(math.Inf(1))
	m.Triangles[0].Normal.X = inf
	m.Triangles[0].Vertices[1].Y = float32(math.NaN())
	if err := CheckRoundTrip(m); err != nil {
		t.Fatalf("CheckRoundTrip with non-finite values: %v", err)
	}
}
