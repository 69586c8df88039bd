package testkit

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"stlkit/internal/binfmt"
	"stlkit/internal/geom"
	"stlkit/internal/source"
	"stlkit/internal/stl"
	"stlkit/internal/token"
)

// CheckTokenSpans runs a minimal set of span invariants on a token stream:
// 1) every span points at sf and lies within its content
// 2) spans are ordered and do not overlap
// 3) only the header and EOF may be empty
func CheckTokenSpans(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d (%s) points to file %d, want %d", i, tok.Kind, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d (%s) span %v outside content of %d bytes", i, tok.Kind, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d (%s) span %v overlaps previous end %d", i, tok.Kind, sp, prevEnd)
		}
		if sp.Empty() && tok.Kind != token.Header && tok.Kind != token.EOF {
			return fmt.Errorf("token %d (%s) has empty span", i, tok.Kind)
		}
		prevEnd = sp.End
	}
	return nil
}

// CheckRoundTrip encodes m in both dialects, decodes the results and
// compares them with m. Binary must reproduce every float bit for bit.
// ASCII must reproduce every float and the normalized header; models with
// NaN or infinite components skip the ASCII leg.
func CheckRoundTrip(m *stl.Model) error {
	bin, err := m.Binary()
	if err != nil {
		return fmt.Errorf("binary encode: %w", err)
	}
	// декодер вызывается напрямую: заголовок может начинаться с "solid "
	fromBin, err := binfmt.Decode(bin)
	if err != nil {
		return fmt.Errorf("binary decode: %w", err)
	}
	if err := sameTriangles(m.Triangles, fromBin.Triangles, true); err != nil {
		return fmt.Errorf("binary: %w", err)
	}

	// NaN и Inf не имеют текстовой записи, которую примет лексер
	if !finite(m.Triangles) {
		return nil
	}
	fromText, err := stl.Parse([]byte(m.ASCII()))
	if err != nil {
		return fmt.Errorf("ASCII decode: %w", err)
	}
	if want := stl.NormalizeHeader(m.Header); fromText.Header != want {
		return fmt.Errorf("ASCII header = %q, want %q", fromText.Header, want)
	}
	if err := sameTriangles(m.Triangles, fromText.Triangles, false); err != nil {
		return fmt.Errorf("ASCII: %w", err)
	}
	return nil
}

func sameTriangles(want, got []geom.Triangle, bitExact bool) error {
	if len(want) != len(got) {
		return fmt.Errorf("got %d triangles, want %d", len(got), len(want))
	}
	for i := range want {
		w, g := floats(want[i]), floats(got[i])
		for j := range w {
			if !sameFloat(w[j], g[j], bitExact) {
				return fmt.Errorf("triangle %d float %d = %v, want %v", i, j, g[j], w[j])
			}
		}
	}
	return nil
}

func sameFloat(want, got float32, bitExact bool) bool {
	if bitExact {
		return math.Float32bits(want) == math.Float32bits(got)
	}
	return want == got
}

func finite(tris []geom.Triangle) bool {
	for _, t := range tris {
		if !t.Finite() {
			return false
		}
	}
	return true
}

func floats(t geom.Triangle) [12]float32 {
	var out [12]float32
	n := t.Normal.Array()
	copy(out[0:3], n[:])
	for i, v := range t.Vertices {
		a := v.Array()
		copy(out[3+3*i:6+3*i], a[:])
	}
	return out
}
