package fuzztests

import (
	"errors"
	"testing"
	"time"

	"stlkit/internal/binfmt"
	"stlkit/internal/diag"
	"stlkit/internal/stl"
	"stlkit/internal/testkit"
)

// parseTimeout is the maximum time allowed for decoding a single input.
// If decoding takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// FuzzParseRoundTrip decodes arbitrary bytes with whichever dialect Detect
// picks. Every failure must be a dialect error, and every success must
// survive re-encoding in both dialects.
func FuzzParseRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		m, err := stl.Parse(input)
		if err != nil {
			if !errors.Is(err, diag.ErrASCII) && !errors.Is(err, diag.ErrBinary) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		if err := testkit.CheckRoundTrip(m); err != nil {
			t.Fatalf("round trip: %v", err)
		}
	})
}

// FuzzBinaryDecode feeds raw bytes to the binary decoder regardless of
// their prefix. The triangle count must match what the buffer can hold.
func FuzzBinaryDecode(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		res, err := binfmt.Decode(input)
		if err != nil {
			if !errors.Is(err, diag.ErrBinary) {
				t.Fatalf("unexpected error %v", err)
			}
			return
		}
		if got, limit := len(res.Triangles), (len(input)-binfmt.PrefixSize+binfmt.AttrSize)/binfmt.RecordSize; got > limit {
			t.Fatalf("decoded %d triangles from %d bytes (limit %d)", got, len(input), limit)
		}
		_ = binfmt.Lint(0, input)
	})
}

// FuzzParserNoHang tests that decoding doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("solid x\nfacet facet facet facet\n"))
	f.Add([]byte("solid x\nfacet normal 0 0 0 outer loop vertex 0 0 0 vertex 0 0 0 vertex 0 0 0 endloop endfacet facet"))
	f.Add([]byte("solid x\nendloop endfacet endsolid"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = stl.Parse(input)
		}()

		timer := time.NewTimer(parseTimeout)
		defer timer.Stop()
		select {
		case <-done:
		case <-timer.C:
			t.Fatalf("decoder hang detected: decoding took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
