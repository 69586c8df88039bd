package stl

import (
	"io"

	"stlkit/internal/binfmt"
)

// Binary encodes the model in the binary dialect.
func (m *Model) Binary() ([]byte, error) {
	return binfmt.Encode(m.Header, m.Triangles)
}

// WriteBinary streams the binary encoding to w.
func (m *Model) WriteBinary(w io.Writer) error {
	return binfmt.EncodeTo(w, m.Header, m.Triangles)
}
