package stl

import (
	"bytes"

	"stlkit/internal/diag"
)

// Dialect identifies the serialization of a buffer.
type Dialect = diag.Dialect

const (
	ASCII  = diag.DialectASCII
	Binary = diag.DialectBinary
)

var asciiMagic = []byte("solid ")

// Detect picks the decoder for data. Only the first six bytes are examined;
// short buffers go to the binary decoder, which reports them as truncated.
func Detect(data []byte) Dialect {
	if bytes.HasPrefix(data, asciiMagic) {
		return ASCII
	}
	return Binary
}
