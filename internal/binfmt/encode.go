package binfmt

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"fortio.org/safecast"

	"stlkit/internal/diag"
	"stlkit/internal/geom"
	"stlkit/internal/source"
)

// Encode serializes triangles into the binary dialect. The header is cut to
// 80 bytes on a rune boundary and padded with NUL; attribute fields are zero.
func Encode(header string, tris []geom.Triangle) ([]byte, error) {
	count, err := safecast.Conv[uint32](len(tris))
	if err != nil {
		return nil, diag.BinaryError(diag.BinTooManyTriangles, source.Span{},
			"%d triangles do not fit the 32-bit count field", len(tris))
	}

	buf := make([]byte, 0, Size(len(tris)))
	buf = AppendHeader(buf, header)
	buf = binary.LittleEndian.AppendUint32(buf, count)
	for i := range tris {
		buf = AppendTriangle(buf, tris[i])
	}
	return buf, nil
}

// EncodeTo writes the binary encoding to w.
func EncodeTo(w io.Writer, header string, tris []geom.Triangle) error {
	buf, err := Encode(header, tris)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// AppendHeader appends exactly HeaderSize bytes.
func AppendHeader(buf []byte, header string) []byte {
	h := []byte(header)
	if len(h) > HeaderSize {
		cut := HeaderSize
		for cut > 0 && !utf8.RuneStart(h[cut]) {
			cut--
		}
		h = h[:cut]
	}
	buf = append(buf, h...)
	for i := len(h); i < HeaderSize; i++ {
		buf = append(buf, 0)
	}
	return buf
}

// AppendTriangle appends one 50-byte record.
func AppendTriangle(buf []byte, t geom.Triangle) []byte {
	vs := [4]geom.Vec3{t.Normal, t.Vertices[0], t.Vertices[1], t.Vertices[2]}
	for _, v := range vs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.X))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Y))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Z))
	}
	return binary.LittleEndian.AppendUint16(buf, 0)
}
