package stl

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"stlkit/internal/geom"
)

// ASCII renders the model in the ASCII dialect. The output parses back to
// the same triangles and to the normalized header.
func (m *Model) ASCII() string {
	var b strings.Builder
	b.Grow(64 + len(m.Triangles)*160)
	// strings.Builder не возвращает ошибок записи
	_ = m.writeASCII(&b)
	return b.String()
}

// WriteASCII streams the ASCII rendering to w.
func (m *Model) WriteASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := m.writeASCII(bw); err != nil {
		return err
	}
	return bw.Flush()
}

type stringWriter interface {
	io.Writer
	io.StringWriter
}

func (m *Model) writeASCII(w stringWriter) error {
	name := NormalizeHeader(m.Header)
	if _, err := w.WriteString("solid " + name + "\n"); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	for i := range m.Triangles {
		t := &m.Triangles[i]
		buf = appendVecLine(buf[:0], "facet normal ", t.Normal)
		buf = append(buf, "    outer loop\n"...)
		for _, v := range t.Vertices {
			buf = appendVecLine(buf, "        vertex ", v)
		}
		buf = append(buf, "    endloop\nendfacet\n"...)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	_, err := w.WriteString("endsolid " + name + "\n")
	return err
}

func appendVecLine(buf []byte, prefix string, v geom.Vec3) []byte {
	buf = append(buf, prefix...)
	buf = appendFloat(buf, v.X)
	buf = append(buf, ' ')
	buf = appendFloat(buf, v.Y)
	buf = append(buf, ' ')
	buf = appendFloat(buf, v.Z)
	return append(buf, '\n')
}

// appendFloat writes the shortest scientific form that reads back as v.
func appendFloat(buf []byte, v float32) []byte {
	return strconv.AppendFloat(buf, float64(v), 'e', -1, 32)
}

var headerBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\x00", " ")

// NormalizeHeader turns every line break (CRLF, CR or LF) and NUL into a
// single space and trims the result, so the header fits on the solid line.
func NormalizeHeader(h string) string {
	return strings.TrimSpace(headerBreaks.Replace(h))
}
