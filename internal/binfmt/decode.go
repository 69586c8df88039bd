package binfmt

import (
	"bytes"
	"context"
	"log/slog"

	"fortio.org/safecast"
	"golang.org/x/text/encoding/unicode"

	"stlkit/internal/diag"
	"stlkit/internal/geom"
	"stlkit/internal/source"
)

// Result is a decoded binary model.
type Result struct {
	Header    string
	Triangles []geom.Triangle
}

type Options struct {
	// File is stamped on error spans so they resolve against a FileSet.
	File source.FileID
	// Logger receives one debug record per decoded buffer. May be nil.
	Logger *slog.Logger
}

// Decode parses a binary STL buffer.
func Decode(data []byte) (Result, error) {
	return DecodeWith(data, Options{})
}

// DecodeWith is Decode with options.
func DecodeWith(data []byte, opts Options) (Result, error) {
	r := &reader{data: data, file: opts.File}

	head := data[:min(HeaderSize, len(data))]
	res := Result{Header: DecodeHeader(head)}
	r.skip(HeaderSize)

	raw, ok := r.take(CountSize)
	if !ok {
		return Result{}, diag.BinaryError(diag.BinTruncatedCount, r.span(CountSize),
			"truncated byte sequence: triangle count needs %d bytes at offset %d, have %d",
			CountSize, HeaderSize, max(len(data)-HeaderSize, 0))
	}
	count := le32(raw)
	n, err := safecast.Conv[int](count)
	if err != nil {
		return Result{}, diag.BinaryError(diag.BinTooManyTriangles, r.span(0),
			"triangle count %d does not fit in memory", count)
	}

	// Счётчику не доверяем при выделении памяти: не больше, чем влезет в буфер.
	res.Triangles = make([]geom.Triangle, 0, min(n, (r.remaining()+AttrSize)/RecordSize))
	for i := 0; i < n; i++ {
		rec, ok := r.take(FloatsSize)
		if !ok {
			return Result{}, diag.BinaryError(diag.BinTruncatedTriangle, r.span(FloatsSize),
				"truncated byte sequence: triangle %d of %d needs %d bytes at offset %d, have %d",
				i, n, FloatsSize, r.off, r.remaining())
		}
		res.Triangles = append(res.Triangles, decodeTriangle(rec))
		// атрибут последнего треугольника может отсутствовать
		r.skip(AttrSize)
	}

	if lg := opts.Logger; lg != nil && lg.Enabled(context.Background(), slog.LevelDebug) {
		lg.Debug("stl binary decoded",
			"header", res.Header,
			"triangles", n,
			"trailing", r.remaining(),
		)
	}
	return res, nil
}

func decodeTriangle(rec []byte) geom.Triangle {
	var f [12]float32
	for i := range f {
		f[i] = leFloat(rec[i*4:])
	}
	return geom.Triangle{
		Normal: geom.Vec3{X: f[0], Y: f[1], Z: f[2]},
		Vertices: [3]geom.Vec3{
			{X: f[3], Y: f[4], Z: f[5]},
			{X: f[6], Y: f[7], Z: f[8]},
			{X: f[9], Y: f[10], Z: f[11]},
		},
	}
}

// DecodeHeader turns raw header bytes into text. Trailing NULs are dropped
// and invalid UTF-8 is replaced with U+FFFD.
func DecodeHeader(raw []byte) string {
	raw = bytes.TrimRight(raw, "\x00")
	out, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		// декодер UTF-8 заменяет ошибки, а не возвращает их
		return string(bytes.ToValidUTF8(raw, []byte("�")))
	}
	return string(out)
}
