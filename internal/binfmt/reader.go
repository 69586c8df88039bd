package binfmt

import (
	"encoding/binary"
	"math"

	"fortio.org/safecast"

	"stlkit/internal/source"
)

// reader walks a byte slice front to back.
type reader struct {
	data []byte
	off  int
	file source.FileID
}

func (r *reader) remaining() int {
	return len(r.data) - r.off
}

// take returns the next n bytes, or false when fewer are left.
func (r *reader) take(n int) ([]byte, bool) {
	if r.remaining() < n {
		return nil, false
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, true
}

// skip advances by at most n bytes.
func (r *reader) skip(n int) {
	r.off += min(n, r.remaining())
}

// span covers [off, off+want) clipped to the buffer.
func (r *reader) span(want int) source.Span {
	start := toOffset(r.off)
	end := toOffset(min(r.off+want, len(r.data)))
	return source.Span{File: r.file, Start: start, End: end}
}

// toOffset saturates: spans past 4 GiB point at the last addressable byte.
func toOffset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return math.MaxUint32
	}
	return v
}

func le32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func leFloat(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
