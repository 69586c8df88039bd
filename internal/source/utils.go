package source

import (
	"fmt"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

func (f *File) lines() []uint32 {
	f.lineOnce.Do(func() {
		f.lineIdx = buildLineIndex(f.Content)
	})
	return f.lineIdx
}

// Position converts a byte offset into a 1-based line and column.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.lines(), off)
}

// GetLine returns the text of the given 1-based line without its terminator.
// Out-of-range lines yield an empty string.
func (f *File) GetLine(lineNum uint32) string {
	idx := f.lines()
	if lineNum == 0 || int(lineNum) > len(idx)+1 {
		return ""
	}
	var start uint32
	if lineNum > 1 {
		start = idx[lineNum-2] + 1
	}
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if int(lineNum) <= len(idx) {
		end = idx[lineNum-1]
	}
	if start >= end {
		return ""
	}
	line := f.Content[start:end]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return string(line)
}

// buildLineIndex records the offset of every '\n'.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("line offset overflow: %w", err))
			}
			out = append(out, off)
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// количество переводов строки строго до off = номер строки (0-based)
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}
	lineNum, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: lineNum, Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
