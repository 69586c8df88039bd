package diag

import (
	"fmt"
)

// Code is a compact, stable identifier of a diagnostic kind.
type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// ASCII-диалект
	AsciiInfo           Code = 1000
	AsciiMissingSolid   Code = 1001
	AsciiUnexpectedChar Code = 1002
	AsciiInvalidFloat   Code = 1003
	AsciiInvalidHeader  Code = 1004
	AsciiExpectFacet    Code = 1005
	AsciiExpectKeyword  Code = 1006
	AsciiExpectFloat    Code = 1007
	AsciiTooLarge       Code = 1008

	// бинарный диалект
	BinInfo              Code = 2000
	BinTruncatedCount    Code = 2001
	BinTruncatedTriangle Code = 2002
	BinTooManyTriangles  Code = 2003
	BinTrailingBytes     Code = 2004
	BinCountMismatch     Code = 2005

	// ввод-вывод
	IOLoadFileError Code = 3001
	IOWriteError    Code = 3002
	IODecompress    Code = 3003
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	AsciiInfo:            "ASCII information",
	AsciiMissingSolid:    "Missing solid keyword",
	AsciiUnexpectedChar:  "Unexpected character",
	AsciiInvalidFloat:    "Invalid float",
	AsciiInvalidHeader:   "Invalid header",
	AsciiExpectFacet:     "Expected facet or endsolid",
	AsciiExpectKeyword:   "Expected keyword",
	AsciiExpectFloat:     "Expected float",
	AsciiTooLarge:        "Input too large",
	BinInfo:              "Binary information",
	BinTruncatedCount:    "Truncated triangle count",
	BinTruncatedTriangle: "Truncated triangle",
	BinTooManyTriangles:  "Too many triangles",
	BinTrailingBytes:     "Trailing bytes after last triangle",
	BinCountMismatch:     "Triangle count does not match file size",
	IOLoadFileError:      "I/O load file error",
	IOWriteError:         "I/O write error",
	IODecompress:         "Decompression error",
}

// ID returns the short code, e.g. "ASC1003".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("ASC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("BIN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Dialect reports which decoder a code belongs to; I/O codes have none.
func (c Code) Dialect() Dialect {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return DialectASCII
	case ic >= 2000 && ic < 3000:
		return DialectBinary
	}
	return DialectUnknown
}
