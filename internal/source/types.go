package source

import "sync"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileCompressed indicates the content was inflated from a compressed container.
	FileCompressed
)

// File captures metadata and content for a single input buffer.
// Content is kept byte-for-byte: binary STL must never be rewritten, so no
// BOM stripping or CRLF normalization happens here.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Flags   FileFlags

	lineOnce sync.Once
	lineIdx  []uint32
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// NewVirtualFile wraps an in-memory buffer that does not belong to a FileSet.
func NewVirtualFile(name string, content []byte) *File {
	return &File{Path: name, Content: content, Flags: FileVirtual}
}
