package binfmt

import (
	"fortio.org/safecast"

	"stlkit/internal/diag"
	"stlkit/internal/source"
)

// Lint reports layout oddities that Decode tolerates: bytes after the last
// record and a count that disagrees with the buffer length. It returns
// warnings only; a buffer Decode rejects yields nothing here.
func Lint(file source.FileID, data []byte) []diag.Diagnostic {
	if len(data) < PrefixSize {
		return nil
	}
	count, err := safecast.Conv[int](le32(data[HeaderSize:PrefixSize]))
	if err != nil {
		return nil
	}
	want := Size(count)
	if len(data) < want-AttrSize {
		return nil
	}

	var out []diag.Diagnostic
	if len(data) > want {
		sp := source.Span{File: file, Start: toOffset(want), End: toOffset(len(data))}
		d := diag.New(diag.SevWarning, diag.BinTrailingBytes, sp,
			"binary STL has trailing bytes after the last triangle")
		fits := (len(data) - PrefixSize) / RecordSize
		if fits != count {
			d = d.WithNote(sp, "buffer holds room for more triangles than the count field declares")
			out = append(out, diag.New(diag.SevWarning, diag.BinCountMismatch,
				source.Span{File: file, Start: HeaderSize, End: PrefixSize},
				"triangle count field does not match the file size"))
		}
		out = append(out, d)
	}
	return out
}
