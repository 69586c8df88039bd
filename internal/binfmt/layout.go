package binfmt

const (
	// HeaderSize is the fixed length of the binary header.
	HeaderSize = 80
	// CountSize is the width of the triangle count field.
	CountSize = 4
	// PrefixSize is the offset of the first triangle record.
	PrefixSize = HeaderSize + CountSize
	// FloatsSize is the part of a record holding the 12 coordinates.
	FloatsSize = 12 * 4
	// AttrSize is the trailing attribute field of a record.
	AttrSize = 2
	// RecordSize is the full size of one triangle record.
	RecordSize = FloatsSize + AttrSize
)

// Size returns the exact encoded size of a model with n triangles.
func Size(n int) int {
	return PrefixSize + n*RecordSize
}
