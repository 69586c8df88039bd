// Package stl decodes STL models from either dialect and serializes them
// back.
//
// A buffer that starts with "solid " is read as ASCII, anything else as
// binary. A binary file whose header happens to begin with "solid " is
// misdetected; the format offers no way to tell the two apart.
//
//	m, err := stl.Parse(data)
//	if err != nil {
//		return err
//	}
//	b, ok := m.DimensionRange()
package stl
