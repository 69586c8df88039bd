package stl

import (
	"stlkit/internal/geom"
)

// Model is a decoded STL file. Triangle order is the order of the source.
type Model struct {
	Header    string
	Triangles []geom.Triangle
}

// TriangleCount returns len(m.Triangles).
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// DimensionRange returns the per-axis minimum and maximum over all vertices.
// ok is false when the model has no triangles.
func (m *Model) DimensionRange() (geom.Bounds, bool) {
	return geom.BoundsOf(m.Triangles)
}

// FirstNonFinite returns the index of the first triangle with a NaN or
// infinite component. Such a model has no ASCII form that Parse accepts.
func (m *Model) FirstNonFinite() (int, bool) {
	for i := range m.Triangles {
		if !m.Triangles[i].Finite() {
			return i, true
		}
	}
	return -1, false
}
