package geom

// Triangle is one facet of a mesh: a declared normal and three vertices in
// winding order.
type Triangle struct {
	Normal   Vec3
	Vertices [3]Vec3
}

// TriangleFrom builds a triangle from four triples: the three vertices
// followed by the normal.
func TriangleFrom(data [4][3]float32) Triangle {
	return Triangle{
		Normal: NewVec3(data[3]),
		Vertices: [3]Vec3{
			NewVec3(data[0]),
			NewVec3(data[1]),
			NewVec3(data[2]),
		},
	}
}

// Lines returns the three edges v0→v1, v1→v2 and v2→v0 in vertex form.
func (t Triangle) Lines() [3]Line3 {
	return [3]Line3{
		LineBetween(t.Vertices[0], t.Vertices[1]),
		LineBetween(t.Vertices[1], t.Vertices[2]),
		LineBetween(t.Vertices[2], t.Vertices[0]),
	}
}

// Finite reports whether the normal and all vertices are finite.
func (t Triangle) Finite() bool {
	return t.Normal.Finite() && t.Vertices[0].Finite() && t.Vertices[1].Finite() && t.Vertices[2].Finite()
}
