package geom

// LineForm tells how a Line3 stores its second vector.
type LineForm uint8

const (
	// LineVertex stores an origin and an end point.
	LineVertex LineForm = iota
	// LineParameterized stores an origin and a direction.
	LineParameterized
)

// Line3 is a line segment kept in either vertex or parameterized form.
// The zero value is a degenerate vertex-form line at the origin.
type Line3 struct {
	form   LineForm
	origin Vec3
	other  Vec3 // end point or direction, depending on form
}

// LineBetween returns the vertex-form line from origin to end.
func LineBetween(origin, end Vec3) Line3 {
	return Line3{form: LineVertex, origin: origin, other: end}
}

// LineAlong returns the parameterized line origin + t*direction.
func LineAlong(origin, direction Vec3) Line3 {
	return Line3{form: LineParameterized, origin: origin, other: direction}
}

func (l Line3) Form() LineForm {
	return l.form
}

// Parameterized converts the line into origin/direction form.
func (l Line3) Parameterized() Line3 {
	if l.form == LineParameterized {
		return l
	}
	return LineAlong(l.origin, l.other.Sub(l.origin))
}

func (l Line3) Origin() Vec3 {
	return l.origin
}

// End returns the end point; for a parameterized line that is origin+direction.
func (l Line3) End() Vec3 {
	if l.form == LineParameterized {
		return l.origin.Add(l.other)
	}
	return l.other
}

func (l Line3) Direction() Vec3 {
	if l.form == LineParameterized {
		return l.other
	}
	return l.other.Sub(l.origin)
}
