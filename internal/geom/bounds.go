package geom

import "github.com/chewxy/math32"

// Range is a closed interval [Min, Max] along one axis.
type Range struct {
	Min, Max float32
}

// Size returns Max-Min.
func (r Range) Size() float32 {
	return r.Max - r.Min
}

// extend ignores a NaN operand: a NaN bound is replaced by the next number
// and a NaN v leaves r unchanged.
func (r Range) extend(v float32) Range {
	if math32.IsNaN(v) {
		return r
	}
	if v < r.Min || math32.IsNaN(r.Min) {
		r.Min = v
	}
	if v > r.Max || math32.IsNaN(r.Max) {
		r.Max = v
	}
	return r
}

// Bounds holds the per-axis extent of a set of vertices.
type Bounds struct {
	X, Y, Z Range
}

// Size returns the extent along each axis as a vector.
func (b Bounds) Size() Vec3 {
	return Vec3{X: b.X.Size(), Y: b.Y.Size(), Z: b.Z.Size()}
}

// BoundsOf walks every vertex of every triangle once and returns the
// componentwise minimum and maximum. ok is false when there are no triangles.
func BoundsOf(triangles []Triangle) (b Bounds, ok bool) {
	for i := range triangles {
		for _, v := range triangles[i].Vertices {
			if !ok {
				b = Bounds{
					X: Range{Min: v.X, Max: v.X},
					Y: Range{Min: v.Y, Max: v.Y},
					Z: Range{Min: v.Z, Max: v.Z},
				}
				ok = true
				continue
			}
			b.X = b.X.extend(v.X)
			b.Y = b.Y.extend(v.Y)
			b.Z = b.Z.extend(v.Z)
		}
	}
	return b, ok
}
