package geom

import (
	"math"
	"testing"
)

func TestBoundsOfEmpty(t *testing.T) {
	if _, ok := BoundsOf(nil); ok {
		t.Fatal("BoundsOf(nil) reported ok")
	}
	if _, ok := BoundsOf([]Triangle{}); ok {
		t.Fatal("BoundsOf(empty) reported ok")
	}
}

func TestBoundsOfMixedSigns(t *testing.T) {
	tris := []Triangle{
		TriangleFrom([4][3]float32{{0, 0, 5}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}),
		TriangleFrom([4][3]float32{{0, 0, 0}, {1, 0, -1}, {0, 1, 0}, {0, 0, 1}}),
	}
	b, ok := BoundsOf(tris)
	if !ok {
		t.Fatal("expected bounds")
	}
	want := Bounds{
		X: Range{Min: 0, Max: 1},
		Y: Range{Min: 0, Max: 1},
		Z: Range{Min: -1, Max: 5},
	}
	if b != want {
		t.Fatalf("BoundsOf = %+v, want %+v", b, want)
	}
	if s := b.Size(); s != (Vec3{X: 1, Y: 1, Z: 6}) {
		t.Errorf("Size = %v", s)
	}
}

func TestBoundsOfSingleVertexValue(t *testing.T) {
	tri := TriangleFrom([4][3]float32{{-2, 3, 7}, {-2, 3, 7}, {-2, 3, 7}, {}})
	b, ok := BoundsOf([]Triangle{tri})
	if !ok {
		t.Fatal("expected bounds")
	}
	if b.X != (Range{-2, -2}) || b.Y != (Range{3, 3}) || b.Z != (Range{7, 7}) {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestBoundsOfSkipsNaN(t *testing.T) {
	nan := float32(math.NaN())
	tri := TriangleFrom([4][3]float32{{nan, 0, 0}, {1, 2, 3}, {-1, 4, 5}, {}})
	b, ok := BoundsOf([]Triangle{tri})
	if !ok {
		t.Fatal("expected bounds")
	}
	want := Bounds{
		X: Range{Min: -1, Max: 1},
		Y: Range{Min: 0, Max: 4},
		Z: Range{Min: 0, Max: 5},
	}
	if b != want {
		t.Fatalf("BoundsOf = %+v, want %+v", b, want)
	}

	// NaN после конечных значений тоже пропускается
	tri = TriangleFrom([4][3]float32{{2, 0, 0}, {nan, nan, nan}, {-3, 1, 1}, {}})
	b, _ = BoundsOf([]Triangle{tri})
	if b.X != (Range{Min: -3, Max: 2}) || b.Y != (Range{Min: 0, Max: 1}) {
		t.Fatalf("BoundsOf = %+v", b)
	}
}

func TestBoundsOfAllNaNAxis(t *testing.T) {
	nan := float32(math.NaN())
	tri := TriangleFrom([4][3]float32{{nan, 1, 1}, {nan, 2, 2}, {nan, 3, 3}, {}})
	b, ok := BoundsOf([]Triangle{tri})
	if !ok {
		t.Fatal("expected bounds")
	}
	if !math.IsNaN(float64(b.X.Min)) || !math.IsNaN(float64(b.X.Max)) {
		t.Fatalf("X = %+v, want NaN", b.X)
	}
	if b.Y != (Range{Min: 1, Max: 3}) {
		t.Fatalf("Y = %+v", b.Y)
	}
}
