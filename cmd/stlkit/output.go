package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/chewxy/math32"

	"stlkit/internal/geom"
)

type rangeJSON struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

type boundsJSON struct {
	X    rangeJSON  `json:"x"`
	Y    rangeJSON  `json:"y"`
	Z    rangeJSON  `json:"z"`
	Size [3]float32 `json:"size"`
}

// makeBoundsJSON returns nil for absent bounds and for bounds with NaN or
// infinite components, which JSON cannot carry.
func makeBoundsJSON(b geom.Bounds, ok bool) *boundsJSON {
	if !ok {
		return nil
	}
	size := b.Size()
	for _, v := range []float32{b.X.Min, b.X.Max, b.Y.Min, b.Y.Max, b.Z.Min, b.Z.Max, size.X, size.Y, size.Z} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return nil
		}
	}
	return &boundsJSON{
		X:    rangeJSON{Min: b.X.Min, Max: b.X.Max},
		Y:    rangeJSON{Min: b.Y.Min, Max: b.Y.Max},
		Z:    rangeJSON{Min: b.Z.Min, Max: b.Z.Max},
		Size: size.Array(),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func writeBoundsPretty(w io.Writer, b geom.Bounds) {
	size := b.Size()
	rows := []struct {
		axis string
		r    geom.Range
		size float32
	}{
		{"x", b.X, size.X},
		{"y", b.Y, size.Y},
		{"z", b.Z, size.Z},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s: %s .. %s (%s)\n", row.axis, formatFloat(row.r.Min), formatFloat(row.r.Max), formatFloat(row.size))
	}
}

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q", format)
}
