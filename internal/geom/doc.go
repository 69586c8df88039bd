// Package geom defines the value types of an STL mesh: vectors, triangles,
// edge lines and axis-aligned bounds.
// Invariants:
//   - All types are plain values; methods never mutate the receiver.
//   - Components are float32 and are never sanitized: NaN and ±Inf pass
//     through every operation unchanged.
//   - A Triangle's normal is whatever the source file declared. It is never
//     validated against, or recomputed from, the vertices.
package geom
