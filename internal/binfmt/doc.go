// Package binfmt reads and writes the binary STL dialect.
//
// Layout, all integers and floats little-endian:
//
//	[0:80]   header, free text padded with NUL
//	[80:84]  uint32 triangle count N
//	then N records of 50 bytes:
//	         12 × float32 (normal, v0, v1, v2)
//	         uint16 attribute byte count, ignored on read, zero on write
//
// The count is trusted: decoding fails with a truncation error only when a
// triangle needs bytes that are not there.
package binfmt
