// Package diag defines the error and diagnostic model shared by the STL codec
// and the tools around it.
//
// # Errors
//
// Every codec failure is a *Error. It carries the Dialect that produced it
// (ASCII or binary), a stable Code, a short human message and, for the ASCII
// dialect, the source.Span of the offending bytes. Format detection is a
// heuristic, so the dialect tag tells the caller which decoder gave up:
//
//	if errors.Is(err, diag.ErrBinary) { ... }
//
// Errors are terminal: the codec stops at the first one and never returns a
// partial model alongside it.
//
// # Diagnostics
//
// Diagnostic and Bag are used by multi-file tooling (the driver and the CLI)
// to collect findings per file, sort them deterministically and hand them to
// internal/diagfmt for rendering. Package diag itself performs no formatting
// or IO.
package diag
