package diag

import (
	"errors"
	"fmt"

	"stlkit/internal/source"
)

// Dialect names one of the two STL serializations.
type Dialect uint8

const (
	DialectUnknown Dialect = iota
	DialectASCII
	DialectBinary
)

func (d Dialect) String() string {
	switch d {
	case DialectASCII:
		return "ASCII"
	case DialectBinary:
		return "binary"
	default:
		return "unknown"
	}
}

var (
	// ErrASCII matches, via errors.Is, every error raised by the ASCII decoder.
	ErrASCII = errors.New("ASCII STL parse error")
	// ErrBinary matches, via errors.Is, every error raised by the binary codec.
	ErrBinary = errors.New("binary STL parse error")
)

// Error is a terminal codec failure tagged with the dialect that raised it.
type Error struct {
	Dialect Dialect
	Code    Code
	Message string
	// Span locates the offending bytes. It is meaningful for the ASCII
	// dialect; binary errors point at the offset where data ran out.
	Span source.Span
}

// ASCIIError builds an ASCII-dialect error.
func ASCIIError(code Code, span source.Span, format string, args ...any) *Error {
	return &Error{Dialect: DialectASCII, Code: code, Span: span, Message: fmt.Sprintf(format, args...)}
}

// BinaryError builds a binary-dialect error.
func BinaryError(code Code, span source.Span, format string, args ...any) *Error {
	return &Error{Dialect: DialectBinary, Code: code, Span: span, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s STL parse error: %s", e.Dialect, e.Message)
}

// Is reports whether target is the sentinel of e's dialect.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrASCII:
		return e.Dialect == DialectASCII
	case ErrBinary:
		return e.Dialect == DialectBinary
	}
	return false
}

// Diagnostic converts the error into an error-severity diagnostic.
func (e *Error) Diagnostic() Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Code:     e.Code,
		Message:  e.Error(),
		Primary:  e.Span,
	}
}

// AsError unwraps err into a *Error when possible.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
