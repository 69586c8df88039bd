package token

import (
	"stlkit/internal/source"
)

// Token is one lexeme of an ASCII STL file.
type Token struct {
	Kind Kind
	Span source.Span
	// Text is the exact source slice; for Header it is the solid name.
	Text string
	// Value holds the parsed number of a FloatLit.
	Value float32
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// IsKeyword reports whether the token is a grammar keyword.
func (t Token) IsKeyword() bool {
	return t.Kind.IsKeyword()
}

// IsFloat reports whether the token is a numeric literal.
func (t Token) IsFloat() bool {
	return t.Kind == FloatLit
}
