package lexer

import (
	"errors"
	"strconv"

	"stlkit/internal/diag"
	"stlkit/internal/token"
)

// scanNumber greedily takes a run of [0-9+-.eE] and parses it as float32.
// The run is not validated byte by byte; strconv decides whether it is a
// number, and anything it rejects is an invalid float. Overflow to ±Inf is
// accepted.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isNumberByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.cursor.Since(start))

	v, err := strconv.ParseFloat(text, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token.Token{Kind: token.Invalid, Span: sp, Text: text},
			diag.ASCIIError(diag.AsciiInvalidFloat, sp, "invalid float %q", text)
	}
	return token.Token{Kind: token.FloatLit, Span: sp, Text: text, Value: float32(v)}, nil
}
