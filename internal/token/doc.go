// Package token defines the lexical tokens of the ASCII STL dialect.
// Invariants:
//   - A token stream starts with exactly one Header token, followed by an
//     interleaving of keyword and FloatLit tokens.
//   - Keywords are case-sensitive and lowercase only.
//   - Token.Span matches Text exactly (Start..End) in the original buffer.
//   - Whitespace is never represented in the stream.
package token
