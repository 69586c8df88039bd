package parser

import (
	"context"
	"log/slog"

	"stlkit/internal/diag"
	"stlkit/internal/geom"
	"stlkit/internal/lexer"
	"stlkit/internal/source"
	"stlkit/internal/token"
)

type Options struct {
	// Logger receives a debug record per completed facet. May be nil.
	Logger *slog.Logger
}

// Result is the outcome of a successful parse.
type Result struct {
	Header    string
	Triangles []geom.Triangle
}

// Parser: состояние разбора одного потока токенов
type Parser struct {
	toks []token.Token
	pos  int
	opts Options
	// lastSpan: span последнего съеденного токена, для ошибок на конце потока
	lastSpan source.Span
}

// Parse runs the grammar over a token stream produced by the lexer.
func Parse(tokens []token.Token) (Result, error) {
	return ParseWith(tokens, Options{})
}

// ParseWith is Parse with options.
func ParseWith(tokens []token.Token, opts Options) (Result, error) {
	p := Parser{toks: tokens, opts: opts}
	return p.parseSolid()
}

// ParseBytes lexes and parses an in-memory ASCII STL buffer.
func ParseBytes(data []byte) (Result, error) {
	return ParseFile(source.NewVirtualFile("<memory>", data), Options{})
}

// ParseFile lexes and parses a file already registered in a FileSet, so that
// error spans can be resolved against it.
func ParseFile(file *source.File, opts Options) (Result, error) {
	toks, err := lexer.New(file, lexer.Options{Logger: opts.Logger}).Tokenize()
	if err != nil {
		return Result{}, err
	}
	return ParseWith(toks, opts)
}

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: p.endSpan()}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) advance() token.Token {
	tok, ok := p.peek()
	if ok {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// endSpan is a zero-width span right after the last consumed token.
func (p *Parser) endSpan() source.Span {
	return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
}

func (p *Parser) parseSolid() (Result, error) {
	head := p.advance()
	if head.Kind != token.Header {
		return Result{}, diag.ASCIIError(diag.AsciiInvalidHeader, head.Span, "invalid header")
	}

	res := Result{Header: head.Text}
	for {
		tok := p.advance()
		switch tok.Kind {
		case token.KwEndsolid:
			return res, nil
		case token.KwFacet:
			tri, err := p.parseFacet()
			if err != nil {
				return Result{}, err
			}
			res.Triangles = append(res.Triangles, tri)
			p.trace(len(res.Triangles)-1, tok.Span, tri)
		default:
			return Result{}, diag.ASCIIError(diag.AsciiExpectFacet, tok.Span,
				"expected facet or endsolid, found %s", describe(tok))
		}
	}
}

func (p *Parser) trace(index int, sp source.Span, tri geom.Triangle) {
	lg := p.opts.Logger
	if lg == nil || !lg.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	lg.Debug("stl facet",
		"index", index,
		"offset", sp.Start,
		"normal", tri.Normal.Array(),
	)
}

// describe names a token for error messages.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.FloatLit:
		return "number " + tok.Text
	case token.Header:
		return "header"
	}
	if tok.IsKeyword() {
		return "'" + tok.Kind.Spelling() + "'"
	}
	return tok.Kind.String()
}
