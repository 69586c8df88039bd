package lexer

import (
	"unicode/utf8"

	"stlkit/internal/diag"
	"stlkit/internal/source"
	"stlkit/internal/token"
)

// solidPrefix opens every ASCII STL file; the trailing space is part of it.
const solidPrefix = "solid "

var keywordTrie = CompileTrie(token.Keywords()...)

type lexState uint8

const (
	stateSolid lexState = iota
	stateHeader
	stateBody
	stateDone
)

// Lexer turns the bytes of an ASCII STL file into tokens.
// It stops at the first error; after an error or after endsolid every call
// to Next returns EOF.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	trie   *Trie
	state  lexState
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		trie:   keywordTrie,
		state:  stateSolid,
	}
}

// Tokenize lexes an in-memory buffer and returns the whole stream,
// without the trailing EOF token.
func Tokenize(data []byte) ([]token.Token, error) {
	return New(source.NewVirtualFile("<memory>", data), Options{}).Tokenize()
}

// Tokenize drains the lexer. The EOF token is not included.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token. The first token is always the Header.
func (lx *Lexer) Next() (token.Token, error) {
	var (
		tok token.Token
		err error
	)
	switch lx.state {
	case stateSolid:
		if err = lx.checkSize(); err != nil {
			break
		}
		if err = lx.expectSolid(); err != nil {
			break
		}
		tok = lx.scanHeader()
	case stateHeader:
		tok = lx.scanHeader()
	case stateBody:
		tok, err = lx.scanBody()
	default:
		tok = lx.eof()
	}
	if err != nil {
		lx.state = stateDone
		return token.Token{Kind: token.Invalid, Span: tok.Span}, err
	}
	if tok.Kind != token.EOF {
		lx.trace(tok)
	}
	return tok, nil
}

// EmptySpan returns a zero-width span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) eof() token.Token {
	return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
}

// checkSize rejects content that uint32 spans cannot address.
func (lx *Lexer) checkSize() error {
	if n := uint64(len(lx.file.Content)); n > maxContent {
		return diag.ASCIIError(diag.AsciiTooLarge, source.Span{File: lx.file.ID},
			"input of %d bytes exceeds the %d byte limit", n, maxContent)
	}
	return nil
}

func (lx *Lexer) expectSolid() error {
	start := lx.cursor.Mark()
	if lx.cursor.EatString(solidPrefix) {
		lx.state = stateHeader
		return nil
	}
	// подсвечиваем не больше длины префикса
	end := min(len(lx.file.Content), len(solidPrefix))
	for lx.cursor.Off < uint32(end) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.cursor.Reset(start)
	return diag.ASCIIError(diag.AsciiMissingSolid, sp, "model must start with the solid keyword")
}

// scanHeader takes everything up to the first NUL, CR or LF.
func (lx *Lexer) scanHeader() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && !isHeaderEnd(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.state = stateBody
	return token.Token{
		Kind: token.Header,
		Span: lx.cursor.SpanFrom(start),
		Text: string(lx.cursor.Since(start)),
	}
}

func (lx *Lexer) scanBody() (token.Token, error) {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() {
		lx.state = stateDone
		return lx.eof(), nil
	}

	if isNumberStart(lx.cursor.Peek()) {
		return lx.scanNumber()
	}

	start := lx.cursor.Mark()
	if word, ok := lx.trie.Match(&lx.cursor); ok {
		sp := lx.cursor.SpanFrom(start)
		kind, _ := token.LookupKeyword(word)
		if kind == token.KwEndsolid {
			// имя после endsolid не читаем
			lx.state = stateDone
		}
		return token.Token{Kind: kind, Span: sp, Text: word}, nil
	}

	return lx.unexpected()
}

func (lx *Lexer) unexpected() (token.Token, error) {
	start := lx.cursor.Mark()
	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	for i := 0; i < size; i++ {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.cursor.Reset(start)
	if r == utf8.RuneError {
		return token.Token{Span: sp}, diag.ASCIIError(diag.AsciiUnexpectedChar, sp,
			"unexpected byte 0x%02x", lx.cursor.Peek())
	}
	return token.Token{Span: sp}, diag.ASCIIError(diag.AsciiUnexpectedChar, sp,
		"unexpected character %q", r)
}
