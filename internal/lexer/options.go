package lexer

import (
	"context"
	"log/slog"

	"stlkit/internal/token"
)

// Options tunes a Lexer. The zero value is ready to use.
type Options struct {
	// Logger receives a debug record for every emitted token. It may be nil.
	// Logging never influences tokenization.
	Logger *slog.Logger
}

func (lx *Lexer) trace(tok token.Token) {
	lg := lx.opts.Logger
	if lg == nil || !lg.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	lg.Debug("stl token",
		"kind", tok.Kind.String(),
		"text", tok.Text,
		"start", tok.Span.Start,
		"end", tok.Span.End,
	)
}
