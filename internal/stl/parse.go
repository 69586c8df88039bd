package stl

import (
	"log/slog"

	"stlkit/internal/binfmt"
	"stlkit/internal/parser"
	"stlkit/internal/source"
)

type Options struct {
	// Name labels the in-memory buffer in error spans; defaults to "<memory>".
	Name string
	// Logger gets Debug records from the tokenizer, the parser and the
	// binary decoder. May be nil.
	Logger *slog.Logger
}

// Parse decodes data in whichever dialect Detect reports.
func Parse(data []byte) (*Model, error) {
	return ParseWith(data, Options{})
}

// ParseWith is Parse with options.
func ParseWith(data []byte, opts Options) (*Model, error) {
	name := opts.Name
	if name == "" {
		name = "<memory>"
	}
	return ParseFile(source.NewVirtualFile(name, data), opts)
}

// ParseFile decodes a file owned by a FileSet; error spans carry its ID.
func ParseFile(file *source.File, opts Options) (*Model, error) {
	if Detect(file.Content) == ASCII {
		res, err := parser.ParseFile(file, parser.Options{Logger: opts.Logger})
		if err != nil {
			return nil, err
		}
		return &Model{Header: res.Header, Triangles: res.Triangles}, nil
	}

	res, err := binfmt.DecodeWith(file.Content, binfmt.Options{File: file.ID, Logger: opts.Logger})
	if err != nil {
		return nil, err
	}
	return &Model{Header: res.Header, Triangles: res.Triangles}, nil
}
