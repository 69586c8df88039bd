package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stlkit/internal/diag"
	"stlkit/internal/source"
	"stlkit/internal/stl"
)

// ErrNonFinite is returned by Convert when ASCII output is requested for a
// model with NaN or infinite components.
var ErrNonFinite = errors.New("model has non-finite components, ASCII output would not parse")

// ConvertOptions selects the output encoding.
type ConvertOptions struct {
	// To is the output dialect; DialectUnknown keeps the input dialect.
	To diag.Dialect
	// Compression of the output. CompressionFromPath(out) is a sensible default.
	Compression Compression
	Level       int
	FileSet     *source.FileSet
	Progress    ProgressSink
	Logger      *slog.Logger
}

// ConvertResult reports what Convert did.
type ConvertResult struct {
	FileID    source.FileID
	From, To  diag.Dialect
	Triangles int
	Bytes     int // размер до сжатия
	Timings   Timings
}

// Convert decodes in and writes it to out in the requested dialect and
// container. Decode errors are returned unchanged so callers can report
// them as diagnostics.
func Convert(ctx context.Context, in, out string, opts ConvertOptions) (ConvertResult, error) {
	var res ConvertResult
	if opts.FileSet == nil {
		opts.FileSet = source.NewFileSet()
	}

	step := func(stage Stage, fn func() error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		emit(opts.Progress, Event{File: in, Stage: stage, Status: StatusWorking})
		t0 := time.Now()
		err := fn()
		res.Timings.Set(stage, time.Since(t0))
		if err != nil {
			emit(opts.Progress, Event{File: in, Stage: stage, Status: StatusError, Err: err})
		}
		return err
	}

	var file *source.File
	if err := step(StageRead, func() error {
		id, err := Load(opts.FileSet, in)
		if err != nil {
			return err
		}
		res.FileID = id
		file = opts.FileSet.Get(id)
		return nil
	}); err != nil {
		return res, err
	}

	var model *stl.Model
	if err := step(StageDecode, func() error {
		var err error
		res.From = stl.Detect(file.Content)
		model, err = stl.ParseFile(file, stl.Options{Logger: opts.Logger})
		return err
	}); err != nil {
		return res, err
	}
	res.Triangles = model.TriangleCount()

	res.To = opts.To
	if res.To == diag.DialectUnknown {
		res.To = res.From
	}
	var payload []byte
	if err := step(StageEncode, func() error {
		switch res.To {
		case diag.DialectASCII:
			if i, bad := model.FirstNonFinite(); bad {
				return fmt.Errorf("%w: triangle %d", ErrNonFinite, i)
			}
			payload = []byte(model.ASCII())
			return nil
		case diag.DialectBinary:
			var err error
			payload, err = model.Binary()
			return err
		}
		return fmt.Errorf("unsupported output dialect %v", res.To)
	}); err != nil {
		return res, err
	}
	res.Bytes = len(payload)

	if err := step(StageWrite, func() error {
		if err := WriteFile(out, payload, opts.Compression, opts.Level); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		return nil
	}); err != nil {
		return res, err
	}

	emit(opts.Progress, Event{File: in, Stage: StageWrite, Status: StatusDone, Elapsed: res.Timings.Sum(StageRead, StageDecode, StageEncode, StageWrite)})
	if opts.Logger != nil {
		opts.Logger.Info("converted",
			"in", in,
			"out", out,
			"from", res.From.String(),
			"to", res.To.String(),
			"triangles", res.Triangles,
			"compression", opts.Compression.String(),
		)
	}
	return res, nil
}

// ParseDialect maps "ascii"/"binary" (any case) to a dialect; "" keeps the input's.
func ParseDialect(s string) (diag.Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return diag.DialectUnknown, nil
	case "ascii", "text":
		return diag.DialectASCII, nil
	case "binary", "bin":
		return diag.DialectBinary, nil
	}
	return diag.DialectUnknown, fmt.Errorf("unknown dialect %q (expected ascii|binary)", s)
}
