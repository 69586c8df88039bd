package driver

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"stlkit/internal/binfmt"
	"stlkit/internal/diag"
	"stlkit/internal/geom"
	"stlkit/internal/source"
	"stlkit/internal/stl"
)

// Options tunes Inspect.
type Options struct {
	// Jobs bounds the worker pool; <= 0 means GOMAXPROCS.
	Jobs int
	// FileSet receives every loaded file; a fresh one is used when nil.
	FileSet *source.FileSet
	// MaxDiagnostics caps each per-file bag; 0 is unlimited.
	MaxDiagnostics int
	// Lint adds layout warnings for binary files (trailing bytes, count mismatch).
	Lint     bool
	Progress ProgressSink
	Cache    *DiskCache
	Logger   *slog.Logger
}

// Summary describes one inspected file. A file that failed to load or
// decode has Err set and its diagnostics in Bag; the other fields are zero.
type Summary struct {
	Path      string
	FileID    source.FileID
	Dialect   diag.Dialect
	Header    string
	Triangles int
	Bounds    geom.Bounds
	HasBounds bool
	Cached    bool
	Err       error
	Bag       *diag.Bag
	Elapsed   time.Duration
	Timings   Timings
}

// Inspect decodes every path in parallel and summarizes it. Per-file
// failures are reported in the summaries; the returned error is non-nil only
// when ctx is cancelled. Summaries follow the order of paths.
func Inspect(ctx context.Context, paths []string, opts Options) ([]Summary, error) {
	if opts.FileSet == nil {
		opts.FileSet = source.NewFileSet()
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, p := range paths {
		emit(opts.Progress, Event{File: p, Stage: StageRead, Status: StatusQueued})
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]Summary, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = inspectOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func inspectOne(path string, opts Options) Summary {
	start := time.Now()
	sum := Summary{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}

	fail := func(stage Stage, err error) Summary {
		sum.Err = err
		sum.Elapsed = time.Since(start)
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: sum.Elapsed})
		if opts.Logger != nil {
			opts.Logger.Debug("inspect failed", "path", path, "stage", string(stage), "err", err)
		}
		return sum
	}

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	t0 := time.Now()
	id, err := Load(opts.FileSet, path)
	sum.Timings.Set(StageRead, time.Since(t0))
	if err != nil {
		// пустая запись, чтобы диагностика указывала на нужный путь
		sum.FileID = opts.FileSet.Add(path, nil, 0)
		sum.Bag.Add(diag.New(diag.SevError, diag.IOLoadFileError, source.Span{File: sum.FileID},
			fmt.Sprintf("failed to load %s: %v", path, err)))
		return fail(StageRead, err)
	}
	sum.FileID = id
	file := opts.FileSet.Get(id)
	sum.Dialect = stl.Detect(file.Content)
	if opts.Lint && sum.Dialect == diag.DialectBinary {
		for _, d := range binfmt.Lint(id, file.Content) {
			sum.Bag.Add(d)
		}
	}

	var key Digest
	if opts.Cache != nil {
		key = HashContent(file.Content)
	}
	var cached DiskPayload
	if ok, err := opts.Cache.Get(key, &cached); err == nil && ok {
		sum.Cached = true
		sum.Header = cached.Header
		sum.Triangles = cached.Triangles
		sum.HasBounds = cached.HasBounds
		sum.Bounds = unpackBounds(cached.Bounds)
		sum.Elapsed = time.Since(start)
		emit(opts.Progress, Event{File: path, Stage: StageDecode, Status: StatusDone, Elapsed: sum.Elapsed})
		return sum
	} else if err != nil && opts.Logger != nil {
		opts.Logger.Warn("cache read failed", "path", path, "err", err)
	}

	emit(opts.Progress, Event{File: path, Stage: StageDecode, Status: StatusWorking})
	t0 = time.Now()
	m, err := stl.ParseFile(file, stl.Options{Logger: opts.Logger})
	sum.Timings.Set(StageDecode, time.Since(t0))
	if err != nil {
		sum.Bag.AddError(id, diag.UnknownCode, err)
		return fail(StageDecode, err)
	}
	sum.Header = m.Header
	sum.Triangles = m.TriangleCount()
	sum.Bounds, sum.HasBounds = m.DimensionRange()

	if opts.Cache != nil {
		payload := DiskPayload{
			Dialect:   uint8(sum.Dialect),
			Header:    sum.Header,
			Triangles: sum.Triangles,
			HasBounds: sum.HasBounds,
			Bounds:    packBounds(sum.Bounds),
		}
		if err := opts.Cache.Put(key, &payload); err != nil && opts.Logger != nil {
			opts.Logger.Warn("cache write failed", "path", path, "err", err)
		}
	}

	sum.Elapsed = time.Since(start)
	emit(opts.Progress, Event{File: path, Stage: StageDecode, Status: StatusDone, Elapsed: sum.Elapsed})
	return sum
}
