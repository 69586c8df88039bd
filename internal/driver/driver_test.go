package driver

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stlkit/internal/diag"
	"stlkit/internal/geom"
	"stlkit/internal/source"
	"stlkit/internal/stl"
)

func sampleModel() *stl.Model {
	return &stl.Model{
		Header: "driver sample",
		Triangles: []geom.Triangle{
			{
				Normal:   geom.Vec3{X: 0, Y: 0, Z: 1},
				Vertices: [3]geom.Vec3{{X: 0, Y: 0, Z: 5}, {X: 1, Y: 0, Z: -1}, {X: 0, Y: 1, Z: 0}},
			},
			{
				Normal:   geom.Vec3{X: 1, Y: 0, Z: 0},
				Vertices: [3]geom.Vec3{{X: 2, Y: 2, Z: 2}, {X: 3, Y: 2, Z: 2}, {X: 2, Y: 3, Z: 2}},
			},
		},
	}
}

func writeBinary(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := sampleModel().Binary()
	require.NoError(t, err)
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) statuses(file string) []Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Status
	for _, e := range s.events {
		if e.File == file {
			out = append(out, e.Status)
		}
	}
	return out
}

func TestCompressRoundTrip(t *testing.T) {
	data := []byte(sampleModel().ASCII())
	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4} {
		for _, level := range []int{0, 1, 9} {
			packed, err := Compress(data, c, level)
			require.NoError(t, err, "%v level %d", c, level)
			if c != CompressionNone {
				assert.NotEqual(t, data, packed)
			}
			unpacked, err := Decompress(packed, c)
			require.NoError(t, err, "%v level %d", c, level)
			assert.Equal(t, data, unpacked)
		}
	}
}

func TestCompressErrors(t *testing.T) {
	_, err := Compress([]byte("x"), CompressionLZ4, 12)
	assert.Error(t, err)

	for _, c := range []Compression{CompressionGzip, CompressionZstd, CompressionLZ4} {
		_, err := Decompress([]byte("definitely not compressed"), c)
		assert.Error(t, err, "%v", c)
	}
}

func TestParseCompression(t *testing.T) {
	cases := map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"GZIP": CompressionGzip,
		"zst":  CompressionZstd,
		"lz4":  CompressionLZ4,
	}
	for in, want := range cases {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseCompression("brotli")
	assert.Error(t, err)

	assert.Equal(t, CompressionGzip, CompressionFromPath("a/b.stl.gz"))
	assert.Equal(t, CompressionZstd, CompressionFromPath("b.STL.ZST"))
	assert.Equal(t, CompressionLZ4, CompressionFromPath("b.lz4"))
	assert.Equal(t, CompressionNone, CompressionFromPath("b.stl"))
	assert.Equal(t, ".zst", CompressionZstd.Ext())
	assert.Equal(t, "lz4", CompressionLZ4.String())
}

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte(sampleModel().ASCII())
	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4} {
		p := filepath.Join(dir, "nested", "m.stl"+c.Ext())
		require.NoError(t, WriteFile(p, data, c, 0))
		got, err := ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, data, got, "%v", c)
	}

	_, err := ReadFile(filepath.Join(dir, "missing.stl"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMarksCompressed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "m.stl.gz")
	require.NoError(t, WriteFile(p, []byte("solid x\nendsolid\n"), CompressionGzip, 0))

	fs := source.NewFileSet()
	id, err := Load(fs, p)
	require.NoError(t, err)
	f := fs.Get(id)
	assert.NotZero(t, f.Flags&source.FileCompressed)
	assert.Equal(t, "solid x\nendsolid\n", string(f.Content))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	bin := writeBinary(t, dir, "a.stl")
	ascii := filepath.Join(dir, "b.stl.zst")
	require.NoError(t, WriteFile(ascii, []byte(sampleModel().ASCII()), CompressionZstd, 3))
	broken := filepath.Join(dir, "c.stl")
	require.NoError(t, os.WriteFile(broken, []byte("solid c\nfacet normal 1 2\n"), 0o644))
	missing := filepath.Join(dir, "nope.stl")

	sink := &recordingSink{}
	fs := source.NewFileSet()
	paths := []string{bin, ascii, broken, missing}
	sums, err := Inspect(context.Background(), paths, Options{Jobs: 2, FileSet: fs, Progress: sink})
	require.NoError(t, err)
	require.Len(t, sums, 4)

	for i, s := range sums[:2] {
		assert.Equal(t, paths[i], s.Path)
		require.NoError(t, s.Err)
		assert.Equal(t, 2, s.Triangles)
		assert.True(t, s.HasBounds)
		assert.Equal(t, geom.Range{Min: -1, Max: 5}, s.Bounds.Z)
		assert.False(t, s.Bag.HasErrors())
		assert.True(t, s.Timings.Has(StageDecode))
	}
	assert.Equal(t, diag.DialectBinary, sums[0].Dialect)
	assert.Equal(t, diag.DialectASCII, sums[1].Dialect)
	assert.Equal(t, "driver sample", sums[0].Header)

	require.Error(t, sums[2].Err)
	assert.True(t, errors.Is(sums[2].Err, diag.ErrASCII))
	assert.True(t, sums[2].Bag.HasErrors())
	assert.Equal(t, diag.AsciiExpectFloat, sums[2].Bag.Items()[0].Code)

	require.Error(t, sums[3].Err)
	assert.Equal(t, diag.IOLoadFileError, sums[3].Bag.Items()[0].Code)
	assert.Equal(t, sums[3].FileID, sums[3].Bag.Items()[0].Primary.File)
	assert.Empty(t, fs.Get(sums[3].FileID).Content)

	assert.Equal(t, []Status{StatusQueued, StatusWorking, StatusWorking, StatusDone}, sink.statuses(bin))
	assert.Equal(t, StatusError, sink.statuses(missing)[len(sink.statuses(missing))-1])
	assert.Equal(t, 4, fs.Len())
}

func TestInspectLint(t *testing.T) {
	dir := t.TempDir()
	data, err := sampleModel().Binary()
	require.NoError(t, err)
	p := filepath.Join(dir, "tail.stl")
	require.NoError(t, os.WriteFile(p, append(data, 1, 2, 3), 0o644))

	sums, err := Inspect(context.Background(), []string{p}, Options{Lint: true})
	require.NoError(t, err)
	require.NoError(t, sums[0].Err)
	assert.True(t, sums[0].Bag.HasWarnings())
	assert.False(t, sums[0].Bag.HasErrors())
	assert.Equal(t, diag.BinTrailingBytes, sums[0].Bag.Items()[0].Code)
}

func TestInspectCancelled(t *testing.T) {
	dir := t.TempDir()
	p := writeBinary(t, dir, "a.stl")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Inspect(ctx, []string{p, p, p}, Options{Jobs: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInspectEmpty(t *testing.T) {
	sums, err := Inspect(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, sums)
}

func TestInspectUsesCache(t *testing.T) {
	dir := t.TempDir()
	p := writeBinary(t, dir, "a.stl")
	cache, err := NewDiskCache(filepath.Join(dir, "cache"))
	require.NoError(t, err)

	first, err := Inspect(context.Background(), []string{p}, Options{Cache: cache})
	require.NoError(t, err)
	assert.False(t, first[0].Cached)

	second, err := Inspect(context.Background(), []string{p}, Options{Cache: cache})
	require.NoError(t, err)
	assert.True(t, second[0].Cached)
	assert.Equal(t, first[0].Header, second[0].Header)
	assert.Equal(t, first[0].Triangles, second[0].Triangles)
	assert.Equal(t, first[0].Bounds, second[0].Bounds)
	assert.False(t, second[0].Timings.Has(StageDecode))
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewDiskCache(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cache.Dir())

	key := HashContent([]byte("content"))
	var out DiskPayload
	ok, err := cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	in := DiskPayload{Header: "h", Triangles: 7, HasBounds: true, Bounds: [6]float32{0, 1, 2, 3, 4, 5}}
	require.NoError(t, cache.Put(key, &in))
	ok, err = cache.Get(key, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "h", out.Header)
	assert.Equal(t, 7, out.Triangles)
	assert.Equal(t, geom.Range{Min: 2, Max: 3}, unpackBounds(out.Bounds).Y)

	require.NoError(t, cache.DropAll())
	ok, err = cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	var nilCache *DiskCache
	require.NoError(t, nilCache.Put(key, &in))
	ok, err = nilCache.Get(key, &out)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenDiskCacheHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	cache, err := OpenDiskCache("stlkit")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stlkit"), cache.Dir())
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := writeBinary(t, dir, "in.stl")

	sink := &recordingSink{}
	asciiOut := filepath.Join(dir, "out.stl.gz")
	res, err := Convert(context.Background(), in, asciiOut, ConvertOptions{
		To:          diag.DialectASCII,
		Compression: CompressionFromPath(asciiOut),
		Progress:    sink,
	})
	require.NoError(t, err)
	assert.Equal(t, diag.DialectBinary, res.From)
	assert.Equal(t, diag.DialectASCII, res.To)
	assert.Equal(t, 2, res.Triangles)
	assert.Equal(t, StatusDone, sink.statuses(in)[len(sink.statuses(in))-1])

	text, err := ReadFile(asciiOut)
	require.NoError(t, err)
	assert.Equal(t, sampleModel().ASCII(), string(text))

	// и обратно в бинарный, диалект по умолчанию сохраняется
	binOut := filepath.Join(dir, "back.stl")
	res, err = Convert(context.Background(), asciiOut, binOut, ConvertOptions{To: diag.DialectBinary})
	require.NoError(t, err)
	assert.Equal(t, diag.DialectASCII, res.From)
	back, err := os.ReadFile(binOut)
	require.NoError(t, err)
	want, err := sampleModel().Binary()
	require.NoError(t, err)
	assert.Equal(t, want, back)

	same := filepath.Join(dir, "same.stl")
	res, err = Convert(context.Background(), binOut, same, ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, diag.DialectBinary, res.To)
}

func TestConvertDecodeError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.stl")
	require.NoError(t, os.WriteFile(in, make([]byte, 90), 0o644))
	// 90 нулевых байт: валидный бинарный файл без треугольников
	_, err := Convert(context.Background(), in, filepath.Join(dir, "o.stl"), ConvertOptions{To: diag.DialectASCII})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(in, make([]byte, 40), 0o644))
	_, err = Convert(context.Background(), in, filepath.Join(dir, "o2.stl"), ConvertOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, diag.ErrBinary))
	_, statErr := os.Stat(filepath.Join(dir, "o2.stl"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertNonFiniteToASCII(t *testing.T) {
	dir := t.TempDir()
	m := sampleModel()
	m.Triangles[1].Normal.X = float32(math.NaN())
	data, err := m.Binary()
	require.NoError(t, err)
	in := filepath.Join(dir, "nan.stl")
	require.NoError(t, os.WriteFile(in, data, 0o644))

	out := filepath.Join(dir, "nan-ascii.stl")
	_, err = Convert(context.Background(), in, out, ConvertOptions{To: diag.DialectASCII})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.Contains(t, err.Error(), "triangle 1")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))

	// бинарный вывод NaN сохраняет
	binOut := filepath.Join(dir, "nan-copy.stl")
	_, err = Convert(context.Background(), in, binOut, ConvertOptions{To: diag.DialectBinary})
	require.NoError(t, err)
	back, err := os.ReadFile(binOut)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("ASCII")
	require.NoError(t, err)
	assert.Equal(t, diag.DialectASCII, d)
	d, err = ParseDialect("bin")
	require.NoError(t, err)
	assert.Equal(t, diag.DialectBinary, d)
	d, err = ParseDialect("")
	require.NoError(t, err)
	assert.Equal(t, diag.DialectUnknown, d)
	_, err = ParseDialect("obj")
	assert.Error(t, err)
}

func TestTimings(t *testing.T) {
	var tm Timings
	assert.False(t, tm.Has(StageRead))
	tm.Set(StageRead, 2)
	tm.Set(StageDecode, 3)
	assert.True(t, tm.Has(StageRead))
	assert.EqualValues(t, 5, tm.Sum(StageRead, StageDecode, StageWrite))
	assert.EqualValues(t, 3, tm.Duration(StageDecode))
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "x", Status: StatusDone})
	assert.Equal(t, "x", (<-ch).File)
	ChannelSink{}.OnEvent(Event{})
}
