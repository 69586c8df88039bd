package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"stlkit/internal/source"
)

// ReadFile reads path and unwraps it according to its extension
// (.gz, .zst, .lz4). Plain files are returned as-is.
func ReadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := CompressionFromPath(path)
	data, err := Decompress(raw, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Load reads path through ReadFile and registers the result in fs.
func Load(fs *source.FileSet, path string) (source.FileID, error) {
	data, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	var flags source.FileFlags
	if CompressionFromPath(path) != CompressionNone {
		flags |= source.FileCompressed
	}
	return fs.Add(path, data, flags), nil
}

// WriteFile compresses data with c and replaces path atomically.
func WriteFile(path string, data []byte, c Compression, level int) error {
	out, err := Compress(data, c, level)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".stlkit-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if _, err := f.Write(out); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
