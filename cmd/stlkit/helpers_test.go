package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stlkit/internal/geom"
	"stlkit/internal/stl"
)

const demoASCII = `solid demo
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid demo
`

func sampleModel() *stl.Model {
	return &stl.Model{
		Header: "cli sample",
		Triangles: []geom.Triangle{{
			Normal:   geom.Vec3{X: 0, Y: 0, Z: 1},
			Vertices: [3]geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 0, Y: 3, Z: 1}},
		}},
	}
}

// workspace переходит во временный каталог, чтобы поиск stlkit.toml
// не зависел от окружения.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func writeBinary(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := sampleModel().Binary()
	require.NoError(t, err)
	return writeFile(t, dir, name, data)
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
