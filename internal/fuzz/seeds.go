package fuzztests

import (
	"encoding/binary"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addSyntheticSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "stl", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.stl файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".stl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func addSyntheticSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("solid"))
	f.Add([]byte("solid \n"))
	f.Add([]byte("solid x\nendsolid x\n"))
	f.Add([]byte("solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nvertex 0 1 0\nendloop\nendfacet\nendsolid\n"))
	f.Add([]byte("solid x\nfacet normal 1e40 -1e-50 .5\nouter loop\nvertex +1 -2 3.\n"))
	f.Add([]byte("solid x\r\nfacet normal 0 0 1 outer loop endloop"))
	f.Add([]byte("solid\x00binary-looking header"))
	f.Add(binaryPrefix(0, 0))
	f.Add(binaryPrefix(1, 50))
	f.Add(binaryPrefix(1, 48))
	f.Add(binaryPrefix(3, 20))
	f.Add(binaryPrefix(math.MaxUint32, 50))
}

// binaryPrefix builds a binary file claiming count triangles followed by
// body bytes of filler.
func binaryPrefix(count uint32, body int) []byte {
	out := make([]byte, 84+body)
	copy(out, "fuzz seed")
	binary.LittleEndian.PutUint32(out[80:], count)
	for i := 84; i < len(out); i++ {
		out[i] = byte(i)
	}
	return out
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
