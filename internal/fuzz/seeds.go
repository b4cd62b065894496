package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var inlineSeeds = []string{
	"",
	"()",
	"[1, 2, 3]",
	`{"a": 1, "b": [true, false]}`,
	"Point(x: 1.5, y: -2e3)",
	"#![enable(implicit_some)]\n(opt: 1)",
	"Some(None)",
	`r#"raw "string""#`,
	"'\\n'",
	"b\"bytes\"",
	"0x_ff_u8",
	"/* a /* nested */ comment */ [ // eol\n]",
	"(a: 1 b: 2)",
	"[1, 2",
	"#![enable(",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.ron файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".ron" {
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

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
