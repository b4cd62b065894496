package format

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatGolden(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "golden", "fmt")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read golden dir: %v", err)
	}

	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".ron") {
			continue
		}
		name := strings.TrimSuffix(ent.Name(), ".ron")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(dir, name+".ron"))
			if err != nil {
				t.Fatalf("read %s.ron: %v", name, err)
			}
			want, err := os.ReadFile(filepath.Join(dir, name+".out"))
			if err != nil {
				t.Fatalf("read %s.out: %v", name, err)
			}

			got, err := Source(name+".ron", src, DefaultOptions())
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if string(got) != string(want) {
				t.Fatalf("output mismatch:\nwant:\n%s\n\ngot:\n%s", want, got)
			}

			if ok, msg := CheckRoundTrip(name+".out", want, DefaultOptions()); !ok {
				t.Fatalf("golden output is not a fixed point: %s", msg)
			}
		})
	}
}
