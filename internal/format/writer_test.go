package format

import (
	"bytes"
	"testing"
)

func TestWriterIndent(t *testing.T) {
	w := NewWriter(opts(2, 40), 0)
	w.WriteString("a")
	w.Newline()
	w.IndentPush()
	w.WriteString("b")
	_ = w.WriteByte(',')
	w.Newline()
	w.IndentPush()
	w.WriteString("c")
	w.Newline()
	w.IndentPop()
	w.IndentPop()
	w.IndentPop()
	w.WriteString("d")

	want := "a\n  b,\n    c\nd"
	if got := string(w.Bytes()); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}

	var out bytes.Buffer
	n, err := w.WriteTo(&out)
	if err != nil || n != int64(len(want)) || out.String() != want {
		t.Fatalf("WriteTo: n=%d err=%v out=%q", n, err, out.String())
	}

	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("Reset left %d bytes", w.Len())
	}
}
