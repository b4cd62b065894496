package lexer

import (
	"testing"

	"ronfmt/internal/source"
)

func newTestCursor(content string) Cursor {
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.ron", []byte(content))
	return NewCursor(fs.Get(id))
}

func TestSequentialReading(t *testing.T) {
	c := newTestCursor("ab")
	if c.Peek() != 'a' || c.Bump() != 'a' || c.Bump() != 'b' {
		t.Fatal("unexpected bytes")
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("expected EOF state")
	}
}

func TestPeekAtAndPeek2(t *testing.T) {
	c := newTestCursor("xyz")
	if c.PeekAt(2) != 'z' || c.PeekAt(3) != 0 {
		t.Fatalf("PeekAt mismatch")
	}
	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'x' || b1 != 'y' {
		t.Fatalf("Peek2 = %c %c %v", b0, b1, ok)
	}
	c.Bump()
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Fatal("Peek2 must fail on the last byte")
	}
}

func TestMarkResetSpan(t *testing.T) {
	c := newTestCursor("hello")
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("span = %v", sp)
	}
	c.Reset(m)
	if !c.Eat('h') || c.Eat('x') {
		t.Fatal("Eat after Reset misbehaved")
	}
}
