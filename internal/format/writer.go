package format

import (
	"io"
)

// Writer accumulates formatted output and emits canonical indentation.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new formatting writer; sizeHint preallocates the buffer.
func NewWriter(opt Options, sizeHint int) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, max(sizeHint, 0)),
		atLineStart: true,
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset drops the output but keeps the buffer.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.indentLevel = 0
	w.atLineStart = true
}

// WriteTo flushes the accumulated output into dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.buf)
	return int64(n), err
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indentLevel * w.opt.IndentWidth {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

// WriteString writes a string to the output, handling indentation.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// WriteByte writes a single byte to the output.
func (w *Writer) WriteByte(b byte) error {
	w.writeIndent()
	w.buf = append(w.buf, b)
	w.atLineStart = b == '\n'
	return nil
}

// Newline ends the current line.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
