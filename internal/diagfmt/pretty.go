package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ronfmt/internal/diag"
	"ronfmt/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			formatPath(f, fs, opts.PathMode), start.Line, start.Col,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		)
		writeSnippet(w, f, start, end, int(opts.Context), p)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "%s %s:%d:%d: %s\n",
				p.note.Sprint("note:"), formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}
}

// writeSnippet prints up to context lines before the primary line, the line
// itself and an underline for the part of the span on that line.
func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, context int, p palette) {
	if f == nil || start.Line == 0 {
		return
	}
	first := int(start.Line) - context
	if first < 1 {
		first = 1
	}
	for n := first; n <= int(start.Line); n++ {
		line := f.GetLine(uint32(n)) //nolint:gosec // n is in [1, start.Line]
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%4d |", n), line)
	}

	line := f.GetLine(start.Line)
	from := clampCol(line, start.Col)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(line, end.Col)
	}
	width := 1
	if to > from {
		width = max(runewidth.StringWidth(line[from:to]), 1)
	}
	fmt.Fprintf(w, "%s %s%s\n",
		p.gutter.Sprint("     |"),
		caretPad(line[:from]),
		p.caret.Sprint("^"+strings.Repeat("~", width-1)),
	)
}

// clampCol turns a 1-based byte column into an offset inside line.
func clampCol(line string, col uint32) int {
	if col == 0 {
		return 0
	}
	off := int(col) - 1
	if off > len(line) {
		return len(line)
	}
	return off
}

// caretPad returns blanks as wide as prefix, keeping its tabs so the caret
// lines up under the same terminal column.
func caretPad(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
