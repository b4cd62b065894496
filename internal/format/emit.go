package format

import (
	"strings"

	"ronfmt/internal/ast"
)

type emitter struct {
	w   *Writer
	opt Options
}

// Emit writes doc into w. The output ends with a newline unless doc is empty.
func Emit(w *Writer, doc *ast.Document, opt Options) {
	e := emitter{w: w, opt: opt.withDefaults()}
	e.document(doc)
}

func (e *emitter) document(doc *ast.Document) {
	if len(doc.Extensions) > 0 {
		e.w.WriteString("#![enable(")
		e.w.WriteString(strings.Join(doc.Extensions, ", "))
		e.w.WriteString(")]")
		e.w.Newline()
		if len(doc.Items) > 0 || len(doc.Dangling) > 0 {
			e.w.Newline()
		}
	}
	e.comments(doc.Dangling)
	for i := range doc.Items {
		e.item(&doc.Items[i], 0, "", "")
	}
}

func (e *emitter) comments(cs []ast.Comment) {
	for _, c := range cs {
		e.w.WriteString(c.Text)
		e.w.Newline()
	}
}

// item writes one item on its own line(s). key is written before the value
// with ": ", sep after it.
func (e *emitter) item(it *ast.Item, depth int, key, sep string) {
	e.comments(it.Pre)
	if key != "" {
		e.w.WriteString(key)
		e.w.WriteString(": ")
	}
	e.value(it.Value, it, depth)
	e.w.WriteString(sep)
	if it.EOL != nil {
		e.w.WriteString(" ")
		e.w.WriteString(it.EOL.Text)
	}
	e.w.Newline()
	e.comments(it.Post)
}

func (e *emitter) value(v ast.Value, it *ast.Item, depth int) {
	if Decide(v, it, depth, e.opt) == SingleLine {
		e.compact(v)
		return
	}

	open, closer := delims(v)
	e.w.WriteString(open)
	e.w.Newline()
	e.w.IndentPush()
	e.comments(ast.Dangling(v))
	switch v := v.(type) {
	case *ast.List:
		for i := range v.Elems {
			e.item(&v.Elems[i], depth+1, "", ",")
		}
	case *ast.Tuple:
		for i := range v.Elems {
			e.item(&v.Elems[i], depth+1, "", ",")
		}
	case *ast.Map:
		for i := range v.Entries {
			var key strings.Builder
			writeCompact(&key, v.Entries[i].Key)
			e.item(&v.Entries[i].Val, depth+1, key.String(), ",")
		}
	case *ast.Record:
		for i := range v.Fields {
			e.item(&v.Fields[i].Val, depth+1, v.Fields[i].Key, ",")
		}
	}
	e.w.IndentPop()
	e.w.WriteString(closer)
}

func (e *emitter) compact(v ast.Value) {
	e.w.WriteString(Compact(v))
}

func delims(v ast.Value) (open, closer string) {
	switch v := v.(type) {
	case *ast.List:
		return "[", "]"
	case *ast.Map:
		return "{", "}"
	case *ast.Tuple:
		return v.Name + "(", ")"
	case *ast.Record:
		return v.Name + "(", ")"
	}
	return "", ""
}

// writeCompact renders v on one line, ignoring comments.
func writeCompact(sb *strings.Builder, v ast.Value) {
	if a, ok := v.(*ast.Atom); ok {
		sb.WriteString(a.Text)
		return
	}
	open, closer := delims(v)
	sb.WriteString(open)
	switch v := v.(type) {
	case *ast.List:
		writeItems(sb, v.Elems)
	case *ast.Tuple:
		writeItems(sb, v.Elems)
	case *ast.Map:
		for i, en := range v.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeCompact(sb, en.Key)
			sb.WriteString(": ")
			writeCompact(sb, en.Val.Value)
		}
	case *ast.Record:
		for i, f := range v.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Key)
			sb.WriteString(": ")
			writeCompact(sb, f.Val.Value)
		}
	}
	sb.WriteString(closer)
}

func writeItems(sb *strings.Builder, items []ast.Item) {
	for i, it := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeCompact(sb, it.Value)
	}
}

// Compact returns v on a single line without its comments.
func Compact(v ast.Value) string {
	var sb strings.Builder
	sb.Grow(v.MinWidth())
	writeCompact(&sb, v)
	return sb.String()
}
