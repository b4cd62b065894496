// Package query selects values inside a document with JSONPath expressions.
//
// The root `$` is the top-level value, or a list of them when a document
// holds several. Record fields and map entries are children by name, lists
// and tuples by index.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"

	"ronfmt/internal/ast"
	"ronfmt/internal/format"
)

// Match is one selected value and the normalized path that reaches it.
type Match struct {
	Path string
	Item *ast.Item
}

// Value is the selected value.
func (m Match) Value() ast.Value { return m.Item.Value }

type node struct {
	path jp.Expr
	item *ast.Item
}

// Compile parses a JSONPath expression and rejects the fragments that have
// no meaning for a document, such as filters and scripts.
func Compile(expr string) (jp.Expr, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", expr, err)
	}
	for _, frag := range x {
		switch frag.(type) {
		case jp.Root, jp.At, jp.Bracket, jp.Child, jp.Nth, jp.Wildcard, jp.Descent, jp.Slice, jp.Union:
		default:
			return nil, fmt.Errorf("jsonpath '%s': unsupported %T fragment", expr, frag)
		}
	}
	return x, nil
}

// Get evaluates expr against doc.
func Get(doc *ast.Document, expr string) ([]Match, error) {
	x, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return Select(doc, x), nil
}

// Select evaluates a compiled expression, matches in document order.
func Select(doc *ast.Document, x jp.Expr) []Match {
	if doc == nil {
		return nil
	}
	var cur []node
	switch len(doc.Items) {
	case 0:
		return nil
	case 1:
		cur = []node{{path: jp.R(), item: &doc.Items[0]}}
	default:
		// several top-level values act as one list
		root := &ast.Item{Value: ast.NewList(doc.Items, nil)}
		cur = []node{{path: jp.R(), item: root}}
	}

	for _, frag := range x {
		var next []node
		switch f := frag.(type) {
		case jp.Root, jp.At, jp.Bracket:
			continue
		case jp.Child:
			for _, n := range cur {
				next = appendChild(next, n, string(f))
			}
		case jp.Nth:
			for _, n := range cur {
				next = appendNth(next, n, int(f))
			}
		case jp.Wildcard:
			for _, n := range cur {
				next = append(next, children(n)...)
			}
		case jp.Descent:
			for _, n := range cur {
				next = appendDescent(next, n)
			}
		case jp.Slice:
			for _, n := range cur {
				next = appendSlice(next, n, f)
			}
		case jp.Union:
			for _, n := range cur {
				for _, key := range f {
					switch k := key.(type) {
					case string:
						next = appendChild(next, n, k)
					case int64:
						next = appendNth(next, n, int(k))
					}
				}
			}
		}
		cur = next
	}

	out := make([]Match, len(cur))
	for i, n := range cur {
		out[i] = Match{Path: n.path.String(), Item: n.item}
	}
	return out
}

func appendChild(dst []node, n node, name string) []node {
	switch v := n.item.Value.(type) {
	case *ast.Record:
		for i := range v.Fields {
			if v.Fields[i].Key == name {
				dst = append(dst, node{path: extend(n.path, jp.Child(name)), item: &v.Fields[i].Val})
			}
		}
	case *ast.Map:
		for i := range v.Entries {
			if KeyName(v.Entries[i].Key) == name {
				dst = append(dst, node{path: extend(n.path, jp.Child(name)), item: &v.Entries[i].Val})
			}
		}
	}
	return dst
}

func elems(v ast.Value) []ast.Item {
	switch v := v.(type) {
	case *ast.List:
		return v.Elems
	case *ast.Tuple:
		return v.Elems
	}
	return nil
}

func appendNth(dst []node, n node, i int) []node {
	items := elems(n.item.Value)
	if i < 0 {
		i += len(items)
	}
	if i < 0 || i >= len(items) {
		return dst
	}
	return append(dst, node{path: extend(n.path, jp.Nth(i)), item: &items[i]})
}

func appendSlice(dst []node, n node, s jp.Slice) []node {
	items := elems(n.item.Value)
	size := len(items)
	start, end, step := 0, size, 1
	if len(s) > 0 {
		start = s[0]
	}
	if len(s) > 1 {
		end = s[1]
	}
	if len(s) > 2 {
		step = s[2]
	}
	if start < 0 {
		start = max(start+size, 0)
	}
	if end < 0 {
		end += size
	}
	start, end = min(start, size), min(end, size)
	switch {
	case step > 0:
		for i := start; i < end; i += step {
			dst = append(dst, node{path: extend(n.path, jp.Nth(i)), item: &items[i]})
		}
	case step < 0:
		for i := min(start, size-1); i > end && i >= 0; i += step {
			dst = append(dst, node{path: extend(n.path, jp.Nth(i)), item: &items[i]})
		}
	}
	return dst
}

// extend copies p so sibling paths never share a backing array.
func extend(p jp.Expr, f jp.Frag) jp.Expr {
	out := make(jp.Expr, len(p), len(p)+1)
	copy(out, p)
	return append(out, f)
}

// children lists the direct children of n in document order.
func children(n node) []node {
	var out []node
	switch v := n.item.Value.(type) {
	case *ast.List, *ast.Tuple:
		items := elems(v)
		for i := range items {
			out = append(out, node{path: extend(n.path, jp.Nth(i)), item: &items[i]})
		}
	case *ast.Map:
		for i := range v.Entries {
			out = append(out, node{path: extend(n.path, jp.Child(KeyName(v.Entries[i].Key))), item: &v.Entries[i].Val})
		}
	case *ast.Record:
		for i := range v.Fields {
			out = append(out, node{path: extend(n.path, jp.Child(v.Fields[i].Key)), item: &v.Fields[i].Val})
		}
	}
	return out
}

// appendDescent adds n and everything below it, pre-order.
func appendDescent(dst []node, n node) []node {
	dst = append(dst, n)
	for _, c := range children(n) {
		dst = appendDescent(dst, c)
	}
	return dst
}

// KeyName is the name a map key answers to: the contents of a string key,
// the text of any other atom, the compact text of a composite key.
func KeyName(key ast.Value) string {
	a, ok := key.(*ast.Atom)
	if !ok {
		return format.Compact(key)
	}
	if s, err := strconv.Unquote(a.Text); err == nil && strings.HasPrefix(a.Text, `"`) {
		return s
	}
	if raw, ok := unquoteRaw(a.Text); ok {
		return raw
	}
	return a.Text
}

// unquoteRaw strips r#"..."# style delimiters.
func unquoteRaw(text string) (string, bool) {
	if !strings.HasPrefix(text, "r") {
		return "", false
	}
	body := text[1:]
	hashes := len(body) - len(strings.TrimLeft(body, "#"))
	body = body[hashes:]
	closer := `"` + strings.Repeat("#", hashes)
	if len(body) < 1+len(closer) || body[0] != '"' || !strings.HasSuffix(body, closer) {
		return "", false
	}
	return body[1 : len(body)-len(closer)], true
}

// Render formats every match as its own document, comments included.
func Render(matches []Match, opt format.Options) []byte {
	var out []byte
	for _, m := range matches {
		doc := &ast.Document{Items: []ast.Item{*m.Item}}
		out = append(out, format.Document(doc, opt, m.Value().MinWidth())...)
	}
	return out
}
