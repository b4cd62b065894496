package format

import (
	"bytes"

	"ronfmt/internal/ast"
)

// CheckRoundTrip formats src, re-parses the result and verifies that the
// value structure is unchanged and that formatting again changes nothing.
func CheckRoundTrip(name string, src []byte, opt Options) (ok bool, msg string) {
	orig, err := Parse(name, src, opt)
	if err != nil {
		return false, "fmt-check: initial parse failed: " + err.Error()
	}
	formatted := Document(orig, opt, len(src))

	again, err := Parse(name, formatted, opt)
	if err != nil {
		return false, "fmt-check: reparse failed: " + err.Error()
	}
	if !SameDocument(orig, again) {
		return false, "fmt-check: value structure differs after round-trip"
	}
	if !bytes.Equal(formatted, Document(again, opt, len(formatted))) {
		return false, "fmt-check: formatting is not idempotent"
	}
	return true, "fmt-check: OK"
}

// SameDocument compares extensions, values and comment texts.
// Layout and the position of a comment relative to its value are ignored.
func SameDocument(a, b *ast.Document) bool {
	if !equalStrings(a.Extensions, b.Extensions) || len(a.Items) != len(b.Items) {
		return false
	}
	if !equalStrings(commentTexts(a), commentTexts(b)) {
		return false
	}
	for i := range a.Items {
		if !SameValue(a.Items[i].Value, b.Items[i].Value) {
			return false
		}
	}
	return true
}

// SameValue reports whether two values have the same shape and atoms.
func SameValue(a, b ast.Value) bool {
	switch a := a.(type) {
	case *ast.Atom:
		b, ok := b.(*ast.Atom)
		return ok && a.Text == b.Text
	case *ast.List:
		b, ok := b.(*ast.List)
		return ok && sameItems(a.Elems, b.Elems)
	case *ast.Tuple:
		b, ok := b.(*ast.Tuple)
		return ok && a.Name == b.Name && sameItems(a.Elems, b.Elems)
	case *ast.Map:
		b, ok := b.(*ast.Map)
		if !ok || len(a.Entries) != len(b.Entries) {
			return false
		}
		for i := range a.Entries {
			if !SameValue(a.Entries[i].Key, b.Entries[i].Key) || !SameValue(a.Entries[i].Val.Value, b.Entries[i].Val.Value) {
				return false
			}
		}
		return true
	case *ast.Record:
		b, ok := b.(*ast.Record)
		if !ok || a.Name != b.Name || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Key != b.Fields[i].Key || !SameValue(a.Fields[i].Val.Value, b.Fields[i].Val.Value) {
				return false
			}
		}
		return true
	}
	return false
}

func sameItems(a, b []ast.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SameValue(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// commentTexts lists every comment of the document in emission order.
func commentTexts(doc *ast.Document) []string {
	var out []string
	add := func(cs []ast.Comment) {
		for _, c := range cs {
			out = append(out, c.Text)
		}
	}
	var walkItem func(it *ast.Item)
	var walkValue func(v ast.Value)
	walkItem = func(it *ast.Item) {
		add(it.Pre)
		walkValue(it.Value)
		if it.EOL != nil {
			out = append(out, it.EOL.Text)
		}
		add(it.Post)
	}
	walkValue = func(v ast.Value) {
		add(ast.Dangling(v))
		switch v := v.(type) {
		case *ast.List:
			for i := range v.Elems {
				walkItem(&v.Elems[i])
			}
		case *ast.Tuple:
			for i := range v.Elems {
				walkItem(&v.Elems[i])
			}
		case *ast.Map:
			for i := range v.Entries {
				walkItem(&v.Entries[i].Val)
			}
		case *ast.Record:
			for i := range v.Fields {
				walkItem(&v.Fields[i].Val)
			}
		}
	}
	add(doc.Dangling)
	for i := range doc.Items {
		walkItem(&doc.Items[i])
	}
	return out
}
