package ast

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"ronfmt/internal/parser"
)

// Build turns a parse tree accepted without errors into a Document.
//
// Comments between siblings are attached to the values around them:
//   - a same-line comment right after a value is that value's EOL
//   - other comments before a value are its Pre
//   - comments after the last value are its Post
//   - comments of a collection with no values are its Dangling
//
// Comments inside a map key are moved to the Pre of the entry's value.
func Build(root *parser.Node) (*Document, error) {
	if root == nil || root.Kind != parser.NodeFile {
		if root == nil {
			return nil, &StructuralError{Kind: parser.NodeInvalid, Msg: "nil root"}
		}
		return nil, structural(root, "expected File at the root")
	}
	b := &builder{}
	doc := &Document{}

	exts := make(map[string]struct{})
	body := make([]*parser.Node, 0, len(root.Children))
	for _, c := range root.Children {
		if c.Kind != parser.NodeExtension {
			body = append(body, c)
			continue
		}
		for _, name := range c.Children {
			if name.Kind != parser.NodeIdent {
				return nil, structural(name, "extension list holds a non-identifier")
			}
			exts[norm.NFC.String(name.Text)] = struct{}{}
		}
	}
	doc.Extensions = make([]string, 0, len(exts))
	for name := range exts {
		doc.Extensions = append(doc.Extensions, name)
	}
	slices.Sort(doc.Extensions)

	groups, dangling := b.group(body)
	doc.Dangling = dangling
	items, err := b.items(groups)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	return doc, nil
}

type builder struct {
	// hoist is set while building a map key; comments go there instead of
	// onto items.
	hoist *[]Comment
}

// group is one non-comment sibling and the comments attached to it.
type group struct {
	node *parser.Node
	pre  []Comment
	post []Comment
	eol  *Comment
}

func toComment(n *parser.Node) Comment {
	return Comment{Text: strings.TrimRight(n.Text, " \t"), Block: n.Block}
}

// group splits siblings into values with their comments.
func (b *builder) group(children []*parser.Node) (groups []*group, dangling []Comment) {
	var pending []Comment
	for _, c := range children {
		if c.Kind != parser.NodeComment {
			groups = append(groups, &group{node: c, pre: pending})
			pending = nil
			continue
		}
		cm := toComment(c)
		if b.hoist != nil {
			*b.hoist = append(*b.hoist, cm)
			continue
		}
		if last := len(groups) - 1; c.SameLine && last >= 0 && len(pending) == 0 && groups[last].eol == nil {
			groups[last].eol = &cm
			continue
		}
		pending = append(pending, cm)
	}
	if len(pending) > 0 {
		if len(groups) == 0 {
			return nil, pending
		}
		last := groups[len(groups)-1]
		last.post = append(last.post, pending...)
	}
	return groups, nil
}

func (b *builder) items(groups []*group) ([]Item, error) {
	out := make([]Item, 0, len(groups))
	for _, g := range groups {
		v, err := b.value(g.node)
		if err != nil {
			return nil, err
		}
		out = append(out, b.item(g, v, nil))
	}
	return out, nil
}

// item wraps v; inner are comments found between a key and its value.
func (b *builder) item(g *group, v Value, inner []Comment) Item {
	if b.hoist != nil {
		*b.hoist = append(*b.hoist, inner...)
		return Item{Value: v}
	}
	it := Item{Value: v, Post: g.post, EOL: g.eol}
	if len(g.pre)+len(inner) > 0 {
		it.Pre = append(slices.Clip(g.pre), inner...)
	}
	return it
}

func (b *builder) value(n *parser.Node) (Value, error) {
	switch n.Kind {
	case parser.NodeAtom:
		if n.Text == "" {
			return nil, structural(n, "empty atom")
		}
		return NewAtom(n.Text), nil
	case parser.NodeList:
		groups, dangling := b.group(n.Children)
		elems, err := b.items(groups)
		if err != nil {
			return nil, err
		}
		return NewList(elems, dangling), nil
	case parser.NodeTuple:
		name, rest := splitName(n)
		groups, dangling := b.group(rest)
		elems, err := b.items(groups)
		if err != nil {
			return nil, err
		}
		return NewTuple(name, elems, dangling), nil
	case parser.NodeMap:
		return b.mapValue(n)
	case parser.NodeRecord:
		return b.record(n)
	}
	return nil, structural(n, "not a value")
}

func splitName(n *parser.Node) (string, []*parser.Node) {
	if len(n.Children) > 0 && n.Children[0].Kind == parser.NodeIdent {
		return n.Children[0].Text, n.Children[1:]
	}
	return "", n.Children
}

func (b *builder) mapValue(n *parser.Node) (Value, error) {
	groups, dangling := b.group(n.Children)
	entries := make([]MapEntry, 0, len(groups))
	for _, g := range groups {
		if g.node.Kind != parser.NodeMapEntry {
			return nil, structural(g.node, "expected map entry")
		}
		keyNode, inner, valNode, err := splitPair(g.node)
		if err != nil {
			return nil, err
		}

		var hoisted []Comment
		kb := b
		if b.hoist == nil {
			kb = &builder{hoist: &hoisted}
		}
		key, err := kb.value(keyNode)
		if err != nil {
			return nil, err
		}
		val, err := b.value(valNode)
		if err != nil {
			return nil, err
		}
		entries = append(entries, MapEntry{Key: key, Val: b.item(g, val, append(hoisted, inner...))})
	}
	return NewMap(entries, dangling), nil
}

func (b *builder) record(n *parser.Node) (Value, error) {
	name, rest := splitName(n)
	groups, dangling := b.group(rest)
	fields := make([]Field, 0, len(groups))
	for _, g := range groups {
		if g.node.Kind != parser.NodeField {
			return nil, structural(g.node, "expected field")
		}
		keyNode, inner, valNode, err := splitPair(g.node)
		if err != nil {
			return nil, err
		}
		if keyNode.Kind != parser.NodeIdent {
			return nil, structural(keyNode, "field key must be an identifier")
		}
		val, err := b.value(valNode)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: keyNode.Text, Val: b.item(g, val, inner)})
	}
	return NewRecord(name, fields, dangling), nil
}

// splitPair takes a MapEntry or Field node apart: key, comments, value.
func splitPair(n *parser.Node) (key *parser.Node, inner []Comment, val *parser.Node, err error) {
	for _, c := range n.Children {
		switch {
		case c.Kind == parser.NodeComment:
			inner = append(inner, toComment(c))
		case key == nil:
			key = c
		case val == nil:
			val = c
		default:
			return nil, nil, nil, structural(n, "more than two values in a pair")
		}
	}
	if key == nil || val == nil {
		return nil, nil, nil, structural(n, "incomplete pair")
	}
	return key, inner, val, nil
}
