package parser

import (
	"ronfmt/internal/source"
	"ronfmt/internal/token"
)

// NodeKind is the shape of a concrete parse tree node.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	// NodeFile is the root: extensions, comments and values in source order.
	NodeFile
	// NodeExtension is one #![enable(...)] block; children are NodeIdent.
	NodeExtension
	// NodeIdent is a bare name: variant tag, field key, extension name.
	NodeIdent
	// NodeAtom is a literal or a unit value; Tok holds the literal kind.
	NodeAtom
	NodeList
	NodeMap
	// NodeMapEntry holds key, value and the comments found between them.
	NodeMapEntry
	// NodeTuple may start with a NodeIdent naming the variant.
	NodeTuple
	// NodeRecord may start with a NodeIdent naming the variant; other
	// children are NodeField.
	NodeRecord
	// NodeField holds a NodeIdent key, comments, and the value.
	NodeField
	NodeComment
)

var nodeKindNames = [...]string{
	NodeInvalid:   "Invalid",
	NodeFile:      "File",
	NodeExtension: "Extension",
	NodeIdent:     "Ident",
	NodeAtom:      "Atom",
	NodeList:      "List",
	NodeMap:       "Map",
	NodeMapEntry:  "MapEntry",
	NodeTuple:     "Tuple",
	NodeRecord:    "Record",
	NodeField:     "Field",
	NodeComment:   "Comment",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// Node is one node of the parse tree. Comments stay in Children at the
// position where they appeared so the tree builder can attach them.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Text     string     // atoms, idents and comments
	Tok      token.Kind // literal kind for atoms
	SameLine bool       // comment shares a line with the previous token
	Block    bool       // comment is /* ... */
	Children []*Node
}

// Values returns the non-comment children.
func (n *Node) Values() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind != NodeComment {
			out = append(out, c)
		}
	}
	return out
}

func commentNode(tv token.Trivia) *Node {
	return &Node{
		Kind:     NodeComment,
		Span:     tv.Span,
		Text:     tv.Text,
		SameLine: tv.SameLine,
		Block:    tv.Kind == token.TriviaBlockComment,
	}
}
