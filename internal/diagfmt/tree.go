package diagfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"ronfmt/internal/ast"
	"ronfmt/internal/format"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatDocumentPretty prints doc as a tree: every value with its min width
// and the layout it gets under opt, comments as leaves of their item.
func FormatDocumentPretty(w io.Writer, doc *ast.Document, title string, opt format.Options) error {
	if doc == nil {
		return errors.New("nil document")
	}
	root := &treeNode{label: "Document"}
	if title != "" {
		root.label = fmt.Sprintf("Document %s", title)
	}
	if len(doc.Extensions) > 0 {
		root.label += fmt.Sprintf(" (extensions: %s)", strings.Join(doc.Extensions, ", "))
	}
	for i := range doc.Items {
		root.children = append(root.children, itemNode(fmt.Sprintf("Item[%d]: ", i), &doc.Items[i], 0, opt))
	}
	root.children = append(root.children, commentNodes("dangling", doc.Dangling)...)

	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeTree(&sb, root.children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTree(sb *strings.Builder, nodes []*treeNode, prefix string) {
	for i, n := range nodes {
		branch, next := "├─ ", "│  "
		if i == len(nodes)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(n.label)
		sb.WriteByte('\n')
		writeTree(sb, n.children, prefix+next)
	}
}

func commentNodes(role string, cs []ast.Comment) []*treeNode {
	out := make([]*treeNode, 0, len(cs))
	for _, c := range cs {
		out = append(out, &treeNode{label: fmt.Sprintf("%s: %s", role, c.Text)})
	}
	return out
}

func itemNode(head string, it *ast.Item, depth int, opt format.Options) *treeNode {
	n := valueNode(head, it.Value, it, depth, opt)
	var trivia []*treeNode
	trivia = append(trivia, commentNodes("pre", it.Pre)...)
	if it.EOL != nil {
		trivia = append(trivia, &treeNode{label: "eol: " + it.EOL.Text})
	}
	trivia = append(trivia, commentNodes("post", it.Post)...)
	n.children = append(trivia, n.children...)
	return n
}

func valueNode(head string, v ast.Value, it *ast.Item, depth int, opt format.Options) *treeNode {
	layout := format.Decide(v, it, depth, opt)
	n := &treeNode{label: fmt.Sprintf("%s%s (min_width: %d, %s)", head, valueSummary(v), v.MinWidth(), layout)}

	switch v := v.(type) {
	case *ast.List:
		for i := range v.Elems {
			n.children = append(n.children, itemNode(fmt.Sprintf("[%d]: ", i), &v.Elems[i], depth+1, opt))
		}
	case *ast.Tuple:
		for i := range v.Elems {
			n.children = append(n.children, itemNode(fmt.Sprintf("[%d]: ", i), &v.Elems[i], depth+1, opt))
		}
	case *ast.Map:
		for i := range v.Entries {
			en := &v.Entries[i]
			head := fmt.Sprintf("Entry %s: ", format.Compact(en.Key))
			n.children = append(n.children, itemNode(head, &en.Val, depth+1, opt))
		}
	case *ast.Record:
		for i := range v.Fields {
			f := &v.Fields[i]
			n.children = append(n.children, itemNode(fmt.Sprintf("Field %s: ", f.Key), &f.Val, depth+1, opt))
		}
	}
	n.children = append(n.children, commentNodes("dangling", ast.Dangling(v))...)
	return n
}

func valueSummary(v ast.Value) string {
	switch v := v.(type) {
	case *ast.Atom:
		return "Atom " + v.Text
	case *ast.Tuple:
		if v.Name != "" {
			return "Tuple " + v.Name
		}
	case *ast.Record:
		if v.Name != "" {
			return "Record " + v.Name
		}
	}
	return ast.Kind(v)
}

// ValueOutput is one value of the JSON document dump.
type ValueOutput struct {
	Type     string        `json:"type"`
	Name     string        `json:"name,omitempty"`
	Key      string        `json:"key,omitempty"`
	Text     string        `json:"text,omitempty"`
	MinWidth int           `json:"min_width"`
	Layout   string        `json:"layout"`
	Pre      []string      `json:"pre,omitempty"`
	EOL      string        `json:"eol,omitempty"`
	Post     []string      `json:"post,omitempty"`
	Dangling []string      `json:"dangling,omitempty"`
	Children []ValueOutput `json:"children,omitempty"`
}

type DocumentOutput struct {
	Extensions []string      `json:"extensions,omitempty"`
	Items      []ValueOutput `json:"items"`
	Dangling   []string      `json:"dangling,omitempty"`
}

// BuildDocumentOutput converts doc into its JSON dump structure.
func BuildDocumentOutput(doc *ast.Document, opt format.Options) DocumentOutput {
	out := DocumentOutput{
		Extensions: doc.Extensions,
		Items:      make([]ValueOutput, 0, len(doc.Items)),
		Dangling:   commentTexts(doc.Dangling),
	}
	for i := range doc.Items {
		out.Items = append(out.Items, itemOutput("", &doc.Items[i], 0, opt))
	}
	return out
}

// FormatDocumentJSON writes the document dump as indented JSON.
func FormatDocumentJSON(w io.Writer, doc *ast.Document, opt format.Options) error {
	if doc == nil {
		return errors.New("nil document")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDocumentOutput(doc, opt))
}

func commentTexts(cs []ast.Comment) []string {
	if len(cs) == 0 {
		return nil
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Text
	}
	return out
}

func itemOutput(key string, it *ast.Item, depth int, opt format.Options) ValueOutput {
	v := it.Value
	out := ValueOutput{
		Type:     ast.Kind(v),
		Key:      key,
		MinWidth: v.MinWidth(),
		Layout:   format.Decide(v, it, depth, opt).String(),
		Pre:      commentTexts(it.Pre),
		Post:     commentTexts(it.Post),
		Dangling: commentTexts(ast.Dangling(v)),
	}
	if it.EOL != nil {
		out.EOL = it.EOL.Text
	}
	switch v := v.(type) {
	case *ast.Atom:
		out.Text = v.Text
	case *ast.List:
		for i := range v.Elems {
			out.Children = append(out.Children, itemOutput("", &v.Elems[i], depth+1, opt))
		}
	case *ast.Tuple:
		out.Name = v.Name
		for i := range v.Elems {
			out.Children = append(out.Children, itemOutput("", &v.Elems[i], depth+1, opt))
		}
	case *ast.Map:
		for i := range v.Entries {
			en := &v.Entries[i]
			out.Children = append(out.Children, itemOutput(format.Compact(en.Key), &en.Val, depth+1, opt))
		}
	case *ast.Record:
		out.Name = v.Name
		for i := range v.Fields {
			f := &v.Fields[i]
			out.Children = append(out.Children, itemOutput(f.Key, &f.Val, depth+1, opt))
		}
	}
	return out
}
