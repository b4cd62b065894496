package parser

import (
	"strings"
	"testing"

	"ronfmt/internal/diag"
	"ronfmt/internal/lexer"
	"ronfmt/internal/source"
)

func parseSource(t *testing.T, input string) (*Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSetWithBase("")
	fileID := fs.AddVirtual("test.ron", []byte(input))
	bag := diag.NewBag(0)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	res := ParseFile(lx, Options{Reporter: reporter})
	return res.Root, bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	var b strings.Builder
	for _, d := range bag.Items() {
		b.WriteString(d.Code.ID())
		b.WriteString(": ")
		b.WriteString(d.Message)
		b.WriteString("\n")
	}
	return b.String()
}

// shape renders the tree compactly, e.g. Tuple(Ident Atom Comment).
func shape(n *Node) string {
	if len(n.Children) == 0 {
		return n.Kind.String()
	}
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, shape(c))
	}
	return n.Kind.String() + "(" + strings.Join(parts, " ") + ")"
}

func mustParse(t *testing.T, input string) *Node {
	t.Helper()
	root, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q:\n%s", input, diagnosticsSummary(bag))
	}
	return root
}
