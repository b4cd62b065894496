package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ronfmt/internal/ast"
	"ronfmt/internal/diag"
	"ronfmt/internal/lexer"
	"ronfmt/internal/parser"
	"ronfmt/internal/source"
)

func build(t *testing.T, input string) *ast.Document {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ron", []byte(input))
	bag := diag.NewBag(0)
	reporter := &diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(fs.Get(id), lexer.Options{Reporter: reporter}), parser.Options{Reporter: reporter})
	require.False(t, bag.HasErrors(), "diagnostics: %v", bag.Items())

	doc, err := ast.Build(res.Root)
	require.NoError(t, err)
	return doc
}

func texts(cs []ast.Comment) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Text)
	}
	return out
}
