package parser_test

import (
	"testing"

	"ronfmt/internal/diag"
	"ronfmt/internal/lexer"
	"ronfmt/internal/parser"
	"ronfmt/internal/source"
	"ronfmt/internal/testkit"
)

func TestParseTreeSpanInvariants(t *testing.T) {
	inputs := []string{
		"",
		"// only a comment",
		"#![enable(implicit_some)] // eol\n(a: 1, /* c */ b: [1, 2])",
		"Point /* gap */ (x: 1, y: 2)",
		`{"k": /* v */ (1, 2), r#"raw"#: b"x"}`,
		"[1, 2",
		"(a: 1 b: 2)",
		"{1: 2 3: 4, : , ,}",
		"#![enable(a b)] [",
		"((((",
	}
	for _, input := range inputs {
		fs := source.NewFileSet()
		sf := fs.Get(fs.AddVirtual("inv.ron", []byte(input)))
		reporter := &diag.BagReporter{Bag: diag.NewBag(32)}
		lx := lexer.New(sf, lexer.Options{Reporter: reporter})
		res := parser.ParseFile(lx, parser.Options{Reporter: reporter, MaxErrors: 32})
		if err := testkit.CheckTreeInvariants(res.Root, sf); err != nil {
			t.Errorf("%q: %v", input, err)
		}
	}
}
