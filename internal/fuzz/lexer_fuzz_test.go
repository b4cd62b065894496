package fuzztests

import (
	"testing"

	"ronfmt/internal/diag"
	"ronfmt/internal/lexer"
	"ronfmt/internal/source"
	"ronfmt/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.ron", input))

		bag := diag.NewBag(64)
		tokens := lexer.Tokenize(file, &diag.BagReporter{Bag: bag})
		if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF")
		}
		var prevEnd uint32
		for _, tok := range tokens {
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %s has span %v after offset %d", tok.Kind, tok.Span, prevEnd)
			}
			prevEnd = tok.Span.End
		}
	})
}
