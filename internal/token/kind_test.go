package token_test

import (
	"testing"

	"ronfmt/internal/source"
	"ronfmt/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.FloatLit, token.BoolLit, token.StringLit, token.CharLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Comma, token.LParen, token.EOF}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestKindStringAndCloser(t *testing.T) {
	if got := token.RBracket.String(); got != "RBracket" {
		t.Errorf("RBracket.String() = %q", got)
	}
	pairs := map[token.Kind]token.Kind{
		token.LParen:   token.RParen,
		token.LBrace:   token.RBrace,
		token.LBracket: token.RBracket,
		token.Comma:    token.Invalid,
	}
	for open, want := range pairs {
		if got := open.Closer(); got != want {
			t.Errorf("%v.Closer() = %v, want %v", open, got, want)
		}
	}
}

func TestLookupWord(t *testing.T) {
	tests := map[string]token.Kind{"true": token.BoolLit, "false": token.BoolLit, "inf": token.FloatLit, "NaN": token.FloatLit}
	for word, want := range tests {
		got, ok := token.LookupWord(word)
		if !ok || got != want {
			t.Errorf("LookupWord(%q) = %v, %v", word, got, ok)
		}
	}
	if _, ok := token.LookupWord("True"); ok {
		t.Error("lookup must be case sensitive")
	}
}

func TestTokenComments(t *testing.T) {
	tk := token.Token{Kind: token.IntLit, Text: "1", Leading: []token.Trivia{
		{Kind: token.TriviaNewline, Text: "\n"},
		{Kind: token.TriviaLineComment, Text: "// a"},
		{Kind: token.TriviaSpace, Text: " "},
		{Kind: token.TriviaBlockComment, Text: "/* b */"},
	}}
	got := tk.Comments()
	if len(got) != 2 || got[0].Text != "// a" || got[1].Text != "/* b */" {
		t.Fatalf("Comments() = %+v", got)
	}
}
