package token

import (
	"ronfmt/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an atom on its own.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, BoolLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is a delimiter or separator.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Hash, Bang, Comma, Colon, LParen, RParen, LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Comments returns the comment trivia in t.Leading, in source order.
func (t Token) Comments() []Trivia {
	var out []Trivia
	for _, tv := range t.Leading {
		if tv.IsComment() {
			out = append(out, tv)
		}
	}
	return out
}
