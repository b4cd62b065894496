package lexer

import (
	"ronfmt/internal/diag"
	"ronfmt/internal/token"
)

var punct = [256]token.Kind{
	'#': token.Hash,
	'!': token.Bang,
	',': token.Comma,
	':': token.Colon,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	if k := punct[lx.cursor.Peek()]; k != token.Invalid {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}
	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected character "+quoteText(tok.Text))
	return tok
}

func quoteText(s string) string {
	return "'" + s + "'"
}
