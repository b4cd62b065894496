package lexer

import (
	"ronfmt/internal/token"
)

// scanIdent scans an identifier and promotes true/false/inf/NaN to literals.
// Token.Text is always the exact source slice.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || (r >= utf8RuneSelf && !isIdentStartRune(r)) {
		return lx.scanPunct()
	}
	if r < utf8RuneSelf {
		lx.cursor.Bump()
	} else {
		lx.bumpRune()
	}
	for {
		r2, sz2 := lx.peekRune()
		if sz2 == 0 {
			break
		}
		if r2 < utf8RuneSelf {
			if !isIdentContinueByte(byte(r2)) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if k, ok := token.LookupWord(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanRaw handles the r prefix: raw strings r"..", r#".."# and raw identifiers r#name.
func (lx *Lexer) scanRaw() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.PeekAt(1) == '#' && isIdentStartByte(lx.cursor.PeekAt(2)) {
		lx.cursor.Bump() // r
		lx.cursor.Bump() // #
		tok := lx.scanIdent()
		sp := lx.cursor.SpanFrom(start)
		tok.Kind = token.Ident
		tok.Span = sp
		tok.Text = string(lx.file.Content[sp.Start:sp.End])
		return tok
	}
	n := uint32(1)
	for lx.cursor.PeekAt(n) == '#' {
		n++
	}
	if lx.cursor.PeekAt(n) != '"' {
		// plain identifier starting with r, the '#' is lexed separately
		return lx.scanIdent()
	}
	return lx.scanRawString(start)
}
