package lexer

import (
	"ronfmt/internal/diag"
	"ronfmt/internal/token"
)

// scanString scans "..." with escapes; RON strings may span lines.
// start may point before the quote when a b prefix was consumed.
func (lx *Lexer) scanString(start Mark) token.Token {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.bumpRune()
		default:
			lx.bumpRune()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanRawString scans r"..." or r##"..."##; the cursor is on the r.
func (lx *Lexer) scanRawString(start Mark) token.Token {
	lx.cursor.Bump() // r
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	if !lx.cursor.Eat('"') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "expected '\"' in raw string")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		closed := 0
		for closed < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			closed++
		}
		if closed == hashes {
			return lx.emit(token.StringLit, start)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated raw string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanChar scans 'x', '\n', '\u{1F600}' and the b'x' byte form.
func (lx *Lexer) scanChar(start Mark) token.Token {
	lx.cursor.Bump() // opening '\''
	switch lx.cursor.Peek() {
	case '\\':
		lx.cursor.Bump()
		if lx.cursor.Peek() == 'u' && lx.cursor.PeekAt(1) == '{' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '}' && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.cursor.Eat('}')
		} else {
			lx.bumpRune()
		}
	case '\'', '\n', 0:
		// empty or broken literal, reported below
	default:
		lx.bumpRune()
	}
	// escapes like \x41 carry extra digits
	for isHex(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Eat('\'') {
		return lx.emit(token.CharLit, start)
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
