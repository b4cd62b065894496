package lexer

import (
	"ronfmt/internal/diag"
	"ronfmt/internal/token"
)

// scanNumber accepts an optional sign followed by
//   - 0b[01_]+, 0o[0-7_]+, 0x[0-9a-fA-F_]+
//   - [0-9][0-9_]* with optional .[0-9_]* and [eE][+-]?[0-9_]+
//   - .[0-9_]+
//   - inf, NaN
//
// and an optional type suffix (u8, i64, f32...). Validation of '_' placement
// is left to the consumer of the document.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}

	if lx.hasWordAt(0, "inf") || lx.hasWordAt(0, "NaN") {
		for range 3 {
			lx.cursor.Bump()
		}
		return lx.emit(token.FloatLit, start)
	}

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			digit = isHex
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			for digit(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.scanSuffix()
			return lx.emit(token.IntLit, start)
		}
	}

	kind := token.IntLit
	lx.scanDigits()

	// "1.5", "1." and ".5"; "1.foo" is not a float
	if lx.cursor.Peek() == '.' && !isIdentStartByte(lx.cursor.PeekAt(1)) && lx.cursor.PeekAt(1) != '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		lx.scanDigits()
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.scanDigits()
	}

	lx.scanSuffix()
	return lx.emit(kind, start)
}

func (lx *Lexer) scanDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanSuffix() {
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
