package lexer

import (
	"ronfmt/internal/diag"
	"ronfmt/internal/token"
)

// collectLeadingTrivia gathers whitespace and comments before the next token.
//   - runs of ' ', '\t', '\r' become one TriviaSpace
//   - runs of '\n' become one TriviaNewline
//   - "//..." up to the newline is a TriviaLineComment
//   - "/* ... */" is a TriviaBlockComment; nesting is allowed
//
// A comment is SameLine when no newline separates it from the previous token.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	sameLine := lx.started
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t' || b == '\r':
			for b2 := lx.cursor.Peek(); b2 == ' ' || b2 == '\t' || b2 == '\r'; b2 = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start, false)
			continue

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start, false)
			sameLine = false
			continue

		case b == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaLineComment, start, sameLine)
			continue

		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.scanBlockComment()
			lx.pushTrivia(token.TriviaBlockComment, start, sameLine)
			continue
		}
		return
	}
}

func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark, sameLine bool) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind:     kind,
		Span:     sp,
		Text:     string(lx.file.Content[sp.Start:sp.End]),
		SameLine: sameLine,
	})
}
