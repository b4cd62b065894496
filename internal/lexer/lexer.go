package lexer

import (
	"ronfmt/internal/diag"
	"ronfmt/internal/source"
	"ronfmt/internal/token"
)

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *token.Token   // one-token lookahead
	hold    []token.Trivia // leading trivia of the token being scanned
	started bool           // a significant token was already produced
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia.
// After EOF it keeps returning EOF; trivia before EOF is attached to it.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	var tok token.Token
	if lx.cursor.EOF() {
		tok = token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	} else {
		tok = lx.scanToken()
		lx.started = true
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan is a zero-width span at the cursor.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}

func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case ch == 'r' && lx.isRawStart():
		return lx.scanRaw()
	case ch == 'b' && (lx.cursor.PeekAt(1) == '"' || lx.cursor.PeekAt(1) == '\''):
		lx.cursor.Bump()
		if lx.cursor.Peek() == '"' {
			return lx.scanString(lx.cursor.Mark() - 1)
		}
		return lx.scanChar(lx.cursor.Mark() - 1)
	case ch == 'b' && lx.cursor.PeekAt(1) == 'r' && (lx.cursor.PeekAt(2) == '"' || lx.cursor.PeekAt(2) == '#'):
		lx.cursor.Bump()
		return lx.scanRawString(lx.cursor.Mark() - 1)
	case isIdentStartByte(ch), ch >= utf8RuneSelf:
		return lx.scanIdent()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case (ch == '-' || ch == '+') && lx.isSignedNumber():
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString(lx.cursor.Mark())
	case ch == '\'':
		return lx.scanChar(lx.cursor.Mark())
	default:
		return lx.scanPunct()
	}
}

// Tokenize lexes the whole file, EOF included.
func Tokenize(file *source.File, reporter diag.Reporter) []token.Token {
	lx := New(file, Options{Reporter: reporter})
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}
