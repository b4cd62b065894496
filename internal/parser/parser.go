package parser

import (
	"ronfmt/internal/diag"
	"ronfmt/internal/lexer"
	"ronfmt/internal/source"
	"ronfmt/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit was reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Root *Node
	// Errors is the number of errors reported while parsing.
	Errors uint
}

// Parser holds the state for one document.
type Parser struct {
	lx       *lexer.Lexer
	buf      []token.Token // lookahead, buf[0] is the next token
	opts     Options
	lastSpan source.Span
}

// ParseFile parses the whole document behind lx.
// The tree is always returned; it is only well formed when Result.Errors is 0.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	root := p.parseFile()
	return Result{Root: root, Errors: p.opts.CurrentErrors}
}

func (p *Parser) peekAt(n int) token.Token {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lx.Next())
	}
	return p.buf[n]
}

func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance consumes the next token; its leading comments are appended to into.
func (p *Parser) advance(into *[]*Node) token.Token {
	tok := p.peek()
	p.buf = p.buf[1:]
	if into != nil {
		for _, tv := range tok.Leading {
			if tv.IsComment() {
				*into = append(*into, commentNode(tv))
			}
		}
	}
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect consumes a token of kind k or reports code and returns false.
func (p *Parser) expect(k token.Kind, into *[]*Node, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(into), true
	}
	p.err(code, msg)
	return p.peek(), false
}

// diagnosticSpan points at the next token, or right after the last one at EOF.
func (p *Parser) diagnosticSpan() source.Span {
	next := p.peek()
	if next.Kind == token.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return next.Span
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagnosticSpan(), msg, nil)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		if p.opts.Enough() {
			return
		}
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg, notes)
	}
}

// parseFile: (extension | value)* EOF, with comments kept in order.
func (p *Parser) parseFile() *Node {
	root := &Node{Kind: NodeFile, Span: p.lx.EmptySpan()}
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			end := p.advance(&root.Children)
			root.Span = root.Span.Cover(end.Span)
			return root
		case token.Hash:
			if ext := p.parseExtension(&root.Children); ext != nil {
				root.Children = append(root.Children, ext)
			}
		default:
			if v := p.parseValue(&root.Children); v != nil {
				root.Children = append(root.Children, v)
				continue
			}
			// skip the offending token so the loop makes progress
			p.advance(&root.Children)
		}
	}
}

// syncTo skips tokens until a ',' or closer at the current nesting level.
// A stray closing delimiter of another kind is skipped too.
func (p *Parser) syncTo(closer token.Kind) {
	depth := 0
	for {
		k := p.peek().Kind
		switch {
		case k == token.EOF:
			return
		case depth == 0 && (k == token.Comma || k == closer):
			return
		case k == token.LParen || k == token.LBrace || k == token.LBracket:
			depth++
		case k == token.RParen || k == token.RBrace || k == token.RBracket:
			if depth > 0 {
				depth--
			}
		}
		p.advance(nil)
	}
}
