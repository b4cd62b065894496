package parser

import (
	"ronfmt/internal/diag"
	"ronfmt/internal/source"
	"ronfmt/internal/token"
)

// parseValue parses one value. Comments leading its first token go to into,
// which is the container the caller is about to append the value to.
// It returns nil without consuming anything when no value starts here.
func (p *Parser) parseValue(into *[]*Node) *Node {
	tok := p.peek()
	switch {
	case tok.IsLiteral():
		p.advance(into)
		return &Node{Kind: NodeAtom, Span: tok.Span, Text: tok.Text, Tok: tok.Kind}

	case tok.Kind == token.Ident:
		p.advance(into)
		name := &Node{Kind: NodeIdent, Span: tok.Span, Text: tok.Text}
		if p.at(token.LParen) {
			return p.parseParens(name, into)
		}
		return &Node{Kind: NodeAtom, Span: tok.Span, Text: tok.Text, Tok: token.Ident}

	case tok.Kind == token.LParen:
		return p.parseParens(nil, into)

	case tok.Kind == token.LBracket:
		return p.parseList(into)

	case tok.Kind == token.LBrace:
		return p.parseMap(into)
	}

	p.err(diag.SynExpectValue, "expected a value, found "+describe(tok))
	return nil
}

// parseList: '[' (value (',' value)* ','?)? ']'
func (p *Parser) parseList(into *[]*Node) *Node {
	open := p.advance(into)
	n := &Node{Kind: NodeList, Span: open.Span}
	p.parseSeq(n, open, token.RBracket, func(children *[]*Node) bool {
		v := p.parseValue(children)
		if v == nil {
			return false
		}
		*children = append(*children, v)
		return true
	})
	return n
}

// parseMap: '{' (value ':' value (',' ...)* ','?)? '}'
func (p *Parser) parseMap(into *[]*Node) *Node {
	open := p.advance(into)
	n := &Node{Kind: NodeMap, Span: open.Span}
	p.parseSeq(n, open, token.RBrace, func(children *[]*Node) bool {
		entry := &Node{Kind: NodeMapEntry}
		key := p.parseValue(children)
		if key == nil {
			return false
		}
		entry.Children = append(entry.Children, key)
		if _, ok := p.expect(token.Colon, &entry.Children, diag.SynExpectColon, "expected ':' after map key"); !ok {
			return false
		}
		val := p.parseValue(&entry.Children)
		if val == nil {
			return false
		}
		entry.Children = append(entry.Children, val)
		entry.Span = key.Span.Cover(val.Span)
		*children = append(*children, entry)
		return true
	})
	return n
}

// parseParens parses a tuple, a record or the unit value; name may be nil.
// The opening parenthesis is the next token.
func (p *Parser) parseParens(name *Node, into *[]*Node) *Node {
	isRecord := p.peekAt(1).Kind == token.Ident && p.peekAt(2).Kind == token.Colon
	open := p.advance(into)

	n := &Node{Kind: NodeTuple, Span: open.Span}
	if name != nil {
		n.Span = name.Span.Cover(open.Span)
		n.Children = append(n.Children, name)
	}
	if isRecord {
		n.Kind = NodeRecord
		p.parseSeq(n, open, token.RParen, p.parseField)
		return n
	}
	p.parseSeq(n, open, token.RParen, func(children *[]*Node) bool {
		if p.peek().Kind == token.Ident && p.peekAt(1).Kind == token.Colon {
			p.err(diag.SynMixedFieldsAndElem, "named field inside a tuple")
			return false
		}
		v := p.parseValue(children)
		if v == nil {
			return false
		}
		*children = append(*children, v)
		return true
	})

	// "()" is the unit value unless it carries a name or comments
	if name == nil && len(n.Children) == 0 {
		return &Node{Kind: NodeAtom, Span: n.Span, Text: "()", Tok: token.LParen}
	}
	return n
}

// parseField: ident ':' value
func (p *Parser) parseField(children *[]*Node) bool {
	if !p.at(token.Ident) {
		if p.peek().Kind != token.RParen {
			p.err(diag.SynMixedFieldsAndElem, "expected 'name: value' field, found "+describe(p.peek()))
		}
		return false
	}
	keyTok := p.advance(children)
	field := &Node{Kind: NodeField, Span: keyTok.Span}
	field.Children = append(field.Children, &Node{Kind: NodeIdent, Span: keyTok.Span, Text: keyTok.Text})
	if _, ok := p.expect(token.Colon, &field.Children, diag.SynExpectColon, "expected ':' after field name"); !ok {
		return false
	}
	val := p.parseValue(&field.Children)
	if val == nil {
		return false
	}
	field.Children = append(field.Children, val)
	field.Span = field.Span.Cover(val.Span)
	*children = append(*children, field)
	return true
}

// parseSeq runs elem for each comma separated element until closer.
// Comments before the closer stay inside n.
func (p *Parser) parseSeq(n *Node, open token.Token, closer token.Kind, elem func(children *[]*Node) bool) {
	for {
		switch p.peek().Kind {
		case closer:
			end := p.advance(&n.Children)
			n.Span = n.Span.Cover(end.Span)
			return
		case token.EOF:
			p.report(diag.SynUnclosedDelimiter, diag.SevError, p.diagnosticSpan(),
				"unclosed "+open.Text, []diag.Note{{Span: open.Span, Msg: "opened here"}})
			n.Span = n.Span.Cover(source.Span{File: open.Span.File, Start: p.lastSpan.End, End: p.lastSpan.End})
			return
		}

		if !elem(&n.Children) {
			p.syncTo(closer)
		}

		switch p.peek().Kind {
		case token.Comma:
			p.advance(&n.Children)
		case closer, token.EOF:
		default:
			p.err(diag.SynExpectComma, "expected ',' or '"+closerText(closer)+"', found "+describe(p.peek()))
			p.syncTo(closer)
			if p.at(token.Comma) {
				p.advance(&n.Children)
			}
		}
	}
}

func closerText(k token.Kind) string {
	switch k {
	case token.RParen:
		return ")"
	case token.RBrace:
		return "}"
	case token.RBracket:
		return "]"
	}
	return k.String()
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return "'" + tok.Text + "'"
}
