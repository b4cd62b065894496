package parser

import (
	"ronfmt/internal/diag"
	"ronfmt/internal/token"
)

// parseExtension: '#' '!' '[' 'enable' '(' ident (',' ident)* ','? ')' ']'
// Comments inside the block are moved to into.
func (p *Parser) parseExtension(into *[]*Node) *Node {
	hash := p.advance(into)
	ext := &Node{Kind: NodeExtension, Span: hash.Span}

	if _, ok := p.expect(token.Bang, into, diag.SynBadExtension, "expected '!' after '#'"); !ok {
		p.syncTopLevel()
		return nil
	}
	if _, ok := p.expect(token.LBracket, into, diag.SynBadExtension, "expected '[' in inner attribute"); !ok {
		p.syncTopLevel()
		return nil
	}
	attr, ok := p.expect(token.Ident, into, diag.SynBadExtension, "expected attribute name")
	if !ok {
		p.syncTopLevel()
		return nil
	}
	if attr.Text != "enable" {
		p.report(diag.SynUnknownAttribute, diag.SevError, attr.Span, "unknown inner attribute '"+attr.Text+"', only 'enable' is supported", nil)
		p.syncTopLevel()
		return nil
	}
	if _, ok := p.expect(token.LParen, into, diag.SynBadExtension, "expected '(' after 'enable'"); !ok {
		p.syncTopLevel()
		return nil
	}

	for !p.at(token.RParen) {
		name, ok := p.expect(token.Ident, into, diag.SynExpectIdentifier, "expected extension name")
		if !ok {
			p.syncTopLevel()
			return nil
		}
		ext.Children = append(ext.Children, &Node{Kind: NodeIdent, Span: name.Span, Text: name.Text})
		if !p.at(token.Comma) {
			break
		}
		p.advance(into)
	}
	if len(ext.Children) == 0 {
		p.err(diag.SynExpectIdentifier, "empty extension list")
	}
	if _, ok := p.expect(token.RParen, into, diag.SynBadExtension, "expected ')' after extension names"); !ok {
		p.syncTopLevel()
		return nil
	}
	end, ok := p.expect(token.RBracket, into, diag.SynBadExtension, "expected ']' to close inner attribute")
	if !ok {
		p.syncTopLevel()
		return nil
	}
	ext.Span = ext.Span.Cover(end.Span)
	return ext
}

// syncTopLevel skips to the next ']' (consumed) or EOF.
func (p *Parser) syncTopLevel() {
	for !p.at(token.EOF) {
		if p.advance(nil).Kind == token.RBracket {
			return
		}
	}
}
