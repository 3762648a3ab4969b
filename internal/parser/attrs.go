package parser

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/token"
)

// parseOuterAttrs parses a run of `#[...]` attributes.
//
// Only the leading path identifier and `ident = ident` argument pairs are
// structured; everything else inside the brackets is skipped with balanced
// delimiters and reproduced from the attribute's span. That is enough to
// recognize the markers while passing arbitrary foreign attributes through.
func (p *Parser) parseOuterAttrs() ([]ast.AttrID, bool) {
	var attrs []ast.AttrID
	for p.at(token.Pound) {
		id, ok := p.parseOuterAttr()
		if !ok {
			return nil, false
		}
		attrs = append(attrs, id)
	}
	return attrs, true
}

func (p *Parser) parseOuterAttr() (ast.AttrID, bool) {
	poundTok := p.advance() // #
	if _, ok := p.expect(token.LBracket, diag.SynUnexpectedToken, "expected '[' after '#'"); !ok {
		return ast.NoAttrID, false
	}

	// Leading `::` only occurs in synthesized attributes, but accept it.
	if p.at(token.ColonColon) {
		p.advance()
	}
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected attribute name")
	if !ok {
		return ast.NoAttrID, false
	}
	nameID := p.intern(nameTok.Text)

	var args []ast.AttrArg
	structured := true

	switch p.lx.Peek().Kind {
	case token.RBracket:
		// #[name]
	case token.LParen:
		p.advance() // (
		args, structured = p.parseAttrArgs()
		if !structured {
			if !p.skipBalancedUntil(token.RParen) {
				p.err(diag.SynUnclosedDelimiter, "unclosed '(' in attribute")
				return ast.NoAttrID, false
			}
		}
	default:
		// #[name = ...] and other shapes: raw until the closing bracket.
		structured = false
	}

	if !structured || p.lx.Peek().Kind != token.RBracket {
		if !p.skipBalancedUntil(token.RBracket) {
			p.err(diag.SynUnclosedDelimiter, "unclosed '[' in attribute")
			return ast.NoAttrID, false
		}
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' to close attribute")
	if !ok {
		return ast.NoAttrID, false
	}

	span := poundTok.Span.Cover(closeTok.Span)
	if !structured {
		args = nil
	}
	return p.arenas.Items.NewAttr(nameID, span, args), true
}

// parseAttrArgs parses `ident = ident` pairs up to the closing paren.
// Returns structured=false when the contents have any other shape; the
// caller then falls back to a balanced skip.
func (p *Parser) parseAttrArgs() ([]ast.AttrArg, bool) {
	var args []ast.AttrArg
	for {
		if p.at(token.RParen) {
			p.advance()
			return args, true
		}
		if !p.at(token.Ident) {
			return nil, false
		}
		keyTok := p.advance()
		if !p.at(token.Assign) {
			return nil, false
		}
		p.advance()
		if !p.at(token.Ident) {
			return nil, false
		}
		valTok := p.advance()
		args = append(args, ast.AttrArg{
			Key:   p.intern(keyTok.Text),
			Value: p.intern(valTok.Text),
			Span:  keyTok.Span.Cover(valTok.Span),
		})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if p.at(token.RParen) {
			p.advance()
			return args, true
		}
		return nil, false
	}
}

// skipBalancedUntil skips tokens until `until` appears at nesting depth zero.
// The `until` token itself is not consumed. Returns false at EOF.
func (p *Parser) skipBalancedUntil(until token.Kind) bool {
	depth := 0
	for {
		k := p.lx.Peek().Kind
		if k == token.EOF {
			return false
		}
		if depth == 0 && k == until {
			return true
		}
		switch k {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
			if depth < 0 {
				return false
			}
		}
		p.advance()
	}
}
