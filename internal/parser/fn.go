package parser

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
	"github.com/ZXY595/fnerror/internal/token"
)

// parseFnItem parses `fn name<generics>(params) -> Type { body }`.
// The leading attributes and `pub` were consumed by the caller.
func (p *Parser) parseFnItem(start source.Span, attrs []ast.AttrID, pub bool) (ast.ItemID, bool) {
	p.advance() // fn

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	if !ok {
		return ast.NoItemID, false
	}
	nameID := p.intern(nameTok.Text)

	var generics []ast.GenericParamID
	if p.at(token.Lt) {
		generics, ok = p.parseGenericParams()
		if !ok {
			return ast.NoItemID, false
		}
	}

	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoItemID, false
	}

	returnType := ast.NoTypeID
	if p.at(token.Arrow) {
		p.advance()
		returnType, ok = p.parseType()
		if !ok {
			return ast.NoItemID, false
		}
	}

	if !p.at(token.LBrace) {
		p.err(diag.SynExpectFnBody, "expected function body")
		return ast.NoItemID, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoItemID, false
	}

	span := start.Cover(p.arenas.Exprs.Get(body).Span)
	return p.arenas.Items.NewFn(ast.FnItem{
		Pub:        pub,
		Name:       nameID,
		NameSpan:   nameTok.Span,
		Attrs:      attrs,
		Generics:   generics,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Span:       span,
	}), true
}

// parseGenericParams parses `<'a, T: Bound, const N: usize>`. Each
// parameter's Span covers its whole declaration, bounds included, so it can
// be reproduced verbatim on the synthesized enum.
func (p *Parser) parseGenericParams() ([]ast.GenericParamID, bool) {
	p.advance() // <

	var params []ast.GenericParamID
	for {
		if p.at(token.Gt) {
			p.advance()
			return params, true
		}

		var id ast.GenericParamID
		var ok bool
		switch p.lx.Peek().Kind {
		case token.Lifetime:
			id, ok = p.parseLifetimeParam()
		case token.KwConst:
			id, ok = p.parseConstParam()
		case token.Ident:
			id, ok = p.parseTypeParam()
		default:
			p.err(diag.SynUnexpectedToken, "expected generic parameter")
			return nil, false
		}
		if !ok {
			return nil, false
		}
		params = append(params, id)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.Gt) {
			p.err(diag.SynExpectGt, "expected '>' to close generic parameters")
			return nil, false
		}
	}
}

func (p *Parser) parseLifetimeParam() (ast.GenericParamID, bool) {
	tok := p.advance() // 'a
	span := tok.Span
	nameID := p.intern(lifetimeName(tok.Text))

	// Bounds: `: 'b + 'c`.
	if p.at(token.Colon) {
		p.advance()
		for {
			boundTok, ok := p.expect(token.Lifetime, diag.SynExpectLifetime, "expected lifetime bound")
			if !ok {
				return ast.NoGenericParamID, false
			}
			span = span.Cover(boundTok.Span)
			if !p.at(token.Plus) {
				break
			}
			p.advance()
		}
	}

	return p.arenas.Items.NewGenericParam(ast.GenericLifetime, nameID, span, ast.NoTypeID), true
}

func (p *Parser) parseTypeParam() (ast.GenericParamID, bool) {
	tok := p.advance() // ident
	span := tok.Span
	nameID := p.intern(tok.Text)

	// Bounds are kept only as source text; skip them with balanced angle
	// bracket tracking so `T: Into<String>` does not end the parameter early.
	if p.at(token.Colon) {
		p.advance()
		end, ok := p.skipTypeBounds()
		if !ok {
			return ast.NoGenericParamID, false
		}
		span = span.Cover(end)
	}

	return p.arenas.Items.NewGenericParam(ast.GenericType, nameID, span, ast.NoTypeID), true
}

func (p *Parser) parseConstParam() (ast.GenericParamID, bool) {
	constTok := p.advance() // const
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected const parameter name")
	if !ok {
		return ast.NoGenericParamID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after const parameter name"); !ok {
		return ast.NoGenericParamID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoGenericParamID, false
	}

	span := constTok.Span.Cover(p.arenas.Types.Get(typ).Span)
	return p.arenas.Items.NewGenericParam(ast.GenericConst, p.intern(nameTok.Text), span, typ), true
}

// skipTypeBounds consumes a bound list up to a depth-zero `,` or `>` and
// returns the span of the last consumed token.
func (p *Parser) skipTypeBounds() (source.Span, bool) {
	angle := 0
	paren := 0
	last := p.getDiagnosticSpan()
	consumed := false
	for {
		k := p.lx.Peek().Kind
		switch k {
		case token.EOF:
			p.err(diag.SynExpectGt, "unterminated generic parameter bounds")
			return last, false
		case token.Comma:
			if angle == 0 && paren == 0 {
				if !consumed {
					p.err(diag.SynExpectType, "expected generic bounds after ':'")
					return last, false
				}
				return last, true
			}
		case token.Gt:
			if angle == 0 && paren == 0 {
				if !consumed {
					p.err(diag.SynExpectType, "expected generic bounds after ':'")
					return last, false
				}
				return last, true
			}
			angle--
		case token.Lt:
			angle++
		case token.LParen, token.LBracket:
			paren++
		case token.RParen, token.RBracket:
			paren--
		}
		last = p.advance().Span
		consumed = true
	}
}

// parseFnParams parses `(mut name: Type, ...)`.
func (p *Parser) parseFnParams() ([]ast.FnParamID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false
	}

	var params []ast.FnParamID
	for {
		if p.at(token.RParen) {
			p.advance()
			return params, true
		}

		start := p.lx.Peek().Span
		mut := false
		if p.at(token.KwMut) {
			p.advance()
			mut = true
		}

		var nameID source.StringID
		switch p.lx.Peek().Kind {
		case token.Ident:
			nameID = p.intern(p.advance().Text)
		case token.Underscore:
			nameID = p.intern(p.advance().Text)
		default:
			p.err(diag.SynExpectIdentifier, "expected parameter name")
			return nil, false
		}

		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}

		span := start.Cover(p.arenas.Types.Get(typ).Span)
		params = append(params, p.arenas.Items.NewFnParam(mut, nameID, typ, span))

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.RParen) {
			p.err(diag.SynUnexpectedToken, "expected ',' or ')' in parameter list")
			return nil, false
		}
	}
}

// lifetimeName strips the leading apostrophe from a lifetime token's text.
func lifetimeName(text string) string {
	if len(text) > 0 && text[0] == '\'' {
		return text[1:]
	}
	return text
}
