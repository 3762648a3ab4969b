package parser

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
	"github.com/ZXY595/fnerror/internal/token"
)

// parseType parses one type: a path, a reference, a tuple, or a slice/array.
func (p *Parser) parseType() (ast.TypeID, bool) {
	switch p.lx.Peek().Kind {
	case token.Amp:
		return p.parseRefType()
	case token.LParen:
		return p.parseTupleType()
	case token.LBracket:
		return p.parseSliceType()
	case token.Ident, token.ColonColon:
		return p.parsePathType()
	default:
		p.err(diag.SynExpectType, "expected a type")
		return ast.NoTypeID, false
	}
}

// parseRefType parses `&'a mut T`; the lifetime and `mut` are optional.
func (p *Parser) parseRefType() (ast.TypeID, bool) {
	ampTok := p.advance() // &

	lifetime := source.NoStringID
	var lifetimeSpan source.Span
	if p.at(token.Lifetime) {
		tok := p.advance()
		lifetime = p.intern(lifetimeName(tok.Text))
		lifetimeSpan = tok.Span
	}

	mut := false
	if p.at(token.KwMut) {
		p.advance()
		mut = true
	}

	elem, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}

	span := ampTok.Span.Cover(p.arenas.Types.Get(elem).Span)
	return p.arenas.Types.NewRef(span, lifetime, lifetimeSpan, mut, elem), true
}

// parseTupleType parses `()`, `(T)`, and `(A, B)`. A parenthesized single
// type without a trailing comma is just that type.
func (p *Parser) parseTupleType() (ast.TypeID, bool) {
	openTok := p.advance() // (

	var elems []ast.TypeID
	trailing := false
	for !p.at(token.RParen) {
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		elems = append(elems, elem)
		trailing = false
		if p.at(token.Comma) {
			p.advance()
			trailing = true
			continue
		}
		break
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close tuple type")
	if !ok {
		return ast.NoTypeID, false
	}

	if len(elems) == 1 && !trailing {
		return elems[0], true
	}
	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Types.NewTuple(span, elems), true
}

// parseSliceType parses `[T]` and `[T; len]`.
func (p *Parser) parseSliceType() (ast.TypeID, bool) {
	openTok := p.advance() // [

	elem, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}

	length := ast.NoExprID
	if p.at(token.Semicolon) {
		p.advance()
		length, ok = p.parseExpr()
		if !ok {
			return ast.NoTypeID, false
		}
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' to close slice type")
	if !ok {
		return ast.NoTypeID, false
	}
	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Types.NewSlice(span, elem, length), true
}

// parsePathType parses `ident(::ident)*` with optional generic arguments on
// any segment. Leading `::` is accepted for fully qualified paths.
func (p *Parser) parsePathType() (ast.TypeID, bool) {
	start := p.lx.Peek().Span
	leadingColons := false
	if p.at(token.ColonColon) {
		p.advance()
		leadingColons = true
	}

	var segments []ast.TypePathSegment
	end := start
	for {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type path segment")
		if !ok {
			return ast.NoTypeID, false
		}
		seg := ast.TypePathSegment{
			Name: p.intern(nameTok.Text),
			Span: nameTok.Span,
		}
		end = nameTok.Span

		if p.at(token.Lt) {
			args, closeSpan, ok := p.parseGenericArgs()
			if !ok {
				return ast.NoTypeID, false
			}
			seg.Args = args
			end = closeSpan
		}
		segments = append(segments, seg)

		if p.at(token.ColonColon) {
			p.advance()
			continue
		}
		break
	}

	span := start.Cover(end)
	return p.arenas.Types.NewPath(span, leadingColons, segments), true
}

// parseGenericArgs parses `<arg, ...>` where each arg is a lifetime, a type,
// or a const literal. Returns the span of the closing '>'.
func (p *Parser) parseGenericArgs() ([]ast.GenericArg, source.Span, bool) {
	p.advance() // <

	var args []ast.GenericArg
	for {
		if p.at(token.Gt) {
			closeTok := p.advance()
			return args, closeTok.Span, true
		}

		switch p.lx.Peek().Kind {
		case token.Lifetime:
			tok := p.advance()
			args = append(args, ast.GenericArg{
				Kind:         ast.GenericArgLifetime,
				Lifetime:     p.intern(lifetimeName(tok.Text)),
				LifetimeSpan: tok.Span,
			})
		case token.IntLit, token.KwTrue, token.KwFalse:
			expr, ok := p.parsePrimaryExpr()
			if !ok {
				return nil, source.Span{}, false
			}
			args = append(args, ast.GenericArg{
				Kind:  ast.GenericArgConst,
				Const: expr,
			})
		case token.LBrace:
			// Const block argument `{ N * 2 }`.
			expr, ok := p.parseBlockExpr()
			if !ok {
				return nil, source.Span{}, false
			}
			args = append(args, ast.GenericArg{
				Kind:  ast.GenericArgConst,
				Const: expr,
			})
		default:
			typ, ok := p.parseType()
			if !ok {
				return nil, source.Span{}, false
			}
			args = append(args, ast.GenericArg{
				Kind: ast.GenericArgType,
				Type: typ,
			})
		}

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.Gt) {
			p.err(diag.SynExpectGt, "expected '>' to close generic arguments")
			return nil, source.Span{}, false
		}
	}
}
