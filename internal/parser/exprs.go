package parser

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
	"github.com/ZXY595/fnerror/internal/token"
)

// Binding powers, loosest to tightest. Casts sit between unary operators and
// the multiplicative tier, same as the source language.
const (
	bpAssign = 1
	bpOr     = 2
	bpAnd    = 3
	bpCmp    = 4
	bpAdd    = 5
	bpMul    = 6
)

func binaryOp(k token.Kind) (ast.ExprBinaryOp, int, bool) {
	switch k {
	case token.Assign:
		return ast.BinAssign, bpAssign, true
	case token.OrOr:
		return ast.BinOr, bpOr, true
	case token.AndAnd:
		return ast.BinAnd, bpAnd, true
	case token.EqEq:
		return ast.BinEq, bpCmp, true
	case token.BangEq:
		return ast.BinNe, bpCmp, true
	case token.Lt:
		return ast.BinLt, bpCmp, true
	case token.LtEq:
		return ast.BinLe, bpCmp, true
	case token.Gt:
		return ast.BinGt, bpCmp, true
	case token.GtEq:
		return ast.BinGe, bpCmp, true
	case token.Plus:
		return ast.BinAdd, bpAdd, true
	case token.Minus:
		return ast.BinSub, bpAdd, true
	case token.Star:
		return ast.BinMul, bpMul, true
	case token.Slash:
		return ast.BinDiv, bpMul, true
	case token.Percent:
		return ast.BinRem, bpMul, true
	default:
		return 0, 0, false
	}
}

// parseExpr parses a full expression.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

func (p *Parser) parseBinaryExpr(minBP int) (ast.ExprID, bool) {
	left, ok := p.parseCastExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		op, bp, isOp := binaryOp(p.lx.Peek().Kind)
		if !isOp || bp < minBP {
			return left, true
		}
		p.advance()

		// Assignment is right-associative, everything else left.
		nextBP := bp + 1
		if op == ast.BinAssign {
			nextBP = bp
		}
		right, ok := p.parseBinaryExpr(nextBP)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
}

// parseCastExpr parses `expr as Type (as Type)*`.
func (p *Parser) parseCastExpr() (ast.ExprID, bool) {
	expr, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for p.at(token.KwAs) {
		p.advance()
		typ, ok := p.parseType()
		if !ok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(expr).Cover(p.arenas.Types.Get(typ).Span)
		expr = p.arenas.Exprs.NewCast(span, expr, typ)
	}
	return expr, true
}

func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	var op ast.ExprUnaryOp
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Minus:
		op = ast.UnNeg
	case token.Bang:
		op = ast.UnNot
	case token.Star:
		op = ast.UnDeref
	case token.Amp:
		op = ast.UnRef
	default:
		return p.parsePostfixExpr()
	}
	p.advance()
	if op == ast.UnRef && p.at(token.KwMut) {
		p.advance()
		op = ast.UnRefMut
	}
	operand, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := tok.Span.Cover(p.exprSpan(operand))
	return p.arenas.Exprs.NewUnary(span, op, operand), true
}

func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			args, closeSpan, ok := p.parseCallArgs()
			if !ok {
				return ast.NoExprID, false
			}
			span := p.exprSpan(expr).Cover(closeSpan)
			expr = p.arenas.Exprs.NewCall(span, expr, args)

		case token.Dot:
			p.advance()
			switch p.lx.Peek().Kind {
			case token.Ident:
				nameTok := p.advance()
				nameID := p.intern(nameTok.Text)
				if p.at(token.LParen) {
					args, closeSpan, ok := p.parseCallArgs()
					if !ok {
						return ast.NoExprID, false
					}
					span := p.exprSpan(expr).Cover(closeSpan)
					expr = p.arenas.Exprs.NewMethodCall(span, expr, nameID, nameTok.Span, args)
				} else {
					span := p.exprSpan(expr).Cover(nameTok.Span)
					expr = p.arenas.Exprs.NewField(span, expr, nameID)
				}
			case token.IntLit:
				idxTok := p.advance()
				span := p.exprSpan(expr).Cover(idxTok.Span)
				expr = p.arenas.Exprs.NewField(span, expr, p.intern(idxTok.Text))
			default:
				p.err(diag.SynExpectIdentifier, "expected field or method name after '.'")
				return ast.NoExprID, false
			}

		case token.Question:
			qTok := p.advance()
			span := p.exprSpan(expr).Cover(qTok.Span)
			expr = p.arenas.Exprs.NewTry(span, expr)

		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			closeTok, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' to close index")
			if !ok {
				return ast.NoExprID, false
			}
			span := p.exprSpan(expr).Cover(closeTok.Span)
			expr = p.arenas.Exprs.NewIndex(span, expr, index)

		default:
			return expr, true
		}
	}
}

func (p *Parser) parseCallArgs() ([]ast.ExprID, source.Span, bool) {
	p.advance() // (

	var args []ast.ExprID
	for {
		if p.at(token.RParen) {
			closeTok := p.advance()
			return args, closeTok.Span, true
		}
		arg, ok := p.parseExpr()
		if !ok {
			return nil, source.Span{}, false
		}
		args = append(args, arg)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.RParen) {
			p.err(diag.SynUnexpectedToken, "expected ',' or ')' in argument list")
			return nil, source.Span{}, false
		}
	}
}

func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Pound:
		return p.parseAttributedExpr()

	case token.IntLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitInt, p.intern(tok.Text)), true
	case token.FloatLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitFloat, p.intern(tok.Text)), true
	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitString, p.intern(tok.Text)), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitBool, p.intern(tok.Text)), true

	case token.Ident, token.ColonColon, token.Underscore:
		return p.parsePathExpr()

	case token.LParen:
		return p.parseGroupExpr()

	case token.LBrace:
		return p.parseBlockExpr()

	case token.KwIf:
		return p.parseIfExpr()

	case token.Pipe, token.OrOr, token.KwMove:
		return p.parseClosureExpr()

	default:
		p.err(diag.SynExpectExpression, "expected an expression")
		return ast.NoExprID, false
	}
}

// parseAttributedExpr parses outer attributes followed by the expression
// they decorate; the attributes land on that expression's header.
func (p *Parser) parseAttributedExpr() (ast.ExprID, bool) {
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return ast.NoExprID, false
	}
	expr, ok := p.parseBinaryExpr(0)
	if !ok {
		return ast.NoExprID, false
	}
	header := p.arenas.Exprs.Get(expr)
	header.Attrs = append(attrs, header.Attrs...)
	return expr, true
}

func (p *Parser) parsePathExpr() (ast.ExprID, bool) {
	start := p.lx.Peek().Span
	leadingColons := false
	if p.at(token.ColonColon) {
		p.advance()
		leadingColons = true
	}

	var segments []ast.PathSeg
	end := start
	for {
		var nameTok token.Token
		if p.at(token.Underscore) {
			nameTok = p.advance()
		} else {
			var ok bool
			nameTok, ok = p.expect(token.Ident, diag.SynExpectIdentifier, "expected path segment")
			if !ok {
				return ast.NoExprID, false
			}
		}
		segments = append(segments, ast.PathSeg{
			Name: p.intern(nameTok.Text),
			Span: nameTok.Span,
		})
		end = nameTok.Span

		if p.at(token.ColonColon) {
			p.advance()
			continue
		}
		break
	}

	return p.arenas.Exprs.NewPath(start.Cover(end), leadingColons, segments), true
}

// parseGroupExpr parses `(expr)` and the unit value `()`.
func (p *Parser) parseGroupExpr() (ast.ExprID, bool) {
	openTok := p.advance() // (

	if p.at(token.RParen) {
		closeTok := p.advance()
		span := openTok.Span.Cover(closeTok.Span)
		return p.arenas.Exprs.NewLiteral(span, ast.ExprLitUnit, p.intern("()")), true
	}

	inner, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close expression")
	if !ok {
		return ast.NoExprID, false
	}
	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewGroup(span, inner), true
}

func (p *Parser) parseIfExpr() (ast.ExprID, bool) {
	ifTok := p.advance() // if

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' after if condition")
		return ast.NoExprID, false
	}
	then, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}

	els := ast.NoExprID
	end := p.exprSpan(then)
	if p.at(token.KwElse) {
		p.advance()
		switch p.lx.Peek().Kind {
		case token.KwIf:
			els, ok = p.parseIfExpr()
		case token.LBrace:
			els, ok = p.parseBlockExpr()
		default:
			p.err(diag.SynUnexpectedToken, "expected '{' or 'if' after 'else'")
			return ast.NoExprID, false
		}
		if !ok {
			return ast.NoExprID, false
		}
		end = p.exprSpan(els)
	}

	return p.arenas.Exprs.NewIf(ifTok.Span.Cover(end), cond, then, els), true
}

// parseClosureExpr parses `move |a, b: Type| expr` and the empty form `||`.
func (p *Parser) parseClosureExpr() (ast.ExprID, bool) {
	start := p.lx.Peek().Span
	move := false
	if p.at(token.KwMove) {
		p.advance()
		move = true
	}

	var params []ast.ClosureParam
	switch p.lx.Peek().Kind {
	case token.OrOr:
		p.advance()
	case token.Pipe:
		p.advance()
		for !p.at(token.Pipe) {
			var nameTok token.Token
			if p.at(token.Underscore) {
				nameTok = p.advance()
			} else {
				var ok bool
				nameTok, ok = p.expect(token.Ident, diag.SynExpectIdentifier, "expected closure parameter")
				if !ok {
					return ast.NoExprID, false
				}
			}
			param := ast.ClosureParam{
				Name: p.intern(nameTok.Text),
				Span: nameTok.Span,
			}
			if p.at(token.Colon) {
				p.advance()
				typ, ok := p.parseType()
				if !ok {
					return ast.NoExprID, false
				}
				param.Type = typ
				param.Span = param.Span.Cover(p.arenas.Types.Get(typ).Span)
			}
			params = append(params, param)

			if p.at(token.Comma) {
				p.advance()
				continue
			}
			if !p.at(token.Pipe) {
				p.err(diag.SynUnexpectedToken, "expected ',' or '|' in closure parameters")
				return ast.NoExprID, false
			}
		}
		p.advance() // |
	default:
		p.err(diag.SynUnexpectedToken, "expected '|' to start closure parameters")
		return ast.NoExprID, false
	}

	body, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := start.Cover(p.exprSpan(body))
	return p.arenas.Exprs.NewClosure(span, move, params, body), true
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.arenas.Exprs.Get(id).Span
}
