package parser

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/token"
)

// parseBlockExpr parses `{ stmt* }` into a block expression.
func (p *Parser) parseBlockExpr() (ast.ExprID, bool) {
	openTok := p.advance() // {

	var stmts []ast.StmtID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedDelimiter, "unclosed block")
			return ast.NoExprID, false
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoExprID, false
		}
		stmts = append(stmts, stmt)
	}
	closeTok := p.advance() // }

	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewBlock(span, stmts), true
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwBreak:
		tok := p.advance()
		semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'break'")
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewBreak(tok.Span.Cover(semiTok.Span)), true
	case token.KwContinue:
		tok := p.advance()
		semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'continue'")
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewContinue(tok.Span.Cover(semiTok.Span)), true
	case token.KwFn, token.KwPub:
		return p.parseNestedItemStmt(nil)
	case token.Pound:
		// Attributes start either a nested item or an attributed expression.
		return p.parseAttributedStmt()
	default:
		return p.parseExprStmt(ast.NoExprID)
	}
}

// parseAttributedStmt disambiguates `#[...] fn ...` (nested item) from
// `#[...] expr` (attributed expression statement).
func (p *Parser) parseAttributedStmt() (ast.StmtID, bool) {
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.KwFn) || p.at(token.KwPub) {
		return p.parseNestedItemStmt(attrs)
	}

	expr, ok := p.parseBinaryExpr(0)
	if !ok {
		return ast.NoStmtID, false
	}
	header := p.arenas.Exprs.Get(expr)
	header.Attrs = append(attrs, header.Attrs...)
	return p.parseExprStmt(expr)
}

func (p *Parser) parseNestedItemStmt(attrs []ast.AttrID) (ast.StmtID, bool) {
	start := p.lx.Peek().Span
	if len(attrs) > 0 {
		start = p.arenas.Items.Attr(attrs[0]).Span
	}

	pub := false
	if p.at(token.KwPub) {
		p.advance()
		pub = true
	}
	if !p.at(token.KwFn) {
		p.err(diag.SynUnexpectedToken, "expected 'fn' in nested item")
		return ast.NoStmtID, false
	}
	item, ok := p.parseFnItem(start, attrs, pub)
	if !ok {
		return ast.NoStmtID, false
	}
	span := p.arenas.Items.Get(item).Span
	return p.arenas.Stmts.NewItem(span, item), true
}

func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance() // let

	mut := false
	if p.at(token.KwMut) {
		p.advance()
		mut = true
	}

	var nameTok token.Token
	if p.at(token.Underscore) {
		nameTok = p.advance()
	} else {
		var ok bool
		nameTok, ok = p.expect(token.Ident, diag.SynExpectIdentifier, "expected binding name after 'let'")
		if !ok {
			return ast.NoStmtID, false
		}
	}

	typ := ast.NoTypeID
	if p.at(token.Colon) {
		p.advance()
		var ok bool
		typ, ok = p.parseType()
		if !ok {
			return ast.NoStmtID, false
		}
	}

	init := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		var ok bool
		init, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}

	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after let statement")
	if !ok {
		return ast.NoStmtID, false
	}

	span := letTok.Span.Cover(semiTok.Span)
	return p.arenas.Stmts.NewLet(span, mut, p.intern(nameTok.Text), typ, init), true
}

func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	returnTok := p.advance() // return

	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		var ok bool
		value, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewReturn(returnTok.Span.Cover(semiTok.Span), value), true
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	whileTok := p.advance() // while

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' after while condition")
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	span := whileTok.Span.Cover(p.exprSpan(body))
	return p.arenas.Stmts.NewWhile(span, cond, body), true
}

// parseExprStmt finishes an expression statement. If expr is valid it was
// already parsed by the caller; otherwise it is parsed here. Block-like
// expressions stand on their own; anything else needs a semicolon unless it
// is the block's tail expression.
func (p *Parser) parseExprStmt(expr ast.ExprID) (ast.StmtID, bool) {
	if !expr.IsValid() {
		var ok bool
		expr, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}

	span := p.exprSpan(expr)
	if p.at(token.Semicolon) {
		semiTok := p.advance()
		return p.arenas.Stmts.NewExpr(span.Cover(semiTok.Span), expr, true), true
	}

	kind := p.arenas.Exprs.Get(expr).Kind
	blockLike := kind == ast.ExprBlock || kind == ast.ExprIf
	if !blockLike && !p.at(token.RBrace) {
		p.err(diag.SynExpectSemicolon, "expected ';' after expression")
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewExpr(span, expr, false), true
}
