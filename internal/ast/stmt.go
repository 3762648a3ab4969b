package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtExpr
	StmtReturn
	StmtWhile
	StmtBreak
	StmtContinue
	// StmtItem is a nested item declared inside a block. The expander never
	// descends into these.
	StmtItem
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtLetData struct {
	Mut  bool
	Name source.StringID
	Type TypeID // NoTypeID when unannotated
	Init ExprID // NoExprID when uninitialized
}

type StmtExprData struct {
	Expr    ExprID
	HasSemi bool
}

type StmtReturnData struct {
	Value ExprID // NoExprID for a bare `return;`
}

type StmtWhileData struct {
	Cond ExprID
	Body ExprID // always a block expression
}

type StmtItemData struct {
	Item ItemID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Lets    *Arena[StmtLetData]
	Exprs   *Arena[StmtExprData]
	Returns *Arena[StmtReturnData]
	Whiles  *Arena[StmtWhileData]
	Items   *Arena[StmtItemData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Lets:    NewArena[StmtLetData](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Whiles:  NewArena[StmtWhileData](capHint),
		Items:   NewArena[StmtItemData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewLet creates a let statement.
func (s *Stmts) NewLet(span source.Span, mut bool, name source.StringID, typ TypeID, init ExprID) StmtID {
	payload := s.Lets.Allocate(StmtLetData{Mut: mut, Name: name, Type: typ, Init: init})
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the let data for the given statement ID.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID, hasSemi bool) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr, HasSemi: hasSemi})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement data for the given statement ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return data for the given statement ID.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a while statement.
func (s *Stmts) NewWhile(span source.Span, cond, body ExprID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the while data for the given statement ID.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewBreak creates a break statement.
func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

// NewContinue creates a continue statement.
func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

// NewItem creates a nested item statement.
func (s *Stmts) NewItem(span source.Span, item ItemID) StmtID {
	payload := s.Items.Allocate(StmtItemData{Item: item})
	return s.new(StmtItem, span, PayloadID(payload))
}

// Item returns the nested item data for the given statement ID.
func (s *Stmts) Item(id StmtID) (*StmtItemData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtItem {
		return nil, false
	}
	return s.Items.Get(uint32(stmt.Payload)), true
}
