package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena       *Arena[Expr]
	Paths       *Arena[ExprPathData]
	Literals    *Arena[ExprLiteralData]
	Unaries     *Arena[ExprUnaryData]
	Binaries    *Arena[ExprBinaryData]
	Casts       *Arena[ExprCastData]
	Calls       *Arena[ExprCallData]
	MethodCalls *Arena[ExprMethodCallData]
	Fields      *Arena[ExprFieldData]
	Indices     *Arena[ExprIndexData]
	Tries       *Arena[ExprTryData]
	Closures    *Arena[ExprClosureData]
	Blocks      *Arena[ExprBlockData]
	Groups      *Arena[ExprGroupData]
	Ifs         *Arena[ExprIfData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using
// capHint as the initial capacity. If capHint is 0, 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:       NewArena[Expr](capHint),
		Paths:       NewArena[ExprPathData](capHint),
		Literals:    NewArena[ExprLiteralData](capHint),
		Unaries:     NewArena[ExprUnaryData](capHint),
		Binaries:    NewArena[ExprBinaryData](capHint),
		Casts:       NewArena[ExprCastData](capHint),
		Calls:       NewArena[ExprCallData](capHint),
		MethodCalls: NewArena[ExprMethodCallData](capHint),
		Fields:      NewArena[ExprFieldData](capHint),
		Indices:     NewArena[ExprIndexData](capHint),
		Tries:       NewArena[ExprTryData](capHint),
		Closures:    NewArena[ExprClosureData](capHint),
		Blocks:      NewArena[ExprBlockData](capHint),
		Groups:      NewArena[ExprGroupData](capHint),
		Ifs:         NewArena[ExprIfData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewPath creates a path expression.
func (e *Exprs) NewPath(span source.Span, leadingColons bool, segments []PathSeg) ExprID {
	payload := e.Paths.Allocate(ExprPathData{
		LeadingColons: leadingColons,
		Segments:      append([]PathSeg(nil), segments...),
	})
	return e.new(ExprPath, span, PayloadID(payload))
}

// Path returns the path data for the given expression ID.
func (e *Exprs) Path(id ExprID) (*ExprPathData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprPath {
		return nil, false
	}
	return e.Paths.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, text source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Text: text})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewUnary creates a unary expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewCast creates a cast expression `value as Type`.
func (e *Exprs) NewCast(span source.Span, value ExprID, typ TypeID) ExprID {
	payload := e.Casts.Allocate(ExprCastData{Value: value, Type: typ})
	return e.new(ExprCast, span, PayloadID(payload))
}

// Cast returns the cast data for the given expression ID.
func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCast {
		return nil, false
	}
	return e.Casts.Get(uint32(expr.Payload)), true
}

// NewCall creates a function call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Callee: callee,
		Args:   append([]ExprID(nil), args...),
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewMethodCall creates a method call expression.
func (e *Exprs) NewMethodCall(span source.Span, recv ExprID, name source.StringID, nameSpan source.Span, args []ExprID) ExprID {
	payload := e.MethodCalls.Allocate(ExprMethodCallData{
		Recv:     recv,
		Name:     name,
		NameSpan: nameSpan,
		Args:     append([]ExprID(nil), args...),
	})
	return e.new(ExprMethodCall, span, PayloadID(payload))
}

// MethodCall returns the method call data for the given expression ID.
func (e *Exprs) MethodCall(id ExprID) (*ExprMethodCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMethodCall {
		return nil, false
	}
	return e.MethodCalls.Get(uint32(expr.Payload)), true
}

// NewField creates a field access expression.
func (e *Exprs) NewField(span source.Span, recv ExprID, name source.StringID) ExprID {
	payload := e.Fields.Allocate(ExprFieldData{Recv: recv, Name: name})
	return e.new(ExprField, span, PayloadID(payload))
}

// Field returns the field access data for the given expression ID.
func (e *Exprs) Field(id ExprID) (*ExprFieldData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprField {
		return nil, false
	}
	return e.Fields.Get(uint32(expr.Payload)), true
}

// NewIndex creates an index expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the index data for the given expression ID.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewTry creates a `expr?` expression.
func (e *Exprs) NewTry(span source.Span, inner ExprID) ExprID {
	payload := e.Tries.Allocate(ExprTryData{Inner: inner})
	return e.new(ExprTry, span, PayloadID(payload))
}

// Try returns the try data for the given expression ID.
func (e *Exprs) Try(id ExprID) (*ExprTryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTry {
		return nil, false
	}
	return e.Tries.Get(uint32(expr.Payload)), true
}

// NewClosure creates a closure expression.
func (e *Exprs) NewClosure(span source.Span, move bool, params []ClosureParam, body ExprID) ExprID {
	payload := e.Closures.Allocate(ExprClosureData{
		Move:   move,
		Params: append([]ClosureParam(nil), params...),
		Body:   body,
	})
	return e.new(ExprClosure, span, PayloadID(payload))
}

// Closure returns the closure data for the given expression ID.
func (e *Exprs) Closure(id ExprID) (*ExprClosureData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprClosure {
		return nil, false
	}
	return e.Closures.Get(uint32(expr.Payload)), true
}

// NewBlock creates a block expression.
func (e *Exprs) NewBlock(span source.Span, stmts []StmtID) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{
		Stmts: append([]StmtID(nil), stmts...),
	})
	return e.new(ExprBlock, span, PayloadID(payload))
}

// Block returns the block data for the given expression ID.
func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}

// NewGroup creates a parenthesized expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

// Group returns the group data for the given expression ID.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewIf creates an if expression.
func (e *Exprs) NewIf(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{Cond: cond, Then: then, Else: els})
	return e.new(ExprIf, span, PayloadID(payload))
}

// If returns the if data for the given expression ID.
func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(uint32(expr.Payload)), true
}
