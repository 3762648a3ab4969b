package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

// PathSeg is one segment of an expression path.
type PathSeg struct {
	Name source.StringID
	Span source.Span
}

type ExprPathData struct {
	LeadingColons bool
	Segments      []PathSeg
}

// IsBareIdent reports whether the path is a single unqualified identifier.
func (d *ExprPathData) IsBareIdent() bool {
	return !d.LeadingColons && len(d.Segments) == 1
}

type ExprLiteralData struct {
	Kind ExprLitKind
	// Text is the raw source spelling, suffix and quotes included.
	Text source.StringID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprCastData struct {
	Value ExprID
	Type  TypeID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprMethodCallData struct {
	Recv     ExprID
	Name     source.StringID
	NameSpan source.Span
	Args     []ExprID
}

type ExprFieldData struct {
	Recv ExprID
	// Name holds the field identifier, or the raw digits for tuple fields.
	Name source.StringID
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

type ExprTryData struct {
	Inner ExprID
}

// ClosureParam is one closure parameter; Type is NoTypeID when untyped.
type ClosureParam struct {
	Name source.StringID
	Type TypeID
	Span source.Span
}

type ExprClosureData struct {
	Move   bool
	Params []ClosureParam
	Body   ExprID
}

type ExprBlockData struct {
	Stmts []StmtID
}

type ExprGroupData struct {
	Inner ExprID
}

// ExprIfData: Then is always a block expression; Else is NoExprID, a block,
// or another if expression (`else if`).
type ExprIfData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}
