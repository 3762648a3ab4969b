package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

type ExprKind uint8

const (
	ExprPath ExprKind = iota
	ExprLit
	ExprUnary
	ExprBinary
	ExprCast
	ExprCall
	ExprMethodCall
	ExprField
	ExprIndex
	ExprTry
	ExprClosure
	ExprBlock
	ExprGroup
	ExprIf
)

// Expr is the header of an expression node. Attrs holds outer attributes
// written directly on the expression; the marker attribute on call
// expressions arrives here.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
	Attrs   []AttrID
}

type ExprLitKind uint8

const (
	ExprLitInt ExprLitKind = iota
	ExprLitFloat
	ExprLitString
	ExprLitBool
	// ExprLitUnit is the unit value `()`.
	ExprLitUnit
)

type ExprUnaryOp uint8

const (
	UnNeg ExprUnaryOp = iota // -x
	UnNot                    // !x
	UnDeref                  // *x
	UnRef                    // &x
	UnRefMut                 // &mut x
)

type ExprBinaryOp uint8

const (
	BinAdd ExprBinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinAnd
	BinOr
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinAssign
)

// Text returns the operator's source spelling.
func (op ExprBinaryOp) Text() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinRem:
		return "%"
	case BinAnd:
		return "&&"
	case BinOr:
		return "||"
	case BinEq:
		return "=="
	case BinNe:
		return "!="
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinGt:
		return ">"
	case BinGe:
		return ">="
	case BinAssign:
		return "="
	default:
		return "?"
	}
}

// Text returns the operator's source spelling. UnRefMut spells as "&mut ".
func (op ExprUnaryOp) Text() string {
	switch op {
	case UnNeg:
		return "-"
	case UnNot:
		return "!"
	case UnDeref:
		return "*"
	case UnRef:
		return "&"
	case UnRefMut:
		return "&mut "
	default:
		return "?"
	}
}
