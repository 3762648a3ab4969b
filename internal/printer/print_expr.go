package printer

import (
	"github.com/ZXY595/fnerror/internal/ast"
)

func (p *printer) printExpr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	expr := p.builder.Exprs.Get(id)

	for _, attrID := range expr.Attrs {
		p.writer.CopySpan(p.builder.Items.Attr(attrID).Span)
		p.writer.Space()
	}

	switch expr.Kind {
	case ast.ExprPath:
		data, _ := p.builder.Exprs.Path(id)
		if data.LeadingColons {
			p.writer.WriteString("::")
		}
		for i := range data.Segments {
			if i > 0 {
				p.writer.WriteString("::")
			}
			p.writer.WriteString(p.string(data.Segments[i].Name))
		}

	case ast.ExprLit:
		data, _ := p.builder.Exprs.Literal(id)
		p.writer.WriteString(p.string(data.Text))

	case ast.ExprUnary:
		data, _ := p.builder.Exprs.Unary(id)
		p.writer.WriteString(data.Op.Text())
		p.printExpr(data.Operand)

	case ast.ExprBinary:
		data, _ := p.builder.Exprs.Binary(id)
		p.printExpr(data.Left)
		p.writer.Space()
		p.writer.WriteString(data.Op.Text())
		p.writer.Space()
		p.printExpr(data.Right)

	case ast.ExprCast:
		data, _ := p.builder.Exprs.Cast(id)
		p.printExpr(data.Value)
		p.writer.WriteString(" as ")
		p.printType(data.Type)

	case ast.ExprCall:
		data, _ := p.builder.Exprs.Call(id)
		p.printExpr(data.Callee)
		p.writer.WriteByte('(')
		for i, arg := range data.Args {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printExpr(arg)
		}
		p.writer.WriteByte(')')

	case ast.ExprMethodCall:
		data, _ := p.builder.Exprs.MethodCall(id)
		p.printExpr(data.Recv)
		p.writer.WriteByte('.')
		p.writer.WriteString(p.string(data.Name))
		p.writer.WriteByte('(')
		for i, arg := range data.Args {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printExpr(arg)
		}
		p.writer.WriteByte(')')

	case ast.ExprField:
		data, _ := p.builder.Exprs.Field(id)
		p.printExpr(data.Recv)
		p.writer.WriteByte('.')
		p.writer.WriteString(p.string(data.Name))

	case ast.ExprIndex:
		data, _ := p.builder.Exprs.Index(id)
		p.printExpr(data.Target)
		p.writer.WriteByte('[')
		p.printExpr(data.Index)
		p.writer.WriteByte(']')

	case ast.ExprTry:
		data, _ := p.builder.Exprs.Try(id)
		p.printExpr(data.Inner)
		p.writer.WriteByte('?')

	case ast.ExprClosure:
		data, _ := p.builder.Exprs.Closure(id)
		if data.Move {
			p.writer.WriteString("move ")
		}
		p.writer.WriteByte('|')
		for i := range data.Params {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			param := &data.Params[i]
			p.writer.WriteString(p.string(param.Name))
			if param.Type.IsValid() {
				p.writer.WriteString(": ")
				p.printType(param.Type)
			}
		}
		p.writer.WriteString("| ")
		p.printExpr(data.Body)

	case ast.ExprBlock:
		p.printBlock(id)

	case ast.ExprGroup:
		data, _ := p.builder.Exprs.Group(id)
		p.writer.WriteByte('(')
		p.printExpr(data.Inner)
		p.writer.WriteByte(')')

	case ast.ExprIf:
		data, _ := p.builder.Exprs.If(id)
		p.writer.WriteString("if ")
		p.printExpr(data.Cond)
		p.writer.Space()
		p.printBlock(data.Then)
		if data.Else.IsValid() {
			p.writer.WriteString(" else ")
			p.printExpr(data.Else)
		}
	}
}

// printBlock prints `{ ... }` with the statements one indentation level
// deeper. An empty block prints as `{}`.
func (p *printer) printBlock(id ast.ExprID) {
	data, ok := p.builder.Exprs.Block(id)
	if !ok {
		return
	}
	if len(data.Stmts) == 0 {
		p.writer.WriteString("{}")
		return
	}

	p.writer.WriteByte('{')
	p.writer.Newline()
	p.depth++
	for _, stmt := range data.Stmts {
		p.writer.Indent(p.depth)
		p.printStmt(stmt)
		p.writer.Newline()
	}
	p.depth--
	p.writer.Indent(p.depth)
	p.writer.WriteByte('}')
}
