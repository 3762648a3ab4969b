package printer

import (
	"github.com/ZXY595/fnerror/internal/ast"
)

func (p *printer) printStmt(id ast.StmtID) {
	stmt := p.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtLet:
		data, _ := p.builder.Stmts.Let(id)
		p.writer.WriteString("let ")
		if data.Mut {
			p.writer.WriteString("mut ")
		}
		p.writer.WriteString(p.string(data.Name))
		if data.Type.IsValid() {
			p.writer.WriteString(": ")
			p.printType(data.Type)
		}
		if data.Init.IsValid() {
			p.writer.WriteString(" = ")
			p.printExpr(data.Init)
		}
		p.writer.WriteByte(';')

	case ast.StmtExpr:
		data, _ := p.builder.Stmts.Expr(id)
		p.printExpr(data.Expr)
		if data.HasSemi {
			p.writer.WriteByte(';')
		}

	case ast.StmtReturn:
		data, _ := p.builder.Stmts.Return(id)
		p.writer.WriteString("return")
		if data.Value.IsValid() {
			p.writer.Space()
			p.printExpr(data.Value)
		}
		p.writer.WriteByte(';')

	case ast.StmtWhile:
		data, _ := p.builder.Stmts.While(id)
		p.writer.WriteString("while ")
		p.printExpr(data.Cond)
		p.writer.Space()
		p.printBlock(data.Body)

	case ast.StmtBreak:
		p.writer.WriteString("break;")

	case ast.StmtContinue:
		p.writer.WriteString("continue;")

	case ast.StmtItem:
		data, _ := p.builder.Stmts.Item(id)
		item := p.builder.Items.Get(data.Item)
		if item == nil {
			return
		}
		if fn, ok := p.builder.Items.Fn(data.Item); ok && fn.Expanded {
			p.printFnItem(fn)
			return
		}
		p.writer.CopySpan(item.Span)
	}
}
