package printer

import (
	"strconv"
	"strings"

	"github.com/ZXY595/fnerror/internal/ast"
)

func (p *printer) printFnItem(fn *ast.FnItem) {
	for _, attrID := range fn.Attrs {
		attr := p.builder.Items.Attr(attrID)
		p.writer.CopySpan(attr.Span)
		p.writer.Newline()
		p.writer.Indent(p.depth)
	}

	if fn.Pub {
		p.writer.WriteString("pub ")
	}
	p.writer.WriteString("fn ")
	p.writer.WriteString(p.string(fn.Name))

	if len(fn.Generics) > 0 {
		p.writer.WriteByte('<')
		for i, paramID := range fn.Generics {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.writer.CopySpan(p.builder.Items.GenericParam(paramID).Span)
		}
		p.writer.WriteByte('>')
	}

	p.writer.WriteByte('(')
	for i, paramID := range fn.Params {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		param := p.builder.Items.FnParam(paramID)
		if param.Mut {
			p.writer.WriteString("mut ")
		}
		p.writer.WriteString(p.string(param.Name))
		p.writer.WriteString(": ")
		p.printType(param.Type)
	}
	p.writer.WriteByte(')')

	if fn.ReturnType.IsValid() {
		p.writer.WriteString(" -> ")
		p.printType(fn.ReturnType)
	}

	p.writer.Space()
	p.printBlock(fn.Body)
}

func (p *printer) printEnumItem(enum *ast.EnumItem) {
	if len(enum.Derives) > 0 {
		p.writer.WriteString("#[derive(")
		p.writer.WriteString(strings.Join(enum.Derives, ", "))
		p.writer.WriteString(")]")
		p.writer.Newline()
	}

	p.writer.WriteString("pub enum ")
	p.writer.WriteString(p.string(enum.Name))
	if len(enum.Generics) > 0 {
		p.writer.WriteByte('<')
		for i, paramID := range enum.Generics {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.writer.CopySpan(p.builder.Items.GenericParam(paramID).Span)
		}
		p.writer.WriteByte('>')
	}

	if len(enum.Variants) == 0 {
		p.writer.WriteString(" {}\n")
		return
	}

	p.writer.WriteString(" {")
	p.writer.Newline()
	for _, variantID := range enum.Variants {
		p.printEnumVariant(p.builder.Items.Variant(variantID))
	}
	p.writer.WriteString("}")
	p.writer.Newline()
}

// printEnumVariant emits the display annotation and the variant itself:
//
//	#[error("{}, {}", 0usize, 1usize)]
//	Error3(&'static str, u8),
func (p *printer) printEnumVariant(variant *ast.EnumVariant) {
	p.writer.Indent(p.depth + 1)
	p.writer.WriteString("#[error(")
	p.printExpr(variant.Template)
	for i := range variant.Fields {
		p.writer.WriteString(", ")
		p.writer.WriteString(strconv.Itoa(i))
		p.writer.WriteString("usize")
	}
	p.writer.WriteString(")]")
	p.writer.Newline()

	p.writer.Indent(p.depth + 1)
	p.writer.WriteString(p.string(variant.Name))
	if len(variant.Fields) > 0 {
		p.writer.WriteByte('(')
		for i, field := range variant.Fields {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printType(field)
		}
		p.writer.WriteByte(')')
	}
	p.writer.WriteByte(',')
	p.writer.Newline()
}
