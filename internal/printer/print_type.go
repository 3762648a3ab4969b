package printer

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/source"
)

func (p *printer) printType(id ast.TypeID) {
	typ := p.builder.Types.Get(id)
	if typ == nil {
		return
	}
	switch typ.Kind {
	case ast.TypePath:
		data, _ := p.builder.Types.Path(id)
		p.printTypePath(data)
	case ast.TypeRef:
		data, _ := p.builder.Types.Ref(id)
		p.writer.WriteByte('&')
		if data.Lifetime != source.NoStringID {
			p.writer.WriteByte('\'')
			p.writer.WriteString(p.string(data.Lifetime))
			p.writer.Space()
		}
		if data.Mut {
			p.writer.WriteString("mut ")
		}
		p.printType(data.Elem)
	case ast.TypeTuple:
		data, _ := p.builder.Types.Tuple(id)
		p.writer.WriteByte('(')
		for i, elem := range data.Elems {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printType(elem)
		}
		p.writer.WriteByte(')')
	case ast.TypeSlice:
		data, _ := p.builder.Types.Slice(id)
		p.writer.WriteByte('[')
		p.printType(data.Elem)
		if data.Len.IsValid() {
			p.writer.WriteString("; ")
			p.printExpr(data.Len)
		}
		p.writer.WriteByte(']')
	}
}

func (p *printer) printTypePath(data *ast.TypePathData) {
	if data.LeadingColons {
		p.writer.WriteString("::")
	}
	for i := range data.Segments {
		if i > 0 {
			p.writer.WriteString("::")
		}
		seg := &data.Segments[i]
		p.writer.WriteString(p.string(seg.Name))
		if len(seg.Args) > 0 {
			p.writer.WriteByte('<')
			for j := range seg.Args {
				if j > 0 {
					p.writer.WriteString(", ")
				}
				p.printGenericArg(&seg.Args[j])
			}
			p.writer.WriteByte('>')
		}
	}
}

func (p *printer) printGenericArg(arg *ast.GenericArg) {
	switch arg.Kind {
	case ast.GenericArgLifetime:
		p.writer.WriteByte('\'')
		p.writer.WriteString(p.string(arg.Lifetime))
	case ast.GenericArgType:
		p.printType(arg.Type)
	case ast.GenericArgConst:
		p.printExpr(arg.Const)
	}
}
