package expand

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
)

// resolver matches type syntax against the function's declared generic
// parameters and accumulates the ones that are actually used.
type resolver struct {
	b        *ast.Builder
	declared []ast.GenericParamID
	used     *UsedGenerics
	reporter diag.Reporter
	failed   bool
}

func newResolver(b *ast.Builder, declared []ast.GenericParamID, used *UsedGenerics, reporter diag.Reporter) *resolver {
	return &resolver{
		b:        b,
		declared: declared,
		used:     used,
		reporter: reporter,
	}
}

func (r *resolver) find(kind ast.GenericParamKind, name source.StringID) (ast.GenericParamID, bool) {
	for _, id := range r.declared {
		param := r.b.Items.GenericParam(id)
		if param.Kind == kind && param.Name == name {
			return id, true
		}
	}
	return ast.NoGenericParamID, false
}

func (r *resolver) fatal(code diag.Code, span source.Span, msg string) {
	r.failed = true
	if r.reporter != nil {
		r.reporter.Report(code, diag.SevError, span, msg, nil)
	}
}

// resolveType walks one type. Matching a declared parameter records it; a
// non-matching composite is recursed into so nested uses are not dropped.
func (r *resolver) resolveType(id ast.TypeID) {
	if r.failed || !id.IsValid() {
		return
	}
	typ := r.b.Types.Get(id)
	switch typ.Kind {
	case ast.TypeRef:
		data, _ := r.b.Types.Ref(id)
		// A reference in a marked argument must spell its lifetime; without
		// one there is nothing to propagate to the synthesized type.
		if data.Lifetime == source.NoStringID {
			r.fatal(diag.ExpRefNeedsLifetime, typ.Span,
				"reference type needs an explicit lifetime, like `&'static str`")
			return
		}
		if param, ok := r.find(ast.GenericLifetime, data.Lifetime); ok {
			r.used.Add(r.b.Items, param)
		}
		r.resolveType(data.Elem)

	case ast.TypePath:
		data, _ := r.b.Types.Path(id)
		last := data.LastSegment()
		if last == nil {
			return
		}
		if data.IsBareIdent() {
			if param, ok := r.find(ast.GenericType, last.Name); ok {
				r.used.Add(r.b.Items, param)
				return
			}
			// A bare identifier in type position can also be a const
			// parameter used as a generic argument.
			if param, ok := r.find(ast.GenericConst, last.Name); ok {
				r.used.Add(r.b.Items, param)
				return
			}
			return
		}
		for i := range data.Segments {
			for j := range data.Segments[i].Args {
				r.resolveGenericArg(&data.Segments[i].Args[j])
			}
		}

	case ast.TypeTuple:
		data, _ := r.b.Types.Tuple(id)
		for _, elem := range data.Elems {
			r.resolveType(elem)
		}

	case ast.TypeSlice:
		data, _ := r.b.Types.Slice(id)
		r.resolveType(data.Elem)
		if data.Len.IsValid() {
			r.resolveConstExpr(data.Len)
		}
	}
}

func (r *resolver) resolveGenericArg(arg *ast.GenericArg) {
	if r.failed {
		return
	}
	switch arg.Kind {
	case ast.GenericArgLifetime:
		if param, ok := r.find(ast.GenericLifetime, arg.Lifetime); ok {
			r.used.Add(r.b.Items, param)
		}
	case ast.GenericArgType:
		r.resolveType(arg.Type)
	case ast.GenericArgConst:
		r.resolveConstExpr(arg.Const)
	}
}

// resolveConstExpr looks for declared const parameters referenced by an
// expression in const position.
func (r *resolver) resolveConstExpr(id ast.ExprID) {
	if r.failed || !id.IsValid() {
		return
	}
	expr := r.b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprPath:
		data, _ := r.b.Exprs.Path(id)
		if !data.IsBareIdent() {
			return
		}
		if param, ok := r.find(ast.GenericConst, data.Segments[0].Name); ok {
			r.used.Add(r.b.Items, param)
		}
	case ast.ExprUnary:
		data, _ := r.b.Exprs.Unary(id)
		r.resolveConstExpr(data.Operand)
	case ast.ExprBinary:
		data, _ := r.b.Exprs.Binary(id)
		r.resolveConstExpr(data.Left)
		r.resolveConstExpr(data.Right)
	case ast.ExprGroup:
		data, _ := r.b.Exprs.Group(id)
		r.resolveConstExpr(data.Inner)
	case ast.ExprBlock:
		data, _ := r.b.Exprs.Block(id)
		for _, stmt := range data.Stmts {
			if exprStmt, ok := r.b.Stmts.Expr(stmt); ok {
				r.resolveConstExpr(exprStmt.Expr)
			}
		}
	}
}
