package expand

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
)

// ErrorSite is one marker-annotated call: the tag that becomes the variant
// name, the display template carried through unmodified, and the field types
// taken from the call's cast arguments in argument order.
type ErrorSite struct {
	Tag      source.StringID
	TagSpan  source.Span
	Template ast.ExprID
	Fields   []ast.TypeID
}

// extractor walks a function body, rewrites every marked call in place, and
// records one ErrorSite per marked call. Extraction order is source order.
type extractor struct {
	b          *ast.Builder
	errName    source.StringID
	markerCall string
	resolver   *resolver
	reporter   diag.Reporter
	sites      []ErrorSite
	failed     bool
}

func (x *extractor) fatal(code diag.Code, span source.Span, msg string) {
	x.failed = true
	if x.reporter != nil {
		x.reporter.Report(code, diag.SevError, span, msg, nil)
	}
}

func (x *extractor) walkExpr(id ast.ExprID) {
	if x.failed || !id.IsValid() {
		return
	}
	expr := x.b.Exprs.Get(id)
	marked := x.takeMarker(expr)

	// The marker may sit one level above the call it governs: `#[marker]
	// tag(...)?` hangs the attribute on the try expression, `#[marker]
	// (tag(...))` on the group.
	switch expr.Kind {
	case ast.ExprCall:
		x.walkCall(id, marked)
		return
	case ast.ExprTry:
		data, _ := x.b.Exprs.Try(id)
		x.walkMarkedInner(data.Inner, marked, expr.Span)
		return
	case ast.ExprGroup:
		data, _ := x.b.Exprs.Group(id)
		x.walkMarkedInner(data.Inner, marked, expr.Span)
		return
	}

	if marked {
		x.fatal(diag.ExpCalleeNotIdent, expr.Span,
			"the call marker must annotate a call expression")
		return
	}

	switch expr.Kind {
	case ast.ExprUnary:
		data, _ := x.b.Exprs.Unary(id)
		x.walkExpr(data.Operand)
	case ast.ExprBinary:
		data, _ := x.b.Exprs.Binary(id)
		x.walkExpr(data.Left)
		x.walkExpr(data.Right)
	case ast.ExprCast:
		data, _ := x.b.Exprs.Cast(id)
		x.walkExpr(data.Value)
	case ast.ExprMethodCall:
		data, _ := x.b.Exprs.MethodCall(id)
		x.walkExpr(data.Recv)
		for _, arg := range data.Args {
			x.walkExpr(arg)
		}
	case ast.ExprField:
		data, _ := x.b.Exprs.Field(id)
		x.walkExpr(data.Recv)
	case ast.ExprIndex:
		data, _ := x.b.Exprs.Index(id)
		x.walkExpr(data.Target)
		x.walkExpr(data.Index)
	case ast.ExprClosure:
		data, _ := x.b.Exprs.Closure(id)
		x.walkExpr(data.Body)
	case ast.ExprBlock:
		data, _ := x.b.Exprs.Block(id)
		for _, stmt := range data.Stmts {
			x.walkStmt(stmt)
		}
	case ast.ExprIf:
		data, _ := x.b.Exprs.If(id)
		x.walkExpr(data.Cond)
		x.walkExpr(data.Then)
		x.walkExpr(data.Else)
	}
}

// takeMarker strips every marker attribute from the expression header and
// reports whether one was present. Other attributes stay put.
func (x *extractor) takeMarker(expr *ast.Expr) bool {
	if len(expr.Attrs) == 0 {
		return false
	}
	found := false
	kept := expr.Attrs[:0]
	for _, attrID := range expr.Attrs {
		attr := x.b.Items.Attr(attrID)
		if x.b.StringsInterner.MustLookup(attr.Name) == x.markerCall {
			found = true
			continue
		}
		kept = append(kept, attrID)
	}
	expr.Attrs = kept
	return found
}

// walkMarkedInner forwards markedness from a wrapper expression to the call
// directly inside it.
func (x *extractor) walkMarkedInner(inner ast.ExprID, marked bool, span source.Span) {
	if x.failed {
		return
	}
	if !inner.IsValid() {
		if marked {
			x.fatal(diag.ExpCalleeNotIdent, span,
				"the call marker must annotate a call expression")
		}
		return
	}
	if !marked {
		x.walkExpr(inner)
		return
	}
	innerExpr := x.b.Exprs.Get(inner)
	if innerExpr.Kind != ast.ExprCall {
		x.fatal(diag.ExpCalleeNotIdent, span,
			"the call marker must annotate a call expression")
		return
	}
	// Merge markers written on both levels.
	x.takeMarker(innerExpr)
	x.walkCall(inner, true)
}

func (x *extractor) walkStmt(id ast.StmtID) {
	if x.failed || !id.IsValid() {
		return
	}
	stmt := x.b.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtLet:
		data, _ := x.b.Stmts.Let(id)
		x.walkExpr(data.Init)
	case ast.StmtExpr:
		data, _ := x.b.Stmts.Expr(id)
		x.walkExpr(data.Expr)
	case ast.StmtReturn:
		data, _ := x.b.Stmts.Return(id)
		x.walkExpr(data.Value)
	case ast.StmtWhile:
		data, _ := x.b.Stmts.While(id)
		x.walkExpr(data.Cond)
		x.walkExpr(data.Body)
	case ast.StmtItem:
		// Nested items are their own scopes; markers inside them belong to
		// their own expansion, not this one.
	}
}

// walkCall rewrites a marked call in place and records the error site.
// Marked calls are not walked again after rewriting; the marker itself was
// already stripped by the caller.
func (x *extractor) walkCall(id ast.ExprID, marked bool) {
	expr := x.b.Exprs.Get(id)
	data, _ := x.b.Exprs.Call(id)

	if !marked {
		x.walkExpr(data.Callee)
		for _, arg := range data.Args {
			x.walkExpr(arg)
		}
		return
	}

	callee, isPath := x.b.Exprs.Path(data.Callee)
	if !isPath || !callee.IsBareIdent() {
		x.fatal(diag.ExpCalleeNotIdent, x.b.Exprs.Get(data.Callee).Span,
			"marked call must use a single identifier as its callee")
		return
	}
	tagSeg := callee.Segments[0]

	if len(data.Args) == 0 {
		x.fatal(diag.ExpMissingTemplate, expr.Span,
			"marked call needs a display template as its first argument")
		return
	}
	template := data.Args[0]

	newArgs := make([]ast.ExprID, 0, len(data.Args)-1)
	fields := make([]ast.TypeID, 0, len(data.Args)-1)
	for _, arg := range data.Args[1:] {
		cast, isCast := x.b.Exprs.Cast(arg)
		if !isCast {
			x.fatal(diag.ExpArgNotCast, x.b.Exprs.Get(arg).Span,
				"marked call argument must be a cast expression, like `context as &'static str`")
			return
		}
		x.resolver.resolveType(cast.Type)
		if x.resolver.failed {
			x.failed = true
			return
		}
		newArgs = append(newArgs, cast.Value)
		fields = append(fields, cast.Type)
	}

	// Qualify the callee: tag(...) becomes ErrName::tag(...).
	callee.Segments = []ast.PathSeg{
		{Name: x.errName, Span: tagSeg.Span},
		tagSeg,
	}
	data.Args = newArgs

	x.sites = append(x.sites, ErrorSite{
		Tag:      tagSeg.Name,
		TagSpan:  tagSeg.Span,
		Template: template,
		Fields:   fields,
	})
}
