package expand

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// deriveErrorName converts a snake_case function name into the type-name
// convention and appends the suffix: `read_config` -> `ReadConfigError`.
func deriveErrorName(fnName, suffix string) string {
	var sb strings.Builder
	for _, part := range strings.Split(fnName, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(titleCaser.String(part))
	}
	sb.WriteString(suffix)
	return sb.String()
}

// resultShape is the validated two-slot outcome return type.
type resultShape struct {
	// Ok is the success slot, carried through unchanged.
	Ok ast.GenericArg
	// ErrName is the explicit failure-type name from the second slot, or
	// NoStringID when the slot is absent.
	ErrName source.StringID
}

// parseResultShape validates that the declared return type is a Result
// application with one success slot and an optional failure slot. The head
// may be qualified (`::std::result::Result<...>`) so re-running the
// expansion over its own output still parses.
func parseResultShape(b *ast.Builder, reporter diag.Reporter, fn *ast.FnItem) (resultShape, bool) {
	fatal := func(code diag.Code, span source.Span, msg string) (resultShape, bool) {
		if reporter != nil {
			reporter.Report(code, diag.SevError, span, msg, nil)
		}
		return resultShape{}, false
	}

	if !fn.ReturnType.IsValid() {
		return fatal(diag.ExpMissingReturnType, fn.NameSpan,
			"function needs an explicit Result return type")
	}
	typ := b.Types.Get(fn.ReturnType)
	path, isPath := b.Types.Path(fn.ReturnType)
	if !isPath {
		return fatal(diag.ExpReturnNotResult, typ.Span, "expected a Result return type")
	}
	last := path.LastSegment()
	if last == nil || b.StringsInterner.MustLookup(last.Name) != "Result" {
		return fatal(diag.ExpReturnNotResult, typ.Span, "expected a Result return type")
	}

	switch len(last.Args) {
	case 1, 2:
	case 0:
		return fatal(diag.ExpResultTooManyArgs, typ.Span,
			"Result needs an explicit success type")
	default:
		return fatal(diag.ExpResultTooManyArgs, typ.Span,
			"Result takes one success type and at most one failure type here")
	}

	shape := resultShape{Ok: last.Args[0]}
	if len(last.Args) == 2 {
		errArg := last.Args[1]
		if errArg.Kind != ast.GenericArgType {
			return fatal(diag.ExpResultBadErrSlot, typ.Span,
				"the failure slot must name a type")
		}
		errPath, isErrPath := b.Types.Path(errArg.Type)
		if !isErrPath || errPath.LeadingColons || len(errPath.Segments) != 1 {
			return fatal(diag.ExpResultBadErrSlot, b.Types.Get(errArg.Type).Span,
				"the failure slot must be a single identifier")
		}
		shape.ErrName = errPath.Segments[0].Name
	}
	return shape, true
}

// rewriteReturnType builds `::std::result::Result<Ok, ErrName<used...>>`
// (modulo configuration) and installs it on the function.
func rewriteReturnType(b *ast.Builder, opts *Options, fn *ast.FnItem, shape resultShape, errName source.StringID, used *UsedGenerics) {
	span := b.Types.Get(fn.ReturnType).Span

	errArgs := make([]ast.GenericArg, 0, used.Len())
	for _, paramID := range used.Params() {
		param := b.Items.GenericParam(paramID)
		switch param.Kind {
		case ast.GenericLifetime:
			errArgs = append(errArgs, ast.GenericArg{
				Kind:     ast.GenericArgLifetime,
				Lifetime: param.Name,
			})
		case ast.GenericType:
			errArgs = append(errArgs, ast.GenericArg{
				Kind: ast.GenericArgType,
				Type: b.Types.NewPath(span, false, []ast.TypePathSegment{{Name: param.Name}}),
			})
		case ast.GenericConst:
			errArgs = append(errArgs, ast.GenericArg{
				Kind:  ast.GenericArgConst,
				Const: b.Exprs.NewPath(span, false, []ast.PathSeg{{Name: param.Name}}),
			})
		}
	}

	errType := b.Types.NewPath(span, false, []ast.TypePathSegment{{
		Name: errName,
		Args: errArgs,
	}})

	segments := make([]ast.TypePathSegment, len(opts.ResultPath))
	for i, seg := range opts.ResultPath {
		segments[i] = ast.TypePathSegment{Name: b.StringsInterner.Intern(seg)}
	}
	segments[len(segments)-1].Args = []ast.GenericArg{
		shape.Ok,
		{Kind: ast.GenericArgType, Type: errType},
	}

	fn.ReturnType = b.Types.NewPath(span, opts.ResultLeadingColons, segments)
}
