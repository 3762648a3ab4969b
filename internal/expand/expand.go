// Package expand implements the source transformation: it finds marked
// functions, extracts their marked call sites into a synthesized failure
// enum, rewrites the call sites and the return type, and leaves everything
// else untouched.
//
// All violations are fatal. A half-transformed file would not compile, so
// refusing to emit anything beats emitting something broken.
package expand

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/source"
)

// Expansion describes one expanded function: the synthesized enum item and
// the rewritten function item.
type Expansion struct {
	Enum ast.ItemID
	Fn   ast.ItemID
	Name source.StringID
}

// File expands every marked function in the file in place. The file's item
// list is rewritten so each synthesized enum immediately precedes its
// function. Returns false, leaving no usable output, on the first violation.
func File(b *ast.Builder, fileID ast.FileID, opts Options) ([]Expansion, bool) {
	opts.setDefaults()

	file := b.Files.Get(fileID)
	out := make([]ast.ItemID, 0, len(file.Items))
	var expansions []Expansion

	for _, itemID := range file.Items {
		fn, isFn := b.Items.Fn(itemID)
		if !isFn {
			out = append(out, itemID)
			continue
		}
		found, explicitName := takeFnMarker(b, fn, opts.MarkerFn)
		if !found {
			out = append(out, itemID)
			continue
		}

		enumID, name, ok := expandFn(b, &opts, fn, explicitName)
		if !ok {
			return nil, false
		}
		out = append(out, enumID, itemID)
		expansions = append(expansions, Expansion{Enum: enumID, Fn: itemID, Name: name})
	}

	file.Items = out
	return expansions, true
}

// takeFnMarker removes the function-level marker attribute and returns its
// explicit `ident = Name` argument, if any. Unrecognized argument keys are
// ignored; attributes with any other name stay on the function.
func takeFnMarker(b *ast.Builder, fn *ast.FnItem, marker string) (bool, source.StringID) {
	found := false
	explicit := source.NoStringID

	kept := fn.Attrs[:0]
	for _, attrID := range fn.Attrs {
		attr := b.Items.Attr(attrID)
		if b.StringsInterner.MustLookup(attr.Name) != marker {
			kept = append(kept, attrID)
			continue
		}
		found = true
		for _, arg := range attr.Args {
			if b.StringsInterner.MustLookup(arg.Key) == "ident" {
				explicit = arg.Value
			}
		}
	}
	fn.Attrs = kept
	return found, explicit
}

// expandFn runs the pipeline for one function: validate the return type,
// settle the failure-type name, extract the marked calls, rewrite the
// signature, and assemble the enum.
func expandFn(b *ast.Builder, opts *Options, fn *ast.FnItem, explicitName source.StringID) (ast.ItemID, source.StringID, bool) {
	shape, ok := parseResultShape(b, opts.Reporter, fn)
	if !ok {
		return ast.NoItemID, source.NoStringID, false
	}

	name := settleName(b, opts, fn, shape, explicitName)

	used := NewUsedGenerics()
	res := newResolver(b, fn.Generics, used, opts.Reporter)
	x := &extractor{
		b:          b,
		errName:    name,
		markerCall: opts.MarkerCall,
		resolver:   res,
		reporter:   opts.Reporter,
	}
	x.walkExpr(fn.Body)
	if x.failed || res.failed {
		return ast.NoItemID, source.NoStringID, false
	}

	rewriteReturnType(b, opts, fn, shape, name, used)
	enumID := assembleEnum(b, opts, name, used, x.sites, fn.Span)
	fn.Expanded = true
	return enumID, name, true
}

// settleName picks the failure-type name before extraction starts, since the
// rewritten call sites already qualify their callee with it. Precedence: an
// explicit second Result slot, then the marker's `ident = Name` argument,
// then the function name in type-name casing plus the suffix.
func settleName(b *ast.Builder, opts *Options, fn *ast.FnItem, shape resultShape, explicitName source.StringID) source.StringID {
	if shape.ErrName.IsValid() {
		return shape.ErrName
	}
	if explicitName.IsValid() {
		return explicitName
	}
	fnName := b.StringsInterner.MustLookup(fn.Name)
	return b.StringsInterner.Intern(deriveErrorName(fnName, opts.ErrorSuffix))
}
