package expand

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/source"
)

// assembleEnum builds the synthesized failure enum: public, with the derive
// markers, the used generic parameters in declaration form, and one variant
// per error site in extraction order.
func assembleEnum(b *ast.Builder, opts *Options, name source.StringID, used *UsedGenerics, sites []ErrorSite, span source.Span) ast.ItemID {
	variants := make([]ast.VariantID, 0, len(sites))
	for _, site := range sites {
		variants = append(variants, b.Items.NewVariant(site.Tag, site.Template, site.Fields))
	}
	return b.Items.NewEnum(ast.EnumItem{
		Name:     name,
		Derives:  opts.Derives,
		Generics: used.Params(),
		Variants: variants,
		Span:     span,
	})
}
