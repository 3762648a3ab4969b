package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

// EnumVariant is one variant of a synthesized failure enum: the tag used at
// the call site, the display template expression carried through unmodified,
// and the positional field types taken from the call's cast arguments.
type EnumVariant struct {
	Name     source.StringID
	Template ExprID
	Fields   []TypeID
}

// EnumItem is a synthesized failure enum. Derives holds the raw text of the
// derive list; Generics are the used generic parameters in declaration form.
type EnumItem struct {
	Name     source.StringID
	Derives  []string
	Generics []GenericParamID
	Variants []VariantID
	Span     source.Span
}

func (i *Items) NewVariant(name source.StringID, template ExprID, fields []TypeID) VariantID {
	return VariantID(i.Variants.Allocate(EnumVariant{
		Name:     name,
		Template: template,
		Fields:   append([]TypeID(nil), fields...),
	}))
}

func (i *Items) Variant(id VariantID) *EnumVariant {
	return i.Variants.Get(uint32(id))
}

func (i *Items) NewEnum(enum EnumItem) ItemID {
	payload := i.Enums.Allocate(enum)
	return i.New(ItemEnum, enum.Span, PayloadID(payload))
}

func (i *Items) Enum(id ItemID) (*EnumItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemEnum {
		return nil, false
	}
	return i.Enums.Get(uint32(item.Payload)), true
}
