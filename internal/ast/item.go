package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

type ItemKind uint8

const (
	// ItemFn is a function item with a fully parsed body.
	ItemFn ItemKind = iota
	// ItemEnum is a synthesized failure enum. Never produced by the parser;
	// the expander builds these and the printer emits them.
	ItemEnum
	// ItemVerbatim is any other top-level item, kept as an opaque source
	// range and copied through unchanged.
	ItemVerbatim
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

type Items struct {
	Arena         *Arena[Item]
	Fns           *Arena[FnItem]
	FnParams      *Arena[FnParam]
	GenericParams *Arena[GenericParam]
	Attrs         *Arena[Attr]
	Enums         *Arena[EnumItem]
	Variants      *Arena[EnumVariant]
}

// NewItems creates an *Items with per-kind arenas initialized to capHint.
// If capHint is 0, a default of 1<<7 is used.
func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Items{
		Arena:         NewArena[Item](capHint),
		Fns:           NewArena[FnItem](capHint),
		FnParams:      NewArena[FnParam](capHint),
		GenericParams: NewArena[GenericParam](capHint),
		Attrs:         NewArena[Attr](capHint),
		Enums:         NewArena[EnumItem](capHint),
		Variants:      NewArena[EnumVariant](capHint),
	}
}

func (i *Items) New(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

// NewVerbatim creates an opaque item covering span. The printer copies the
// span's bytes straight from the source file.
func (i *Items) NewVerbatim(span source.Span) ItemID {
	return i.New(ItemVerbatim, span, NoPayloadID)
}
