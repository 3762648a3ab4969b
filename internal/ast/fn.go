package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

// FnParam is one function parameter `name: Type` (optionally `mut name`).
type FnParam struct {
	Mut  bool
	Name source.StringID
	Type TypeID
	Span source.Span
}

// FnItem is a function with a fully parsed body. Body is always a block
// expression.
type FnItem struct {
	Pub        bool
	Name       source.StringID
	NameSpan   source.Span
	Attrs      []AttrID
	Generics   []GenericParamID
	Params     []FnParamID
	ReturnType TypeID // NoTypeID when the arrow is absent
	Body       ExprID
	Span       source.Span

	// Expanded is set once the transformation rewrote this function; the
	// printer renders such functions from the tree instead of copying their
	// original bytes.
	Expanded bool
}

func (i *Items) NewFnParam(mut bool, name source.StringID, typ TypeID, span source.Span) FnParamID {
	return FnParamID(i.FnParams.Allocate(FnParam{
		Mut:  mut,
		Name: name,
		Type: typ,
		Span: span,
	}))
}

func (i *Items) FnParam(id FnParamID) *FnParam {
	return i.FnParams.Get(uint32(id))
}

func (i *Items) NewFn(fn FnItem) ItemID {
	payload := i.Fns.Allocate(fn)
	return i.New(ItemFn, fn.Span, PayloadID(payload))
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}
