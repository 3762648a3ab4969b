package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

// AttrArg is one `key = value` pair inside an attribute argument list.
type AttrArg struct {
	Key   source.StringID
	Value source.StringID
	Span  source.Span
}

// Attr is an outer attribute `#[name]` or `#[name(args...)]`.
//
// Name is the first path segment, which is all the marker recognition needs.
// Args is populated only when every argument parses as `ident = ident`;
// otherwise it stays nil and the attribute is reproduced from Span.
type Attr struct {
	Name source.StringID
	Span source.Span
	Args []AttrArg
}

func (i *Items) NewAttr(name source.StringID, span source.Span, args []AttrArg) AttrID {
	return AttrID(i.Attrs.Allocate(Attr{
		Name: name,
		Span: span,
		Args: append([]AttrArg(nil), args...),
	}))
}

func (i *Items) Attr(id AttrID) *Attr {
	return i.Attrs.Get(uint32(id))
}
