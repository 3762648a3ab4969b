package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

type GenericParamKind uint8

const (
	GenericLifetime GenericParamKind = iota
	GenericType
	GenericConst
)

// GenericParam is one declared generic parameter of a function.
//
// Span covers the whole declaration including bounds (`T: Clone + Send`,
// `const N: usize`), so the declaration can be reproduced verbatim. Name is
// the bare identifier without the leading apostrophe for lifetimes.
type GenericParam struct {
	Kind GenericParamKind
	Name source.StringID
	Span source.Span
	// ConstType is set only for GenericConst.
	ConstType TypeID
}

func (i *Items) NewGenericParam(kind GenericParamKind, name source.StringID, span source.Span, constType TypeID) GenericParamID {
	return GenericParamID(i.GenericParams.Allocate(GenericParam{
		Kind:      kind,
		Name:      name,
		Span:      span,
		ConstType: constType,
	}))
}

func (i *Items) GenericParam(id GenericParamID) *GenericParam {
	return i.GenericParams.Get(uint32(id))
}
