package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

type TypeKind uint8

const (
	// TypePath is a possibly qualified path type: `String`, `std::vec::Vec<T>`,
	// `::core::option::Option<'a, T>`.
	TypePath TypeKind = iota
	// TypeRef is a reference type `&'a mut T`. The lifetime may be absent in
	// the surface syntax; marker call arguments require it, but that check
	// belongs to the expander, not the parser.
	TypeRef
	// TypeTuple is `(A, B)`; the empty tuple `()` is the unit type.
	TypeTuple
	// TypeSlice is `[T]`.
	TypeSlice
)

type Type struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

type GenericArgKind uint8

const (
	GenericArgType GenericArgKind = iota
	GenericArgLifetime
	GenericArgConst
)

// GenericArg is one argument inside `<...>` of a path segment.
type GenericArg struct {
	Kind GenericArgKind
	// Type is set for GenericArgType.
	Type TypeID
	// Lifetime is set for GenericArgLifetime (name without apostrophe).
	Lifetime     source.StringID
	LifetimeSpan source.Span
	// Const is set for GenericArgConst.
	Const ExprID
}

// TypePathSegment is one `ident` or `ident<args>` segment of a path type.
type TypePathSegment struct {
	Name source.StringID
	Span source.Span
	Args []GenericArg
}

type TypePathData struct {
	LeadingColons bool
	Segments      []TypePathSegment
}

// LastSegment returns the final segment, which names the type for generic
// parameter matching.
func (d *TypePathData) LastSegment() *TypePathSegment {
	if len(d.Segments) == 0 {
		return nil
	}
	return &d.Segments[len(d.Segments)-1]
}

// IsBareIdent reports whether the path is a single unqualified segment
// without generic arguments.
func (d *TypePathData) IsBareIdent() bool {
	return !d.LeadingColons && len(d.Segments) == 1 && len(d.Segments[0].Args) == 0
}

type TypeRefData struct {
	// Lifetime is NoStringID when the reference has no explicit lifetime.
	Lifetime     source.StringID
	LifetimeSpan source.Span
	Mut          bool
	Elem         TypeID
}

type TypeTupleData struct {
	Elems []TypeID
}

// TypeSliceData covers both `[T]` and `[T; len]`; Len is NoExprID for the
// slice form.
type TypeSliceData struct {
	Elem TypeID
	Len  ExprID
}

// Types manages allocation of type syntax nodes.
type Types struct {
	Arena  *Arena[Type]
	Paths  *Arena[TypePathData]
	Refs   *Arena[TypeRefData]
	Tuples *Arena[TypeTupleData]
	Slices *Arena[TypeSliceData]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Types{
		Arena:  NewArena[Type](capHint),
		Paths:  NewArena[TypePathData](capHint),
		Refs:   NewArena[TypeRefData](capHint),
		Tuples: NewArena[TypeTupleData](capHint),
		Slices: NewArena[TypeSliceData](capHint),
	}
}

func (t *Types) new(kind TypeKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(Type{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

// NewPath creates a path type.
func (t *Types) NewPath(span source.Span, leadingColons bool, segments []TypePathSegment) TypeID {
	payload := t.Paths.Allocate(TypePathData{
		LeadingColons: leadingColons,
		Segments:      append([]TypePathSegment(nil), segments...),
	})
	return t.new(TypePath, span, PayloadID(payload))
}

// Path returns the path data for the given type ID.
func (t *Types) Path(id TypeID) (*TypePathData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypePath {
		return nil, false
	}
	return t.Paths.Get(uint32(typ.Payload)), true
}

// NewRef creates a reference type.
func (t *Types) NewRef(span source.Span, lifetime source.StringID, lifetimeSpan source.Span, mut bool, elem TypeID) TypeID {
	payload := t.Refs.Allocate(TypeRefData{
		Lifetime:     lifetime,
		LifetimeSpan: lifetimeSpan,
		Mut:          mut,
		Elem:         elem,
	})
	return t.new(TypeRef, span, PayloadID(payload))
}

// Ref returns the reference data for the given type ID.
func (t *Types) Ref(id TypeID) (*TypeRefData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeRef {
		return nil, false
	}
	return t.Refs.Get(uint32(typ.Payload)), true
}

// NewTuple creates a tuple type.
func (t *Types) NewTuple(span source.Span, elems []TypeID) TypeID {
	payload := t.Tuples.Allocate(TypeTupleData{
		Elems: append([]TypeID(nil), elems...),
	})
	return t.new(TypeTuple, span, PayloadID(payload))
}

// Tuple returns the tuple data for the given type ID.
func (t *Types) Tuple(id TypeID) (*TypeTupleData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(typ.Payload)), true
}

// NewSlice creates a slice or array type.
func (t *Types) NewSlice(span source.Span, elem TypeID, length ExprID) TypeID {
	payload := t.Slices.Allocate(TypeSliceData{Elem: elem, Len: length})
	return t.new(TypeSlice, span, PayloadID(payload))
}

// Slice returns the slice data for the given type ID.
func (t *Types) Slice(id TypeID) (*TypeSliceData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeSlice {
		return nil, false
	}
	return t.Slices.Get(uint32(typ.Payload)), true
}
