package expand

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/source"
)

type usedKey struct {
	kind ast.GenericParamKind
	name source.StringID
}

// UsedGenerics accumulates the generic parameters a function's error sites
// actually reference, duplicate-free and ordered: lifetimes occupy a front
// region in first-encounter order, type and const parameters follow in
// first-encounter order.
type UsedGenerics struct {
	params    []ast.GenericParamID
	lifetimes int
	seen      map[usedKey]struct{}
}

func NewUsedGenerics() *UsedGenerics {
	return &UsedGenerics{
		seen: make(map[usedKey]struct{}),
	}
}

// Add inserts a declared parameter once. Lifetimes go to the end of the
// front region; everything else appends to the back.
func (u *UsedGenerics) Add(items *ast.Items, id ast.GenericParamID) {
	param := items.GenericParam(id)
	key := usedKey{kind: param.Kind, name: param.Name}
	if _, dup := u.seen[key]; dup {
		return
	}
	u.seen[key] = struct{}{}

	if param.Kind == ast.GenericLifetime {
		u.params = append(u.params, 0)
		copy(u.params[u.lifetimes+1:], u.params[u.lifetimes:])
		u.params[u.lifetimes] = id
		u.lifetimes++
		return
	}
	u.params = append(u.params, id)
}

// Has reports whether a parameter of the given kind and name was collected.
func (u *UsedGenerics) Has(kind ast.GenericParamKind, name source.StringID) bool {
	_, ok := u.seen[usedKey{kind: kind, name: name}]
	return ok
}

// Params returns the collected parameters in their final order.
func (u *UsedGenerics) Params() []ast.GenericParamID {
	return u.params
}

func (u *UsedGenerics) Len() int {
	return len(u.params)
}
