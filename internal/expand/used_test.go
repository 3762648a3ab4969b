package expand

import (
	"testing"

	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/source"
)

func TestUsedGenerics_Ordering(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	name := func(s string) source.StringID { return b.StringsInterner.Intern(s) }
	param := func(kind ast.GenericParamKind, s string) ast.GenericParamID {
		return b.Items.NewGenericParam(kind, name(s), source.Span{}, ast.NoTypeID)
	}

	lifeA := param(ast.GenericLifetime, "a")
	lifeB := param(ast.GenericLifetime, "b")
	typeT := param(ast.GenericType, "T")
	typeU := param(ast.GenericType, "U")
	constN := param(ast.GenericConst, "N")

	u := NewUsedGenerics()

	// Encounter order: T, 'b, N, 'a, U. Lifetimes keep their own
	// first-encounter order in the front region.
	u.Add(b.Items, typeT)
	u.Add(b.Items, lifeB)
	u.Add(b.Items, constN)
	u.Add(b.Items, lifeA)
	u.Add(b.Items, typeU)

	want := []ast.GenericParamID{lifeB, lifeA, typeT, constN, typeU}
	got := u.Params()
	if len(got) != len(want) {
		t.Fatalf("expected %d params, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			gotName := b.StringsInterner.MustLookup(b.Items.GenericParam(got[i]).Name)
			wantName := b.StringsInterner.MustLookup(b.Items.GenericParam(want[i]).Name)
			t.Errorf("position %d: expected %s, got %s", i, wantName, gotName)
		}
	}
}

func TestUsedGenerics_Dedup(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	id := b.Items.NewGenericParam(ast.GenericType, b.StringsInterner.Intern("T"), source.Span{}, ast.NoTypeID)

	u := NewUsedGenerics()
	u.Add(b.Items, id)
	u.Add(b.Items, id)
	if u.Len() != 1 {
		t.Errorf("expected 1 param after duplicate adds, got %d", u.Len())
	}
	if !u.Has(ast.GenericType, b.StringsInterner.Intern("T")) {
		t.Error("Has should report the collected param")
	}
	if u.Has(ast.GenericLifetime, b.StringsInterner.Intern("T")) {
		t.Error("Has must distinguish kinds sharing a name")
	}
}
