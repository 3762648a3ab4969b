package parser

import (
	"testing"

	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/lexer"
	"github.com/ZXY595/fnerror/internal/source"
)

// parseSource parses input as a whole file into a fresh builder.
func parseSource(t *testing.T, input string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	lx := lexer.New(file, lexer.Options{
		Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter(),
	})
	builder := ast.NewBuilder(ast.Hints{})

	result := ParseFile(fs, lx, builder, Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: 100,
	})
	return builder, result.File, bag
}

// mustParseOneFn parses input expecting exactly one fn item without errors.
func mustParseOneFn(t *testing.T, input string) (*ast.Builder, *ast.FnItem) {
	t.Helper()
	builder, fileID, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	file := builder.Files.Get(fileID)
	if len(file.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(file.Items))
	}
	fn, ok := builder.Items.Fn(file.Items[0])
	if !ok {
		t.Fatalf("expected a fn item")
	}
	return builder, fn
}

func itemName(b *ast.Builder, id source.StringID) string {
	return b.StringsInterner.MustLookup(id)
}

func TestParseFn_Basic(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantParams int
		wantPub    bool
	}{
		{
			name:     "empty body",
			input:    "fn foo() {}",
			wantName: "foo",
		},
		{
			name:       "params",
			input:      "fn add(a: u8, b: u8) {}",
			wantName:   "add",
			wantParams: 2,
		},
		{
			name:     "pub",
			input:    "pub fn visible() {}",
			wantName: "visible",
			wantPub:  true,
		},
		{
			name:       "mut param",
			input:      "fn push(mut items: Vec<u8>) {}",
			wantName:   "push",
			wantParams: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, fn := mustParseOneFn(t, tt.input)
			if got := itemName(builder, fn.Name); got != tt.wantName {
				t.Errorf("name: expected %q, got %q", tt.wantName, got)
			}
			if len(fn.Params) != tt.wantParams {
				t.Errorf("params: expected %d, got %d", tt.wantParams, len(fn.Params))
			}
			if fn.Pub != tt.wantPub {
				t.Errorf("pub: expected %v, got %v", tt.wantPub, fn.Pub)
			}
		})
	}
}

func TestParseFn_ReturnType(t *testing.T) {
	builder, fn := mustParseOneFn(t, "fn f() -> Result<(), String> {}")
	if !fn.ReturnType.IsValid() {
		t.Fatal("expected a return type")
	}
	data, ok := builder.Types.Path(fn.ReturnType)
	if !ok {
		t.Fatal("expected a path return type")
	}
	last := data.LastSegment()
	if got := itemName(builder, last.Name); got != "Result" {
		t.Errorf("expected Result head, got %q", got)
	}
	if len(last.Args) != 2 {
		t.Fatalf("expected 2 generic args, got %d", len(last.Args))
	}
}

func TestParseFn_Generics(t *testing.T) {
	builder, fn := mustParseOneFn(t, "fn f<'a, T: Clone, const N: usize>(x: &'a T) {}")
	if len(fn.Generics) != 3 {
		t.Fatalf("expected 3 generic params, got %d", len(fn.Generics))
	}

	wantKinds := []ast.GenericParamKind{
		ast.GenericLifetime, ast.GenericType, ast.GenericConst,
	}
	wantNames := []string{"a", "T", "N"}
	for i, id := range fn.Generics {
		param := builder.Items.GenericParam(id)
		if param.Kind != wantKinds[i] {
			t.Errorf("param %d: expected kind %v, got %v", i, wantKinds[i], param.Kind)
		}
		if got := itemName(builder, param.Name); got != wantNames[i] {
			t.Errorf("param %d: expected name %q, got %q", i, wantNames[i], got)
		}
	}
}

func TestParseFn_Attributes(t *testing.T) {
	builder, fn := mustParseOneFn(t, "#[fnerror]\n#[inline(always)]\nfn f() {}")
	if len(fn.Attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(fn.Attrs))
	}
	first := builder.Items.Attr(fn.Attrs[0])
	if got := itemName(builder, first.Name); got != "fnerror" {
		t.Errorf("expected first attr fnerror, got %q", got)
	}
}

func TestParseAttr_IdentArgs(t *testing.T) {
	builder, fn := mustParseOneFn(t, "#[fnerror(ident = MyError)]\nfn f() {}")
	attr := builder.Items.Attr(fn.Attrs[0])
	if len(attr.Args) != 1 {
		t.Fatalf("expected 1 structured attr arg, got %d", len(attr.Args))
	}
	arg := attr.Args[0]
	if itemName(builder, arg.Key) != "ident" || itemName(builder, arg.Value) != "MyError" {
		t.Errorf("expected ident = MyError, got %s = %s",
			itemName(builder, arg.Key), itemName(builder, arg.Value))
	}
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, b *ast.Builder, id ast.TypeID)
	}{
		{
			name:  "static str ref",
			input: "fn f(x: &'static str) {}",
			check: func(t *testing.T, b *ast.Builder, id ast.TypeID) {
				data, ok := b.Types.Ref(id)
				if !ok {
					t.Fatal("expected a reference type")
				}
				if itemName(b, data.Lifetime) != "static" {
					t.Errorf("expected 'static lifetime")
				}
			},
		},
		{
			name:  "tuple",
			input: "fn f(x: (u8, String)) {}",
			check: func(t *testing.T, b *ast.Builder, id ast.TypeID) {
				data, ok := b.Types.Tuple(id)
				if !ok {
					t.Fatal("expected a tuple type")
				}
				if len(data.Elems) != 2 {
					t.Errorf("expected 2 elems, got %d", len(data.Elems))
				}
			},
		},
		{
			name:  "array",
			input: "fn f(x: [u8; 4]) {}",
			check: func(t *testing.T, b *ast.Builder, id ast.TypeID) {
				data, ok := b.Types.Slice(id)
				if !ok {
					t.Fatal("expected a slice type")
				}
				if !data.Len.IsValid() {
					t.Error("expected an array length")
				}
			},
		},
		{
			name:  "qualified path with args",
			input: "fn f(x: ::std::vec::Vec<u8>) {}",
			check: func(t *testing.T, b *ast.Builder, id ast.TypeID) {
				data, ok := b.Types.Path(id)
				if !ok {
					t.Fatal("expected a path type")
				}
				if !data.LeadingColons {
					t.Error("expected leading colons")
				}
				if len(data.Segments) != 3 {
					t.Fatalf("expected 3 segments, got %d", len(data.Segments))
				}
				if len(data.LastSegment().Args) != 1 {
					t.Error("expected 1 generic arg on the last segment")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, fn := mustParseOneFn(t, tt.input)
			param := builder.Items.FnParam(fn.Params[0])
			tt.check(t, builder, param.Type)
		})
	}
}

func TestParseVerbatimItems(t *testing.T) {
	input := "use std::fmt;\n\nstruct Foo { a: u8 }\n\nfn f() {}\n"
	builder, fileID, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	file := builder.Files.Get(fileID)
	if len(file.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(file.Items))
	}

	wantKinds := []ast.ItemKind{ast.ItemVerbatim, ast.ItemVerbatim, ast.ItemFn}
	for i, id := range file.Items {
		if got := builder.Items.Get(id).Kind; got != wantKinds[i] {
			t.Errorf("item %d: expected %v, got %v", i, wantKinds[i], got)
		}
	}
}

func TestParseVerbatim_ImplBlock(t *testing.T) {
	input := "impl Foo {\n    fn helper(&self) {}\n}\n"
	builder, fileID, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	file := builder.Files.Get(fileID)
	if len(file.Items) != 1 {
		t.Fatalf("expected 1 verbatim item, got %d", len(file.Items))
	}
	if builder.Items.Get(file.Items[0]).Kind != ast.ItemVerbatim {
		t.Error("expected an opaque item")
	}
}

func TestParse_UnclosedBrace(t *testing.T) {
	_, _, bag := parseSource(t, "struct Foo {\n")
	if !bag.HasErrors() {
		t.Fatal("expected an unclosed-delimiter error")
	}
}

func TestParse_RecoversAfterBadItem(t *testing.T) {
	// One broken item must not hide the next one.
	input := "fn () {}\n\nfn good() {}\n"
	builder, fileID, bag := parseSource(t, input)
	if !bag.HasErrors() {
		t.Fatal("expected errors for the nameless fn")
	}
	file := builder.Files.Get(fileID)
	found := false
	for _, id := range file.Items {
		if fn, ok := builder.Items.Fn(id); ok {
			if itemName(builder, fn.Name) == "good" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected the parser to recover and parse fn good")
	}
}
