package expand_test

import (
	"testing"

	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/expand"
	"github.com/ZXY595/fnerror/internal/lexer"
	"github.com/ZXY595/fnerror/internal/parser"
	"github.com/ZXY595/fnerror/internal/source"
)

// expandSource parses input and runs the expansion with default options.
func expandSource(t *testing.T, input string) (*ast.Builder, ast.FileID, *diag.Bag, []expand.Expansion, bool) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	lx := lexer.New(file, lexer.Options{
		Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter(),
	})
	builder := ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: 100,
	})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %+v", bag.Items())
	}

	expansions, ok := expand.File(builder, parsed.File, expand.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return builder, parsed.File, bag, expansions, ok
}

func mustExpandOne(t *testing.T, input string) (*ast.Builder, ast.FileID, expand.Expansion) {
	t.Helper()
	builder, fileID, bag, expansions, ok := expandSource(t, input)
	if !ok {
		t.Fatalf("expansion aborted: %+v", bag.Items())
	}
	if len(expansions) != 1 {
		t.Fatalf("expected 1 expansion, got %d", len(expansions))
	}
	return builder, fileID, expansions[0]
}

func lookup(b *ast.Builder, id source.StringID) string {
	return b.StringsInterner.MustLookup(id)
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

const srcDerivedName = `#[fnerror]
fn foo() -> Result<()> {
    #[fnerr]
    Error2("some error: {0}", e as String)?;
    Ok(())
}
`

func TestExpand_DerivedName(t *testing.T) {
	builder, _, exp := mustExpandOne(t, srcDerivedName)
	if got := lookup(builder, exp.Name); got != "FooError" {
		t.Errorf("expected FooError, got %q", got)
	}
}

func TestExpand_EnumPrecedesFn(t *testing.T) {
	builder, fileID, exp := mustExpandOne(t, srcDerivedName)
	file := builder.Files.Get(fileID)
	if len(file.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(file.Items))
	}
	if file.Items[0] != exp.Enum || file.Items[1] != exp.Fn {
		t.Error("expected the enum item directly before its function")
	}
}

func TestExpand_VariantFromMarkedCall(t *testing.T) {
	builder, _, exp := mustExpandOne(t, srcDerivedName)
	enum, ok := builder.Items.Enum(exp.Enum)
	if !ok {
		t.Fatal("expected an enum item")
	}
	if lookup(builder, enum.Name) != "FooError" {
		t.Errorf("enum name: got %q", lookup(builder, enum.Name))
	}
	if len(enum.Variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(enum.Variants))
	}
	variant := builder.Items.Variant(enum.Variants[0])
	if lookup(builder, variant.Name) != "Error2" {
		t.Errorf("variant name: got %q", lookup(builder, variant.Name))
	}
	if len(variant.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(variant.Fields))
	}
	lit, ok := builder.Exprs.Literal(variant.Template)
	if !ok {
		t.Fatal("expected a literal template")
	}
	if lookup(builder, lit.Text) != `"some error: {0}"` {
		t.Errorf("template carried modified: %q", lookup(builder, lit.Text))
	}
}

func TestExpand_CallRewrittenInPlace(t *testing.T) {
	builder, _, exp := mustExpandOne(t, srcDerivedName)
	fn, _ := builder.Items.Fn(exp.Fn)
	block, _ := builder.Exprs.Block(fn.Body)
	stmt, _ := builder.Stmts.Expr(block.Stmts[0])
	try, ok := builder.Exprs.Try(stmt.Expr)
	if !ok {
		t.Fatal("expected the try expression to survive")
	}
	call, ok := builder.Exprs.Call(try.Inner)
	if !ok {
		t.Fatal("expected a call inside the try")
	}
	callee, _ := builder.Exprs.Path(call.Callee)
	if len(callee.Segments) != 2 ||
		lookup(builder, callee.Segments[0].Name) != "FooError" ||
		lookup(builder, callee.Segments[1].Name) != "Error2" {
		t.Errorf("expected FooError::Error2 callee")
	}
	// The template is gone from the arguments; the cast is unwrapped.
	if len(call.Args) != 1 {
		t.Fatalf("expected 1 rewritten arg, got %d", len(call.Args))
	}
	if arg, ok := builder.Exprs.Path(call.Args[0]); !ok || !arg.IsBareIdent() {
		t.Error("expected the bare cast value as the argument")
	}
}

func TestExpand_NamePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "explicit result slot wins over marker ident",
			input: `#[fnerror(ident = Ignored)]
fn f() -> Result<(), Explicit> { Ok(()) }
`,
			want: "Explicit",
		},
		{
			name: "marker ident wins over derived",
			input: `#[fnerror(ident = FromMarker)]
fn f() -> Result<()> { Ok(()) }
`,
			want: "FromMarker",
		},
		{
			name: "derived from snake_case",
			input: `#[fnerror]
fn read_config_file() -> Result<()> { Ok(()) }
`,
			want: "ReadConfigFileError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, _, exp := mustExpandOne(t, tt.input)
			if got := lookup(builder, exp.Name); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExpand_SitesInSourceOrder(t *testing.T) {
	input := `#[fnerror]
fn f(ctx: &'static str) -> Result<u8> {
    #[fnerr]
    First("a {0}", ctx as &'static str)?;
    #[fnerr]
    Second("b {0} {1}", ctx as &'static str, 7 as u8)?;
    Ok(0)
}
`
	builder, _, exp := mustExpandOne(t, input)
	enum, _ := builder.Items.Enum(exp.Enum)
	if len(enum.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(enum.Variants))
	}
	first := builder.Items.Variant(enum.Variants[0])
	second := builder.Items.Variant(enum.Variants[1])
	if lookup(builder, first.Name) != "First" || lookup(builder, second.Name) != "Second" {
		t.Error("variants out of extraction order")
	}
	if len(second.Fields) != 2 {
		t.Errorf("expected 2 fields on Second, got %d", len(second.Fields))
	}
}

func TestExpand_UsedGenerics_LifetimesFirst(t *testing.T) {
	// Lifetimes occupy a front region in first-encounter order; type params
	// follow in theirs. Declaration order does not matter.
	input := `#[fnerror]
fn f<'a, 'b, T, U>(w: &'b T, v: &'a U) -> Result<()> {
    #[fnerr]
    Wrap("{0} {1}", w as &'b T, v as &'a U)?;
    Ok(())
}
`
	builder, _, exp := mustExpandOne(t, input)
	enum, _ := builder.Items.Enum(exp.Enum)

	var got []string
	for _, id := range enum.Generics {
		got = append(got, lookup(builder, builder.Items.GenericParam(id).Name))
	}
	want := []string{"b", "a", "T", "U"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestExpand_UsedGenerics_Dedup(t *testing.T) {
	input := `#[fnerror]
fn f<T>(a: T, b: T) -> Result<()> {
    #[fnerr]
    Two("{0} {1}", a as T, b as T)?;
    Ok(())
}
`
	builder, _, exp := mustExpandOne(t, input)
	enum, _ := builder.Items.Enum(exp.Enum)
	if len(enum.Generics) != 1 {
		t.Fatalf("expected T once, got %d params", len(enum.Generics))
	}
}

func TestExpand_StaticLifetimeNotPropagated(t *testing.T) {
	input := `#[fnerror]
fn f(ctx: &'static str) -> Result<()> {
    #[fnerr]
    Ctx("{0}", ctx as &'static str)?;
    Ok(())
}
`
	builder, _, exp := mustExpandOne(t, input)
	enum, _ := builder.Items.Enum(exp.Enum)
	if len(enum.Generics) != 0 {
		t.Fatalf("'static is not a declared parameter; got %d generics", len(enum.Generics))
	}
}

func TestExpand_ZeroVariants(t *testing.T) {
	input := `#[fnerror]
fn f() -> Result<()> { Ok(()) }
`
	builder, _, exp := mustExpandOne(t, input)
	enum, _ := builder.Items.Enum(exp.Enum)
	if len(enum.Variants) != 0 {
		t.Fatalf("expected an empty enum, got %d variants", len(enum.Variants))
	}
}

func TestExpand_UnmarkedFnUntouched(t *testing.T) {
	input := "fn plain() -> Result<()> { Ok(()) }\n"
	builder, fileID, _, expansions, ok := expandSource(t, input)
	if !ok {
		t.Fatal("expansion must succeed on unmarked input")
	}
	if len(expansions) != 0 {
		t.Fatalf("expected no expansions, got %d", len(expansions))
	}
	file := builder.Files.Get(fileID)
	if len(file.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(file.Items))
	}
}

func TestExpand_NestedFnOpaque(t *testing.T) {
	// A nested function is its own scope; markers inside it do not feed the
	// outer expansion.
	input := `#[fnerror]
fn outer() -> Result<()> {
    fn inner() {
    }
    Ok(())
}
`
	builder, _, exp := mustExpandOne(t, input)
	enum, _ := builder.Items.Enum(exp.Enum)
	if len(enum.Variants) != 0 {
		t.Fatalf("expected no variants from nested items, got %d", len(enum.Variants))
	}
}

func TestExpand_OtherAttrsPreserved(t *testing.T) {
	input := `#[inline]
#[fnerror]
fn f() -> Result<()> { Ok(()) }
`
	builder, _, exp := mustExpandOne(t, input)
	fn, _ := builder.Items.Fn(exp.Fn)
	if len(fn.Attrs) != 1 {
		t.Fatalf("expected 1 surviving attr, got %d", len(fn.Attrs))
	}
	if lookup(builder, builder.Items.Attr(fn.Attrs[0]).Name) != "inline" {
		t.Error("expected #[inline] to survive")
	}
}

func TestExpand_Fatal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{
			name: "non-cast argument",
			input: `#[fnerror]
fn f() -> Result<()> {
    #[fnerr]
    Bad("x {0}", y)?;
    Ok(())
}
`,
			code: diag.ExpArgNotCast,
		},
		{
			name: "qualified callee",
			input: `#[fnerror]
fn f() -> Result<()> {
    #[fnerr]
    errors::Bad("x")?;
    Ok(())
}
`,
			code: diag.ExpCalleeNotIdent,
		},
		{
			name: "missing template",
			input: `#[fnerror]
fn f() -> Result<()> {
    #[fnerr]
    Bad()?;
    Ok(())
}
`,
			code: diag.ExpMissingTemplate,
		},
		{
			name: "reference without lifetime",
			input: `#[fnerror]
fn f(c: &'static str) -> Result<()> {
    #[fnerr]
    Bad("{0}", c as &str)?;
    Ok(())
}
`,
			code: diag.ExpRefNeedsLifetime,
		},
		{
			name: "return type is not Result",
			input: `#[fnerror]
fn f() -> u8 { 0 }
`,
			code: diag.ExpReturnNotResult,
		},
		{
			name: "missing return type",
			input: `#[fnerror]
fn f() {}
`,
			code: diag.ExpMissingReturnType,
		},
		{
			name: "too many Result arguments",
			input: `#[fnerror]
fn f() -> Result<u8, E, X> { Ok(0) }
`,
			code: diag.ExpResultTooManyArgs,
		},
		{
			name: "failure slot is a path",
			input: `#[fnerror]
fn f() -> Result<u8, errors::E> { Ok(0) }
`,
			code: diag.ExpResultBadErrSlot,
		},
		{
			name: "marker on a non-call",
			input: `#[fnerror]
fn f() -> Result<()> {
    let x = #[fnerr] 5;
    Ok(())
}
`,
			code: diag.ExpCalleeNotIdent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag, expansions, ok := expandSource(t, tt.input)
			if ok {
				t.Fatal("expected the expansion to abort")
			}
			if expansions != nil {
				t.Error("aborted expansion must return no expansions")
			}
			if !hasCode(bag, tt.code) {
				t.Errorf("expected code %s, got %+v", tt.code, bag.Items())
			}
		})
	}
}

func TestExpand_IdempotentReturnShape(t *testing.T) {
	// A previously rewritten signature still parses as a Result application.
	input := `#[fnerror]
fn f() -> ::std::result::Result<u8, FError> {
    #[fnerr]
	Oops("bad {0}", 1 as u8)?;
    Ok(0)
}
`
	builder, _, exp := mustExpandOne(t, input)
	if lookup(builder, exp.Name) != "FError" {
		t.Errorf("expected FError from the failure slot, got %q", lookup(builder, exp.Name))
	}
}

func TestExpand_MarkedCallInsideClosure(t *testing.T) {
	// The walk descends into closures and method-call arguments; only nested
	// fn items are opaque.
	input := `#[fnerror]
fn foo() -> Result<()> {
    bar().map_err(|e| #[fnerr] Error2("{0}", e as String))?;
    Ok(())
}
`
	builder, _, exp := mustExpandOne(t, input)
	if lookup(builder, exp.Name) != "FooError" {
		t.Errorf("expected FooError, got %q", lookup(builder, exp.Name))
	}
	enum, ok := builder.Items.Enum(exp.Enum)
	if !ok {
		t.Fatal("expected an enum item")
	}
	if len(enum.Variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(enum.Variants))
	}
	variant := builder.Items.Variant(enum.Variants[0])
	if lookup(builder, variant.Name) != "Error2" {
		t.Errorf("variant name: got %q", lookup(builder, variant.Name))
	}
	if len(variant.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(variant.Fields))
	}
}
