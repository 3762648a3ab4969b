package driver

import (
	"bytes"
	"testing"

	"github.com/ZXY595/fnerror/internal/project"
)

func mustExpandSource(t *testing.T, input string, cfg *project.Config) *ExpandResult {
	t.Helper()
	res, err := ExpandSource("test.rs", []byte(input), cfg, 100)
	if err != nil {
		t.Fatalf("pipeline error: %v", err)
	}
	return res
}

func TestExpandSource_DerivedName(t *testing.T) {
	input := `use std::fmt;

#[fnerror]
fn foo() -> Result<()> {
    #[fnerr]
    Error2("some error: {0}", e as String)?;
    Ok(())
}
`
	want := `use std::fmt;

#[derive(Debug, ::thiserror::Error)]
pub enum FooError {
    #[error("some error: {0}", 0usize)]
    Error2(String),
}
fn foo() -> ::std::result::Result<(), FooError> {
    FooError::Error2(e)?;
    Ok(())
}
`
	res := mustExpandSource(t, input, nil)
	if res.Failed() {
		t.Fatalf("expansion aborted: %+v", res.Bag.Items())
	}
	if got := string(res.Output); got != want {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestExpandSource_ExplicitFailureSlot(t *testing.T) {
	input := `#[fnerror]
fn bar(ctx: &'static str) -> Result<u8, BarFail> {
    #[fnerr]
    Broken("ctx {0} code {1}", ctx as &'static str, 7 as u8)?;
    Ok(0)
}
`
	want := `#[derive(Debug, ::thiserror::Error)]
pub enum BarFail {
    #[error("ctx {0} code {1}", 0usize, 1usize)]
    Broken(&'static str, u8),
}
fn bar(ctx: &'static str) -> ::std::result::Result<u8, BarFail> {
    BarFail::Broken(ctx, 7)?;
    Ok(0)
}
`
	res := mustExpandSource(t, input, nil)
	if res.Failed() {
		t.Fatalf("expansion aborted: %+v", res.Bag.Items())
	}
	if got := string(res.Output); got != want {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestExpandSource_GenericPropagation(t *testing.T) {
	input := `#[fnerror]
fn wrap<'a, T>(x: &'a T) -> Result<()> {
    #[fnerr]
    Wrap("{0}", x as &'a T)?;
    Ok(())
}
`
	want := `#[derive(Debug, ::thiserror::Error)]
pub enum WrapError<'a, T> {
    #[error("{0}", 0usize)]
    Wrap(&'a T),
}
fn wrap<'a, T>(x: &'a T) -> ::std::result::Result<(), WrapError<'a, T>> {
    WrapError::Wrap(x)?;
    Ok(())
}
`
	res := mustExpandSource(t, input, nil)
	if res.Failed() {
		t.Fatalf("expansion aborted: %+v", res.Bag.Items())
	}
	if got := string(res.Output); got != want {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestExpandSource_NoMarkers_OutputIsInput(t *testing.T) {
	input := `// a file the expansion never touches
use std::io;

fn plain(x: u8) -> u8 {
    x + 1 // inline comment survives
}

struct Keep {
    field: String,
}
`
	res := mustExpandSource(t, input, nil)
	if res.Failed() {
		t.Fatalf("unexpected failure: %+v", res.Bag.Items())
	}
	if !bytes.Equal(res.Output, []byte(input)) {
		t.Errorf("untouched input must round-trip byte for byte\n--- got ---\n%s", res.Output)
	}
}

func TestExpandSource_Idempotent(t *testing.T) {
	input := `#[fnerror]
fn foo() -> Result<()> {
    #[fnerr]
    Oops("bad {0}", 1 as u8)?;
    Ok(())
}
`
	first := mustExpandSource(t, input, nil)
	if first.Failed() {
		t.Fatalf("first run aborted: %+v", first.Bag.Items())
	}
	second := mustExpandSource(t, string(first.Output), nil)
	if second.Failed() {
		t.Fatalf("second run aborted: %+v", second.Bag.Items())
	}
	if !bytes.Equal(first.Output, second.Output) {
		t.Errorf("expansion is not idempotent\n--- first ---\n%s\n--- second ---\n%s",
			first.Output, second.Output)
	}
}

func TestExpandSource_Deterministic(t *testing.T) {
	input := `#[fnerror]
fn foo(ctx: &'static str) -> Result<()> {
    #[fnerr]
    A("{0}", ctx as &'static str)?;
    #[fnerr]
    B("{0}", ctx as &'static str)?;
    Ok(())
}
`
	a := mustExpandSource(t, input, nil)
	b := mustExpandSource(t, input, nil)
	if !bytes.Equal(a.Output, b.Output) {
		t.Error("same input produced different outputs")
	}
}

func TestExpandSource_ViolationAborts(t *testing.T) {
	input := `#[fnerror]
fn f() -> Result<()> {
    #[fnerr]
    Bad("x {0}", y)?;
    Ok(())
}
`
	res := mustExpandSource(t, input, nil)
	if !res.Failed() {
		t.Fatal("expected the file to fail")
	}
	if res.Output != nil {
		t.Error("a failed file must leave no output")
	}
	if !res.Bag.HasErrors() {
		t.Error("expected diagnostics explaining the failure")
	}
}

func TestExpandSource_SyntaxErrorAborts(t *testing.T) {
	res := mustExpandSource(t, "fn broken( {", nil)
	if !res.Failed() {
		t.Fatal("expected failure on broken syntax")
	}
	if !res.Bag.HasErrors() {
		t.Error("expected syntax diagnostics")
	}
}

func TestExpandSource_ConfiguredMarkersAndShape(t *testing.T) {
	cfg := project.DefaultConfig()
	cfg.Expander.MarkerFn = "mkerr"
	cfg.Expander.MarkerCall = "site"
	cfg.Expander.ErrorSuffix = "Failure"
	cfg.Expander.ResultPath = "outcome::Result"
	cfg.Expander.Derives = []string{"Debug"}

	input := `#[mkerr]
fn do_thing() -> Result<()> {
    #[site]
    Nope("x {0}", 1 as u8)?;
    Ok(())
}
`
	want := `#[derive(Debug)]
pub enum DoThingFailure {
    #[error("x {0}", 0usize)]
    Nope(u8),
}
fn do_thing() -> outcome::Result<(), DoThingFailure> {
    DoThingFailure::Nope(1)?;
    Ok(())
}
`
	res := mustExpandSource(t, input, cfg)
	if res.Failed() {
		t.Fatalf("expansion aborted: %+v", res.Bag.Items())
	}
	if got := string(res.Output); got != want {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path   string
		suffix string
		want   string
	}{
		{"src/lib.rs", "", "src/lib.expanded.rs"},
		{"main.rs", "", "main.expanded.rs"},
		{"a/b.rs", ".gen.rs", "a/b.gen.rs"},
	}
	for _, tt := range tests {
		cfg := project.DefaultConfig()
		if tt.suffix != "" {
			cfg.Output.Suffix = tt.suffix
		}
		if got := OutputPath(tt.path, cfg); got != tt.want {
			t.Errorf("OutputPath(%q): expected %q, got %q", tt.path, tt.want, got)
		}
	}
}

func TestIsExpandedOutput(t *testing.T) {
	cfg := project.DefaultConfig()
	if !IsExpandedOutput("src/lib.expanded.rs", cfg) {
		t.Error("expected output suffix to be recognized")
	}
	if IsExpandedOutput("src/lib.rs", cfg) {
		t.Error("plain input flagged as output")
	}
}
