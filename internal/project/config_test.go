package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Output.Suffix != ".expanded.rs" {
		t.Errorf("unexpected default suffix %q", cfg.Output.Suffix)
	}
	if cfg.Expander.MarkerFn != "" || cfg.Expander.ResultPath != "" {
		t.Error("expander defaults are applied downstream and must stay empty here")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `
[expander]
marker_fn = "mkerr"
marker_call = "site"
error_suffix = "Failure"
result_path = "::anyhow::Result"
derives = ["Debug", "Clone"]

[output]
suffix = ".gen.rs"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Expander.MarkerFn != "mkerr" || cfg.Expander.MarkerCall != "site" {
		t.Errorf("markers not loaded: %+v", cfg.Expander)
	}
	if cfg.Expander.ErrorSuffix != "Failure" {
		t.Errorf("suffix not loaded: %q", cfg.Expander.ErrorSuffix)
	}
	if !reflect.DeepEqual(cfg.Expander.Derives, []string{"Debug", "Clone"}) {
		t.Errorf("derives not loaded: %v", cfg.Expander.Derives)
	}
	if cfg.Output.Suffix != ".gen.rs" {
		t.Errorf("output suffix not loaded: %q", cfg.Output.Suffix)
	}
	if cfg.Dir != dir {
		t.Errorf("Dir should record the config location, got %q", cfg.Dir)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("[expander]\nmarker_fn = \"m\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Output.Suffix != ".expanded.rs" {
		t.Errorf("missing output section must keep the default suffix, got %q", cfg.Output.Suffix)
	}
}

func TestFindConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("[expander]\nerror_suffix = \"Oops\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if cfg.Expander.ErrorSuffix != "Oops" {
		t.Errorf("config in an ancestor directory was not found: %+v", cfg.Expander)
	}
	if cfg.Dir != root {
		t.Errorf("expected Dir %q, got %q", root, cfg.Dir)
	}
}

func TestFindConfig_AbsentYieldsDefaults(t *testing.T) {
	cfg, err := FindConfig(t.TempDir())
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if cfg.Dir != "" {
		t.Errorf("defaults must not claim a directory, got %q", cfg.Dir)
	}
	if cfg.Output.Suffix != ".expanded.rs" {
		t.Errorf("unexpected suffix %q", cfg.Output.Suffix)
	}
}

func TestResultPathSegments(t *testing.T) {
	tests := []struct {
		raw     string
		want    []string
		leading bool
	}{
		{"", nil, false},
		{"Result", []string{"Result"}, false},
		{"outcome::Result", []string{"outcome", "Result"}, false},
		{"::std::result::Result", []string{"std", "result", "Result"}, true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Expander.ResultPath = tt.raw
		segs, leading := cfg.ResultPathSegments()
		if !reflect.DeepEqual(segs, tt.want) || leading != tt.leading {
			t.Errorf("ResultPathSegments(%q) = %v, %v; expected %v, %v",
				tt.raw, segs, leading, tt.want, tt.leading)
		}
	}
}

func TestDigest(t *testing.T) {
	a := HashBytes([]byte("hello"))
	b := HashBytes([]byte("hello"))
	c := HashBytes([]byte("world"))
	if a != b {
		t.Error("same input must digest the same")
	}
	if a == c {
		t.Error("different inputs must digest differently")
	}
	if a.IsZero() {
		t.Error("a real digest is never zero")
	}
	var zero Digest
	if !zero.IsZero() {
		t.Error("the zero digest must report as zero")
	}
	if len(a.String()) != 64 {
		t.Errorf("hex form should be 64 chars, got %d", len(a.String()))
	}
}
