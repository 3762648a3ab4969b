package driver

import (
	"path/filepath"
	"strings"

	"fortio.org/safecast"

	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/expand"
	"github.com/ZXY595/fnerror/internal/lexer"
	"github.com/ZXY595/fnerror/internal/parser"
	"github.com/ZXY595/fnerror/internal/printer"
	"github.com/ZXY595/fnerror/internal/project"
	"github.com/ZXY595/fnerror/internal/source"
)

type ExpandResult struct {
	Path       string
	FileSet    *source.FileSet
	File       *source.File
	Builder    *ast.Builder
	FileID     ast.FileID
	Bag        *diag.Bag
	Expansions []expand.Expansion

	// Output is the printed file, nil when expansion aborted. A file with
	// no marked functions still produces output: its own bytes.
	Output []byte
}

// Failed reports whether the file produced no usable output.
func (r *ExpandResult) Failed() bool {
	return r.Output == nil
}

// Expand runs the full pipeline on one file: load, parse, expand, print.
func Expand(path string, cfg *project.Config, maxDiagnostics int) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return expandLoaded(fs, fileID, path, cfg, maxDiagnostics)
}

// ExpandSource expands in-memory content under a virtual file name.
func ExpandSource(name string, src []byte, cfg *project.Config, maxDiagnostics int) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return expandLoaded(fs, fileID, name, cfg, maxDiagnostics)
}

func expandLoaded(fs *source.FileSet, fileID source.FileID, path string, cfg *project.Config, maxDiagnostics int) (*ExpandResult, error) {
	if cfg == nil {
		cfg = project.DefaultConfig()
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{
		Reporter: reporterAdapter.Reporter(),
	})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	parsed := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	res := &ExpandResult{
		Path:    path,
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  parsed.File,
		Bag:     bag,
	}

	// Broken syntax is as fatal as a broken marker: no output.
	if bag.HasErrors() {
		return res, nil
	}

	opts := expandOptions(cfg)
	opts.Reporter = diag.BagReporter{Bag: bag}
	expansions, ok := expand.File(builder, parsed.File, opts)
	res.Expansions = expansions
	if !ok {
		return res, nil
	}

	output, err := printer.PrintFile(file, builder, parsed.File, printer.Options{})
	if err != nil {
		return nil, err
	}
	res.Output = output
	return res, nil
}

// expandOptions maps the TOML configuration onto the expander's options.
func expandOptions(cfg *project.Config) expand.Options {
	segments, leadingColons := cfg.ResultPathSegments()
	return expand.Options{
		MarkerFn:            cfg.Expander.MarkerFn,
		MarkerCall:          cfg.Expander.MarkerCall,
		ErrorSuffix:         cfg.Expander.ErrorSuffix,
		ResultPath:          segments,
		ResultLeadingColons: leadingColons,
		Derives:             cfg.Expander.Derives,
	}
}

// OutputPath derives where the expanded file is written: the input's
// extension is replaced with the configured suffix.
func OutputPath(path string, cfg *project.Config) string {
	suffix := ".expanded.rs"
	if cfg != nil && cfg.Output.Suffix != "" {
		suffix = cfg.Output.Suffix
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix
}

// IsExpandedOutput reports whether path looks like a previously produced
// output file, so directory walks do not re-expand their own results.
func IsExpandedOutput(path string, cfg *project.Config) bool {
	suffix := ".expanded.rs"
	if cfg != nil && cfg.Output.Suffix != "" {
		suffix = cfg.Output.Suffix
	}
	return strings.HasSuffix(path, suffix)
}
