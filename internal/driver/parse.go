package driver

import (
	"fortio.org/safecast"

	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/lexer"
	"github.com/ZXY595/fnerror/internal/parser"
	"github.com/ZXY595/fnerror/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse loads one file and parses it into a fresh builder.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, maxDiagnostics)
}

// ParseSource parses in-memory content under a virtual file name.
func ParseSource(name string, src []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseLoaded(fs, fileID, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
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

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}
