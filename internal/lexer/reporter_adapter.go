package lexer

import (
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
)

// ReporterAdapter bridges lexer reports into a diag.Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a lexer Reporter that files diagnostics into the bag.
func (r *ReporterAdapter) Reporter() Reporter {
	return bagLexReporter{bag: r.Bag}
}

type bagLexReporter struct {
	bag *diag.Bag
}

func (r bagLexReporter) Report(kind string, span source.Span, msg string) {
	if r.bag == nil {
		return
	}
	r.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     lexCode(kind),
		Message:  msg,
		Primary:  span,
	})
}

func lexCode(kind string) diag.Code {
	switch kind {
	case "unknown-char":
		return diag.LexUnknownChar
	case "unterminated-string":
		return diag.LexUnterminatedString
	case "unterminated-block-comment":
		return diag.LexUnterminatedBlockComment
	case "bad-number":
		return diag.LexBadNumber
	case "bad-lifetime":
		return diag.LexBadLifetime
	default:
		return diag.LexInfo
	}
}
