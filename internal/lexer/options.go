package lexer

import (
	"github.com/ZXY595/fnerror/internal/source"
)

// Reporter is a thin interface so the lexer doesn't depend on diag directly.
// The lexer only calls it; formatting is an outer layer's business.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
