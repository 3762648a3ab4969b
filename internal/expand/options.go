package expand

import (
	"github.com/ZXY595/fnerror/internal/diag"
)

// Options controls marker recognition and the shape of the synthesized code.
// Zero values fall back to the stock markers.
type Options struct {
	// MarkerFn is the attribute that selects a function for expansion.
	MarkerFn string
	// MarkerCall is the attribute that selects a call site inside the body.
	MarkerCall string
	// ErrorSuffix is appended to the function-derived failure type name.
	ErrorSuffix string
	// ResultPath is the qualified path the rewritten return type uses.
	ResultPath []string
	// ResultLeadingColons prefixes ResultPath with `::`.
	ResultLeadingColons bool
	// Derives is the derive list attached to the synthesized enum.
	Derives []string

	Reporter diag.Reporter
}

func (o *Options) setDefaults() {
	if o.MarkerFn == "" {
		o.MarkerFn = "fnerror"
	}
	if o.MarkerCall == "" {
		o.MarkerCall = "fnerr"
	}
	if o.ErrorSuffix == "" {
		o.ErrorSuffix = "Error"
	}
	if len(o.ResultPath) == 0 {
		o.ResultPath = []string{"std", "result", "Result"}
		o.ResultLeadingColons = true
	}
	if len(o.Derives) == 0 {
		o.Derives = []string{"Debug", "::thiserror::Error"}
	}
}
