// Package diag carries diagnostics between pipeline phases: severities,
// stable codes per phase, a bounded Bag, and the Reporter contract the
// lexer, parser, and expander report through.
package diag
