// Package diagfmt renders diagnostics and token dumps for the CLI.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is how many extra source lines to show around the primary
	// line. Zero shows only the line itself.
	Context   int
	ShowNotes bool
}
