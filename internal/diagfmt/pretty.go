package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan, color.Bold)
	gutterColor  = color.New(color.FgBlue, color.Bold)
)

// Pretty renders diagnostics in a compiler-style human format:
//
//	ERROR[EXP3006]: marked call argument must be a cast expression
//	 --> src/lib.rs:4:13
//	  |
//	4 |     fail("boom", ctx)
//	  |                  ^^^
//
// Call bag.Sort() beforehand for deterministic ordering.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, &d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	head := fmt.Sprintf("%s[%s]", d.Severity.String(), d.Code.String())
	fmt.Fprintf(w, "%s: %s\n", paint(opts.Color, severityColor(d.Severity), head), d.Message)

	printLocation(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "%s: %s\n", paint(opts.Color, noteColor, "note"), note.Msg)
			printLocation(w, note.Span, fs, opts)
		}
	}
}

func printLocation(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if fs == nil || (span == source.Span{}) {
		return
	}
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	fmt.Fprintf(w, " %s %s:%d:%d\n",
		paint(opts.Color, gutterColor, "-->"), file.Path, start.Line, start.Col)

	gutterWidth := len(fmt.Sprintf("%d", start.Line))
	bar := paint(opts.Color, gutterColor, "|")

	fmt.Fprintf(w, "%*s %s\n", gutterWidth, "", bar)

	firstLine := uint32(1)
	if context := uint32(max(opts.Context, 0)); start.Line > context {
		firstLine = start.Line - context
	}
	for line := firstLine; line <= start.Line; line++ {
		text := strings.TrimRight(file.GetLine(line), "\n")
		lineLabel := paint(opts.Color, gutterColor, fmt.Sprintf("%*d", gutterWidth, line))
		fmt.Fprintf(w, "%s %s %s\n", lineLabel, bar, text)
	}

	// Caret line under the primary span. A span crossing lines is
	// underlined to the end of its first line.
	text := strings.TrimRight(file.GetLine(start.Line), "\n")
	caretStart := max(int(start.Col)-1, 0)
	caretLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		caretLen = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		caretLen = max(len(text)-caretStart, 1)
	}
	fmt.Fprintf(w, "%*s %s %s%s\n", gutterWidth, "", bar,
		strings.Repeat(" ", caretStart),
		paint(opts.Color, errorColor, strings.Repeat("^", caretLen)))
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevWarning:
		return warningColor
	case diag.SevError:
		return errorColor
	default:
		return noteColor
	}
}

func paint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}
