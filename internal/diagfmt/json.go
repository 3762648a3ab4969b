package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
)

type DiagnosticOutput struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	File     string       `json:"file,omitempty"`
	Line     uint32       `json:"line,omitempty"`
	Col      uint32       `json:"col,omitempty"`
	EndLine  uint32       `json:"endLine,omitempty"`
	EndCol   uint32       `json:"endCol,omitempty"`
	Notes    []NoteOutput `json:"notes,omitempty"`
}

type NoteOutput struct {
	Message string `json:"message"`
	Line    uint32 `json:"line,omitempty"`
	Col     uint32 `json:"col,omitempty"`
}

// FormatDiagnosticsJSON dumps the bag as an indented JSON array, with spans
// resolved to positions. Call bag.Sort() beforehand for deterministic output.
func FormatDiagnosticsJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	output := make([]DiagnosticOutput, 0, bag.Len())

	for _, d := range bag.Items() {
		entry := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
		}
		if fs != nil && (d.Primary != source.Span{}) {
			file := fs.Get(d.Primary.File)
			start, end := fs.Resolve(d.Primary)
			entry.File = file.Path
			entry.Line, entry.Col = start.Line, start.Col
			entry.EndLine, entry.EndCol = end.Line, end.Col
		}
		for _, note := range d.Notes {
			n := NoteOutput{Message: note.Msg}
			if fs != nil && (note.Span != source.Span{}) {
				start, _ := fs.Resolve(note.Span)
				n.Line, n.Col = start.Line, start.Col
			}
			entry.Notes = append(entry.Notes, n)
		}
		output = append(output, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
