package printer

import (
	"github.com/ZXY595/fnerror/internal/source"
)

type Options struct {
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

// Writer accumulates output bytes and copies raw ranges out of the source
// file for everything that must survive byte for byte.
type Writer struct {
	sf  *source.File
	buf []byte
	opt Options
}

func NewWriter(sf *source.File, opt Options) *Writer {
	return &Writer{
		sf:  sf,
		buf: make([]byte, 0, len(sf.Content)),
		opt: opt,
	}
}

func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

func (w *Writer) Space() {
	w.buf = append(w.buf, ' ')
}

func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
}

// Indent writes depth levels of indentation.
func (w *Writer) Indent(depth int) {
	for i := 0; i < depth*w.opt.IndentWidth; i++ {
		w.buf = append(w.buf, ' ')
	}
}

// CopyRange copies source bytes [from, to) into the output.
func (w *Writer) CopyRange(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > len(w.sf.Content) {
		to = len(w.sf.Content)
	}
	if from >= to {
		return
	}
	w.buf = append(w.buf, w.sf.Content[from:to]...)
}

// CopySpan copies the span's source bytes into the output.
func (w *Writer) CopySpan(sp source.Span) {
	w.CopyRange(int(sp.Start), int(sp.End))
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

// EndsWithNewline reports whether the output so far ends a line.
func (w *Writer) EndsWithNewline() bool {
	return len(w.buf) == 0 || w.buf[len(w.buf)-1] == '\n'
}
