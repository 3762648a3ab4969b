// Package printer renders an expanded file back to source text. Items the
// expansion never touched are copied byte for byte from the input, gaps and
// comments included; rewritten functions and synthesized enums are printed
// from their syntax trees.
package printer

import (
	"errors"

	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/source"
)

type printer struct {
	builder *ast.Builder
	file    *ast.File
	writer  *Writer
	opt     Options
	depth   int
}

// PrintFile renders one file. fid must refer to a file in b whose spans point
// into sf.
func PrintFile(sf *source.File, b *ast.Builder, fid ast.FileID, opt Options) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("printer: nil source file")
	}
	if b == nil {
		return nil, errors.New("printer: nil builder")
	}
	if !fid.IsValid() {
		return nil, errors.New("printer: invalid file id")
	}
	file := b.Files.Get(fid)
	if file == nil {
		return nil, errors.New("printer: missing ast file")
	}

	opt = opt.withDefaults()
	w := NewWriter(sf, opt)
	pr := printer{
		builder: b,
		file:    file,
		writer:  w,
		opt:     opt,
	}
	pr.printFile()
	return w.Bytes(), nil
}

func (p *printer) printFile() {
	contentLen := len(p.writer.sf.Content)
	prev := 0
	for _, itemID := range p.file.Items {
		item := p.builder.Items.Get(itemID)
		if item == nil {
			continue
		}
		start := clampToContent(int(item.Span.Start), contentLen)
		if prev < start {
			p.writer.CopyRange(prev, start)
		}
		p.printItem(itemID, item)
		end := clampToContent(int(item.Span.End), contentLen)
		if end > prev {
			prev = end
		}
	}
	if prev < contentLen {
		p.writer.CopyRange(prev, contentLen)
	}
}

func (p *printer) printItem(id ast.ItemID, item *ast.Item) {
	switch item.Kind {
	case ast.ItemFn:
		if fn, ok := p.builder.Items.Fn(id); ok {
			// Untouched functions keep their original bytes, comments and
			// formatting included.
			if !fn.Expanded {
				p.writer.CopySpan(item.Span)
				return
			}
			p.printFnItem(fn)
			return
		}
	case ast.ItemEnum:
		if enum, ok := p.builder.Items.Enum(id); ok {
			p.printEnumItem(enum)
			return
		}
	case ast.ItemVerbatim:
		p.writer.CopySpan(item.Span)
		return
	}
	p.writer.CopySpan(item.Span)
}

func (p *printer) string(id source.StringID) string {
	return p.builder.StringsInterner.MustLookup(id)
}

func clampToContent(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
