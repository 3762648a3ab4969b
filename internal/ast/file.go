package ast

import (
	"github.com/ZXY595/fnerror/internal/source"
)

// File is one parsed source file: a span covering the whole input plus its
// top-level items in source order.
type File struct {
	Span  source.Span
	Items []ItemID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(span source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span: span,
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
