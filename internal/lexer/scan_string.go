package lexer

import (
	"github.com/ZXY595/fnerror/internal/token"
)

// scanString scans a double-quoted string literal with backslash escapes.
// Token.Text keeps the raw slice, quotes and escapes included; nothing here
// needs the decoded value.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.report("unterminated-string", sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		b := lx.cursor.Bump()
		if b == '\\' {
			// Consume whatever follows; the escape is validated downstream.
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '"' {
			break
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report("unterminated-string", sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
