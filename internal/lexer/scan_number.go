package lexer

import (
	"github.com/ZXY595/fnerror/internal/token"
)

// scanNumber scans integer and float literals. Integer literals may carry a
// trailing type suffix (123usize, 0u8); the suffix stays in Token.Text and
// is not interpreted here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	kind := token.IntLit

	// Fractional part: a dot followed by a digit. A lone trailing dot stays
	// with the next token (method calls on literals).
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	// Type suffix glued to the digits.
	if kind == token.IntLit && isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
