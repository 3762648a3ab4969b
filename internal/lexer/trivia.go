package lexer

import (
	"github.com/ZXY595/fnerror/internal/token"
)

// collectLeadingTrivia consumes whitespace and comments into lx.hold.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r':
			start := lx.cursor.Mark()
			for {
				b = lx.cursor.Peek()
				if b != ' ' && b != '\t' && b != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case b == '\n':
			start := lx.cursor.Mark()
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)

		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				start := lx.cursor.Mark()
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				lx.pushTrivia(token.TriviaLineComment, start)
			case '*':
				start := lx.cursor.Mark()
				lx.cursor.Bump() // /
				lx.cursor.Bump() // *
				closed := false
				for !lx.cursor.EOF() {
					if lx.try2('*', '/') {
						closed = true
						break
					}
					lx.cursor.Bump()
				}
				if !closed {
					lx.report("unterminated-block-comment", lx.cursor.SpanFrom(start), "unterminated block comment")
				}
				lx.pushTrivia(token.TriviaBlockComment, start)
			default:
				return
			}

		default:
			return
		}
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
