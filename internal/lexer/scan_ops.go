package lexer

import (
	"github.com/ZXY595/fnerror/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation with greedy matching.
// `>>` is intentionally left as two Gt tokens (see token.Gt).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	mk := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch {
	case lx.try2(':', ':'):
		return mk(token.ColonColon)
	case lx.try2('-', '>'):
		return mk(token.Arrow)
	case lx.try2('=', '>'):
		return mk(token.FatArrow)
	case lx.try2('=', '='):
		return mk(token.EqEq)
	case lx.try2('!', '='):
		return mk(token.BangEq)
	case lx.try2('<', '='):
		return mk(token.LtEq)
	case lx.try2('>', '='):
		return mk(token.GtEq)
	case lx.try2('&', '&'):
		return mk(token.AndAnd)
	case lx.try2('|', '|'):
		return mk(token.OrOr)
	}

	b := lx.cursor.Bump()
	switch b {
	case '+':
		return mk(token.Plus)
	case '-':
		return mk(token.Minus)
	case '*':
		return mk(token.Star)
	case '/':
		return mk(token.Slash)
	case '%':
		return mk(token.Percent)
	case '=':
		return mk(token.Assign)
	case '!':
		return mk(token.Bang)
	case '<':
		return mk(token.Lt)
	case '>':
		return mk(token.Gt)
	case '&':
		return mk(token.Amp)
	case '|':
		return mk(token.Pipe)
	case '?':
		return mk(token.Question)
	case ':':
		return mk(token.Colon)
	case ';':
		return mk(token.Semicolon)
	case ',':
		return mk(token.Comma)
	case '.':
		return mk(token.Dot)
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case '#':
		return mk(token.Pound)
	case '_':
		return mk(token.Underscore)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report("unknown-char", sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
