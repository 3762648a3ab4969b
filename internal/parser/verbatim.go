package parser

import (
	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/source"
	"github.com/ZXY595/fnerror/internal/token"
)

// semiTerminated lists item heads that always end at a top-level semicolon,
// never at a brace block (`use`, `static`, `type`, `const`, `extern crate`).
func semiTerminated(tok token.Token) bool {
	if tok.Kind == token.KwConst {
		return true
	}
	if tok.Kind != token.Ident {
		return false
	}
	switch tok.Text {
	case "use", "static", "type":
		return true
	default:
		return false
	}
}

// parseVerbatimItem consumes one non-function top-level item without
// interpreting it. The resulting item's span is copied through byte for byte,
// so anything the grammar does not model survives expansion untouched.
//
// Termination rule: items whose head is `use`/`static`/`type`/`const` run to
// the first semicolon at delimiter depth zero; everything else ends either at
// such a semicolon or at the close of the first depth-zero brace block
// (struct/enum/impl/trait/mod bodies).
func (p *Parser) parseVerbatimItem(start source.Span) (ast.ItemID, bool) {
	head := p.lx.Peek()
	braceEnds := !semiTerminated(head)

	depth := 0
	last := head.Span
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			if depth != 0 {
				p.err(diag.SynUnclosedDelimiter, "unclosed delimiter in item")
				return ast.NoItemID, false
			}
			// Trailing junk without a terminator: keep it as-is.
			span := start.Cover(last)
			return p.arenas.Items.NewVerbatim(span), true
		case token.Semicolon:
			p.advance()
			if depth == 0 {
				span := start.Cover(tok.Span)
				return p.arenas.Items.NewVerbatim(span), true
			}
		case token.LParen, token.LBracket:
			depth++
			p.advance()
		case token.LBrace:
			depth++
			p.advance()
		case token.RParen, token.RBracket:
			depth--
			p.advance()
		case token.RBrace:
			depth--
			p.advance()
			if depth == 0 && braceEnds {
				span := start.Cover(tok.Span)
				return p.arenas.Items.NewVerbatim(span), true
			}
			if depth < 0 {
				p.err(diag.SynUnexpectedToken, "unbalanced '}' at top level")
				return ast.NoItemID, false
			}
		default:
			p.advance()
		}
		last = tok.Span
	}
}
