package token

import "github.com/ZXY595/fnerror/internal/source"

// TriviaKind classifies non-semantic input between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// String returns a stable name for the trivia kind.
func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	default:
		return "Unknown"
	}
}

// Trivia is a single run of whitespace or a comment attached to a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
